package model

import "time"

const ProjectTokenLength = 32

// Project - Tenant record. PrivateToken authenticates API requests on the
// Authorization header; session auth itself lives with the managed auth
// provider and never reaches this service.
type Project struct {
	ID           int64     `gorm:"primary_key" json:"id"`
	Name         string    `json:"name"`
	PrivateToken string    `json:"private_token"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}
