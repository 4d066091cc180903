package model

import "time"

// Company - CRM organization record. Soft delete only.
type Company struct {
	ID          string    `gorm:"primary_key" json:"id"`
	ProjectID   int64     `json:"project_id"`
	Name        string    `json:"name"`
	CompanyType string    `json:"company_type"`
	Website     string    `json:"website"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Zip         string    `json:"zip"`
	Notes       string    `json:"notes"`
	IsDeleted   bool      `json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Company) TableName() string {
	return "companies"
}

type UpdatableCompany struct {
	Name        *string `json:"name"`
	CompanyType *string `json:"company_type"`
	Website     *string `json:"website"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Zip         *string `json:"zip"`
	Notes       *string `json:"notes"`
}

func (u *UpdatableCompany) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	set := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	set("name", u.Name)
	set("company_type", u.CompanyType)
	set("website", u.Website)
	set("phone", u.Phone)
	set("address", u.Address)
	set("city", u.City)
	set("state", u.State)
	set("zip", u.Zip)
	set("notes", u.Notes)
	return fields
}
