package model

import "time"

// Contact - CRM person record. Soft delete only.
type Contact struct {
	ID        string    `gorm:"primary_key" json:"id"`
	ProjectID int64     `json:"project_id"`
	CompanyID string    `json:"company_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Title     string    `json:"title"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Mobile    string    `json:"mobile"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Zip       string    `json:"zip"`
	Notes     string    `json:"notes"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Contact) TableName() string {
	return "contacts"
}

// ContactProperty - contact↔property join with a relationship label
// (owner, tenant, broker, property manager, ...).
type ContactProperty struct {
	ID           string    `gorm:"primary_key" json:"id"`
	ProjectID    int64     `json:"project_id"`
	ContactID    string    `json:"contact_id"`
	PropertyID   string    `json:"property_id"`
	Relationship string    `json:"relationship"`
	CreatedAt    time.Time `json:"created_at"`
}

func (ContactProperty) TableName() string {
	return "contact_properties"
}

type UpdatableContact struct {
	CompanyID *string `json:"company_id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Title     *string `json:"title"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Mobile    *string `json:"mobile"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Zip       *string `json:"zip"`
	Notes     *string `json:"notes"`
}

func (u *UpdatableContact) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	set := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	set("company_id", u.CompanyID)
	set("first_name", u.FirstName)
	set("last_name", u.LastName)
	set("title", u.Title)
	set("email", u.Email)
	set("phone", u.Phone)
	set("mobile", u.Mobile)
	set("address", u.Address)
	set("city", u.City)
	set("state", u.State)
	set("zip", u.Zip)
	set("notes", u.Notes)
	return fields
}
