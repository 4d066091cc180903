package model

import "time"

// Property-operations records: budgets, expenses, vendors, photos, rent
// payments and capital projects. Plain CRUD entities keyed by property.

type Budget struct {
	ID         string    `gorm:"primary_key" json:"id"`
	ProjectID  int64     `json:"project_id"`
	PropertyID string    `json:"property_id"`
	Name       string    `json:"name"`
	Year       int64     `json:"year"`
	Category   string    `json:"category"`
	Amount     float64   `json:"amount"`
	Notes      string    `json:"notes"`
	IsDeleted  bool      `json:"is_deleted"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Budget) TableName() string {
	return "budgets"
}

type Expense struct {
	ID          string     `gorm:"primary_key" json:"id"`
	ProjectID   int64      `json:"project_id"`
	PropertyID  string     `json:"property_id"`
	BudgetID    string     `json:"budget_id"`
	VendorID    string     `json:"vendor_id"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	IncurredAt  *time.Time `json:"incurred_at"`
	IsDeleted   bool       `json:"is_deleted"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Expense) TableName() string {
	return "expenses"
}

type Vendor struct {
	ID          string    `gorm:"primary_key" json:"id"`
	ProjectID   int64     `json:"project_id"`
	Name        string    `json:"name"`
	ServiceType string    `json:"service_type"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Notes       string    `json:"notes"`
	IsDeleted   bool      `json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Vendor) TableName() string {
	return "vendors"
}

// PropertyPhoto - Metadata for a photo held in external blob storage; only
// the public URL is kept here.
type PropertyPhoto struct {
	ID         string    `gorm:"primary_key" json:"id"`
	ProjectID  int64     `json:"project_id"`
	PropertyID string    `json:"property_id"`
	URL        string    `json:"url"`
	Caption    string    `json:"caption"`
	SortOrder  int       `json:"sort_order"`
	IsPrimary  bool      `json:"is_primary"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (PropertyPhoto) TableName() string {
	return "property_photos"
}

const (
	RentPaymentStatusPending  = "pending"
	RentPaymentStatusPaid     = "paid"
	RentPaymentStatusLate     = "late"
	RentPaymentStatusPartial  = "partial"
	RentPaymentStatusWrittenOff = "written_off"
)

type RentPayment struct {
	ID         string     `gorm:"primary_key" json:"id"`
	ProjectID  int64      `json:"project_id"`
	PropertyID string     `json:"property_id"`
	TenantName string     `json:"tenant_name"`
	Amount     float64    `json:"amount"`
	DueDate    time.Time  `json:"due_date"`
	PaidAt     *time.Time `json:"paid_at"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (RentPayment) TableName() string {
	return "rent_payments"
}

const (
	CapitalProjectStatusPlanned    = "planned"
	CapitalProjectStatusInProgress = "in_progress"
	CapitalProjectStatusCompleted  = "completed"
	CapitalProjectStatusOnHold     = "on_hold"
)

type CapitalProject struct {
	ID          string     `gorm:"primary_key" json:"id"`
	ProjectID   int64      `json:"project_id"`
	PropertyID  string     `json:"property_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Budget      float64    `json:"budget"`
	SpentToDate float64    `json:"spent_to_date"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	VendorID    string     `json:"vendor_id"`
	IsDeleted   bool       `json:"is_deleted"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (CapitalProject) TableName() string {
	return "capital_projects"
}
