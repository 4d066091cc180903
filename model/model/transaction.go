package model

import "time"

const (
	TransactionTypeSale  = "sale"
	TransactionTypeLease = "lease"
)

// Transaction - A sale/lease/listing event tied to a MasterProperty.
// Created by the import pipeline when pricing fields are present, or
// manually through the API.
type Transaction struct {
	ID              string     `gorm:"primary_key" json:"id"`
	ProjectID       int64      `json:"project_id"`
	PropertyID      string     `json:"property_id"`
	TransactionType string     `json:"transaction_type"`
	SalePrice       float64    `json:"sale_price"`
	SaleDate        *time.Time `json:"sale_date"`
	CapRate         float64    `json:"cap_rate"`
	NOI             float64    `gorm:"column:noi" json:"noi"`
	LeaseRate       float64    `json:"lease_rate"`
	LeaseTermMonths int64      `json:"lease_term_months"`
	PricePerSF      float64    `gorm:"column:price_per_sf" json:"price_per_sf"`
	Buyer           string     `json:"buyer"`
	Seller          string     `json:"seller"`
	LoanAmount      float64    `json:"loan_amount"`
	Lender          string     `json:"lender"`
	InterestRate    float64    `json:"interest_rate"`
	LoanTermMonths  int64      `json:"loan_term_months"`
	Source          string     `json:"source"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
