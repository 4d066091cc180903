package model

import (
	"time"

	"github.com/jinzhu/gorm/dialects/postgres"
)

// Property types produced by the import classifier. Free-text inputs are
// mapped into this set; anything unrecognized lands on TypeOther.
const (
	PropertyTypeIndustrial  = "industrial"
	PropertyTypeOffice      = "office"
	PropertyTypeRetail      = "retail"
	PropertyTypeMultifamily = "multifamily"
	PropertyTypeLand        = "land"
	PropertyTypeHospitality = "hospitality"
	PropertyTypeMedical     = "medical"
	PropertyTypeMixedUse    = "mixed_use"
	PropertyTypeSelfStorage = "self_storage"
	PropertyTypeOther       = "other"
)

// MasterProperty - Canonical record of a real-world property. Soft-deleted
// only, never removed; the import pipeline re-matches on
// (address_normalized, lower(city), state).
type MasterProperty struct {
	ID                string     `gorm:"primary_key" json:"id"`
	ProjectID         int64      `json:"project_id"`
	Name              string     `json:"name"`
	Address           string     `json:"address"`
	AddressNormalized string     `json:"address_normalized"`
	City              string     `json:"city"`
	State             string     `json:"state"`
	Zip               string     `json:"zip"`
	County            string     `json:"county"`
	Submarket         string     `json:"submarket"`
	PropertyType      string     `json:"property_type"`
	PropertySubtype   string     `json:"property_subtype"`
	BuildingSizeSF    int64      `json:"building_size_sf"`
	LotSizeAcres      float64    `json:"lot_size_acres"`
	YearBuilt         int64      `json:"year_built"`
	Units             int64      `json:"units"`
	Stories           int64      `json:"stories"`
	ParkingSpaces     int64      `json:"parking_spaces"`
	ZoningCode        string     `json:"zoning_code"`
	OwnerName         string     `json:"owner_name"`
	OwnerPhone        string     `json:"owner_phone"`
	OwnerEmail        string     `json:"owner_email"`
	RailServed        bool       `json:"rail_served"`
	OpportunityZone   bool       `json:"opportunity_zone"`
	Source            string     `json:"source"`
	CreatedBy         string     `json:"created_by"`
	RawImportData     *postgres.Jsonb `json:"raw_import_data,omitempty"`
	IsDeleted         bool       `json:"is_deleted"`
	VerifiedAt        *time.Time `json:"verified_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (MasterProperty) TableName() string {
	return "master_properties"
}

// UpdatableMasterProperty - Fields a manual edit is allowed to touch.
type UpdatableMasterProperty struct {
	Name            *string  `json:"name"`
	Address         *string  `json:"address"`
	City            *string  `json:"city"`
	State           *string  `json:"state"`
	Zip             *string  `json:"zip"`
	County          *string  `json:"county"`
	Submarket       *string  `json:"submarket"`
	PropertyType    *string  `json:"property_type"`
	PropertySubtype *string  `json:"property_subtype"`
	BuildingSizeSF  *int64   `json:"building_size_sf"`
	LotSizeAcres    *float64 `json:"lot_size_acres"`
	YearBuilt       *int64   `json:"year_built"`
	Units           *int64   `json:"units"`
	Stories         *int64   `json:"stories"`
	ParkingSpaces   *int64   `json:"parking_spaces"`
	ZoningCode      *string  `json:"zoning_code"`
	OwnerName       *string  `json:"owner_name"`
	OwnerPhone      *string  `json:"owner_phone"`
	OwnerEmail      *string  `json:"owner_email"`
	RailServed      *bool    `json:"rail_served"`
	OpportunityZone *bool    `json:"opportunity_zone"`
}

// Fields returns the update payload as a gorm-updatable column map,
// containing only the fields that were supplied.
func (u *UpdatableMasterProperty) Fields() map[string]interface{} {
	fields := make(map[string]interface{})

	setStr := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	setInt := func(column string, v *int64) {
		if v != nil {
			fields[column] = *v
		}
	}

	setStr("name", u.Name)
	setStr("address", u.Address)
	setStr("city", u.City)
	setStr("state", u.State)
	setStr("zip", u.Zip)
	setStr("county", u.County)
	setStr("submarket", u.Submarket)
	setStr("property_type", u.PropertyType)
	setStr("property_subtype", u.PropertySubtype)
	setStr("zoning_code", u.ZoningCode)
	setStr("owner_name", u.OwnerName)
	setStr("owner_phone", u.OwnerPhone)
	setStr("owner_email", u.OwnerEmail)
	setInt("building_size_sf", u.BuildingSizeSF)
	setInt("year_built", u.YearBuilt)
	setInt("units", u.Units)
	setInt("stories", u.Stories)
	setInt("parking_spaces", u.ParkingSpaces)
	if u.LotSizeAcres != nil {
		fields["lot_size_acres"] = *u.LotSizeAcres
	}
	if u.RailServed != nil {
		fields["rail_served"] = *u.RailServed
	}
	if u.OpportunityZone != nil {
		fields["opportunity_zone"] = *u.OpportunityZone
	}

	return fields
}
