package model

import (
	"strings"
	"time"

	"github.com/jinzhu/gorm/dialects/postgres"
)

const ProspectItemStatusPending = "pending"

// ProspectList - A saved filter definition plus a point-in-time snapshot of
// matching property ids. Refresh re-runs the filter and replaces the
// snapshot; status/notes survive for property ids present in both snapshots.
type ProspectList struct {
	ID              string          `gorm:"primary_key" json:"id"`
	ProjectID       int64           `json:"project_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Filters         *postgres.Jsonb `json:"filters"`
	ResultCount     int64           `json:"result_count"`
	LastRefreshedAt *time.Time      `json:"last_refreshed_at"`
	CreatedBy       string          `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (ProspectList) TableName() string {
	return "prospect_lists"
}

// ProspectListItem - One property in a list snapshot, with per-item
// workflow state.
type ProspectListItem struct {
	ID         string    `gorm:"primary_key" json:"id"`
	ProjectID  int64     `json:"project_id"`
	ListID     string    `json:"list_id"`
	PropertyID string    `json:"property_id"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (ProspectListItem) TableName() string {
	return "prospect_list_items"
}

type UpdatableProspectListItem struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

func (u *UpdatableProspectListItem) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.Status != nil {
		fields["status"] = *u.Status
	}
	if u.Notes != nil {
		fields["notes"] = *u.Notes
	}
	return fields
}

// ProspectFilters - Typed filter object for the prospecting query. Three
// predicate families: multi-select membership, numeric ranges and free-text
// search. All supplied predicates AND together; values inside a
// multi-select OR together (IN semantics).
type ProspectFilters struct {
	PropertyType    []string `json:"property_type"`
	City            []string `json:"city"`
	State           []string `json:"state"`
	Zip             []string `json:"zip"`
	Submarket       []string `json:"submarket"`
	PropertySubtype []string `json:"property_subtype"`

	BuildingSizeMin *int64   `json:"building_size_min"`
	BuildingSizeMax *int64   `json:"building_size_max"`
	LotSizeMin      *float64 `json:"lot_size_min"`
	LotSizeMax      *float64 `json:"lot_size_max"`
	YearBuiltMin    *int64   `json:"year_built_min"`
	YearBuiltMax    *int64   `json:"year_built_max"`
	SalePriceMin    *float64 `json:"sale_price_min"`
	SalePriceMax    *float64 `json:"sale_price_max"`
	PricePerSFMin   *float64 `json:"price_per_sf_min"`
	PricePerSFMax   *float64 `json:"price_per_sf_max"`
	CapRateMin      *float64 `json:"cap_rate_min"`
	CapRateMax      *float64 `json:"cap_rate_max"`

	OwnerName string `json:"owner_name"`
	Search    string `json:"search"`
}

// IsEmpty reports whether no predicate was supplied at all.
func (f *ProspectFilters) IsEmpty() bool {
	conditions, _ := f.BuildFilterQuery()
	return conditions == ""
}

// BuildFilterQuery compiles the filter object into a SQL conditions
// fragment and its arguments, against the property-with-latest-transaction
// view (property columns aliased p, latest transaction columns aliased t).
// The same compiled query backs preview, list creation, refresh and export.
func (f *ProspectFilters) BuildFilterQuery() (string, []interface{}) {
	conditions := make([]string, 0, 8)
	args := make([]interface{}, 0, 8)

	addIn := func(column string, values []string) {
		if len(values) == 0 {
			return
		}
		conditions = append(conditions, column+" IN (?)")
		args = append(args, values)
	}
	addMinInt := func(column string, v *int64) {
		if v == nil {
			return
		}
		conditions = append(conditions, column+" >= ?")
		args = append(args, *v)
	}
	addMaxInt := func(column string, v *int64) {
		if v == nil {
			return
		}
		conditions = append(conditions, column+" <= ?")
		args = append(args, *v)
	}
	addMinFloat := func(column string, v *float64) {
		if v == nil {
			return
		}
		conditions = append(conditions, column+" >= ?")
		args = append(args, *v)
	}
	addMaxFloat := func(column string, v *float64) {
		if v == nil {
			return
		}
		conditions = append(conditions, column+" <= ?")
		args = append(args, *v)
	}

	addIn("p.property_type", f.PropertyType)
	addIn("LOWER(p.city)", lowerAll(f.City))
	addIn("p.state", f.State)
	addIn("p.zip", f.Zip)
	addIn("LOWER(p.submarket)", lowerAll(f.Submarket))
	addIn("LOWER(p.property_subtype)", lowerAll(f.PropertySubtype))

	addMinInt("p.building_size_sf", f.BuildingSizeMin)
	addMaxInt("p.building_size_sf", f.BuildingSizeMax)
	addMinFloat("p.lot_size_acres", f.LotSizeMin)
	addMaxFloat("p.lot_size_acres", f.LotSizeMax)
	addMinInt("p.year_built", f.YearBuiltMin)
	addMaxInt("p.year_built", f.YearBuiltMax)
	addMinFloat("t.sale_price", f.SalePriceMin)
	addMaxFloat("t.sale_price", f.SalePriceMax)
	addMinFloat("t.price_per_sf", f.PricePerSFMin)
	addMaxFloat("t.price_per_sf", f.PricePerSFMax)
	addMinFloat("t.cap_rate", f.CapRateMin)
	addMaxFloat("t.cap_rate", f.CapRateMax)

	if owner := strings.TrimSpace(f.OwnerName); owner != "" {
		conditions = append(conditions, "LOWER(p.owner_name) LIKE ?")
		args = append(args, "%"+strings.ToLower(owner)+"%")
	}

	if search := strings.TrimSpace(f.Search); search != "" {
		conditions = append(conditions,
			"(LOWER(p.address) LIKE ? OR LOWER(p.name) LIKE ? OR LOWER(p.city) LIKE ?)")
		like := "%" + strings.ToLower(search) + "%"
		args = append(args, like, like, like)
	}

	return strings.Join(conditions, " AND "), args
}

func lowerAll(values []string) []string {
	if len(values) == 0 {
		return values
	}
	lowered := make([]string, 0, len(values))
	for _, v := range values {
		lowered = append(lowered, strings.ToLower(v))
	}
	return lowered
}

// ProspectPropertyRow - One row of the denormalized
// property-with-latest-transaction view.
type ProspectPropertyRow struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	Zip            string  `json:"zip"`
	Submarket      string  `json:"submarket"`
	PropertyType   string  `json:"property_type"`
	BuildingSizeSF int64   `json:"building_size_sf"`
	LotSizeAcres   float64 `json:"lot_size_acres"`
	YearBuilt      int64   `json:"year_built"`
	OwnerName      string  `json:"owner_name"`
	SalePrice      float64 `json:"sale_price"`
	PricePerSF     float64 `json:"price_per_sf"`
	CapRate        float64 `json:"cap_rate"`
}

// ProspectPreview - Count plus first page returned by the preview endpoint.
type ProspectPreview struct {
	Count int64                 `json:"count"`
	Rows  []ProspectPropertyRow `json:"rows"`
}

const ProspectPreviewPageSize = 20

// ProspectExportHeader - Fixed column set of the prospect-list CSV export.
var ProspectExportHeader = []string{
	"address", "city", "state", "zip", "property_type",
	"building_size_sf", "lot_size_acres", "year_built",
	"owner_name", "status", "notes",
}

// ProspectExportRow - One CSV export row: snapshot item state joined with
// its property.
type ProspectExportRow struct {
	Address        string  `json:"address"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	Zip            string  `json:"zip"`
	PropertyType   string  `json:"property_type"`
	BuildingSizeSF int64   `json:"building_size_sf"`
	LotSizeAcres   float64 `json:"lot_size_acres"`
	YearBuilt      int64   `json:"year_built"`
	OwnerName      string  `json:"owner_name"`
	Status         string  `json:"status"`
	Notes          string  `json:"notes"`
}
