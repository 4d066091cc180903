package model

import (
	"strings"
	"time"

	U "brokerbase/util"

	"github.com/pkg/errors"
)

// ImportRequest - Payload of POST /api/master-properties/import. Rows come
// straight from decoded JSON, so cell values are string/float64/bool/nil.
type ImportRequest struct {
	Source        string                   `json:"source"`
	ColumnMapping map[string]string        `json:"columnMapping"`
	Rows          []map[string]interface{} `json:"rows"`
	CreatedBy     string                   `json:"created_by"`
}

type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// MaxImportErrorDetails caps the per-row error sample returned to callers.
const MaxImportErrorDetails = 10

// ImportResult - Aggregate outcome of one import invocation.
type ImportResult struct {
	BatchID             string           `json:"batch_id"`
	Imported            int              `json:"imported"`
	Updated             int              `json:"updated"`
	Skipped             int              `json:"skipped"`
	Errors              int              `json:"errors"`
	PropertiesCreated   []string         `json:"properties_created"`
	PropertiesUpdated   []string         `json:"properties_updated"`
	TransactionsCreated []string         `json:"transactions_created"`
	ErrorDetails        []ImportRowError `json:"error_details"`
}

// ValidPropertyColumns - Allow-list of canonical property fields a column
// mapping may target. Mappings to anything else are dropped silently.
var ValidPropertyColumns = map[string]bool{
	"name":             true,
	"address":          true,
	"city":             true,
	"state":            true,
	"zip":              true,
	"county":           true,
	"submarket":        true,
	"property_type":    true,
	"property_subtype": true,
	"building_size_sf": true,
	"lot_size_acres":   true,
	"year_built":       true,
	"units":            true,
	"stories":          true,
	"parking_spaces":   true,
	"zoning_code":      true,
	"owner_name":       true,
	"owner_phone":      true,
	"owner_email":      true,
	"rail_served":      true,
	"opportunity_zone": true,
}

// TransactionFields - Canonical fields routed to a Transaction row instead
// of the property row.
var TransactionFields = map[string]bool{
	"sale_price":        true,
	"sale_date":         true,
	"cap_rate":          true,
	"noi":               true,
	"lease_rate":        true,
	"lease_term_months": true,
	"price_per_sf":      true,
	"buyer":             true,
	"seller":            true,
	"loan_amount":       true,
	"lender":            true,
	"interest_rate":     true,
	"loan_term_months":  true,
}

var importIntegerFields = map[string]bool{
	"building_size_sf":  true,
	"year_built":        true,
	"units":             true,
	"stories":           true,
	"parking_spaces":    true,
	"lease_term_months": true,
	"loan_term_months":  true,
}

var importDecimalFields = map[string]bool{
	"lot_size_acres": true,
	"sale_price":     true,
	"cap_rate":       true,
	"noi":            true,
	"lease_rate":     true,
	"price_per_sf":   true,
	"loan_amount":    true,
	"interest_rate":  true,
}

var importBooleanFields = map[string]bool{
	"rail_served":      true,
	"opportunity_zone": true,
}

// locationTypeTokens - Values that show up under the address column when a
// source export mis-maps its location-type column. Rows carrying them are
// skipped rather than imported as garbage addresses.
var locationTypeTokens = map[string]bool{
	"suburban": true,
	"urban":    true,
	"cbd":      true,
	"rural":    true,
}

var truthyValues = map[string]bool{
	"yes":  true,
	"true": true,
	"1":    true,
	"y":    true,
}

var saleDateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"01/02/2006",
	"1/2/2006",
}

// propertyTypeKeywords - Explicitly ordered (keyword, type) pairs, longest
// keyword first, so classification does not depend on map iteration order
// and compound names win over their substrings.
var propertyTypeKeywords = []struct {
	Keyword string
	Type    string
}{
	{"distribution", PropertyTypeIndustrial},
	{"manufacturing", PropertyTypeIndustrial},
	{"self storage", PropertyTypeSelfStorage},
	{"self-storage", PropertyTypeSelfStorage},
	{"mini storage", PropertyTypeSelfStorage},
	{"multi-family", PropertyTypeMultifamily},
	{"multifamily", PropertyTypeMultifamily},
	{"multi family", PropertyTypeMultifamily},
	{"mixed use", PropertyTypeMixedUse},
	{"mixed-use", PropertyTypeMixedUse},
	{"industrial", PropertyTypeIndustrial},
	{"healthcare", PropertyTypeMedical},
	{"restaurant", PropertyTypeRetail},
	{"apartment", PropertyTypeMultifamily},
	{"warehouse", PropertyTypeIndustrial},
	{"shopping", PropertyTypeRetail},
	{"storage", PropertyTypeSelfStorage},
	{"medical", PropertyTypeMedical},
	{"hotel", PropertyTypeHospitality},
	{"motel", PropertyTypeHospitality},
	{"office", PropertyTypeOffice},
	{"retail", PropertyTypeRetail},
	{"flex", PropertyTypeIndustrial},
	{"land", PropertyTypeLand},
	{"lot", PropertyTypeLand},
}

// MapPropertyType classifies free-text property type descriptions into the
// fixed enum. First matching keyword wins; the keyword list is ordered, so
// the tie-break is deterministic.
func MapPropertyType(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	if lower == "" {
		return PropertyTypeOther
	}

	for _, pair := range propertyTypeKeywords {
		if strings.Contains(lower, pair.Keyword) {
			return pair.Type
		}
	}
	return PropertyTypeOther
}

var stateNameToCode = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT",
	"delaware": "DE", "florida": "FL", "georgia": "GA", "hawaii": "HI",
	"idaho": "ID", "illinois": "IL", "indiana": "IN", "iowa": "IA",
	"kansas": "KS", "kentucky": "KY", "louisiana": "LA", "maine": "ME",
	"maryland": "MD", "massachusetts": "MA", "michigan": "MI",
	"minnesota": "MN", "mississippi": "MS", "missouri": "MO",
	"montana": "MT", "nebraska": "NE", "nevada": "NV",
	"new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM",
	"new york": "NY", "north carolina": "NC", "north dakota": "ND",
	"ohio": "OH", "oklahoma": "OK", "oregon": "OR", "pennsylvania": "PA",
	"rhode island": "RI", "south carolina": "SC", "south dakota": "SD",
	"tennessee": "TN", "texas": "TX", "utah": "UT", "vermont": "VT",
	"virginia": "VA", "washington": "WA", "west virginia": "WV",
	"wisconsin": "WI", "wyoming": "WY",
	"district of columbia": "DC",
}

// NormalizeStateCode maps a full state name to its 2-letter code. Inputs
// already two characters long pass through uppercased; anything else is
// returned as-is.
func NormalizeStateCode(value string) string {
	trimmed := strings.TrimSpace(value)
	if code, ok := stateNameToCode[strings.ToLower(trimmed)]; ok {
		return code
	}
	if len(trimmed) == 2 {
		return strings.ToUpper(trimmed)
	}
	return trimmed
}

// Street suffixes and directionals stripped during address normalization.
// Both long and short forms are present so "123 Main Street" and
// "123 Main St." normalize identically.
var addressStripTokens = map[string]bool{
	"street": true, "st": true,
	"avenue": true, "ave": true, "av": true,
	"boulevard": true, "blvd": true,
	"drive": true, "dr": true,
	"road": true, "rd": true,
	"lane": true, "ln": true,
	"court": true, "ct": true,
	"place": true, "pl": true,
	"parkway": true, "pkwy": true,
	"highway": true, "hwy": true,
	"circle": true, "cir": true,
	"terrace": true, "ter": true,
	"trail": true, "trl": true,
	"way": true,
	"suite": true, "ste": true, "unit": true,
	"north": true, "n": true,
	"south": true, "s": true,
	"east": true, "e": true,
	"west": true, "w": true,
	"northeast": true, "ne": true,
	"northwest": true, "nw": true,
	"southeast": true, "se": true,
	"southwest": true, "sw": true,
}

const normalizedAddressMaxLen = 80

// NormalizeAddress computes the deduplication key for an address:
// lowercase, punctuation stripped, street suffix and directional tokens
// removed, whitespace collapsed, capped at 80 characters. The function is
// idempotent: NormalizeAddress(NormalizeAddress(a)) == NormalizeAddress(a).
func NormalizeAddress(address string) string {
	lower := strings.ToLower(strings.TrimSpace(address))
	if lower == "" {
		return ""
	}

	// Strip everything but letters, digits and spaces.
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '\t':
			b.WriteByte(' ')
		}
	}

	normalized := strings.Join(stripAddressTokens(strings.Fields(b.String())), " ")
	if len(normalized) > normalizedAddressMaxLen {
		normalized = strings.TrimSpace(normalized[:normalizedAddressMaxLen])
		// Truncation can leave a trailing fragment that is itself a
		// strippable token; strip again so the result is a fixed point.
		normalized = strings.Join(stripAddressTokens(strings.Fields(normalized)), " ")
	}
	return normalized
}

func stripAddressTokens(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if addressStripTokens[token] {
			continue
		}
		kept = append(kept, token)
	}
	return kept
}

// MappedRow - One import row after column mapping and type coercion,
// split into property fields and transaction fields.
type MappedRow struct {
	Property    map[string]interface{}
	Transaction map[string]interface{}
	// SkipReason is non-empty when the row must be counted as skipped.
	SkipReason string
}

// HasTransaction reports whether the row carries enough pricing signal to
// create a Transaction: at least one of sale_price, cap_rate, noi.
func (m *MappedRow) HasTransaction() bool {
	for _, field := range []string{"sale_price", "cap_rate", "noi"} {
		if _, ok := m.Transaction[field]; ok {
			return true
		}
	}
	return false
}

// TransactionType infers the transaction type: lease if a lease rate was
// supplied, sale otherwise.
func (m *MappedRow) TransactionType() string {
	if _, ok := m.Transaction["lease_rate"]; ok {
		return TransactionTypeLease
	}
	return TransactionTypeSale
}

func coerceImportValue(field string, raw interface{}) (interface{}, error) {
	asString := strings.TrimSpace(U.GetValueAsString(raw))
	if asString == "" {
		return nil, nil
	}

	switch {
	case importIntegerFields[field]:
		parsed, err := U.ParseIntFromAny(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s", field)
		}
		return parsed, nil

	case importDecimalFields[field]:
		parsed, err := U.ParseFloatFromAny(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s", field)
		}
		return parsed, nil

	case importBooleanFields[field]:
		return truthyValues[strings.ToLower(asString)], nil

	case field == "property_type":
		return MapPropertyType(asString), nil

	case field == "state":
		return NormalizeStateCode(asString), nil

	case field == "sale_date":
		for _, layout := range saleDateLayouts {
			if parsed, err := time.Parse(layout, asString); err == nil {
				return parsed, nil
			}
		}
		return nil, errors.Errorf("field sale_date: unparseable date %q", asString)

	default:
		return asString, nil
	}
}

// MapImportRow applies the column mapping to one raw row and coerces every
// mapped value. Unknown canonical targets are dropped (the caller logs
// them once per batch); coercion failures fail the row.
func MapImportRow(columnMapping map[string]string, row map[string]interface{}) (*MappedRow, error) {
	mapped := &MappedRow{
		Property:    make(map[string]interface{}),
		Transaction: make(map[string]interface{}),
	}

	for sourceColumn, canonicalField := range columnMapping {
		if !ValidPropertyColumns[canonicalField] && !TransactionFields[canonicalField] {
			continue
		}

		raw, ok := row[sourceColumn]
		if !ok {
			continue
		}

		value, err := coerceImportValue(canonicalField, raw)
		if err != nil {
			return nil, err
		}
		if value == nil {
			continue
		}

		if TransactionFields[canonicalField] {
			mapped.Transaction[canonicalField] = value
		} else {
			mapped.Property[canonicalField] = value
		}
	}

	address, _ := mapped.Property["address"].(string)
	address = strings.TrimSpace(address)
	city, _ := mapped.Property["city"].(string)
	state, _ := mapped.Property["state"].(string)

	switch {
	case address == "":
		mapped.SkipReason = "missing address"
	case locationTypeTokens[strings.ToLower(address)]:
		mapped.SkipReason = "address is a location type token"
	case NormalizeAddress(address) == "":
		// Addresses made only of strippable tokens ("West Street") have
		// no dedup key and would duplicate on every re-import.
		mapped.SkipReason = "address has no normalizable content"
	case strings.TrimSpace(city) == "":
		mapped.SkipReason = "missing city"
	case strings.TrimSpace(state) == "":
		mapped.SkipReason = "missing state"
	}

	return mapped, nil
}
