package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddress(t *testing.T) {
	// Variants of the same street address must collapse to one key.
	variants := []string{
		"123 Main Street",
		"123 Main St.",
		"123 MAIN ST",
		"  123 main street  ",
	}
	expected := NormalizeAddress(variants[0])
	assert.NotEmpty(t, expected)
	for _, v := range variants {
		assert.Equal(t, expected, NormalizeAddress(v), v)
	}

	// Directionals and suite tokens are stripped.
	assert.Equal(t, NormalizeAddress("450 W Industrial Pkwy"),
		NormalizeAddress("450 West Industrial Parkway, Suite 200"))

	// Idempotence.
	once := NormalizeAddress("7200 N. Lamar Blvd, Unit B")
	assert.Equal(t, once, NormalizeAddress(once))

	assert.Equal(t, "", NormalizeAddress(""))
	assert.Equal(t, "", NormalizeAddress("   "))

	// Capped at 80 characters.
	long := NormalizeAddress(strings.Repeat("abcdefghij ", 12))
	assert.LessOrEqual(t, len(long), 80)

	// Addresses made entirely of strippable tokens normalize to nothing.
	assert.Equal(t, "", NormalizeAddress("West Street"))
	assert.Equal(t, "", NormalizeAddress("N. Ave, Suite"))
}

func TestNormalizeAddressIdempotentAfterTruncation(t *testing.T) {
	// The 80-char cap can cut a token down to a fragment that is itself a
	// strippable token ("stove" -> "s"); the result must still be a fixed
	// point.
	input := strings.Repeat("a", 78) + " stove yard"
	once := NormalizeAddress(input)
	assert.Equal(t, once, NormalizeAddress(once))
	assert.Equal(t, strings.Repeat("a", 78), once)
}

func TestNormalizeAddressKeepsDistinctAddresses(t *testing.T) {
	a := NormalizeAddress("123 Main Street")
	b := NormalizeAddress("125 Main Street")
	assert.NotEqual(t, a, b)
}

func TestMapPropertyType(t *testing.T) {
	assert.Equal(t, PropertyTypeIndustrial, MapPropertyType("Warehouse / Distribution"))
	assert.Equal(t, PropertyTypeIndustrial, MapPropertyType("Flex Space"))
	assert.Equal(t, PropertyTypeOffice, MapPropertyType("Class A Office"))
	assert.Equal(t, PropertyTypeRetail, MapPropertyType("Strip Retail"))
	assert.Equal(t, PropertyTypeRetail, MapPropertyType("Restaurant"))
	assert.Equal(t, PropertyTypeMultifamily, MapPropertyType("Garden Apartment"))
	assert.Equal(t, PropertyTypeMultifamily, MapPropertyType("Multi-Family"))
	assert.Equal(t, PropertyTypeLand, MapPropertyType("Vacant Land"))
	assert.Equal(t, PropertyTypeHospitality, MapPropertyType("Boutique Hotel"))
	assert.Equal(t, PropertyTypeMedical, MapPropertyType("Medical Office"))
	assert.Equal(t, PropertyTypeMixedUse, MapPropertyType("Mixed Use Development"))
	assert.Equal(t, PropertyTypeOther, MapPropertyType("Unclassifiable"))
	assert.Equal(t, PropertyTypeOther, MapPropertyType(""))

	// Compound keywords win over their substrings regardless of casing.
	assert.Equal(t, PropertyTypeSelfStorage, MapPropertyType("SELF STORAGE FACILITY"))
	assert.Equal(t, PropertyTypeSelfStorage, MapPropertyType("Mini Storage"))
}

func TestNormalizeStateCode(t *testing.T) {
	assert.Equal(t, "TX", NormalizeStateCode("Texas"))
	assert.Equal(t, "TX", NormalizeStateCode("tx"))
	assert.Equal(t, "NC", NormalizeStateCode("North Carolina"))
	assert.Equal(t, "DC", NormalizeStateCode("District of Columbia"))
	assert.Equal(t, "Atlantis", NormalizeStateCode("Atlantis"))
}

func TestMapImportRow(t *testing.T) {
	mapping := map[string]string{
		"Street Address": "address",
		"City":           "city",
		"ST":             "state",
		"Type":           "property_type",
		"SF":             "building_size_sf",
		"Price":          "sale_price",
		"Closed":         "sale_date",
		"Rail":           "rail_served",
		"Bogus":          "not_a_field",
	}

	row := map[string]interface{}{
		"Street Address": "4800 Commerce Dr",
		"City":           "Dallas",
		"ST":             "Texas",
		"Type":           "Warehouse",
		"SF":             "125,000",
		"Price":          "$4,500,000",
		"Closed":         "2024-03-15",
		"Rail":           "Yes",
		"Bogus":          "dropped",
	}

	mapped, err := MapImportRow(mapping, row)
	assert.Nil(t, err)
	assert.Empty(t, mapped.SkipReason)

	assert.Equal(t, "4800 Commerce Dr", mapped.Property["address"])
	assert.Equal(t, "TX", mapped.Property["state"])
	assert.Equal(t, PropertyTypeIndustrial, mapped.Property["property_type"])
	assert.Equal(t, int64(125000), mapped.Property["building_size_sf"])
	assert.Equal(t, true, mapped.Property["rail_served"])
	assert.NotContains(t, mapped.Property, "not_a_field")

	assert.Equal(t, float64(4500000), mapped.Transaction["sale_price"])
	saleDate, ok := mapped.Transaction["sale_date"].(time.Time)
	assert.True(t, ok)
	assert.Equal(t, 2024, saleDate.Year())

	assert.True(t, mapped.HasTransaction())
	assert.Equal(t, TransactionTypeSale, mapped.TransactionType())
}

func TestMapImportRowSkipReasons(t *testing.T) {
	mapping := map[string]string{
		"Address": "address",
		"City":    "city",
		"State":   "state",
	}

	mapped, err := MapImportRow(mapping, map[string]interface{}{
		"City": "Austin", "State": "TX",
	})
	assert.Nil(t, err)
	assert.Equal(t, "missing address", mapped.SkipReason)

	// A location-type token in the address column means the source export
	// mis-mapped its columns.
	mapped, err = MapImportRow(mapping, map[string]interface{}{
		"Address": "Suburban", "City": "Austin", "State": "TX",
	})
	assert.Nil(t, err)
	assert.Equal(t, "address is a location type token", mapped.SkipReason)

	// An address made only of suffix/directional tokens has an empty
	// dedup key; importing it would create a fresh duplicate each run.
	mapped, err = MapImportRow(mapping, map[string]interface{}{
		"Address": "West Street", "City": "Austin", "State": "TX",
	})
	assert.Nil(t, err)
	assert.Equal(t, "address has no normalizable content", mapped.SkipReason)

	mapped, err = MapImportRow(mapping, map[string]interface{}{
		"Address": "100 Congress Ave", "State": "TX",
	})
	assert.Nil(t, err)
	assert.Equal(t, "missing city", mapped.SkipReason)

	mapped, err = MapImportRow(mapping, map[string]interface{}{
		"Address": "100 Congress Ave", "City": "Austin",
	})
	assert.Nil(t, err)
	assert.Equal(t, "missing state", mapped.SkipReason)
}

func TestMapImportRowCoercionFailure(t *testing.T) {
	mapping := map[string]string{
		"Address": "address",
		"SF":      "building_size_sf",
	}

	_, err := MapImportRow(mapping, map[string]interface{}{
		"Address": "100 Congress Ave",
		"SF":      "not a number",
	})
	assert.NotNil(t, err)
}

func TestMappedRowTransactionRouting(t *testing.T) {
	noPricing := &MappedRow{Transaction: map[string]interface{}{"buyer": "Acme"}}
	assert.False(t, noPricing.HasTransaction())

	capRateOnly := &MappedRow{Transaction: map[string]interface{}{"cap_rate": 6.5}}
	assert.True(t, capRateOnly.HasTransaction())
	assert.Equal(t, TransactionTypeSale, capRateOnly.TransactionType())

	lease := &MappedRow{Transaction: map[string]interface{}{
		"noi": 120000.0, "lease_rate": 14.5,
	}}
	assert.True(t, lease.HasTransaction())
	assert.Equal(t, TransactionTypeLease, lease.TransactionType())
}
