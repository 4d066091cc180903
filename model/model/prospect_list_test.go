package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func TestBuildFilterQueryEmpty(t *testing.T) {
	filters := &ProspectFilters{}
	conditions, args := filters.BuildFilterQuery()
	assert.Equal(t, "", conditions)
	assert.Len(t, args, 0)
	assert.True(t, filters.IsEmpty())
}

func TestBuildFilterQueryMultiSelect(t *testing.T) {
	filters := &ProspectFilters{
		PropertyType: []string{PropertyTypeIndustrial, PropertyTypeOffice},
		City:         []string{"Dallas", "Fort Worth"},
	}

	conditions, args := filters.BuildFilterQuery()
	assert.Equal(t, "p.property_type IN (?) AND LOWER(p.city) IN (?)", conditions)
	assert.Len(t, args, 2)
	assert.Equal(t, []string{PropertyTypeIndustrial, PropertyTypeOffice}, args[0])
	// City membership is case-insensitive.
	assert.Equal(t, []string{"dallas", "fort worth"}, args[1])
	assert.False(t, filters.IsEmpty())
}

func TestBuildFilterQueryRanges(t *testing.T) {
	filters := &ProspectFilters{
		BuildingSizeMin: int64Ptr(50000),
		BuildingSizeMax: int64Ptr(200000),
		SalePriceMax:    float64Ptr(10000000),
		CapRateMin:      float64Ptr(5.5),
	}

	conditions, args := filters.BuildFilterQuery()
	assert.Equal(t,
		"p.building_size_sf >= ? AND p.building_size_sf <= ? AND t.sale_price <= ? AND t.cap_rate >= ?",
		conditions)
	assert.Equal(t, []interface{}{int64(50000), int64(200000), float64(10000000), 5.5}, args)
}

func TestBuildFilterQueryOwnerAndSearch(t *testing.T) {
	filters := &ProspectFilters{
		OwnerName: "Blackstone",
		Search:    "Commerce",
	}

	conditions, args := filters.BuildFilterQuery()
	assert.Contains(t, conditions, "LOWER(p.owner_name) LIKE ?")
	assert.Contains(t, conditions,
		"(LOWER(p.address) LIKE ? OR LOWER(p.name) LIKE ? OR LOWER(p.city) LIKE ?)")
	assert.Equal(t, []interface{}{"%blackstone%", "%commerce%", "%commerce%", "%commerce%"}, args)
}

func TestBuildFilterQueryCombined(t *testing.T) {
	filters := &ProspectFilters{
		PropertyType:    []string{PropertyTypeIndustrial},
		State:           []string{"TX"},
		BuildingSizeMin: int64Ptr(50000),
		OwnerName:       " Acme Holdings ",
	}

	conditions, args := filters.BuildFilterQuery()

	// All predicate families AND together.
	assert.Equal(t, 3, strings.Count(conditions, " AND "))
	assert.Len(t, args, 4)
	// Owner match trims and lowercases.
	assert.Equal(t, "%acme holdings%", args[3])
}
