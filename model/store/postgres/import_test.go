package postgres

import (
	"net/http"
	"testing"

	C "brokerbase/config"
	"brokerbase/model/model"
	U "brokerbase/util"

	"github.com/stretchr/testify/assert"
)

func TestImportPropertiesDedupOnReimport(t *testing.T) {
	skipWithoutDB(t)

	pg := &Postgres{}
	project := createTestProject(t)

	street := U.RandomLowerAlphaNumString(12)
	address := "4100 " + street + " Blvd"
	request := &model.ImportRequest{
		Source: "costar",
		ColumnMapping: map[string]string{
			"Address": "address",
			"City":    "city",
			"State":   "state",
			"Type":    "property_type",
			"Price":   "sale_price",
		},
		Rows: []map[string]interface{}{{
			"Address": address,
			"City":    "Austin",
			"State":   "TX",
			"Type":    "industrial warehouse",
			"Price":   "2500000",
		}},
		CreatedBy: "importer@test.com",
	}

	result, errCode := pg.ImportProperties(project.ID, request)
	assert.Equal(t, http.StatusOK, errCode)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 0, result.Updated)
	assert.Len(t, result.PropertiesCreated, 1)
	assert.Len(t, result.TransactionsCreated, 1)

	// The same row again must match on the dedup key and update in place.
	again, errCode := pg.ImportProperties(project.ID, request)
	assert.Equal(t, http.StatusOK, errCode)
	assert.Equal(t, 0, again.Imported)
	assert.Equal(t, 1, again.Updated)
	assert.Equal(t, result.PropertiesCreated, again.PropertiesUpdated)

	var count int64
	db := C.GetServices().Db
	err := db.Model(&model.MasterProperty{}).
		Where("project_id = ? AND address_normalized = ? AND LOWER(city) = ? AND state = ? AND is_deleted = ?",
			project.ID, model.NormalizeAddress(address), "austin", "TX", false).
		Count(&count).Error
	assert.Nil(t, err)
	assert.Equal(t, int64(1), count)
}

func TestImportPropertiesSkipsUnnormalizableAddress(t *testing.T) {
	skipWithoutDB(t)

	pg := &Postgres{}
	project := createTestProject(t)

	// An address made only of strippable tokens has no dedup key. It must
	// be skipped, not inserted fresh on every run.
	request := &model.ImportRequest{
		Source:        "csv",
		ColumnMapping: map[string]string{"Address": "address", "City": "city", "State": "state"},
		Rows: []map[string]interface{}{{
			"Address": "West Street",
			"City":    "Austin",
			"State":   "TX",
		}},
	}

	for i := 0; i < 2; i++ {
		result, errCode := pg.ImportProperties(project.ID, request)
		assert.Equal(t, http.StatusOK, errCode)
		assert.Equal(t, 0, result.Imported)
		assert.Equal(t, 0, result.Updated)
		assert.Equal(t, 1, result.Skipped)
	}

	var count int64
	db := C.GetServices().Db
	err := db.Model(&model.MasterProperty{}).
		Where("project_id = ?", project.ID).Count(&count).Error
	assert.Nil(t, err)
	assert.Equal(t, int64(0), count)
}
