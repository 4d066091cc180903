package postgres

import (
	"net/http"
	"testing"

	"brokerbase/model/model"
	U "brokerbase/util"

	"github.com/stretchr/testify/assert"
)

func createTestProperty(t *testing.T, projectID int64, address, city string) *model.MasterProperty {
	pg := &Postgres{}
	property, errCode := pg.CreateMasterProperty(projectID, &model.MasterProperty{
		Address:      address,
		City:         city,
		State:        "TX",
		PropertyType: model.PropertyTypeIndustrial,
	})
	if errCode != http.StatusCreated {
		t.Fatalf("failed to create test property, code %d", errCode)
	}
	return property
}

func TestRefreshProspectListCarryOver(t *testing.T) {
	skipWithoutDB(t)

	pg := &Postgres{}
	project := createTestProject(t)

	// A unique city isolates the filter from other rows in the test db.
	city := "refreshton" + U.RandomLowerAlphaNumString(8)
	first := createTestProperty(t, project.ID, "100 Commerce Park Dr", city)
	second := createTestProperty(t, project.ID, "200 Commerce Park Dr", city)

	filters := &model.ProspectFilters{City: []string{city}}
	list, errCode := pg.CreateProspectList(project.ID, "Warehouse owners", "",
		"broker@test.com", filters)
	assert.Equal(t, http.StatusCreated, errCode)
	assert.Equal(t, int64(2), list.ResultCount)

	items, errCode := pg.GetProspectListItems(project.ID, list.ID, 50, 0)
	assert.Equal(t, http.StatusFound, errCode)
	assert.Len(t, items, 2)

	var firstItem model.ProspectListItem
	for _, item := range items {
		assert.Equal(t, model.ProspectItemStatusPending, item.Status)
		if item.PropertyID == first.ID {
			firstItem = item
		}
	}
	assert.NotEmpty(t, firstItem.ID)

	status := "contacted"
	notes := "left voicemail with owner"
	errCode = pg.UpdateProspectListItem(project.ID, list.ID, firstItem.ID,
		&model.UpdatableProspectListItem{Status: &status, Notes: &notes})
	assert.Equal(t, http.StatusAccepted, errCode)

	// A third matching property appears after the snapshot was taken.
	third := createTestProperty(t, project.ID, "300 Commerce Park Dr", city)

	refreshed, errCode := pg.RefreshProspectList(project.ID, list.ID)
	assert.Equal(t, http.StatusAccepted, errCode)
	assert.Equal(t, int64(3), refreshed.ResultCount)
	assert.NotNil(t, refreshed.LastRefreshedAt)

	items, errCode = pg.GetProspectListItems(project.ID, list.ID, 50, 0)
	assert.Equal(t, http.StatusFound, errCode)
	assert.Len(t, items, 3)

	byProperty := make(map[string]model.ProspectListItem, len(items))
	for _, item := range items {
		byProperty[item.PropertyID] = item
	}

	// Worked state survives the refresh; the new match starts pending.
	assert.Equal(t, status, byProperty[first.ID].Status)
	assert.Equal(t, notes, byProperty[first.ID].Notes)
	assert.Equal(t, model.ProspectItemStatusPending, byProperty[second.ID].Status)
	assert.Equal(t, model.ProspectItemStatusPending, byProperty[third.ID].Status)
}
