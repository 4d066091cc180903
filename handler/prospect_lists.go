package handler

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	mid "brokerbase/middleware"
	"brokerbase/model/model"
	"brokerbase/model/store"
	U "brokerbase/util"

	"brokerbase/handler/helpers"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type ProspectListRequestPayload struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	CreatedBy   string                 `json:"created_by"`
	Filters     *model.ProspectFilters `json:"filters"`
}

// PreviewProspectFiltersHandler evaluates a filter set against the current
// property inventory without persisting anything.
func PreviewProspectFiltersHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Preview failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	var filters model.ProspectFilters

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&filters); err != nil {
		errMsg := "Preview failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	preview, errCode := store.GetStore().PreviewProspectFilters(projectId, &filters)
	if errCode != http.StatusOK {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Preview failed."})
		return
	}

	c.JSON(http.StatusOK, preview)
}

func CreateProspectListHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Create prospect list failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	var payload ProspectListRequestPayload

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		errMsg := "Create prospect list failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	if payload.Name == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "List name is required."})
		return
	}

	list, errCode := store.GetStore().CreateProspectList(projectId,
		payload.Name, payload.Description, payload.CreatedBy, payload.Filters)
	if errCode != http.StatusCreated {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Create prospect list failed."})
		return
	}

	c.JSON(http.StatusCreated, list)
}

func GetProspectListsHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get prospect lists failed. Invalid project."})
		return
	}

	limit, offset := helpers.GetPaginationParams(c)

	lists, errCode := store.GetStore().GetProspectLists(projectId, limit, offset)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get prospect lists failed."})
		return
	}

	c.JSON(http.StatusFound, lists)
}

func GetProspectListHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get prospect list failed. Invalid project."})
		return
	}

	listId := c.Params.ByName("list_id")
	if !U.IsValidUUID(listId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid list id."})
		return
	}

	list, errCode := store.GetStore().GetProspectList(projectId, listId)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get prospect list failed."})
		return
	}

	c.JSON(http.StatusFound, list)
}

// RefreshProspectListHandler re-runs the list's saved filters and replaces
// the snapshot. Status and notes carry over for properties still matching.
func RefreshProspectListHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Refresh prospect list failed. Invalid project."})
		return
	}

	listId := c.Params.ByName("list_id")
	if !U.IsValidUUID(listId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid list id."})
		return
	}

	list, errCode := store.GetStore().RefreshProspectList(projectId, listId)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Refresh prospect list failed."})
		return
	}

	c.JSON(http.StatusAccepted, list)
}

func DeleteProspectListHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Delete prospect list failed. Invalid project."})
		return
	}

	listId := c.Params.ByName("list_id")
	if !U.IsValidUUID(listId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid list id."})
		return
	}

	errCode := store.GetStore().DeleteProspectList(projectId, listId)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Delete prospect list failed."})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": listId})
}

func GetProspectListItemsHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get prospect list items failed. Invalid project."})
		return
	}

	listId := c.Params.ByName("list_id")
	if !U.IsValidUUID(listId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid list id."})
		return
	}

	limit, offset := helpers.GetPaginationParams(c)

	items, errCode := store.GetStore().GetProspectListItems(projectId, listId, limit, offset)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get prospect list items failed."})
		return
	}

	c.JSON(http.StatusFound, items)
}

func UpdateProspectListItemHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Update prospect list item failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	listId := c.Params.ByName("list_id")
	itemId := c.Params.ByName("item_id")
	if !U.IsValidUUID(listId) || !U.IsValidUUID(itemId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid list or item id."})
		return
	}

	var updatable model.UpdatableProspectListItem

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&updatable); err != nil {
		errMsg := "Update prospect list item failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	errCode := store.GetStore().UpdateProspectListItem(projectId, listId, itemId, &updatable)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Update prospect list item failed."})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": itemId})
}

// ExportProspectListHandler streams the list snapshot as a CSV attachment.
func ExportProspectListHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Export prospect list failed. Invalid project."})
		return
	}
	logCtx := log.WithFields(log.Fields{"project_id": projectId})

	listId := c.Params.ByName("list_id")
	if !U.IsValidUUID(listId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid list id."})
		return
	}

	rows, errCode := store.GetStore().GetProspectListExportRows(projectId, listId)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Export prospect list failed."})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"prospect_list_%s.csv\"", listId))

	writer := csv.NewWriter(c.Writer)
	if err := writer.Write(model.ProspectExportHeader); err != nil {
		logCtx.WithError(err).Error("Export prospect list failed. Csv write failed.")
		return
	}

	for i := range rows {
		row := &rows[i]
		record := []string{
			row.Address,
			row.City,
			row.State,
			row.Zip,
			row.PropertyType,
			strconv.FormatInt(row.BuildingSizeSF, 10),
			strconv.FormatFloat(row.LotSizeAcres, 'f', -1, 64),
			strconv.FormatInt(row.YearBuilt, 10),
			row.OwnerName,
			row.Status,
			row.Notes,
		}
		if err := writer.Write(record); err != nil {
			logCtx.WithError(err).Error("Export prospect list failed. Csv write failed.")
			return
		}
	}
	writer.Flush()
}
