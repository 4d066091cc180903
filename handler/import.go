package handler

import (
	"encoding/json"
	"net/http"

	mid "brokerbase/middleware"
	"brokerbase/model/model"
	"brokerbase/model/store"
	U "brokerbase/util"

	"brokerbase/handler/helpers"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ImportPropertiesHandler runs the bulk import pipeline for rows already
// parsed out of a CSV by the client. The actor recorded on created records
// comes from the authenticated project scope.
func ImportPropertiesHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Import failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	var request model.ImportRequest

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil {
		errMsg := "Import failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	if request.CreatedBy == "" {
		request.CreatedBy = U.GetScopeByKeyAsString(c, mid.SCOPE_PROJECT_NAME)
	}

	result, errCode := store.GetStore().ImportProperties(projectId, &request)
	if errCode != http.StatusOK {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Import failed."})
		return
	}

	c.JSON(http.StatusOK, result)
}

func GetImportBatchesHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get import batches failed. Invalid project."})
		return
	}

	limit, offset := helpers.GetPaginationParams(c)

	batches, errCode := store.GetStore().GetImportBatches(projectId, limit, offset)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get import batches failed."})
		return
	}

	c.JSON(http.StatusFound, batches)
}

func GetImportBatchHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get import batch failed. Invalid project."})
		return
	}

	batchId := c.Params.ByName("batch_id")
	if !U.IsValidUUID(batchId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid batch id."})
		return
	}

	batch, errCode := store.GetStore().GetImportBatch(projectId, batchId)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get import batch failed."})
		return
	}

	c.JSON(http.StatusFound, batch)
}
