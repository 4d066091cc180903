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

func GetMasterPropertiesHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get properties failed. Invalid project."})
		return
	}

	limit, offset := helpers.GetPaginationParams(c)
	search := c.Query("search")

	properties, errCode := store.GetStore().GetMasterProperties(projectId, search, limit, offset)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get properties failed."})
		return
	}

	c.JSON(http.StatusFound, properties)
}

func GetMasterPropertyHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get property failed. Invalid project."})
		return
	}

	propertyId := c.Params.ByName("property_id")
	if !U.IsValidUUID(propertyId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid property id."})
		return
	}

	property, errCode := store.GetStore().GetMasterProperty(projectId, propertyId)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get property failed."})
		return
	}

	c.JSON(http.StatusFound, property)
}

func CreateMasterPropertyHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Create property failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	var property model.MasterProperty

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&property); err != nil {
		errMsg := "Create property failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	created, errCode := store.GetStore().CreateMasterProperty(projectId, &property)
	if errCode != http.StatusCreated {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Create property failed."})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func UpdateMasterPropertyHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Update property failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	propertyId := c.Params.ByName("property_id")
	if !U.IsValidUUID(propertyId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid property id."})
		return
	}

	var updatable model.UpdatableMasterProperty

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&updatable); err != nil {
		errMsg := "Update property failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	property, errCode := store.GetStore().UpdateMasterProperty(projectId, propertyId, &updatable)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Update property failed."})
		return
	}

	c.JSON(http.StatusAccepted, property)
}

func DeleteMasterPropertyHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Delete property failed. Invalid project."})
		return
	}

	propertyId := c.Params.ByName("property_id")
	if !U.IsValidUUID(propertyId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid property id."})
		return
	}

	errCode := store.GetStore().DeleteMasterProperty(projectId, propertyId)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Delete property failed."})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": propertyId})
}

func VerifyMasterPropertyHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Verify property failed. Invalid project."})
		return
	}

	propertyId := c.Params.ByName("property_id")
	if !U.IsValidUUID(propertyId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid property id."})
		return
	}

	errCode := store.GetStore().VerifyMasterProperty(projectId, propertyId)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Verify property failed."})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": propertyId})
}
