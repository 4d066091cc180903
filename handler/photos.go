package handler

import (
	"encoding/json"
	"net/http"

	mid "brokerbase/middleware"
	"brokerbase/model/model"
	"brokerbase/model/store"
	U "brokerbase/util"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func CreatePropertyPhotoHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Create photo failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	propertyId := c.Params.ByName("property_id")
	if !U.IsValidUUID(propertyId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid property id."})
		return
	}

	var photo model.PropertyPhoto

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&photo); err != nil {
		errMsg := "Create photo failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}
	photo.PropertyID = propertyId

	created, errCode := store.GetStore().CreatePropertyPhoto(projectId, &photo)
	if errCode != http.StatusCreated {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Create photo failed."})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func GetPropertyPhotosHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get photos failed. Invalid project."})
		return
	}

	propertyId := c.Params.ByName("property_id")
	if !U.IsValidUUID(propertyId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid property id."})
		return
	}

	photos, errCode := store.GetStore().GetPropertyPhotos(projectId, propertyId)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get photos failed."})
		return
	}

	c.JSON(http.StatusFound, photos)
}

type PhotoOrderPayload struct {
	PhotoIDs []string `json:"photo_ids"`
}

// ReorderPropertyPhotosHandler rewrites the gallery order. The payload
// must list every photo of the property exactly once.
func ReorderPropertyPhotosHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Reorder photos failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	propertyId := c.Params.ByName("property_id")
	if !U.IsValidUUID(propertyId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid property id."})
		return
	}

	var payload PhotoOrderPayload

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		errMsg := "Reorder photos failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	if len(payload.PhotoIDs) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Photo ids are required."})
		return
	}

	errCode := store.GetStore().ReorderPropertyPhotos(projectId, propertyId, payload.PhotoIDs)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Reorder photos failed."})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"property_id": propertyId})
}

func SetPrimaryPropertyPhotoHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Set primary photo failed. Invalid project."})
		return
	}

	propertyId := c.Params.ByName("property_id")
	photoId := c.Params.ByName("photo_id")
	if !U.IsValidUUID(propertyId) || !U.IsValidUUID(photoId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid property or photo id."})
		return
	}

	errCode := store.GetStore().SetPrimaryPropertyPhoto(projectId, propertyId, photoId)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Set primary photo failed."})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": photoId})
}

func DeletePropertyPhotoHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Delete photo failed. Invalid project."})
		return
	}

	photoId := c.Params.ByName("photo_id")
	if !U.IsValidUUID(photoId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid photo id."})
		return
	}

	errCode := store.GetStore().DeletePropertyPhoto(projectId, photoId)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Delete photo failed."})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": photoId})
}
