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

func CreateVendorHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Create vendor failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	var vendor model.Vendor

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&vendor); err != nil {
		errMsg := "Create vendor failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	created, errCode := store.GetStore().CreateVendor(projectId, &vendor)
	if errCode != http.StatusCreated {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Create vendor failed."})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func GetVendorsHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get vendors failed. Invalid project."})
		return
	}

	limit, offset := helpers.GetPaginationParams(c)

	vendors, errCode := store.GetStore().GetVendors(projectId, limit, offset)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get vendors failed."})
		return
	}

	c.JSON(http.StatusFound, vendors)
}

func UpdateVendorHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Update vendor failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	vendorId := c.Params.ByName("vendor_id")
	if !U.IsValidUUID(vendorId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor id."})
		return
	}

	var vendor model.Vendor

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&vendor); err != nil {
		errMsg := "Update vendor failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	updated, errCode := store.GetStore().UpdateVendor(projectId, vendorId, &vendor)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Update vendor failed."})
		return
	}

	c.JSON(http.StatusAccepted, updated)
}

func DeleteVendorHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Delete vendor failed. Invalid project."})
		return
	}

	vendorId := c.Params.ByName("vendor_id")
	if !U.IsValidUUID(vendorId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor id."})
		return
	}

	errCode := store.GetStore().DeleteVendor(projectId, vendorId)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Delete vendor failed."})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": vendorId})
}
