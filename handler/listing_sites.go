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

type ListingSitePublishPayload struct {
	Published bool `json:"published"`
}

func CreateListingSiteHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Create listing site failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	var site model.ListingSite

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&site); err != nil {
		errMsg := "Create listing site failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	created, errCode := store.GetStore().CreateListingSite(projectId, &site)
	if errCode != http.StatusCreated {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Create listing site failed."})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func GetListingSitesHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get listing sites failed. Invalid project."})
		return
	}

	limit, offset := helpers.GetPaginationParams(c)

	sites, errCode := store.GetStore().GetListingSites(projectId, limit, offset)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get listing sites failed."})
		return
	}

	c.JSON(http.StatusFound, sites)
}

func GetListingSiteHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get listing site failed. Invalid project."})
		return
	}

	siteId := c.Params.ByName("site_id")
	if !U.IsValidUUID(siteId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid site id."})
		return
	}

	site, errCode := store.GetStore().GetListingSite(projectId, siteId)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get listing site failed."})
		return
	}

	c.JSON(http.StatusFound, site)
}

func UpdateListingSiteHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Update listing site failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	siteId := c.Params.ByName("site_id")
	if !U.IsValidUUID(siteId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid site id."})
		return
	}

	var updatable model.UpdatableListingSite

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&updatable); err != nil {
		errMsg := "Update listing site failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	site, errCode := store.GetStore().UpdateListingSite(projectId, siteId, &updatable)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Update listing site failed."})
		return
	}

	c.JSON(http.StatusAccepted, site)
}

func PublishListingSiteHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Publish listing site failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	siteId := c.Params.ByName("site_id")
	if !U.IsValidUUID(siteId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid site id."})
		return
	}

	var payload ListingSitePublishPayload

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		errMsg := "Publish listing site failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	errCode := store.GetStore().SetListingSitePublished(projectId, siteId, payload.Published)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Publish listing site failed."})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": siteId, "published": payload.Published})
}

func DeleteListingSiteHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Delete listing site failed. Invalid project."})
		return
	}

	siteId := c.Params.ByName("site_id")
	if !U.IsValidUUID(siteId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid site id."})
		return
	}

	errCode := store.GetStore().DeleteListingSite(projectId, siteId)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Delete listing site failed."})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": siteId})
}

func GetListingLeadsHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get listing leads failed. Invalid project."})
		return
	}

	siteId := c.Params.ByName("site_id")
	if !U.IsValidUUID(siteId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid site id."})
		return
	}

	limit, offset := helpers.GetPaginationParams(c)

	leads, errCode := store.GetStore().GetListingLeads(projectId, siteId, limit, offset)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get listing leads failed."})
		return
	}

	c.JSON(http.StatusFound, leads)
}

// GetPublicListingHandler serves the published microsite payload. No auth,
// published sites only.
func GetPublicListingHandler(c *gin.Context) {
	slug := c.Params.ByName("slug")
	if slug == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid listing slug."})
		return
	}

	listing, errCode := store.GetStore().GetPublicListingBySlug(slug)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Listing not found."})
		return
	}

	c.JSON(http.StatusOK, listing)
}

// CreateListingLeadHandler captures a lead submitted on a public microsite.
func CreateListingLeadHandler(c *gin.Context) {
	slug := c.Params.ByName("slug")
	if slug == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid listing slug."})
		return
	}
	logCtx := log.WithField("slug", slug)

	var lead model.ListingLead

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&lead); err != nil {
		errMsg := "Create lead failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	lead.SourceIP = c.ClientIP()

	created, errCode := store.GetStore().CreateListingLead(slug, &lead)
	if errCode != http.StatusCreated {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Create lead failed."})
		return
	}

	c.JSON(http.StatusCreated, created)
}
