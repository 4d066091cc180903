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

func CreateCapitalProjectHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Create capital project failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	var capProject model.CapitalProject

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&capProject); err != nil {
		errMsg := "Create capital project failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	created, errCode := store.GetStore().CreateCapitalProject(projectId, &capProject)
	if errCode != http.StatusCreated {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Create capital project failed."})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func GetCapitalProjectsHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get capital projects failed. Invalid project."})
		return
	}

	propertyId := c.Query("property_id")
	if propertyId != "" && !U.IsValidUUID(propertyId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid property id."})
		return
	}

	limit, offset := helpers.GetPaginationParams(c)

	capProjects, errCode := store.GetStore().GetCapitalProjects(projectId, propertyId, limit, offset)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get capital projects failed."})
		return
	}

	c.JSON(http.StatusFound, capProjects)
}

func UpdateCapitalProjectHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Update capital project failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	capProjectId := c.Params.ByName("capital_project_id")
	if !U.IsValidUUID(capProjectId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid capital project id."})
		return
	}

	var capProject model.CapitalProject

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&capProject); err != nil {
		errMsg := "Update capital project failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	updated, errCode := store.GetStore().UpdateCapitalProject(projectId, capProjectId, &capProject)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Update capital project failed."})
		return
	}

	c.JSON(http.StatusAccepted, updated)
}

func DeleteCapitalProjectHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Delete capital project failed. Invalid project."})
		return
	}

	capProjectId := c.Params.ByName("capital_project_id")
	if !U.IsValidUUID(capProjectId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid capital project id."})
		return
	}

	errCode := store.GetStore().DeleteCapitalProject(projectId, capProjectId)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Delete capital project failed."})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": capProjectId})
}
