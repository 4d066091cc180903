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

func GetCompaniesHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get companies failed. Invalid project."})
		return
	}

	limit, offset := helpers.GetPaginationParams(c)
	search := c.Query("search")

	companies, errCode := store.GetStore().GetCompanies(projectId, search, limit, offset)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get companies failed."})
		return
	}

	c.JSON(http.StatusFound, companies)
}

func GetCompanyHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get company failed. Invalid project."})
		return
	}

	companyId := c.Params.ByName("company_id")
	if !U.IsValidUUID(companyId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid company id."})
		return
	}

	company, errCode := store.GetStore().GetCompany(projectId, companyId)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get company failed."})
		return
	}

	c.JSON(http.StatusFound, company)
}

func CreateCompanyHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Create company failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	var company model.Company

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&company); err != nil {
		errMsg := "Create company failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	created, errCode := store.GetStore().CreateCompany(projectId, &company)
	if errCode != http.StatusCreated {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Create company failed."})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func UpdateCompanyHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Update company failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	companyId := c.Params.ByName("company_id")
	if !U.IsValidUUID(companyId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid company id."})
		return
	}

	var updatable model.UpdatableCompany

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&updatable); err != nil {
		errMsg := "Update company failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	company, errCode := store.GetStore().UpdateCompany(projectId, companyId, &updatable)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Update company failed."})
		return
	}

	c.JSON(http.StatusAccepted, company)
}

func DeleteCompanyHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Delete company failed. Invalid project."})
		return
	}

	companyId := c.Params.ByName("company_id")
	if !U.IsValidUUID(companyId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid company id."})
		return
	}

	errCode := store.GetStore().DeleteCompany(projectId, companyId)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Delete company failed."})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": companyId})
}
