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

type DealContactPayload struct {
	ContactID string `json:"contact_id"`
	Role      string `json:"role"`
}

func GetDealsHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get deals failed. Invalid project."})
		return
	}

	stage := c.Query("stage")
	if stage != "" && !model.IsValidDealStage(stage) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid deal stage."})
		return
	}

	limit, offset := helpers.GetPaginationParams(c)

	deals, errCode := store.GetStore().GetDeals(projectId, stage, limit, offset)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get deals failed."})
		return
	}

	c.JSON(http.StatusFound, deals)
}

func GetDealHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get deal failed. Invalid project."})
		return
	}

	dealId := c.Params.ByName("deal_id")
	if !U.IsValidUUID(dealId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid deal id."})
		return
	}

	deal, errCode := store.GetStore().GetDeal(projectId, dealId)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get deal failed."})
		return
	}

	c.JSON(http.StatusFound, deal)
}

func CreateDealHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Create deal failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	var deal model.CrmDeal

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&deal); err != nil {
		errMsg := "Create deal failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	created, errCode := store.GetStore().CreateDeal(projectId, &deal)
	if errCode != http.StatusCreated {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Create deal failed."})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func UpdateDealHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Update deal failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	dealId := c.Params.ByName("deal_id")
	if !U.IsValidUUID(dealId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid deal id."})
		return
	}

	var updatable model.UpdatableCrmDeal

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&updatable); err != nil {
		errMsg := "Update deal failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	deal, errCode := store.GetStore().UpdateDeal(projectId, dealId, &updatable)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Update deal failed."})
		return
	}

	c.JSON(http.StatusAccepted, deal)
}

func DeleteDealHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Delete deal failed. Invalid project."})
		return
	}

	dealId := c.Params.ByName("deal_id")
	if !U.IsValidUUID(dealId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid deal id."})
		return
	}

	errCode := store.GetStore().DeleteDeal(projectId, dealId)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Delete deal failed."})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": dealId})
}

// UpdateDealStageHandler moves a deal to a new stage and records the
// transition on the deal's stage history.
func UpdateDealStageHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Update deal stage failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	dealId := c.Params.ByName("deal_id")
	if !U.IsValidUUID(dealId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid deal id."})
		return
	}

	var payload model.DealStageTransitionPayload

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		errMsg := "Update deal stage failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	if !model.IsValidDealStage(payload.Stage) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid deal stage."})
		return
	}

	if payload.ChangedBy == "" {
		payload.ChangedBy = U.GetScopeByKeyAsString(c, mid.SCOPE_PROJECT_NAME)
	}

	deal, errCode := store.GetStore().UpdateDealStage(projectId, dealId, &payload)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Update deal stage failed."})
		return
	}

	c.JSON(http.StatusAccepted, deal)
}

func GetDealStageHistoryHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get deal stage history failed. Invalid project."})
		return
	}

	dealId := c.Params.ByName("deal_id")
	if !U.IsValidUUID(dealId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid deal id."})
		return
	}

	history, errCode := store.GetStore().GetDealStageHistory(projectId, dealId)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get deal stage history failed."})
		return
	}

	c.JSON(http.StatusFound, history)
}

func AddDealContactHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Add deal contact failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	dealId := c.Params.ByName("deal_id")
	if !U.IsValidUUID(dealId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid deal id."})
		return
	}

	var payload DealContactPayload

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		errMsg := "Add deal contact failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	if !U.IsValidUUID(payload.ContactID) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid contact id."})
		return
	}

	dealContact, errCode := store.GetStore().AddDealContact(projectId, dealId, payload.ContactID, payload.Role)
	if errCode != http.StatusCreated {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Add deal contact failed."})
		return
	}

	c.JSON(http.StatusCreated, dealContact)
}

func RemoveDealContactHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Remove deal contact failed. Invalid project."})
		return
	}

	dealId := c.Params.ByName("deal_id")
	contactId := c.Params.ByName("contact_id")
	if !U.IsValidUUID(dealId) || !U.IsValidUUID(contactId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid deal or contact id."})
		return
	}

	errCode := store.GetStore().RemoveDealContact(projectId, dealId, contactId)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Remove deal contact failed."})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"deal_id": dealId, "contact_id": contactId})
}

func GetContactsForDealHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get deal contacts failed. Invalid project."})
		return
	}

	dealId := c.Params.ByName("deal_id")
	if !U.IsValidUUID(dealId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid deal id."})
		return
	}

	contacts, errCode := store.GetStore().GetContactsForDeal(projectId, dealId)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get deal contacts failed."})
		return
	}

	c.JSON(http.StatusFound, contacts)
}
