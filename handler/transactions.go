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

func CreateTransactionHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Create transaction failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	var transaction model.Transaction

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&transaction); err != nil {
		errMsg := "Create transaction failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	created, errCode := store.GetStore().CreateTransaction(projectId, &transaction)
	if errCode != http.StatusCreated {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Create transaction failed."})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func GetTransactionHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get transaction failed. Invalid project."})
		return
	}

	transactionId := c.Params.ByName("transaction_id")
	if !U.IsValidUUID(transactionId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction id."})
		return
	}

	transaction, errCode := store.GetStore().GetTransaction(projectId, transactionId)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get transaction failed."})
		return
	}

	c.JSON(http.StatusFound, transaction)
}

func GetTransactionsByPropertyHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get transactions failed. Invalid project."})
		return
	}

	propertyId := c.Params.ByName("property_id")
	if !U.IsValidUUID(propertyId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid property id."})
		return
	}

	limit, offset := helpers.GetPaginationParams(c)

	transactions, errCode := store.GetStore().GetTransactionsByProperty(projectId, propertyId, limit, offset)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get transactions failed."})
		return
	}

	c.JSON(http.StatusFound, transactions)
}
