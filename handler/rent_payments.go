package handler

import (
	"encoding/json"
	"net/http"
	"time"

	mid "brokerbase/middleware"
	"brokerbase/model/model"
	"brokerbase/model/store"
	U "brokerbase/util"

	"brokerbase/handler/helpers"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const rentMonthLayout = "2006-01"

func CreateRentPaymentHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Create rent payment failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	var payment model.RentPayment

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payment); err != nil {
		errMsg := "Create rent payment failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	created, errCode := store.GetStore().CreateRentPayment(projectId, &payment)
	if errCode != http.StatusCreated {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Create rent payment failed."})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetRentPaymentsHandler lists rent payments for a property, optionally
// narrowed to one calendar month with ?month=YYYY-MM.
func GetRentPaymentsHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get rent payments failed. Invalid project."})
		return
	}

	propertyId := c.Params.ByName("property_id")
	if !U.IsValidUUID(propertyId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid property id."})
		return
	}

	if monthParam := c.Query("month"); monthParam != "" {
		month, err := time.Parse(rentMonthLayout, monthParam)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid month. Expected YYYY-MM."})
			return
		}

		payments, errCode := store.GetStore().GetRentPaymentsForMonth(projectId, propertyId, month)
		if errCode != http.StatusFound {
			c.AbortWithStatusJSON(errCode, gin.H{"error": "Get rent payments failed."})
			return
		}

		c.JSON(http.StatusFound, payments)
		return
	}

	limit, offset := helpers.GetPaginationParams(c)

	payments, errCode := store.GetStore().GetRentPayments(projectId, propertyId, limit, offset)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get rent payments failed."})
		return
	}

	c.JSON(http.StatusFound, payments)
}

func UpdateRentPaymentHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Update rent payment failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	paymentId := c.Params.ByName("payment_id")
	if !U.IsValidUUID(paymentId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid payment id."})
		return
	}

	var payment model.RentPayment

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payment); err != nil {
		errMsg := "Update rent payment failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	updated, errCode := store.GetStore().UpdateRentPayment(projectId, paymentId, &payment)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Update rent payment failed."})
		return
	}

	c.JSON(http.StatusAccepted, updated)
}
