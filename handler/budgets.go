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

func CreateBudgetHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Create budget failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	var budget model.Budget

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&budget); err != nil {
		errMsg := "Create budget failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	created, errCode := store.GetStore().CreateBudget(projectId, &budget)
	if errCode != http.StatusCreated {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Create budget failed."})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func GetBudgetsHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get budgets failed. Invalid project."})
		return
	}

	propertyId := c.Query("property_id")
	if propertyId != "" && !U.IsValidUUID(propertyId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid property id."})
		return
	}

	limit, offset := helpers.GetPaginationParams(c)

	budgets, errCode := store.GetStore().GetBudgets(projectId, propertyId, limit, offset)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get budgets failed."})
		return
	}

	c.JSON(http.StatusFound, budgets)
}

func UpdateBudgetHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Update budget failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	budgetId := c.Params.ByName("budget_id")
	if !U.IsValidUUID(budgetId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid budget id."})
		return
	}

	var budget model.Budget

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&budget); err != nil {
		errMsg := "Update budget failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	updated, errCode := store.GetStore().UpdateBudget(projectId, budgetId, &budget)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Update budget failed."})
		return
	}

	c.JSON(http.StatusAccepted, updated)
}

func DeleteBudgetHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Delete budget failed. Invalid project."})
		return
	}

	budgetId := c.Params.ByName("budget_id")
	if !U.IsValidUUID(budgetId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid budget id."})
		return
	}

	errCode := store.GetStore().DeleteBudget(projectId, budgetId)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Delete budget failed."})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": budgetId})
}

func CreateExpenseHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Create expense failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	var expense model.Expense

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&expense); err != nil {
		errMsg := "Create expense failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	created, errCode := store.GetStore().CreateExpense(projectId, &expense)
	if errCode != http.StatusCreated {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Create expense failed."})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func GetExpensesHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get expenses failed. Invalid project."})
		return
	}

	propertyId := c.Query("property_id")
	if propertyId != "" && !U.IsValidUUID(propertyId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid property id."})
		return
	}

	limit, offset := helpers.GetPaginationParams(c)

	expenses, errCode := store.GetStore().GetExpenses(projectId, propertyId, limit, offset)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get expenses failed."})
		return
	}

	c.JSON(http.StatusFound, expenses)
}

func UpdateExpenseHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Update expense failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	expenseId := c.Params.ByName("expense_id")
	if !U.IsValidUUID(expenseId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid expense id."})
		return
	}

	var expense model.Expense

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&expense); err != nil {
		errMsg := "Update expense failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	updated, errCode := store.GetStore().UpdateExpense(projectId, expenseId, &expense)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Update expense failed."})
		return
	}

	c.JSON(http.StatusAccepted, updated)
}

func DeleteExpenseHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Delete expense failed. Invalid project."})
		return
	}

	expenseId := c.Params.ByName("expense_id")
	if !U.IsValidUUID(expenseId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid expense id."})
		return
	}

	errCode := store.GetStore().DeleteExpense(projectId, expenseId)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Delete expense failed."})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": expenseId})
}
