package postgres

import (
	"net/http"
	"strings"

	C "brokerbase/config"
	"brokerbase/model/model"
	U "brokerbase/util"

	log "github.com/sirupsen/logrus"
)

func (pg *Postgres) CreateBudget(projectID int64, budget *model.Budget) (*model.Budget, int) {
	if projectID == 0 || budget == nil || budget.PropertyID == "" ||
		strings.TrimSpace(budget.Name) == "" {
		return nil, http.StatusBadRequest
	}

	if _, errCode := pg.GetMasterProperty(projectID, budget.PropertyID); errCode != http.StatusFound {
		return nil, errCode
	}

	if budget.ID == "" {
		budget.ID = U.GetUUID()
	}
	budget.ProjectID = projectID

	db := C.GetServices().Db
	if err := db.Create(budget).Error; err != nil {
		log.WithField("project_id", projectID).WithError(err).Error("CreateBudget failed.")
		return nil, http.StatusInternalServerError
	}

	return budget, http.StatusCreated
}

func (pg *Postgres) GetBudgets(projectID int64, propertyID string,
	limit, offset int) ([]model.Budget, int) {

	var budgets []model.Budget

	db := C.GetServices().Db
	query := db.Where("project_id = ? AND is_deleted = ?", projectID, false)
	if propertyID != "" {
		query = query.Where("property_id = ?", propertyID)
	}

	err := query.Order("year DESC, name").Limit(limit).Offset(offset).Find(&budgets).Error
	if err != nil {
		log.WithField("project_id", projectID).WithError(err).Error("GetBudgets failed.")
		return nil, http.StatusInternalServerError
	}

	return budgets, http.StatusFound
}

func (pg *Postgres) UpdateBudget(projectID int64, id string, budget *model.Budget) (*model.Budget, int) {
	db := C.GetServices().Db
	query := db.Model(&model.Budget{}).
		Where("project_id = ? AND id = ? AND is_deleted = ?", projectID, id, false).
		Updates(budget)
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("UpdateBudget failed.")
		return nil, http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return nil, http.StatusNotFound
	}

	var updated model.Budget
	if err := db.Where("project_id = ? AND id = ?", projectID, id).First(&updated).Error; err != nil {
		return nil, http.StatusInternalServerError
	}
	return &updated, http.StatusAccepted
}

func (pg *Postgres) DeleteBudget(projectID int64, id string) int {
	db := C.GetServices().Db
	query := db.Model(&model.Budget{}).
		Where("project_id = ? AND id = ? AND is_deleted = ?", projectID, id, false).
		Update("is_deleted", true)
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("DeleteBudget failed.")
		return http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return http.StatusNotFound
	}
	return http.StatusAccepted
}

func (pg *Postgres) CreateExpense(projectID int64, expense *model.Expense) (*model.Expense, int) {
	if projectID == 0 || expense == nil || expense.PropertyID == "" || expense.Amount == 0 {
		return nil, http.StatusBadRequest
	}

	if _, errCode := pg.GetMasterProperty(projectID, expense.PropertyID); errCode != http.StatusFound {
		return nil, errCode
	}

	if expense.ID == "" {
		expense.ID = U.GetUUID()
	}
	expense.ProjectID = projectID

	db := C.GetServices().Db
	if err := db.Create(expense).Error; err != nil {
		log.WithField("project_id", projectID).WithError(err).Error("CreateExpense failed.")
		return nil, http.StatusInternalServerError
	}

	return expense, http.StatusCreated
}

func (pg *Postgres) GetExpenses(projectID int64, propertyID string,
	limit, offset int) ([]model.Expense, int) {

	var expenses []model.Expense

	db := C.GetServices().Db
	query := db.Where("project_id = ? AND is_deleted = ?", projectID, false)
	if propertyID != "" {
		query = query.Where("property_id = ?", propertyID)
	}

	err := query.Order("incurred_at DESC").Limit(limit).Offset(offset).Find(&expenses).Error
	if err != nil {
		log.WithField("project_id", projectID).WithError(err).Error("GetExpenses failed.")
		return nil, http.StatusInternalServerError
	}

	return expenses, http.StatusFound
}

func (pg *Postgres) UpdateExpense(projectID int64, id string, expense *model.Expense) (*model.Expense, int) {
	db := C.GetServices().Db
	query := db.Model(&model.Expense{}).
		Where("project_id = ? AND id = ? AND is_deleted = ?", projectID, id, false).
		Updates(expense)
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("UpdateExpense failed.")
		return nil, http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return nil, http.StatusNotFound
	}

	var updated model.Expense
	if err := db.Where("project_id = ? AND id = ?", projectID, id).First(&updated).Error; err != nil {
		return nil, http.StatusInternalServerError
	}
	return &updated, http.StatusAccepted
}

func (pg *Postgres) DeleteExpense(projectID int64, id string) int {
	db := C.GetServices().Db
	query := db.Model(&model.Expense{}).
		Where("project_id = ? AND id = ? AND is_deleted = ?", projectID, id, false).
		Update("is_deleted", true)
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("DeleteExpense failed.")
		return http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return http.StatusNotFound
	}
	return http.StatusAccepted
}
