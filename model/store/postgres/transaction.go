package postgres

import (
	"net/http"

	C "brokerbase/config"
	"brokerbase/model/model"
	U "brokerbase/util"

	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
)

func (pg *Postgres) CreateTransaction(projectID int64, transaction *model.Transaction) (*model.Transaction, int) {
	logFields := log.Fields{"project_id": projectID}

	if projectID == 0 || transaction == nil || transaction.PropertyID == "" {
		return nil, http.StatusBadRequest
	}
	if transaction.TransactionType != model.TransactionTypeSale &&
		transaction.TransactionType != model.TransactionTypeLease {
		log.WithFields(logFields).Error("CreateTransaction failed. Invalid transaction type.")
		return nil, http.StatusBadRequest
	}

	// Transactions attach to live properties only.
	if _, errCode := pg.GetMasterProperty(projectID, transaction.PropertyID); errCode != http.StatusFound {
		return nil, errCode
	}

	if transaction.ID == "" {
		transaction.ID = U.GetUUID()
	}
	transaction.ProjectID = projectID

	db := C.GetServices().Db
	if err := db.Create(transaction).Error; err != nil {
		log.WithFields(logFields).WithError(err).Error("CreateTransaction failed.")
		return nil, http.StatusInternalServerError
	}

	return transaction, http.StatusCreated
}

func (pg *Postgres) GetTransaction(projectID int64, id string) (*model.Transaction, int) {
	var transaction model.Transaction

	db := C.GetServices().Db
	err := db.Where("project_id = ? AND id = ?", projectID, id).First(&transaction).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(err).Error("GetTransaction failed.")
		return nil, http.StatusInternalServerError
	}

	return &transaction, http.StatusFound
}

func (pg *Postgres) GetTransactionsByProperty(projectID int64, propertyID string,
	limit, offset int) ([]model.Transaction, int) {

	var transactions []model.Transaction

	db := C.GetServices().Db
	err := db.Where("project_id = ? AND property_id = ?", projectID, propertyID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&transactions).Error
	if err != nil {
		log.WithFields(log.Fields{"project_id": projectID, "property_id": propertyID}).
			WithError(err).Error("GetTransactionsByProperty failed.")
		return nil, http.StatusInternalServerError
	}

	return transactions, http.StatusFound
}
