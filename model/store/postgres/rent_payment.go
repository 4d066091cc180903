package postgres

import (
	"net/http"
	"strings"
	"time"

	C "brokerbase/config"
	"brokerbase/model/model"
	U "brokerbase/util"

	"github.com/jinzhu/now"
	log "github.com/sirupsen/logrus"
)

func (pg *Postgres) CreateRentPayment(projectID int64, payment *model.RentPayment) (*model.RentPayment, int) {
	if projectID == 0 || payment == nil || payment.PropertyID == "" ||
		strings.TrimSpace(payment.TenantName) == "" || payment.DueDate.IsZero() {
		return nil, http.StatusBadRequest
	}

	if _, errCode := pg.GetMasterProperty(projectID, payment.PropertyID); errCode != http.StatusFound {
		return nil, errCode
	}

	if payment.ID == "" {
		payment.ID = U.GetUUID()
	}
	payment.ProjectID = projectID
	if payment.Status == "" {
		payment.Status = model.RentPaymentStatusPending
	}

	db := C.GetServices().Db
	if err := db.Create(payment).Error; err != nil {
		log.WithField("project_id", projectID).WithError(err).Error("CreateRentPayment failed.")
		return nil, http.StatusInternalServerError
	}

	return payment, http.StatusCreated
}

func (pg *Postgres) GetRentPayments(projectID int64, propertyID string,
	limit, offset int) ([]model.RentPayment, int) {

	var payments []model.RentPayment

	db := C.GetServices().Db
	query := db.Where("project_id = ?", projectID)
	if propertyID != "" {
		query = query.Where("property_id = ?", propertyID)
	}

	err := query.Order("due_date DESC").Limit(limit).Offset(offset).Find(&payments).Error
	if err != nil {
		log.WithField("project_id", projectID).WithError(err).Error("GetRentPayments failed.")
		return nil, http.StatusInternalServerError
	}

	return payments, http.StatusFound
}

// GetRentPaymentsForMonth returns payments due inside the calendar month
// containing the given time.
func (pg *Postgres) GetRentPaymentsForMonth(projectID int64, propertyID string,
	month time.Time) ([]model.RentPayment, int) {

	window := now.New(month)
	start := window.BeginningOfMonth()
	end := window.EndOfMonth()

	var payments []model.RentPayment

	db := C.GetServices().Db
	query := db.Where("project_id = ? AND due_date >= ? AND due_date <= ?",
		projectID, start, end)
	if propertyID != "" {
		query = query.Where("property_id = ?", propertyID)
	}

	err := query.Order("due_date").Find(&payments).Error
	if err != nil {
		log.WithFields(log.Fields{"project_id": projectID, "month": start}).
			WithError(err).Error("GetRentPaymentsForMonth failed.")
		return nil, http.StatusInternalServerError
	}

	return payments, http.StatusFound
}

func (pg *Postgres) UpdateRentPayment(projectID int64, id string,
	payment *model.RentPayment) (*model.RentPayment, int) {

	if payment != nil && payment.Status != "" &&
		!U.StringValueIn(payment.Status, []string{
			model.RentPaymentStatusPending, model.RentPaymentStatusPaid,
			model.RentPaymentStatusLate, model.RentPaymentStatusPartial,
			model.RentPaymentStatusWrittenOff}) {
		return nil, http.StatusBadRequest
	}

	db := C.GetServices().Db
	query := db.Model(&model.RentPayment{}).
		Where("project_id = ? AND id = ?", projectID, id).
		Updates(payment)
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("UpdateRentPayment failed.")
		return nil, http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return nil, http.StatusNotFound
	}

	var updated model.RentPayment
	if err := db.Where("project_id = ? AND id = ?", projectID, id).First(&updated).Error; err != nil {
		return nil, http.StatusInternalServerError
	}
	return &updated, http.StatusAccepted
}
