package postgres

import (
	"net/http"
	"strings"
	"time"

	C "brokerbase/config"
	"brokerbase/model/model"
	U "brokerbase/util"

	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
)

func (pg *Postgres) CreateMasterProperty(projectID int64, property *model.MasterProperty) (*model.MasterProperty, int) {
	logFields := log.Fields{"project_id": projectID}

	if projectID == 0 || property == nil {
		return nil, http.StatusBadRequest
	}
	if strings.TrimSpace(property.Address) == "" {
		log.WithFields(logFields).Error("CreateMasterProperty failed. Address not provided.")
		return nil, http.StatusBadRequest
	}

	if property.ID == "" {
		property.ID = U.GetUUID()
	}
	property.ProjectID = projectID
	property.AddressNormalized = model.NormalizeAddress(property.Address)
	property.State = model.NormalizeStateCode(property.State)
	if property.PropertyType == "" {
		property.PropertyType = model.PropertyTypeOther
	}

	db := C.GetServices().Db
	if err := db.Create(property).Error; err != nil {
		log.WithFields(logFields).WithError(err).Error("CreateMasterProperty failed.")
		return nil, http.StatusInternalServerError
	}

	return property, http.StatusCreated
}

func (pg *Postgres) GetMasterProperty(projectID int64, id string) (*model.MasterProperty, int) {
	var property model.MasterProperty

	db := C.GetServices().Db
	err := db.Where("project_id = ? AND id = ? AND is_deleted = ?",
		projectID, id, false).First(&property).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(err).Error("GetMasterProperty failed.")
		return nil, http.StatusInternalServerError
	}

	return &property, http.StatusFound
}

func (pg *Postgres) GetMasterProperties(projectID int64, search string,
	limit, offset int) ([]model.MasterProperty, int) {

	var properties []model.MasterProperty

	db := C.GetServices().Db
	query := db.Where("project_id = ? AND is_deleted = ?", projectID, false)
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(address) LIKE ? OR LOWER(name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(owner_name) LIKE ?",
			like, like, like, like)
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&properties).Error
	if err != nil {
		log.WithField("project_id", projectID).WithError(err).
			Error("GetMasterProperties failed.")
		return nil, http.StatusInternalServerError
	}

	return properties, http.StatusFound
}

// GetMasterPropertyByNormalizedAddress - Dedup lookup used by the import
// pipeline: non-deleted property matching normalized address +
// case-insensitive city + state.
func (pg *Postgres) GetMasterPropertyByNormalizedAddress(projectID int64,
	addressNormalized, city, state string) (*model.MasterProperty, int) {

	if addressNormalized == "" {
		return nil, http.StatusBadRequest
	}

	var property model.MasterProperty

	db := C.GetServices().Db
	err := db.Where(
		"project_id = ? AND address_normalized = ? AND LOWER(city) = ? AND state = ? AND is_deleted = ?",
		projectID, addressNormalized, strings.ToLower(strings.TrimSpace(city)),
		model.NormalizeStateCode(state), false).First(&property).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithFields(log.Fields{"project_id": projectID, "address_normalized": addressNormalized}).
			WithError(err).Error("GetMasterPropertyByNormalizedAddress failed.")
		return nil, http.StatusInternalServerError
	}

	return &property, http.StatusFound
}

func (pg *Postgres) UpdateMasterProperty(projectID int64, id string,
	updatable *model.UpdatableMasterProperty) (*model.MasterProperty, int) {

	logFields := log.Fields{"project_id": projectID, "id": id}

	fields := updatable.Fields()
	if len(fields) == 0 {
		return nil, http.StatusBadRequest
	}

	// Address edits shift the dedup key with them.
	if address, ok := fields["address"].(string); ok {
		fields["address_normalized"] = model.NormalizeAddress(address)
	}
	if state, ok := fields["state"].(string); ok {
		fields["state"] = model.NormalizeStateCode(state)
	}

	db := C.GetServices().Db
	query := db.Model(&model.MasterProperty{}).
		Where("project_id = ? AND id = ? AND is_deleted = ?", projectID, id, false).
		Updates(fields)
	if query.Error != nil {
		log.WithFields(logFields).WithError(query.Error).Error("UpdateMasterProperty failed.")
		return nil, http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return nil, http.StatusNotFound
	}

	return pg.getUpdatedMasterProperty(projectID, id)
}

func (pg *Postgres) getUpdatedMasterProperty(projectID int64, id string) (*model.MasterProperty, int) {
	property, errCode := pg.GetMasterProperty(projectID, id)
	if errCode != http.StatusFound {
		return nil, errCode
	}
	return property, http.StatusAccepted
}

func (pg *Postgres) DeleteMasterProperty(projectID int64, id string) int {
	db := C.GetServices().Db
	query := db.Model(&model.MasterProperty{}).
		Where("project_id = ? AND id = ? AND is_deleted = ?", projectID, id, false).
		Update("is_deleted", true)
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("DeleteMasterProperty failed.")
		return http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return http.StatusNotFound
	}
	return http.StatusAccepted
}

func (pg *Postgres) VerifyMasterProperty(projectID int64, id string) int {
	db := C.GetServices().Db
	query := db.Model(&model.MasterProperty{}).
		Where("project_id = ? AND id = ? AND is_deleted = ?", projectID, id, false).
		Update("verified_at", time.Now())
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("VerifyMasterProperty failed.")
		return http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return http.StatusNotFound
	}
	return http.StatusAccepted
}
