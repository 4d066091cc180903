package postgres

import (
	"net/http"
	"strings"

	C "brokerbase/config"
	"brokerbase/model/model"
	U "brokerbase/util"

	log "github.com/sirupsen/logrus"
)

func (pg *Postgres) CreateVendor(projectID int64, vendor *model.Vendor) (*model.Vendor, int) {
	if projectID == 0 || vendor == nil || strings.TrimSpace(vendor.Name) == "" {
		return nil, http.StatusBadRequest
	}

	if vendor.ID == "" {
		vendor.ID = U.GetUUID()
	}
	vendor.ProjectID = projectID

	db := C.GetServices().Db
	if err := db.Create(vendor).Error; err != nil {
		log.WithField("project_id", projectID).WithError(err).Error("CreateVendor failed.")
		return nil, http.StatusInternalServerError
	}

	return vendor, http.StatusCreated
}

func (pg *Postgres) GetVendors(projectID int64, limit, offset int) ([]model.Vendor, int) {
	var vendors []model.Vendor

	db := C.GetServices().Db
	err := db.Where("project_id = ? AND is_deleted = ?", projectID, false).
		Order("name").Limit(limit).Offset(offset).Find(&vendors).Error
	if err != nil {
		log.WithField("project_id", projectID).WithError(err).Error("GetVendors failed.")
		return nil, http.StatusInternalServerError
	}

	return vendors, http.StatusFound
}

func (pg *Postgres) UpdateVendor(projectID int64, id string, vendor *model.Vendor) (*model.Vendor, int) {
	db := C.GetServices().Db
	query := db.Model(&model.Vendor{}).
		Where("project_id = ? AND id = ? AND is_deleted = ?", projectID, id, false).
		Updates(vendor)
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("UpdateVendor failed.")
		return nil, http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return nil, http.StatusNotFound
	}

	var updated model.Vendor
	if err := db.Where("project_id = ? AND id = ?", projectID, id).First(&updated).Error; err != nil {
		return nil, http.StatusInternalServerError
	}
	return &updated, http.StatusAccepted
}

func (pg *Postgres) DeleteVendor(projectID int64, id string) int {
	db := C.GetServices().Db
	query := db.Model(&model.Vendor{}).
		Where("project_id = ? AND id = ? AND is_deleted = ?", projectID, id, false).
		Update("is_deleted", true)
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("DeleteVendor failed.")
		return http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return http.StatusNotFound
	}
	return http.StatusAccepted
}
