package postgres

import (
	"net/http"
	"strings"

	C "brokerbase/config"
	"brokerbase/model/model"
	U "brokerbase/util"

	log "github.com/sirupsen/logrus"
)

func (pg *Postgres) CreatePropertyPhoto(projectID int64, photo *model.PropertyPhoto) (*model.PropertyPhoto, int) {
	if projectID == 0 || photo == nil || photo.PropertyID == "" ||
		strings.TrimSpace(photo.URL) == "" {
		return nil, http.StatusBadRequest
	}

	if _, errCode := pg.GetMasterProperty(projectID, photo.PropertyID); errCode != http.StatusFound {
		return nil, errCode
	}

	if photo.ID == "" {
		photo.ID = U.GetUUID()
	}
	photo.ProjectID = projectID

	db := C.GetServices().Db

	// New photos land at the end of the ordering.
	if photo.SortOrder == 0 {
		var count int64
		db.Model(&model.PropertyPhoto{}).
			Where("project_id = ? AND property_id = ?", projectID, photo.PropertyID).
			Count(&count)
		photo.SortOrder = int(count)
	}

	if err := db.Create(photo).Error; err != nil {
		log.WithField("project_id", projectID).WithError(err).Error("CreatePropertyPhoto failed.")
		return nil, http.StatusInternalServerError
	}

	return photo, http.StatusCreated
}

func (pg *Postgres) GetPropertyPhotos(projectID int64, propertyID string) ([]model.PropertyPhoto, int) {
	var photos []model.PropertyPhoto

	db := C.GetServices().Db
	err := db.Where("project_id = ? AND property_id = ?", projectID, propertyID).
		Order("sort_order").Find(&photos).Error
	if err != nil {
		log.WithFields(log.Fields{"project_id": projectID, "property_id": propertyID}).
			WithError(err).Error("GetPropertyPhotos failed.")
		return nil, http.StatusInternalServerError
	}

	return photos, http.StatusFound
}

// SetPrimaryPropertyPhoto marks a photo primary and clears the flag on the
// property's other photos.
func (pg *Postgres) SetPrimaryPropertyPhoto(projectID int64, propertyID, photoID string) int {
	logFields := log.Fields{"project_id": projectID, "property_id": propertyID,
		"photo_id": photoID}

	db := C.GetServices().Db

	err := db.Model(&model.PropertyPhoto{}).
		Where("project_id = ? AND property_id = ?", projectID, propertyID).
		Update("is_primary", false).Error
	if err != nil {
		log.WithFields(logFields).WithError(err).Error("Failed to clear primary flags.")
		return http.StatusInternalServerError
	}

	query := db.Model(&model.PropertyPhoto{}).
		Where("project_id = ? AND property_id = ? AND id = ?", projectID, propertyID, photoID).
		Update("is_primary", true)
	if query.Error != nil {
		log.WithFields(logFields).WithError(query.Error).Error("SetPrimaryPropertyPhoto failed.")
		return http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return http.StatusNotFound
	}
	return http.StatusAccepted
}

// ReorderPropertyPhotos rewrites sort_order to match the given id order.
// The id set must cover the property's photos exactly.
func (pg *Postgres) ReorderPropertyPhotos(projectID int64, propertyID string, photoIDs []string) int {
	logFields := log.Fields{"project_id": projectID, "property_id": propertyID}

	photos, errCode := pg.GetPropertyPhotos(projectID, propertyID)
	if errCode != http.StatusFound {
		return errCode
	}
	if len(photos) == 0 {
		return http.StatusNotFound
	}
	if len(photoIDs) != len(photos) {
		return http.StatusBadRequest
	}

	existing := make(map[string]bool, len(photos))
	for i := range photos {
		existing[photos[i].ID] = true
	}
	for _, id := range photoIDs {
		if !existing[id] {
			return http.StatusBadRequest
		}
	}

	db := C.GetServices().Db
	for position, id := range photoIDs {
		err := db.Model(&model.PropertyPhoto{}).
			Where("project_id = ? AND property_id = ? AND id = ?", projectID, propertyID, id).
			Update("sort_order", position).Error
		if err != nil {
			log.WithFields(logFields).WithError(err).Error("ReorderPropertyPhotos failed.")
			return http.StatusInternalServerError
		}
	}
	return http.StatusAccepted
}

func (pg *Postgres) DeletePropertyPhoto(projectID int64, id string) int {
	db := C.GetServices().Db
	query := db.Where("project_id = ? AND id = ?", projectID, id).
		Delete(&model.PropertyPhoto{})
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("DeletePropertyPhoto failed.")
		return http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return http.StatusNotFound
	}
	return http.StatusAccepted
}
