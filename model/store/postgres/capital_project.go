package postgres

import (
	"net/http"
	"strings"

	C "brokerbase/config"
	"brokerbase/model/model"
	U "brokerbase/util"

	log "github.com/sirupsen/logrus"
)

var capitalProjectStatuses = []string{
	model.CapitalProjectStatusPlanned,
	model.CapitalProjectStatusInProgress,
	model.CapitalProjectStatusCompleted,
	model.CapitalProjectStatusOnHold,
}

func (pg *Postgres) CreateCapitalProject(projectID int64, capProject *model.CapitalProject) (*model.CapitalProject, int) {
	if projectID == 0 || capProject == nil || capProject.PropertyID == "" ||
		strings.TrimSpace(capProject.Name) == "" {
		return nil, http.StatusBadRequest
	}

	if capProject.Status == "" {
		capProject.Status = model.CapitalProjectStatusPlanned
	}
	if !U.StringValueIn(capProject.Status, capitalProjectStatuses) {
		return nil, http.StatusBadRequest
	}

	if _, errCode := pg.GetMasterProperty(projectID, capProject.PropertyID); errCode != http.StatusFound {
		return nil, errCode
	}

	if capProject.ID == "" {
		capProject.ID = U.GetUUID()
	}
	capProject.ProjectID = projectID

	db := C.GetServices().Db
	if err := db.Create(capProject).Error; err != nil {
		log.WithField("project_id", projectID).WithError(err).Error("CreateCapitalProject failed.")
		return nil, http.StatusInternalServerError
	}

	return capProject, http.StatusCreated
}

func (pg *Postgres) GetCapitalProjects(projectID int64, propertyID string,
	limit, offset int) ([]model.CapitalProject, int) {

	var capProjects []model.CapitalProject

	db := C.GetServices().Db
	query := db.Where("project_id = ? AND is_deleted = ?", projectID, false)
	if propertyID != "" {
		query = query.Where("property_id = ?", propertyID)
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&capProjects).Error
	if err != nil {
		log.WithField("project_id", projectID).WithError(err).Error("GetCapitalProjects failed.")
		return nil, http.StatusInternalServerError
	}

	return capProjects, http.StatusFound
}

func (pg *Postgres) UpdateCapitalProject(projectID int64, id string,
	capProject *model.CapitalProject) (*model.CapitalProject, int) {

	if capProject != nil && capProject.Status != "" &&
		!U.StringValueIn(capProject.Status, capitalProjectStatuses) {
		return nil, http.StatusBadRequest
	}

	db := C.GetServices().Db
	query := db.Model(&model.CapitalProject{}).
		Where("project_id = ? AND id = ? AND is_deleted = ?", projectID, id, false).
		Updates(capProject)
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("UpdateCapitalProject failed.")
		return nil, http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return nil, http.StatusNotFound
	}

	var updated model.CapitalProject
	if err := db.Where("project_id = ? AND id = ?", projectID, id).First(&updated).Error; err != nil {
		return nil, http.StatusInternalServerError
	}
	return &updated, http.StatusAccepted
}

func (pg *Postgres) DeleteCapitalProject(projectID int64, id string) int {
	db := C.GetServices().Db
	query := db.Model(&model.CapitalProject{}).
		Where("project_id = ? AND id = ? AND is_deleted = ?", projectID, id, false).
		Update("is_deleted", true)
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("DeleteCapitalProject failed.")
		return http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return http.StatusNotFound
	}
	return http.StatusAccepted
}
