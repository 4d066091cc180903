package postgres

import (
	"net/http"
	"strings"

	C "brokerbase/config"
	"brokerbase/model/model"
	U "brokerbase/util"

	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
)

func (pg *Postgres) CreateCompany(projectID int64, company *model.Company) (*model.Company, int) {
	if projectID == 0 || company == nil || strings.TrimSpace(company.Name) == "" {
		return nil, http.StatusBadRequest
	}

	if company.ID == "" {
		company.ID = U.GetUUID()
	}
	company.ProjectID = projectID

	db := C.GetServices().Db
	if err := db.Create(company).Error; err != nil {
		log.WithField("project_id", projectID).WithError(err).Error("CreateCompany failed.")
		return nil, http.StatusInternalServerError
	}

	return company, http.StatusCreated
}

func (pg *Postgres) GetCompany(projectID int64, id string) (*model.Company, int) {
	var company model.Company

	db := C.GetServices().Db
	err := db.Where("project_id = ? AND id = ? AND is_deleted = ?",
		projectID, id, false).First(&company).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(err).Error("GetCompany failed.")
		return nil, http.StatusInternalServerError
	}

	return &company, http.StatusFound
}

func (pg *Postgres) GetCompanies(projectID int64, search string, limit, offset int) ([]model.Company, int) {
	var companies []model.Company

	db := C.GetServices().Db
	query := db.Where("project_id = ? AND is_deleted = ?", projectID, false)
	if search = strings.TrimSpace(search); search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	err := query.Order("name").Limit(limit).Offset(offset).Find(&companies).Error
	if err != nil {
		log.WithField("project_id", projectID).WithError(err).Error("GetCompanies failed.")
		return nil, http.StatusInternalServerError
	}

	return companies, http.StatusFound
}

func (pg *Postgres) UpdateCompany(projectID int64, id string,
	updatable *model.UpdatableCompany) (*model.Company, int) {

	fields := updatable.Fields()
	if len(fields) == 0 {
		return nil, http.StatusBadRequest
	}

	db := C.GetServices().Db
	query := db.Model(&model.Company{}).
		Where("project_id = ? AND id = ? AND is_deleted = ?", projectID, id, false).
		Updates(fields)
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("UpdateCompany failed.")
		return nil, http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return nil, http.StatusNotFound
	}

	company, errCode := pg.GetCompany(projectID, id)
	if errCode != http.StatusFound {
		return nil, errCode
	}
	return company, http.StatusAccepted
}

func (pg *Postgres) DeleteCompany(projectID int64, id string) int {
	db := C.GetServices().Db
	query := db.Model(&model.Company{}).
		Where("project_id = ? AND id = ? AND is_deleted = ?", projectID, id, false).
		Update("is_deleted", true)
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("DeleteCompany failed.")
		return http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return http.StatusNotFound
	}
	return http.StatusAccepted
}
