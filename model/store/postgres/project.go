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

func (pg *Postgres) CreateProject(project *model.Project) (*model.Project, int) {
	if project.Name == "" {
		log.Error("CreateProject failed. Name not provided.")
		return nil, http.StatusBadRequest
	}

	if project.PrivateToken == "" {
		project.PrivateToken = U.RandomString(model.ProjectTokenLength)
	}

	db := C.GetServices().Db
	if err := db.Create(project).Error; err != nil {
		log.WithError(err).Error("CreateProject failed.")
		return nil, http.StatusInternalServerError
	}

	return project, http.StatusCreated
}

func (pg *Postgres) GetProject(id int64) (*model.Project, int) {
	var project model.Project

	db := C.GetServices().Db
	if err := db.Where("id = ?", id).First(&project).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithError(err).WithField("project_id", id).Error("GetProject failed.")
		return nil, http.StatusInternalServerError
	}

	return &project, http.StatusFound
}

func (pg *Postgres) GetProjectByToken(token string) (*model.Project, int) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, http.StatusBadRequest
	}

	var project model.Project

	db := C.GetServices().Db
	if err := db.Where("private_token = ?", token).First(&project).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithError(err).Error("GetProjectByToken failed.")
		return nil, http.StatusInternalServerError
	}

	return &project, http.StatusFound
}
