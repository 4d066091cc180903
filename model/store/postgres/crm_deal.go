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

func (pg *Postgres) CreateDeal(projectID int64, deal *model.CrmDeal) (*model.CrmDeal, int) {
	logFields := log.Fields{"project_id": projectID}

	if projectID == 0 || deal == nil || strings.TrimSpace(deal.Name) == "" {
		return nil, http.StatusBadRequest
	}

	if deal.Stage == "" {
		deal.Stage = model.DealStageProspecting
	}
	if !model.IsValidDealStage(deal.Stage) {
		log.WithFields(logFields).WithField("stage", deal.Stage).
			Error("CreateDeal failed. Invalid stage.")
		return nil, http.StatusBadRequest
	}

	if deal.ID == "" {
		deal.ID = U.GetUUID()
	}
	deal.ProjectID = projectID
	deal.StageEnteredAt = time.Now()

	db := C.GetServices().Db
	if err := db.Create(deal).Error; err != nil {
		log.WithFields(logFields).WithError(err).Error("CreateDeal failed.")
		return nil, http.StatusInternalServerError
	}

	return deal, http.StatusCreated
}

func (pg *Postgres) GetDeal(projectID int64, id string) (*model.CrmDeal, int) {
	var deal model.CrmDeal

	db := C.GetServices().Db
	err := db.Where("project_id = ? AND id = ? AND is_deleted = ?",
		projectID, id, false).First(&deal).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(err).Error("GetDeal failed.")
		return nil, http.StatusInternalServerError
	}

	return &deal, http.StatusFound
}

func (pg *Postgres) GetDeals(projectID int64, stage string, limit, offset int) ([]model.CrmDeal, int) {
	var deals []model.CrmDeal

	db := C.GetServices().Db
	query := db.Where("project_id = ? AND is_deleted = ?", projectID, false)
	if stage != "" {
		query = query.Where("stage = ?", stage)
	}

	err := query.Order("updated_at DESC").Limit(limit).Offset(offset).Find(&deals).Error
	if err != nil {
		log.WithField("project_id", projectID).WithError(err).Error("GetDeals failed.")
		return nil, http.StatusInternalServerError
	}

	return deals, http.StatusFound
}

func (pg *Postgres) UpdateDeal(projectID int64, id string,
	updatable *model.UpdatableCrmDeal) (*model.CrmDeal, int) {

	fields := updatable.Fields()
	if len(fields) == 0 {
		return nil, http.StatusBadRequest
	}

	db := C.GetServices().Db
	query := db.Model(&model.CrmDeal{}).
		Where("project_id = ? AND id = ? AND is_deleted = ?", projectID, id, false).
		Updates(fields)
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("UpdateDeal failed.")
		return nil, http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return nil, http.StatusNotFound
	}

	deal, errCode := pg.GetDeal(projectID, id)
	if errCode != http.StatusFound {
		return nil, errCode
	}
	return deal, http.StatusAccepted
}

func (pg *Postgres) DeleteDeal(projectID int64, id string) int {
	db := C.GetServices().Db
	query := db.Model(&model.CrmDeal{}).
		Where("project_id = ? AND id = ? AND is_deleted = ?", projectID, id, false).
		Update("is_deleted", true)
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("DeleteDeal failed.")
		return http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return http.StatusNotFound
	}
	return http.StatusAccepted
}

// UpdateDealStage moves a deal to a new stage. Any stage is reachable from
// any other; ordering is a UI concern. Exactly one history row is appended
// per transition, carrying the stage the deal held immediately before.
func (pg *Postgres) UpdateDealStage(projectID int64, id string,
	payload *model.DealStageTransitionPayload) (*model.CrmDeal, int) {

	logFields := log.Fields{"project_id": projectID, "deal_id": id}

	if payload == nil || !model.IsValidDealStage(payload.Stage) {
		log.WithFields(logFields).Error("UpdateDealStage failed. Invalid stage.")
		return nil, http.StatusBadRequest
	}

	deal, errCode := pg.GetDeal(projectID, id)
	if errCode != http.StatusFound {
		return nil, errCode
	}

	now := time.Now()
	history := &model.DealStageHistory{
		ID:        U.GetUUID(),
		ProjectID: projectID,
		DealID:    id,
		FromStage: deal.Stage,
		ToStage:   payload.Stage,
		Notes:     payload.Notes,
		ChangedBy: payload.ChangedBy,
	}

	db := C.GetServices().Db
	if err := db.Create(history).Error; err != nil {
		log.WithFields(logFields).WithError(err).Error("Failed to append stage history.")
		return nil, http.StatusInternalServerError
	}

	err := db.Model(&model.CrmDeal{}).
		Where("project_id = ? AND id = ?", projectID, id).
		Updates(map[string]interface{}{
			"stage":            payload.Stage,
			"stage_entered_at": now,
		}).Error
	if err != nil {
		log.WithFields(logFields).WithError(err).Error("UpdateDealStage failed.")
		return nil, http.StatusInternalServerError
	}

	deal.Stage = payload.Stage
	deal.StageEnteredAt = now
	return deal, http.StatusAccepted
}

func (pg *Postgres) GetDealStageHistory(projectID int64, dealID string) ([]model.DealStageHistory, int) {
	var history []model.DealStageHistory

	db := C.GetServices().Db
	err := db.Where("project_id = ? AND deal_id = ?", projectID, dealID).
		Order("created_at").Find(&history).Error
	if err != nil {
		log.WithFields(log.Fields{"project_id": projectID, "deal_id": dealID}).
			WithError(err).Error("GetDealStageHistory failed.")
		return nil, http.StatusInternalServerError
	}

	return history, http.StatusFound
}

func (pg *Postgres) AddDealContact(projectID int64, dealID, contactID, role string) (*model.DealContact, int) {
	logFields := log.Fields{"project_id": projectID, "deal_id": dealID,
		"contact_id": contactID}

	if _, errCode := pg.GetDeal(projectID, dealID); errCode != http.StatusFound {
		return nil, errCode
	}
	if _, errCode := pg.GetContact(projectID, contactID); errCode != http.StatusFound {
		return nil, errCode
	}

	db := C.GetServices().Db

	var count int64
	db.Model(&model.DealContact{}).
		Where("project_id = ? AND deal_id = ? AND contact_id = ?",
			projectID, dealID, contactID).Count(&count)
	if count > 0 {
		return nil, http.StatusConflict
	}

	dealContact := &model.DealContact{
		ID:        U.GetUUID(),
		ProjectID: projectID,
		DealID:    dealID,
		ContactID: contactID,
		Role:      role,
	}
	if err := db.Create(dealContact).Error; err != nil {
		log.WithFields(logFields).WithError(err).Error("AddDealContact failed.")
		return nil, http.StatusInternalServerError
	}

	return dealContact, http.StatusCreated
}

func (pg *Postgres) RemoveDealContact(projectID int64, dealID, contactID string) int {
	db := C.GetServices().Db
	query := db.Where("project_id = ? AND deal_id = ? AND contact_id = ?",
		projectID, dealID, contactID).Delete(&model.DealContact{})
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "deal_id": dealID}).
			WithError(query.Error).Error("RemoveDealContact failed.")
		return http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return http.StatusNotFound
	}
	return http.StatusAccepted
}

func (pg *Postgres) GetContactsForDeal(projectID int64, dealID string) ([]model.Contact, int) {
	var contacts []model.Contact

	db := C.GetServices().Db
	err := db.Table("contacts").
		Joins("JOIN deal_contacts ON deal_contacts.contact_id = contacts.id").
		Where("deal_contacts.project_id = ? AND deal_contacts.deal_id = ? AND contacts.is_deleted = ?",
			projectID, dealID, false).
		Find(&contacts).Error
	if err != nil {
		log.WithFields(log.Fields{"project_id": projectID, "deal_id": dealID}).
			WithError(err).Error("GetContactsForDeal failed.")
		return nil, http.StatusInternalServerError
	}

	return contacts, http.StatusFound
}
