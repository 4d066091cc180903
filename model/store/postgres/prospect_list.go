package postgres

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	C "brokerbase/config"
	"brokerbase/model/model"
	U "brokerbase/util"

	"github.com/jinzhu/gorm"
	"github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
)

// prospectFromClause - The denormalized property-with-latest-transaction
// view every prospect query runs against. Property columns alias p, latest
// transaction columns alias t.
const prospectFromClause = `
FROM master_properties p
LEFT JOIN LATERAL (
	SELECT sale_price, price_per_sf, cap_rate
	FROM transactions
	WHERE transactions.property_id = p.id
	ORDER BY transactions.created_at DESC
	LIMIT 1
) t ON true
`

const prospectSelectColumns = `
p.id, p.name, p.address, p.city, p.state, p.zip, p.submarket,
p.property_type, p.building_size_sf, p.lot_size_acres, p.year_built,
p.owner_name,
COALESCE(t.sale_price, 0) AS sale_price,
COALESCE(t.price_per_sf, 0) AS price_per_sf,
COALESCE(t.cap_rate, 0) AS cap_rate
`

func prospectWhereClause(projectID int64, filters *model.ProspectFilters) (string, []interface{}) {
	where := "WHERE p.project_id = ? AND p.is_deleted = false"
	args := []interface{}{projectID}

	conditions, conditionArgs := filters.BuildFilterQuery()
	if conditions != "" {
		where = where + " AND " + conditions
		args = append(args, conditionArgs...)
	}
	return where, args
}

func (pg *Postgres) countProspectRows(projectID int64, filters *model.ProspectFilters) (int64, error) {
	where, args := prospectWhereClause(projectID, filters)

	var result struct{ Count int64 }
	db := C.GetServices().Db
	err := db.Raw("SELECT COUNT(*) AS count "+prospectFromClause+where, args...).
		Scan(&result).Error
	return result.Count, err
}

func (pg *Postgres) queryProspectRows(projectID int64, filters *model.ProspectFilters,
	limit int) ([]model.ProspectPropertyRow, error) {

	where, args := prospectWhereClause(projectID, filters)

	stmnt := "SELECT " + prospectSelectColumns + prospectFromClause + where +
		" ORDER BY p.created_at DESC"
	if limit > 0 {
		stmnt = stmnt + " LIMIT ?"
		args = append(args, limit)
	}

	var rows []model.ProspectPropertyRow
	db := C.GetServices().Db
	err := db.Raw(stmnt, args...).Scan(&rows).Error
	return rows, err
}

func (pg *Postgres) queryProspectIDs(projectID int64, filters *model.ProspectFilters) ([]string, error) {
	where, args := prospectWhereClause(projectID, filters)

	rows, err := C.GetServices().Db.
		Raw("SELECT p.id "+prospectFromClause+where+" ORDER BY p.created_at DESC", args...).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (pg *Postgres) PreviewProspectFilters(projectID int64,
	filters *model.ProspectFilters) (*model.ProspectPreview, int) {

	logFields := log.Fields{"project_id": projectID}

	if projectID == 0 || filters == nil {
		return nil, http.StatusBadRequest
	}

	count, err := pg.countProspectRows(projectID, filters)
	if err != nil {
		log.WithFields(logFields).WithError(err).Error("Prospect preview count failed.")
		return nil, http.StatusInternalServerError
	}

	rows, err := pg.queryProspectRows(projectID, filters, model.ProspectPreviewPageSize)
	if err != nil {
		log.WithFields(logFields).WithError(err).Error("Prospect preview query failed.")
		return nil, http.StatusInternalServerError
	}

	return &model.ProspectPreview{Count: count, Rows: rows}, http.StatusOK
}

func (pg *Postgres) CreateProspectList(projectID int64, name, description,
	createdBy string, filters *model.ProspectFilters) (*model.ProspectList, int) {

	logFields := log.Fields{"project_id": projectID, "name": name}

	if projectID == 0 || strings.TrimSpace(name) == "" || filters == nil {
		return nil, http.StatusBadRequest
	}

	filtersJSON, err := json.Marshal(filters)
	if err != nil {
		log.WithFields(logFields).WithError(err).Error("Failed to marshal prospect filters.")
		return nil, http.StatusBadRequest
	}

	ids, err := pg.queryProspectIDs(projectID, filters)
	if err != nil {
		log.WithFields(logFields).WithError(err).Error("Prospect snapshot query failed.")
		return nil, http.StatusInternalServerError
	}

	now := time.Now()
	list := &model.ProspectList{
		ID:              U.GetUUID(),
		ProjectID:       projectID,
		Name:            name,
		Description:     description,
		Filters:         &postgres.Jsonb{RawMessage: filtersJSON},
		ResultCount:     int64(len(ids)),
		LastRefreshedAt: &now,
		CreatedBy:       createdBy,
	}

	db := C.GetServices().Db
	if err := db.Create(list).Error; err != nil {
		log.WithFields(logFields).WithError(err).Error("CreateProspectList failed.")
		return nil, http.StatusInternalServerError
	}

	if errCode := pg.insertProspectItems(projectID, list.ID, ids, nil); errCode != http.StatusCreated {
		return nil, errCode
	}

	return list, http.StatusCreated
}

// insertProspectItems writes a snapshot. carryOver, when present, maps
// property id to previous item state to preserve across a refresh.
func (pg *Postgres) insertProspectItems(projectID int64, listID string,
	propertyIDs []string, carryOver map[string]model.ProspectListItem) int {

	db := C.GetServices().Db
	for _, propertyID := range propertyIDs {
		item := model.ProspectListItem{
			ID:         U.GetUUID(),
			ProjectID:  projectID,
			ListID:     listID,
			PropertyID: propertyID,
			Status:     model.ProspectItemStatusPending,
		}
		if previous, ok := carryOver[propertyID]; ok {
			item.Status = previous.Status
			item.Notes = previous.Notes
		}

		if err := db.Create(&item).Error; err != nil {
			log.WithFields(log.Fields{"project_id": projectID, "list_id": listID}).
				WithError(err).Error("Failed to insert prospect list item.")
			return http.StatusInternalServerError
		}
	}
	return http.StatusCreated
}

func (pg *Postgres) GetProspectList(projectID int64, id string) (*model.ProspectList, int) {
	var list model.ProspectList

	db := C.GetServices().Db
	err := db.Where("project_id = ? AND id = ?", projectID, id).First(&list).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(err).Error("GetProspectList failed.")
		return nil, http.StatusInternalServerError
	}

	return &list, http.StatusFound
}

func (pg *Postgres) GetProspectLists(projectID int64, limit, offset int) ([]model.ProspectList, int) {
	var lists []model.ProspectList

	db := C.GetServices().Db
	err := db.Where("project_id = ?", projectID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&lists).Error
	if err != nil {
		log.WithField("project_id", projectID).WithError(err).Error("GetProspectLists failed.")
		return nil, http.StatusInternalServerError
	}

	return lists, http.StatusFound
}

// RefreshProspectList re-runs the saved filter and replaces the item
// snapshot. Status and notes survive for property ids present in both the
// old and new snapshots; items that fell out of the filter are dropped
// with their state.
func (pg *Postgres) RefreshProspectList(projectID int64, id string) (*model.ProspectList, int) {
	logFields := log.Fields{"project_id": projectID, "list_id": id}

	list, errCode := pg.GetProspectList(projectID, id)
	if errCode != http.StatusFound {
		return nil, errCode
	}

	var filters model.ProspectFilters
	if list.Filters == nil {
		return nil, http.StatusInternalServerError
	}
	if err := json.Unmarshal(list.Filters.RawMessage, &filters); err != nil {
		log.WithFields(logFields).WithError(err).Error("Failed to unmarshal saved filters.")
		return nil, http.StatusInternalServerError
	}

	ids, err := pg.queryProspectIDs(projectID, &filters)
	if err != nil {
		log.WithFields(logFields).WithError(err).Error("Prospect refresh query failed.")
		return nil, http.StatusInternalServerError
	}

	db := C.GetServices().Db

	var existing []model.ProspectListItem
	err = db.Where("project_id = ? AND list_id = ?", projectID, id).Find(&existing).Error
	if err != nil {
		log.WithFields(logFields).WithError(err).Error("Failed to read existing items.")
		return nil, http.StatusInternalServerError
	}
	carryOver := make(map[string]model.ProspectListItem, len(existing))
	for _, item := range existing {
		carryOver[item.PropertyID] = item
	}

	err = db.Where("project_id = ? AND list_id = ?", projectID, id).
		Delete(&model.ProspectListItem{}).Error
	if err != nil {
		log.WithFields(logFields).WithError(err).Error("Failed to clear item snapshot.")
		return nil, http.StatusInternalServerError
	}

	if errCode := pg.insertProspectItems(projectID, id, ids, carryOver); errCode != http.StatusCreated {
		return nil, errCode
	}

	now := time.Now()
	err = db.Model(&model.ProspectList{}).
		Where("project_id = ? AND id = ?", projectID, id).
		Updates(map[string]interface{}{
			"result_count":      int64(len(ids)),
			"last_refreshed_at": &now,
		}).Error
	if err != nil {
		log.WithFields(logFields).WithError(err).Error("RefreshProspectList failed.")
		return nil, http.StatusInternalServerError
	}

	list.ResultCount = int64(len(ids))
	list.LastRefreshedAt = &now
	return list, http.StatusAccepted
}

func (pg *Postgres) DeleteProspectList(projectID int64, id string) int {
	logFields := log.Fields{"project_id": projectID, "list_id": id}

	db := C.GetServices().Db

	// Items cascade with the list.
	err := db.Where("project_id = ? AND list_id = ?", projectID, id).
		Delete(&model.ProspectListItem{}).Error
	if err != nil {
		log.WithFields(logFields).WithError(err).Error("Failed to delete list items.")
		return http.StatusInternalServerError
	}

	query := db.Where("project_id = ? AND id = ?", projectID, id).
		Delete(&model.ProspectList{})
	if query.Error != nil {
		log.WithFields(logFields).WithError(query.Error).Error("DeleteProspectList failed.")
		return http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return http.StatusNotFound
	}
	return http.StatusAccepted
}

func (pg *Postgres) GetProspectListItems(projectID int64, listID string,
	limit, offset int) ([]model.ProspectListItem, int) {

	var items []model.ProspectListItem

	db := C.GetServices().Db
	err := db.Where("project_id = ? AND list_id = ?", projectID, listID).
		Order("created_at").Limit(limit).Offset(offset).Find(&items).Error
	if err != nil {
		log.WithFields(log.Fields{"project_id": projectID, "list_id": listID}).
			WithError(err).Error("GetProspectListItems failed.")
		return nil, http.StatusInternalServerError
	}

	return items, http.StatusFound
}

func (pg *Postgres) UpdateProspectListItem(projectID int64, listID, itemID string,
	updatable *model.UpdatableProspectListItem) int {

	fields := updatable.Fields()
	if len(fields) == 0 {
		return http.StatusBadRequest
	}

	db := C.GetServices().Db
	query := db.Model(&model.ProspectListItem{}).
		Where("project_id = ? AND list_id = ? AND id = ?", projectID, listID, itemID).
		Updates(fields)
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "list_id": listID, "item_id": itemID}).
			WithError(query.Error).Error("UpdateProspectListItem failed.")
		return http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return http.StatusNotFound
	}
	return http.StatusAccepted
}

func (pg *Postgres) GetProspectListExportRows(projectID int64, listID string) ([]model.ProspectExportRow, int) {
	logFields := log.Fields{"project_id": projectID, "list_id": listID}

	if _, errCode := pg.GetProspectList(projectID, listID); errCode != http.StatusFound {
		return nil, errCode
	}

	var rows []model.ProspectExportRow
	db := C.GetServices().Db
	err := db.Raw(`
SELECT p.address, p.city, p.state, p.zip, p.property_type,
	p.building_size_sf, p.lot_size_acres, p.year_built, p.owner_name,
	i.status, i.notes
FROM prospect_list_items i
JOIN master_properties p ON p.id = i.property_id
WHERE i.project_id = ? AND i.list_id = ?
ORDER BY i.created_at`, projectID, listID).Scan(&rows).Error
	if err != nil {
		log.WithFields(logFields).WithError(err).Error("GetProspectListExportRows failed.")
		return nil, http.StatusInternalServerError
	}

	return rows, http.StatusFound
}
