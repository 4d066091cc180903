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
	"github.com/pkg/errors"
	"github.com/rs/xid"
	log "github.com/sirupsen/logrus"
)

// ImportProperties runs the bulk import/dedup pipeline. Rows are processed
// strictly in order so duplicate detection sees rows inserted earlier in
// the same batch. Row failures are isolated: counted, sampled into the
// result, never aborting the batch.
func (pg *Postgres) ImportProperties(projectID int64, request *model.ImportRequest) (*model.ImportResult, int) {
	logFields := log.Fields{"project_id": projectID, "source": request.Source}

	if projectID == 0 {
		return nil, http.StatusBadRequest
	}
	if len(request.Rows) == 0 {
		log.WithFields(logFields).Error("Import rejected. No rows.")
		return nil, http.StatusBadRequest
	}
	if !mappingTargets(request.ColumnMapping, "address") {
		log.WithFields(logFields).Error("Import rejected. No column mapped to address.")
		return nil, http.StatusBadRequest
	}

	logDroppedMappings(request.ColumnMapping, logFields)

	batch, errCode := pg.createImportBatch(projectID, request)
	if errCode != http.StatusCreated {
		return nil, errCode
	}

	result := &model.ImportResult{
		BatchID:             batch.ID,
		PropertiesCreated:   []string{},
		PropertiesUpdated:   []string{},
		TransactionsCreated: []string{},
		ErrorDetails:        []model.ImportRowError{},
	}

	for i, row := range request.Rows {
		if err := pg.importRow(projectID, request, row, result); err != nil {
			result.Errors++
			if len(result.ErrorDetails) < model.MaxImportErrorDetails {
				result.ErrorDetails = append(result.ErrorDetails,
					model.ImportRowError{Row: i, Message: err.Error()})
			}
		}
	}

	if errCode := pg.finalizeImportBatch(batch.ID, projectID, result); errCode != http.StatusAccepted {
		log.WithFields(logFields).WithField("batch_id", batch.ID).
			Error("Failed to finalize import batch.")
	}

	return result, http.StatusOK
}

func (pg *Postgres) importRow(projectID int64, request *model.ImportRequest,
	row map[string]interface{}, result *model.ImportResult) error {

	mapped, err := model.MapImportRow(request.ColumnMapping, row)
	if err != nil {
		return err
	}

	if mapped.SkipReason != "" {
		result.Skipped++
		return nil
	}

	address := mapped.Property["address"].(string)
	city := mapped.Property["city"].(string)
	state := mapped.Property["state"].(string)
	normalized := model.NormalizeAddress(address)

	// An empty dedup key can never match on re-import; without this the
	// same row would insert a new property every time.
	if normalized == "" {
		result.Skipped++
		return nil
	}

	existing, errCode := pg.GetMasterPropertyByNormalizedAddress(projectID, normalized, city, state)
	if errCode == http.StatusInternalServerError {
		return errors.New("dedup lookup failed")
	}

	var propertyID string
	if errCode == http.StatusFound {
		if err := pg.updateImportedProperty(projectID, existing.ID, mapped.Property); err != nil {
			return err
		}
		propertyID = existing.ID
		result.Updated++
		result.PropertiesUpdated = append(result.PropertiesUpdated, propertyID)
	} else {
		created, err := pg.insertImportedProperty(projectID, request, row, mapped.Property, normalized)
		if err != nil {
			return err
		}
		propertyID = created.ID
		result.Imported++
		result.PropertiesCreated = append(result.PropertiesCreated, propertyID)
	}

	if mapped.HasTransaction() {
		transaction, err := pg.insertImportedTransaction(projectID, propertyID,
			request.Source, mapped)
		if err != nil {
			return err
		}
		result.TransactionsCreated = append(result.TransactionsCreated, transaction.ID)
	}

	return nil
}

func (pg *Postgres) insertImportedProperty(projectID int64, request *model.ImportRequest,
	row map[string]interface{}, fields map[string]interface{},
	normalized string) (*model.MasterProperty, error) {

	property := &model.MasterProperty{
		ID:                U.GetUUID(),
		ProjectID:         projectID,
		AddressNormalized: normalized,
		Source:            request.Source,
		CreatedBy:         request.CreatedBy,
	}
	applyPropertyFields(property, fields)
	if property.PropertyType == "" {
		property.PropertyType = model.PropertyTypeOther
	}

	if raw, err := json.Marshal(row); err == nil {
		property.RawImportData = &postgres.Jsonb{RawMessage: raw}
	}

	db := C.GetServices().Db
	if err := db.Create(property).Error; err != nil {
		return nil, errors.Wrap(err, "insert property")
	}
	return property, nil
}

// updateImportedProperty applies newly mapped fields onto an existing
// property. created_by and raw_import_data belong to the original insert
// and are never overwritten by re-imports.
func (pg *Postgres) updateImportedProperty(projectID int64, id string,
	fields map[string]interface{}) error {

	updates := make(map[string]interface{}, len(fields))
	for field, value := range fields {
		updates[field] = value
	}
	if address, ok := updates["address"].(string); ok {
		updates["address_normalized"] = model.NormalizeAddress(address)
	}

	db := C.GetServices().Db
	err := db.Model(&model.MasterProperty{}).
		Where("project_id = ? AND id = ?", projectID, id).
		Updates(updates).Error
	if err != nil {
		return errors.Wrap(err, "update property")
	}
	return nil
}

func (pg *Postgres) insertImportedTransaction(projectID int64, propertyID,
	source string, mapped *model.MappedRow) (*model.Transaction, error) {

	transaction := &model.Transaction{
		ID:              U.GetUUID(),
		ProjectID:       projectID,
		PropertyID:      propertyID,
		TransactionType: mapped.TransactionType(),
		Source:          source,
	}
	applyTransactionFields(transaction, mapped.Transaction)

	db := C.GetServices().Db
	if err := db.Create(transaction).Error; err != nil {
		return nil, errors.Wrap(err, "insert transaction")
	}
	return transaction, nil
}

// applyPropertyFields copies coerced import values onto the property
// struct. Values are typed by the coercion step, so assertions here are
// trusted.
func applyPropertyFields(p *model.MasterProperty, fields map[string]interface{}) {
	for field, value := range fields {
		switch field {
		case "name":
			p.Name = value.(string)
		case "address":
			p.Address = value.(string)
		case "city":
			p.City = value.(string)
		case "state":
			p.State = value.(string)
		case "zip":
			p.Zip = value.(string)
		case "county":
			p.County = value.(string)
		case "submarket":
			p.Submarket = value.(string)
		case "property_type":
			p.PropertyType = value.(string)
		case "property_subtype":
			p.PropertySubtype = value.(string)
		case "building_size_sf":
			p.BuildingSizeSF = value.(int64)
		case "lot_size_acres":
			p.LotSizeAcres = value.(float64)
		case "year_built":
			p.YearBuilt = value.(int64)
		case "units":
			p.Units = value.(int64)
		case "stories":
			p.Stories = value.(int64)
		case "parking_spaces":
			p.ParkingSpaces = value.(int64)
		case "zoning_code":
			p.ZoningCode = value.(string)
		case "owner_name":
			p.OwnerName = value.(string)
		case "owner_phone":
			p.OwnerPhone = value.(string)
		case "owner_email":
			p.OwnerEmail = value.(string)
		case "rail_served":
			p.RailServed = value.(bool)
		case "opportunity_zone":
			p.OpportunityZone = value.(bool)
		}
	}
}

func applyTransactionFields(t *model.Transaction, fields map[string]interface{}) {
	for field, value := range fields {
		switch field {
		case "sale_price":
			t.SalePrice = value.(float64)
		case "sale_date":
			date := value.(time.Time)
			t.SaleDate = &date
		case "cap_rate":
			t.CapRate = value.(float64)
		case "noi":
			t.NOI = value.(float64)
		case "lease_rate":
			t.LeaseRate = value.(float64)
		case "lease_term_months":
			t.LeaseTermMonths = value.(int64)
		case "price_per_sf":
			t.PricePerSF = value.(float64)
		case "buyer":
			t.Buyer = value.(string)
		case "seller":
			t.Seller = value.(string)
		case "loan_amount":
			t.LoanAmount = value.(float64)
		case "lender":
			t.Lender = value.(string)
		case "interest_rate":
			t.InterestRate = value.(float64)
		case "loan_term_months":
			t.LoanTermMonths = value.(int64)
		}
	}
}

func mappingTargets(columnMapping map[string]string, canonicalField string) bool {
	for _, target := range columnMapping {
		if target == canonicalField {
			return true
		}
	}
	return false
}

// logDroppedMappings logs mapping targets outside the allow-list once per
// batch. Dropped mappings are not row errors.
func logDroppedMappings(columnMapping map[string]string, logFields log.Fields) {
	dropped := make([]string, 0)
	for sourceColumn, target := range columnMapping {
		if !model.ValidPropertyColumns[target] && !model.TransactionFields[target] {
			dropped = append(dropped, sourceColumn+"->"+target)
		}
	}
	if len(dropped) > 0 {
		log.WithFields(logFields).WithField("dropped", strings.Join(dropped, ",")).
			Warn("Import column mappings to unknown fields dropped.")
	}
}

func (pg *Postgres) createImportBatch(projectID int64, request *model.ImportRequest) (*model.ImportBatch, int) {
	batch := &model.ImportBatch{
		ID:        U.GetUUID(),
		ProjectID: projectID,
		BatchCode: xid.New().String(),
		Source:    request.Source,
		Status:    model.ImportBatchStatusProcessing,
		TotalRows: len(request.Rows),
		CreatedBy: request.CreatedBy,
	}

	if mapping, err := json.Marshal(request.ColumnMapping); err == nil {
		batch.ColumnMapping = &postgres.Jsonb{RawMessage: mapping}
	}

	db := C.GetServices().Db
	if err := db.Create(batch).Error; err != nil {
		log.WithField("project_id", projectID).WithError(err).
			Error("Failed to create import batch.")
		return nil, http.StatusInternalServerError
	}

	return batch, http.StatusCreated
}

func (pg *Postgres) finalizeImportBatch(batchID string, projectID int64,
	result *model.ImportResult) int {

	now := time.Now()
	updates := map[string]interface{}{
		"status":        model.ImportBatchStatusCompleted,
		"imported_rows": result.Imported,
		"updated_rows":  result.Updated,
		"skipped_rows":  result.Skipped,
		"error_rows":    result.Errors,
		"completed_at":  &now,
	}
	if details, err := json.Marshal(result.ErrorDetails); err == nil {
		updates["error_details"] = postgres.Jsonb{RawMessage: details}
	}

	db := C.GetServices().Db
	err := db.Model(&model.ImportBatch{}).
		Where("project_id = ? AND id = ?", projectID, batchID).
		Updates(updates).Error
	if err != nil {
		log.WithFields(log.Fields{"project_id": projectID, "batch_id": batchID}).
			WithError(err).Error("Failed to update import batch.")
		return http.StatusInternalServerError
	}
	return http.StatusAccepted
}

func (pg *Postgres) GetImportBatches(projectID int64, limit, offset int) ([]model.ImportBatch, int) {
	var batches []model.ImportBatch

	db := C.GetServices().Db
	err := db.Where("project_id = ?", projectID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&batches).Error
	if err != nil {
		log.WithField("project_id", projectID).WithError(err).
			Error("GetImportBatches failed.")
		return nil, http.StatusInternalServerError
	}

	return batches, http.StatusFound
}

func (pg *Postgres) GetImportBatch(projectID int64, id string) (*model.ImportBatch, int) {
	var batch model.ImportBatch

	db := C.GetServices().Db
	err := db.Where("project_id = ? AND id = ?", projectID, id).First(&batch).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(err).Error("GetImportBatch failed.")
		return nil, http.StatusInternalServerError
	}

	return &batch, http.StatusFound
}
