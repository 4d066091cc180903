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

func (pg *Postgres) CreateContact(projectID int64, contact *model.Contact) (*model.Contact, int) {
	if projectID == 0 || contact == nil {
		return nil, http.StatusBadRequest
	}
	if strings.TrimSpace(contact.FirstName) == "" && strings.TrimSpace(contact.LastName) == "" {
		log.WithField("project_id", projectID).Error("CreateContact failed. Name not provided.")
		return nil, http.StatusBadRequest
	}

	if contact.ID == "" {
		contact.ID = U.GetUUID()
	}
	contact.ProjectID = projectID
	contact.Email = strings.ToLower(strings.TrimSpace(contact.Email))

	db := C.GetServices().Db
	if err := db.Create(contact).Error; err != nil {
		log.WithField("project_id", projectID).WithError(err).Error("CreateContact failed.")
		return nil, http.StatusInternalServerError
	}

	return contact, http.StatusCreated
}

func (pg *Postgres) GetContact(projectID int64, id string) (*model.Contact, int) {
	var contact model.Contact

	db := C.GetServices().Db
	err := db.Where("project_id = ? AND id = ? AND is_deleted = ?",
		projectID, id, false).First(&contact).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(err).Error("GetContact failed.")
		return nil, http.StatusInternalServerError
	}

	return &contact, http.StatusFound
}

func (pg *Postgres) GetContacts(projectID int64, search string, limit, offset int) ([]model.Contact, int) {
	var contacts []model.Contact

	db := C.GetServices().Db
	query := db.Where("project_id = ? AND is_deleted = ?", projectID, false)
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			like, like, like)
	}

	err := query.Order("last_name, first_name").Limit(limit).Offset(offset).Find(&contacts).Error
	if err != nil {
		log.WithField("project_id", projectID).WithError(err).Error("GetContacts failed.")
		return nil, http.StatusInternalServerError
	}

	return contacts, http.StatusFound
}

func (pg *Postgres) UpdateContact(projectID int64, id string,
	updatable *model.UpdatableContact) (*model.Contact, int) {

	fields := updatable.Fields()
	if len(fields) == 0 {
		return nil, http.StatusBadRequest
	}
	if email, ok := fields["email"].(string); ok {
		fields["email"] = strings.ToLower(strings.TrimSpace(email))
	}

	db := C.GetServices().Db
	query := db.Model(&model.Contact{}).
		Where("project_id = ? AND id = ? AND is_deleted = ?", projectID, id, false).
		Updates(fields)
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("UpdateContact failed.")
		return nil, http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return nil, http.StatusNotFound
	}

	contact, errCode := pg.GetContact(projectID, id)
	if errCode != http.StatusFound {
		return nil, errCode
	}
	return contact, http.StatusAccepted
}

func (pg *Postgres) DeleteContact(projectID int64, id string) int {
	db := C.GetServices().Db
	query := db.Model(&model.Contact{}).
		Where("project_id = ? AND id = ? AND is_deleted = ?", projectID, id, false).
		Update("is_deleted", true)
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("DeleteContact failed.")
		return http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return http.StatusNotFound
	}
	return http.StatusAccepted
}

func (pg *Postgres) LinkContactToProperty(projectID int64, contactID, propertyID,
	relationship string) (*model.ContactProperty, int) {

	logFields := log.Fields{"project_id": projectID, "contact_id": contactID,
		"property_id": propertyID}

	if _, errCode := pg.GetContact(projectID, contactID); errCode != http.StatusFound {
		return nil, errCode
	}
	if _, errCode := pg.GetMasterProperty(projectID, propertyID); errCode != http.StatusFound {
		return nil, errCode
	}

	db := C.GetServices().Db

	// One link per contact/property pair.
	var count int64
	db.Model(&model.ContactProperty{}).
		Where("project_id = ? AND contact_id = ? AND property_id = ?",
			projectID, contactID, propertyID).Count(&count)
	if count > 0 {
		return nil, http.StatusConflict
	}

	link := &model.ContactProperty{
		ID:           U.GetUUID(),
		ProjectID:    projectID,
		ContactID:    contactID,
		PropertyID:   propertyID,
		Relationship: relationship,
	}
	if err := db.Create(link).Error; err != nil {
		log.WithFields(logFields).WithError(err).Error("LinkContactToProperty failed.")
		return nil, http.StatusInternalServerError
	}

	return link, http.StatusCreated
}

func (pg *Postgres) UnlinkContactFromProperty(projectID int64, contactID, propertyID string) int {
	db := C.GetServices().Db
	query := db.Where("project_id = ? AND contact_id = ? AND property_id = ?",
		projectID, contactID, propertyID).Delete(&model.ContactProperty{})
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "contact_id": contactID}).
			WithError(query.Error).Error("UnlinkContactFromProperty failed.")
		return http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return http.StatusNotFound
	}
	return http.StatusAccepted
}

func (pg *Postgres) GetContactsForProperty(projectID int64, propertyID string) ([]model.Contact, int) {
	var contacts []model.Contact

	db := C.GetServices().Db
	err := db.Table("contacts").
		Joins("JOIN contact_properties ON contact_properties.contact_id = contacts.id").
		Where("contact_properties.project_id = ? AND contact_properties.property_id = ? AND contacts.is_deleted = ?",
			projectID, propertyID, false).
		Find(&contacts).Error
	if err != nil {
		log.WithFields(log.Fields{"project_id": projectID, "property_id": propertyID}).
			WithError(err).Error("GetContactsForProperty failed.")
		return nil, http.StatusInternalServerError
	}

	return contacts, http.StatusFound
}
