package postgres

import (
	"fmt"
	"net/http"
	"strings"

	C "brokerbase/config"
	"brokerbase/model/model"
	U "brokerbase/util"

	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
)

const slugCollisionLimit = 50

// generateUniqueSlug derives a slug from the property address and appends
// a numeric suffix until it is free.
func (pg *Postgres) generateUniqueSlug(property *model.MasterProperty) (string, error) {
	base := model.BuildListingSlug(property.Address, property.City, property.State)
	if base == "" {
		base = "listing-" + U.RandomLowerAlphaNumString(8)
	}

	db := C.GetServices().Db
	candidate := base
	for i := 2; i <= slugCollisionLimit; i++ {
		var count int64
		if err := db.Model(&model.ListingSite{}).
			Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}

	// Extremely crowded namespace. Fall back to a random suffix.
	return base + "-" + U.RandomLowerAlphaNumString(6), nil
}

func (pg *Postgres) CreateListingSite(projectID int64, site *model.ListingSite) (*model.ListingSite, int) {
	logFields := log.Fields{"project_id": projectID}

	if projectID == 0 || site == nil || site.PropertyID == "" {
		return nil, http.StatusBadRequest
	}

	property, errCode := pg.GetMasterProperty(projectID, site.PropertyID)
	if errCode != http.StatusFound {
		return nil, errCode
	}

	db := C.GetServices().Db

	// One site per property.
	var count int64
	db.Model(&model.ListingSite{}).
		Where("project_id = ? AND property_id = ? AND is_deleted = ?",
			projectID, site.PropertyID, false).Count(&count)
	if count > 0 {
		log.WithFields(logFields).WithField("property_id", site.PropertyID).
			Error("CreateListingSite failed. Property already has a site.")
		return nil, http.StatusConflict
	}

	slug, err := pg.generateUniqueSlug(property)
	if err != nil {
		log.WithFields(logFields).WithError(err).Error("Slug generation failed.")
		return nil, http.StatusInternalServerError
	}

	if site.ID == "" {
		site.ID = U.GetUUID()
	}
	site.ProjectID = projectID
	site.Slug = slug
	if site.Headline == "" {
		site.Headline = property.Address
	}

	if err := db.Create(site).Error; err != nil {
		log.WithFields(logFields).WithError(err).Error("CreateListingSite failed.")
		return nil, http.StatusInternalServerError
	}

	return site, http.StatusCreated
}

func (pg *Postgres) GetListingSite(projectID int64, id string) (*model.ListingSite, int) {
	var site model.ListingSite

	db := C.GetServices().Db
	err := db.Where("project_id = ? AND id = ? AND is_deleted = ?",
		projectID, id, false).First(&site).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(err).Error("GetListingSite failed.")
		return nil, http.StatusInternalServerError
	}

	return &site, http.StatusFound
}

func (pg *Postgres) GetListingSites(projectID int64, limit, offset int) ([]model.ListingSite, int) {
	var sites []model.ListingSite

	db := C.GetServices().Db
	err := db.Where("project_id = ? AND is_deleted = ?", projectID, false).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&sites).Error
	if err != nil {
		log.WithField("project_id", projectID).WithError(err).Error("GetListingSites failed.")
		return nil, http.StatusInternalServerError
	}

	return sites, http.StatusFound
}

func (pg *Postgres) UpdateListingSite(projectID int64, id string,
	updatable *model.UpdatableListingSite) (*model.ListingSite, int) {

	fields := updatable.Fields()
	if len(fields) == 0 {
		return nil, http.StatusBadRequest
	}

	db := C.GetServices().Db
	query := db.Model(&model.ListingSite{}).
		Where("project_id = ? AND id = ? AND is_deleted = ?", projectID, id, false).
		Updates(fields)
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("UpdateListingSite failed.")
		return nil, http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return nil, http.StatusNotFound
	}

	site, errCode := pg.GetListingSite(projectID, id)
	if errCode != http.StatusFound {
		return nil, errCode
	}
	return site, http.StatusAccepted
}

func (pg *Postgres) SetListingSitePublished(projectID int64, id string, published bool) int {
	db := C.GetServices().Db
	query := db.Model(&model.ListingSite{}).
		Where("project_id = ? AND id = ? AND is_deleted = ?", projectID, id, false).
		Update("is_published", published)
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("SetListingSitePublished failed.")
		return http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return http.StatusNotFound
	}
	return http.StatusAccepted
}

func (pg *Postgres) DeleteListingSite(projectID int64, id string) int {
	db := C.GetServices().Db
	query := db.Model(&model.ListingSite{}).
		Where("project_id = ? AND id = ? AND is_deleted = ?", projectID, id, false).
		Update("is_deleted", true)
	if query.Error != nil {
		log.WithFields(log.Fields{"project_id": projectID, "id": id}).
			WithError(query.Error).Error("DeleteListingSite failed.")
		return http.StatusInternalServerError
	}
	if query.RowsAffected == 0 {
		return http.StatusNotFound
	}
	return http.StatusAccepted
}

// getListingSiteBySlug - Unscoped by project: slugs are globally unique and
// the public endpoints carry no auth.
func (pg *Postgres) getListingSiteBySlug(slug string) (*model.ListingSite, int) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, http.StatusBadRequest
	}

	var site model.ListingSite
	db := C.GetServices().Db
	err := db.Where("slug = ? AND is_deleted = ?", slug, false).First(&site).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithField("slug", slug).WithError(err).Error("getListingSiteBySlug failed.")
		return nil, http.StatusInternalServerError
	}

	return &site, http.StatusFound
}

func (pg *Postgres) GetPublicListingBySlug(slug string) (*model.PublicListing, int) {
	site, errCode := pg.getListingSiteBySlug(slug)
	if errCode != http.StatusFound {
		return nil, errCode
	}
	if !site.IsPublished {
		// Unpublished listings are invisible to the public.
		return nil, http.StatusNotFound
	}

	property, errCode := pg.GetMasterProperty(site.ProjectID, site.PropertyID)
	if errCode != http.StatusFound {
		return nil, errCode
	}

	return &model.PublicListing{
		Slug:           site.Slug,
		Headline:       site.Headline,
		Description:    site.Description,
		AskingPrice:    site.AskingPrice,
		ContactName:    site.ContactName,
		ContactEmail:   site.ContactEmail,
		ContactPhone:   site.ContactPhone,
		Address:        property.Address,
		City:           property.City,
		State:          property.State,
		Zip:            property.Zip,
		PropertyType:   property.PropertyType,
		BuildingSizeSF: property.BuildingSizeSF,
		LotSizeAcres:   property.LotSizeAcres,
		YearBuilt:      property.YearBuilt,
	}, http.StatusFound
}

func (pg *Postgres) CreateListingLead(slug string, lead *model.ListingLead) (*model.ListingLead, int) {
	if lead == nil || strings.TrimSpace(lead.Email) == "" {
		return nil, http.StatusBadRequest
	}

	site, errCode := pg.getListingSiteBySlug(slug)
	if errCode != http.StatusFound {
		return nil, errCode
	}
	if !site.IsPublished {
		return nil, http.StatusNotFound
	}

	lead.ID = U.GetUUID()
	lead.ProjectID = site.ProjectID
	lead.SiteID = site.ID
	lead.Email = strings.ToLower(strings.TrimSpace(lead.Email))

	db := C.GetServices().Db
	if err := db.Create(lead).Error; err != nil {
		log.WithField("slug", slug).WithError(err).Error("CreateListingLead failed.")
		return nil, http.StatusInternalServerError
	}

	return lead, http.StatusCreated
}

func (pg *Postgres) GetListingLeads(projectID int64, siteID string,
	limit, offset int) ([]model.ListingLead, int) {

	var leads []model.ListingLead

	db := C.GetServices().Db
	err := db.Where("project_id = ? AND site_id = ?", projectID, siteID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&leads).Error
	if err != nil {
		log.WithFields(log.Fields{"project_id": projectID, "site_id": siteID}).
			WithError(err).Error("GetListingLeads failed.")
		return nil, http.StatusInternalServerError
	}

	return leads, http.StatusFound
}
