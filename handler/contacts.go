package handler

import (
	"encoding/json"
	"net/http"

	mid "brokerbase/middleware"
	"brokerbase/model/model"
	"brokerbase/model/store"
	U "brokerbase/util"

	"brokerbase/handler/helpers"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type ContactPropertyLinkPayload struct {
	PropertyID   string `json:"property_id"`
	Relationship string `json:"relationship"`
}

func GetContactsHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get contacts failed. Invalid project."})
		return
	}

	limit, offset := helpers.GetPaginationParams(c)
	search := c.Query("search")

	contacts, errCode := store.GetStore().GetContacts(projectId, search, limit, offset)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get contacts failed."})
		return
	}

	c.JSON(http.StatusFound, contacts)
}

func GetContactHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get contact failed. Invalid project."})
		return
	}

	contactId := c.Params.ByName("contact_id")
	if !U.IsValidUUID(contactId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid contact id."})
		return
	}

	contact, errCode := store.GetStore().GetContact(projectId, contactId)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get contact failed."})
		return
	}

	c.JSON(http.StatusFound, contact)
}

func CreateContactHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Create contact failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	var contact model.Contact

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&contact); err != nil {
		errMsg := "Create contact failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	created, errCode := store.GetStore().CreateContact(projectId, &contact)
	if errCode != http.StatusCreated {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Create contact failed."})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func UpdateContactHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Update contact failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	contactId := c.Params.ByName("contact_id")
	if !U.IsValidUUID(contactId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid contact id."})
		return
	}

	var updatable model.UpdatableContact

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&updatable); err != nil {
		errMsg := "Update contact failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	contact, errCode := store.GetStore().UpdateContact(projectId, contactId, &updatable)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Update contact failed."})
		return
	}

	c.JSON(http.StatusAccepted, contact)
}

func DeleteContactHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Delete contact failed. Invalid project."})
		return
	}

	contactId := c.Params.ByName("contact_id")
	if !U.IsValidUUID(contactId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid contact id."})
		return
	}

	errCode := store.GetStore().DeleteContact(projectId, contactId)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Delete contact failed."})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": contactId})
}

func LinkContactToPropertyHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Link contact failed. Invalid project."})
		return
	}
	logCtx := log.WithField("project_id", projectId)

	contactId := c.Params.ByName("contact_id")
	if !U.IsValidUUID(contactId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid contact id."})
		return
	}

	var payload ContactPropertyLinkPayload

	r := c.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		errMsg := "Link contact failed. Json decode failed."
		logCtx.WithError(err).Error(errMsg)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	if !U.IsValidUUID(payload.PropertyID) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid property id."})
		return
	}

	link, errCode := store.GetStore().LinkContactToProperty(projectId, contactId, payload.PropertyID, payload.Relationship)
	if errCode != http.StatusCreated {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Link contact failed."})
		return
	}

	c.JSON(http.StatusCreated, link)
}

func UnlinkContactFromPropertyHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unlink contact failed. Invalid project."})
		return
	}

	contactId := c.Params.ByName("contact_id")
	propertyId := c.Params.ByName("property_id")
	if !U.IsValidUUID(contactId) || !U.IsValidUUID(propertyId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid contact or property id."})
		return
	}

	errCode := store.GetStore().UnlinkContactFromProperty(projectId, contactId, propertyId)
	if errCode != http.StatusAccepted {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Unlink contact failed."})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"contact_id": contactId, "property_id": propertyId})
}

func GetContactsForPropertyHandler(c *gin.Context) {
	projectId := U.GetScopeByKeyAsInt64(c, mid.SCOPE_PROJECT_ID)
	if projectId == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Get property contacts failed. Invalid project."})
		return
	}

	propertyId := c.Params.ByName("property_id")
	if !U.IsValidUUID(propertyId) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid property id."})
		return
	}

	contacts, errCode := store.GetStore().GetContactsForProperty(projectId, propertyId)
	if errCode != http.StatusFound {
		c.AbortWithStatusJSON(errCode, gin.H{"error": "Get property contacts failed."})
		return
	}

	c.JSON(http.StatusFound, contacts)
}
