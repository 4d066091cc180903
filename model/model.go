package model

import (
	"time"

	"brokerbase/model/model"
)

// Model - Interface of all methods to be implemented by the stores.
type Model interface {
	// project
	CreateProject(project *model.Project) (*model.Project, int)
	GetProject(id int64) (*model.Project, int)
	GetProjectByToken(token string) (*model.Project, int)

	// master_property
	CreateMasterProperty(projectID int64, property *model.MasterProperty) (*model.MasterProperty, int)
	GetMasterProperty(projectID int64, id string) (*model.MasterProperty, int)
	GetMasterProperties(projectID int64, search string, limit, offset int) ([]model.MasterProperty, int)
	GetMasterPropertyByNormalizedAddress(projectID int64, addressNormalized, city, state string) (*model.MasterProperty, int)
	UpdateMasterProperty(projectID int64, id string, updatable *model.UpdatableMasterProperty) (*model.MasterProperty, int)
	DeleteMasterProperty(projectID int64, id string) int
	VerifyMasterProperty(projectID int64, id string) int

	// import pipeline
	ImportProperties(projectID int64, request *model.ImportRequest) (*model.ImportResult, int)
	GetImportBatches(projectID int64, limit, offset int) ([]model.ImportBatch, int)
	GetImportBatch(projectID int64, id string) (*model.ImportBatch, int)

	// transaction
	CreateTransaction(projectID int64, transaction *model.Transaction) (*model.Transaction, int)
	GetTransaction(projectID int64, id string) (*model.Transaction, int)
	GetTransactionsByProperty(projectID int64, propertyID string, limit, offset int) ([]model.Transaction, int)

	// contact
	CreateContact(projectID int64, contact *model.Contact) (*model.Contact, int)
	GetContact(projectID int64, id string) (*model.Contact, int)
	GetContacts(projectID int64, search string, limit, offset int) ([]model.Contact, int)
	UpdateContact(projectID int64, id string, updatable *model.UpdatableContact) (*model.Contact, int)
	DeleteContact(projectID int64, id string) int
	LinkContactToProperty(projectID int64, contactID, propertyID, relationship string) (*model.ContactProperty, int)
	UnlinkContactFromProperty(projectID int64, contactID, propertyID string) int
	GetContactsForProperty(projectID int64, propertyID string) ([]model.Contact, int)

	// company
	CreateCompany(projectID int64, company *model.Company) (*model.Company, int)
	GetCompany(projectID int64, id string) (*model.Company, int)
	GetCompanies(projectID int64, search string, limit, offset int) ([]model.Company, int)
	UpdateCompany(projectID int64, id string, updatable *model.UpdatableCompany) (*model.Company, int)
	DeleteCompany(projectID int64, id string) int

	// crm_deal
	CreateDeal(projectID int64, deal *model.CrmDeal) (*model.CrmDeal, int)
	GetDeal(projectID int64, id string) (*model.CrmDeal, int)
	GetDeals(projectID int64, stage string, limit, offset int) ([]model.CrmDeal, int)
	UpdateDeal(projectID int64, id string, updatable *model.UpdatableCrmDeal) (*model.CrmDeal, int)
	DeleteDeal(projectID int64, id string) int
	UpdateDealStage(projectID int64, id string, payload *model.DealStageTransitionPayload) (*model.CrmDeal, int)
	GetDealStageHistory(projectID int64, dealID string) ([]model.DealStageHistory, int)
	AddDealContact(projectID int64, dealID, contactID, role string) (*model.DealContact, int)
	RemoveDealContact(projectID int64, dealID, contactID string) int
	GetContactsForDeal(projectID int64, dealID string) ([]model.Contact, int)

	// prospect_list
	PreviewProspectFilters(projectID int64, filters *model.ProspectFilters) (*model.ProspectPreview, int)
	CreateProspectList(projectID int64, name, description, createdBy string, filters *model.ProspectFilters) (*model.ProspectList, int)
	GetProspectList(projectID int64, id string) (*model.ProspectList, int)
	GetProspectLists(projectID int64, limit, offset int) ([]model.ProspectList, int)
	RefreshProspectList(projectID int64, id string) (*model.ProspectList, int)
	DeleteProspectList(projectID int64, id string) int
	GetProspectListItems(projectID int64, listID string, limit, offset int) ([]model.ProspectListItem, int)
	UpdateProspectListItem(projectID int64, listID, itemID string, updatable *model.UpdatableProspectListItem) int
	GetProspectListExportRows(projectID int64, listID string) ([]model.ProspectExportRow, int)

	// listing_site
	CreateListingSite(projectID int64, site *model.ListingSite) (*model.ListingSite, int)
	GetListingSite(projectID int64, id string) (*model.ListingSite, int)
	GetListingSites(projectID int64, limit, offset int) ([]model.ListingSite, int)
	UpdateListingSite(projectID int64, id string, updatable *model.UpdatableListingSite) (*model.ListingSite, int)
	SetListingSitePublished(projectID int64, id string, published bool) int
	DeleteListingSite(projectID int64, id string) int
	GetPublicListingBySlug(slug string) (*model.PublicListing, int)
	CreateListingLead(slug string, lead *model.ListingLead) (*model.ListingLead, int)
	GetListingLeads(projectID int64, siteID string, limit, offset int) ([]model.ListingLead, int)

	// budget / expense
	CreateBudget(projectID int64, budget *model.Budget) (*model.Budget, int)
	GetBudgets(projectID int64, propertyID string, limit, offset int) ([]model.Budget, int)
	UpdateBudget(projectID int64, id string, budget *model.Budget) (*model.Budget, int)
	DeleteBudget(projectID int64, id string) int
	CreateExpense(projectID int64, expense *model.Expense) (*model.Expense, int)
	GetExpenses(projectID int64, propertyID string, limit, offset int) ([]model.Expense, int)
	UpdateExpense(projectID int64, id string, expense *model.Expense) (*model.Expense, int)
	DeleteExpense(projectID int64, id string) int

	// vendor
	CreateVendor(projectID int64, vendor *model.Vendor) (*model.Vendor, int)
	GetVendors(projectID int64, limit, offset int) ([]model.Vendor, int)
	UpdateVendor(projectID int64, id string, vendor *model.Vendor) (*model.Vendor, int)
	DeleteVendor(projectID int64, id string) int

	// property_photo
	CreatePropertyPhoto(projectID int64, photo *model.PropertyPhoto) (*model.PropertyPhoto, int)
	GetPropertyPhotos(projectID int64, propertyID string) ([]model.PropertyPhoto, int)
	SetPrimaryPropertyPhoto(projectID int64, propertyID, photoID string) int
	ReorderPropertyPhotos(projectID int64, propertyID string, photoIDs []string) int
	DeletePropertyPhoto(projectID int64, id string) int

	// rent_payment
	CreateRentPayment(projectID int64, payment *model.RentPayment) (*model.RentPayment, int)
	GetRentPayments(projectID int64, propertyID string, limit, offset int) ([]model.RentPayment, int)
	GetRentPaymentsForMonth(projectID int64, propertyID string, month time.Time) ([]model.RentPayment, int)
	UpdateRentPayment(projectID int64, id string, payment *model.RentPayment) (*model.RentPayment, int)

	// capital_project
	CreateCapitalProject(projectID int64, capProject *model.CapitalProject) (*model.CapitalProject, int)
	GetCapitalProjects(projectID int64, propertyID string, limit, offset int) ([]model.CapitalProject, int)
	UpdateCapitalProject(projectID int64, id string, capProject *model.CapitalProject) (*model.CapitalProject, int)
	DeleteCapitalProject(projectID int64, id string) int
}
