package handler

import (
	"net/http"

	mid "brokerbase/middleware"

	"github.com/gin-gonic/gin"
)

// InitAppRoutes registers all API routes. Authenticated routes resolve the
// project from the bearer token; public microsite routes take no auth and
// run on their own rate-limit class.
func InitAppRoutes(r *gin.Engine) {
	r.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})

	api := r.Group("/api")
	api.Use(mid.SetScopeProjectByToken())
	api.Use(mid.RateLimit(mid.RateLimitClassAPI))

	// master properties
	api.GET("/master-properties", GetMasterPropertiesHandler)
	api.POST("/master-properties", CreateMasterPropertyHandler)
	api.GET("/master-properties/:property_id", GetMasterPropertyHandler)
	api.PUT("/master-properties/:property_id", UpdateMasterPropertyHandler)
	api.DELETE("/master-properties/:property_id", DeleteMasterPropertyHandler)
	api.POST("/master-properties/:property_id/verify", VerifyMasterPropertyHandler)
	api.GET("/master-properties/:property_id/transactions", GetTransactionsByPropertyHandler)
	api.GET("/master-properties/:property_id/contacts", GetContactsForPropertyHandler)
	api.GET("/master-properties/:property_id/photos", GetPropertyPhotosHandler)
	api.POST("/master-properties/:property_id/photos", CreatePropertyPhotoHandler)
	api.POST("/master-properties/:property_id/photos/:photo_id/primary", SetPrimaryPropertyPhotoHandler)
	api.PUT("/master-properties/:property_id/photos/order", ReorderPropertyPhotosHandler)
	api.GET("/master-properties/:property_id/rent-payments", GetRentPaymentsHandler)

	// bulk import runs on a tighter rate-limit class
	api.POST("/master-properties/import",
		mid.RateLimit(mid.RateLimitClassImport), ImportPropertiesHandler)
	api.GET("/import-batches", GetImportBatchesHandler)
	api.GET("/import-batches/:batch_id", GetImportBatchHandler)

	// transactions
	api.POST("/transactions", CreateTransactionHandler)
	api.GET("/transactions/:transaction_id", GetTransactionHandler)

	// contacts
	api.GET("/contacts", GetContactsHandler)
	api.POST("/contacts", CreateContactHandler)
	api.GET("/contacts/:contact_id", GetContactHandler)
	api.PUT("/contacts/:contact_id", UpdateContactHandler)
	api.DELETE("/contacts/:contact_id", DeleteContactHandler)
	api.POST("/contacts/:contact_id/properties", LinkContactToPropertyHandler)
	api.DELETE("/contacts/:contact_id/properties/:property_id", UnlinkContactFromPropertyHandler)

	// companies
	api.GET("/companies", GetCompaniesHandler)
	api.POST("/companies", CreateCompanyHandler)
	api.GET("/companies/:company_id", GetCompanyHandler)
	api.PUT("/companies/:company_id", UpdateCompanyHandler)
	api.DELETE("/companies/:company_id", DeleteCompanyHandler)

	// deals
	api.GET("/deals", GetDealsHandler)
	api.POST("/deals", CreateDealHandler)
	api.GET("/deals/:deal_id", GetDealHandler)
	api.PUT("/deals/:deal_id", UpdateDealHandler)
	api.DELETE("/deals/:deal_id", DeleteDealHandler)
	api.POST("/deals/:deal_id/stage", UpdateDealStageHandler)
	api.GET("/deals/:deal_id/stage-history", GetDealStageHistoryHandler)
	api.GET("/deals/:deal_id/contacts", GetContactsForDealHandler)
	api.POST("/deals/:deal_id/contacts", AddDealContactHandler)
	api.DELETE("/deals/:deal_id/contacts/:contact_id", RemoveDealContactHandler)

	// prospect lists
	api.POST("/prospect-lists/preview", PreviewProspectFiltersHandler)
	api.GET("/prospect-lists", GetProspectListsHandler)
	api.POST("/prospect-lists", CreateProspectListHandler)
	api.GET("/prospect-lists/:list_id", GetProspectListHandler)
	api.POST("/prospect-lists/:list_id/refresh", RefreshProspectListHandler)
	api.DELETE("/prospect-lists/:list_id", DeleteProspectListHandler)
	api.GET("/prospect-lists/:list_id/items", GetProspectListItemsHandler)
	api.PUT("/prospect-lists/:list_id/items/:item_id", UpdateProspectListItemHandler)
	api.GET("/prospect-lists/:list_id/export", ExportProspectListHandler)

	// listing sites
	api.GET("/listing-sites", GetListingSitesHandler)
	api.POST("/listing-sites", CreateListingSiteHandler)
	api.GET("/listing-sites/:site_id", GetListingSiteHandler)
	api.PUT("/listing-sites/:site_id", UpdateListingSiteHandler)
	api.POST("/listing-sites/:site_id/publish", PublishListingSiteHandler)
	api.DELETE("/listing-sites/:site_id", DeleteListingSiteHandler)
	api.GET("/listing-sites/:site_id/leads", GetListingLeadsHandler)

	// property ops
	api.GET("/budgets", GetBudgetsHandler)
	api.POST("/budgets", CreateBudgetHandler)
	api.PUT("/budgets/:budget_id", UpdateBudgetHandler)
	api.DELETE("/budgets/:budget_id", DeleteBudgetHandler)
	api.GET("/expenses", GetExpensesHandler)
	api.POST("/expenses", CreateExpenseHandler)
	api.PUT("/expenses/:expense_id", UpdateExpenseHandler)
	api.DELETE("/expenses/:expense_id", DeleteExpenseHandler)
	api.GET("/vendors", GetVendorsHandler)
	api.POST("/vendors", CreateVendorHandler)
	api.PUT("/vendors/:vendor_id", UpdateVendorHandler)
	api.DELETE("/vendors/:vendor_id", DeleteVendorHandler)
	api.DELETE("/photos/:photo_id", DeletePropertyPhotoHandler)
	api.POST("/rent-payments", CreateRentPaymentHandler)
	api.PUT("/rent-payments/:payment_id", UpdateRentPaymentHandler)
	api.GET("/capital-projects", GetCapitalProjectsHandler)
	api.POST("/capital-projects", CreateCapitalProjectHandler)
	api.PUT("/capital-projects/:capital_project_id", UpdateCapitalProjectHandler)
	api.DELETE("/capital-projects/:capital_project_id", DeleteCapitalProjectHandler)

	// public microsites, no auth
	public := r.Group("/api/public")
	public.Use(mid.RateLimit(mid.RateLimitClassPublic))
	public.GET("/listings/:slug", GetPublicListingHandler)
	public.POST("/listings/:slug/leads", CreateListingLeadHandler)
}
