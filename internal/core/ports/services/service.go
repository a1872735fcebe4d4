package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Currency  CurrencySvcFacade
	User      UserSvcFacade
	Catalog   CatalogSvcFacade
	Product   ProductSvcFacade
	PriceList PriceListSvcFacade
	Customer  CustomerSvcFacade
	Supplier  SupplierSvcFacade
	Sale      SaleSvcFacade
	Payment   PaymentSvcFacade
	Purchase  PurchaseSvcFacade
	Expense   ExpenseSvcFacade
	Return    ReturnSvcFacade
	Reporting ReportingSvcFacade
}
