package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ExchangeRateRepo ExchangeRateRepositoryFacade
	UserRepo         UserRepositoryFacade
	CatalogRepo      CatalogRepositoryFacade
	ProductRepo      ProductRepositoryFacade
	PriceListRepo    PriceListRepositoryFacade
	CustomerRepo     CustomerRepositoryFacade
	SupplierRepo     SupplierRepositoryFacade
	SaleRepo         SaleRepositoryFacade
	PurchaseRepo     PurchaseRepositoryFacade
	ExpenseRepo      ExpenseRepositoryFacade
	PaymentRepo      PaymentRepositoryFacade
	ReturnRepo       ReturnRepositoryFacade
	ReportingRepo    ReportingRepositoryFacade
}
