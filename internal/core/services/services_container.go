package services

import (
	portsrepo "github.com/RamaTay/DecorERP/internal/core/ports/repositories"
	portssvc "github.com/RamaTay/DecorERP/internal/core/ports/services"
	"github.com/RamaTay/DecorERP/internal/platform/config"
)

// NewServiceContainer wires every application service against the repository
// provider. The currency service is built first and shared with every
// service that converts between USD and SYP.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	currencySvc := NewCurrencyService(repos.ExchangeRateRepo)

	return &portssvc.ServiceContainer{
		Currency:  currencySvc,
		User:      NewUserService(cfg, repos.UserRepo),
		Catalog:   NewCatalogService(repos.CatalogRepo),
		Product:   NewProductService(repos.ProductRepo),
		PriceList: NewPriceListService(repos.PriceListRepo),
		Customer:  NewCustomerService(repos.CustomerRepo),
		Supplier:  NewSupplierService(repos.SupplierRepo),
		Sale:      NewSaleService(repos.SaleRepo, repos.CustomerRepo, repos.ProductRepo, repos.PriceListRepo, currencySvc),
		Payment:   NewPaymentService(repos.PaymentRepo, repos.SaleRepo, currencySvc),
		Purchase:  NewPurchaseService(repos.PurchaseRepo, repos.SupplierRepo, repos.ProductRepo),
		Expense:   NewExpenseService(repos.ExpenseRepo, currencySvc),
		Return:    NewReturnService(repos.ReturnRepo, repos.SaleRepo, repos.PurchaseRepo, repos.ProductRepo, currencySvc),
		Reporting: NewReportingService(repos.ReportingRepo),
	}
}
