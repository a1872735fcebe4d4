package pgsql

import (
	portsrepo "github.com/RamaTay/DecorERP/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool DBPool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		CatalogRepo:      newPgxCatalogRepository(dbPool),
		ProductRepo:      newPgxProductRepository(dbPool),
		PriceListRepo:    newPgxPriceListRepository(dbPool),
		CustomerRepo:     newPgxCustomerRepository(dbPool),
		SupplierRepo:     newPgxSupplierRepository(dbPool),
		SaleRepo:         newPgxSaleRepository(dbPool),
		PurchaseRepo:     newPgxPurchaseRepository(dbPool),
		ExpenseRepo:      newPgxExpenseRepository(dbPool),
		PaymentRepo:      newPgxPaymentRepository(dbPool),
		ReturnRepo:       newPgxReturnRepository(dbPool),
		ReportingRepo:    newPgxReportingRepository(dbPool),
	}
}
