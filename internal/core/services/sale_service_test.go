package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/RamaTay/DecorERP/internal/apperrors"
	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/RamaTay/DecorERP/internal/core/services"
	"github.com/RamaTay/DecorERP/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo      *MockSaleRepository
	mockCustomerRepo  *MockCustomerRepository
	mockProductRepo   *MockProductRepository
	mockPriceListRepo *MockPriceListRepository
	mockCurrencySvc   *MockCurrencyReader
	service           *services.SaleService

	customerID  string
	priceListID string
	productID   string
	unitSizeID  string
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockPriceListRepo = new(MockPriceListRepository)
	suite.mockCurrencySvc = new(MockCurrencyReader)
	suite.service = services.NewSaleService(
		suite.mockSaleRepo,
		suite.mockCustomerRepo,
		suite.mockProductRepo,
		suite.mockPriceListRepo,
		suite.mockCurrencySvc,
	)

	suite.customerID = uuid.NewString()
	suite.priceListID = uuid.NewString()
	suite.productID = uuid.NewString()
	suite.unitSizeID = uuid.NewString()
}

func (suite *SaleServiceTestSuite) mockHappyPathLookups(priceUSD decimal.Decimal, stockLevel int) {
	ctx := context.Background()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customerID).Return(&domain.Customer{
		CustomerID:         suite.customerID,
		FullName:           "Layla Haddad",
		DefaultPriceListID: suite.priceListID,
	}, nil).Once()
	suite.mockPriceListRepo.On("FindPriceListByID", ctx, suite.priceListID).Return(&domain.PriceList{
		PriceListID: suite.priceListID,
		Name:        "Retail",
		Status:      domain.PriceListActive,
	}, nil).Once()
	suite.mockProductRepo.On("FindProductUnitSize", ctx, suite.productID, suite.unitSizeID).Return(&domain.ProductUnitSize{
		ProductUnitSizeID: uuid.NewString(),
		ProductID:         suite.productID,
		UnitSizeID:        suite.unitSizeID,
		SKU:               "PNT-GAL-01",
		StockLevel:        stockLevel,
	}, nil).Once()
	suite.mockPriceListRepo.On("FindPriceListItem", ctx, suite.priceListID, suite.productID, suite.unitSizeID).Return(&domain.PriceListItem{
		PriceListID: suite.priceListID,
		ProductID:   suite.productID,
		UnitSizeID:  suite.unitSizeID,
		Price:       priceUSD,
	}, nil).Once()
}

func (suite *SaleServiceTestSuite) TestCreateSale_USD() {
	ctx := context.Background()
	suite.mockHappyPathLookups(decimal.NewFromFloat(19.995), 10)

	var saved domain.Sale
	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Sale) }).
		Return(nil).Once()
	suite.mockSaleRepo.On("FindSaleByID", ctx, mock.AnythingOfType("string")).Return(&saved, nil).Once()

	req := dto.CreateSaleRequest{
		CustomerID:    suite.customerID,
		Currency:      "USD",
		PaymentMethod: "cash",
		Items: []dto.SaleItemInput{
			{ProductID: suite.productID, UnitSizeID: suite.unitSizeID, Quantity: 2},
		},
	}

	sale, err := suite.service.CreateSale(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	suite.Equal(domain.SaleCompleted, saved.Status)
	suite.Equal(suite.priceListID, saved.PriceListID)
	suite.Require().Len(saved.Items, 1)
	// 19.995 rounds to 20.00 per unit before the line total is taken.
	suite.True(saved.Items[0].UnitPrice.Equal(decimal.NewFromInt(20)), "unit price %s", saved.Items[0].UnitPrice)
	suite.True(saved.Items[0].Subtotal.Equal(decimal.NewFromInt(40)), "subtotal %s", saved.Items[0].Subtotal)
	suite.True(saved.TotalAmount.Equal(decimal.NewFromInt(40)), "total %s", saved.TotalAmount)
	suite.Nil(saved.SYPAmount)
	suite.Nil(saved.TransactionExchangeRate)
	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockCurrencySvc.AssertNotCalled(suite.T(), "CurrentRate")
}

func (suite *SaleServiceTestSuite) TestCreateSale_SYPCeilsUnitPriceToHundreds() {
	ctx := context.Background()
	suite.mockHappyPathLookups(decimal.NewFromFloat(4.37), 10)
	suite.mockCurrencySvc.On("CurrentRate", ctx).Return(decimal.NewFromInt(13000), false, nil).Once()

	var saved domain.Sale
	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Sale) }).
		Return(nil).Once()
	suite.mockSaleRepo.On("FindSaleByID", ctx, mock.AnythingOfType("string")).Return(&saved, nil).Once()

	req := dto.CreateSaleRequest{
		CustomerID:    suite.customerID,
		Currency:      "SYP",
		PaymentMethod: "cash",
		Items: []dto.SaleItemInput{
			{ProductID: suite.productID, UnitSizeID: suite.unitSizeID, Quantity: 1},
		},
	}

	_, err := suite.service.CreateSale(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().Len(saved.Items, 1)
	// 4.37 * 13000 = 56810 raw; the unit sale price ceils to 56900.
	suite.True(saved.Items[0].UnitPrice.Equal(decimal.NewFromInt(56900)), "unit price %s", saved.Items[0].UnitPrice)
	suite.Require().NotNil(saved.SYPAmount)
	suite.True(saved.SYPAmount.Equal(decimal.NewFromInt(56900)), "SYP total %s", saved.SYPAmount)
	suite.Require().NotNil(saved.TransactionExchangeRate)
	suite.True(saved.TransactionExchangeRate.Equal(decimal.NewFromInt(13000)))
	// Canonical USD total is the SYP total back-converted at the frozen rate.
	suite.True(saved.TotalAmount.Equal(decimal.NewFromFloat(4.38)), "USD total %s", saved.TotalAmount)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSale_BackdatedSYPUsesHistoricalRate() {
	ctx := context.Background()
	suite.mockHappyPathLookups(decimal.NewFromInt(10), 10)

	saleDate := time.Now().AddDate(0, -1, 0)
	suite.mockCurrencySvc.On("RateForDate", ctx, saleDate).Return(decimal.NewFromInt(12000), nil).Once()

	var saved domain.Sale
	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Sale) }).
		Return(nil).Once()
	suite.mockSaleRepo.On("FindSaleByID", ctx, mock.AnythingOfType("string")).Return(&saved, nil).Once()

	req := dto.CreateSaleRequest{
		CustomerID:    suite.customerID,
		Currency:      "SYP",
		PaymentMethod: "cash",
		SaleDate:      &saleDate,
		Items: []dto.SaleItemInput{
			{ProductID: suite.productID, UnitSizeID: suite.unitSizeID, Quantity: 1},
		},
	}

	_, err := suite.service.CreateSale(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(saved.SaleDate.Equal(saleDate))
	suite.Require().NotNil(saved.TransactionExchangeRate)
	// The rate in effect on the sale date is frozen, not today's default.
	suite.True(saved.TransactionExchangeRate.Equal(decimal.NewFromInt(12000)), "rate %s", saved.TransactionExchangeRate)
	suite.mockCurrencySvc.AssertNotCalled(suite.T(), "CurrentRate")
	suite.mockCurrencySvc.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSale_ExplicitRateOverrideWins() {
	ctx := context.Background()
	suite.mockHappyPathLookups(decimal.NewFromInt(10), 10)

	override := decimal.NewFromInt(14000)
	var saved domain.Sale
	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Sale) }).
		Return(nil).Once()
	suite.mockSaleRepo.On("FindSaleByID", ctx, mock.AnythingOfType("string")).Return(&saved, nil).Once()

	req := dto.CreateSaleRequest{
		CustomerID:              suite.customerID,
		Currency:                "SYP",
		TransactionExchangeRate: &override,
		PaymentMethod:           "cash",
		Items: []dto.SaleItemInput{
			{ProductID: suite.productID, UnitSizeID: suite.unitSizeID, Quantity: 1},
		},
	}

	_, err := suite.service.CreateSale(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(saved.TransactionExchangeRate)
	suite.True(saved.TransactionExchangeRate.Equal(override))
	// 10 * 14000 = 140000, already on a hundreds boundary.
	suite.Require().NotNil(saved.SYPAmount)
	suite.True(saved.SYPAmount.Equal(decimal.NewFromInt(140000)), "SYP total %s", saved.SYPAmount)
	suite.mockCurrencySvc.AssertNotCalled(suite.T(), "CurrentRate")
	suite.mockCurrencySvc.AssertNotCalled(suite.T(), "RateForDate")
}

func (suite *SaleServiceTestSuite) TestCreateSale_RejectsNonPositiveRateOverride() {
	ctx := context.Background()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customerID).Return(&domain.Customer{
		CustomerID:         suite.customerID,
		DefaultPriceListID: suite.priceListID,
	}, nil).Once()
	suite.mockPriceListRepo.On("FindPriceListByID", ctx, suite.priceListID).Return(&domain.PriceList{
		PriceListID: suite.priceListID,
		Status:      domain.PriceListActive,
	}, nil).Once()

	override := decimal.Zero
	req := dto.CreateSaleRequest{
		CustomerID:              suite.customerID,
		Currency:                "SYP",
		TransactionExchangeRate: &override,
		PaymentMethod:           "cash",
		Items: []dto.SaleItemInput{
			{ProductID: suite.productID, UnitSizeID: suite.unitSizeID, Quantity: 1},
		},
	}

	sale, err := suite.service.CreateSale(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "exchange rate must be positive")
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale")
}

func (suite *SaleServiceTestSuite) TestCreateSale_InsufficientStock() {
	ctx := context.Background()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customerID).Return(&domain.Customer{
		CustomerID:         suite.customerID,
		DefaultPriceListID: suite.priceListID,
	}, nil).Once()
	suite.mockPriceListRepo.On("FindPriceListByID", ctx, suite.priceListID).Return(&domain.PriceList{
		PriceListID: suite.priceListID,
		Status:      domain.PriceListActive,
	}, nil).Once()
	suite.mockProductRepo.On("FindProductUnitSize", ctx, suite.productID, suite.unitSizeID).Return(&domain.ProductUnitSize{
		SKU:        "PNT-GAL-01",
		StockLevel: 1,
	}, nil).Once()

	req := dto.CreateSaleRequest{
		CustomerID:    suite.customerID,
		Currency:      "USD",
		PaymentMethod: "cash",
		Items: []dto.SaleItemInput{
			{ProductID: suite.productID, UnitSizeID: suite.unitSizeID, Quantity: 3},
		},
	}

	sale, err := suite.service.CreateSale(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "insufficient stock")
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale")
}

func (suite *SaleServiceTestSuite) TestCreateSale_NoPriceListAnywhere() {
	ctx := context.Background()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customerID).Return(&domain.Customer{
		CustomerID: suite.customerID,
	}, nil).Once()

	req := dto.CreateSaleRequest{
		CustomerID:    suite.customerID,
		Currency:      "USD",
		PaymentMethod: "cash",
		Items: []dto.SaleItemInput{
			{ProductID: suite.productID, UnitSizeID: suite.unitSizeID, Quantity: 1},
		},
	}

	sale, err := suite.service.CreateSale(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "no price list")
}

func (suite *SaleServiceTestSuite) TestCreateSale_UnpricedVariant() {
	ctx := context.Background()
	suite.mockHappyPathLookups(decimal.Zero, 10)

	req := dto.CreateSaleRequest{
		CustomerID:    suite.customerID,
		Currency:      "USD",
		PaymentMethod: "cash",
		Items: []dto.SaleItemInput{
			{ProductID: suite.productID, UnitSizeID: suite.unitSizeID, Quantity: 1},
		},
	}

	sale, err := suite.service.CreateSale(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "no price in list")
}

func (suite *SaleServiceTestSuite) TestCreateSale_PaymentExceedsTotal() {
	ctx := context.Background()
	suite.mockHappyPathLookups(decimal.NewFromInt(20), 10)

	overpay := decimal.NewFromInt(100)
	req := dto.CreateSaleRequest{
		CustomerID:    suite.customerID,
		Currency:      "USD",
		PaymentAmount: &overpay,
		PaymentMethod: "cash",
		Items: []dto.SaleItemInput{
			{ProductID: suite.productID, UnitSizeID: suite.unitSizeID, Quantity: 1},
		},
	}

	sale, err := suite.service.CreateSale(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "exceeds sale total")
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale")
}

func (suite *SaleServiceTestSuite) TestCreateSale_InactivePriceList() {
	ctx := context.Background()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customerID).Return(&domain.Customer{
		CustomerID:         suite.customerID,
		DefaultPriceListID: suite.priceListID,
	}, nil).Once()
	suite.mockPriceListRepo.On("FindPriceListByID", ctx, suite.priceListID).Return(&domain.PriceList{
		PriceListID: suite.priceListID,
		Name:        "Old Retail",
		Status:      domain.PriceListInactive,
	}, nil).Once()

	req := dto.CreateSaleRequest{
		CustomerID:    suite.customerID,
		Currency:      "USD",
		PaymentMethod: "cash",
		Items: []dto.SaleItemInput{
			{ProductID: suite.productID, UnitSizeID: suite.unitSizeID, Quantity: 1},
		},
	}

	sale, err := suite.service.CreateSale(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "not active")
}

func (suite *SaleServiceTestSuite) TestCancelSale_RestoresViaRepo() {
	ctx := context.Background()
	saleID := uuid.NewString()
	stored := &domain.Sale{
		SaleID: saleID,
		Status: domain.SaleCompleted,
	}
	suite.mockSaleRepo.On("FindSaleByID", ctx, saleID).Return(stored, nil).Twice()
	suite.mockSaleRepo.On("CancelSale", ctx, mock.AnythingOfType("domain.Sale")).
		Run(func(args mock.Arguments) {
			cancelled := args.Get(1).(domain.Sale)
			suite.Equal(domain.SaleCancelled, cancelled.Status)
			suite.Contains(cancelled.Notes, "Cancelled: damaged stock")
		}).
		Return(nil).Once()

	_, err := suite.service.CancelSale(ctx, saleID, dto.CancelSaleRequest{Reason: "damaged stock"}, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCancelSale_AlreadyCancelled() {
	ctx := context.Background()
	saleID := uuid.NewString()
	suite.mockSaleRepo.On("FindSaleByID", ctx, saleID).Return(&domain.Sale{
		SaleID: saleID,
		Status: domain.SaleCancelled,
	}, nil).Once()

	sale, err := suite.service.CancelSale(ctx, saleID, dto.CancelSaleRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "CancelSale")
}

func (suite *SaleServiceTestSuite) TestListSales_NilIsEmpty() {
	ctx := context.Background()
	suite.mockSaleRepo.On("FindSales", ctx, 20, 0).Return(nil, nil).Once()

	sales, err := suite.service.ListSales(ctx, 20, 0)

	suite.Require().NoError(err)
	suite.NotNil(sales)
	suite.Empty(sales)
}

func TestSaleService(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
