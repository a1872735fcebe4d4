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

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockSaleRepo    *MockSaleRepository
	mockCurrencySvc *MockCurrencyReader
	service         *services.PaymentService
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockCurrencySvc = new(MockCurrencyReader)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockSaleRepo, suite.mockCurrencySvc)
}

func (suite *PaymentServiceTestSuite) completedSale(totalUSD, paidUSD decimal.Decimal) *domain.Sale {
	return &domain.Sale{
		SaleID:        uuid.NewString(),
		CustomerID:    uuid.NewString(),
		Currency:      domain.CurrencyUSD,
		TotalAmount:   totalUSD,
		PaymentAmount: paidUSD,
		Status:        domain.SaleCompleted,
	}
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_USD() {
	ctx := context.Background()
	sale := suite.completedSale(decimal.NewFromInt(100), decimal.NewFromInt(40))
	suite.mockSaleRepo.On("FindSaleByID", ctx, sale.SaleID).Return(sale, nil).Once()
	suite.mockSaleRepo.On("AddPaymentToSale", ctx, mock.AnythingOfType("domain.CustomerPayment"), mock.AnythingOfType("domain.Sale")).Return(nil).Once()

	req := dto.CreatePaymentRequest{
		SaleID:        sale.SaleID,
		Currency:      "USD",
		Amount:        decimal.NewFromInt(60),
		PaymentMethod: "cash",
	}

	payment, err := suite.service.RecordPayment(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.Equal(sale.SaleID, payment.SaleID)
	suite.Equal(sale.CustomerID, payment.CustomerID)
	suite.True(payment.Amount.Equal(decimal.NewFromInt(60)))
	suite.Nil(payment.SYPAmount)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_SYPConvertsAtCurrentRate() {
	ctx := context.Background()
	sale := suite.completedSale(decimal.NewFromInt(150), decimal.Zero)
	suite.mockSaleRepo.On("FindSaleByID", ctx, sale.SaleID).Return(sale, nil).Once()
	suite.mockCurrencySvc.On("CurrentRate", ctx).Return(decimal.NewFromInt(13000), false, nil).Once()
	suite.mockSaleRepo.On("AddPaymentToSale", ctx, mock.AnythingOfType("domain.CustomerPayment"), mock.AnythingOfType("domain.Sale")).Return(nil).Once()

	req := dto.CreatePaymentRequest{
		SaleID:        sale.SaleID,
		Currency:      "SYP",
		Amount:        decimal.NewFromInt(1300000),
		PaymentMethod: "cash",
	}

	payment, err := suite.service.RecordPayment(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	// 1,300,000 SYP at 13000 books as $100.00, with the native figure kept.
	suite.True(payment.Amount.Equal(decimal.NewFromInt(100)), "amount %s", payment.Amount)
	suite.Require().NotNil(payment.SYPAmount)
	suite.True(payment.SYPAmount.Equal(decimal.NewFromInt(1300000)))
	suite.Require().NotNil(payment.TransactionExchangeRate)
	suite.True(payment.TransactionExchangeRate.Equal(decimal.NewFromInt(13000)))
	suite.mockCurrencySvc.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_BackdatedSYPUsesHistoricalRate() {
	ctx := context.Background()
	sale := suite.completedSale(decimal.NewFromInt(150), decimal.Zero)
	sale.SaleDate = time.Now().AddDate(0, -2, 0)
	paymentDate := time.Now().AddDate(0, -1, 0)
	suite.mockSaleRepo.On("FindSaleByID", ctx, sale.SaleID).Return(sale, nil).Once()
	suite.mockCurrencySvc.On("RateForDate", ctx, paymentDate).Return(decimal.NewFromInt(12000), nil).Once()
	suite.mockSaleRepo.On("AddPaymentToSale", ctx, mock.AnythingOfType("domain.CustomerPayment"), mock.AnythingOfType("domain.Sale")).Return(nil).Once()

	req := dto.CreatePaymentRequest{
		SaleID:        sale.SaleID,
		Currency:      "SYP",
		Amount:        decimal.NewFromInt(1200000),
		PaymentDate:   &paymentDate,
		PaymentMethod: "cash",
	}

	payment, err := suite.service.RecordPayment(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	// The rate in effect on the payment date converts the native figure.
	suite.True(payment.Amount.Equal(decimal.NewFromInt(100)), "amount %s", payment.Amount)
	suite.Require().NotNil(payment.TransactionExchangeRate)
	suite.True(payment.TransactionExchangeRate.Equal(decimal.NewFromInt(12000)))
	suite.mockCurrencySvc.AssertNotCalled(suite.T(), "CurrentRate")
	suite.mockCurrencySvc.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_ExceedsOutstanding() {
	ctx := context.Background()
	sale := suite.completedSale(decimal.NewFromInt(100), decimal.NewFromInt(80))
	suite.mockSaleRepo.On("FindSaleByID", ctx, sale.SaleID).Return(sale, nil).Once()

	req := dto.CreatePaymentRequest{
		SaleID:        sale.SaleID,
		Currency:      "USD",
		Amount:        decimal.NewFromInt(30),
		PaymentMethod: "cash",
	}

	payment, err := suite.service.RecordPayment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "exceeds outstanding balance")
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "AddPaymentToSale")
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_RejectsNonPositiveAmount() {
	ctx := context.Background()

	req := dto.CreatePaymentRequest{
		SaleID:        uuid.NewString(),
		Currency:      "USD",
		Amount:        decimal.Zero,
		PaymentMethod: "cash",
	}

	payment, err := suite.service.RecordPayment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "must be positive")
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "FindSaleByID")
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_CancelledSale() {
	ctx := context.Background()
	sale := suite.completedSale(decimal.NewFromInt(100), decimal.Zero)
	sale.Status = domain.SaleCancelled
	suite.mockSaleRepo.On("FindSaleByID", ctx, sale.SaleID).Return(sale, nil).Once()

	req := dto.CreatePaymentRequest{
		SaleID:        sale.SaleID,
		Currency:      "USD",
		Amount:        decimal.NewFromInt(10),
		PaymentMethod: "cash",
	}

	payment, err := suite.service.RecordPayment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "completed sales")
}

func (suite *PaymentServiceTestSuite) TestListPaymentsBySale_NilIsEmpty() {
	ctx := context.Background()
	saleID := uuid.NewString()
	suite.mockPaymentRepo.On("FindPaymentsBySale", ctx, saleID).Return(nil, nil).Once()

	payments, err := suite.service.ListPaymentsBySale(ctx, saleID)

	suite.Require().NoError(err)
	suite.NotNil(payments)
	suite.Empty(payments)
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
