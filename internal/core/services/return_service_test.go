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

type ReturnServiceTestSuite struct {
	suite.Suite
	mockReturnRepo   *MockReturnRepository
	mockSaleRepo     *MockSaleRepository
	mockPurchaseRepo *MockPurchaseRepository
	mockProductRepo  *MockProductRepository
	mockCurrencySvc  *MockCurrencyReader
	service          *services.ReturnService

	productID  string
	unitSizeID string
}

func (suite *ReturnServiceTestSuite) SetupTest() {
	suite.mockReturnRepo = new(MockReturnRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockCurrencySvc = new(MockCurrencyReader)
	suite.service = services.NewReturnService(
		suite.mockReturnRepo,
		suite.mockSaleRepo,
		suite.mockPurchaseRepo,
		suite.mockProductRepo,
		suite.mockCurrencySvc,
	)

	suite.productID = uuid.NewString()
	suite.unitSizeID = uuid.NewString()
}

func (suite *ReturnServiceTestSuite) returnItems(unitPrice decimal.Decimal) []dto.ReturnItemInput {
	return []dto.ReturnItemInput{
		{ProductID: suite.productID, UnitSizeID: suite.unitSizeID, Quantity: 2, UnitPrice: unitPrice, ItemCondition: "sealed"},
	}
}

func (suite *ReturnServiceTestSuite) TestCreateReturn_AgainstCompletedSale() {
	ctx := context.Background()
	saleID := uuid.NewString()
	suite.mockSaleRepo.On("FindSaleByID", ctx, saleID).Return(&domain.Sale{
		SaleID: saleID,
		Status: domain.SaleCompleted,
	}, nil).Once()
	suite.mockProductRepo.On("FindProductUnitSize", ctx, suite.productID, suite.unitSizeID).Return(&domain.ProductUnitSize{
		ProductID:  suite.productID,
		UnitSizeID: suite.unitSizeID,
	}, nil).Once()

	var saved domain.Return
	suite.mockReturnRepo.On("SaveReturn", ctx, mock.AnythingOfType("domain.Return")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Return) }).
		Return(nil).Once()
	suite.mockReturnRepo.On("FindReturnByID", ctx, mock.AnythingOfType("string")).Return(&saved, nil).Once()

	req := dto.CreateReturnRequest{
		Kind:          "sale",
		TransactionID: saleID,
		ReturnReason:  "wrong shade",
		Currency:      "USD",
		Items:         suite.returnItems(decimal.NewFromFloat(7.25)),
	}

	ret, err := suite.service.CreateReturn(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(ret)
	suite.Equal(domain.ReturnPending, saved.Status)
	suite.Equal(domain.RefundPending, saved.RefundStatus)
	suite.True(saved.RefundAmount.Equal(decimal.NewFromFloat(14.50)), "refund %s", saved.RefundAmount)
	suite.mockReturnRepo.AssertExpectations(suite.T())
}

func (suite *ReturnServiceTestSuite) TestCreateReturn_SYPConvertsRefund() {
	ctx := context.Background()
	saleID := uuid.NewString()
	suite.mockSaleRepo.On("FindSaleByID", ctx, saleID).Return(&domain.Sale{
		SaleID: saleID,
		Status: domain.SaleCompleted,
	}, nil).Once()
	suite.mockProductRepo.On("FindProductUnitSize", ctx, suite.productID, suite.unitSizeID).Return(&domain.ProductUnitSize{}, nil).Once()
	suite.mockCurrencySvc.On("CurrentRate", ctx).Return(decimal.NewFromInt(13000), false, nil).Once()

	var saved domain.Return
	suite.mockReturnRepo.On("SaveReturn", ctx, mock.AnythingOfType("domain.Return")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Return) }).
		Return(nil).Once()
	suite.mockReturnRepo.On("FindReturnByID", ctx, mock.AnythingOfType("string")).Return(&saved, nil).Once()

	req := dto.CreateReturnRequest{
		Kind:          "sale",
		TransactionID: saleID,
		ReturnReason:  "wrong shade",
		Currency:      "SYP",
		Items:         suite.returnItems(decimal.NewFromInt(56900)),
	}

	_, err := suite.service.CreateReturn(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(saved.SYPAmount)
	suite.True(saved.SYPAmount.Equal(decimal.NewFromInt(113800)), "SYP total %s", saved.SYPAmount)
	// 113800 / 13000 = 8.7538... books as $8.75.
	suite.True(saved.RefundAmount.Equal(decimal.NewFromFloat(8.75)), "refund %s", saved.RefundAmount)
	suite.Require().NotNil(saved.TransactionExchangeRate)
	suite.True(saved.TransactionExchangeRate.Equal(decimal.NewFromInt(13000)))
}

func (suite *ReturnServiceTestSuite) TestCreateReturn_BackdatedSYPUsesHistoricalRate() {
	ctx := context.Background()
	saleID := uuid.NewString()
	returnDate := time.Now().AddDate(0, 0, -10)
	suite.mockSaleRepo.On("FindSaleByID", ctx, saleID).Return(&domain.Sale{
		SaleID: saleID,
		Status: domain.SaleCompleted,
	}, nil).Once()
	suite.mockProductRepo.On("FindProductUnitSize", ctx, suite.productID, suite.unitSizeID).Return(&domain.ProductUnitSize{}, nil).Once()
	suite.mockCurrencySvc.On("RateForDate", ctx, returnDate).Return(decimal.NewFromInt(12000), nil).Once()

	var saved domain.Return
	suite.mockReturnRepo.On("SaveReturn", ctx, mock.AnythingOfType("domain.Return")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Return) }).
		Return(nil).Once()
	suite.mockReturnRepo.On("FindReturnByID", ctx, mock.AnythingOfType("string")).Return(&saved, nil).Once()

	req := dto.CreateReturnRequest{
		Kind:          "sale",
		TransactionID: saleID,
		ReturnDate:    &returnDate,
		ReturnReason:  "wrong shade",
		Currency:      "SYP",
		Items:         suite.returnItems(decimal.NewFromInt(60000)),
	}

	_, err := suite.service.CreateReturn(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(saved.ReturnDate.Equal(returnDate))
	suite.Require().NotNil(saved.TransactionExchangeRate)
	// The rate in effect on the return date converts the refund.
	suite.True(saved.TransactionExchangeRate.Equal(decimal.NewFromInt(12000)))
	// 2 * 60000 = 120000 SYP at 12000 books as a $10.00 refund.
	suite.True(saved.RefundAmount.Equal(decimal.NewFromInt(10)), "refund %s", saved.RefundAmount)
	suite.mockCurrencySvc.AssertNotCalled(suite.T(), "CurrentRate")
	suite.mockCurrencySvc.AssertExpectations(suite.T())
}

func (suite *ReturnServiceTestSuite) TestCreateReturn_CancelledSaleRejected() {
	ctx := context.Background()
	saleID := uuid.NewString()
	suite.mockSaleRepo.On("FindSaleByID", ctx, saleID).Return(&domain.Sale{
		SaleID: saleID,
		Status: domain.SaleCancelled,
	}, nil).Once()

	req := dto.CreateReturnRequest{
		Kind:          "sale",
		TransactionID: saleID,
		ReturnReason:  "wrong shade",
		Currency:      "USD",
		Items:         suite.returnItems(decimal.NewFromInt(5)),
	}

	ret, err := suite.service.CreateReturn(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(ret)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReturnRepo.AssertNotCalled(suite.T(), "SaveReturn")
}

func (suite *ReturnServiceTestSuite) TestUpdateReturnStatus_CompletionMovesStock() {
	ctx := context.Background()
	returnID := uuid.NewString()
	stored := &domain.Return{
		ReturnID: returnID,
		Kind:     domain.ReturnSale,
		Status:   domain.ReturnPending,
	}
	suite.mockReturnRepo.On("FindReturnByID", ctx, returnID).Return(stored, nil).Twice()
	suite.mockReturnRepo.On("UpdateReturnStatus", ctx, mock.AnythingOfType("domain.Return"), true).Return(nil).Once()

	status := "completed"
	req := dto.UpdateReturnStatusRequest{Status: &status}

	_, err := suite.service.UpdateReturnStatus(ctx, returnID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockReturnRepo.AssertExpectations(suite.T())
}

func (suite *ReturnServiceTestSuite) TestUpdateReturnStatus_RefundOnlyKeepsStockStill() {
	ctx := context.Background()
	returnID := uuid.NewString()
	stored := &domain.Return{
		ReturnID: returnID,
		Kind:     domain.ReturnSale,
		Status:   domain.ReturnCompleted,
	}
	suite.mockReturnRepo.On("FindReturnByID", ctx, returnID).Return(stored, nil).Twice()
	suite.mockReturnRepo.On("UpdateReturnStatus", ctx, mock.AnythingOfType("domain.Return"), false).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(domain.Return)
			suite.Equal(domain.RefundRefunded, updated.RefundStatus)
		}).
		Return(nil).Once()

	refundStatus := "refunded"
	req := dto.UpdateReturnStatusRequest{RefundStatus: &refundStatus}

	_, err := suite.service.UpdateReturnStatus(ctx, returnID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockReturnRepo.AssertExpectations(suite.T())
}

func (suite *ReturnServiceTestSuite) TestUpdateReturnStatus_RefundRequiresCompletion() {
	ctx := context.Background()
	returnID := uuid.NewString()
	suite.mockReturnRepo.On("FindReturnByID", ctx, returnID).Return(&domain.Return{
		ReturnID: returnID,
		Status:   domain.ReturnPending,
	}, nil).Once()

	refundStatus := "refunded"
	req := dto.UpdateReturnStatusRequest{RefundStatus: &refundStatus}

	ret, err := suite.service.UpdateReturnStatus(ctx, returnID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(ret)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "completed return")
	suite.mockReturnRepo.AssertNotCalled(suite.T(), "UpdateReturnStatus")
}

func (suite *ReturnServiceTestSuite) TestUpdateReturnStatus_CompletedIsTerminal() {
	ctx := context.Background()
	returnID := uuid.NewString()
	suite.mockReturnRepo.On("FindReturnByID", ctx, returnID).Return(&domain.Return{
		ReturnID: returnID,
		Status:   domain.ReturnCompleted,
	}, nil).Once()

	status := "pending"
	req := dto.UpdateReturnStatusRequest{Status: &status}

	ret, err := suite.service.UpdateReturnStatus(ctx, returnID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(ret)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReturnRepo.AssertNotCalled(suite.T(), "UpdateReturnStatus")
}

func (suite *ReturnServiceTestSuite) TestListReturns_RejectsUnknownKind() {
	ctx := context.Background()

	returns, err := suite.service.ListReturns(ctx, domain.ReturnKind("exchange"), 20, 0)

	suite.Require().Error(err)
	suite.Nil(returns)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReturnServiceTestSuite) TestListReturns_EmptyKindMeansAll() {
	ctx := context.Background()
	suite.mockReturnRepo.On("FindReturns", ctx, domain.ReturnKind(""), 20, 0).Return([]domain.Return{}, nil).Once()

	returns, err := suite.service.ListReturns(ctx, "", 20, 0)

	suite.Require().NoError(err)
	suite.NotNil(returns)
	suite.Empty(returns)
}

func TestReturnService(t *testing.T) {
	suite.Run(t, new(ReturnServiceTestSuite))
}
