package services_test

import (
	"context"
	"testing"

	"github.com/RamaTay/DecorERP/internal/apperrors"
	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/RamaTay/DecorERP/internal/core/services"
	"github.com/RamaTay/DecorERP/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PurchaseServiceTestSuite struct {
	suite.Suite
	mockPurchaseRepo *MockPurchaseRepository
	mockSupplierRepo *MockSupplierRepository
	mockProductRepo  *MockProductRepository
	service          *services.PurchaseService

	supplierID string
	productID  string
	unitSizeID string
}

func (suite *PurchaseServiceTestSuite) SetupTest() {
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.mockSupplierRepo = new(MockSupplierRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewPurchaseService(suite.mockPurchaseRepo, suite.mockSupplierRepo, suite.mockProductRepo)

	suite.supplierID = uuid.NewString()
	suite.productID = uuid.NewString()
	suite.unitSizeID = uuid.NewString()
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_Success() {
	ctx := context.Background()
	suite.mockSupplierRepo.On("FindSupplierByID", ctx, suite.supplierID).Return(&domain.Supplier{
		SupplierID: suite.supplierID,
		Name:       "Al-Noor Trading",
	}, nil).Once()
	suite.mockPurchaseRepo.On("FindPurchaseByInvoiceNumber", ctx, "INV-2024-001").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProductRepo.On("FindProductUnitSize", ctx, suite.productID, suite.unitSizeID).Return(&domain.ProductUnitSize{
		ProductID:  suite.productID,
		UnitSizeID: suite.unitSizeID,
	}, nil).Once()

	var saved domain.PurchaseInvoice
	suite.mockPurchaseRepo.On("SavePurchase", ctx, mock.AnythingOfType("domain.PurchaseInvoice")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.PurchaseInvoice) }).
		Return(nil).Once()
	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, mock.AnythingOfType("string")).Return(&saved, nil).Once()

	req := dto.CreatePurchaseRequest{
		SupplierID:    suite.supplierID,
		InvoiceNumber: "INV-2024-001",
		Items: []dto.PurchaseItemInput{
			{ProductID: suite.productID, UnitSizeID: suite.unitSizeID, Quantity: 12, UnitPrice: decimal.NewFromFloat(3.50)},
		},
	}

	purchase, err := suite.service.CreatePurchase(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(purchase)
	suite.Equal(domain.PurchasePending, saved.Status)
	suite.Equal(domain.PurchaseUnpaid, saved.PaymentStatus)
	suite.True(saved.TotalAmount.Equal(decimal.NewFromInt(42)), "total %s", saved.TotalAmount)
	suite.Require().Len(saved.Items, 1)
	suite.True(saved.Items[0].Subtotal.Equal(decimal.NewFromInt(42)))
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_DuplicateInvoiceNumber() {
	ctx := context.Background()
	suite.mockSupplierRepo.On("FindSupplierByID", ctx, suite.supplierID).Return(&domain.Supplier{
		SupplierID: suite.supplierID,
	}, nil).Once()
	suite.mockPurchaseRepo.On("FindPurchaseByInvoiceNumber", ctx, "INV-2024-001").Return(&domain.PurchaseInvoice{
		PurchaseInvoiceID: uuid.NewString(),
		InvoiceNumber:     "INV-2024-001",
	}, nil).Once()

	req := dto.CreatePurchaseRequest{
		SupplierID:    suite.supplierID,
		InvoiceNumber: "INV-2024-001",
		Items: []dto.PurchaseItemInput{
			{ProductID: suite.productID, UnitSizeID: suite.unitSizeID, Quantity: 1, UnitPrice: decimal.NewFromInt(5)},
		},
	}

	purchase, err := suite.service.CreatePurchase(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Contains(err.Error(), "already recorded")
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "SavePurchase")
}

func (suite *PurchaseServiceTestSuite) TestUpdatePurchaseStatus_NothingToUpdate() {
	ctx := context.Background()

	purchase, err := suite.service.UpdatePurchaseStatus(ctx, uuid.NewString(), dto.UpdatePurchaseStatusRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "nothing to update")
}

func (suite *PurchaseServiceTestSuite) TestUpdatePurchaseStatus_LogsChangedDimensionsOnly() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	stored := &domain.PurchaseInvoice{
		PurchaseInvoiceID: invoiceID,
		Status:            domain.PurchasePending,
		PaymentStatus:     domain.PurchaseUnpaid,
	}
	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, invoiceID).Return(stored, nil).Twice()
	suite.mockPurchaseRepo.On("UpdatePurchaseStatus", ctx, mock.AnythingOfType("domain.PurchaseInvoice"), mock.AnythingOfType("domain.PurchaseStatusLog")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(domain.PurchaseInvoice)
			log := args.Get(2).(domain.PurchaseStatusLog)
			suite.Equal(domain.PurchaseReceived, updated.Status)
			suite.Equal(domain.PurchasePaid, updated.PaymentStatus)
			suite.Require().NotNil(updated.PaymentDate)
			suite.Require().NotNil(log.OldStatus)
			suite.Equal(domain.PurchasePending, *log.OldStatus)
			suite.Require().NotNil(log.NewStatus)
			suite.Equal(domain.PurchaseReceived, *log.NewStatus)
			suite.Require().NotNil(log.OldPaymentStatus)
			suite.Equal(domain.PurchaseUnpaid, *log.OldPaymentStatus)
			suite.Require().NotNil(log.NewPaymentStatus)
			suite.Equal(domain.PurchasePaid, *log.NewPaymentStatus)
		}).
		Return(nil).Once()

	status := "received"
	paymentStatus := "paid"
	req := dto.UpdatePurchaseStatusRequest{Status: &status, PaymentStatus: &paymentStatus}

	_, err := suite.service.UpdatePurchaseStatus(ctx, invoiceID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestUpdatePurchaseStatus_NoOpTransitionSkipsPersist() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, invoiceID).Return(&domain.PurchaseInvoice{
		PurchaseInvoiceID: invoiceID,
		Status:            domain.PurchaseReceived,
		PaymentStatus:     domain.PurchaseUnpaid,
	}, nil).Once()

	status := "received"
	req := dto.UpdatePurchaseStatusRequest{Status: &status}

	purchase, err := suite.service.UpdatePurchaseStatus(ctx, invoiceID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(purchase)
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "UpdatePurchaseStatus")
}

func (suite *PurchaseServiceTestSuite) TestUpdatePurchaseStatus_CancelRequiresReason() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, invoiceID).Return(&domain.PurchaseInvoice{
		PurchaseInvoiceID: invoiceID,
		Status:            domain.PurchasePending,
	}, nil).Once()

	status := "cancelled"
	req := dto.UpdatePurchaseStatusRequest{Status: &status}

	purchase, err := suite.service.UpdatePurchaseStatus(ctx, invoiceID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "requires a reason")
}

func (suite *PurchaseServiceTestSuite) TestUpdatePurchaseStatus_CancelledIsTerminal() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, invoiceID).Return(&domain.PurchaseInvoice{
		PurchaseInvoiceID: invoiceID,
		Status:            domain.PurchaseCancelled,
	}, nil).Once()

	status := "received"
	req := dto.UpdatePurchaseStatusRequest{Status: &status}

	purchase, err := suite.service.UpdatePurchaseStatus(ctx, invoiceID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "cancelled purchases")
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "UpdatePurchaseStatus")
}

func (suite *PurchaseServiceTestSuite) TestListPurchaseStatusLogs_NilIsEmpty() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	suite.mockPurchaseRepo.On("FindPurchaseStatusLogs", ctx, invoiceID).Return(nil, nil).Once()

	logs, err := suite.service.ListPurchaseStatusLogs(ctx, invoiceID)

	suite.Require().NoError(err)
	suite.NotNil(logs)
	suite.Empty(logs)
}

func TestPurchaseService(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}
