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

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo *MockExpenseRepository
	mockCurrencySvc *MockCurrencyReader
	service         *services.ExpenseService
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockCurrencySvc = new(MockCurrencyReader)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockCurrencySvc)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_USDRoundsToCents() {
	ctx := context.Background()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	req := dto.CreateExpenseRequest{
		Description: "Shop rent",
		Category:    "Rent",
		Currency:    "USD",
		Amount:      decimal.NewFromFloat(19.995),
	}

	expense, err := suite.service.CreateExpense(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.True(expense.Amount.Equal(decimal.NewFromInt(20)), "amount %s", expense.Amount)
	suite.Nil(expense.SYPAmount)
	suite.Nil(expense.TransactionExchangeRate)
	suite.mockCurrencySvc.AssertNotCalled(suite.T(), "CurrentRate")
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_SYPKeepsNativeFigure() {
	ctx := context.Background()
	suite.mockCurrencySvc.On("CurrentRate", ctx).Return(decimal.NewFromInt(13000), false, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	req := dto.CreateExpenseRequest{
		Description: "Delivery fuel",
		Category:    "Transport",
		Currency:    "SYP",
		Amount:      decimal.NewFromInt(130000),
	}

	expense, err := suite.service.CreateExpense(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.True(expense.Amount.Equal(decimal.NewFromInt(10)), "amount %s", expense.Amount)
	suite.Require().NotNil(expense.SYPAmount)
	suite.True(expense.SYPAmount.Equal(decimal.NewFromInt(130000)))
	suite.Require().NotNil(expense.TransactionExchangeRate)
	suite.True(expense.TransactionExchangeRate.Equal(decimal.NewFromInt(13000)))
	suite.mockCurrencySvc.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_BackdatedSYPUsesHistoricalRate() {
	ctx := context.Background()
	date := time.Now().AddDate(0, 0, -14)
	suite.mockCurrencySvc.On("RateForDate", ctx, date).Return(decimal.NewFromInt(12500), nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	req := dto.CreateExpenseRequest{
		Description: "Electricity bill",
		Category:    "Utilities",
		Currency:    "SYP",
		Amount:      decimal.NewFromInt(125000),
		Date:        &date,
	}

	expense, err := suite.service.CreateExpense(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.Require().NotNil(expense.TransactionExchangeRate)
	// The rate in effect on the expense date is used, not today's default.
	suite.True(expense.TransactionExchangeRate.Equal(decimal.NewFromInt(12500)))
	suite.True(expense.Amount.Equal(decimal.NewFromInt(10)), "amount %s", expense.Amount)
	suite.mockCurrencySvc.AssertNotCalled(suite.T(), "CurrentRate")
	suite.mockCurrencySvc.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ExplicitRateOverrideWins() {
	ctx := context.Background()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	override := decimal.NewFromInt(14000)
	req := dto.CreateExpenseRequest{
		Description:             "Packaging",
		Category:                "Supplies",
		Currency:                "SYP",
		Amount:                  decimal.NewFromInt(140000),
		TransactionExchangeRate: &override,
	}

	expense, err := suite.service.CreateExpense(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.Require().NotNil(expense.TransactionExchangeRate)
	suite.True(expense.TransactionExchangeRate.Equal(override))
	suite.True(expense.Amount.Equal(decimal.NewFromInt(10)), "amount %s", expense.Amount)
	suite.mockCurrencySvc.AssertNotCalled(suite.T(), "CurrentRate")
	suite.mockCurrencySvc.AssertNotCalled(suite.T(), "RateForDate")
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RejectsUnknownCurrency() {
	ctx := context.Background()

	req := dto.CreateExpenseRequest{
		Description: "Misc",
		Category:    "Other",
		Currency:    "EUR",
		Amount:      decimal.NewFromInt(10),
	}

	expense, err := suite.service.CreateExpense(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "unknown currency")
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense")
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RejectsNonPositiveAmount() {
	ctx := context.Background()

	req := dto.CreateExpenseRequest{
		Description: "Misc",
		Category:    "Other",
		Currency:    "USD",
		Amount:      decimal.NewFromInt(-5),
	}

	expense, err := suite.service.CreateExpense(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "must be positive")
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_SwitchToUSDClearsSYPFields() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	syp := decimal.NewFromInt(130000)
	rate := decimal.NewFromInt(13000)
	suite.mockExpenseRepo.On("FindExpenseByID", ctx, expenseID).Return(&domain.Expense{
		ExpenseID:               expenseID,
		Description:             "Delivery fuel",
		Category:                "Transport",
		Currency:                domain.CurrencySYP,
		Amount:                  decimal.NewFromInt(10),
		SYPAmount:               &syp,
		TransactionExchangeRate: &rate,
	}, nil).Once()
	suite.mockExpenseRepo.On("UpdateExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	req := dto.UpdateExpenseRequest{
		Description: "Delivery fuel",
		Category:    "Transport",
		Currency:    "USD",
		Amount:      decimal.NewFromFloat(12.50),
	}

	expense, err := suite.service.UpdateExpense(ctx, expenseID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.Equal(domain.CurrencyUSD, expense.Currency)
	suite.True(expense.Amount.Equal(decimal.NewFromFloat(12.50)))
	suite.Nil(expense.SYPAmount)
	suite.Nil(expense.TransactionExchangeRate)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_NilIsEmpty() {
	ctx := context.Background()
	suite.mockExpenseRepo.On("FindExpenses", ctx, 20, 0).Return(nil, nil).Once()

	expenses, err := suite.service.ListExpenses(ctx, 20, 0)

	suite.Require().NoError(err)
	suite.NotNil(expenses)
	suite.Empty(expenses)
}

func TestExpenseService(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
