package services

import (
	"context"
	"fmt"
	"time"

	"github.com/RamaTay/DecorERP/internal/apperrors"
	"github.com/RamaTay/DecorERP/internal/core/domain"
	portsrepo "github.com/RamaTay/DecorERP/internal/core/ports/repositories"
	portssvc "github.com/RamaTay/DecorERP/internal/core/ports/services"
	"github.com/RamaTay/DecorERP/internal/dto"
	"github.com/google/uuid"
)

// ExpenseService records operating costs. Like sales, expenses are stored in
// canonical USD with the native SYP figure and rate preserved alongside.
type ExpenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	currencySvc portssvc.CurrencyReaderSvc
}

func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, currencySvc portssvc.CurrencyReaderSvc) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo, currencySvc: currencySvc}
}

func (s *ExpenseService) applyCurrency(ctx context.Context, expense *domain.Expense, req dto.CreateExpenseRequest) error {
	cur := domain.Currency(req.Currency)
	if !cur.Valid() {
		return fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, req.Currency)
	}
	if !req.Amount.IsPositive() {
		return fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	expense.Currency = cur
	if cur == domain.CurrencySYP {
		rate, err := resolveTransactionRate(ctx, s.currencySvc, req.TransactionExchangeRate, req.Date)
		if err != nil {
			return err
		}
		syp := req.Amount
		expense.SYPAmount = &syp
		expense.TransactionExchangeRate = &rate
		expense.Amount = domain.RoundDisplayAmount(syp.Div(rate), domain.CurrencyUSD)
	} else {
		expense.SYPAmount = nil
		expense.TransactionExchangeRate = nil
		expense.Amount = domain.RoundDisplayAmount(req.Amount, domain.CurrencyUSD)
	}
	return nil
}

func (s *ExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	now := time.Now()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Description: req.Description,
		Category:    req.Category,
		Date:        now,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if err := s.applyCurrency(ctx, &expense, req); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "failed to save expense")
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.LogInfo(ctx, "expense recorded", "expense_id", expense.ExpenseID, "amount_usd", expense.Amount.String())
	return &expense, nil
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense for update: %w", err)
	}

	expense.Description = req.Description
	expense.Category = req.Category
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if err := s.applyCurrency(ctx, expense, req); err != nil {
		return nil, err
	}
	expense.Touch(updaterUserID, time.Now())

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return expense, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

func (s *ExpenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense by ID: %w", err)
	}
	return expense, nil
}

func (s *ExpenseService) ListExpenses(ctx context.Context, limit int, offset int) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.FindExpenses(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}
