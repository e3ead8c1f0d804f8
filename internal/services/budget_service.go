package services

import (
	"time"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/store"
)

// budgetService is the budget window aggregator. Spent amounts are pulled:
// every call resolves the category and date window and sums matching expense
// transactions from the store. Nothing pushes into a stored counter, so the
// recomputation is idempotent by construction.
type budgetService struct {
	budgets      store.BudgetStore
	categories   store.CategoryStore
	transactions store.TransactionStore
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(budgets store.BudgetStore, categories store.CategoryStore, transactions store.TransactionStore) BudgetServicer {
	return &budgetService{budgets: budgets, categories: categories, transactions: transactions}
}

// CreateBudget creates a budget for a category, windowed either by explicit
// start/end dates or by a "YYYY-MM" month token.
func (s *budgetService) CreateBudget(name, categoryID string, amount int64, month string, periodStart, periodEnd *time.Time) (*models.Budget, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget name is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget amount must be greater than zero")
	}

	hasDates := periodStart != nil && periodEnd != nil
	if !hasDates {
		if month == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "either a month or an explicit period is required")
		}
		if _, err := time.Parse("2006-01", month); err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be in YYYY-MM format")
		}
	}
	if hasDates && periodEnd.Before(*periodStart) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "period end cannot precede period start")
	}

	// Verify the category exists before writing anything.
	if _, err := s.categories.Get(categoryID); err != nil {
		return nil, err
	}

	budget := &models.Budget{
		CategoryID:  categoryID,
		Name:        name,
		Amount:      amount,
		Month:       month,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		IsActive:    true,
	}
	if err := s.budgets.Create(budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// GetBudgetByID retrieves a budget by ID.
func (s *budgetService) GetBudgetByID(budgetID string) (*models.Budget, error) {
	return s.budgets.Get(budgetID)
}

// ListBudgets retrieves budgets, optionally filtered by active flag.
func (s *budgetService) ListBudgets(isActive *bool) ([]models.Budget, error) {
	return s.budgets.List(isActive)
}

// UpdateBudget updates a budget's name, amount, or month token.
func (s *budgetService) UpdateBudget(budgetID string, name string, amount *int64, month *string) (*models.Budget, error) {
	budget, err := s.budgets.Get(budgetID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		budget.Name = name
	}
	if amount != nil {
		if *amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget amount must be greater than zero")
		}
		budget.Amount = *amount
	}
	if month != nil {
		if _, err := time.Parse("2006-01", *month); err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be in YYYY-MM format")
		}
		budget.Month = *month
	}

	if err := s.budgets.Update(budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// DeleteBudget soft-deletes a budget. Transactions are untouched: budgets
// only observe the event stream, they never own it.
func (s *budgetService) DeleteBudget(budgetID string) error {
	budget, err := s.budgets.Get(budgetID)
	if err != nil {
		return err
	}
	return s.budgets.Delete(budget.ID)
}

// resolveWindow returns the budget's date window: the explicit dates when
// both are present, otherwise the first and last calendar day of the month
// token.
func resolveWindow(budget *models.Budget) (time.Time, time.Time, error) {
	if budget.PeriodStart != nil && budget.PeriodEnd != nil {
		return *budget.PeriodStart, *budget.PeriodEnd, nil
	}

	parsed, err := time.Parse("2006-01", budget.Month)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget has no resolvable period")
	}

	start := time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999999999, time.UTC)
	return start, end, nil
}

// RecomputeSpent resolves the budget's category and window and returns the
// exact sum of matching expense transactions. Cost is proportional to the
// number of matching transactions; uncategorized transactions are invisible
// to every budget.
func (s *budgetService) RecomputeSpent(budgetID string) (int64, error) {
	budget, err := s.budgets.Get(budgetID)
	if err != nil {
		return 0, err
	}

	start, end, err := resolveWindow(budget)
	if err != nil {
		return 0, err
	}

	return s.transactions.SumExpenses(budget.CategoryID, start, end)
}

// GetBudgetProgress recomputes spending vs the budgeted amount.
func (s *budgetService) GetBudgetProgress(budgetID string) (*BudgetProgress, error) {
	budget, err := s.budgets.Get(budgetID)
	if err != nil {
		return nil, err
	}

	start, end, err := resolveWindow(budget)
	if err != nil {
		return nil, err
	}

	spent, err := s.transactions.SumExpenses(budget.CategoryID, start, end)
	if err != nil {
		return nil, err
	}

	remaining := budget.Amount - spent
	var percentage float64
	if budget.Amount > 0 {
		percentage = float64(spent) / float64(budget.Amount) * 100
	}

	return &BudgetProgress{
		BudgetID:   budget.ID,
		Budgeted:   budget.Amount,
		Spent:      spent,
		Remaining:  remaining,
		Percentage: percentage,
	}, nil
}
