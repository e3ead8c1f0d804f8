package services

import (
	"time"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/pagination"
	"tally/internal/store"
)

// ledgerService is the reconciliation orchestrator: it sequences the store
// writes and the delta engine for every transaction mutation in a fixed step
// order. The store offers no cross-record atomicity, so a step that fails
// after an earlier step committed is surfaced as PartialFailure and never
// auto-rolled-back. All reads and validations happen before the first write,
// which is the only safe cancellation point.
type ledgerService struct {
	transactions store.TransactionStore
	accounts     store.AccountStore
	categories   store.CategoryStore
	budgets      store.BudgetStore
	delta        DeltaServicer
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(
	transactions store.TransactionStore,
	accounts store.AccountStore,
	categories store.CategoryStore,
	budgets store.BudgetStore,
	delta DeltaServicer,
) LedgerServicer {
	return &ledgerService{
		transactions: transactions,
		accounts:     accounts,
		categories:   categories,
		budgets:      budgets,
		delta:        delta,
	}
}

// dirtyBudgetIDs returns the ids of active budgets scoped to the category.
// Resolved before any write so a partial failure never hides which budgets
// need a refresh.
func (s *ledgerService) dirtyBudgetIDs(categoryID *string) ([]string, error) {
	if categoryID == nil {
		return nil, nil
	}
	budgets, err := s.budgets.ListByCategory(*categoryID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(budgets))
	for _, b := range budgets {
		ids = append(ids, b.ID)
	}
	return ids, nil
}

// CreateTransaction runs the create sequence: (1) write the transaction
// record, (2) any linked specialized record (carried as back-references on
// the event itself; goal deposits and debt payments run through their own
// flows), (3) apply the account delta. A delta failure after step 1 leaves
// an orphan event with no balance effect and is reported as PartialFailure.
func (s *ledgerService) CreateTransaction(in CreateTransactionInput) (*models.Transaction, *DirtySet, error) {
	if in.Amount <= 0 {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if in.AccountID == "" {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account ID is required")
	}
	direction, err := effectDirection(in.Type)
	if err != nil {
		return nil, nil, err
	}
	if in.Type == models.TransactionTypeTransfer {
		if in.ToAccountID == nil || *in.ToAccountID == "" {
			return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "destination account is required for transfers")
		}
		if *in.ToAccountID == in.AccountID {
			return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "cannot transfer to the same account")
		}
	}

	if in.Date.IsZero() {
		in.Date = time.Now()
	}

	// Everything below reads only; the first write is the transaction
	// record itself.
	if _, err := s.accounts.Get(in.AccountID); err != nil {
		return nil, nil, err
	}
	if in.ToAccountID != nil {
		if _, err := s.accounts.Get(*in.ToAccountID); err != nil {
			return nil, nil, err
		}
	}
	if in.CategoryID != nil {
		if _, err := s.categories.Get(*in.CategoryID); err != nil {
			return nil, nil, err
		}
	}
	budgetIDs, err := s.dirtyBudgetIDs(in.CategoryID)
	if err != nil {
		return nil, nil, err
	}

	tx := &models.Transaction{
		AccountID:   in.AccountID,
		ToAccountID: in.ToAccountID,
		CategoryID:  in.CategoryID,
		Type:        in.Type,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        in.Date,
		BudgetID:    in.BudgetID,
		GoalID:      in.GoalID,
		BillID:      in.BillID,
	}
	if err := s.transactions.Create(tx); err != nil {
		return nil, nil, err
	}

	if _, err := s.delta.Apply(in.AccountID, in.Amount, direction); err != nil {
		return nil, nil, apperrors.NewPartialFailure("create transaction",
			[]string{"write transaction record"}, "apply account delta", err)
	}

	if in.Type == models.TransactionTypeTransfer {
		if _, err := s.delta.Apply(*in.ToAccountID, in.Amount, DirectionAdd); err != nil {
			return nil, nil, apperrors.NewPartialFailure("create transaction",
				[]string{"write transaction record", "apply source account delta"},
				"apply destination account delta", err)
		}
	}

	dirty := NewDirtySet()
	dirty.AddAccount(in.AccountID)
	if in.ToAccountID != nil {
		dirty.AddAccount(*in.ToAccountID)
	}
	for _, id := range budgetIDs {
		dirty.AddBudget(id)
	}
	if in.BudgetID != nil {
		dirty.AddBudget(*in.BudgetID)
	}
	if in.GoalID != nil {
		dirty.AddGoal(*in.GoalID)
	}
	if in.BillID != nil {
		dirty.AddBill(*in.BillID)
	}
	return tx, dirty, nil
}

// EditTransaction runs the edit sequence: (1) reverse the old delta and
// apply the new delta as one combined account operation, (2) update the
// transaction record. Budget aggregates are not pushed; they recompute
// lazily on the next read, which is why the dirty set names them.
func (s *ledgerService) EditTransaction(transactionID string, in EditTransactionInput) (*models.Transaction, *DirtySet, error) {
	oldTx, err := s.transactions.Get(transactionID)
	if err != nil {
		return nil, nil, err
	}
	if oldTx.Type == models.TransactionTypeTransfer {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "transfers cannot be edited, delete and recreate instead")
	}

	newTx := *oldTx
	if in.Amount != nil {
		if *in.Amount <= 0 {
			return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		newTx.Amount = *in.Amount
	}
	if in.Type != nil {
		if *in.Type == models.TransactionTypeTransfer {
			return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "cannot change a transaction into a transfer")
		}
		if _, err := effectDirection(*in.Type); err != nil {
			return nil, nil, err
		}
		newTx.Type = *in.Type
	}
	if in.CategoryID != nil {
		if *in.CategoryID == "" {
			newTx.CategoryID = nil
		} else {
			if _, err := s.categories.Get(*in.CategoryID); err != nil {
				return nil, nil, err
			}
			newTx.CategoryID = in.CategoryID
		}
	}
	if in.Description != nil {
		newTx.Description = *in.Description
	}
	if in.Date != nil {
		newTx.Date = *in.Date
	}

	oldBudgetIDs, err := s.dirtyBudgetIDs(oldTx.CategoryID)
	if err != nil {
		return nil, nil, err
	}
	newBudgetIDs, err := s.dirtyBudgetIDs(newTx.CategoryID)
	if err != nil {
		return nil, nil, err
	}

	// Step 1: one combined balance operation. If it fails, nothing has been
	// written and the edit aborts cleanly.
	if _, err := s.delta.ReverseAndApply(oldTx.AccountID, oldTx, &newTx); err != nil {
		return nil, nil, err
	}

	// Step 2: persist the edited event.
	if err := s.transactions.Update(&newTx); err != nil {
		return nil, nil, apperrors.NewPartialFailure("edit transaction",
			[]string{"apply combined account delta"}, "update transaction record", err)
	}

	dirty := NewDirtySet()
	dirty.AddAccount(newTx.AccountID)
	for _, id := range oldBudgetIDs {
		dirty.AddBudget(id)
	}
	for _, id := range newBudgetIDs {
		dirty.AddBudget(id)
	}
	return &newTx, dirty, nil
}

// DeleteTransaction runs the delete sequence: (1) apply the inverse delta to
// the account, (2) delete the transaction record. If the delta fails, the
// record is kept so the balance-adjusting intent is not lost.
func (s *ledgerService) DeleteTransaction(transactionID string) (*DirtySet, error) {
	tx, err := s.transactions.Get(transactionID)
	if err != nil {
		return nil, err
	}

	budgetIDs, err := s.dirtyBudgetIDs(tx.CategoryID)
	if err != nil {
		return nil, err
	}

	completed := []string{}
	if tx.Type == models.TransactionTypeTransfer {
		// Undo the destination leg first: its subtract carries the
		// precondition, so a refused reversal aborts before anything moved.
		if _, err := s.delta.Apply(*tx.ToAccountID, tx.Amount, DirectionSubtract); err != nil {
			return nil, err
		}
		completed = append(completed, "reverse destination account delta")
		if _, err := s.delta.Apply(tx.AccountID, tx.Amount, DirectionAdd); err != nil {
			return nil, apperrors.NewPartialFailure("delete transaction",
				completed, "reverse source account delta", err)
		}
		completed = append(completed, "reverse source account delta")
	} else {
		direction, amount, err := s.delta.Reversal(tx)
		if err != nil {
			return nil, err
		}
		if _, err := s.delta.Apply(tx.AccountID, amount, direction); err != nil {
			return nil, err
		}
		completed = append(completed, "reverse account delta")
	}

	if err := s.transactions.Delete(tx.ID); err != nil {
		return nil, apperrors.NewPartialFailure("delete transaction",
			completed, "delete transaction record", err)
	}

	dirty := NewDirtySet()
	dirty.AddAccount(tx.AccountID)
	if tx.ToAccountID != nil {
		dirty.AddAccount(*tx.ToAccountID)
	}
	for _, id := range budgetIDs {
		dirty.AddBudget(id)
	}
	return dirty, nil
}

// GetTransactionByID retrieves a transaction by ID.
func (s *ledgerService) GetTransactionByID(transactionID string) (*models.Transaction, error) {
	return s.transactions.Get(transactionID)
}

// GetAccountTransactions retrieves a paginated list of an account's
// transactions, newest first.
func (s *ledgerService) GetAccountTransactions(accountID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if _, err := s.accounts.Get(accountID); err != nil {
		return nil, err
	}

	page.Defaults()
	transactions, totalItems, err := s.transactions.ListByAccount(accountID, page)
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}
