package services

import (
	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/store"
)

// deltaService is the delta application engine: the single place where
// account balances move. The balance is re-read from the store immediately
// before every precondition check, never cached across the check-then-write
// window.
type deltaService struct {
	accounts store.AccountStore
}

// NewDeltaService creates a new DeltaServicer.
func NewDeltaService(accounts store.AccountStore) DeltaServicer {
	return &deltaService{accounts: accounts}
}

// Apply moves the account balance by amount in the given direction. A
// subtract that exceeds the current balance fails with InsufficientFunds and
// writes nothing.
func (s *deltaService) Apply(accountID string, amount int64, direction Direction) (*models.Account, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	// Fresh read right before the precondition check.
	account, err := s.accounts.Get(accountID)
	if err != nil {
		return nil, err
	}

	switch direction {
	case DirectionAdd:
		account.Balance += amount
	case DirectionSubtract:
		if amount > account.Balance {
			return nil, apperrors.ErrInsufficientFunds
		}
		account.Balance -= amount
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "direction must be add or subtract")
	}

	if err := s.accounts.UpdateBalance(account.ID, account.Balance); err != nil {
		return nil, err
	}

	return account, nil
}

// effectDirection returns the direction a transaction of the given type
// moves its source account when applied.
func effectDirection(t models.TransactionType) (Direction, error) {
	switch t {
	case models.TransactionTypeIncome:
		return DirectionAdd, nil
	case models.TransactionTypeExpense, models.TransactionTypeTransfer:
		return DirectionSubtract, nil
	default:
		return "", apperrors.ErrInvalidTransactionType
	}
}

// invert returns the opposite direction.
func invert(d Direction) Direction {
	if d == DirectionAdd {
		return DirectionSubtract
	}
	return DirectionAdd
}

// Reversal returns the exact inverse of a live transaction's effect on its
// source account, used on edit and delete.
func (s *deltaService) Reversal(tx *models.Transaction) (Direction, int64, error) {
	direction, err := effectDirection(tx.Type)
	if err != nil {
		return "", 0, err
	}
	return invert(direction), tx.Amount, nil
}

// ReverseAndApply undoes oldTx's effect and applies newTx's effect against
// the account as one combined operation. The direction of each half is
// derived from its transaction type, so an expense edited from A to B is the
// reversal of A plus an application of B, not a naive subtraction of B-A.
// One fresh read, preconditions checked against the intermediate balance,
// one write.
func (s *deltaService) ReverseAndApply(accountID string, oldTx, newTx *models.Transaction) (*models.Account, error) {
	revDirection, revAmount, err := s.Reversal(oldTx)
	if err != nil {
		return nil, err
	}
	newDirection, err := effectDirection(newTx.Type)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.Get(accountID)
	if err != nil {
		return nil, err
	}

	balance := account.Balance
	if revDirection == DirectionSubtract {
		if revAmount > balance {
			return nil, apperrors.ErrInsufficientFunds
		}
		balance -= revAmount
	} else {
		balance += revAmount
	}

	if newDirection == DirectionSubtract {
		if newTx.Amount > balance {
			return nil, apperrors.ErrInsufficientFunds
		}
		balance -= newTx.Amount
	} else {
		balance += newTx.Amount
	}

	account.Balance = balance
	if err := s.accounts.UpdateBalance(account.ID, account.Balance); err != nil {
		return nil, err
	}

	return account, nil
}
