package services

import (
	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/store"
)

// accountService handles account bookkeeping.
type accountService struct {
	accounts store.AccountStore
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(accounts store.AccountStore) AccountServicer {
	return &accountService{accounts: accounts}
}

// CreateAccount creates a new account with the given starting balance.
func (s *accountService) CreateAccount(ownerRef, name, currency string, startAmount int64) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}
	if startAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "starting balance cannot be negative")
	}

	if currency == "" {
		currency = "USD" // Default currency
	}

	account := &models.Account{
		OwnerRef: ownerRef,
		Name:     name,
		Balance:  startAmount,
		Currency: currency,
		IsActive: true,
	}

	if err := s.accounts.Create(account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccountByID retrieves an account by ID.
func (s *accountService) GetAccountByID(accountID string) (*models.Account, error) {
	return s.accounts.Get(accountID)
}

// GetOwnerAccounts retrieves all active accounts for an owner.
func (s *accountService) GetOwnerAccounts(ownerRef string) ([]models.Account, error) {
	return s.accounts.List(ownerRef)
}
