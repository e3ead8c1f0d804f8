package services

import (
	"testing"

	"tally/internal/store"
	"tally/internal/testutil"
)

func TestCreateAccount(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		svc := NewAccountService(stores.Accounts)
		owner := testutil.NextRef()

		account, err := svc.CreateAccount(owner, "Savings", "USD", 0)
		testutil.AssertNoError(t, err)

		if account.ID == "" {
			t.Fatal("expected non-empty account ID")
		}
		if account.Name != "Savings" {
			t.Errorf("expected name Savings, got %s", account.Name)
		}
		if account.Currency != "USD" {
			t.Errorf("expected currency USD, got %s", account.Currency)
		}
		if !account.IsActive {
			t.Error("expected account to be active")
		}
	})

	t.Run("with_starting_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		svc := NewAccountService(stores.Accounts)

		account, err := svc.CreateAccount(testutil.NextRef(), "Checking", "EUR", 12500)
		testutil.AssertNoError(t, err)
		if account.Balance != 12500 {
			t.Errorf("expected balance 12500, got %d", account.Balance)
		}
	})

	t.Run("defaults_currency", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		svc := NewAccountService(stores.Accounts)

		account, err := svc.CreateAccount(testutil.NextRef(), "Checking", "", 0)
		testutil.AssertNoError(t, err)
		if account.Currency != "USD" {
			t.Errorf("expected default currency USD, got %s", account.Currency)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		svc := NewAccountService(stores.Accounts)

		_, err := svc.CreateAccount(testutil.NextRef(), "", "USD", 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("negative_starting_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		svc := NewAccountService(stores.Accounts)

		_, err := svc.CreateAccount(testutil.NextRef(), "Checking", "USD", -1)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetOwnerAccounts(t *testing.T) {
	t.Run("scoped_to_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		svc := NewAccountService(stores.Accounts)
		owner := testutil.NextRef()
		other := testutil.NextRef()
		testutil.CreateTestAccount(t, db, owner)
		testutil.CreateTestAccount(t, db, owner)
		testutil.CreateTestAccount(t, db, other)

		accounts, err := svc.GetOwnerAccounts(owner)
		testutil.AssertNoError(t, err)
		if len(accounts) != 2 {
			t.Errorf("expected 2 accounts for owner, got %d", len(accounts))
		}
	})
}
