package services

import (
	"testing"

	"tally/internal/models"
	"tally/internal/store"
	"tally/internal/testutil"
)

func TestDeltaApply(t *testing.T) {
	t.Run("add_increases_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		delta := NewDeltaService(stores.Accounts)
		account := testutil.CreateTestAccountWithBalance(t, db, testutil.NextRef(), 1000)

		updated, err := delta.Apply(account.ID, 500, DirectionAdd)
		testutil.AssertNoError(t, err)
		if updated.Balance != 1500 {
			t.Errorf("expected balance 1500, got %d", updated.Balance)
		}
	})

	t.Run("subtract_decreases_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		delta := NewDeltaService(stores.Accounts)
		account := testutil.CreateTestAccountWithBalance(t, db, testutil.NextRef(), 1000)

		updated, err := delta.Apply(account.ID, 400, DirectionSubtract)
		testutil.AssertNoError(t, err)
		if updated.Balance != 600 {
			t.Errorf("expected balance 600, got %d", updated.Balance)
		}
	})

	t.Run("insufficient_funds_leaves_balance_unchanged", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		delta := NewDeltaService(stores.Accounts)
		account := testutil.CreateTestAccountWithBalance(t, db, testutil.NextRef(), 300)

		_, err := delta.Apply(account.ID, 301, DirectionSubtract)
		testutil.AssertAppError(t, err, "INSUFFICIENT_FUNDS")

		fresh, err := stores.Accounts.Get(account.ID)
		testutil.AssertNoError(t, err)
		if fresh.Balance != 300 {
			t.Errorf("expected balance 300 after refused subtract, got %d", fresh.Balance)
		}
	})

	t.Run("subtract_to_exactly_zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		delta := NewDeltaService(stores.Accounts)
		account := testutil.CreateTestAccountWithBalance(t, db, testutil.NextRef(), 300)

		updated, err := delta.Apply(account.ID, 300, DirectionSubtract)
		testutil.AssertNoError(t, err)
		if updated.Balance != 0 {
			t.Errorf("expected balance 0, got %d", updated.Balance)
		}
	})

	t.Run("zero_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		delta := NewDeltaService(stores.Accounts)
		account := testutil.CreateTestAccount(t, db, testutil.NextRef())

		_, err := delta.Apply(account.ID, 0, DirectionAdd)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		delta := NewDeltaService(stores.Accounts)

		_, err := delta.Apply("00000000-0000-0000-0000-000000000000", 100, DirectionAdd)
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})
}

func TestDeltaReverseAndApply(t *testing.T) {
	t.Run("expense_amount_change", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		delta := NewDeltaService(stores.Accounts)
		account := testutil.CreateTestAccountWithBalance(t, db, testutil.NextRef(), 700)

		oldTx := &models.Transaction{AccountID: account.ID, Type: models.TransactionTypeExpense, Amount: 300}
		newTx := &models.Transaction{AccountID: account.ID, Type: models.TransactionTypeExpense, Amount: 500}

		// 700 + 300 reversal = 1000, minus 500 = 500.
		updated, err := delta.ReverseAndApply(account.ID, oldTx, newTx)
		testutil.AssertNoError(t, err)
		if updated.Balance != 500 {
			t.Errorf("expected balance 500, got %d", updated.Balance)
		}
	})

	t.Run("type_flip_expense_to_income", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		delta := NewDeltaService(stores.Accounts)
		account := testutil.CreateTestAccountWithBalance(t, db, testutil.NextRef(), 800)

		oldTx := &models.Transaction{AccountID: account.ID, Type: models.TransactionTypeExpense, Amount: 200}
		newTx := &models.Transaction{AccountID: account.ID, Type: models.TransactionTypeIncome, Amount: 200}

		// Reversal adds 200, then the income adds 200 more.
		updated, err := delta.ReverseAndApply(account.ID, oldTx, newTx)
		testutil.AssertNoError(t, err)
		if updated.Balance != 1200 {
			t.Errorf("expected balance 1200, got %d", updated.Balance)
		}
	})

	t.Run("income_reversal_exceeding_balance_is_refused", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		delta := NewDeltaService(stores.Accounts)
		account := testutil.CreateTestAccountWithBalance(t, db, testutil.NextRef(), 100)

		// Reversing a 500 income needs to subtract 500 from a 100 balance.
		oldTx := &models.Transaction{AccountID: account.ID, Type: models.TransactionTypeIncome, Amount: 500}
		newTx := &models.Transaction{AccountID: account.ID, Type: models.TransactionTypeIncome, Amount: 50}

		_, err := delta.ReverseAndApply(account.ID, oldTx, newTx)
		testutil.AssertAppError(t, err, "INSUFFICIENT_FUNDS")

		fresh, err := stores.Accounts.Get(account.ID)
		testutil.AssertNoError(t, err)
		if fresh.Balance != 100 {
			t.Errorf("expected balance 100 after refused edit, got %d", fresh.Balance)
		}
	})

	t.Run("new_expense_checked_against_intermediate_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		delta := NewDeltaService(stores.Accounts)
		account := testutil.CreateTestAccountWithBalance(t, db, testutil.NextRef(), 100)

		// Reversal of the 300 expense brings the balance to 400 first, so a
		// 350 expense fits even though it exceeds the starting balance.
		oldTx := &models.Transaction{AccountID: account.ID, Type: models.TransactionTypeExpense, Amount: 300}
		newTx := &models.Transaction{AccountID: account.ID, Type: models.TransactionTypeExpense, Amount: 350}

		updated, err := delta.ReverseAndApply(account.ID, oldTx, newTx)
		testutil.AssertNoError(t, err)
		if updated.Balance != 50 {
			t.Errorf("expected balance 50, got %d", updated.Balance)
		}
	})
}
