package services

import (
	"testing"
	"time"

	"tally/internal/models"
	"tally/internal/store"
	"tally/internal/testutil"
)

func TestRecordPayment(t *testing.T) {
	t.Run("accumulates_paid_total", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		debtSvc := NewDebtService(stores.Debts, stores.DebtPayments)
		debt := testutil.CreateTestDebt(t, db, 1000)

		updated, dirty, err := debtSvc.RecordPayment(debt.ID, 300, time.Now())
		testutil.AssertNoError(t, err)
		if updated.PaidAmount != 300 {
			t.Errorf("expected paid amount 300, got %d", updated.PaidAmount)
		}
		if len(dirty.DebtIDs) != 1 || dirty.DebtIDs[0] != debt.ID {
			t.Errorf("expected dirty debt %q, got %v", debt.ID, dirty.DebtIDs)
		}

		updated, _, err = debtSvc.RecordPayment(debt.ID, 700, time.Now())
		testutil.AssertNoError(t, err)
		if updated.PaidAmount != 1000 {
			t.Errorf("expected paid amount 1000, got %d", updated.PaidAmount)
		}
		// Full payment does not settle by itself.
		if updated.Status != models.DebtStatusOpen {
			t.Errorf("expected debt still open, got %s", updated.Status)
		}
	})

	t.Run("overpayment_is_rejected_not_clamped", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		debtSvc := NewDebtService(stores.Debts, stores.DebtPayments)
		debt := testutil.CreateTestDebt(t, db, 1000)

		_, _, err := debtSvc.RecordPayment(debt.ID, 800, time.Now())
		testutil.AssertNoError(t, err)

		_, _, err = debtSvc.RecordPayment(debt.ID, 300, time.Now())
		testutil.AssertAppError(t, err, "OVERPAYMENT")

		fresh, err := stores.Debts.Get(debt.ID)
		testutil.AssertNoError(t, err)
		if fresh.PaidAmount != 800 {
			t.Errorf("expected paid amount 800 after rejected payment, got %d", fresh.PaidAmount)
		}

		payments, err := stores.DebtPayments.ListByDebt(debt.ID)
		testutil.AssertNoError(t, err)
		if len(payments) != 1 {
			t.Errorf("expected 1 payment record, got %d", len(payments))
		}
	})

	t.Run("zero_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		debtSvc := NewDebtService(stores.Debts, stores.DebtPayments)
		debt := testutil.CreateTestDebt(t, db, 1000)

		_, _, err := debtSvc.RecordPayment(debt.ID, 0, time.Now())
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_debt", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		debtSvc := NewDebtService(stores.Debts, stores.DebtPayments)

		_, _, err := debtSvc.RecordPayment("00000000-0000-0000-0000-000000000000", 100, time.Now())
		testutil.AssertAppError(t, err, "DEBT_NOT_FOUND")
	})
}

func TestDeletePayment(t *testing.T) {
	t.Run("reverses_contribution", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		debtSvc := NewDebtService(stores.Debts, stores.DebtPayments)
		debt := testutil.CreateTestDebt(t, db, 1000)

		_, _, err := debtSvc.RecordPayment(debt.ID, 400, time.Now())
		testutil.AssertNoError(t, err)
		_, _, err = debtSvc.RecordPayment(debt.ID, 200, time.Now())
		testutil.AssertNoError(t, err)

		payments, err := stores.DebtPayments.ListByDebt(debt.ID)
		testutil.AssertNoError(t, err)
		if len(payments) != 2 {
			t.Fatalf("expected 2 payments, got %d", len(payments))
		}

		var target *models.DebtPayment
		for i := range payments {
			if payments[i].Amount == 400 {
				target = &payments[i]
			}
		}
		if target == nil {
			t.Fatal("payment of 400 not found")
		}

		updated, _, err := debtSvc.DeletePayment(target.ID)
		testutil.AssertNoError(t, err)
		if updated.PaidAmount != 200 {
			t.Errorf("expected paid amount 200 after reversal, got %d", updated.PaidAmount)
		}

		remaining, err := stores.DebtPayments.ListByDebt(debt.ID)
		testutil.AssertNoError(t, err)
		if len(remaining) != 1 {
			t.Errorf("expected 1 remaining payment, got %d", len(remaining))
		}
	})

	t.Run("reversal_floors_at_zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		debtSvc := NewDebtService(stores.Debts, stores.DebtPayments)
		debt := testutil.CreateTestDebt(t, db, 1000)

		_, _, err := debtSvc.RecordPayment(debt.ID, 400, time.Now())
		testutil.AssertNoError(t, err)

		// Drift the stored total below the payment amount to simulate a
		// prior partial failure, then delete the payment.
		debt.PaidAmount = 100
		testutil.AssertNoError(t, stores.Debts.Update(debt))

		payments, err := stores.DebtPayments.ListByDebt(debt.ID)
		testutil.AssertNoError(t, err)

		updated, _, err := debtSvc.DeletePayment(payments[0].ID)
		testutil.AssertNoError(t, err)
		if updated.PaidAmount != 0 {
			t.Errorf("expected paid amount floored at 0, got %d", updated.PaidAmount)
		}
	})

	t.Run("unknown_payment", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		debtSvc := NewDebtService(stores.Debts, stores.DebtPayments)

		_, _, err := debtSvc.DeletePayment("00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "DEBT_PAYMENT_NOT_FOUND")
	})
}

func TestSettleDebt(t *testing.T) {
	t.Run("settling_is_explicit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		debtSvc := NewDebtService(stores.Debts, stores.DebtPayments)
		debt := testutil.CreateTestDebt(t, db, 1000)

		updated, dirty, err := debtSvc.SettleDebt(debt.ID)
		testutil.AssertNoError(t, err)
		if updated.Status != models.DebtStatusSettled {
			t.Errorf("expected settled status, got %s", updated.Status)
		}
		if len(dirty.DebtIDs) != 1 {
			t.Errorf("expected one dirty debt, got %v", dirty.DebtIDs)
		}
	})
}
