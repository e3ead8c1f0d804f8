package services

import (
	"testing"

	"tally/internal/store"
	"tally/internal/testutil"
)

func TestGoalDeposit(t *testing.T) {
	t.Run("moves_money_and_tracks_progress", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		delta := NewDeltaService(stores.Accounts)
		goalSvc := NewGoalService(stores.Goals, stores.GoalDeposits, delta)
		owner := testutil.NextRef()
		account := testutil.CreateTestAccountWithBalance(t, db, owner, 2000)
		goal := testutil.CreateTestGoal(t, db, owner, 1000)

		updated, dirty, err := goalSvc.Deposit(goal.ID, account.ID, 400)
		testutil.AssertNoError(t, err)
		if updated.CurrentAmount != 400 {
			t.Errorf("expected current amount 400, got %d", updated.CurrentAmount)
		}
		if updated.IsCompleted {
			t.Error("goal should not be completed at 400/1000")
		}

		fresh, err := stores.Accounts.Get(account.ID)
		testutil.AssertNoError(t, err)
		if fresh.Balance != 1600 {
			t.Errorf("expected account balance 1600, got %d", fresh.Balance)
		}

		if len(dirty.AccountIDs) != 1 || dirty.AccountIDs[0] != account.ID {
			t.Errorf("expected dirty account %q, got %v", account.ID, dirty.AccountIDs)
		}
		if len(dirty.GoalIDs) != 1 || dirty.GoalIDs[0] != goal.ID {
			t.Errorf("expected dirty goal %q, got %v", goal.ID, dirty.GoalIDs)
		}
	})

	t.Run("completion_fires_once", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		delta := NewDeltaService(stores.Accounts)
		goalSvc := NewGoalService(stores.Goals, stores.GoalDeposits, delta)
		owner := testutil.NextRef()
		account := testutil.CreateTestAccountWithBalance(t, db, owner, 5000)
		goal := testutil.CreateTestGoal(t, db, owner, 1000)

		updated, _, err := goalSvc.Deposit(goal.ID, account.ID, 400)
		testutil.AssertNoError(t, err)
		if updated.IsCompleted {
			t.Fatal("goal completed too early")
		}

		updated, _, err = goalSvc.Deposit(goal.ID, account.ID, 700)
		testutil.AssertNoError(t, err)
		if !updated.IsCompleted {
			t.Fatal("expected goal completed at 1100/1000")
		}
		if updated.CompletedAt == nil {
			t.Fatal("expected completion timestamp")
		}
		firstCompletedAt := *updated.CompletedAt

		// Further deposits keep accumulating but never re-fire completion.
		updated, _, err = goalSvc.Deposit(goal.ID, account.ID, 100)
		testutil.AssertNoError(t, err)
		if updated.CurrentAmount != 1200 {
			t.Errorf("expected current amount 1200, got %d", updated.CurrentAmount)
		}
		if updated.CompletedAt == nil || !updated.CompletedAt.Equal(firstCompletedAt) {
			t.Error("completion timestamp changed on a later deposit")
		}
	})

	t.Run("insufficient_funds_writes_nothing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		delta := NewDeltaService(stores.Accounts)
		goalSvc := NewGoalService(stores.Goals, stores.GoalDeposits, delta)
		owner := testutil.NextRef()
		account := testutil.CreateTestAccountWithBalance(t, db, owner, 100)
		goal := testutil.CreateTestGoal(t, db, owner, 1000)

		_, _, err := goalSvc.Deposit(goal.ID, account.ID, 500)
		testutil.AssertAppError(t, err, "INSUFFICIENT_FUNDS")

		fresh, err := stores.Goals.Get(goal.ID)
		testutil.AssertNoError(t, err)
		if fresh.CurrentAmount != 0 {
			t.Errorf("expected goal progress untouched, got %d", fresh.CurrentAmount)
		}

		deposits, err := stores.GoalDeposits.ListByGoal(goal.ID)
		testutil.AssertNoError(t, err)
		if len(deposits) != 0 {
			t.Errorf("expected no deposit records, got %d", len(deposits))
		}
	})

	t.Run("zero_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		delta := NewDeltaService(stores.Accounts)
		goalSvc := NewGoalService(stores.Goals, stores.GoalDeposits, delta)
		owner := testutil.NextRef()
		account := testutil.CreateTestAccount(t, db, owner)
		goal := testutil.CreateTestGoal(t, db, owner, 1000)

		_, _, err := goalSvc.Deposit(goal.ID, account.ID, 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestDeleteGoal(t *testing.T) {
	t.Run("refunds_accumulated_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		delta := NewDeltaService(stores.Accounts)
		goalSvc := NewGoalService(stores.Goals, stores.GoalDeposits, delta)
		owner := testutil.NextRef()
		account := testutil.CreateTestAccountWithBalance(t, db, owner, 1000)
		goal := testutil.CreateTestGoal(t, db, owner, 2000)

		_, _, err := goalSvc.Deposit(goal.ID, account.ID, 600)
		testutil.AssertNoError(t, err)

		dirty, err := goalSvc.DeleteGoal(goal.ID, account.ID)
		testutil.AssertNoError(t, err)
		if len(dirty.AccountIDs) != 1 || dirty.AccountIDs[0] != account.ID {
			t.Errorf("expected dirty account %q, got %v", account.ID, dirty.AccountIDs)
		}

		// Deposit then delete restores the original balance.
		fresh, err := stores.Accounts.Get(account.ID)
		testutil.AssertNoError(t, err)
		if fresh.Balance != 1000 {
			t.Errorf("expected balance 1000 after refund, got %d", fresh.Balance)
		}

		_, err = stores.Goals.Get(goal.ID)
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})

	t.Run("refund_account_is_required", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		delta := NewDeltaService(stores.Accounts)
		goalSvc := NewGoalService(stores.Goals, stores.GoalDeposits, delta)
		goal := testutil.CreateTestGoal(t, db, testutil.NextRef(), 1000)

		_, err := goalSvc.DeleteGoal(goal.ID, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("failed_refund_aborts_deletion", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		delta := NewDeltaService(stores.Accounts)
		goalSvc := NewGoalService(stores.Goals, stores.GoalDeposits, delta)
		owner := testutil.NextRef()
		account := testutil.CreateTestAccountWithBalance(t, db, owner, 1000)
		goal := testutil.CreateTestGoal(t, db, owner, 2000)

		_, _, err := goalSvc.Deposit(goal.ID, account.ID, 600)
		testutil.AssertNoError(t, err)

		// Refund to an unknown account fails and the goal survives intact.
		_, err = goalSvc.DeleteGoal(goal.ID, "00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")

		fresh, err := stores.Goals.Get(goal.ID)
		testutil.AssertNoError(t, err)
		if fresh.CurrentAmount != 600 {
			t.Errorf("expected goal progress 600 after aborted delete, got %d", fresh.CurrentAmount)
		}
	})

	t.Run("empty_goal_needs_no_refund_delta", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		delta := NewDeltaService(stores.Accounts)
		goalSvc := NewGoalService(stores.Goals, stores.GoalDeposits, delta)
		owner := testutil.NextRef()
		account := testutil.CreateTestAccountWithBalance(t, db, owner, 500)
		goal := testutil.CreateTestGoal(t, db, owner, 1000)

		_, err := goalSvc.DeleteGoal(goal.ID, account.ID)
		testutil.AssertNoError(t, err)

		fresh, err := stores.Accounts.Get(account.ID)
		testutil.AssertNoError(t, err)
		if fresh.Balance != 500 {
			t.Errorf("expected balance unchanged at 500, got %d", fresh.Balance)
		}
	})
}

func TestUpdateGoal(t *testing.T) {
	t.Run("raising_target_never_resets_completion", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		stores := store.New(db)
		delta := NewDeltaService(stores.Accounts)
		goalSvc := NewGoalService(stores.Goals, stores.GoalDeposits, delta)
		owner := testutil.NextRef()
		account := testutil.CreateTestAccountWithBalance(t, db, owner, 5000)
		goal := testutil.CreateTestGoal(t, db, owner, 1000)

		_, _, err := goalSvc.Deposit(goal.ID, account.ID, 1000)
		testutil.AssertNoError(t, err)

		newTarget := int64(5000)
		updated, err := goalSvc.UpdateGoal(goal.ID, "", &newTarget, nil)
		testutil.AssertNoError(t, err)
		if !updated.IsCompleted {
			t.Error("completion flag reset by target change")
		}
	})
}
