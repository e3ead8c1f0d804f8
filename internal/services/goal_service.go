package services

import (
	"time"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/store"
)

// goalService is the goal progress synchronizer: it keeps goal progress
// consistent with the deposits that fund it, moving money through the delta
// engine.
type goalService struct {
	goals    store.GoalStore
	deposits store.GoalDepositStore
	delta    DeltaServicer
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(goals store.GoalStore, deposits store.GoalDepositStore, delta DeltaServicer) GoalServicer {
	return &goalService{goals: goals, deposits: deposits, delta: delta}
}

// CreateGoal creates a new savings goal.
func (s *goalService) CreateGoal(ownerRef, name string, targetAmount int64, priority int) (*models.Goal, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}

	goal := &models.Goal{
		OwnerRef:     ownerRef,
		Name:         name,
		TargetAmount: targetAmount,
		Priority:     priority,
	}

	if err := s.goals.Create(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// GetGoalByID retrieves a goal by ID.
func (s *goalService) GetGoalByID(goalID string) (*models.Goal, error) {
	return s.goals.Get(goalID)
}

// GetOwnerGoals retrieves all goals for an owner, highest priority first.
func (s *goalService) GetOwnerGoals(ownerRef string) ([]models.Goal, error) {
	return s.goals.List(ownerRef)
}

// UpdateGoal updates a goal's name, target amount, or priority. Raising the
// target of a completed goal does not reset the completion flag: the
// false-to-true edge fires at most once in a goal's lifetime.
func (s *goalService) UpdateGoal(goalID string, name string, targetAmount *int64, priority *int) (*models.Goal, error) {
	goal, err := s.goals.Get(goalID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		goal.Name = name
	}
	if targetAmount != nil {
		if *targetAmount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
		}
		goal.TargetAmount = *targetAmount
	}
	if priority != nil {
		goal.Priority = *priority
	}

	if err := s.goals.Update(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// Deposit moves amount from the funding account into the goal. Step order:
// subtract the account balance through the delta engine, append the deposit
// record, then update the goal's progress. A failure after the subtract has
// committed is surfaced as PartialFailure; there is no cross-store rollback.
func (s *goalService) Deposit(goalID, fromAccountID string, amount int64) (*models.Goal, *DirtySet, error) {
	if amount <= 0 {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "deposit amount must be greater than zero")
	}

	goal, err := s.goals.Get(goalID)
	if err != nil {
		return nil, nil, err
	}

	if _, err := s.delta.Apply(fromAccountID, amount, DirectionSubtract); err != nil {
		return nil, nil, err
	}

	deposit := &models.GoalDeposit{
		GoalID:        goal.ID,
		FromAccountID: fromAccountID,
		Amount:        amount,
		Date:          time.Now(),
	}
	if err := s.deposits.Create(deposit); err != nil {
		return nil, nil, apperrors.NewPartialFailure("deposit to goal",
			[]string{"subtract account balance"}, "append deposit record", err)
	}

	goal.CurrentAmount += amount
	if !goal.IsCompleted && goal.CurrentAmount >= goal.TargetAmount {
		// The false-to-true edge: fires on the deposit that first crosses
		// the target and never again, even if later deposits keep arriving.
		now := time.Now()
		goal.IsCompleted = true
		goal.CompletedAt = &now
	}

	if err := s.goals.Update(goal); err != nil {
		return nil, nil, apperrors.NewPartialFailure("deposit to goal",
			[]string{"subtract account balance", "append deposit record"}, "update goal progress", err)
	}

	dirty := NewDirtySet()
	dirty.AddAccount(fromAccountID)
	dirty.AddGoal(goal.ID)
	return goal, dirty, nil
}

// DeleteGoal refunds the goal's accumulated amount to the given account,
// then destroys the goal and its deposit history. The refund account is a
// required, explicit choice: a goal funded from several accounts has no
// defensible implicit default. If the refund delta fails, the deletion
// aborts with the funds untouched.
func (s *goalService) DeleteGoal(goalID, refundAccountID string) (*DirtySet, error) {
	if refundAccountID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "refund account is required")
	}

	goal, err := s.goals.Get(goalID)
	if err != nil {
		return nil, err
	}

	refunded := false
	if goal.CurrentAmount > 0 {
		if _, err := s.delta.Apply(refundAccountID, goal.CurrentAmount, DirectionAdd); err != nil {
			return nil, err
		}
		refunded = true
	}

	if err := s.deposits.DeleteByGoal(goal.ID); err != nil {
		if refunded {
			return nil, apperrors.NewPartialFailure("delete goal",
				[]string{"refund account balance"}, "delete deposit records", err)
		}
		return nil, err
	}

	if err := s.goals.Delete(goal.ID); err != nil {
		completed := []string{"delete deposit records"}
		if refunded {
			completed = []string{"refund account balance", "delete deposit records"}
		}
		return nil, apperrors.NewPartialFailure("delete goal", completed, "delete goal record", err)
	}

	dirty := NewDirtySet()
	dirty.AddAccount(refundAccountID)
	dirty.AddGoal(goal.ID)
	return dirty, nil
}
