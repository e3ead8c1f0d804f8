package models

import "time"

// Goal represents a savings goal funded by deposits from accounts.
// IsCompleted flips exactly once, on the deposit that first carries
// CurrentAmount past TargetAmount.
type Goal struct {
	Base
	OwnerRef      string     `gorm:"not null;index" json:"owner_ref"`
	Name          string     `gorm:"not null" json:"name"`
	TargetAmount  int64      `gorm:"type:bigint;not null" json:"target_amount"`
	CurrentAmount int64      `gorm:"type:bigint;not null" json:"current_amount"`
	IsCompleted   bool       `gorm:"default:false" json:"is_completed"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	Priority      int        `gorm:"default:0" json:"priority"`
}

// GoalDeposit records a single contribution to a goal. Deposits are
// append-only; they are destroyed only together with their goal.
type GoalDeposit struct {
	Base
	GoalID        string    `gorm:"not null;index" json:"goal_id"`
	FromAccountID string    `gorm:"not null" json:"from_account_id"`
	Amount        int64     `gorm:"type:bigint;not null" json:"amount"`
	Date          time.Time `gorm:"not null" json:"date"`
}
