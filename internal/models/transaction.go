package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// Transaction represents a financial event in the ledger. Amount is always
// positive; the type decides the sign of its effect on the account balance.
// A transaction may back-reference the budget, goal, or bill it was created
// for.
type Transaction struct {
	Base
	AccountID   string          `gorm:"not null;index" json:"account_id"`
	CategoryID  *string         `gorm:"index" json:"category_id,omitempty"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null" json:"date"`

	// For transfers
	ToAccountID *string `json:"to_account_id,omitempty"`

	// Back-references to the aggregate this transaction was created for
	BudgetID *string `json:"budget_id,omitempty"`
	GoalID   *string `json:"goal_id,omitempty"`
	BillID   *string `json:"bill_id,omitempty"`
}
