package services

import (
	"time"

	"tally/internal/models"
	"tally/internal/pagination"
)

// Direction tells the delta engine which way a balance moves.
type Direction string

const (
	DirectionAdd      Direction = "add"
	DirectionSubtract Direction = "subtract"
)

// AccountServicer defines the contract for account bookkeeping.
type AccountServicer interface {
	CreateAccount(ownerRef, name, currency string, startAmount int64) (*models.Account, error)
	GetAccountByID(accountID string) (*models.Account, error)
	GetOwnerAccounts(ownerRef string) ([]models.Account, error)
}

// DeltaServicer defines the contract of the delta application engine. Every
// balance movement in the system goes through Apply, which re-reads the
// account immediately before the precondition check.
type DeltaServicer interface {
	Apply(accountID string, amount int64, direction Direction) (*models.Account, error)
	// Reversal returns the inverse delta of a live transaction's effect on
	// its account.
	Reversal(tx *models.Transaction) (Direction, int64, error)
	// ReverseAndApply undoes oldTx's effect and applies newTx's effect
	// against the account as one combined operation: one re-read, one
	// precondition check, one balance write.
	ReverseAndApply(accountID string, oldTx, newTx *models.Transaction) (*models.Account, error)
}

// GoalServicer defines the contract of the goal progress synchronizer.
type GoalServicer interface {
	CreateGoal(ownerRef, name string, targetAmount int64, priority int) (*models.Goal, error)
	GetGoalByID(goalID string) (*models.Goal, error)
	GetOwnerGoals(ownerRef string) ([]models.Goal, error)
	UpdateGoal(goalID string, name string, targetAmount *int64, priority *int) (*models.Goal, error)
	Deposit(goalID, fromAccountID string, amount int64) (*models.Goal, *DirtySet, error)
	// DeleteGoal refunds the goal's current amount to the given account
	// before destroying the goal and its deposits. The refund account is an
	// explicit caller decision, never inferred from deposit history.
	DeleteGoal(goalID, refundAccountID string) (*DirtySet, error)
}

// ParticipantShare is one caller-supplied share of a custom bill split.
type ParticipantShare struct {
	UserRef string `json:"user_ref"`
	Amount  int64  `json:"amount"`
}

// BillServicer defines the contract of the bill settlement state machine.
type BillServicer interface {
	CreateBillEqualSplit(ownerRef, description string, totalAmount int64, memberRefs []string) (*models.Bill, []models.BillParticipant, error)
	CreateBillCustomSplit(ownerRef, description string, totalAmount int64, shares []ParticipantShare) (*models.Bill, []models.BillParticipant, error)
	GetBillByID(billID string) (*models.Bill, []models.BillParticipant, error)
	GetOwnerBills(ownerRef string) ([]models.Bill, error)
	MarkParticipantPaid(participantID string) (*models.Bill, *DirtySet, error)
	CancelBill(billID string) (*models.Bill, *DirtySet, error)
}

// DebtServicer defines the contract of the debt ledger.
type DebtServicer interface {
	CreateDebt(creditorRef, debtorRef, description string, amount int64) (*models.Debt, error)
	GetDebtByID(debtID string) (*models.Debt, []models.DebtPayment, error)
	ListDebts(status *models.DebtStatus) ([]models.Debt, error)
	RecordPayment(debtID string, amount int64, date time.Time) (*models.Debt, *DirtySet, error)
	DeletePayment(paymentID string) (*models.Debt, *DirtySet, error)
	// SettleDebt is an explicit action, deliberately decoupled from
	// paid_amount reaching the debt amount.
	SettleDebt(debtID string) (*models.Debt, *DirtySet, error)
}

// BudgetProgress contains recomputed spending vs budget for a window.
type BudgetProgress struct {
	BudgetID   string  `json:"budget_id"`
	Budgeted   int64   `json:"budgeted"`
	Spent      int64   `json:"spent"`
	Remaining  int64   `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// BudgetServicer defines the contract of the budget window aggregator.
// Spent amounts are recomputed from the store on every call, never
// maintained as counters.
type BudgetServicer interface {
	CreateBudget(name, categoryID string, amount int64, month string, periodStart, periodEnd *time.Time) (*models.Budget, error)
	GetBudgetByID(budgetID string) (*models.Budget, error)
	ListBudgets(isActive *bool) ([]models.Budget, error)
	UpdateBudget(budgetID string, name string, amount *int64, month *string) (*models.Budget, error)
	DeleteBudget(budgetID string) error
	RecomputeSpent(budgetID string) (int64, error)
	GetBudgetProgress(budgetID string) (*BudgetProgress, error)
}

// CreateTransactionInput carries the fields for a new transaction.
type CreateTransactionInput struct {
	AccountID   string
	ToAccountID *string
	CategoryID  *string
	Type        models.TransactionType
	Amount      int64
	Description string
	Date        time.Time
	BudgetID    *string
	GoalID      *string
	BillID      *string
}

// EditTransactionInput carries the editable fields of a transaction. Nil
// fields are left unchanged.
type EditTransactionInput struct {
	Amount      *int64
	Type        *models.TransactionType
	CategoryID  *string
	Description *string
	Date        *time.Time
}

// LedgerServicer defines the contract of the reconciliation orchestrator:
// fixed step order per action, explicit partial-failure surfacing, and a
// dirty set naming the aggregates each mutation touched.
type LedgerServicer interface {
	CreateTransaction(in CreateTransactionInput) (*models.Transaction, *DirtySet, error)
	EditTransaction(transactionID string, in EditTransactionInput) (*models.Transaction, *DirtySet, error)
	DeleteTransaction(transactionID string) (*DirtySet, error)
	GetTransactionByID(transactionID string) (*models.Transaction, error)
	GetAccountTransactions(accountID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
}
