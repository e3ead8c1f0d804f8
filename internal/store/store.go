// Package store implements the engine's Event Store accessors: one
// read/write accessor per entity type, addressed by opaque ids.
//
// Every method is a single independent call against the backing store. No
// method ever spans more than one record type, and no cross-record
// transaction is taken anywhere in this package: multi-step mutations are
// sequenced by the services layer, which owns the partial-failure policy.
package store

import (
	"time"

	"gorm.io/gorm"

	"tally/internal/models"
	"tally/internal/pagination"
)

// AccountStore provides access to account records.
type AccountStore interface {
	Create(account *models.Account) error
	Get(id string) (*models.Account, error)
	List(ownerRef string) ([]models.Account, error)
	Update(account *models.Account) error
	// UpdateBalance writes only the balance column for the given account.
	UpdateBalance(id string, balance int64) error
	Delete(id string) error
}

// CategoryStore provides access to category records.
type CategoryStore interface {
	Create(category *models.Category) error
	Get(id string) (*models.Category, error)
	List() ([]models.Category, error)
}

// TransactionStore provides access to transaction records.
type TransactionStore interface {
	Create(tx *models.Transaction) error
	Get(id string) (*models.Transaction, error)
	Update(tx *models.Transaction) error
	Delete(id string) error
	ListByAccount(accountID string, page pagination.PageRequest) ([]models.Transaction, int64, error)
	// SumExpenses returns the total amount of expense transactions for the
	// category within [from, to], inclusive.
	SumExpenses(categoryID string, from, to time.Time) (int64, error)
}

// BudgetStore provides access to budget records.
type BudgetStore interface {
	Create(budget *models.Budget) error
	Get(id string) (*models.Budget, error)
	List(isActive *bool) ([]models.Budget, error)
	ListByCategory(categoryID string) ([]models.Budget, error)
	Update(budget *models.Budget) error
	Delete(id string) error
}

// GoalStore provides access to goal records.
type GoalStore interface {
	Create(goal *models.Goal) error
	Get(id string) (*models.Goal, error)
	List(ownerRef string) ([]models.Goal, error)
	Update(goal *models.Goal) error
	Delete(id string) error
}

// GoalDepositStore provides access to goal deposit records.
type GoalDepositStore interface {
	Create(deposit *models.GoalDeposit) error
	ListByGoal(goalID string) ([]models.GoalDeposit, error)
	DeleteByGoal(goalID string) error
}

// BillStore provides access to bill records.
type BillStore interface {
	Create(bill *models.Bill) error
	Get(id string) (*models.Bill, error)
	List(ownerRef string) ([]models.Bill, error)
	Update(bill *models.Bill) error
}

// BillParticipantStore provides access to bill participant records.
type BillParticipantStore interface {
	Create(participant *models.BillParticipant) error
	Get(id string) (*models.BillParticipant, error)
	ListByBill(billID string) ([]models.BillParticipant, error)
	Update(participant *models.BillParticipant) error
}

// DebtStore provides access to debt records.
type DebtStore interface {
	Create(debt *models.Debt) error
	Get(id string) (*models.Debt, error)
	List(status *models.DebtStatus) ([]models.Debt, error)
	Update(debt *models.Debt) error
}

// DebtPaymentStore provides access to debt payment records.
type DebtPaymentStore interface {
	Create(payment *models.DebtPayment) error
	Get(id string) (*models.DebtPayment, error)
	ListByDebt(debtID string) ([]models.DebtPayment, error)
	Delete(id string) error
}

// Stores bundles one accessor per entity type over a shared GORM connection.
type Stores struct {
	Accounts         AccountStore
	Categories       CategoryStore
	Transactions     TransactionStore
	Budgets          BudgetStore
	Goals            GoalStore
	GoalDeposits     GoalDepositStore
	Bills            BillStore
	BillParticipants BillParticipantStore
	Debts            DebtStore
	DebtPayments     DebtPaymentStore
}

// New creates GORM-backed stores for every entity type.
func New(db *gorm.DB) *Stores {
	return &Stores{
		Accounts:         &accountStore{db: db},
		Categories:       &categoryStore{db: db},
		Transactions:     &transactionStore{db: db},
		Budgets:          &budgetStore{db: db},
		Goals:            &goalStore{db: db},
		GoalDeposits:     &goalDepositStore{db: db},
		Bills:            &billStore{db: db},
		BillParticipants: &billParticipantStore{db: db},
		Debts:            &debtStore{db: db},
		DebtPayments:     &debtPaymentStore{db: db},
	}
}
