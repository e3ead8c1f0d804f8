package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"tally/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NextRef returns a unique external user reference.
func NextRef() string {
	return fmt.Sprintf("user-%d", nextID())
}

// CreateTestAccount creates an account with zero balance.
func CreateTestAccount(t *testing.T, db *gorm.DB, ownerRef string) *models.Account {
	t.Helper()
	return CreateTestAccountWithBalance(t, db, ownerRef, 0)
}

// CreateTestAccountWithBalance creates an account with the given balance (in cents).
func CreateTestAccountWithBalance(t *testing.T, db *gorm.DB, ownerRef string, balance int64) *models.Account {
	t.Helper()

	account := &models.Account{
		OwnerRef: ownerRef,
		Name:     fmt.Sprintf("Test Account %d", nextID()),
		Balance:  balance,
		Currency: "USD",
		IsActive: true,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestCategory creates a category of the given type.
func CreateTestCategory(t *testing.T, db *gorm.DB, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		Name: fmt.Sprintf("Test Category %d", nextID()),
		Type: categoryType,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction of the given type and amount (in cents).
func CreateTestTransaction(t *testing.T, db *gorm.DB, accountID string, txType models.TransactionType, amount int64) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		AccountID: accountID,
		Type:      txType,
		Amount:    amount,
		Date:      time.Now(),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestExpense creates an expense transaction in the given category on
// the given date.
func CreateTestExpense(t *testing.T, db *gorm.DB, accountID, categoryID string, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		AccountID:  accountID,
		CategoryID: &categoryID,
		Type:       models.TransactionTypeExpense,
		Amount:     amount,
		Date:       date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return tx
}

// CreateTestBudget creates a budget for the given category and month token.
func CreateTestBudget(t *testing.T, db *gorm.DB, categoryID, month string, amount int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		CategoryID: categoryID,
		Name:       fmt.Sprintf("Test Budget %d", nextID()),
		Amount:     amount,
		Month:      month,
		IsActive:   true,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestGoal creates an incomplete goal with the given target (in cents).
func CreateTestGoal(t *testing.T, db *gorm.DB, ownerRef string, targetAmount int64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		OwnerRef:     ownerRef,
		Name:         fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount: targetAmount,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestDebt creates an open debt with the given amount (in cents).
func CreateTestDebt(t *testing.T, db *gorm.DB, amount int64) *models.Debt {
	t.Helper()

	n := nextID()
	debt := &models.Debt{
		CreditorRef: fmt.Sprintf("creditor-%d", n),
		DebtorRef:   fmt.Sprintf("debtor-%d", n),
		Description: fmt.Sprintf("Test Debt %d", n),
		Amount:      amount,
		Status:      models.DebtStatusOpen,
	}
	if err := db.Create(debt).Error; err != nil {
		t.Fatalf("failed to create test debt: %v", err)
	}
	return debt
}
