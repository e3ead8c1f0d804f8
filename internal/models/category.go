package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a transaction category. Category management itself is
// external; the engine only needs categories to exist so budget windows can
// scope expense transactions to them.
type Category struct {
	Base
	Name string       `gorm:"not null" json:"name"`
	Type CategoryType `gorm:"not null" json:"type"`
}
