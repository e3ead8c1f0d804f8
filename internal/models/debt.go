package models

import "time"

// DebtStatus represents the lifecycle state of a debt
type DebtStatus string

const (
	DebtStatusOpen    DebtStatus = "open"
	DebtStatusSettled DebtStatus = "settled"
)

// Debt represents money owed between two parties. PaidAmount accumulates
// recorded payments and never exceeds Amount; reaching equality does not
// settle the debt by itself, settling is an explicit action.
type Debt struct {
	Base
	CreditorRef string     `gorm:"not null;index" json:"creditor_ref"`
	DebtorRef   string     `gorm:"not null;index" json:"debtor_ref"`
	Description string     `json:"description"`
	Amount      int64      `gorm:"type:bigint;not null" json:"amount"`
	PaidAmount  int64      `gorm:"type:bigint;not null" json:"paid_amount"`
	Status      DebtStatus `gorm:"not null;default:open" json:"status"`
}

// DebtPayment records a single payment against a debt. Payments are
// append-only; deleting one reverses its contribution to the debt's paid
// total.
type DebtPayment struct {
	Base
	DebtID string    `gorm:"not null;index" json:"debt_id"`
	Amount int64     `gorm:"type:bigint;not null" json:"amount"`
	Date   time.Time `gorm:"not null" json:"date"`
}
