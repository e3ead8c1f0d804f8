package models

import "time"

// BillStatus represents the settlement state of a bill
type BillStatus string

const (
	BillStatusPending   BillStatus = "pending"
	BillStatusSettled   BillStatus = "settled"
	BillStatusCancelled BillStatus = "cancelled"
)

// Bill represents a shared expense split across participants. Status is
// derived: a bill is settled exactly when every participant is paid, and the
// transition is recomputed inside the same operation that marks a
// participant paid.
type Bill struct {
	Base
	OwnerRef    string     `gorm:"not null;index" json:"owner_ref"`
	Description string     `json:"description"`
	TotalAmount int64      `gorm:"type:bigint;not null" json:"total_amount"`
	Status      BillStatus `gorm:"not null;default:pending" json:"status"`
	SettledAt   *time.Time `json:"settled_at,omitempty"`
}

// BillParticipant is one person's share of a bill. Participants are created
// with the bill, mutated only for paid state, and never deleted on their
// own.
type BillParticipant struct {
	Base
	BillID  string     `gorm:"not null;index" json:"bill_id"`
	UserRef string     `gorm:"not null" json:"user_ref"`
	Amount  int64      `gorm:"type:bigint;not null" json:"amount"`
	IsPaid  bool       `gorm:"default:false" json:"is_paid"`
	PaidAt  *time.Time `json:"paid_at,omitempty"`
}
