package models

// Account represents a money-holding account. Balance is stored in cents and
// only ever moves through the delta engine, which re-reads it before every
// precondition check.
type Account struct {
	Base
	OwnerRef string `gorm:"not null;index" json:"owner_ref"`
	Name     string `gorm:"not null" json:"name"`
	Balance  int64  `gorm:"type:bigint;not null" json:"balance"`
	Currency string `gorm:"not null" json:"currency"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}
