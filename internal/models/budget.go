package models

import "time"

// Budget represents a spending limit for a category over a window. The spent
// amount is never stored: it is recomputed from matching expense
// transactions on every read. The window is either the explicit start/end
// dates or, when absent, the first and last calendar day of Month
// ("YYYY-MM").
type Budget struct {
	Base
	CategoryID  string     `gorm:"not null;index" json:"category_id"`
	Name        string     `gorm:"not null" json:"name"`
	Amount      int64      `gorm:"type:bigint;not null" json:"amount"`
	Month       string     `json:"month,omitempty"`
	PeriodStart *time.Time `json:"period_start,omitempty"`
	PeriodEnd   *time.Time `json:"period_end,omitempty"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
}
