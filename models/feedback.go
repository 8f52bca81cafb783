package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Feedback is a post-completion rating left by a diner. It is keyed by
// table and timestamp and carries no link into order records.
type Feedback struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Table     string    `json:"table" gorm:"column:table_no;index;not null"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating" gorm:"not null"` // 1–5
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Payment records the method chosen when an order was placed, correlated
// to the order by (table, ordered_at).
type Payment struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Table     string          `json:"table" gorm:"column:table_no;index;not null"`
	Method    PaymentMethod   `json:"method" gorm:"not null"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(10,2)"`
	OrderedAt time.Time       `json:"ordered_at"`
	CreatedAt time.Time       `json:"created_at"`
}
