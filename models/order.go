package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of a table order
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

// AllStatuses lists every status in lifecycle order.
var AllStatuses = []OrderStatus{
	StatusPending,
	StatusPreparing,
	StatusReady,
	StatusCompleted,
	StatusCancelled,
}

var ErrUnknownStatus = errors.New("unknown order status")

// ParseStatus validates a status string coming from a request.
func ParseStatus(s string) (OrderStatus, error) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", ErrUnknownStatus
}

// Terminal reports whether no further transitions are allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// PaymentMethod is the optional payment tag chosen at order placement
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "Cash"
	PaymentCard   PaymentMethod = "Card"
	PaymentOnline PaymentMethod = "Online"
)

var ErrUnknownPayment = errors.New("unknown payment method")

// ParsePayment validates a payment method string. Empty is allowed —
// the tag is optional on an order.
func ParsePayment(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case "", PaymentCash, PaymentCard, PaymentOnline:
		return PaymentMethod(s), nil
	}
	return "", ErrUnknownPayment
}

// Order is a submitted cart bound to a table. Items, table and creation
// time are immutable after placement; only status, payment and the
// invoice path mutate, and only through lifecycle transitions.
type Order struct {
	ID            uint                 `json:"id" gorm:"primaryKey"`
	Table         string               `json:"table" gorm:"column:table_no;index;not null"`
	Status        OrderStatus          `json:"status" gorm:"not null;default:'Pending'"`
	Payment       PaymentMethod        `json:"payment,omitempty"`
	Total         decimal.Decimal      `json:"total" gorm:"type:decimal(10,2)"`
	InvoicePath   string               `json:"invoice_path,omitempty"`
	Items         []OrderItem          `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	StatusHistory []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type OrderItem struct {
	ID       uint            `json:"id" gorm:"primaryKey"`
	OrderID  uint            `json:"order_id" gorm:"not null;index"`
	Name     string          `json:"name" gorm:"not null"`
	Price    decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"` // snapshot price at add-time
	Quantity int             `json:"quantity" gorm:"not null"`
}

// Subtotal is price × quantity for one line.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderStatusHistory tracks every status change on an order
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null;index"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	Actor      string      `json:"actor"` // "diner", "staff" or "admin"
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
