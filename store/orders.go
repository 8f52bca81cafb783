package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"smart-table-api/cart"
	"smart-table-api/invoice"
	"smart-table-api/models"
	"smart-table-api/statemachine"
)

// Notifier receives order events after a mutation has been committed.
// Implementations must not block; the hub buffers.
type Notifier interface {
	OrderPlaced(order *models.Order)
	OrderStatusChanged(order *models.Order, from models.OrderStatus)
	OrderDeleted(order *models.Order)
}

// occupiedStatuses is the set of statuses that both hold a table against
// new seatings and mark an order as the table's replaceable "current"
// order. A table frees only on Completed or Cancelled.
var occupiedStatuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusPreparing,
	models.StatusReady,
}

// Store is the single shared order store. Diner sessions and the staff
// view all mutate through it; every mutating call runs under one mutex
// and one transaction, so concurrent placements and status updates can
// never lose each other and a crash cannot leave a half-written store.
type Store struct {
	db       *gorm.DB
	roster   []string
	known    map[string]bool
	invoices invoice.Generator
	notify   Notifier
	mu       sync.Mutex
}

// New wires the store to its database, the table roster, the invoice
// collaborator and an optional notifier (nil disables events).
func New(db *gorm.DB, tables []string, gen invoice.Generator, notify Notifier) *Store {
	known := make(map[string]bool, len(tables))
	for _, t := range tables {
		known[t] = true
	}
	return &Store{
		db:       db,
		roster:   tables,
		known:    known,
		invoices: gen,
		notify:   notify,
	}
}

// Tables returns the full table roster.
func (s *Store) Tables() []string {
	return s.roster
}

// KnownTable reports whether a table exists on the roster.
func (s *Store) KnownTable(table string) bool {
	return s.known[table]
}

// PlaceOrder submits a cart snapshot for a table. Any non-terminal order
// the table already holds is evicted, so a table has at most one current
// order. The new order starts Pending; a payment row is recorded when a
// method was chosen. Validation failures leave the store untouched.
func (s *Store) PlaceOrder(table string, snapshot map[string]cart.Line, payment models.PaymentMethod) (*models.Order, error) {
	if !s.known[table] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	if len(snapshot) == 0 {
		return nil, ErrEmptyCart
	}
	if _, err := models.ParsePayment(string(payment)); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(snapshot))
	for _, name := range names {
		line := snapshot[name]
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidQuantity, name)
		}
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, models.OrderItem{
			Name:     name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}

	order := models.Order{
		Table:   table,
		Status:  models.StatusPending,
		Payment: payment,
		Total:   total,
		Items:   items,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteOrdersWhere(tx, "table_no = ? AND status IN ?", table, occupiedStatuses); err != nil {
			return err
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		history := models.OrderStatusHistory{
			OrderID:  order.ID,
			ToStatus: models.StatusPending,
			Actor:    "diner",
			Note:     "Order placed",
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}
		if payment != "" {
			row := models.Payment{
				Table:     table,
				Method:    payment,
				Amount:    total,
				OrderedAt: order.CreatedAt,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	if s.notify != nil {
		s.notify.OrderPlaced(&order)
	}
	return &order, nil
}

// Orders returns all orders, newest first, optionally filtered by
// status.
func (s *Store) Orders(status models.OrderStatus) ([]models.Order, error) {
	query := s.db.Preload("Items").Order("created_at desc, id desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return orders, nil
}

// OrdersForTable returns one table's orders, newest first, including
// completed and cancelled history.
func (s *Store) OrdersForTable(table string) ([]models.Order, error) {
	if !s.known[table] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("table_no = ?", table).
		Order("created_at desc, id desc").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("load orders for table %s: %w", table, err)
	}
	return orders, nil
}

// GetOrder loads one order with items and status history.
func (s *Store) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").Preload("StatusHistory").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load order %d: %w", id, err)
	}
	return &order, nil
}

// UpdateStatus moves an order through its lifecycle. Requesting the
// state the order is already in is an idempotent no-op. On entering
// Completed the invoice is generated exactly once and its path stored
// with the same transaction as the status change.
func (s *Store) UpdateStatus(id uint, to models.OrderStatus, actor, note string) (*models.Order, error) {
	if _, err := models.ParseStatus(string(to)); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var order models.Order
	err := s.db.Preload("Items").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load order %d: %w", id, err)
	}

	if order.Status == to {
		return &order, nil
	}
	if err := statemachine.CanTransition(order.Status, to); err != nil {
		return nil, err
	}

	from := order.Status
	updates := map[string]interface{}{"status": to}
	if to == models.StatusCompleted {
		order.Status = to
		path, err := s.invoices.Generate(&order)
		if err != nil {
			return nil, fmt.Errorf("generate invoice: %w", err)
		}
		order.InvoicePath = path
		updates["invoice_path"] = path
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{ID: order.ID}).Updates(updates).Error; err != nil {
			return err
		}
		history := models.OrderStatusHistory{
			OrderID:    order.ID,
			FromStatus: from,
			ToStatus:   to,
			Actor:      actor,
			Note:       note,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return nil, fmt.Errorf("update order %d status: %w", id, err)
	}

	order.Status = to
	if s.notify != nil {
		s.notify.OrderStatusChanged(&order, from)
	}
	return &order, nil
}

// CancelOrder is the diner-facing transition to Cancelled. Cancelling an
// already-cancelled order is a no-op; cancelling a completed one is an
// invalid transition.
func (s *Store) CancelOrder(id uint, actor string) (*models.Order, error) {
	return s.UpdateStatus(id, models.StatusCancelled, actor, "Order cancelled")
}

// DeleteOrder removes an order permanently, whatever its status. There
// is no restore.
func (s *Store) DeleteOrder(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var order models.Order
	err := s.db.First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("load order %d: %w", id, err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return deleteOrdersWhere(tx, "id = ?", order.ID)
	})
	if err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}

	if s.notify != nil {
		s.notify.OrderDeleted(&order)
	}
	return nil
}

// AvailableTables returns the roster minus every table currently holding
// a Pending, Preparing or Ready order. Recomputed on every call; orders
// mutate concurrently.
func (s *Store) AvailableTables() ([]string, error) {
	var taken []string
	err := s.db.Model(&models.Order{}).
		Where("status IN ?", occupiedStatuses).
		Distinct().
		Pluck("table_no", &taken).Error
	if err != nil {
		return nil, fmt.Errorf("load occupied tables: %w", err)
	}

	occupied := make(map[string]bool, len(taken))
	for _, t := range taken {
		occupied[t] = true
	}
	available := make([]string, 0, len(s.roster))
	for _, t := range s.roster {
		if !occupied[t] {
			available = append(available, t)
		}
	}
	return available, nil
}

// deleteOrdersWhere removes matching orders together with their lines
// and history rows.
func deleteOrdersWhere(tx *gorm.DB, cond string, args ...interface{}) error {
	var ids []uint
	if err := tx.Model(&models.Order{}).Where(cond, args...).Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("order_id IN ?", ids).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	if err := tx.Where("order_id IN ?", ids).Delete(&models.OrderStatusHistory{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&models.Order{}).Error
}
