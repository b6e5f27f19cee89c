package repository

import (
	"errors"
	"time"

	"restaurant-orders-api/models"
	"restaurant-orders-api/store"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderRepository reads and writes orders, their items and status history.
// Every method takes the scope to run in: the pool for reads, a transaction
// for multi-step writes.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// ---------------- Users ----------------

func (r *OrderRepository) CreateUser(db *gorm.DB, u *models.User) error {
	return store.Wrap("insert user", db.Create(u).Error)
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(db *gorm.DB, o *models.Order) error {
	return store.Wrap("insert order", db.Omit(clause.Associations).Create(o).Error)
}

func (r *OrderRepository) CreateOrderItem(db *gorm.DB, oi *models.OrderItem) error {
	return store.Wrap("insert order item", db.Create(oi).Error)
}

func (r *OrderRepository) CreateStatusHistory(db *gorm.DB, h *models.OrderStatusHistory) error {
	return store.Wrap("insert status history", db.Create(h).Error)
}

// FindOrder returns the bare order row; found is false when it does not exist.
func (r *OrderRepository) FindOrder(db *gorm.DB, orderID int64) (*models.Order, bool, error) {
	var o models.Order
	err := db.First(&o, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, store.Wrap("select order", err)
	}
	return &o, true, nil
}

// GetOrderWithItems loads one order and its items.
func (r *OrderRepository) GetOrderWithItems(db *gorm.DB, orderID int64) (*models.Order, bool, error) {
	var o models.Order
	err := db.Preload("Items", orderItems).First(&o, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, store.Wrap("select order", err)
	}
	return &o, true, nil
}

// GetOrderDetail loads one order with items and status history.
func (r *OrderRepository) GetOrderDetail(db *gorm.DB, orderID int64) (*models.Order, bool, error) {
	var o models.Order
	err := db.Preload("Items", orderItems).
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&o, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, store.Wrap("select order", err)
	}
	return &o, true, nil
}

// ListOrders returns orders with their items in insertion order. A zero userID
// lists every order.
func (r *OrderRepository) ListOrders(db *gorm.DB, userID int64) ([]models.Order, error) {
	query := db.Preload("Items", orderItems).Order("order_id")
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, store.Wrap("select orders", err)
	}
	return orders, nil
}

func (r *OrderRepository) UpdateStatus(db *gorm.DB, orderID int64, status models.OrderStatus) (int64, error) {
	res := db.Model(&models.Order{}).Where("order_id = ?", orderID).Update("status", status)
	return res.RowsAffected, store.Wrap("update order status", res.Error)
}

// DeleteOrder removes the history, the items and then the order row. The
// caller supplies the transaction.
func (r *OrderRepository) DeleteOrder(tx *gorm.DB, orderID int64) (int64, error) {
	if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderStatusHistory{}).Error; err != nil {
		return 0, store.Wrap("delete status history", err)
	}
	if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
		return 0, store.Wrap("delete order items", err)
	}
	res := tx.Delete(&models.Order{}, orderID)
	return res.RowsAffected, store.Wrap("delete order", res.Error)
}

// ---------------- Reporting ----------------

// OrderVolume is one order's timestamp and total quantity across its items.
type OrderVolume struct {
	OrderID   int64
	OrderDate time.Time
	Items     int64
}

// VolumesSince returns every order placed at or after since that has at least
// one item.
func (r *OrderRepository) VolumesSince(db *gorm.DB, since time.Time) ([]OrderVolume, error) {
	var out []OrderVolume
	err := db.Table("orders AS o").
		Select("o.order_id, o.order_date, SUM(oi.quantity) AS items").
		Joins("JOIN order_items oi ON oi.order_id = o.order_id").
		Where("o.order_date >= ?", since).
		Group("o.order_id, o.order_date").
		Order("o.order_date DESC").
		Scan(&out).Error
	return out, store.Wrap("select sales", err)
}

func orderItems(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
