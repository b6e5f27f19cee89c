package models

import "time"

// OrderStatus is the label stored on an order. The statemachine package knows
// the named ones; in permissive mode any non-blank label is allowed.
type OrderStatus string

const (
	StatusBooked         OrderStatus = "Booked Successfully"
	StatusPreparing      OrderStatus = "Preparing"
	StatusReady          OrderStatus = "Ready"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

type Order struct {
	ID            int64                `json:"order_id" gorm:"column:order_id;primaryKey;autoIncrement"`
	UserID        int64                `json:"user_id" gorm:"not null;index"`
	Status        OrderStatus          `json:"status" gorm:"not null"`
	OrderDate     time.Time            `json:"order_date" gorm:"not null;index"`
	Items         []OrderItem          `json:"items" gorm:"foreignKey:OrderID;references:ID"`
	StatusHistory []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID;references:ID"`
}

// OrderItem is one (dish, quantity) line of an order. Dishes live in an
// external catalogue, so DishID is a bare reference.
type OrderItem struct {
	ID       int64     `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID  int64     `json:"-" gorm:"not null;index"`
	DishID   int64     `json:"dish_id" gorm:"not null;index"`
	Quantity int       `json:"quantity" gorm:"not null"`
	AddedAt  time.Time `json:"-" gorm:"not null"`
}

// OrderStatusHistory tracks every status change of an order.
type OrderStatusHistory struct {
	ID         int64       `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID    int64       `json:"order_id" gorm:"not null;index"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  string      `json:"changed_by"`
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}

func (OrderStatusHistory) TableName() string { return "order_status_history" }
