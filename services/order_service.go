package services

import (
	"context"
	"strings"
	"time"

	"restaurant-orders-api/models"
	"restaurant-orders-api/repository"
	"restaurant-orders-api/statemachine"
	"restaurant-orders-api/store"

	"gorm.io/gorm"
)

// OrderService manages the order lifecycle: creation with implicit user
// provisioning, status changes and cascading deletion.
type OrderService struct {
	Store  *store.Store
	Repo   *repository.OrderRepository
	Policy statemachine.Policy
	Now    func() time.Time
}

func NewOrderService(s *store.Store, repo *repository.OrderRepository, policy statemachine.Policy) *OrderService {
	return &OrderService{
		Store:  s,
		Repo:   repo,
		Policy: policy,
		Now:    func() time.Time { return time.Now().UTC() },
	}
}

type OrderItemInput struct {
	DishID   int64
	Quantity int
}

// CreateOrder books a new order. A nil or zero userID provisions a placeholder
// user first. Every insert of the call shares one transaction.
func (s *OrderService) CreateOrder(ctx context.Context, userID *int64, items []OrderItemInput) (*models.Order, error) {
	now := s.Now()
	var order models.Order

	err := s.Store.Transaction(ctx, func(tx *gorm.DB) error {
		uid := int64(0)
		if userID != nil {
			uid = *userID
		}
		if uid == 0 {
			user := models.User{Name: models.PlaceholderUserName}
			if err := s.Repo.CreateUser(tx, &user); err != nil {
				return err
			}
			uid = user.ID
		}

		order = models.Order{
			UserID:    uid,
			Status:    models.StatusBooked,
			OrderDate: now,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		order.Items = make([]models.OrderItem, 0, len(items))
		for _, it := range items {
			oi := models.OrderItem{
				OrderID:  order.ID,
				DishID:   it.DishID,
				Quantity: it.Quantity,
				AddedAt:  now,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}

		return s.Repo.CreateStatusHistory(tx, &models.OrderStatusHistory{
			OrderID:  order.ID,
			ToStatus: models.StatusBooked,
			Note:     "Order booked",
		})
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrdersByUser lists a user's orders. A user with no orders is reported as
// ErrNotFound rather than an empty list.
func (s *OrderService) GetOrdersByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	orders, err := s.Repo.ListOrders(s.Store.DB(ctx), userID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, newError(ErrNotFound, "no orders found for user")
	}
	return orders, nil
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.Repo.ListOrders(s.Store.DB(ctx), 0)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, newError(ErrNotFound, "no orders found")
	}
	return orders, nil
}

// GetOrder returns one order with its items and status history.
func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	o, found, err := s.Repo.GetOrderDetail(s.Store.DB(ctx), orderID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, newError(ErrNotFound, "order not found")
	}
	return o, nil
}

// UpdateOrderStatus overwrites the order's status and records the change.
// changedBy and note only feed the history row.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus, changedBy, note string) (*models.Order, error) {
	status = models.OrderStatus(strings.TrimSpace(string(status)))
	if status == "" {
		return nil, newError(ErrValidation, "status must not be blank")
	}

	var updated *models.Order
	err := s.Store.Transaction(ctx, func(tx *gorm.DB) error {
		current, found, err := s.Repo.FindOrder(tx, orderID)
		if err != nil {
			return err
		}
		if !found {
			return newError(ErrNotFound, "order not found")
		}
		if err := s.Policy.Check(current.Status, status); err != nil {
			return newError(ErrInvalidTransition, "%v", err)
		}

		if _, err := s.Repo.UpdateStatus(tx, orderID, status); err != nil {
			return err
		}
		if err := s.Repo.CreateStatusHistory(tx, &models.OrderStatusHistory{
			OrderID:    orderID,
			FromStatus: current.Status,
			ToStatus:   status,
			ChangedBy:  changedBy,
			Note:       note,
		}); err != nil {
			return err
		}

		updated, _, err = s.Repo.GetOrderWithItems(tx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteOrder removes an order together with its items and history.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID int64) error {
	return s.Store.Transaction(ctx, func(tx *gorm.DB) error {
		_, found, err := s.Repo.FindOrder(tx, orderID)
		if err != nil {
			return err
		}
		if !found {
			return newError(ErrNotFound, "order not found")
		}
		n, err := s.Repo.DeleteOrder(tx, orderID)
		if err != nil {
			return err
		}
		if n == 0 {
			return newError(ErrNotFound, "order not found")
		}
		return nil
	})
}
