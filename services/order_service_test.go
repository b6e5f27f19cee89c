package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant-orders-api/models"
	"restaurant-orders-api/repository"
	"restaurant-orders-api/statemachine"
	"restaurant-orders-api/store"
	"restaurant-orders-api/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(t *testing.T) (*OrderService, *store.Store) {
	t.Helper()
	s := testutil.NewStore(t)
	return NewOrderService(s, repository.NewOrderRepository(), statemachine.Policy{}), s
}

func countRows(t *testing.T, s *store.Store, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.DB(context.Background()).Model(model).Count(&n).Error)
	return n
}

func TestCreateOrder_ProvisionsPlaceholderUser(t *testing.T) {
	svc, s := newOrderService(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, nil, []OrderItemInput{{DishID: 7, Quantity: 2}})
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.NotZero(t, order.UserID)
	assert.Equal(t, models.StatusBooked, order.Status)
	assert.False(t, order.OrderDate.IsZero())

	var user models.User
	require.NoError(t, s.DB(ctx).First(&user, order.UserID).Error)
	assert.Equal(t, models.PlaceholderUserName, user.Name)
}

func TestCreateOrder_ZeroUserIDIsTreatedAsAbsent(t *testing.T) {
	svc, s := newOrderService(t)
	zero := int64(0)

	order, err := svc.CreateOrder(context.Background(), &zero, []OrderItemInput{{DishID: 1, Quantity: 1}})
	require.NoError(t, err)
	assert.NotZero(t, order.UserID)
	assert.Equal(t, int64(1), countRows(t, s, &models.User{}))
}

func TestCreateOrder_ReusesExistingUser(t *testing.T) {
	svc, s := newOrderService(t)
	ctx := context.Background()

	first, err := svc.CreateOrder(ctx, nil, []OrderItemInput{{DishID: 1, Quantity: 1}})
	require.NoError(t, err)

	uid := first.UserID
	second, err := svc.CreateOrder(ctx, &uid, []OrderItemInput{{DishID: 2, Quantity: 3}})
	require.NoError(t, err)
	assert.Equal(t, uid, second.UserID)
	assert.Equal(t, int64(1), countRows(t, s, &models.User{}))
}

func TestCreateOrder_UnknownUserFailsWithStorageError(t *testing.T) {
	svc, s := newOrderService(t)
	ghost := int64(4242)

	_, err := svc.CreateOrder(context.Background(), &ghost, []OrderItemInput{{DishID: 1, Quantity: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrStorage)
	assert.Zero(t, countRows(t, s, &models.Order{}))
}

func TestCreateOrder_ThenGetAllOrdersEchoesItems(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()
	items := []OrderItemInput{{DishID: 11, Quantity: 1}, {DishID: 12, Quantity: 4}, {DishID: 11, Quantity: 2}}

	created, err := svc.CreateOrder(ctx, nil, items)
	require.NoError(t, err)

	all, err := svc.GetAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
	require.Len(t, all[0].Items, len(items))
	for i, it := range items {
		assert.Equal(t, it.DishID, all[0].Items[i].DishID)
		assert.Equal(t, it.Quantity, all[0].Items[i].Quantity)
	}
}

func TestCreateOrder_ItemFailureRollsBackEverything(t *testing.T) {
	svc, s := newOrderService(t)
	ctx := context.Background()

	cb := s.DB(ctx).Callback().Create()
	require.NoError(t, cb.Before("gorm:create").Register("test:fail_items", func(db *gorm.DB) {
		if db.Statement.Table == "order_items" {
			_ = db.AddError(errors.New("disk full"))
		}
	}))
	t.Cleanup(func() { _ = cb.Remove("test:fail_items") })

	_, err := svc.CreateOrder(ctx, nil, []OrderItemInput{{DishID: 1, Quantity: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrStorage)
	assert.ErrorContains(t, err, "disk full")

	assert.Zero(t, countRows(t, s, &models.User{}))
	assert.Zero(t, countRows(t, s, &models.Order{}))
	assert.Zero(t, countRows(t, s, &models.OrderItem{}))
	assert.Zero(t, countRows(t, s, &models.OrderStatusHistory{}))
}

func TestGetOrdersByUser(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	a, err := svc.CreateOrder(ctx, nil, []OrderItemInput{{DishID: 1, Quantity: 1}})
	require.NoError(t, err)
	uid := a.UserID
	b, err := svc.CreateOrder(ctx, &uid, []OrderItemInput{{DishID: 2, Quantity: 2}})
	require.NoError(t, err)
	_, err = svc.CreateOrder(ctx, nil, []OrderItemInput{{DishID: 3, Quantity: 3}})
	require.NoError(t, err)

	orders, err := svc.GetOrdersByUser(ctx, uid)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, a.ID, orders[0].ID)
	assert.Equal(t, b.ID, orders[1].ID)
	assert.Len(t, orders[1].Items, 1)
}

func TestGetOrdersByUser_NoOrdersIsNotFound(t *testing.T) {
	svc, s := newOrderService(t)
	ctx := context.Background()

	user := models.User{Name: "Lonely"}
	require.NoError(t, s.DB(ctx).Create(&user).Error)

	orders, err := svc.GetOrdersByUser(ctx, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, orders)

	_, err = svc.GetOrdersByUser(ctx, 99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAllOrders_EmptyIsNotFound(t *testing.T) {
	svc, _ := newOrderService(t)
	_, err := svc.GetAllOrders(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetOrder_IncludesHistory(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	o, err := svc.CreateOrder(ctx, nil, []OrderItemInput{{DishID: 5, Quantity: 1}})
	require.NoError(t, err)
	_, err = svc.UpdateOrderStatus(ctx, o.ID, models.StatusPreparing, "chef", "on the stove")
	require.NoError(t, err)

	got, err := svc.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.StatusHistory, 2)
	assert.Equal(t, models.StatusBooked, got.StatusHistory[0].ToStatus)
	assert.Equal(t, models.StatusBooked, got.StatusHistory[1].FromStatus)
	assert.Equal(t, models.StatusPreparing, got.StatusHistory[1].ToStatus)
	assert.Equal(t, "chef", got.StatusHistory[1].ChangedBy)

	_, err = svc.GetOrder(ctx, o.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateOrderStatus(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	o, err := svc.CreateOrder(ctx, nil, []OrderItemInput{{DishID: 9, Quantity: 3}})
	require.NoError(t, err)

	updated, err := svc.UpdateOrderStatus(ctx, o.ID, "Plated with flair", "", "")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatus("Plated with flair"), updated.Status)

	all, err := svc.GetAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	got := all[0]
	assert.Equal(t, models.OrderStatus("Plated with flair"), got.Status)
	assert.Equal(t, o.UserID, got.UserID)
	assert.True(t, o.OrderDate.Equal(got.OrderDate))
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(9), got.Items[0].DishID)
	assert.Equal(t, 3, got.Items[0].Quantity)
}

func TestUpdateOrderStatus_NotFound(t *testing.T) {
	svc, _ := newOrderService(t)
	_, err := svc.UpdateOrderStatus(context.Background(), 12345, models.StatusPreparing, "", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateOrderStatus_BlankIsValidationError(t *testing.T) {
	svc, _ := newOrderService(t)
	_, err := svc.UpdateOrderStatus(context.Background(), 1, "   ", "", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateOrderStatus_StrictPolicy(t *testing.T) {
	svc, _ := newOrderService(t)
	svc.Policy = statemachine.Policy{Strict: true}
	ctx := context.Background()

	o, err := svc.CreateOrder(ctx, nil, []OrderItemInput{{DishID: 1, Quantity: 1}})
	require.NoError(t, err)

	_, err = svc.UpdateOrderStatus(ctx, o.ID, models.StatusDelivered, "", "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	for _, next := range []models.OrderStatus{models.StatusPreparing, models.StatusReady, models.StatusDelivered} {
		_, err = svc.UpdateOrderStatus(ctx, o.ID, next, "", "")
		require.NoError(t, err, next)
	}

	_, err = svc.UpdateOrderStatus(ctx, o.ID, models.StatusPreparing, "", "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, err := svc.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, got.Status)
}

func TestDeleteOrder_RemovesOrderItemsAndHistory(t *testing.T) {
	svc, s := newOrderService(t)
	ctx := context.Background()

	keep, err := svc.CreateOrder(ctx, nil, []OrderItemInput{{DishID: 1, Quantity: 1}})
	require.NoError(t, err)
	gone, err := svc.CreateOrder(ctx, nil, []OrderItemInput{{DishID: 2, Quantity: 2}, {DishID: 3, Quantity: 1}})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(ctx, gone.ID))

	var leftover int64
	require.NoError(t, s.DB(ctx).Model(&models.OrderItem{}).Where("order_id = ?", gone.ID).Count(&leftover).Error)
	assert.Zero(t, leftover)
	require.NoError(t, s.DB(ctx).Model(&models.OrderStatusHistory{}).Where("order_id = ?", gone.ID).Count(&leftover).Error)
	assert.Zero(t, leftover)

	all, err := svc.GetAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ID)

	_, err = svc.GetOrdersByUser(ctx, gone.UserID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOrder_NotFound(t *testing.T) {
	svc, _ := newOrderService(t)
	assert.ErrorIs(t, svc.DeleteOrder(context.Background(), 77), ErrNotFound)
}

func TestDeleteOrder_TwiceReportsNotFound(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	o, err := svc.CreateOrder(ctx, nil, []OrderItemInput{{DishID: 1, Quantity: 1}})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteOrder(ctx, o.ID))
	assert.ErrorIs(t, svc.DeleteOrder(ctx, o.ID), ErrNotFound)
}

func TestCreateOrder_UsesServiceClock(t *testing.T) {
	svc, _ := newOrderService(t)
	at := time.Date(2024, 3, 9, 18, 30, 0, 0, time.UTC)
	svc.Now = testutil.NewClock(at).Now

	o, err := svc.CreateOrder(context.Background(), nil, []OrderItemInput{{DishID: 1, Quantity: 1}})
	require.NoError(t, err)
	assert.Equal(t, at, o.OrderDate)

	got, err := svc.GetOrder(context.Background(), o.ID)
	require.NoError(t, err)
	assert.True(t, at.Equal(got.OrderDate))
}
