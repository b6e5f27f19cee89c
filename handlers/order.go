package handlers

import (
	"net/http"

	"restaurant-orders-api/middleware"
	"restaurant-orders-api/models"
	"restaurant-orders-api/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	Orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{Orders: orders}
}

type OrderItemRequest struct {
	DishID   int64 `json:"dish_id"`
	Quantity int   `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	UserID *int64             `json:"user_id"`
	Items  []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Note   string             `json:"note"`
}

// CreateOrder books an order, provisioning a user when user_id is absent
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	items := make([]services.OrderItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = services.OrderItemInput{DishID: it.DishID, Quantity: it.Quantity}
	}

	order, err := h.Orders.CreateOrder(c.Request.Context(), req.UserID, items)
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetUserOrders lists a user's orders; none at all is a 404
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	orders, err := h.Orders.GetOrdersByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetAllOrders lists every order with its items
func (h *OrderHandler) GetAllOrders(c *gin.Context) {
	orders, err := h.Orders.GetAllOrders(c.Request.Context())
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder returns one order with its status history
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.Orders.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus overwrites an order's status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	order, err := h.Orders.UpdateOrderStatus(c.Request.Context(), orderID, req.Status, middleware.GetUsername(c), req.Note)
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder removes an order and its items
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Orders.DeleteOrder(c.Request.Context(), orderID); err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.Status(http.StatusNoContent)
}
