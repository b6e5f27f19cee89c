package handlers

import (
	"net/http"

	"restaurant-orders-api/models"
	"restaurant-orders-api/services"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	Feedback *services.FeedbackService
}

func NewFeedbackHandler(feedback *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{Feedback: feedback}
}

type FeedbackRequest struct {
	UserID   int64  `json:"user_id" binding:"required"`
	OrderID  int64  `json:"order_id" binding:"required"`
	DishID   int64  `json:"dish_id" binding:"required"`
	Comments string `json:"comments"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
}

// Submit records feedback for a dish on an existing order
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	fb := models.Feedback{
		UserID:   req.UserID,
		OrderID:  req.OrderID,
		DishID:   req.DishID,
		Comments: req.Comments,
		Rating:   req.Rating,
	}
	if err := h.Feedback.Submit(c.Request.Context(), &fb); err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback submitted successfully"})
}

// ListForDish returns every feedback entry left for a dish
func (h *FeedbackHandler) ListForDish(c *gin.Context) {
	dishID, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.Feedback.ListForDish(c.Request.Context(), dishID)
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, list)
}
