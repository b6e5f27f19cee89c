package repository

import (
	"restaurant-orders-api/models"
	"restaurant-orders-api/store"

	"gorm.io/gorm"
)

type FeedbackRepository struct{}

func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{}
}

func (r *FeedbackRepository) Create(db *gorm.DB, f *models.Feedback) error {
	return store.Wrap("insert feedback", db.Create(f).Error)
}

func (r *FeedbackRepository) ListForDish(db *gorm.DB, dishID int64) ([]models.Feedback, error) {
	var out []models.Feedback
	err := db.Where("dish_id = ?", dishID).Order("feedback_id").Find(&out).Error
	return out, store.Wrap("select feedback", err)
}
