package services

import (
	"context"

	"restaurant-orders-api/models"
	"restaurant-orders-api/repository"
	"restaurant-orders-api/store"

	"gorm.io/gorm"
)

type FeedbackService struct {
	Store  *store.Store
	Repo   *repository.FeedbackRepository
	Orders *repository.OrderRepository
}

func NewFeedbackService(s *store.Store, repo *repository.FeedbackRepository, orders *repository.OrderRepository) *FeedbackService {
	return &FeedbackService{Store: s, Repo: repo, Orders: orders}
}

// Submit stores feedback for a dish of an existing order.
func (s *FeedbackService) Submit(ctx context.Context, fb *models.Feedback) error {
	return s.Store.Transaction(ctx, func(tx *gorm.DB) error {
		_, found, err := s.Orders.FindOrder(tx, fb.OrderID)
		if err != nil {
			return err
		}
		if !found {
			return newError(ErrNotFound, "order not found")
		}
		return s.Repo.Create(tx, fb)
	})
}

func (s *FeedbackService) ListForDish(ctx context.Context, dishID int64) ([]models.Feedback, error) {
	out, err := s.Repo.ListForDish(s.Store.DB(ctx), dishID)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, newError(ErrNotFound, "no feedback found for this dish")
	}
	return out, nil
}
