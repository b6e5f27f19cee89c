package store

import (
	"context"
	"log"

	"restaurant-orders-api/models"

	"gorm.io/gorm"
)

// InitSchema creates any missing table and seeds the category list the first
// time it finds it empty. It is safe to call on every start.
func (s *Store) InitSchema(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.Category{},
		&models.Feedback{},
	)
	if err != nil {
		return Wrap("migrate", err)
	}

	return s.Transaction(ctx, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).Count(&count).Error; err != nil {
			return Wrap("count categories", err)
		}
		if count > 0 {
			return nil
		}
		seed := make([]models.Category, 0, len(models.DefaultCategories))
		for _, name := range models.DefaultCategories {
			seed = append(seed, models.Category{Name: name})
		}
		if err := tx.Create(&seed).Error; err != nil {
			return Wrap("seed categories", err)
		}
		log.Printf("seeded %d categories", len(seed))
		return nil
	})
}
