package repository

import (
	"errors"

	"restaurant-orders-api/models"
	"restaurant-orders-api/store"

	"gorm.io/gorm"
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) List(db *gorm.DB) ([]models.Category, error) {
	var out []models.Category
	err := db.Order("category_id").Find(&out).Error
	return out, store.Wrap("select categories", err)
}

func (r *CategoryRepository) Find(db *gorm.DB, id int64) (*models.Category, bool, error) {
	var c models.Category
	err := db.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, store.Wrap("select category", err)
	}
	return &c, true, nil
}

// NameTaken reports whether another category already uses name. Comparison is
// case-sensitive; exceptID excludes the row being renamed.
func (r *CategoryRepository) NameTaken(db *gorm.DB, name string, exceptID int64) (bool, error) {
	var count int64
	err := db.Model(&models.Category{}).
		Where("name = ? AND category_id <> ?", name, exceptID).
		Count(&count).Error
	return count > 0, store.Wrap("select category name", err)
}

func (r *CategoryRepository) Create(db *gorm.DB, c *models.Category) error {
	return store.Wrap("insert category", db.Create(c).Error)
}

func (r *CategoryRepository) Rename(db *gorm.DB, id int64, name string) error {
	err := db.Model(&models.Category{}).Where("category_id = ?", id).Update("name", name).Error
	return store.Wrap("update category", err)
}

func (r *CategoryRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	res := db.Delete(&models.Category{}, id)
	return res.RowsAffected, store.Wrap("delete category", res.Error)
}
