package services

import (
	"context"
	"strings"

	"restaurant-orders-api/models"
	"restaurant-orders-api/repository"
	"restaurant-orders-api/store"

	"gorm.io/gorm"
)

type CategoryService struct {
	Store *store.Store
	Repo  *repository.CategoryRepository
}

func NewCategoryService(s *store.Store, repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Store: s, Repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	out, err := s.Repo.List(s.Store.DB(ctx))
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, newError(ErrNotFound, "no categories found")
	}
	return out, nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	c, found, err := s.Repo.Find(s.Store.DB(ctx), id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, newError(ErrNotFound, "category not found")
	}
	return c, nil
}

// Create adds a category. Names are stored as given and are unique
// case-sensitively; whitespace-only names are rejected.
func (s *CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, newError(ErrValidation, "category name must not be blank")
	}

	c := models.Category{Name: name}
	err := s.Store.Transaction(ctx, func(tx *gorm.DB) error {
		taken, err := s.Repo.NameTaken(tx, name, 0)
		if err != nil {
			return err
		}
		if taken {
			return newError(ErrValidation, "category already exists")
		}
		return s.Repo.Create(tx, &c)
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, name string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, newError(ErrValidation, "category name must not be blank")
	}

	var out *models.Category
	err := s.Store.Transaction(ctx, func(tx *gorm.DB) error {
		c, found, err := s.Repo.Find(tx, id)
		if err != nil {
			return err
		}
		if !found {
			return newError(ErrNotFound, "category not found")
		}
		taken, err := s.Repo.NameTaken(tx, name, id)
		if err != nil {
			return err
		}
		if taken {
			return newError(ErrValidation, "category name already exists")
		}
		if err := s.Repo.Rename(tx, id, name); err != nil {
			return err
		}
		c.Name = name
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	n, err := s.Repo.Delete(s.Store.DB(ctx), id)
	if err != nil {
		return err
	}
	if n == 0 {
		return newError(ErrNotFound, "category not found")
	}
	return nil
}
