package services

import (
	"context"
	"testing"

	"restaurant-orders-api/models"
	"restaurant-orders-api/repository"
	"restaurant-orders-api/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryService(t *testing.T) *CategoryService {
	t.Helper()
	return NewCategoryService(testutil.NewStore(t), repository.NewCategoryRepository())
}

func TestCategoryList_Seeded(t *testing.T) {
	svc := newCategoryService(t)

	cats, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, len(models.DefaultCategories))
	assert.Equal(t, "Appetizer", cats[0].Name)
	assert.Equal(t, "Desserts", cats[len(cats)-1].Name)
}

func TestCategoryList_EmptyIsNotFound(t *testing.T) {
	svc := newCategoryService(t)
	ctx := context.Background()

	_, err := svc.Store.Exec(ctx, "DELETE FROM categories")
	require.NoError(t, err)

	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryCreate_CaseSensitiveUniqueness(t *testing.T) {
	svc := newCategoryService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Dal")
	assert.ErrorIs(t, err, ErrValidation)

	c, err := svc.Create(ctx, "dal")
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.Equal(t, "dal", c.Name)

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "dal", got.Name)
}

func TestCategoryCreate_Blank(t *testing.T) {
	svc := newCategoryService(t)
	_, err := svc.Create(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCategoryCreate_NamesAreStoredAsGiven(t *testing.T) {
	svc := newCategoryService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, "Desserts ")
	require.NoError(t, err)
	assert.Equal(t, "Desserts ", c.Name)

	_, err = svc.Create(ctx, "Desserts ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCategoryUpdate(t *testing.T) {
	svc := newCategoryService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, "Soups")
	require.NoError(t, err)

	_, err = svc.Update(ctx, c.ID, "Breads")
	assert.ErrorIs(t, err, ErrValidation)

	// renaming to its own name is not a duplicate
	same, err := svc.Update(ctx, c.ID, "Soups")
	require.NoError(t, err)
	assert.Equal(t, "Soups", same.Name)

	renamed, err := svc.Update(ctx, c.ID, "Rasam")
	require.NoError(t, err)
	assert.Equal(t, c.ID, renamed.ID)
	assert.Equal(t, "Rasam", renamed.Name)

	_, err = svc.Update(ctx, 9999, "Whatever")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryDelete(t *testing.T) {
	svc := newCategoryService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, "Chaat")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, c.ID))

	_, err = svc.Get(ctx, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, c.ID), ErrNotFound)
}
