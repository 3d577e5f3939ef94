package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teodity/internal/domain/entity"
)

func TestProductRepositoryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewJSONProductRepository(dir)
	require.NoError(t, err)

	product := &entity.Product{
		Name:   "Vinyl player",
		Price:  250,
		Type:   entity.TypeAuction,
		Seller: 1,
		Images: []string{entity.PlaceholderImage},
		Offers: []entity.Offer{{BuyerID: 2, Amount: 300, Timestamp: "01/08/2026 10:00"}},
		Status: entity.StatusProcessing,
	}
	require.NoError(t, repo.Create(ctx, product))
	require.NotZero(t, product.ID)

	// a fresh repository instance reads the same state back from disk
	reopened, err := NewJSONProductRepository(dir)
	require.NoError(t, err)

	loaded, err := reopened.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.Name, loaded.Name)
	assert.Equal(t, product.Offers, loaded.Offers)
	assert.Equal(t, entity.StatusProcessing, loaded.Status)
}

func TestProductRepositoryIDAssignment(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewJSONProductRepository(dir)
	require.NoError(t, err)

	first := &entity.Product{Name: "First", Price: 1, Type: entity.TypeFixed, Status: entity.StatusStarted}
	second := &entity.Product{Name: "Second", Price: 1, Type: entity.TypeFixed, Status: entity.StatusStarted}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, first.ID+1, second.ID)
}

func TestRepositoryReturnsClones(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewJSONUserRepository(dir)
	require.NoError(t, err)

	user := &entity.User{Username: "mila", Mail: "mila@example.com", Products: []int{}, Reviews: []int{}}
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	got.Username = "tampered"
	got.Products = append(got.Products, 99)

	// mutations on a returned copy never reach the stored record
	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "mila", stored.Username)
	assert.Empty(t, stored.Products)
}

func TestMissingFileLoadsEmpty(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewJSONCategoryRepository(dir)
	require.NoError(t, err)

	categories, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	require.NoError(t, repo.Create(ctx, &entity.Category{Name: "Books"}))

	_, err = os.Stat(filepath.Join(dir, "categories.json"))
	assert.NoError(t, err)
}
