package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/student-store/backend/internal/domain/catalog"
	"github.com/student-store/backend/internal/domain/shared"
)

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newTestProduct(t *testing.T, name, category string, price string) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, "", decimal.RequireFromString(price), "", category)
	require.NoError(t, err)
	return product
}

func TestProductServiceList(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all products with empty query", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		products := []catalog.Product{
			*newTestProduct(t, "Latte", "beverages", "4.50"),
			*newTestProduct(t, "Bagel", "food", "2.50"),
		}
		repo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
			_, hasCategory := f.Filters["category"]
			return !hasCategory && f.OrderBy == ""
		})).Return(products, nil)

		result, err := service.List(ctx, ListProductsQuery{})
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "Latte", result[0].Name)
		repo.AssertExpectations(t)
	})

	t.Run("passes category and sort to the filter", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		repo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Filters["category"] == "Food" && f.OrderBy == "price" && f.OrderDir == "asc"
		})).Return([]catalog.Product{}, nil)

		_, err := service.List(ctx, ListProductsQuery{Category: "Food", Sort: "price"})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("ignores unknown sort keys", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		repo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
			return f.OrderBy == ""
		})).Return([]catalog.Product{}, nil)

		_, err := service.List(ctx, ListProductsQuery{Sort: "description"})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestProductServiceGet(t *testing.T) {
	ctx := context.Background()

	t.Run("returns product by ID", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		product := newTestProduct(t, "Latte", "beverages", "4.50")
		repo.On("FindByID", ctx, product.ID).Return(product, nil)

		result, err := service.Get(ctx, product.ID)
		assert.NoError(t, err)
		assert.Equal(t, product.ID, result.ID)
		assert.True(t, decimal.RequireFromString("4.50").Equal(result.Price))
		repo.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Get(ctx, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestProductServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and saves a product", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		result, err := service.Create(ctx, CreateProductRequest{
			Name:     "Latte",
			Price:    decimal.RequireFromString("4.50"),
			Category: "beverages",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Latte", result.Name)
		assert.NotEqual(t, uuid.Nil, result.ID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid input before saving", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		_, err := service.Create(ctx, CreateProductRequest{
			Name:     "Latte",
			Price:    decimal.NewFromInt(-1),
			Category: "beverages",
		})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(errors.New("db down"))

		_, err := service.Create(ctx, CreateProductRequest{
			Name:     "Latte",
			Price:    decimal.NewFromInt(4),
			Category: "beverages",
		})
		assert.Error(t, err)
	})
}

func TestProductServiceUpdate(t *testing.T) {
	ctx := context.Background()
	strPtr := func(s string) *string { return &s }

	t.Run("applies partial update", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		product := newTestProduct(t, "Latte", "beverages", "4.50")
		repo.On("FindByID", ctx, product.ID).Return(product, nil)
		repo.On("Save", ctx, product).Return(nil)

		newPrice := decimal.RequireFromString("5.00")
		result, err := service.Update(ctx, product.ID, UpdateProductRequest{
			Name:  strPtr("Iced Latte"),
			Price: &newPrice,
		})
		assert.NoError(t, err)
		assert.Equal(t, "Iced Latte", result.Name)
		assert.True(t, newPrice.Equal(result.Price))
		assert.Equal(t, "beverages", result.Category)
		repo.AssertExpectations(t)
	})

	t.Run("returns not found for missing product", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(ctx, id, UpdateProductRequest{Name: strPtr("x")})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestProductServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes existing product", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		product := newTestProduct(t, "Latte", "beverages", "4.50")
		repo.On("FindByID", ctx, product.ID).Return(product, nil)
		repo.On("Delete", ctx, product.ID).Return(nil)

		assert.NoError(t, service.Delete(ctx, product.ID))
		repo.AssertExpectations(t)
	})

	t.Run("returns not found for missing product", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		err := service.Delete(ctx, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		repo.AssertNotCalled(t, "Delete")
	})
}
