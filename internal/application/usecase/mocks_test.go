package usecase_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/techstore-api/internal/domain/entity"
	"github.com/jhoicas/techstore-api/internal/domain/repository"
)

// Mocks de los puertos de persistencia para aislar los casos de uso.

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, p *entity.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) CreateBulk(ctx context.Context, ps []*entity.Product) error {
	args := m.Called(ctx, ps)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	args := m.Called(ctx, limit, offset)
	list, _ := args.Get(0).([]*entity.Product)
	return list, args.Error(1)
}

func (m *MockProductRepository) SearchByName(ctx context.Context, name string, limit, offset int) ([]*entity.Product, error) {
	args := m.Called(ctx, name, limit, offset)
	list, _ := args.Get(0).([]*entity.Product)
	return list, args.Error(1)
}

func (m *MockProductRepository) Filter(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).([]*entity.Product)
	return list, args.Error(1)
}

func (m *MockProductRepository) ListLowStock(ctx context.Context, stockLimit int) ([]*entity.Product, error) {
	args := m.Called(ctx, stockLimit)
	list, _ := args.Get(0).([]*entity.Product)
	return list, args.Error(1)
}

func (m *MockProductRepository) ListByMinPrice(ctx context.Context, minPrice decimal.Decimal) ([]*entity.Product, error) {
	args := m.Called(ctx, minPrice)
	list, _ := args.Get(0).([]*entity.Product)
	return list, args.Error(1)
}

func (m *MockProductRepository) SearchByTerm(ctx context.Context, term string) ([]*entity.Product, error) {
	args := m.Called(ctx, term)
	list, _ := args.Get(0).([]*entity.Product)
	return list, args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, p *entity.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateStock(ctx context.Context, id int64, stock int) (time.Time, error) {
	args := m.Called(ctx, id, stock)
	ts, _ := args.Get(0).(time.Time)
	return ts, args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteByCategory(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Category)
	return c, args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Category)
	return list, args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) Create(ctx context.Context, p *entity.Provider) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProviderRepository) GetByID(ctx context.Context, id int64) (*entity.Provider, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Provider)
	return p, args.Error(1)
}

func (m *MockProviderRepository) List(ctx context.Context) ([]*entity.Provider, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Provider)
	return list, args.Error(1)
}

func (m *MockProviderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// fakeTxRunner ejecuta el callback directamente con los mocks, sin transacción real.
type fakeTxRunner struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.CategoryRepository) error) error {
	return fn(f.products, f.categories)
}

// fakeRows origen de filas en memoria para probar la importación.
type fakeRows struct {
	rows [][]string
	err  error
}

func (f *fakeRows) Rows() ([][]string, error) {
	return f.rows, f.err
}
