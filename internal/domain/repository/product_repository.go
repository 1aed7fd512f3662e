package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/techstore-api/internal/domain/entity"
)

// ProductFilter criterios opcionales de filtrado. Un criterio en cero no
// impone restricción; los presentes se combinan con AND.
type ProductFilter struct {
	Name     string           // substring, case-insensitive
	MinPrice *decimal.Decimal // inclusivo
	MaxPrice *decimal.Decimal // inclusivo
	Category string           // nombre exacto, case-insensitive
	Limit    int
	Offset   int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	CreateBulk(ctx context.Context, products []*entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila hasta el fin de la transacción.
	// Solo tiene sentido dentro de un TxRunner.
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	SearchByName(ctx context.Context, name string, limit, offset int) ([]*entity.Product, error)
	Filter(ctx context.Context, f ProductFilter) ([]*entity.Product, error)
	ListLowStock(ctx context.Context, stockLimit int) ([]*entity.Product, error)
	ListByMinPrice(ctx context.Context, minPrice decimal.Decimal) ([]*entity.Product, error)
	SearchByTerm(ctx context.Context, term string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateStock escribe el nuevo stock y devuelve el updated_at resultante.
	UpdateStock(ctx context.Context, id int64, stock int) (time.Time, error)
	Delete(ctx context.Context, id int64) error
	DeleteByCategory(ctx context.Context, categoryID int64) (int64, error)
}
