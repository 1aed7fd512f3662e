package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/techstore-api/internal/application/dto"
	"github.com/jhoicas/techstore-api/internal/domain"
	"github.com/jhoicas/techstore-api/internal/domain/entity"
	"github.com/jhoicas/techstore-api/internal/domain/repository"
)

// ProductUseCase casos de uso de catálogo: consultas, CRUD y la regla de
// reducción de stock. Las escrituras con precondición van por TxRunner.
type ProductUseCase struct {
	repo     repository.ProductRepository
	catRepo  repository.CategoryRepository
	provRepo repository.ProviderRepository
	txRunner TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, catRepo repository.CategoryRepository, provRepo repository.ProviderRepository, txRunner TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, catRepo: catRepo, provRepo: provRepo, txRunner: txRunner}
}

// --- Lectura ---

// List lista productos con paginación, en orden estable por id.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(list, limit, offset), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// SearchByName busca por substring del nombre, case-insensitive, paginado.
func (uc *ProductUseCase) SearchByName(ctx context.Context, query string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.SearchByName(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(list, limit, offset), nil
}

// Filter combina los criterios presentes (nombre, rango de precio, categoría) con AND.
func (uc *ProductUseCase) Filter(ctx context.Context, in dto.ProductFilterRequest) (*dto.ProductListResponse, error) {
	in.DefaultPage()
	list, err := uc.repo.Filter(ctx, repository.ProductFilter{
		Name:     in.Name,
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
		Category: in.Category,
		Limit:    in.Limit,
		Offset:   in.Offset,
	})
	if err != nil {
		return nil, err
	}
	return toProductListResponse(list, in.Limit, in.Offset), nil
}

// LowStock lista productos con stock por debajo del límite (alerta, sin paginación).
func (uc *ProductUseCase) LowStock(ctx context.Context, stockLimit int) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListLowStock(ctx, stockLimit)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ByMinPrice lista productos con precio mayor o igual al mínimo.
func (uc *ProductUseCase) ByMinPrice(ctx context.Context, minPrice decimal.Decimal) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByMinPrice(ctx, minPrice)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// QuickSearch busca el término en nombre o descripción.
func (uc *ProductUseCase) QuickSearch(ctx context.Context, term string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.SearchByTerm(ctx, term)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// --- Escritura ---

// Create crea un producto. La categoría y el proveedor referenciados deben
// existir; si falta alguno la operación falla rápido con ErrNotFound.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	category, err := uc.getCategoryOrFail(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	provider, err := uc.getProviderOrFail(ctx, in.ProviderID)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Stock:        *in.Stock,
		CategoryID:   category.ID,
		ProviderID:   provider.ID,
		CategoryName: category.Name,
		ProviderName: provider.Name,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update sobrescribe los campos mutables. Las referencias a categoría y
// proveedor solo se re-resuelven si el id enviado difiere del actual.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Stock = *in.Stock

	if product.CategoryID != in.CategoryID {
		category, err := uc.getCategoryOrFail(ctx, in.CategoryID)
		if err != nil {
			return nil, err
		}
		product.CategoryID = category.ID
		product.CategoryName = category.Name
	}
	if product.ProviderID != in.ProviderID {
		provider, err := uc.getProviderOrFail(ctx, in.ProviderID)
		if err != nil {
			return nil, err
		}
		product.ProviderID = provider.ID
		product.ProviderName = provider.Name
	}

	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	return uc.repo.Delete(ctx, id)
}

// ReduceStock descuenta stock dentro de una transacción con la fila bloqueada,
// de modo que dos descuentos concurrentes sobre el mismo producto no puedan
// pasar ambos la comprobación con un valor obsoleto. Si la cantidad supera el
// stock disponible retorna StockInsufficientError sin modificar nada.
func (uc *ProductUseCase) ReduceStock(ctx context.Context, id int64, quantity int) (*dto.ProductResponse, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(products repository.ProductRepository, _ repository.CategoryRepository) error {
		product, err := products.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
		}
		if product.Stock < quantity {
			return &domain.StockInsufficientError{
				ProductID: id,
				Available: product.Stock,
				Requested: quantity,
			}
		}
		product.Stock -= quantity
		updatedAt, err := products.UpdateStock(ctx, id, product.Stock)
		if err != nil {
			return err
		}
		product.UpdatedAt = updatedAt
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// --- Auxiliares ---

func (uc *ProductUseCase) getCategoryOrFail(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := uc.catRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("categoría %d: %w", id, domain.ErrNotFound)
	}
	return category, nil
}

func (uc *ProductUseCase) getProviderOrFail(ctx context.Context, id int64) (*entity.Provider, error) {
	provider, err := uc.provRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fmt.Errorf("proveedor %d: %w", id, domain.ErrNotFound)
	}
	return provider, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Stock:        p.Stock,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		ProviderID:   p.ProviderID,
		ProviderName: p.ProviderName,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}

func toProductListResponse(list []*entity.Product, limit, offset int) *dto.ProductListResponse {
	return &dto.ProductListResponse{
		Items: toProductResponses(list),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
