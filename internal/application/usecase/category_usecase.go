package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/techstore-api/internal/application/dto"
	"github.com/jhoicas/techstore-api/internal/domain"
	"github.com/jhoicas/techstore-api/internal/domain/entity"
	"github.com/jhoicas/techstore-api/internal/domain/repository"
	"github.com/jhoicas/techstore-api/pkg/logger"
)

// CategoryUseCase CRUD de categorías. El borrado arrastra los productos de la
// categoría dentro de una sola transacción (cascada explícita).
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	txRunner TxRunner
	log      *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, txRunner TxRunner, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, txRunner: txRunner, log: log}
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// GetByID obtiene una categoría. Devuelve (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// Create crea una categoría. Nombre duplicado devuelve ErrDuplicate.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category := &entity.Category{Name: in.Name}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update renombra una categoría existente.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("categoría %d: %w", id, domain.ErrNotFound)
	}
	category.Name = in.Name
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina la categoría y sus productos en una sola transacción.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("categoría %d: %w", id, domain.ErrNotFound)
	}
	return uc.txRunner.Run(ctx, func(products repository.ProductRepository, categories repository.CategoryRepository) error {
		removed, err := products.DeleteByCategory(ctx, id)
		if err != nil {
			return err
		}
		if err := categories.Delete(ctx, id); err != nil {
			return err
		}
		uc.log.Info().Int64("category_id", id).Int64("products_removed", removed).Msg("categoría eliminada en cascada")
		return nil
	})
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
