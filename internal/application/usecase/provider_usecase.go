package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/techstore-api/internal/application/dto"
	"github.com/jhoicas/techstore-api/internal/domain"
	"github.com/jhoicas/techstore-api/internal/domain/entity"
	"github.com/jhoicas/techstore-api/internal/domain/repository"
)

// ProviderUseCase CRUD de proveedores.
type ProviderUseCase struct {
	repo repository.ProviderRepository
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(repo repository.ProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{repo: repo}
}

// List lista todos los proveedores.
func (uc *ProviderUseCase) List(ctx context.Context) ([]dto.ProviderResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProviderResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProviderResponse(p))
	}
	return items, nil
}

// GetByID obtiene un proveedor. Devuelve (nil, nil) si no existe.
func (uc *ProviderUseCase) GetByID(ctx context.Context, id int64) (*dto.ProviderResponse, error) {
	provider, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	return toProviderResponse(provider), nil
}

// Create registra un proveedor. TaxID duplicado devuelve ErrDuplicate.
func (uc *ProviderUseCase) Create(ctx context.Context, in dto.ProviderRequest) (*dto.ProviderResponse, error) {
	provider := &entity.Provider{Name: in.Name, TaxID: in.TaxID}
	if err := uc.repo.Create(ctx, provider); err != nil {
		return nil, err
	}
	return toProviderResponse(provider), nil
}

// Delete elimina un proveedor. Si tiene productos asociados la FK lo impide
// y el repositorio devuelve ErrConflict.
func (uc *ProviderUseCase) Delete(ctx context.Context, id int64) error {
	provider, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if provider == nil {
		return fmt.Errorf("proveedor %d: %w", id, domain.ErrNotFound)
	}
	return uc.repo.Delete(ctx, id)
}

func toProviderResponse(p *entity.Provider) *dto.ProviderResponse {
	if p == nil {
		return nil
	}
	return &dto.ProviderResponse{
		ID:        p.ID,
		Name:      p.Name,
		TaxID:     p.TaxID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
