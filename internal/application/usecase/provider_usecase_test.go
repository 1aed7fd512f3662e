package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/techstore-api/internal/application/dto"
	"github.com/jhoicas/techstore-api/internal/application/usecase"
	"github.com/jhoicas/techstore-api/internal/domain"
	"github.com/jhoicas/techstore-api/internal/domain/entity"
)

func newProviderUC() (*usecase.ProviderUseCase, *MockProviderRepository) {
	providers := new(MockProviderRepository)
	return usecase.NewProviderUseCase(providers), providers
}

func TestProviderCreate_RegistraYDevuelveDatos(t *testing.T) {
	uc, providers := newProviderUC()
	ctx := context.Background()

	providers.On("Create", ctx, mock.MatchedBy(func(p *entity.Provider) bool {
		return p.Name == "Acme" && p.TaxID == "900123456-7"
	})).Return(nil)

	out, err := uc.Create(ctx, dto.ProviderRequest{Name: "Acme", TaxID: "900123456-7"})

	require.NoError(t, err)
	assert.Equal(t, "Acme", out.Name)
	assert.Equal(t, "900123456-7", out.TaxID)
	providers.AssertExpectations(t)
}

func TestProviderCreate_NITDuplicado_SePropaga(t *testing.T) {
	uc, providers := newProviderUC()
	ctx := context.Background()

	providers.On("Create", ctx, mock.AnythingOfType("*entity.Provider")).Return(domain.ErrDuplicate)

	_, err := uc.Create(ctx, dto.ProviderRequest{Name: "Acme", TaxID: "900123456-7"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Con productos asociados la FK bloquea el borrado y el conflicto llega al llamador.
func TestProviderDelete_ConProductosAsociados_RetornaConflicto(t *testing.T) {
	uc, providers := newProviderUC()
	ctx := context.Background()

	providers.On("GetByID", ctx, int64(5)).Return(&entity.Provider{ID: 5, Name: "Acme", TaxID: "X1"}, nil)
	providers.On("Delete", ctx, int64(5)).Return(domain.ErrConflict)

	err := uc.Delete(ctx, 5)

	assert.ErrorIs(t, err, domain.ErrConflict)
	providers.AssertExpectations(t)
}

func TestProviderDelete_SinProductos_Elimina(t *testing.T) {
	uc, providers := newProviderUC()
	ctx := context.Background()

	providers.On("GetByID", ctx, int64(5)).Return(&entity.Provider{ID: 5, Name: "Acme", TaxID: "X1"}, nil)
	providers.On("Delete", ctx, int64(5)).Return(nil)

	err := uc.Delete(ctx, 5)

	require.NoError(t, err)
	providers.AssertExpectations(t)
}

func TestProviderDelete_Inexistente_RetornaNotFound(t *testing.T) {
	uc, providers := newProviderUC()
	ctx := context.Background()

	providers.On("GetByID", ctx, int64(404)).Return(nil, nil)

	err := uc.Delete(ctx, 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	providers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProviderGetByID_Inexistente_RetornaNil(t *testing.T) {
	uc, providers := newProviderUC()
	ctx := context.Background()

	providers.On("GetByID", ctx, int64(404)).Return(nil, nil)

	out, err := uc.GetByID(ctx, 404)
	require.NoError(t, err)
	assert.Nil(t, out)
}
