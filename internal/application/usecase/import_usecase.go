package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/techstore-api/internal/application/dto"
	"github.com/jhoicas/techstore-api/internal/domain"
	"github.com/jhoicas/techstore-api/internal/domain/entity"
	"github.com/jhoicas/techstore-api/internal/domain/repository"
	"github.com/jhoicas/techstore-api/pkg/config"
	"github.com/jhoicas/techstore-api/pkg/logger"
)

// ImportUseCase importación masiva de productos desde una hoja de cálculo.
// Columnas esperadas: nombre, descripción, precio; la primera fila es cabecera.
type ImportUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	providers  repository.ProviderRepository
	cfg        config.ImportConfig
	log        *logger.Logger
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(products repository.ProductRepository, categories repository.CategoryRepository, providers repository.ProviderRepository, cfg config.ImportConfig, log *logger.Logger) *ImportUseCase {
	return &ImportUseCase{products: products, categories: categories, providers: providers, cfg: cfg, log: log}
}

// Import procesa la hoja fila a fila y persiste las válidas en un solo guardado
// masivo. La ausencia de la categoría o el proveedor por defecto es fatal y se
// detecta antes de leer ninguna fila; un error de una fila solo descarta esa
// fila. Cero filas válidas es un no-op exitoso.
func (uc *ImportUseCase) Import(ctx context.Context, src RowSource) (*dto.ImportSummary, error) {
	category, err := uc.categories.GetByID(ctx, uc.cfg.DefaultCategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		uc.log.Error().Int64("category_id", uc.cfg.DefaultCategoryID).Msg("CRÍTICO: categoría por defecto inexistente")
		return nil, fmt.Errorf("categoría por defecto %d: %w", uc.cfg.DefaultCategoryID, domain.ErrMasterDataMissing)
	}
	provider, err := uc.providers.GetByID(ctx, uc.cfg.DefaultProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		uc.log.Error().Int64("provider_id", uc.cfg.DefaultProviderID).Msg("CRÍTICO: proveedor por defecto inexistente")
		return nil, fmt.Errorf("proveedor por defecto %d: %w", uc.cfg.DefaultProviderID, domain.ErrMasterDataMissing)
	}

	rows, err := src.Rows()
	if err != nil {
		return nil, fmt.Errorf("leer hoja: %w", err)
	}

	var batch []*entity.Product
	summary := &dto.ImportSummary{}

	for i, row := range rows {
		if i == 0 {
			continue // cabecera
		}
		name := strings.TrimSpace(cell(row, 0))
		if name == "" {
			uc.log.Warn().Int("row", i).Msg("fila ignorada: nombre vacío")
			summary.Skipped++
			continue
		}

		// Normalizar separador decimal antes de parsear
		priceStr := strings.ReplaceAll(strings.TrimSpace(cell(row, 2)), ",", ".")
		price, err := decimal.NewFromString(priceStr)
		if err != nil || !price.IsPositive() {
			uc.log.Error().Int("row", i).Str("price", priceStr).Msg("fila ignorada: precio inválido")
			summary.Skipped++
			continue
		}

		batch = append(batch, &entity.Product{
			Name:         name,
			Description:  cell(row, 1),
			Price:        price,
			Stock:        uc.cfg.DefaultStock,
			CategoryID:   category.ID,
			ProviderID:   provider.ID,
			CategoryName: category.Name,
			ProviderName: provider.Name,
		})
	}

	if len(batch) == 0 {
		uc.log.Warn().Msg("importación sin filas válidas, nada que guardar")
		return summary, nil
	}

	if err := uc.products.CreateBulk(ctx, batch); err != nil {
		return nil, err
	}
	summary.Imported = len(batch)
	uc.log.Info().Int("imported", summary.Imported).Int("skipped", summary.Skipped).Msg("importación completada")
	return summary, nil
}

// cell devuelve la celda i o "" si la fila es más corta (las hojas recortan
// celdas vacías al final).
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}
