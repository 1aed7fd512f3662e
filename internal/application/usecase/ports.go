package usecase

import (
	"context"

	"github.com/jhoicas/techstore-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
// Si fn retorna error se hace rollback; si no, commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		categories repository.CategoryRepository,
	) error) error
}

// RowSource origen de filas tabulares para la importación masiva.
// La primera fila es la cabecera.
type RowSource interface {
	Rows() ([][]string, error)
}
