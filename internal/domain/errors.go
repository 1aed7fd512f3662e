package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrMasterDataMissing  = errors.New("datos maestros de importación ausentes")
)

// StockInsufficientError regla de negocio: el stock disponible no alcanza para
// la cantidad solicitada. La operación se rechaza sin modificar el estado.
type StockInsufficientError struct {
	ProductID int64
	Available int
	Requested int
}

func (e *StockInsufficientError) Error() string {
	return fmt.Sprintf("stock insuficiente para el producto %d: disponible %d, solicitado %d",
		e.ProductID, e.Available, e.Requested)
}
