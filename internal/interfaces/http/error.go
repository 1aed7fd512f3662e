package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/techstore-api/internal/application/dto"
	"github.com/jhoicas/techstore-api/internal/domain"
)

// writeError construye el cuerpo de error estándar de la API.
func writeError(c *fiber.Ctx, status int, message string, details ...string) error {
	return c.Status(status).JSON(dto.APIError{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      c.Path(),
		Details:   details,
	})
}

// mapDomainError traduce errores de dominio a códigos HTTP. Los errores no
// reconocidos devuelven 500 con un mensaje genérico, sin filtrar detalles internos.
func mapDomainError(c *fiber.Ctx, err error) error {
	var stockErr *domain.StockInsufficientError
	switch {
	case errors.As(err, &stockErr):
		return writeError(c, fiber.StatusConflict, stockErr.Error())
	case errors.Is(err, domain.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return writeError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		return writeError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return writeError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return writeError(c, fiber.StatusUnauthorized, "credenciales inválidas")
	case errors.Is(err, domain.ErrForbidden):
		return writeError(c, fiber.StatusForbidden, "acceso denegado")
	case errors.Is(err, domain.ErrInvalidInput):
		return writeError(c, fiber.StatusBadRequest, err.Error())
	default:
		return writeError(c, fiber.StatusInternalServerError, "error interno")
	}
}
