package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/techstore-api/internal/application/auth"
	"github.com/jhoicas/techstore-api/internal/application/dto"
)

// AuthHandler maneja registro y login (público).
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register crea un usuario y devuelve un token ya emitido.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	var details []string
	if in.Email == "" {
		details = append(details, "email: email is required")
	}
	if in.Password == "" {
		details = append(details, "password: password is required")
	}
	if len(details) > 0 {
		return writeError(c, fiber.StatusBadRequest, "validación fallida", details...)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Authenticate verifica credenciales y devuelve el token.
func (h *AuthHandler) Authenticate(c *fiber.Ctx) error {
	var in dto.AuthenticationRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Authenticate(c.UserContext(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
