package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/techstore-api/internal/domain/entity"
	"github.com/jhoicas/techstore-api/pkg/jwt"
)

// Locals keys para la identidad resuelta en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRole   = "role"
)

// userResolver resuelve el subject del token contra la base de usuarios.
type userResolver interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer Token JWT, verifica que el subject siga
// existiendo y carga la identidad en c.Locals. Cualquier fallo (header ausente,
// token malformado, firma inválida, expirado, usuario desconocido) devuelve el
// mismo 401 sin distinguir el motivo.
func AuthMiddleware(jwtSecret string, users userResolver) fiber.Handler {
	const unauthorizedMsg = "token inválido o ausente"
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return writeError(c, fiber.StatusUnauthorized, unauthorizedMsg)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return writeError(c, fiber.StatusUnauthorized, unauthorizedMsg)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return writeError(c, fiber.StatusUnauthorized, unauthorizedMsg)
		}
		email, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil || role == "" {
			return writeError(c, fiber.StatusUnauthorized, unauthorizedMsg)
		}
		user, err := users.FindByEmail(c.UserContext(), email)
		if err != nil || user == nil {
			return writeError(c, fiber.StatusUnauthorized, unauthorizedMsg)
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalEmail, user.Email)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe ir después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return writeError(c, fiber.StatusUnauthorized, "token inválido o ausente")
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return writeError(c, fiber.StatusForbidden, "acceso denegado")
	}
}

// GetUserID devuelve el ID del usuario autenticado (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetEmail devuelve el email del usuario autenticado.
func GetEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmail).(string)
	return s
}

// GetRole devuelve el rol del usuario autenticado.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
