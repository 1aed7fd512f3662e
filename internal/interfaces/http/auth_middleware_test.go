package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/techstore-api/internal/domain/entity"
	apphttp "github.com/jhoicas/techstore-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/techstore-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmail     = "admin@techstore.test"
	testIssuer    = "techstore-test"
	testExpMin    = 60
)

// fakeUsers resuelve solo el email de prueba; cualquier otro subject es desconocido.
type fakeUsers struct {
	role string
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if email != testEmail {
		return nil, nil
	}
	return &entity.User{ID: testUserID, Email: testEmail, Role: f.role}, nil
}

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware y
// RequireRole delante de un handler dummy que devuelve 200.
func buildTestApp(userRole string, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, &fakeUsers{role: userRole}),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT para el email y rol indicados.
func tokenFor(t *testing.T, email, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, email, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Caso 1: el usuario tiene el rol requerido, debe pasar (HTTP 200).
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin, entity.RoleAdmin)
	resp := doRequest(t, app, tokenFor(t, testEmail, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
}

// Caso 2: rol distinto al requerido, HTTP 403 Forbidden.
func TestRequireRole_UserBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp(entity.RoleUser, entity.RoleAdmin)
	resp := doRequest(t, app, tokenFor(t, testEmail, entity.RoleUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"USER no debe poder acceder a ruta restringida a ADMIN")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "acceso denegado")
}

// Caso 3: sin header Authorization, HTTP 401.
func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin, entity.RoleAdmin)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: token malformado, HTTP 401.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin, entity.RoleAdmin)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: token expirado, HTTP 401.
func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin, entity.RoleAdmin)
	tok, err := pkgjwt.Generate(testJWTSecret, testEmail, entity.RoleAdmin, testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: token válido pero el subject ya no existe, HTTP 401.
func TestAuthMiddleware_UsuarioDesconocido_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin, entity.RoleAdmin)
	resp := doRequest(t, app, tokenFor(t, "borrado@techstore.test", entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token de un usuario eliminado no debe autenticar")
}

// Caso 7: token sin claim de rol, HTTP 401.
func TestAuthMiddleware_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin, entity.RoleAdmin)
	resp := doRequest(t, app, tokenFor(t, testEmail, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Los fallos de autenticación devuelven el mismo mensaje sin distinguir el motivo.
func TestAuthMiddleware_MotivoDeFalloNoSeFiltra(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin, entity.RoleAdmin)

	cases := map[string]string{
		"sin header":    "",
		"malformado":    "Bearer no.es.jwt",
		"desconocido":   tokenFor(t, "otro@techstore.test", entity.RoleAdmin),
		"esquema basic": "Basic abc123",
	}
	var bodies []string
	for name, header := range cases {
		resp := doRequest(t, app, header)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, name)
		bodies = append(bodies, string(body))
	}
	for _, b := range bodies {
		assert.Contains(t, b, "token inválido o ausente")
	}
}

// Extracción de identidad a locals después del middleware.
func TestAuthMiddleware_ExtraeIdentidad(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, &fakeUsers{role: entity.RoleUser}), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"email":   apphttp.GetEmail(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, testEmail, entity.RoleUser))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testEmail, body["email"])
	assert.Equal(t, entity.RoleUser, body["role"])
}
