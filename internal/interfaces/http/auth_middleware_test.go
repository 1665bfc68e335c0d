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

	"github.com/jhoicas/belleza-api/internal/domain"
	"github.com/jhoicas/belleza-api/internal/domain/access"
	"github.com/jhoicas/belleza-api/internal/domain/entity"
	apphttp "github.com/jhoicas/belleza-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testUserID = "00000000-0000-0000-0000-000000000001"

// fakeAuthenticator resuelve tokens con un mapa fijo token -> rol.
type fakeAuthenticator map[string]entity.Role

func (f fakeAuthenticator) Authenticate(_ context.Context, token string) (access.Principal, error) {
	role, ok := f[token]
	if !ok {
		return access.Principal{}, domain.ErrUnauthorized
	}
	return access.Principal{UserID: testUserID, Role: role}, nil
}

var tokens = fakeAuthenticator{
	"tok-admin":   entity.RoleAdminPrincipal,
	"tok-adm-spa": entity.RoleAdminSpa,
	"tok-usuario": entity.RoleUsuario,
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para resolver el token y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...entity.Role) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(tokens),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	app.Get("/optional", apphttp.OptionalAuth(tokens), func(c *fiber.Ctx) error {
		_, ok := apphttp.GetPrincipal(c)
		return c.JSON(fiber.Map{"authenticated": ok})
	})
	return app
}

// doRequest lanza una petición GET y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminPrincipalAccede(t *testing.T) {
	app := buildTestApp(entity.RoleAdminPrincipal)
	resp := doRequest(t, app, "/protected", "Bearer tok-admin")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin_principal", body["role"])
}

func TestRequireRole_AdminSpaAccedeRutaDeAdministradores(t *testing.T) {
	app := buildTestApp(entity.RoleAdminPrincipal, entity.RoleAdminSpa)
	resp := doRequest(t, app, "/protected", "Bearer tok-adm-spa")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_UsuarioBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp(entity.RoleAdminPrincipal)
	resp := doRequest(t, app, "/protected", "Bearer tok-usuario")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware / OptionalAuth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(entity.RoleAdminPrincipal), "/protected", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(entity.RoleAdminPrincipal), "/protected", "Token tok-admin")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenDesconocido_Retorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(entity.RoleAdminPrincipal), "/protected", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestOptionalAuth_SinTokenSigueAnonimo(t *testing.T) {
	resp := doRequest(t, buildTestApp(), "/optional", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body["authenticated"])
}

func TestOptionalAuth_ConTokenCargaPrincipal(t *testing.T) {
	resp := doRequest(t, buildTestApp(), "/optional", "Bearer tok-usuario")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body["authenticated"])
}

func TestOptionalAuth_TokenInvalidoRetorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(), "/optional", "Bearer nope")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
