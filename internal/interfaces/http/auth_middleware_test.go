package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fieldstock-api/internal/application/auth"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/fieldstock-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/fieldstock-api/pkg/jwt"
	"github.com/jhoicas/fieldstock-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "field-stock-test"
)

type middlewareFixture struct {
	store *memory.Store
	authn *auth.AuthUseCase
}

func newMiddlewareFixture() *middlewareFixture {
	store := memory.NewStore()
	return &middlewareFixture{
		store: store,
		authn: auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: testJWTSecret, TTL: time.Hour, Issuer: testIssuer}),
	}
}

// seedUser guarda un usuario con el rol dado y devuelve su id.
func (f *middlewareFixture) seedUser(t *testing.T, email, role string) string {
	t.Helper()
	u := &entity.User{Name: "Test " + role, Email: email, Role: role, IsActive: true}
	require.NoError(t, f.store.Users().Create(context.Background(), u))
	return u.ID
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para validar el JWT y cargar el usuario
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func (f *middlewareFixture) buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(f.authn, logger.Nop()),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"user_id": apphttp.GetUserID(c),
				"role":    apphttp.GetRole(c),
			})
		},
	)
	return app
}

// bearer genera un JWT para userID con el claim de rol indicado.
func bearer(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, role, testIssuer, time.Hour)
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

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_OficinaAccedeRutaOficina(t *testing.T) {
	f := newMiddlewareFixture()
	id := f.seedUser(t, "office@example.com", entity.RoleOffice)

	resp := doRequest(t, f.buildTestApp(entity.RoleOffice), bearer(t, id, entity.RoleOffice))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, id, body["user_id"])
	assert.Equal(t, entity.RoleOffice, body["role"])
}

func TestRequireRole_MultiRol(t *testing.T) {
	f := newMiddlewareFixture()
	id := f.seedUser(t, "tech@example.com", entity.RoleTechnician)

	resp := doRequest(t, f.buildTestApp(entity.RoleOffice, entity.RoleTechnician), bearer(t, id, entity.RoleTechnician))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_TecnicoBloqueadoEnRutaOficina(t *testing.T) {
	f := newMiddlewareFixture()
	id := f.seedUser(t, "tech@example.com", entity.RoleTechnician)

	resp := doRequest(t, f.buildTestApp(entity.RoleOffice), bearer(t, id, entity.RoleTechnician))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// El rol sale del usuario guardado, no del claim del token.
func TestRequireRole_IgnoraRolDelToken(t *testing.T) {
	f := newMiddlewareFixture()
	id := f.seedUser(t, "tech@example.com", entity.RoleTechnician)

	resp := doRequest(t, f.buildTestApp(entity.RoleOffice), bearer(t, id, entity.RoleOffice))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_UsuarioSinRol_Retorna401(t *testing.T) {
	f := newMiddlewareFixture()
	id := f.seedUser(t, "legacy@example.com", "")

	resp := doRequest(t, f.buildTestApp(entity.RoleOffice), bearer(t, id, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	f := newMiddlewareFixture()
	resp := doRequest(t, f.buildTestApp(entity.RoleOffice), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_EsquemaIncorrecto_Retorna401(t *testing.T) {
	f := newMiddlewareFixture()
	resp := doRequest(t, f.buildTestApp(entity.RoleOffice), "Basic dXNlcjpwYXNz")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	f := newMiddlewareFixture()
	resp := doRequest(t, f.buildTestApp(entity.RoleOffice), "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	f := newMiddlewareFixture()
	id := f.seedUser(t, "office@example.com", entity.RoleOffice)
	tok, err := pkgjwt.Generate(testJWTSecret, id, entity.RoleOffice, testIssuer, -time.Minute)
	require.NoError(t, err)

	resp := doRequest(t, f.buildTestApp(entity.RoleOffice), "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_UsuarioInexistente_Retorna401(t *testing.T) {
	f := newMiddlewareFixture()
	resp := doRequest(t, f.buildTestApp(entity.RoleOffice), bearer(t, "00000000-0000-0000-0000-000000000099", entity.RoleOffice))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_CargaUsuario(t *testing.T) {
	f := newMiddlewareFixture()
	id := f.seedUser(t, "office@example.com", entity.RoleOffice)

	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(f.authn, logger.Nop()), func(c *fiber.Ctx) error {
		u := apphttp.GetUser(c)
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c), "email": u.Email})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", bearer(t, id, entity.RoleOffice))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id, body["user_id"])
	assert.Equal(t, "office@example.com", body["email"])
}
