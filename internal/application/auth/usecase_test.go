package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/belleza-api/internal/application/auth"
	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/domain"
	"github.com/jhoicas/belleza-api/internal/domain/access"
	"github.com/jhoicas/belleza-api/internal/domain/entity"
	"github.com/jhoicas/belleza-api/internal/testutil/memstore"
	pkgjwt "github.com/jhoicas/belleza-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testJWT = auth.JWTConfig{Secret: "auth-test-secret", TTL: time.Hour, Issuer: "belleza-test"}

func newAuth(t *testing.T) (*auth.AuthUseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	return auth.NewAuthUseCase(store.Users(), testJWT), store
}

func register(t *testing.T, uc *auth.AuthUseCase, email string) *dto.UserResponse {
	t.Helper()
	out, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "Ana", Email: email, Password: "secreto123"})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_RolUsuarioYCorreoNormalizado(t *testing.T) {
	uc, _ := newAuth(t)
	out := register(t, uc, "  Ana@Belleza.TEST ")

	assert.Equal(t, "usuario", out.Role)
	assert.Equal(t, "ana@belleza.test", out.Email)
	assert.True(t, out.Active)
}

func TestRegister_CorreoDuplicado(t *testing.T) {
	uc, _ := newAuth(t)
	register(t, uc, "ana@belleza.test")

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "Otra", Email: "ANA@belleza.test", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_CamposVacios(t *testing.T) {
	uc, _ := newAuth(t)
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Name: " ", Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_EmiteTokenConRol(t *testing.T) {
	uc, _ := newAuth(t)
	user := register(t, uc, "ana@belleza.test")

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@belleza.test", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, "usuario", out.Role)

	userID, role, err := pkgjwt.Parse(testJWT.Secret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "usuario", role)
}

func TestLogin_CredencialesIncorrectasMismoError(t *testing.T) {
	uc, _ := newAuth(t)
	register(t, uc, "ana@belleza.test")

	_, errPass := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@belleza.test", Password: "otra"})
	_, errMail := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@belleza.test", Password: "secreto123"})
	assert.ErrorIs(t, errPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errMail, domain.ErrUnauthorized)
	assert.Equal(t, errPass.Error(), errMail.Error())
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, store := newAuth(t)
	user := register(t, uc, "ana@belleza.test")
	require.NoError(t, store.Users().SetActive(context.Background(), user.ID, false))

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@belleza.test", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrInactiveUser)
}

func TestAuthenticate_RolDesdeLaBaseYUsuarioActivo(t *testing.T) {
	uc, store := newAuth(t)
	ctx := context.Background()
	user := register(t, uc, "ana@belleza.test")
	login, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@belleza.test", Password: "secreto123"})
	require.NoError(t, err)

	p, err := uc.Authenticate(ctx, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, access.Principal{UserID: user.ID, Role: entity.RoleUsuario}, p)

	require.NoError(t, store.Users().SetActive(ctx, user.ID, false))
	_, err = uc.Authenticate(ctx, login.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Authenticate(ctx, "no.es.un.token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthenticate_TokenExpirado(t *testing.T) {
	store := memstore.New()
	uc := auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: "s", TTL: -time.Minute, Issuer: "t"})
	register(t, uc, "ana@belleza.test")
	login, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@belleza.test", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Authenticate(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBootstrapAdmin_SoloUnaVez(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	out, err := uc.BootstrapAdmin(ctx, dto.RegisterRequest{Name: "Admin", Email: "admin@belleza.test", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "admin_principal", out.Role)

	_, err = uc.BootstrapAdmin(ctx, dto.RegisterRequest{Name: "Otro", Email: "otro@belleza.test", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateAdminSpa_SoloAdminPrincipal(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()
	in := dto.RegisterRequest{Name: "Marta", Email: "marta@belleza.test", Password: "secreto123"}

	_, err := uc.CreateAdminSpa(ctx, access.Principal{UserID: "x", Role: entity.RoleUsuario}, in)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.CreateAdminSpa(ctx, access.Principal{UserID: "x", Role: entity.RoleAdminPrincipal}, in)
	require.NoError(t, err)
	assert.Equal(t, "admin_spa", out.Role)
}
