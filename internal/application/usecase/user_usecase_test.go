package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/belleza-api/internal/domain"
)

func TestUserList_SoloAdminPrincipal(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.users.List(ctx, e.cliente, "", 50, 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := e.users.List(ctx, e.admin, "", 50, 0)
	require.NoError(t, err)
	assert.Len(t, out, 4)
}

func TestUserList_FiltroPorRol(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	admins, err := e.users.List(ctx, e.admin, "admin_spa", 50, 0)
	require.NoError(t, err)
	assert.Len(t, admins, 2)

	// "cliente" es alias de usuario
	clientes, err := e.users.List(ctx, e.admin, "Cliente", 50, 0)
	require.NoError(t, err)
	require.Len(t, clientes, 1)
	assert.Equal(t, "usuario", clientes[0].Role)

	_, err = e.users.List(ctx, e.admin, "superusuario", 50, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserGetByID_PropioOAdmin(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	me, err := e.users.GetByID(ctx, e.cliente, e.cliente.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", me.Name)

	_, err = e.users.GetByID(ctx, e.cliente, e.adminSpa.UserID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = e.users.GetByID(ctx, e.admin, e.adminSpa.UserID)
	assert.NoError(t, err)
}

func TestUserSetActive(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.users.SetActive(ctx, e.admin, e.admin.UserID, false)
	assert.ErrorIs(t, err, domain.ErrConflict, "no puede desactivarse a sí mismo")

	out, err := e.users.SetActive(ctx, e.admin, e.cliente.UserID, false)
	require.NoError(t, err)
	assert.False(t, out.Active)

	out, err = e.users.SetActive(ctx, e.admin, e.cliente.UserID, true)
	require.NoError(t, err)
	assert.True(t, out.Active)

	_, err = e.users.SetActive(ctx, e.adminSpa, e.cliente.UserID, false)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
