package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestSpaCreate_SoloAdminPrincipal(t *testing.T) {
	e := newEnv(t)
	_, err := e.spas.Create(context.Background(), e.adminSpa, dto.CreateSpaRequest{Name: "Luna", Zone: "Centro"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSpaCreate_NombreNormalizadoYDuplicado(t *testing.T) {
	e := newEnv(t)
	spa := e.createSpa(t, "  Luna   Spa ", "Centro", "")
	assert.Equal(t, "Luna Spa", spa.Name)
	assert.True(t, spa.Active)
	assert.Zero(t, spa.AverageRating)

	_, err := e.spas.Create(context.Background(), e.admin, dto.CreateSpaRequest{Name: "Luna Spa", Zone: "Norte"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSpaCreate_DuenoDebeSerAdminSpaSinOtroSpa(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.spas.Create(ctx, e.admin, dto.CreateSpaRequest{Name: "Luna", AdminSpaID: &e.cliente.UserID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	e.createSpa(t, "Luna", "Centro", e.adminSpa.UserID)
	_, err = e.spas.Create(ctx, e.admin, dto.CreateSpaRequest{Name: "Sol", AdminSpaID: &e.adminSpa.UserID})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSpaSoftDelete_OcultoSalvoAdminConInactivos(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	spa := e.createSpa(t, "Luna Spa", "Centro", "")

	require.NoError(t, e.spas.Delete(ctx, e.admin, spa.ID))

	list, err := e.spas.List(ctx, e.cliente, false)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = e.spas.GetDetail(ctx, nil, spa.ID, false)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = e.spas.GetDetail(ctx, &e.cliente, spa.ID, true)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	detail, err := e.spas.GetDetail(ctx, &e.admin, spa.ID, true)
	require.NoError(t, err)
	assert.False(t, detail.Active)

	all, err := e.spas.List(ctx, e.admin, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].Active)

	_, err = e.spas.List(ctx, e.cliente, true)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSpaDelete_SoloAdminPrincipal(t *testing.T) {
	e := newEnv(t)
	spa := e.createSpa(t, "Luna Spa", "Centro", e.adminSpa.UserID)

	err := e.spas.Delete(context.Background(), e.adminSpa, spa.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSpaRestore(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	spa := e.createSpa(t, "Luna Spa", "Centro", "")

	_, err := e.spas.Restore(ctx, e.admin, spa.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "ya activo")

	require.NoError(t, e.spas.Delete(ctx, e.admin, spa.ID))
	// el nombre queda libre mientras está inactivo
	e.createSpa(t, "Luna Spa", "Norte", "")

	_, err = e.spas.Restore(ctx, e.admin, spa.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "nombre tomado")
}

func TestSpaRestore_Reactiva(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	spa := e.createSpa(t, "Luna Spa", "Centro", "")
	require.NoError(t, e.spas.Delete(ctx, e.admin, spa.ID))

	out, err := e.spas.Restore(ctx, e.admin, spa.ID)
	require.NoError(t, err)
	assert.True(t, out.Active)

	list, err := e.spas.List(ctx, e.cliente, false)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSpaUpdate_DuenoYAjeno(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	spa := e.createSpa(t, "Luna Spa", "Centro", e.adminSpa.UserID)

	out, err := e.spas.Update(ctx, e.adminSpa, spa.ID, dto.UpdateSpaRequest{Schedule: strPtr("8-20")})
	require.NoError(t, err)
	assert.Equal(t, "8-20", out.Schedule)
	assert.Equal(t, "Luna Spa", out.Name, "campos ausentes no cambian")
	assert.False(t, out.LastUpdated.Before(spa.LastUpdated))

	_, err = e.spas.Update(ctx, e.otherAdmin, spa.ID, dto.UpdateSpaRequest{Schedule: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = e.spas.Update(ctx, e.adminSpa, spa.ID, dto.UpdateSpaRequest{AdminSpaID: &e.otherAdmin.UserID})
	assert.ErrorIs(t, err, domain.ErrForbidden, "solo admin_principal reasigna el dueño")
}

func TestSpaList_AdminSpaVeSuSpaInactivo(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	spa := e.createSpa(t, "Luna Spa", "Centro", e.adminSpa.UserID)
	e.createSpa(t, "Sol Spa", "Norte", "")
	require.NoError(t, e.spas.Delete(ctx, e.admin, spa.ID))

	list, err := e.spas.List(ctx, e.adminSpa, false)
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, s := range list {
		names = append(names, s.Name)
	}
	assert.ElementsMatch(t, []string{"Luna Spa", "Sol Spa"}, names)

	detail, err := e.spas.GetDetail(ctx, &e.adminSpa, spa.ID, false)
	require.NoError(t, err)
	assert.False(t, detail.Active)
}

func TestSpaSearch_SinTildesNiMayusculas(t *testing.T) {
	e := newEnv(t)
	e.createSpa(t, "Peluquería Ébano", "Zona Centro", "")
	e.createSpa(t, "Luna Spa", "Norte", "")

	out, err := e.spas.Search(context.Background(), dto.SpaSearchRequest{Name: "EBANO", Zone: "centro"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Peluquería Ébano", out[0].Name)

	all, err := e.spas.Search(context.Background(), dto.SpaSearchRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
