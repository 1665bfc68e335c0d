package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/domain"
)

func TestServiceAssociate_PrecioYDuracionPropiosDelSpa(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	spa := e.createSpa(t, "Luna Spa", "Centro", "")
	svc, err := e.services.Create(ctx, e.admin, dto.CreateServiceRequest{Name: "Manicure", RefPrice: dec(20), RefDuration: "30m"})
	require.NoError(t, err)

	rows, err := e.services.Associate(ctx, e.admin, spa.ID, svc.ID, dto.AssociateServiceRequest{Price: dec(18), Duration: "45m"})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	list, err := e.services.ListBySpa(ctx, spa.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Manicure", list[0].Name)
	require.NotNil(t, list[0].Price)
	assert.InDelta(t, 18.0, *list[0].Price, 0.001)
	assert.Equal(t, "45m", list[0].Duration)
}

func TestServiceAssociate_SinPrecioUsaReferencia(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	spa := e.createSpa(t, "Luna Spa", "Centro", "")
	svc, err := e.services.Create(ctx, e.admin, dto.CreateServiceRequest{Name: "Masaje", RefPrice: dec(50), RefDuration: "1h"})
	require.NoError(t, err)

	rows, err := e.services.Associate(ctx, e.admin, spa.ID, svc.ID, dto.AssociateServiceRequest{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Price)
	assert.InDelta(t, 50.0, *rows[0].Price, 0.001)
	assert.Equal(t, "1h", rows[0].Duration)
}

func TestServiceAssociate_DuplicadoEsConflictoConUnaFila(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	spa := e.createSpa(t, "Luna Spa", "Centro", "")
	svc, err := e.services.Create(ctx, e.admin, dto.CreateServiceRequest{Name: "Manicure"})
	require.NoError(t, err)

	_, err = e.services.Associate(ctx, e.admin, spa.ID, svc.ID, dto.AssociateServiceRequest{})
	require.NoError(t, err)
	_, err = e.services.Associate(ctx, e.admin, spa.ID, svc.ID, dto.AssociateServiceRequest{})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, e.store.SpaServiceRows(), 1)
}

func TestServiceAssociate_ReactivaParRetirado(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	spa := e.createSpa(t, "Luna Spa", "Centro", "")
	svc, err := e.services.Create(ctx, e.admin, dto.CreateServiceRequest{Name: "Manicure", RefPrice: dec(20)})
	require.NoError(t, err)

	_, err = e.services.Associate(ctx, e.admin, spa.ID, svc.ID, dto.AssociateServiceRequest{})
	require.NoError(t, err)
	require.NoError(t, e.services.Disassociate(ctx, e.admin, spa.ID, svc.ID))

	list, err := e.services.ListBySpa(ctx, spa.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	rows, err := e.services.Associate(ctx, e.admin, spa.ID, svc.ID, dto.AssociateServiceRequest{Price: dec(25)})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, 25.0, *rows[0].Price, 0.001)
	assert.Len(t, e.store.SpaServiceRows(), 1)
}

func TestServiceAssociate_SoloDuenoOAdmin(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	spa := e.createSpa(t, "Luna Spa", "Centro", e.adminSpa.UserID)
	svc, err := e.services.Create(ctx, e.admin, dto.CreateServiceRequest{Name: "Manicure"})
	require.NoError(t, err)

	_, err = e.services.Associate(ctx, e.otherAdmin, spa.ID, svc.ID, dto.AssociateServiceRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = e.services.Associate(ctx, e.adminSpa, spa.ID, svc.ID, dto.AssociateServiceRequest{})
	assert.NoError(t, err)
}

func TestServiceAssociate_PrecioNoPositivo(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	spa := e.createSpa(t, "Luna Spa", "Centro", "")
	svc, err := e.services.Create(ctx, e.admin, dto.CreateServiceRequest{Name: "Manicure"})
	require.NoError(t, err)

	_, err = e.services.Associate(ctx, e.admin, spa.ID, svc.ID, dto.AssociateServiceRequest{Price: dec(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, e.store.SpaServiceRows())
}

func TestServiceCreate_Validaciones(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.services.Create(ctx, e.adminSpa, dto.CreateServiceRequest{Name: "Manicure"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = e.services.Create(ctx, e.admin, dto.CreateServiceRequest{Name: "Manicure", RefPrice: dec(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.services.Create(ctx, e.admin, dto.CreateServiceRequest{Name: "Manicure"})
	require.NoError(t, err)
	_, err = e.services.Create(ctx, e.admin, dto.CreateServiceRequest{Name: "Manicure"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestServiceDelete_DesactivaAsociaciones(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	luna := e.createSpa(t, "Luna Spa", "Centro", "")
	sol := e.createSpa(t, "Sol Spa", "Norte", "")
	svc, err := e.services.Create(ctx, e.admin, dto.CreateServiceRequest{Name: "Manicure"})
	require.NoError(t, err)
	for _, spaID := range []string{luna.ID, sol.ID} {
		_, err = e.services.Associate(ctx, e.admin, spaID, svc.ID, dto.AssociateServiceRequest{})
		require.NoError(t, err)
	}

	require.NoError(t, e.services.Delete(ctx, e.admin, svc.ID))

	for _, row := range e.store.SpaServiceRows() {
		assert.False(t, row.Active, "asociación %s sigue activa", row.SpaID)
	}
	_, err = e.services.GetByID(ctx, e.cliente, svc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := e.services.GetByID(ctx, e.admin, svc.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	list, err := e.services.List(ctx, e.cliente, false)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMaterial_CicloDeAsociacion(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	spa := e.createSpa(t, "Luna Spa", "Centro", e.adminSpa.UserID)

	mat, err := e.materials.Create(ctx, e.adminSpa, dto.CreateMaterialRequest{Name: "Esmalte", Type: "Uñas"})
	require.NoError(t, err)

	rows, err := e.materials.Associate(ctx, e.adminSpa, spa.ID, mat.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Esmalte", rows[0].Name)

	_, err = e.materials.Associate(ctx, e.adminSpa, spa.ID, mat.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = e.materials.Associate(ctx, e.otherAdmin, spa.ID, mat.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, e.materials.Delete(ctx, e.admin, mat.ID))
	list, err := e.materials.ListBySpa(ctx, spa.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMaterialCreate_UsuarioProhibido(t *testing.T) {
	e := newEnv(t)
	_, err := e.materials.Create(context.Background(), e.cliente, dto.CreateMaterialRequest{Name: "Toalla"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSpaDetail_IncluyeCatalogo(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	spa := e.createSpa(t, "Luna Spa", "Centro", "")
	svc, err := e.services.Create(ctx, e.admin, dto.CreateServiceRequest{Name: "Manicure", RefPrice: dec(20)})
	require.NoError(t, err)
	_, err = e.services.Associate(ctx, e.admin, spa.ID, svc.ID, dto.AssociateServiceRequest{})
	require.NoError(t, err)
	mat, err := e.materials.Create(ctx, e.admin, dto.CreateMaterialRequest{Name: "Esmalte"})
	require.NoError(t, err)
	_, err = e.materials.Associate(ctx, e.admin, spa.ID, mat.ID)
	require.NoError(t, err)

	detail, err := e.spas.GetDetail(ctx, nil, spa.ID, false)
	require.NoError(t, err)
	assert.Len(t, detail.Services, 1)
	assert.Len(t, detail.Materials, 1)
	assert.Empty(t, detail.Reviews)
}
