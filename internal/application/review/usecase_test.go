package review_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/application/review"
	"github.com/jhoicas/belleza-api/internal/domain"
	"github.com/jhoicas/belleza-api/internal/domain/access"
	"github.com/jhoicas/belleza-api/internal/domain/entity"
	"github.com/jhoicas/belleza-api/internal/testutil/memstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store *memstore.Store
	uc    *review.UseCase
	admin access.Principal
	ana   access.Principal
	luis  access.Principal
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	f := &fixture{
		store: store,
		uc:    review.NewUseCase(store.Reviews(), store.Spas(), store),
		admin: seedUser(t, store, "Admin", entity.RoleAdminPrincipal),
		ana:   seedUser(t, store, "Ana", entity.RoleUsuario),
		luis:  seedUser(t, store, "Luis", entity.RoleUsuario),
	}
	return f
}

func seedUser(t *testing.T, store *memstore.Store, name string, role entity.Role) access.Principal {
	t.Helper()
	u := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        name + "@belleza.test",
		PasswordHash: "x",
		Role:         role,
		Active:       true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, store.Users().Create(context.Background(), u))
	return access.Principal{UserID: u.ID, Role: role}
}

func seedSpa(t *testing.T, store *memstore.Store, name string) string {
	t.Helper()
	spa := &entity.Spa{
		ID:          uuid.New().String(),
		Name:        name,
		Zone:        "Centro",
		Active:      true,
		LastUpdated: time.Now(),
		CreatedAt:   time.Now(),
	}
	require.NoError(t, store.Spas().Create(context.Background(), spa))
	return spa.ID
}

func spaAverage(t *testing.T, store *memstore.Store, id string) float64 {
	t.Helper()
	spa, err := store.Spas().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, spa)
	return spa.AverageRating
}

func intPtr(v int) *int { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateUpdateDelete_PromedioSigueLasReseñasActivas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	spaID := seedSpa(t, f.store, "Luna Spa")

	created, err := f.uc.Create(ctx, f.ana, dto.CreateReviewRequest{SpaID: spaID, Rating: 4, Comment: "bien"})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, created.AverageRating, 0.001)
	assert.Equal(t, "Ana", created.Review.UserName)
	assert.Equal(t, "Luna Spa", created.Review.SpaName)

	updated, err := f.uc.Update(ctx, f.ana, created.Review.ID, dto.UpdateReviewRequest{Rating: intPtr(2)})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, updated.AverageRating, 0.001)
	assert.InDelta(t, 2.0, spaAverage(t, f.store, spaID), 0.001)

	avg, err := f.uc.Delete(ctx, f.ana, created.Review.ID)
	require.NoError(t, err)
	assert.Zero(t, avg)
	assert.Zero(t, spaAverage(t, f.store, spaID))

	// la fila queda, inactiva
	assert.Equal(t, 1, f.store.ReviewCount())
	all, err := f.uc.ListAll(ctx, f.admin)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].Active)
}

func TestCreate_PromedioRedondeadoADosDecimales(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	spaID := seedSpa(t, f.store, "Luna Spa")

	_, err := f.uc.Create(ctx, f.ana, dto.CreateReviewRequest{SpaID: spaID, Rating: 5})
	require.NoError(t, err)
	_, err = f.uc.Create(ctx, f.luis, dto.CreateReviewRequest{SpaID: spaID, Rating: 4})
	require.NoError(t, err)
	out, err := f.uc.Create(ctx, f.ana, dto.CreateReviewRequest{SpaID: spaID, Rating: 4})
	require.NoError(t, err)

	assert.Equal(t, 4.33, out.AverageRating)
}

func TestCreate_CalificacionInvalidaNoPersiste(t *testing.T) {
	f := newFixture(t)
	spaID := seedSpa(t, f.store, "Luna Spa")

	for _, r := range []int{0, 6, -1} {
		_, err := f.uc.Create(context.Background(), f.ana, dto.CreateReviewRequest{SpaID: spaID, Rating: r})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "calificación %d", r)
	}
	assert.Zero(t, f.store.ReviewCount())
	assert.Zero(t, spaAverage(t, f.store, spaID))
}

func TestCreate_SoloRolUsuario(t *testing.T) {
	f := newFixture(t)
	spaID := seedSpa(t, f.store, "Luna Spa")

	_, err := f.uc.Create(context.Background(), f.admin, dto.CreateReviewRequest{SpaID: spaID, Rating: 5})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, f.store.ReviewCount())
}

func TestCreate_SpaInexistenteOInactivo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, f.ana, dto.CreateReviewRequest{SpaID: uuid.New().String(), Rating: 5})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	spaID := seedSpa(t, f.store, "Luna Spa")
	require.NoError(t, f.store.Spas().SetActive(ctx, spaID, false, time.Now()))
	_, err = f.uc.Create(ctx, f.ana, dto.CreateReviewRequest{SpaID: spaID, Rating: 5})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, f.store.ReviewCount())
}

func TestDelete_ReseñaDeOtroUsuarioProhibido(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	spaID := seedSpa(t, f.store, "Luna Spa")

	created, err := f.uc.Create(ctx, f.ana, dto.CreateReviewRequest{SpaID: spaID, Rating: 3})
	require.NoError(t, err)

	_, err = f.uc.Delete(ctx, f.luis, created.Review.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.Update(ctx, f.luis, created.Review.ID, dto.UpdateReviewRequest{Rating: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.InDelta(t, 3.0, spaAverage(t, f.store, spaID), 0.001)

	// admin_principal sí puede
	avg, err := f.uc.Delete(ctx, f.admin, created.Review.ID)
	require.NoError(t, err)
	assert.Zero(t, avg)
}

func TestUpdate_CambioDeSpaRecalculaAmbos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	luna := seedSpa(t, f.store, "Luna Spa")
	sol := seedSpa(t, f.store, "Sol Spa")

	_, err := f.uc.Create(ctx, f.luis, dto.CreateReviewRequest{SpaID: luna, Rating: 2})
	require.NoError(t, err)
	moved, err := f.uc.Create(ctx, f.ana, dto.CreateReviewRequest{SpaID: luna, Rating: 5})
	require.NoError(t, err)
	assert.InDelta(t, 3.5, spaAverage(t, f.store, luna), 0.001)

	out, err := f.uc.Update(ctx, f.ana, moved.Review.ID, dto.UpdateReviewRequest{SpaID: &sol})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, out.AverageRating, 0.001)
	assert.InDelta(t, 2.0, spaAverage(t, f.store, luna), 0.001)
	assert.InDelta(t, 5.0, spaAverage(t, f.store, sol), 0.001)
}

func TestUpdate_CalificacionInvalidaNoCambiaNada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	spaID := seedSpa(t, f.store, "Luna Spa")

	created, err := f.uc.Create(ctx, f.ana, dto.CreateReviewRequest{SpaID: spaID, Rating: 4})
	require.NoError(t, err)

	_, err = f.uc.Update(ctx, f.ana, created.Review.ID, dto.UpdateReviewRequest{Rating: intPtr(9)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := f.uc.Get(ctx, f.ana, created.Review.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Rating)
}

func TestListBySpa_SoloActivasYOrdenadas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	spaID := seedSpa(t, f.store, "Luna Spa")

	first, err := f.uc.Create(ctx, f.ana, dto.CreateReviewRequest{SpaID: spaID, Rating: 4})
	require.NoError(t, err)
	_, err = f.uc.Create(ctx, f.luis, dto.CreateReviewRequest{SpaID: spaID, Rating: 5})
	require.NoError(t, err)
	_, err = f.uc.Delete(ctx, f.ana, first.Review.ID)
	require.NoError(t, err)

	rows, err := f.uc.ListBySpa(ctx, spaID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Luis", rows[0].UserName)

	mine, err := f.uc.ListMine(ctx, f.ana)
	require.NoError(t, err)
	assert.Empty(t, mine)

	_, err = f.uc.ListAll(ctx, f.ana)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
