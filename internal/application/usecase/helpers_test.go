package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/application/usecase"
	"github.com/jhoicas/belleza-api/internal/domain/access"
	"github.com/jhoicas/belleza-api/internal/domain/entity"
	"github.com/jhoicas/belleza-api/internal/testutil/memstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type stubPDF struct {
	rows []dto.AverageRatingDTO
}

func (s *stubPDF) GenerateAverageReportPDF(_ context.Context, rows []dto.AverageRatingDTO, _ time.Time) ([]byte, error) {
	s.rows = rows
	return []byte("%PDF-stub"), nil
}

type env struct {
	store      *memstore.Store
	spas       *usecase.SpaUseCase
	services   *usecase.ServiceUseCase
	materials  *usecase.MaterialUseCase
	users      *usecase.UserUseCase
	reports    *usecase.ReportUseCase
	pdf        *stubPDF
	admin      access.Principal
	adminSpa   access.Principal
	otherAdmin access.Principal
	cliente    access.Principal
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memstore.New()
	pdf := &stubPDF{}
	return &env{
		store:      store,
		spas:       usecase.NewSpaUseCase(store.Spas(), store.Users(), store.SpaServices(), store.SpaMaterials(), store.Reviews()),
		services:   usecase.NewServiceUseCase(store.Services(), store.Spas(), store.SpaServices(), store),
		materials:  usecase.NewMaterialUseCase(store.Materials(), store.Spas(), store.SpaMaterials(), store),
		users:      usecase.NewUserUseCase(store.Users()),
		reports:    usecase.NewReportUseCase(store.Reports(), pdf),
		pdf:        pdf,
		admin:      seedUser(t, store, "Admin", entity.RoleAdminPrincipal),
		adminSpa:   seedUser(t, store, "Marta", entity.RoleAdminSpa),
		otherAdmin: seedUser(t, store, "Pedro", entity.RoleAdminSpa),
		cliente:    seedUser(t, store, "Ana", entity.RoleUsuario),
	}
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

// createSpa crea un spa como admin_principal; owner vacío deja el spa sin admin_spa.
func (e *env) createSpa(t *testing.T, name, zone, owner string) *dto.SpaResponse {
	t.Helper()
	in := dto.CreateSpaRequest{Name: name, Address: "Calle 1", Zone: zone}
	if owner != "" {
		in.AdminSpaID = &owner
	}
	out, err := e.spas.Create(context.Background(), e.admin, in)
	require.NoError(t, err)
	return out
}

func dec(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}
