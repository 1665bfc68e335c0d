package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/domain"
	"github.com/jhoicas/belleza-api/internal/domain/access"
	"github.com/jhoicas/belleza-api/internal/domain/entity"
	"github.com/jhoicas/belleza-api/internal/domain/repository"
	"github.com/jhoicas/belleza-api/pkg/textnorm"
)

// SpaUseCase casos de uso del directorio de spas.
type SpaUseCase struct {
	spaRepo         repository.SpaRepository
	userRepo        repository.UserRepository
	spaServiceRepo  repository.SpaServiceRepository
	spaMaterialRepo repository.SpaMaterialRepository
	reviewRepo      repository.ReviewRepository
}

// NewSpaUseCase construye el caso de uso. Los repos de asociaciones y reseñas alimentan el detalle.
func NewSpaUseCase(
	spaRepo repository.SpaRepository,
	userRepo repository.UserRepository,
	spaServiceRepo repository.SpaServiceRepository,
	spaMaterialRepo repository.SpaMaterialRepository,
	reviewRepo repository.ReviewRepository,
) *SpaUseCase {
	return &SpaUseCase{
		spaRepo:         spaRepo,
		userRepo:        userRepo,
		spaServiceRepo:  spaServiceRepo,
		spaMaterialRepo: spaMaterialRepo,
		reviewRepo:      reviewRepo,
	}
}

// Create crea un spa activo con promedio 0. Solo admin_principal.
func (uc *SpaUseCase) Create(ctx context.Context, actor access.Principal, in dto.CreateSpaRequest) (*dto.SpaResponse, error) {
	if !actor.Can(access.ActionCreateSpa, false) {
		return nil, fmt.Errorf("%w: solo admin_principal puede crear spas", domain.ErrForbidden)
	}
	name := textnorm.Name(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre del spa es requerido", domain.ErrInvalidInput)
	}
	if err := uc.ensureNameFree(ctx, name, ""); err != nil {
		return nil, err
	}
	if in.AdminSpaID != nil {
		if err := uc.ensureOwnerAssignable(ctx, *in.AdminSpaID, ""); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	spa := &entity.Spa{
		ID:          uuid.New().String(),
		Name:        name,
		Address:     textnorm.Name(in.Address),
		Zone:        textnorm.Name(in.Zone),
		Schedule:    textnorm.Name(in.Schedule),
		Active:      true,
		LastUpdated: now,
		AdminSpaID:  in.AdminSpaID,
		CreatedAt:   now,
	}
	if err := uc.spaRepo.Create(ctx, spa); err != nil {
		return nil, err
	}
	return toSpaResponse(spa), nil
}

// List lista spas activos. includeInactive solo para admin_principal; un admin_spa ve además el suyo aunque esté inactivo.
func (uc *SpaUseCase) List(ctx context.Context, actor access.Principal, includeInactive bool) ([]dto.SpaResponse, error) {
	if includeInactive && !actor.Can(access.ActionViewInactive, false) {
		return nil, fmt.Errorf("%w: solo admin_principal puede ver spas inactivos", domain.ErrForbidden)
	}
	filter := repository.SpaFilter{IncludeInactive: includeInactive}
	if actor.Role == entity.RoleAdminSpa {
		filter.OwnerID = actor.UserID
	}
	spas, err := uc.spaRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toSpaResponses(spas), nil
}

// Search buscador público: coincidencia parcial por nombre y zona, sin distinguir mayúsculas ni tildes.
func (uc *SpaUseCase) Search(ctx context.Context, in dto.SpaSearchRequest) ([]dto.SpaResponse, error) {
	spas, err := uc.spaRepo.List(ctx, repository.SpaFilter{})
	if err != nil {
		return nil, err
	}
	matched := make([]*entity.Spa, 0, len(spas))
	for _, s := range spas {
		if textnorm.Contains(s.Name, in.Name) && textnorm.Contains(s.Zone, in.Zone) {
			matched = append(matched, s)
		}
	}
	return toSpaResponses(matched), nil
}

// GetDetail spa con servicios, materiales y reseñas activas. actor es nil en peticiones anónimas.
// Un spa inactivo responde NotFound salvo para admin_principal con includeInactive o para su admin_spa.
func (uc *SpaUseCase) GetDetail(ctx context.Context, actor *access.Principal, id string, includeInactive bool) (*dto.SpaDetailResponse, error) {
	if includeInactive && (actor == nil || !actor.Can(access.ActionViewInactive, false)) {
		return nil, fmt.Errorf("%w: solo admin_principal puede ver spas inactivos", domain.ErrForbidden)
	}
	spa, err := uc.spaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if spa == nil || (!spa.Active && !includeInactive && !(actor != nil && spa.IsOwnedBy(actor.UserID))) {
		return nil, fmt.Errorf("%w: spa %s", domain.ErrNotFound, id)
	}
	services, err := uc.spaServiceRepo.ListBySpa(ctx, id)
	if err != nil {
		return nil, err
	}
	materials, err := uc.spaMaterialRepo.ListBySpa(ctx, id)
	if err != nil {
		return nil, err
	}
	reviews, err := uc.reviewRepo.ListBySpa(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SpaDetailResponse{
		SpaResponse: *toSpaResponse(spa),
		Services:    toSpaServiceResponses(services),
		Materials:   toSpaMaterialResponses(materials),
		Reviews:     ToReviewResponses(reviews),
	}, nil
}

// Update aplica solo los campos presentes. admin_principal o el admin_spa dueño; el dueño solo lo reasigna admin_principal.
func (uc *SpaUseCase) Update(ctx context.Context, actor access.Principal, id string, in dto.UpdateSpaRequest) (*dto.SpaResponse, error) {
	spa, err := uc.spaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if spa == nil || (!spa.Active && !actor.Can(access.ActionViewInactive, false)) {
		return nil, fmt.Errorf("%w: spa %s", domain.ErrNotFound, id)
	}
	if !actor.Can(access.ActionUpdateSpa, spa.IsOwnedBy(actor.UserID)) {
		return nil, fmt.Errorf("%w: no eres administrador de este spa", domain.ErrForbidden)
	}
	if in.Name != nil {
		name := textnorm.Name(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: el nombre del spa no puede quedar vacío", domain.ErrInvalidInput)
		}
		if spa.Active {
			if err := uc.ensureNameFree(ctx, name, spa.ID); err != nil {
				return nil, err
			}
		}
		spa.Name = name
	}
	if in.Address != nil {
		spa.Address = textnorm.Name(*in.Address)
	}
	if in.Zone != nil {
		spa.Zone = textnorm.Name(*in.Zone)
	}
	if in.Schedule != nil {
		spa.Schedule = textnorm.Name(*in.Schedule)
	}
	if in.AdminSpaID != nil {
		if actor.Role != entity.RoleAdminPrincipal {
			return nil, fmt.Errorf("%w: solo admin_principal puede reasignar el dueño del spa", domain.ErrForbidden)
		}
		if err := uc.ensureOwnerAssignable(ctx, *in.AdminSpaID, spa.ID); err != nil {
			return nil, err
		}
		spa.AdminSpaID = in.AdminSpaID
	}
	spa.LastUpdated = time.Now()
	if err := uc.spaRepo.Update(ctx, spa); err != nil {
		return nil, err
	}
	return toSpaResponse(spa), nil
}

// Delete desactiva el spa (soft delete). Solo admin_principal.
func (uc *SpaUseCase) Delete(ctx context.Context, actor access.Principal, id string) error {
	if !actor.Can(access.ActionDeleteSpa, false) {
		return fmt.Errorf("%w: solo admin_principal puede desactivar spas", domain.ErrForbidden)
	}
	spa, err := uc.spaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if spa == nil || !spa.Active {
		return fmt.Errorf("%w: spa %s", domain.ErrNotFound, id)
	}
	return uc.spaRepo.SetActive(ctx, id, false, time.Now())
}

// Restore reactiva un spa. ErrConflict si otro spa activo tomó su nombre mientras estaba inactivo.
func (uc *SpaUseCase) Restore(ctx context.Context, actor access.Principal, id string) (*dto.SpaResponse, error) {
	if !actor.Can(access.ActionRestoreSpa, false) {
		return nil, fmt.Errorf("%w: solo admin_principal puede restaurar spas", domain.ErrForbidden)
	}
	spa, err := uc.spaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if spa == nil {
		return nil, fmt.Errorf("%w: spa %s", domain.ErrNotFound, id)
	}
	if spa.Active {
		return nil, fmt.Errorf("%w: el spa ya está activo", domain.ErrConflict)
	}
	taken, err := uc.spaRepo.GetActiveByName(ctx, spa.Name)
	if err != nil {
		return nil, err
	}
	if taken != nil {
		return nil, fmt.Errorf("%w: ya existe un spa activo llamado %q", domain.ErrConflict, spa.Name)
	}
	now := time.Now()
	if err := uc.spaRepo.SetActive(ctx, id, true, now); err != nil {
		return nil, err
	}
	spa.Active = true
	spa.LastUpdated = now
	return toSpaResponse(spa), nil
}

func (uc *SpaUseCase) ensureNameFree(ctx context.Context, name, selfID string) error {
	other, err := uc.spaRepo.GetActiveByName(ctx, name)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return fmt.Errorf("%w: ya existe un spa activo llamado %q", domain.ErrDuplicate, name)
	}
	return nil
}

// ensureOwnerAssignable el usuario debe ser un admin_spa activo sin otro spa asignado.
func (uc *SpaUseCase) ensureOwnerAssignable(ctx context.Context, userID, spaID string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || !user.Active || user.Role != entity.RoleAdminSpa {
		return fmt.Errorf("%w: admin_spa_id debe ser un admin_spa activo", domain.ErrInvalidInput)
	}
	owned, err := uc.spaRepo.GetByAdminSpa(ctx, userID)
	if err != nil {
		return err
	}
	if owned != nil && owned.ID != spaID {
		return fmt.Errorf("%w: el admin_spa ya administra el spa %q", domain.ErrConflict, owned.Name)
	}
	return nil
}

func toSpaResponses(spas []*entity.Spa) []dto.SpaResponse {
	out := make([]dto.SpaResponse, 0, len(spas))
	for _, s := range spas {
		out = append(out, *toSpaResponse(s))
	}
	return out
}
