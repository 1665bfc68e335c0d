package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/domain"
	"github.com/jhoicas/belleza-api/internal/domain/access"
	"github.com/jhoicas/belleza-api/internal/domain/entity"
	"github.com/jhoicas/belleza-api/internal/domain/repository"
	"github.com/jhoicas/belleza-api/pkg/textnorm"
)

// MaterialUseCase catálogo de materiales y su uso por los spas.
type MaterialUseCase struct {
	repo            repository.MaterialRepository
	spaRepo         repository.SpaRepository
	spaMaterialRepo repository.SpaMaterialRepository
	txRunner        CatalogTxRunner
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(
	repo repository.MaterialRepository,
	spaRepo repository.SpaRepository,
	spaMaterialRepo repository.SpaMaterialRepository,
	txRunner CatalogTxRunner,
) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, spaRepo: spaRepo, spaMaterialRepo: spaMaterialRepo, txRunner: txRunner}
}

// Create crea un material. admin_principal o admin_spa.
func (uc *MaterialUseCase) Create(ctx context.Context, actor access.Principal, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if !actor.Can(access.ActionManageMaterial, false) {
		return nil, fmt.Errorf("%w: no autorizado para gestionar materiales", domain.ErrForbidden)
	}
	name := textnorm.Name(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre del material es requerido", domain.ErrInvalidInput)
	}
	if err := uc.ensureNameFree(ctx, name, ""); err != nil {
		return nil, err
	}
	material := &entity.Material{
		ID:     uuid.New().String(),
		Name:   name,
		Type:   textnorm.Name(in.Type),
		Active: true,
	}
	if err := uc.repo.Create(ctx, material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// List materiales activos; includeInactive solo admin_principal.
func (uc *MaterialUseCase) List(ctx context.Context, actor access.Principal, includeInactive bool) ([]dto.MaterialResponse, error) {
	if includeInactive && !actor.Can(access.ActionViewInactive, false) {
		return nil, fmt.Errorf("%w: solo admin_principal puede ver materiales inactivos", domain.ErrForbidden)
	}
	list, err := uc.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMaterialResponse(m))
	}
	return out, nil
}

// GetByID un material inactivo solo es visible para admin_principal.
func (uc *MaterialUseCase) GetByID(ctx context.Context, actor access.Principal, id string) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil || (!material.Active && !actor.Can(access.ActionViewInactive, false)) {
		return nil, fmt.Errorf("%w: material %s", domain.ErrNotFound, id)
	}
	return toMaterialResponse(material), nil
}

// Update actualización parcial. admin_principal o admin_spa.
func (uc *MaterialUseCase) Update(ctx context.Context, actor access.Principal, id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	if !actor.Can(access.ActionManageMaterial, false) {
		return nil, fmt.Errorf("%w: no autorizado para gestionar materiales", domain.ErrForbidden)
	}
	material, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil || (!material.Active && !actor.Can(access.ActionViewInactive, false)) {
		return nil, fmt.Errorf("%w: material %s", domain.ErrNotFound, id)
	}
	if in.Name != nil {
		name := textnorm.Name(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: el nombre del material no puede quedar vacío", domain.ErrInvalidInput)
		}
		if err := uc.ensureNameFree(ctx, name, material.ID); err != nil {
			return nil, err
		}
		material.Name = name
	}
	if in.Type != nil {
		material.Type = textnorm.Name(*in.Type)
	}
	if err := uc.repo.Update(ctx, material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// Delete desactiva el material y sus asociaciones con spas en una sola transacción.
func (uc *MaterialUseCase) Delete(ctx context.Context, actor access.Principal, id string) error {
	if !actor.Can(access.ActionManageMaterial, false) {
		return fmt.Errorf("%w: no autorizado para gestionar materiales", domain.ErrForbidden)
	}
	return uc.txRunner.RunCatalog(ctx, func(
		_ repository.ServiceRepository,
		materialRepo repository.MaterialRepository,
		_ repository.SpaServiceRepository,
		spaMaterialRepo repository.SpaMaterialRepository,
	) error {
		material, err := materialRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if material == nil || !material.Active {
			return fmt.Errorf("%w: material %s", domain.ErrNotFound, id)
		}
		if err := materialRepo.SetActive(ctx, id, false); err != nil {
			return err
		}
		return spaMaterialRepo.DeactivateByMaterial(ctx, id)
	})
}

// Associate registra que el spa usa el material. Par activo -> Conflict; par desactivado -> se reactiva.
func (uc *MaterialUseCase) Associate(ctx context.Context, actor access.Principal, spaID, materialID string) ([]dto.SpaMaterialResponse, error) {
	spa, err := uc.activeSpa(ctx, spaID)
	if err != nil {
		return nil, err
	}
	if !actor.Can(access.ActionAssociateToSpa, spa.IsOwnedBy(actor.UserID)) {
		return nil, fmt.Errorf("%w: no eres administrador de este spa", domain.ErrForbidden)
	}
	material, err := uc.repo.GetByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if material == nil || !material.Active {
		return nil, fmt.Errorf("%w: material %s", domain.ErrNotFound, materialID)
	}
	existing, err := uc.spaMaterialRepo.Get(ctx, spaID, materialID)
	if err != nil {
		return nil, err
	}
	switch {
	case existing == nil:
		err = uc.spaMaterialRepo.Create(ctx, &entity.SpaMaterial{SpaID: spaID, MaterialID: materialID, Active: true})
	case existing.Active:
		return nil, fmt.Errorf("%w: el material ya está asociado a este spa", domain.ErrConflict)
	default:
		err = uc.spaMaterialRepo.SetActive(ctx, spaID, materialID, true)
	}
	if err != nil {
		return nil, err
	}
	return uc.listBySpa(ctx, spaID)
}

// Disassociate retira (soft) el material del spa.
func (uc *MaterialUseCase) Disassociate(ctx context.Context, actor access.Principal, spaID, materialID string) error {
	spa, err := uc.activeSpa(ctx, spaID)
	if err != nil {
		return err
	}
	if !actor.Can(access.ActionAssociateToSpa, spa.IsOwnedBy(actor.UserID)) {
		return fmt.Errorf("%w: no eres administrador de este spa", domain.ErrForbidden)
	}
	existing, err := uc.spaMaterialRepo.Get(ctx, spaID, materialID)
	if err != nil {
		return err
	}
	if existing == nil || !existing.Active {
		return fmt.Errorf("%w: el material no está asociado a este spa", domain.ErrNotFound)
	}
	return uc.spaMaterialRepo.SetActive(ctx, spaID, materialID, false)
}

// ListBySpa materiales activos usados por un spa activo.
func (uc *MaterialUseCase) ListBySpa(ctx context.Context, spaID string) ([]dto.SpaMaterialResponse, error) {
	if _, err := uc.activeSpa(ctx, spaID); err != nil {
		return nil, err
	}
	return uc.listBySpa(ctx, spaID)
}

func (uc *MaterialUseCase) listBySpa(ctx context.Context, spaID string) ([]dto.SpaMaterialResponse, error) {
	rows, err := uc.spaMaterialRepo.ListBySpa(ctx, spaID)
	if err != nil {
		return nil, err
	}
	return toSpaMaterialResponses(rows), nil
}

func (uc *MaterialUseCase) activeSpa(ctx context.Context, spaID string) (*entity.Spa, error) {
	spa, err := uc.spaRepo.GetByID(ctx, spaID)
	if err != nil {
		return nil, err
	}
	if spa == nil || !spa.Active {
		return nil, fmt.Errorf("%w: spa %s", domain.ErrNotFound, spaID)
	}
	return spa, nil
}

func (uc *MaterialUseCase) ensureNameFree(ctx context.Context, name, selfID string) error {
	other, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return fmt.Errorf("%w: ya existe un material llamado %q", domain.ErrDuplicate, name)
	}
	return nil
}
