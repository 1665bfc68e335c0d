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

// ServiceUseCase catálogo de servicios y su asociación a spas.
type ServiceUseCase struct {
	repo           repository.ServiceRepository
	spaRepo        repository.SpaRepository
	spaServiceRepo repository.SpaServiceRepository
	txRunner       CatalogTxRunner
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(
	repo repository.ServiceRepository,
	spaRepo repository.SpaRepository,
	spaServiceRepo repository.SpaServiceRepository,
	txRunner CatalogTxRunner,
) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, spaRepo: spaRepo, spaServiceRepo: spaServiceRepo, txRunner: txRunner}
}

// Create crea un servicio base. Solo admin_principal.
func (uc *ServiceUseCase) Create(ctx context.Context, actor access.Principal, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if !actor.Can(access.ActionManageService, false) {
		return nil, fmt.Errorf("%w: solo admin_principal puede gestionar servicios", domain.ErrForbidden)
	}
	name := textnorm.Name(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre del servicio es requerido", domain.ErrInvalidInput)
	}
	if !validPrice(in.RefPrice) {
		return nil, fmt.Errorf("%w: precio_ref debe ser mayor que 0", domain.ErrInvalidInput)
	}
	if err := uc.ensureNameFree(ctx, name, ""); err != nil {
		return nil, err
	}
	service := &entity.Service{
		ID:          uuid.New().String(),
		Name:        name,
		Description: in.Description,
		RefDuration: textnorm.Name(in.RefDuration),
		RefPrice:    in.RefPrice,
		Active:      true,
	}
	if err := uc.repo.Create(ctx, service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// List servicios activos; includeInactive solo admin_principal.
func (uc *ServiceUseCase) List(ctx context.Context, actor access.Principal, includeInactive bool) ([]dto.ServiceResponse, error) {
	if includeInactive && !actor.Can(access.ActionViewInactive, false) {
		return nil, fmt.Errorf("%w: solo admin_principal puede ver servicios inactivos", domain.ErrForbidden)
	}
	list, err := uc.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toServiceResponse(s))
	}
	return out, nil
}

// GetByID un servicio inactivo solo es visible para admin_principal.
func (uc *ServiceUseCase) GetByID(ctx context.Context, actor access.Principal, id string) (*dto.ServiceResponse, error) {
	service, err := uc.visible(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// Update actualización parcial. Solo admin_principal.
func (uc *ServiceUseCase) Update(ctx context.Context, actor access.Principal, id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if !actor.Can(access.ActionManageService, false) {
		return nil, fmt.Errorf("%w: solo admin_principal puede gestionar servicios", domain.ErrForbidden)
	}
	service, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, fmt.Errorf("%w: servicio %s", domain.ErrNotFound, id)
	}
	if in.Name != nil {
		name := textnorm.Name(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: el nombre del servicio no puede quedar vacío", domain.ErrInvalidInput)
		}
		if err := uc.ensureNameFree(ctx, name, service.ID); err != nil {
			return nil, err
		}
		service.Name = name
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.RefDuration != nil {
		service.RefDuration = textnorm.Name(*in.RefDuration)
	}
	if in.RefPrice != nil {
		if !validPrice(in.RefPrice) {
			return nil, fmt.Errorf("%w: precio_ref debe ser mayor que 0", domain.ErrInvalidInput)
		}
		service.RefPrice = in.RefPrice
	}
	if err := uc.repo.Update(ctx, service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// Delete desactiva el servicio y todas sus asociaciones en una sola transacción.
func (uc *ServiceUseCase) Delete(ctx context.Context, actor access.Principal, id string) error {
	if !actor.Can(access.ActionManageService, false) {
		return fmt.Errorf("%w: solo admin_principal puede gestionar servicios", domain.ErrForbidden)
	}
	return uc.txRunner.RunCatalog(ctx, func(
		serviceRepo repository.ServiceRepository,
		_ repository.MaterialRepository,
		spaServiceRepo repository.SpaServiceRepository,
		_ repository.SpaMaterialRepository,
	) error {
		service, err := serviceRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if service == nil || !service.Active {
			return fmt.Errorf("%w: servicio %s", domain.ErrNotFound, id)
		}
		if err := serviceRepo.SetActive(ctx, id, false); err != nil {
			return err
		}
		return spaServiceRepo.DeactivateByService(ctx, id)
	})
}

// Associate ofrece el servicio en el spa con precio y duración propios.
// Un par activo responde Conflict; uno desactivado se reactiva con los valores nuevos.
func (uc *ServiceUseCase) Associate(ctx context.Context, actor access.Principal, spaID, serviceID string, in dto.AssociateServiceRequest) ([]dto.SpaServiceResponse, error) {
	spa, err := uc.activeSpa(ctx, spaID)
	if err != nil {
		return nil, err
	}
	if !actor.Can(access.ActionAssociateToSpa, spa.IsOwnedBy(actor.UserID)) {
		return nil, fmt.Errorf("%w: no eres administrador de este spa", domain.ErrForbidden)
	}
	service, err := uc.repo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil || !service.Active {
		return nil, fmt.Errorf("%w: servicio %s", domain.ErrNotFound, serviceID)
	}
	if !validPrice(in.Price) {
		return nil, fmt.Errorf("%w: precio debe ser mayor que 0", domain.ErrInvalidInput)
	}
	assoc := &entity.SpaService{
		SpaID:     spaID,
		ServiceID: serviceID,
		Price:     in.Price,
		Duration:  textnorm.Name(in.Duration),
		Active:    true,
	}
	existing, err := uc.spaServiceRepo.Get(ctx, spaID, serviceID)
	if err != nil {
		return nil, err
	}
	switch {
	case existing == nil:
		err = uc.spaServiceRepo.Create(ctx, assoc)
	case existing.Active:
		return nil, fmt.Errorf("%w: el servicio ya está asociado a este spa", domain.ErrConflict)
	default:
		err = uc.spaServiceRepo.Update(ctx, assoc)
	}
	if err != nil {
		return nil, err
	}
	return uc.listBySpa(ctx, spaID)
}

// Disassociate retira (soft) el servicio del spa.
func (uc *ServiceUseCase) Disassociate(ctx context.Context, actor access.Principal, spaID, serviceID string) error {
	spa, err := uc.activeSpa(ctx, spaID)
	if err != nil {
		return err
	}
	if !actor.Can(access.ActionAssociateToSpa, spa.IsOwnedBy(actor.UserID)) {
		return fmt.Errorf("%w: no eres administrador de este spa", domain.ErrForbidden)
	}
	existing, err := uc.spaServiceRepo.Get(ctx, spaID, serviceID)
	if err != nil {
		return err
	}
	if existing == nil || !existing.Active {
		return fmt.Errorf("%w: el servicio no está asociado a este spa", domain.ErrNotFound)
	}
	existing.Active = false
	return uc.spaServiceRepo.Update(ctx, existing)
}

// ListBySpa servicios activos ofrecidos por un spa activo. Endpoint público.
func (uc *ServiceUseCase) ListBySpa(ctx context.Context, spaID string) ([]dto.SpaServiceResponse, error) {
	if _, err := uc.activeSpa(ctx, spaID); err != nil {
		return nil, err
	}
	return uc.listBySpa(ctx, spaID)
}

func (uc *ServiceUseCase) listBySpa(ctx context.Context, spaID string) ([]dto.SpaServiceResponse, error) {
	rows, err := uc.spaServiceRepo.ListBySpa(ctx, spaID)
	if err != nil {
		return nil, err
	}
	return toSpaServiceResponses(rows), nil
}

func (uc *ServiceUseCase) activeSpa(ctx context.Context, spaID string) (*entity.Spa, error) {
	spa, err := uc.spaRepo.GetByID(ctx, spaID)
	if err != nil {
		return nil, err
	}
	if spa == nil || !spa.Active {
		return nil, fmt.Errorf("%w: spa %s", domain.ErrNotFound, spaID)
	}
	return spa, nil
}

func (uc *ServiceUseCase) visible(ctx context.Context, actor access.Principal, id string) (*entity.Service, error) {
	service, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil || (!service.Active && !actor.Can(access.ActionViewInactive, false)) {
		return nil, fmt.Errorf("%w: servicio %s", domain.ErrNotFound, id)
	}
	return service, nil
}

func (uc *ServiceUseCase) ensureNameFree(ctx context.Context, name, selfID string) error {
	other, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return fmt.Errorf("%w: ya existe un servicio llamado %q", domain.ErrDuplicate, name)
	}
	return nil
}
