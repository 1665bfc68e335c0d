package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/belleza-api/internal/application/auth"
	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/domain"
	"github.com/jhoicas/belleza-api/internal/domain/access"
	"github.com/jhoicas/belleza-api/internal/domain/entity"
	"github.com/jhoicas/belleza-api/internal/domain/repository"
)

// UserUseCase consulta y activación de usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios (activos e inactivos). Solo admin_principal.
// role filtra por rol ("cliente" equivale a usuario); vacío lista todos.
func (uc *UserUseCase) List(ctx context.Context, actor access.Principal, role string, limit, offset int) ([]dto.UserResponse, error) {
	if !actor.Can(access.ActionManageUsers, false) {
		return nil, fmt.Errorf("%w: solo admin_principal puede listar usuarios", domain.ErrForbidden)
	}
	var filter entity.Role
	if strings.TrimSpace(role) != "" {
		parsed, ok := entity.ParseRole(role)
		if !ok {
			return nil, fmt.Errorf("%w: rol %q no existe", domain.ErrInvalidInput, role)
		}
		filter = parsed
	}
	users, err := uc.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// GetByID el propio usuario o admin_principal.
func (uc *UserUseCase) GetByID(ctx context.Context, actor access.Principal, id string) (*dto.UserResponse, error) {
	if actor.UserID != id && !actor.Can(access.ActionManageUsers, false) {
		return nil, fmt.Errorf("%w: no autorizado para ver este usuario", domain.ErrForbidden)
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// SetActive activa o desactiva un usuario. Solo admin_principal y nunca sobre sí mismo.
func (uc *UserUseCase) SetActive(ctx context.Context, actor access.Principal, id string, active bool) (*dto.UserResponse, error) {
	if !actor.Can(access.ActionManageUsers, false) {
		return nil, fmt.Errorf("%w: solo admin_principal puede activar o desactivar usuarios", domain.ErrForbidden)
	}
	if actor.UserID == id && !active {
		return nil, fmt.Errorf("%w: no puedes desactivar tu propia cuenta", domain.ErrConflict)
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := uc.repo.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	user.Active = active
	return auth.ToUserResponse(user), nil
}
