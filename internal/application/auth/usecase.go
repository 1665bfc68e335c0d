package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/domain"
	"github.com/jhoicas/belleza-api/internal/domain/access"
	"github.com/jhoicas/belleza-api/internal/domain/entity"
	"github.com/jhoicas/belleza-api/internal/domain/repository"
	"github.com/jhoicas/belleza-api/pkg/jwt"
	"github.com/jhoicas/belleza-api/pkg/password"
	"github.com/jhoicas/belleza-api/pkg/textnorm"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// AuthUseCase casos de uso de autenticación: registro, login, alta de administradores y
// resolución del token de cada petición.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario con rol usuario. ErrEmailAlreadyExists si el correo ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	return uc.createUser(ctx, in, entity.RoleUsuario)
}

// CreateAdminSpa da de alta un admin_spa. Solo admin_principal.
func (uc *AuthUseCase) CreateAdminSpa(ctx context.Context, actor access.Principal, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if !actor.Can(access.ActionManageUsers, false) {
		return nil, fmt.Errorf("%w: solo admin_principal puede crear administradores de spa", domain.ErrForbidden)
	}
	return uc.createUser(ctx, in, entity.RoleAdminSpa)
}

// BootstrapAdmin crea el primer admin_principal. Falla con ErrConflict si ya existe uno.
func (uc *AuthUseCase) BootstrapAdmin(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	exists, err := uc.userRepo.ExistsWithRole(ctx, entity.RoleAdminPrincipal)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: ya existe un administrador principal registrado", domain.ErrConflict)
	}
	out, err := uc.createUser(ctx, in, entity.RoleAdminPrincipal)
	if errors.Is(err, domain.ErrDuplicate) {
		// índice único parcial sobre rol=admin_principal: otra petición ganó la carrera
		return nil, fmt.Errorf("%w: ya existe un administrador principal registrado", domain.ErrConflict)
	}
	return out, err
}

func (uc *AuthUseCase) createUser(ctx context.Context, in dto.RegisterRequest, role entity.Role) (*dto.UserResponse, error) {
	email := normalizeEmail(in.Email)
	name := textnorm.Name(in.Name)
	if email == "" || name == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: nombre, correo y contrasena son requeridos", domain.ErrInvalidInput)
	}
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica correo/contraseña y emite un token bearer.
// Correo desconocido y contraseña incorrecta devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || !password.Verify(in.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: correo o contraseña incorrectos", domain.ErrUnauthorized)
	}
	if !user.Active {
		return nil, domain.ErrInactiveUser
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.TTL)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        string(user.Role),
		Message:     "Inicio de sesión exitoso como " + string(user.Role),
		User:        *ToUserResponse(user),
	}, nil
}

// Authenticate resuelve el token a un principal: firma y expiración válidas, usuario existente y activo.
// El rol se toma de la DB, no del token, para que un cambio de rol o una desactivación apliquen de inmediato.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (access.Principal, error) {
	userID, _, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return access.Principal{}, fmt.Errorf("%w: token inválido o expirado", domain.ErrUnauthorized)
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return access.Principal{}, err
	}
	if user == nil {
		return access.Principal{}, fmt.Errorf("%w: usuario del token no existe", domain.ErrUnauthorized)
	}
	if !user.Active {
		return access.Principal{}, fmt.Errorf("%w: usuario inactivo", domain.ErrUnauthorized)
	}
	return access.Principal{UserID: user.ID, Role: user.Role}, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ToUserResponse convierte la entidad a DTO (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
