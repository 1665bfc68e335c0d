package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/domain"
	"github.com/jhoicas/belleza-api/internal/domain/access"
	"github.com/jhoicas/belleza-api/internal/domain/entity"
)

// Locals keys para el principal autenticado en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// authenticator es el contrato mínimo que necesita el middleware para resolver el token.
// Lo implementa *auth.AuthUseCase; el uso de interfaz permite dobles en tests.
type authenticator interface {
	Authenticate(ctx context.Context, token string) (access.Principal, error)
}

// AuthMiddleware exige Bearer Token: firma y expiración válidas, usuario existente y activo.
// Deja UserID y rol (leído de la DB) en c.Locals.
func AuthMiddleware(a authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		token, ok := bearerToken(authHeader)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		principal, err := a.Authenticate(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido, expirado o de un usuario inactivo"})
			}
			return respondError(c, err)
		}
		setPrincipal(c, principal)
		return c.Next()
	}
}

// OptionalAuth resuelve el token si viene; sin cabecera la petición sigue como anónima.
// Un token presente pero inválido sí responde 401.
func OptionalAuth(a authenticator) fiber.Handler {
	required := AuthMiddleware(a)
	return func(c *fiber.Ctx) error {
		if c.Get("Authorization") == "" {
			return c.Next()
		}
		return required(c)
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func setPrincipal(c *fiber.Ctx, p access.Principal) {
	c.Locals(LocalUserID, p.UserID)
	c.Locals(LocalRole, string(p.Role))
}

// GetPrincipal devuelve el principal del contexto; ok=false en peticiones anónimas.
func GetPrincipal(c *fiber.Ctx) (access.Principal, bool) {
	userID := GetUserID(c)
	if userID == "" {
		return access.Principal{}, false
	}
	return access.Principal{UserID: userID, Role: entity.Role(GetRole(c))}, true
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
