package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/domain/entity"
)

// RequireRole corta con 403 si el rol del principal no está entre los permitidos.
// Debe usarse DESPUÉS de AuthMiddleware. Es un filtro grueso por ruta; la decisión
// fina (propiedad del spa o de la reseña) la toma la política de acceso en el caso de uso.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := entity.Role(GetRole(c))
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "usuario no autenticado",
			})
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "el rol '" + string(role) + "' no tiene acceso a este recurso",
		})
	}
}
