package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/application/review"
)

// ReviewHandler reseñas de spas.
type ReviewHandler struct {
	uc *review.UseCase
}

// NewReviewHandler construye el handler.
func NewReviewHandler(uc *review.UseCase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// Create godoc
// @Summary      Crear reseña
// @Description  Solo rol usuario. Recalcula el promedio del spa en la misma transacción.
// @Tags         resenas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReviewRequest  true  "spa_id, calificacion (1-5), comentario"
// @Success      201   {object}  dto.ReviewMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /resenas [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	var in dto.CreateReviewRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), actor, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListBySpa godoc
// @Summary      Reseñas activas de un spa
// @Tags         resenas
// @Security     Bearer
// @Produce      json
// @Param        spa_id  path  string  true  "ID del spa"
// @Success      200  {array}   dto.ReviewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /resenas/por_spa/{spa_id} [get]
func (h *ReviewHandler) ListBySpa(c *fiber.Ctx) error {
	spaID, err := paramID(c, "spa_id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListBySpa(c.UserContext(), spaID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Mis reseñas
// @Tags         resenas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReviewResponse
// @Router       /resenas/mias [get]
func (h *ReviewHandler) ListMine(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	out, err := h.uc.ListMine(c.UserContext(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Todas las reseñas (incluidas inactivas)
// @Tags         resenas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ReviewResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /resenas/todas_admin [get]
func (h *ReviewHandler) ListAll(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	out, err := h.uc.ListAll(c.UserContext(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener reseña
// @Tags         resenas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la reseña"
// @Success      200  {object}  dto.ReviewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /resenas/{id} [get]
func (h *ReviewHandler) GetByID(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), actor, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar reseña
// @Description  El autor o admin_principal.
// @Tags         resenas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la reseña"
// @Param        body  body  dto.UpdateReviewRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ReviewMutationResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /resenas/{id} [patch]
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	var in dto.UpdateReviewRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), actor, id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar reseña (soft delete)
// @Description  El autor o admin_principal. Devuelve el promedio recalculado del spa.
// @Tags         resenas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la reseña"
// @Success      200  {object}  dto.ReviewDeleteResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /resenas/{id} [delete]
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	avg, err := h.uc.Delete(c.UserContext(), actor, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ReviewDeleteResponse{Message: "reseña eliminada", AverageRating: avg})
}
