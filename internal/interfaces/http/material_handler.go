package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/application/usecase"
)

// MaterialHandler catálogo de materiales y su uso por spa.
type MaterialHandler struct {
	uc *usecase.MaterialUseCase
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(uc *usecase.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// Create godoc
// @Summary      Crear material
// @Tags         materiales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequest  true  "nombre, tipo"
// @Success      201   {object}  dto.MaterialResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /materiales [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	var in dto.CreateMaterialRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), actor, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar materiales
// @Tags         materiales
// @Security     Bearer
// @Produce      json
// @Param        incluir_inactivos  query  bool  false  "Solo admin_principal"
// @Success      200  {array}  dto.MaterialResponse
// @Router       /materiales [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	out, err := h.uc.List(c.UserContext(), actor, c.QueryBool("incluir_inactivos", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener material
// @Tags         materiales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del material"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /materiales/{id} [get]
func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), actor, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar material
// @Tags         materiales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del material"
// @Param        body  body  dto.UpdateMaterialRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MaterialResponse
// @Router       /materiales/{id} [patch]
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	var in dto.UpdateMaterialRequest
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
// @Summary      Desactivar material
// @Tags         materiales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del material"
// @Success      200  {object}  dto.MessageResponse
// @Router       /materiales/{id} [delete]
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), actor, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "material desactivado"})
}

// Associate godoc
// @Summary      Asociar material a spa
// @Tags         materiales
// @Security     Bearer
// @Produce      json
// @Param        spa_id       path  string  true  "ID del spa"
// @Param        material_id  path  string  true  "ID del material"
// @Success      201  {array}   dto.SpaMaterialResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /materiales/asociar/{spa_id}/{material_id} [post]
func (h *MaterialHandler) Associate(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	spaID, err := paramID(c, "spa_id")
	if err != nil {
		return respondError(c, err)
	}
	materialID, err := paramID(c, "material_id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Associate(c.UserContext(), actor, spaID, materialID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Disassociate godoc
// @Summary      Retirar material de spa
// @Tags         materiales
// @Security     Bearer
// @Produce      json
// @Param        spa_id       path  string  true  "ID del spa"
// @Param        material_id  path  string  true  "ID del material"
// @Success      200  {object}  dto.MessageResponse
// @Router       /materiales/asociar/{spa_id}/{material_id} [delete]
func (h *MaterialHandler) Disassociate(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	spaID, err := paramID(c, "spa_id")
	if err != nil {
		return respondError(c, err)
	}
	materialID, err := paramID(c, "material_id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Disassociate(c.UserContext(), actor, spaID, materialID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "material retirado del spa"})
}

// ListBySpa godoc
// @Summary      Materiales de un spa
// @Tags         materiales
// @Security     Bearer
// @Produce      json
// @Param        spa_id  path  string  true  "ID del spa"
// @Success      200  {array}  dto.SpaMaterialResponse
// @Router       /materiales/por_spa/{spa_id} [get]
func (h *MaterialHandler) ListBySpa(c *fiber.Ctx) error {
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
