package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/application/usecase"
	"github.com/jhoicas/belleza-api/internal/domain/access"
)

// SpaHandler maneja las peticiones HTTP del directorio de spas.
type SpaHandler struct {
	uc *usecase.SpaUseCase
}

// NewSpaHandler construye el handler.
func NewSpaHandler(uc *usecase.SpaUseCase) *SpaHandler {
	return &SpaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear spa
// @Tags         spas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSpaRequest  true  "Datos del spa"
// @Success      201   {object}  dto.SpaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /spas [post]
func (h *SpaHandler) Create(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	var in dto.CreateSpaRequest
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
// @Summary      Listar spas
// @Description  Activos por defecto. incluir_inactivos solo para admin_principal; un admin_spa ve además su spa inactivo.
// @Tags         spas
// @Security     Bearer
// @Produce      json
// @Param        incluir_inactivos  query  bool  false  "Incluir spas inactivos"
// @Success      200  {array}   dto.SpaResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /spas [get]
func (h *SpaHandler) List(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	out, err := h.uc.List(c.UserContext(), actor, c.QueryBool("incluir_inactivos", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar spas
// @Description  Coincidencia parcial por nombre y zona, sin distinguir mayúsculas ni tildes.
// @Tags         spas
// @Produce      json
// @Param        nombre  query  string  false  "Nombre"
// @Param        zona    query  string  false  "Zona"
// @Success      200     {array}  dto.SpaResponse
// @Router       /spas/buscar [get]
func (h *SpaHandler) Search(c *fiber.Ctx) error {
	var in dto.SpaSearchRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.Search(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de spa
// @Description  Incluye servicios, materiales y reseñas activas. Autenticación opcional.
// @Tags         spas
// @Produce      json
// @Param        id                 path   string  true   "ID del spa"
// @Param        incluir_inactivos  query  bool    false  "Solo admin_principal"
// @Success      200  {object}  dto.SpaDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /spas/{id} [get]
func (h *SpaHandler) GetByID(c *fiber.Ctx) error {
	var actor *access.Principal
	if p, ok := GetPrincipal(c); ok {
		actor = &p
	}
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetDetail(c.UserContext(), actor, id, c.QueryBool("incluir_inactivos", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar spa
// @Description  Actualización parcial. admin_principal o el admin_spa dueño.
// @Tags         spas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del spa"
// @Param        body  body  dto.UpdateSpaRequest   true  "Campos a actualizar"
// @Success      200   {object}  dto.SpaResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /spas/{id} [patch]
func (h *SpaHandler) Update(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	var in dto.UpdateSpaRequest
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
// @Summary      Desactivar spa
// @Tags         spas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del spa"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /spas/{id} [delete]
func (h *SpaHandler) Delete(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), actor, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "spa desactivado"})
}

// Restore godoc
// @Summary      Restaurar spa
// @Tags         spas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del spa"
// @Success      200  {object}  dto.SpaResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /spas/{id}/restore [patch]
func (h *SpaHandler) Restore(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Restore(c.UserContext(), actor, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
