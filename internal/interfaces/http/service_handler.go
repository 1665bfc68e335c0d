package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/application/usecase"
)

// ServiceHandler catálogo de servicios y su oferta por spa.
type ServiceHandler struct {
	uc *usecase.ServiceUseCase
}

// NewServiceHandler construye el handler.
func NewServiceHandler(uc *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// Create godoc
// @Summary      Crear servicio
// @Tags         servicios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServiceRequest  true  "Datos del servicio"
// @Success      201   {object}  dto.ServiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /servicios [post]
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	var in dto.CreateServiceRequest
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
// @Summary      Listar servicios
// @Tags         servicios
// @Security     Bearer
// @Produce      json
// @Param        incluir_inactivos  query  bool  false  "Solo admin_principal"
// @Success      200  {array}  dto.ServiceResponse
// @Router       /servicios [get]
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	out, err := h.uc.List(c.UserContext(), actor, c.QueryBool("incluir_inactivos", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener servicio
// @Tags         servicios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del servicio"
// @Success      200  {object}  dto.ServiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /servicios/{id} [get]
func (h *ServiceHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar servicio
// @Tags         servicios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del servicio"
// @Param        body  body  dto.UpdateServiceRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ServiceResponse
// @Router       /servicios/{id} [patch]
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	var in dto.UpdateServiceRequest
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
// @Summary      Desactivar servicio
// @Description  Desactiva también sus asociaciones con spas.
// @Tags         servicios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del servicio"
// @Success      200  {object}  dto.MessageResponse
// @Router       /servicios/{id} [delete]
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), actor, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "servicio desactivado"})
}

// Associate godoc
// @Summary      Asociar servicio a spa
// @Description  Precio y duración propios del spa; si se omiten se usan los de referencia.
// @Tags         servicios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        spa_id       path  string                       true   "ID del spa"
// @Param        servicio_id  path  string                       true   "ID del servicio"
// @Param        body         body  dto.AssociateServiceRequest  false  "precio, duracion"
// @Success      201  {array}   dto.SpaServiceResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /servicios/asociar/{spa_id}/{servicio_id} [post]
func (h *ServiceHandler) Associate(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	var in dto.AssociateServiceRequest
	if len(c.Body()) > 0 {
		if ok, err := bindBody(c, &in); !ok {
			return err
		}
	}
	spaID, err := paramID(c, "spa_id")
	if err != nil {
		return respondError(c, err)
	}
	serviceID, err := paramID(c, "servicio_id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Associate(c.UserContext(), actor, spaID, serviceID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Disassociate godoc
// @Summary      Retirar servicio de spa
// @Tags         servicios
// @Security     Bearer
// @Produce      json
// @Param        spa_id       path  string  true  "ID del spa"
// @Param        servicio_id  path  string  true  "ID del servicio"
// @Success      200  {object}  dto.MessageResponse
// @Router       /servicios/asociar/{spa_id}/{servicio_id} [delete]
func (h *ServiceHandler) Disassociate(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	spaID, err := paramID(c, "spa_id")
	if err != nil {
		return respondError(c, err)
	}
	serviceID, err := paramID(c, "servicio_id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Disassociate(c.UserContext(), actor, spaID, serviceID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "servicio retirado del spa"})
}

// ListBySpa godoc
// @Summary      Servicios de un spa
// @Tags         servicios
// @Produce      json
// @Param        spa_id  path  string  true  "ID del spa"
// @Success      200  {array}   dto.SpaServiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /servicios/por_spa/{spa_id} [get]
func (h *ServiceHandler) ListBySpa(c *fiber.Ctx) error {
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
