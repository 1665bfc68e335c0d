package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/belleza-api/internal/application/usecase"
)

// ReportHandler reportes del admin_principal.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ReviewCountBySpa godoc
// @Summary      Reseñas activas por spa
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ReviewCountDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /reportes/resenas_por_spa [get]
func (h *ReportHandler) ReviewCountBySpa(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	out, err := h.uc.ReviewCountBySpa(c.UserContext(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AverageBySpa godoc
// @Summary      Calificación promedio por spa
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.AverageRatingDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /reportes/promedio_por_spa [get]
func (h *ReportHandler) AverageBySpa(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	out, err := h.uc.AverageBySpa(c.UserContext(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AverageBySpaPDF godoc
// @Summary      Calificación promedio por spa (PDF)
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /reportes/promedio_por_spa/pdf [get]
func (h *ReportHandler) AverageBySpaPDF(c *fiber.Ctx) error {
	actor, _ := GetPrincipal(c)
	pdf, err := h.uc.AverageBySpaPDF(c.UserContext(), actor)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="promedio_por_spa.pdf"`)
	return c.Send(pdf)
}
