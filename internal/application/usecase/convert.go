package usecase

import (
	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/domain/entity"
	"github.com/jhoicas/belleza-api/internal/domain/rating"
	"github.com/jhoicas/belleza-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

func toSpaResponse(s *entity.Spa) *dto.SpaResponse {
	if s == nil {
		return nil
	}
	return &dto.SpaResponse{
		ID:            s.ID,
		Name:          s.Name,
		Address:       s.Address,
		Zone:          s.Zone,
		Schedule:      s.Schedule,
		AverageRating: rating.Round2(s.AverageRating),
		Active:        s.Active,
		LastUpdated:   s.LastUpdated,
		AdminSpaID:    s.AdminSpaID,
	}
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	if s == nil {
		return nil
	}
	return &dto.ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		RefDuration: s.RefDuration,
		RefPrice:    decimalToFloat(s.RefPrice),
		Active:      s.Active,
	}
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	if m == nil {
		return nil
	}
	return &dto.MaterialResponse{ID: m.ID, Name: m.Name, Type: m.Type, Active: m.Active}
}

func toSpaServiceResponses(rows []repository.SpaServiceDetail) []dto.SpaServiceResponse {
	out := make([]dto.SpaServiceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SpaServiceResponse{
			ServiceID:   r.ServiceID,
			Name:        r.Name,
			Description: r.Description,
			Price:       decimalToFloat(r.Price),
			Duration:    r.Duration,
		})
	}
	return out
}

func toSpaMaterialResponses(rows []repository.SpaMaterialDetail) []dto.SpaMaterialResponse {
	out := make([]dto.SpaMaterialResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SpaMaterialResponse{MaterialID: r.MaterialID, Name: r.Name, Type: r.Type})
	}
	return out
}

// ToReviewResponse convierte la fila de lectura de reseña a DTO.
func ToReviewResponse(r repository.ReviewDetail) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        r.ID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		Active:    r.Active,
		SpaID:     r.SpaID,
		SpaName:   r.SpaName,
		UserID:    r.UserID,
		UserName:  r.UserName,
	}
}

// ToReviewResponses convierte una lista de filas de reseña.
func ToReviewResponses(rows []repository.ReviewDetail) []dto.ReviewResponse {
	out := make([]dto.ReviewResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToReviewResponse(r))
	}
	return out
}

// decimalToFloat expone precios como número JSON; shopspring los serializa como string por defecto.
func decimalToFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

// validPrice nil (sin precio) o > 0.
func validPrice(d *decimal.Decimal) bool {
	return d == nil || d.GreaterThan(decimal.Zero)
}
