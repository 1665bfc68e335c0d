package entity

import "github.com/shopspring/decimal"

// SpaService asociación spa-servicio con precio y duración propios del spa.
// Una fila por par (spa, servicio).
type SpaService struct {
	SpaID     string
	ServiceID string
	Price     *decimal.Decimal
	Duration  string
	Active    bool
}

// SpaMaterial asociación spa-material. Una fila por par (spa, material).
type SpaMaterial struct {
	SpaID      string
	MaterialID string
	Active     bool
}
