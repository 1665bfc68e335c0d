package entity

import "github.com/shopspring/decimal"

// Service servicio base del catálogo (manicure, masaje, ...). Solo lo gestiona admin_principal.
type Service struct {
	ID          string
	Name        string
	Description string
	RefDuration string
	RefPrice    *decimal.Decimal // > 0 si está presente
	Active      bool
}
