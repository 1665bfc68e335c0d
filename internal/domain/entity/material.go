package entity

// Material producto o marca usada por los spas (OPI, Masglo, ...).
type Material struct {
	ID     string
	Name   string
	Type   string
	Active bool
}
