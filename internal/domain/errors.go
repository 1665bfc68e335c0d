package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los casos de uso los envuelven con
// fmt.Errorf("%w: detalle") y la capa HTTP los traduce a códigos de estado con errors.Is.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el correo ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInactiveUser       = errors.New("usuario inactivo")
)
