package dto

import "time"

// RegisterRequest registro público (el rol siempre es usuario) o alta de admin_spa.
type RegisterRequest struct {
	Name     string `json:"nombre" validate:"required,min=1,max=200"`
	Email    string `json:"correo" validate:"required,email"`
	Password string `json:"contrasena" validate:"required,min=6"`
}

// LoginRequest acepta JSON {correo, contrasena} o el formulario OAuth2 (username, password).
type LoginRequest struct {
	Email    string `json:"correo" form:"username"`
	Password string `json:"contrasena" form:"password"`
}

// LoginResponse token bearer emitido tras un login correcto.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	Role        string       `json:"rol"`
	Message     string       `json:"message"`
	User        UserResponse `json:"usuario"`
}

// UserResponse salida de un usuario (sin contraseña).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"correo"`
	Role      string    `json:"rol"`
	Active    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}
