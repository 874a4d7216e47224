package dto

import "time"

// RegisterRequest entrada para registrar un vendedor. AdminSecret debe
// coincidir exactamente con el secreto de configuración.
type RegisterRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Lastname    string `json:"lastname" validate:"required,min=1,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	AdminSecret string `json:"admin_secret" validate:"required"`
}

// LoginRequest entrada para autenticación.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido tras un login exitoso.
type LoginResponse struct {
	Token string `json:"token"`
}

// UserResponse salida de un usuario (sin hash de password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Lastname  string    `json:"lastname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
