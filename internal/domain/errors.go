package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("no existe un usuario con ese email")
	ErrProductNotFound    = errors.New("no existe producto asociado a ese ID")
	ErrClientNotFound     = errors.New("no se encontró cliente asociado a ese ID")
	ErrOrderNotFound      = errors.New("no existe orden asociada a ese ID")
	ErrEmailAlreadyExists = errors.New("el usuario ya está registrado")
	ErrClientExists       = errors.New("el cliente ya se encuentra registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthenticated    = errors.New("no tienes las credenciales")
	ErrForbidden          = errors.New("no tienes permiso para hacer eso")
	ErrInvalidCredentials = errors.New("password errónea")
	ErrInvalidAdminToken  = errors.New("el token de administrador es inválido")
	ErrInsufficientStock  = errors.New("la cantidad excede el stock disponible")
)
