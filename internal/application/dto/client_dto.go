package dto

import "time"

// CreateClientRequest entrada para crear un cliente. El vendedor propietario
// sale de la identidad del caller, nunca del body.
type CreateClientRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Lastname string `json:"lastname" validate:"required,min=1,max=100"`
	Business string `json:"business"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
}

// UpdateClientRequest entrada para actualizar un cliente (campos opcionales).
type UpdateClientRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Lastname *string `json:"lastname" validate:"omitempty,min=1,max=100"`
	Business *string `json:"business"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Lastname  string    `json:"lastname"`
	Business  string    `json:"business"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	SellerID  string    `json:"seller_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
