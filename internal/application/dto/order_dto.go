package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineInput una línea producto+cantidad dentro de una orden.
// Name y Price son el snapshot declarado por el caller.
type OrderLineInput struct {
	ProductID string          `json:"product_id" validate:"required"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest entrada para crear una orden.
type CreateOrderRequest struct {
	ClientID string           `json:"client_id" validate:"required"`
	Products []OrderLineInput `json:"products" validate:"required,min=1"`
	Total    decimal.Decimal  `json:"total"`
}

// UpdateOrderRequest entrada para actualizar una orden. Los campos nil se
// conservan. Si Products viene, el bucle de decremento de stock se vuelve a
// ejecutar sobre el stock actual.
type UpdateOrderRequest struct {
	ClientID *string          `json:"client_id"`
	Products []OrderLineInput `json:"products"`
	Total    *decimal.Decimal `json:"total"`
	Status   *string          `json:"status"`
}

// OrderLineResponse salida de una línea de orden.
type OrderLineResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// OrderResponse salida de una orden con su cliente resuelto.
type OrderResponse struct {
	ID        string              `json:"id"`
	Client    *ClientResponse     `json:"client,omitempty"`
	ClientID  string              `json:"client_id"`
	SellerID  string              `json:"seller_id"`
	Products  []OrderLineResponse `json:"products"`
	Total     decimal.Decimal     `json:"total"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}
