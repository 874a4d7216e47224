package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de una orden. El estado alimenta las agregaciones de
// reporting (PENDING -> mejores clientes, SUCCESS -> mejores vendedores).
const (
	OrderStatusPending  = "PENDING"
	OrderStatusSuccess  = "SUCCESS"
	OrderStatusRejected = "REJECTED"
)

// ValidOrderStatus indica si s es un estado de orden conocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusSuccess, OrderStatusRejected:
		return true
	}
	return false
}

// OrderLine es una línea producto+cantidad dentro de una orden. Name y Price
// son un snapshot al momento de crear la orden.
type OrderLine struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

// Order representa una orden de venta. SellerID es inmutable después de la
// creación; el cliente referenciado debe pertenecer al mismo vendedor.
type Order struct {
	ID        string
	ClientID  string
	SellerID  string
	Lines     []OrderLine
	Total     decimal.Decimal
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Client se resuelve al responder (equivalente a populate en el origen).
	Client *Client
}
