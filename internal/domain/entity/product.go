package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Stock es un entero >= 0 y solo
// lo muta el flujo de órdenes (decremento condicional en la DB).
type Product struct {
	ID        string
	Name      string
	Stock     int
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
