package order

import (
	"context"

	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad del flujo de órdenes:
// el bucle de decrementos de stock y la escritura de la orden comparten
// transacción, así que una falla parcial revierte los decrementos anteriores.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
