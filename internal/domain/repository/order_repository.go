package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
// Todas las lecturas devuelven las órdenes con sus líneas cargadas.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List() ([]*entity.Order, error)
	ListBySeller(sellerID string) ([]*entity.Order, error)
	ListBySellerAndStatus(sellerID, status string) ([]*entity.Order, error)
	// Update reescribe la orden y reemplaza sus líneas.
	Update(order *entity.Order) error
	Delete(id string) (bool, error)
}
