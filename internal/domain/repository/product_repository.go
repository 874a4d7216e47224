package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	// Search busca por coincidencia de texto sobre el nombre. El texto llega
	// ya normalizado (sin acentos).
	Search(text string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) (bool, error)
	// DecrementStock descuenta qty del stock solo si hay suficiente
	// (decremento condicional atómico). Devuelve false si el stock no alcanza.
	DecrementStock(id string, qty int) (bool, error)
}
