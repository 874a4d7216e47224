package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client (DIP).
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByEmail(email string) (*entity.Client, error)
	// List devuelve todos los clientes sin filtrar por vendedor.
	List() ([]*entity.Client, error)
	ListBySeller(sellerID string) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) (bool, error)
}
