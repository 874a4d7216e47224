package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// ClientUseCase directorio de clientes. Cada cliente pertenece a exactamente
// un vendedor; actualizar, borrar y leer por ID exigen propiedad. List es
// deliberadamente sin filtro (asimetría heredada frente a ListBySeller).
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create registra un cliente para el vendedor autenticado. El email se
// verifica explícitamente antes del insert para que el error sea específico
// de cara al caller; el constraint único de la DB queda como segunda barrera.
func (uc *ClientUseCase) Create(sellerID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrClientExists
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Lastname:  in.Lastname,
		Business:  in.Business,
		Email:     in.Email,
		Phone:     in.Phone,
		SellerID:  sellerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente con chequeo de propiedad.
func (uc *ClientUseCase) GetByID(sellerID, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if client.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}
	return toClientResponse(client), nil
}

// List devuelve todos los clientes sin importar el caller.
func (uc *ClientUseCase) List() ([]dto.ClientResponse, error) {
	clients, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toClientResponses(clients), nil
}

// ListBySeller devuelve los clientes del vendedor autenticado.
func (uc *ClientUseCase) ListBySeller(sellerID string) ([]dto.ClientResponse, error) {
	clients, err := uc.repo.ListBySeller(sellerID)
	if err != nil {
		return nil, err
	}
	return toClientResponses(clients), nil
}

// Update aplica los campos presentes sobre un cliente del vendedor.
func (uc *ClientUseCase) Update(sellerID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if client.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Lastname != nil {
		client.Lastname = *in.Lastname
	}
	if in.Business != nil {
		client.Business = *in.Business
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente del vendedor. Devuelve un flag booleano.
func (uc *ClientUseCase) Delete(sellerID, id string) (bool, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if client == nil {
		return false, domain.ErrClientNotFound
	}
	if client.SellerID != sellerID {
		return false, domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Lastname:  c.Lastname,
		Business:  c.Business,
		Email:     c.Email,
		Phone:     c.Phone,
		SellerID:  c.SellerID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toClientResponses(clients []*entity.Client) []dto.ClientResponse {
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, *toClientResponse(c))
	}
	return out
}
