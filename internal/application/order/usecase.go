package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// OrderUseCase flujo de órdenes: creación con decremento de stock por línea,
// actualización, eliminación y lecturas con chequeo de propiedad.
//
// El decremento es condicional y atómico (stock >= cantidad) y todo el bucle
// más la escritura de la orden corren en una sola transacción: una línea que
// falla revierte los decrementos de las líneas anteriores. Esto reemplaza la
// semántica de decremento corriente sin rollback del sistema original.
type OrderUseCase struct {
	txRunner   TxRunner
	clientRepo repository.ClientRepository
	orderRepo  repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner TxRunner, clientRepo repository.ClientRepository, orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, clientRepo: clientRepo, orderRepo: orderRepo}
}

// Create valida cliente y propiedad, descuenta stock línea por línea y
// persiste la orden en estado PENDING, todo dentro de una transacción.
func (uc *OrderUseCase) Create(ctx context.Context, sellerID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if client.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}
	if len(in.Products) == 0 {
		return nil, fmt.Errorf("%w: necesita al menos 1 producto", domain.ErrInvalidInput)
	}

	now := time.Now()
	order := &entity.Order{
		ID:        uuid.New().String(),
		ClientID:  client.ID,
		SellerID:  sellerID,
		Total:     in.Total,
		Status:    entity.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) error {
		lines, err := decrementLines(productRepo, in.Products)
		if err != nil {
			return err
		}
		order.Lines = lines
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}

	order.Client = client
	return toOrderResponse(order), nil
}

// Update aplica cambios sobre una orden existente del vendedor. Si viene una
// lista de productos nueva, el bucle de decremento se vuelve a ejecutar sobre
// el stock actual: el stock reservado por la lista anterior NO se restaura
// primero (semántica heredada del sistema original y documentada como tal).
func (uc *OrderUseCase) Update(ctx context.Context, sellerID, orderID string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if order.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}

	if in.ClientID != nil && *in.ClientID != order.ClientID {
		client, err := uc.clientRepo.GetByID(*in.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrClientNotFound
		}
		if client.SellerID != sellerID {
			return nil, domain.ErrForbidden
		}
		order.ClientID = client.ID
	}
	if in.Status != nil {
		if !entity.ValidOrderStatus(*in.Status) {
			return nil, fmt.Errorf("%w: estado de orden desconocido %q", domain.ErrInvalidInput, *in.Status)
		}
		order.Status = *in.Status
	}
	if in.Total != nil {
		order.Total = *in.Total
	}
	order.UpdatedAt = time.Now()

	err = uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) error {
		if len(in.Products) > 0 {
			lines, err := decrementLines(productRepo, in.Products)
			if err != nil {
				return err
			}
			order.Lines = lines
		}
		return orderRepo.Update(order)
	})
	if err != nil {
		return nil, err
	}

	order.Client, err = uc.clientRepo.GetByID(order.ClientID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Delete elimina una orden del vendedor. El stock consumido no se restaura.
func (uc *OrderUseCase) Delete(ctx context.Context, sellerID, orderID string) (bool, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return false, err
	}
	if order == nil {
		return false, domain.ErrOrderNotFound
	}
	if order.SellerID != sellerID {
		return false, domain.ErrForbidden
	}
	return uc.orderRepo.Delete(orderID)
}

// GetByID obtiene una orden con chequeo de propiedad y cliente resuelto.
func (uc *OrderUseCase) GetByID(ctx context.Context, sellerID, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if order.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}
	if err := uc.attachClients([]*entity.Order{order}); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List devuelve todas las órdenes, sin filtrar por vendedor.
func (uc *OrderUseCase) List(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	return uc.toResponses(orders)
}

// ListBySeller devuelve las órdenes del vendedor autenticado.
func (uc *OrderUseCase) ListBySeller(ctx context.Context, sellerID string) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.ListBySeller(sellerID)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(orders)
}

// ListByStatus devuelve las órdenes del vendedor autenticado con el estado dado.
func (uc *OrderUseCase) ListByStatus(ctx context.Context, sellerID, status string) ([]dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: estado de orden desconocido %q", domain.ErrInvalidInput, status)
	}
	orders, err := uc.orderRepo.ListBySellerAndStatus(sellerID, status)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(orders)
}

// decrementLines procesa las líneas secuencialmente y en orden de entrada:
// una línea posterior del mismo producto ve el stock ya descontado por las
// anteriores dentro de la misma transacción.
func decrementLines(productRepo repository.ProductRepository, inputs []dto.OrderLineInput) ([]entity.OrderLine, error) {
	lines := make([]entity.OrderLine, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity <= 0 {
			return nil, fmt.Errorf("%w: la cantidad debe ser mayor a cero", domain.ErrInvalidInput)
		}
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrProductNotFound
		}
		ok, err := productRepo.DecrementStock(in.ProductID, in.Quantity)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientStock, product.Name)
		}
		name := in.Name
		if name == "" {
			name = product.Name
		}
		price := in.Price
		if price.IsZero() {
			price = product.Price
		}
		lines = append(lines, entity.OrderLine{
			ProductID: product.ID,
			Name:      name,
			Price:     price,
			Quantity:  in.Quantity,
		})
	}
	return lines, nil
}

// attachClients resuelve el cliente de cada orden (una consulta por cliente
// distinto, cacheado en memoria para la misma llamada).
func (uc *OrderUseCase) attachClients(orders []*entity.Order) error {
	cache := make(map[string]*entity.Client)
	for _, o := range orders {
		client, ok := cache[o.ClientID]
		if !ok {
			var err error
			client, err = uc.clientRepo.GetByID(o.ClientID)
			if err != nil {
				return err
			}
			cache[o.ClientID] = client
		}
		o.Client = client
	}
	return nil
}

func (uc *OrderUseCase) toResponses(orders []*entity.Order) ([]dto.OrderResponse, error) {
	if err := uc.attachClients(orders); err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:        o.ID,
		ClientID:  o.ClientID,
		SellerID:  o.SellerID,
		Total:     o.Total,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	for _, line := range o.Lines {
		resp.Products = append(resp.Products, dto.OrderLineResponse{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}
	if o.Client != nil {
		resp.Client = toClientResponse(o.Client)
	}
	return resp
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
