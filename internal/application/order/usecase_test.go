package order

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// Fakes en memoria para probar el caso de uso sin base de datos. El
// memTxRunner emula el rollback: toma un snapshot del estado antes de
// ejecutar fn y lo restaura si fn devuelve error.

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	m := &memProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		m.products[p.ID] = &cp
	}
	return m
}

func (m *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(m.products))
	for _, p := range m.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memProductRepo) Search(text string) ([]*entity.Product, error) {
	return nil, nil
}

func (m *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memProductRepo) Delete(id string) (bool, error) {
	_, ok := m.products[id]
	delete(m.products, id)
	return ok, nil
}

func (m *memProductRepo) DecrementStock(id string, qty int) (bool, error) {
	p, ok := m.products[id]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

func (m *memProductRepo) stockOf(t *testing.T, id string) int {
	t.Helper()
	p, ok := m.products[id]
	require.True(t, ok, "producto %s no existe", id)
	return p.Stock
}

type memOrderRepo struct {
	orders map[string]*entity.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]*entity.Order)}
}

func (m *memOrderRepo) Create(o *entity.Order) error {
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *memOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *memOrderRepo) List() ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(m.orders))
	for _, o := range m.orders {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memOrderRepo) ListBySeller(sellerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range m.orders {
		if o.SellerID == sellerID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memOrderRepo) ListBySellerAndStatus(sellerID, status string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range m.orders {
		if o.SellerID == sellerID && o.Status == status {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memOrderRepo) Update(o *entity.Order) error {
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *memOrderRepo) Delete(id string) (bool, error) {
	_, ok := m.orders[id]
	delete(m.orders, id)
	return ok, nil
}

type memClientRepo struct {
	clients map[string]*entity.Client
}

func newMemClientRepo(clients ...*entity.Client) *memClientRepo {
	m := &memClientRepo{clients: make(map[string]*entity.Client)}
	for _, c := range clients {
		cp := *c
		m.clients[c.ID] = &cp
	}
	return m
}

func (m *memClientRepo) Create(c *entity.Client) error {
	cp := *c
	m.clients[c.ID] = &cp
	return nil
}

func (m *memClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := m.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memClientRepo) GetByEmail(email string) (*entity.Client, error) {
	for _, c := range m.clients {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memClientRepo) List() ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(m.clients))
	for _, c := range m.clients {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memClientRepo) ListBySeller(sellerID string) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range m.clients {
		if c.SellerID == sellerID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memClientRepo) Update(c *entity.Client) error {
	cp := *c
	m.clients[c.ID] = &cp
	return nil
}

func (m *memClientRepo) Delete(id string) (bool, error) {
	_, ok := m.clients[id]
	delete(m.clients, id)
	return ok, nil
}

// memTxRunner pasa los repos en memoria a fn y restaura el estado previo si
// fn falla, igual que un ROLLBACK.
type memTxRunner struct {
	products *memProductRepo
	orders   *memOrderRepo
}

func (r *memTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.OrderRepository) error) error {
	productSnap := make(map[string]*entity.Product, len(r.products.products))
	for id, p := range r.products.products {
		cp := *p
		productSnap[id] = &cp
	}
	orderSnap := make(map[string]*entity.Order, len(r.orders.orders))
	for id, o := range r.orders.orders {
		cp := *o
		orderSnap[id] = &cp
	}
	if err := fn(r.products, r.orders); err != nil {
		r.products.products = productSnap
		r.orders.orders = orderSnap
		return err
	}
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type orderFixture struct {
	uc       *OrderUseCase
	products *memProductRepo
	orders   *memOrderRepo
	clients  *memClientRepo
}

func newOrderFixture(products ...*entity.Product) orderFixture {
	productRepo := newMemProductRepo(products...)
	orderRepo := newMemOrderRepo()
	clientRepo := newMemClientRepo(
		&entity.Client{ID: "cli-1", Name: "Ana", Lastname: "Ruiz", Email: "ana@acme.com", SellerID: "seller-1"},
		&entity.Client{ID: "cli-2", Name: "Luis", Lastname: "Soto", Email: "luis@otro.com", SellerID: "seller-2"},
	)
	runner := &memTxRunner{products: productRepo, orders: orderRepo}
	return orderFixture{
		uc:       NewOrderUseCase(runner, clientRepo, orderRepo),
		products: productRepo,
		orders:   orderRepo,
		clients:  clientRepo,
	}
}

func TestCreateOrder(t *testing.T) {
	f := newOrderFixture(
		&entity.Product{ID: "prod-1", Name: "Monitor", Stock: 10, Price: dec("150.00")},
		&entity.Product{ID: "prod-2", Name: "Teclado", Stock: 5, Price: dec("35.50")},
	)

	out, err := f.uc.Create(context.Background(), "seller-1", dto.CreateOrderRequest{
		ClientID: "cli-1",
		Products: []dto.OrderLineInput{
			{ProductID: "prod-1", Quantity: 3},
			{ProductID: "prod-2", Quantity: 2},
		},
		Total: dec("521.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.Equal(t, "seller-1", out.SellerID)
	assert.True(t, dec("521.00").Equal(out.Total))
	require.NotNil(t, out.Client)
	assert.Equal(t, "ana@acme.com", out.Client.Email)

	// Las líneas toman nombre y precio del producto cuando el caller no los manda.
	require.Len(t, out.Products, 2)
	assert.Equal(t, "Monitor", out.Products[0].Name)
	assert.True(t, dec("150.00").Equal(out.Products[0].Price))

	// Stock descontado y orden persistida.
	assert.Equal(t, 7, f.products.stockOf(t, "prod-1"))
	assert.Equal(t, 3, f.products.stockOf(t, "prod-2"))
	stored, err := f.orders.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestCreateOrderInsufficientStockRollsBackEverything(t *testing.T) {
	f := newOrderFixture(
		&entity.Product{ID: "prod-1", Name: "Monitor", Stock: 10, Price: dec("150.00")},
		&entity.Product{ID: "prod-2", Name: "Teclado", Stock: 1, Price: dec("35.50")},
	)

	_, err := f.uc.Create(context.Background(), "seller-1", dto.CreateOrderRequest{
		ClientID: "cli-1",
		Products: []dto.OrderLineInput{
			{ProductID: "prod-1", Quantity: 4},
			{ProductID: "prod-2", Quantity: 2}, // excede el stock
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Teclado")

	// El decremento de la primera línea también se revierte y la orden no queda.
	assert.Equal(t, 10, f.products.stockOf(t, "prod-1"))
	assert.Equal(t, 1, f.products.stockOf(t, "prod-2"))
	all, err := f.orders.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateOrderSameProductTwice(t *testing.T) {
	f := newOrderFixture(
		&entity.Product{ID: "prod-1", Name: "Monitor", Stock: 5, Price: dec("150.00")},
	)

	// Dos líneas del mismo producto se descuentan en secuencia: la segunda ve
	// el stock ya descontado por la primera.
	_, err := f.uc.Create(context.Background(), "seller-1", dto.CreateOrderRequest{
		ClientID: "cli-1",
		Products: []dto.OrderLineInput{
			{ProductID: "prod-1", Quantity: 3},
			{ProductID: "prod-1", Quantity: 3},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 5, f.products.stockOf(t, "prod-1"))

	// Dentro del stock combinado sí pasa.
	out, err := f.uc.Create(context.Background(), "seller-1", dto.CreateOrderRequest{
		ClientID: "cli-1",
		Products: []dto.OrderLineInput{
			{ProductID: "prod-1", Quantity: 3},
			{ProductID: "prod-1", Quantity: 2},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Products, 2)
	assert.Equal(t, 0, f.products.stockOf(t, "prod-1"))
}

func TestCreateOrderValidations(t *testing.T) {
	f := newOrderFixture(
		&entity.Product{ID: "prod-1", Name: "Monitor", Stock: 10, Price: dec("150.00")},
	)
	ctx := context.Background()

	t.Run("cliente inexistente", func(t *testing.T) {
		_, err := f.uc.Create(ctx, "seller-1", dto.CreateOrderRequest{
			ClientID: "no-existe",
			Products: []dto.OrderLineInput{{ProductID: "prod-1", Quantity: 1}},
		})
		assert.ErrorIs(t, err, domain.ErrClientNotFound)
	})

	t.Run("cliente de otro vendedor", func(t *testing.T) {
		_, err := f.uc.Create(ctx, "seller-1", dto.CreateOrderRequest{
			ClientID: "cli-2",
			Products: []dto.OrderLineInput{{ProductID: "prod-1", Quantity: 1}},
		})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("sin productos", func(t *testing.T) {
		_, err := f.uc.Create(ctx, "seller-1", dto.CreateOrderRequest{ClientID: "cli-1"})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "necesita al menos 1 producto")
	})

	t.Run("producto inexistente", func(t *testing.T) {
		_, err := f.uc.Create(ctx, "seller-1", dto.CreateOrderRequest{
			ClientID: "cli-1",
			Products: []dto.OrderLineInput{{ProductID: "fantasma", Quantity: 1}},
		})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("cantidad cero", func(t *testing.T) {
		_, err := f.uc.Create(ctx, "seller-1", dto.CreateOrderRequest{
			ClientID: "cli-1",
			Products: []dto.OrderLineInput{{ProductID: "prod-1", Quantity: 0}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	// Nada de lo anterior debe haber tocado el stock.
	assert.Equal(t, 10, f.products.stockOf(t, "prod-1"))
}

func TestUpdateOrderRedecrementsWithoutRestore(t *testing.T) {
	f := newOrderFixture(
		&entity.Product{ID: "prod-1", Name: "Monitor", Stock: 10, Price: dec("150.00")},
	)
	ctx := context.Background()

	out, err := f.uc.Create(ctx, "seller-1", dto.CreateOrderRequest{
		ClientID: "cli-1",
		Products: []dto.OrderLineInput{{ProductID: "prod-1", Quantity: 4}},
	})
	require.NoError(t, err)
	require.Equal(t, 6, f.products.stockOf(t, "prod-1"))

	// Mandar una lista nueva vuelve a descontar sobre el stock actual; las 4
	// unidades previas no se restauran.
	status := entity.OrderStatusSuccess
	updated, err := f.uc.Update(ctx, "seller-1", out.ID, dto.UpdateOrderRequest{
		Products: []dto.OrderLineInput{{ProductID: "prod-1", Quantity: 2}},
		Status:   &status,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusSuccess, updated.Status)
	assert.Equal(t, 4, f.products.stockOf(t, "prod-1"))
	require.Len(t, updated.Products, 1)
	assert.Equal(t, 2, updated.Products[0].Quantity)
}

func TestUpdateOrderValidations(t *testing.T) {
	f := newOrderFixture(
		&entity.Product{ID: "prod-1", Name: "Monitor", Stock: 10, Price: dec("150.00")},
	)
	ctx := context.Background()

	out, err := f.uc.Create(ctx, "seller-1", dto.CreateOrderRequest{
		ClientID: "cli-1",
		Products: []dto.OrderLineInput{{ProductID: "prod-1", Quantity: 1}},
	})
	require.NoError(t, err)

	t.Run("orden inexistente", func(t *testing.T) {
		_, err := f.uc.Update(ctx, "seller-1", "no-existe", dto.UpdateOrderRequest{})
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("otro vendedor", func(t *testing.T) {
		_, err := f.uc.Update(ctx, "seller-2", out.ID, dto.UpdateOrderRequest{})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("estado desconocido", func(t *testing.T) {
		bad := "SHIPPED"
		_, err := f.uc.Update(ctx, "seller-1", out.ID, dto.UpdateOrderRequest{Status: &bad})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("cliente nuevo de otro vendedor", func(t *testing.T) {
		other := "cli-2"
		_, err := f.uc.Update(ctx, "seller-1", out.ID, dto.UpdateOrderRequest{ClientID: &other})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestDeleteOrderDoesNotRestoreStock(t *testing.T) {
	f := newOrderFixture(
		&entity.Product{ID: "prod-1", Name: "Monitor", Stock: 10, Price: dec("150.00")},
	)
	ctx := context.Background()

	out, err := f.uc.Create(ctx, "seller-1", dto.CreateOrderRequest{
		ClientID: "cli-1",
		Products: []dto.OrderLineInput{{ProductID: "prod-1", Quantity: 3}},
	})
	require.NoError(t, err)

	_, err = f.uc.Delete(ctx, "seller-2", out.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	ok, err := f.uc.Delete(ctx, "seller-1", out.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// El stock consumido se queda consumido.
	assert.Equal(t, 7, f.products.stockOf(t, "prod-1"))

	_, err = f.uc.GetByID(ctx, "seller-1", out.ID)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestListOrdersScopes(t *testing.T) {
	f := newOrderFixture(
		&entity.Product{ID: "prod-1", Name: "Monitor", Stock: 100, Price: dec("150.00")},
	)
	ctx := context.Background()

	// seller-1 crea dos órdenes, seller-2 una.
	for _, tc := range []struct{ seller, client string }{
		{"seller-1", "cli-1"},
		{"seller-1", "cli-1"},
		{"seller-2", "cli-2"},
	} {
		_, err := f.uc.Create(ctx, tc.seller, dto.CreateOrderRequest{
			ClientID: tc.client,
			Products: []dto.OrderLineInput{{ProductID: "prod-1", Quantity: 1}},
		})
		require.NoError(t, err)
	}

	all, err := f.uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := f.uc.ListBySeller(ctx, "seller-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, o := range mine {
		require.NotNil(t, o.Client, "el cliente debe venir resuelto")
	}

	pending, err := f.uc.ListByStatus(ctx, "seller-1", entity.OrderStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	_, err = f.uc.ListByStatus(ctx, "seller-1", "SHIPPED")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestGetOrderOwnership(t *testing.T) {
	f := newOrderFixture(
		&entity.Product{ID: "prod-1", Name: "Monitor", Stock: 10, Price: dec("150.00")},
	)
	ctx := context.Background()

	out, err := f.uc.Create(ctx, "seller-1", dto.CreateOrderRequest{
		ClientID: "cli-1",
		Products: []dto.OrderLineInput{{ProductID: "prod-1", Quantity: 1}},
	})
	require.NoError(t, err)

	got, err := f.uc.GetByID(ctx, "seller-1", out.ID)
	require.NoError(t, err)
	assert.Equal(t, out.ID, got.ID)

	_, err = f.uc.GetByID(ctx, "seller-2", out.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
