package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
// Las líneas viven en order_lines, ordenadas por posición de entrada.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la orden y sus líneas.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, client_id, seller_id, total, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ClientID, order.SellerID, order.Total, order.Status,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return r.insertLines(order.ID, order.Lines)
}

// GetByID obtiene una orden con sus líneas.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, client_id, seller_id, total, status, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.ClientID, &o.SellerID, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := r.loadLines([]*entity.Order{&o}); err != nil {
		return nil, err
	}
	return &o, nil
}

// List devuelve todas las órdenes con sus líneas.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	return r.list(`
		SELECT id, client_id, seller_id, total, status, created_at, updated_at
		FROM orders ORDER BY created_at DESC`)
}

// ListBySeller devuelve las órdenes de un vendedor.
func (r *OrderRepo) ListBySeller(sellerID string) ([]*entity.Order, error) {
	return r.list(`
		SELECT id, client_id, seller_id, total, status, created_at, updated_at
		FROM orders WHERE seller_id = $1 ORDER BY created_at DESC`, sellerID)
}

// ListBySellerAndStatus devuelve las órdenes de un vendedor filtradas por estado.
func (r *OrderRepo) ListBySellerAndStatus(sellerID, status string) ([]*entity.Order, error) {
	return r.list(`
		SELECT id, client_id, seller_id, total, status, created_at, updated_at
		FROM orders WHERE seller_id = $1 AND status = $2 ORDER BY created_at DESC`, sellerID, status)
}

// Update reescribe la orden y reemplaza todas sus líneas.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET client_id = $2, total = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ClientID, order.Total, order.Status, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM order_lines WHERE order_id = $1`, order.ID); err != nil {
		return fmt.Errorf("clear order lines: %w", err)
	}
	return r.insertLines(order.ID, order.Lines)
}

// Delete elimina una orden (las líneas caen en cascada). Devuelve false si no existía.
func (r *OrderRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.ClientID, &o.SellerID, &o.Total, &o.Status,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadLines(list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *OrderRepo) insertLines(orderID string, lines []entity.OrderLine) error {
	for i, line := range lines {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO order_lines (order_id, position, product_id, name, price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			orderID, i, line.ProductID, line.Name, line.Price, line.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

// loadLines carga las líneas de todas las órdenes en una sola consulta.
func (r *OrderRepo) loadLines(orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}
	rows, err := r.q.Query(context.Background(), `
		SELECT order_id, product_id, name, price, quantity
		FROM order_lines WHERE order_id = ANY($1) ORDER BY order_id, position`, ids)
	if err != nil {
		return fmt.Errorf("load order lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var orderID string
		var line entity.OrderLine
		if err := rows.Scan(&orderID, &line.ProductID, &line.Name, &line.Price, &line.Quantity); err != nil {
			return fmt.Errorf("scan order line: %w", err)
		}
		if o, ok := byID[orderID]; ok {
			o.Lines = append(o.Lines, line)
		}
	}
	return rows.Err()
}
