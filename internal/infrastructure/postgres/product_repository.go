package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, stock, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Stock, product.Price, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, stock, price, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Stock, &p.Price, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista todos los productos, más recientes primero.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT id, name, stock, price, created_at, updated_at
		FROM products ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Search busca productos por coincidencia de texto sobre el nombre.
// Ambos lados se comparan sin acentos: el texto llega ya normalizado y la
// columna pasa por f_unaccent, respaldada por un índice GIN pg_trgm sobre la
// misma expresión (ver db/schema.sql).
func (r *ProductRepo) Search(text string) ([]*entity.Product, error) {
	query := `
		SELECT id, name, stock, price, created_at, updated_at
		FROM products WHERE f_unaccent(name) ILIKE '%' || $1 || '%'`
	rows, err := r.q.Query(context.Background(), query, text)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Update actualiza nombre, stock y precio de un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, stock = $3, price = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Stock, product.Price, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID. Devuelve false si no existía.
func (r *ProductRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// DecrementStock descuenta qty del stock en una sola sentencia condicional.
// La condición stock >= qty elimina la carrera check-then-act: dos órdenes
// concurrentes nunca pueden dejar el stock en negativo.
func (r *ProductRepo) DecrementStock(id string, qty int) (bool, error) {
	query := `
		UPDATE products SET stock = stock - $2, updated_at = now()
		WHERE id = $1 AND stock >= $2`
	cmd, err := r.q.Exec(context.Background(), query, id, qty)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Stock, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
