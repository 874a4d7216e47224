package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, lastname, business, email, phone, seller_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.Lastname, client.Business, client.Email, client.Phone,
		client.SellerID, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrClientExists
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `
		SELECT id, name, lastname, business, email, phone, seller_id, created_at, updated_at
		FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Lastname, &c.Business, &c.Email, &c.Phone, &c.SellerID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// GetByEmail obtiene un cliente por email.
func (r *ClientRepo) GetByEmail(email string) (*entity.Client, error) {
	query := `
		SELECT id, name, lastname, business, email, phone, seller_id, created_at, updated_at
		FROM clients WHERE email = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&c.ID, &c.Name, &c.Lastname, &c.Business, &c.Email, &c.Phone, &c.SellerID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by email: %w", err)
	}
	return &c, nil
}

// List devuelve todos los clientes (sin filtro por vendedor).
func (r *ClientRepo) List() ([]*entity.Client, error) {
	query := `
		SELECT id, name, lastname, business, email, phone, seller_id, created_at, updated_at
		FROM clients ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	return scanClients(rows)
}

// ListBySeller devuelve los clientes de un vendedor.
func (r *ClientRepo) ListBySeller(sellerID string) ([]*entity.Client, error) {
	query := `
		SELECT id, name, lastname, business, email, phone, seller_id, created_at, updated_at
		FROM clients WHERE seller_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list clients by seller: %w", err)
	}
	defer rows.Close()
	return scanClients(rows)
}

// Update actualiza un cliente. seller_id no se toca: es inmutable.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, lastname = $3, business = $4, email = $5, phone = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.Lastname, client.Business, client.Email, client.Phone, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrClientExists
		}
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID. Devuelve false si no existía.
func (r *ClientRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete client: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanClients(rows pgx.Rows) ([]*entity.Client, error) {
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Lastname, &c.Business, &c.Email, &c.Phone,
			&c.SellerID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
