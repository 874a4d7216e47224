package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación de solo lectura sobre órdenes.
// Full scan sin paginación: el contrato es la corrección de la clave de
// agrupación y del filtro por estado, no la escala.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reporting.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// BestClients agrupa las órdenes PENDING por cliente y suma sus totales,
// descendente por la suma.
func (r *ReportRepo) BestClients(ctx context.Context) ([]repository.BestClientRow, error) {
	const query = `
	SELECT
	    c.id, c.name, c.lastname, c.business, c.email, c.phone, c.seller_id,
	    c.created_at, c.updated_at,
	    SUM(o.total) AS total
	FROM orders o
	JOIN clients c ON c.id = o.client_id
	WHERE o.status = $1
	GROUP BY c.id, c.name, c.lastname, c.business, c.email, c.phone, c.seller_id, c.created_at, c.updated_at
	ORDER BY total DESC`

	rows, err := r.pool.Query(ctx, query, entity.OrderStatusPending)
	if err != nil {
		return nil, fmt.Errorf("report.BestClients: %w", err)
	}
	defer rows.Close()

	var results []repository.BestClientRow
	for rows.Next() {
		var row repository.BestClientRow
		if err := rows.Scan(
			&row.Client.ID, &row.Client.Name, &row.Client.Lastname, &row.Client.Business,
			&row.Client.Email, &row.Client.Phone, &row.Client.SellerID,
			&row.Client.CreatedAt, &row.Client.UpdatedAt,
			&row.Total,
		); err != nil {
			return nil, fmt.Errorf("report.BestClients scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// BestSellers agrupa las órdenes SUCCESS por vendedor y suma sus totales,
// descendente por la suma.
func (r *ReportRepo) BestSellers(ctx context.Context) ([]repository.BestSellerRow, error) {
	const query = `
	SELECT
	    u.id, u.name, u.lastname, u.email, u.created_at,
	    SUM(o.total) AS total
	FROM orders o
	JOIN users u ON u.id = o.seller_id
	WHERE o.status = $1
	GROUP BY u.id, u.name, u.lastname, u.email, u.created_at
	ORDER BY total DESC`

	rows, err := r.pool.Query(ctx, query, entity.OrderStatusSuccess)
	if err != nil {
		return nil, fmt.Errorf("report.BestSellers: %w", err)
	}
	defer rows.Close()

	var results []repository.BestSellerRow
	for rows.Next() {
		var row repository.BestSellerRow
		if err := rows.Scan(
			&row.Seller.ID, &row.Seller.Name, &row.Seller.Lastname, &row.Seller.Email,
			&row.Seller.CreatedAt,
			&row.Total,
		); err != nil {
			return nil, fmt.Errorf("report.BestSellers scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
