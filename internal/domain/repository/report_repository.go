package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
)

// BestClientRow cliente con la suma de sus órdenes PENDING.
type BestClientRow struct {
	Client entity.Client
	Total  decimal.Decimal
}

// BestSellerRow vendedor con la suma de sus órdenes SUCCESS.
type BestSellerRow struct {
	Seller entity.User
	Total  decimal.Decimal
}

// ReportRepository consultas de agregación de solo lectura sobre órdenes.
type ReportRepository interface {
	// BestClients agrupa las órdenes PENDING por cliente, suma total y
	// ordena descendente por la suma.
	BestClients(ctx context.Context) ([]BestClientRow, error)
	// BestSellers agrupa las órdenes SUCCESS por vendedor, suma total y
	// ordena descendente por la suma.
	BestSellers(ctx context.Context) ([]BestSellerRow, error)
}
