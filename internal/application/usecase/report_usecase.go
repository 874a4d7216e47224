package usecase

import (
	"context"

	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// ReportUseCase reportes agregados de solo lectura sobre órdenes.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// BestClients clientes con mayor valor acumulado en órdenes PENDING.
func (uc *ReportUseCase) BestClients(ctx context.Context) ([]dto.BestClientResponse, error) {
	rows, err := uc.repo.BestClients(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BestClientResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.BestClientResponse{
			Client: *toClientResponse(&row.Client),
			Total:  row.Total,
		})
	}
	return out, nil
}

// BestSellers vendedores con mayor valor acumulado en órdenes SUCCESS.
func (uc *ReportUseCase) BestSellers(ctx context.Context) ([]dto.BestSellerResponse, error) {
	rows, err := uc.repo.BestSellers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BestSellerResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.BestSellerResponse{
			Seller: dto.UserResponse{
				ID:        row.Seller.ID,
				Name:      row.Seller.Name,
				Lastname:  row.Seller.Lastname,
				Email:     row.Seller.Email,
				CreatedAt: row.Seller.CreatedAt,
			},
			Total: row.Total,
		})
	}
	return out, nil
}
