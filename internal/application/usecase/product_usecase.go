package usecase

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
	"github.com/tu-usuario/ventas-api/pkg/pubsub"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ProductUseCase CRUD y búsqueda de catálogo. Crear un producto publica un
// evento en el broker (entrega best-effort a los suscriptores activos).
type ProductUseCase struct {
	repo   repository.ProductRepository
	broker *pubsub.Broker
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, broker *pubsub.Broker) *ProductUseCase {
	return &ProductUseCase{repo: repo, broker: broker}
}

// Create valida y persiste un producto nuevo, y publica el evento productCreated.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() || in.Stock < 0 {
		return nil, fmt.Errorf("%w: solamente valores positivos", domain.ErrInvalidInput)
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Stock:     in.Stock,
		Price:     in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	uc.broker.Publish(*resp)
	return resp, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Search busca productos por texto libre sobre el nombre. El texto se
// normaliza quitando acentos antes de consultar.
func (uc *ProductUseCase) Search(text string) ([]dto.ProductResponse, error) {
	products, err := uc.repo.Search(normalizeSearch(text))
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Update aplica los campos presentes. Precio y stock negativos se rechazan.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if product.Price.IsNegative() || product.Stock < 0 {
		return nil, fmt.Errorf("%w: solamente valores positivos", domain.ErrInvalidInput)
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Devuelve error si no existía.
func (uc *ProductUseCase) Delete(id string) (bool, error) {
	ok, err := uc.repo.Delete(id)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, domain.ErrProductNotFound
	}
	return true, nil
}

// searchNormalizer descompone, quita marcas diacríticas y recompone.
var searchNormalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizeSearch(s string) string {
	out, _, err := transform.String(searchNormalizer, s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(out)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Stock:     p.Stock,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out
}
