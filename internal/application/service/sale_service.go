package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/kibetdev/salespulse-api/internal/domain/entity"
	"github.com/kibetdev/salespulse-api/internal/domain/repository"
	"github.com/kibetdev/salespulse-api/pkg/apperror"
	"github.com/kibetdev/salespulse-api/pkg/pagination"
)

// SaleService handles sale ingestion and retrieval. It is the data-source
// side of the analytics pipeline: every record it persists is normalized
// (profit defaulted to zero, items to an empty list) so the engine can
// aggregate without nil checks.
type SaleService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) *SaleService {
	return &SaleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	SaleDate time.Time
	Total    float64
	Profit   *float64
	Items    []CreateSaleItemInput
}

// CreateSaleItemInput represents one line item of a sale
type CreateSaleItemInput struct {
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	Price       float64
}

// CreateSale validates, normalizes and persists a sale
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	if input.Total < 0 {
		return nil, apperror.NewBadRequestError("Sale total must not be negative")
	}
	if input.SaleDate.IsZero() {
		return nil, apperror.NewBadRequestError("Sale date is required")
	}

	// Missing profit means "not recorded", stored as zero so sums never break
	profit := 0.0
	if input.Profit != nil {
		profit = *input.Profit
	}

	items := make([]entity.SaleItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be a positive integer")
		}
		if item.Price < 0 {
			return nil, apperror.NewBadRequestError("Item price must not be negative")
		}
		items = append(items, entity.SaleItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   toCents(item.Price),
		})
	}

	if err := s.backfillProductNames(ctx, items); err != nil {
		return nil, err
	}

	sale := &entity.Sale{
		SaleDate: input.SaleDate,
		Total:    toCents(input.Total),
		Profit:   toCents(profit),
		Items:    items,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	return s.saleRepo.GetByID(ctx, sale.ID)
}

// GetSale retrieves a sale by ID
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with filtering and pagination
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// DeleteSale removes a sale
func (s *SaleService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}
	return s.saleRepo.Delete(ctx, id)
}

// backfillProductNames resolves missing item names from the product
// catalog in a single batch lookup. Items referencing unknown products are
// kept as-is; the catalog is advisory, not authoritative.
func (s *SaleService) backfillProductNames(ctx context.Context, items []entity.SaleItem) error {
	var missing []uuid.UUID
	for i := range items {
		if items[i].ProductName == "" {
			missing = append(missing, items[i].ProductID)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	products, err := s.productRepo.GetByIDs(ctx, missing)
	if err != nil {
		return err
	}

	names := make(map[uuid.UUID]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	for i := range items {
		if items[i].ProductName == "" {
			items[i].ProductName = names[items[i].ProductID]
		}
	}
	return nil
}

// toCents converts a decimal currency amount to cents for storage
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
