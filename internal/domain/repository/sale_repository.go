package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kibetdev/salespulse-api/internal/domain/entity"
	"github.com/kibetdev/salespulse-api/pkg/pagination"
)

// SaleFilterParams represents filter parameters for listing sales
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// SaleRepository defines the data-source contract for sale records.
// The analytics engine never talks to storage directly; it receives a fully
// materialized slice of sales from here.
type SaleRepository interface {
	// Create persists a sale together with its line items
	Create(ctx context.Context, sale *entity.Sale) error

	// GetByID returns a sale with items preloaded, or nil when not found
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// List returns sales matching the filter plus the total match count
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)

	// ListBetween returns every sale dated within [start, end], items
	// preloaded, ordered by sale date
	ListBetween(ctx context.Context, start, end time.Time) ([]entity.Sale, error)

	// Delete soft-deletes a sale
	Delete(ctx context.Context, id uuid.UUID) error
}
