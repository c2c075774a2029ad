package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kibetdev/salespulse-api/internal/domain/entity"
	domainRepo "github.com/kibetdev/salespulse-api/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})

	if params.StartDate != nil {
		query = query.Where("sale_date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("sale_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "sale_date"
	sortOrder := "DESC"
	if params.SortBy == "created_at" || params.SortBy == "total" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()

	err := query.
		Preload("Items").
		Order(sortBy + " " + sortOrder).
		Offset(params.Pagination.Offset()).
		Limit(params.Pagination.PerPage).
		Find(&sales).Error
	if err != nil {
		return nil, 0, err
	}

	return sales, total, nil
}

func (r *saleRepository) ListBetween(ctx context.Context, start, end time.Time) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("sale_date >= ? AND sale_date <= ?", start, end).
		Order("sale_date ASC").
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.SaleItem{}, "sale_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Sale{}, "id = ?", id).Error
	})
}
