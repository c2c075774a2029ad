package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kibetdev/salespulse-api/internal/domain/entity"
	domainRepo "github.com/kibetdev/salespulse-api/internal/domain/repository"
)

// stubSaleRepo is an in-memory SaleRepository for service tests
type stubSaleRepo struct {
	sales            []entity.Sale
	listBetweenCalls int
}

func (r *stubSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	for i := range sale.Items {
		if sale.Items[i].ID == uuid.Nil {
			sale.Items[i].ID = uuid.New()
		}
		sale.Items[i].SaleID = sale.ID
	}
	r.sales = append(r.sales, *sale)
	return nil
}

func (r *stubSaleRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	for i := range r.sales {
		if r.sales[i].ID == id {
			sale := r.sales[i]
			return &sale, nil
		}
	}
	return nil, nil
}

func (r *stubSaleRepo) List(_ context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	params.Pagination.Validate()
	return r.sales, int64(len(r.sales)), nil
}

func (r *stubSaleRepo) ListBetween(_ context.Context, start, end time.Time) ([]entity.Sale, error) {
	r.listBetweenCalls++
	var matched []entity.Sale
	for _, s := range r.sales {
		if !s.SaleDate.Before(start) && !s.SaleDate.After(end) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

func (r *stubSaleRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.sales {
		if r.sales[i].ID == id {
			r.sales = append(r.sales[:i], r.sales[i+1:]...)
			return nil
		}
	}
	return nil
}

// stubProductRepo is an in-memory ProductRepository for service tests
type stubProductRepo struct {
	products []entity.Product
}

func (r *stubProductRepo) Create(_ context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products = append(r.products, *product)
	return nil
}

func (r *stubProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			product := r.products[i]
			return &product, nil
		}
	}
	return nil, nil
}

func (r *stubProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var matched []entity.Product
	for _, id := range ids {
		for i := range r.products {
			if r.products[i].ID == id {
				matched = append(matched, r.products[i])
			}
		}
	}
	return matched, nil
}

func (r *stubProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for i := range r.products {
		if r.products[i].SKU == sku {
			product := r.products[i]
			return &product, nil
		}
	}
	return nil, nil
}

func (r *stubProductRepo) Update(_ context.Context, product *entity.Product) error {
	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubProductRepo) List(_ context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	params.Pagination.Validate()
	return r.products, int64(len(r.products)), nil
}
