package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kibetdev/salespulse-api/internal/domain/entity"
	"github.com/kibetdev/salespulse-api/internal/domain/repository"
	"github.com/kibetdev/salespulse-api/pkg/apperror"
	"github.com/kibetdev/salespulse-api/pkg/pagination"
	"github.com/kibetdev/salespulse-api/pkg/utils"
)

// ProductService maintains the product catalog
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name  string
	SKU   string
	Price float64
}

// CreateProduct creates a new catalog product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Product price must not be negative")
	}

	// Auto-generate SKU if not provided
	sku := input.SKU
	if sku == "" {
		sku = utils.GenerateSKU()
	}

	existing, err := s.productRepo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product SKU already exists")
	}

	product := &entity.Product{
		Name:      input.Name,
		Slug:      utils.Slugify(input.Name),
		SKU:       sku,
		UnitPrice: toCents(input.Price),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists catalog products with search and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	Name  *string
	Price *float64
}

// UpdateProduct updates a catalog product
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewBadRequestError("Product name must not be empty")
		}
		product.Name = *input.Name
		product.Slug = utils.Slugify(*input.Name)
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Product price must not be negative")
		}
		product.UnitPrice = toCents(*input.Price)
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a catalog product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}
