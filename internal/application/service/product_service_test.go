package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/kibetdev/salespulse-api/internal/domain/entity"
	"github.com/kibetdev/salespulse-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	repo := &stubProductRepo{}
	svc := NewProductService(repo)

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:  "Flat White",
		Price: 4.5,
	})

	require.NoError(t, err)
	assert.Equal(t, "Flat White", product.Name)
	assert.Equal(t, "flat-white", product.Slug)
	assert.Equal(t, int64(450), product.UnitPrice)
	assert.NotEmpty(t, product.SKU)
}

func TestCreateProductRejectsDuplicateSKU(t *testing.T) {
	repo := &stubProductRepo{products: []entity.Product{
		{ID: uuid.New(), Name: "Americano", SKU: "PROD-1"},
	}}
	svc := NewProductService(repo)

	_, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name: "Another",
		SKU:  "PROD-1",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestUpdateProduct(t *testing.T) {
	id := uuid.New()
	repo := &stubProductRepo{products: []entity.Product{
		{ID: id, Name: "Americano", Slug: "americano", SKU: "PROD-1", UnitPrice: 300},
	}}
	svc := NewProductService(repo)

	name := "Americano Grande"
	price := 3.75
	product, err := svc.UpdateProduct(context.Background(), id, &UpdateProductInput{
		Name:  &name,
		Price: &price,
	})

	require.NoError(t, err)
	assert.Equal(t, "Americano Grande", product.Name)
	assert.Equal(t, "americano-grande", product.Slug)
	assert.Equal(t, int64(375), product.UnitPrice)
}

func TestDeleteProductNotFound(t *testing.T) {
	svc := NewProductService(&stubProductRepo{})

	err := svc.DeleteProduct(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}
