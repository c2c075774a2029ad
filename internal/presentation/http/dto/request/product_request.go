package request

// CreateProductRequest represents the create product request payload
type CreateProductRequest struct {
	Name  string  `json:"name" binding:"required"`
	SKU   string  `json:"sku"`
	Price float64 `json:"price" binding:"min=0"`
}

// UpdateProductRequest represents the update product request payload
type UpdateProductRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}
