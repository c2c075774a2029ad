package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateSaleRequest represents a sale ingestion request
type CreateSaleRequest struct {
	SaleDate time.Time               `json:"sale_date" binding:"required"`
	Total    float64                 `json:"total" binding:"min=0"`
	Profit   *float64                `json:"profit"`
	Items    []CreateSaleItemRequest `json:"items" binding:"omitempty,dive"`
}

// CreateSaleItemRequest represents one line item of a sale ingestion request
type CreateSaleItemRequest struct {
	ProductID   uuid.UUID `json:"product_id" binding:"required"`
	ProductName string    `json:"product_name" binding:"max=255"` // backfilled from the catalog when empty
	Quantity    int       `json:"quantity" binding:"required,min=1"`
	Price       float64   `json:"price" binding:"min=0"`
}

// SaleFilterRequest represents sale listing filter parameters
type SaleFilterRequest struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

// AnalyticsRequest represents the analytics query parameters. Period is one
// of day|week|month|year|custom; start and end only apply to custom.
type AnalyticsRequest struct {
	Period string `form:"period"`
	Start  string `form:"start"`
	End    string `form:"end"`
	Limit  int    `form:"limit"`
}
