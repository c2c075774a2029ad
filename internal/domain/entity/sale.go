package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale represents a single completed sale transaction.
//
// Profit and Items are always defined: ingestion normalizes a missing profit
// to 0 and missing items to an empty slice, so aggregation code never needs
// nil checks.
type Sale struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleDate  time.Time      `gorm:"not null;index" json:"sale_date"`
	Total     int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Profit    int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []SaleItem `gorm:"foreignKey:SaleID" json:"items"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		Total  float64 `json:"total"`
		Profit float64 `json:"profit"`
	}{
		Alias:  Alias(s),
		Total:  float64(s.Total) / 100,
		Profit: float64(s.Profit) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// GetTotalDecimal returns the total as a decimal currency amount
func (s *Sale) GetTotalDecimal() float64 {
	return float64(s.Total) / 100
}

// GetProfitDecimal returns the profit as a decimal currency amount
func (s *Sale) GetProfitDecimal() float64 {
	return float64(s.Profit) / 100
}

// SaleItem represents a line item in a sale
type SaleItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string         `gorm:"size:255;not null" json:"product_name"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	UnitPrice   int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (si SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
	}{
		Alias:     Alias(si),
		UnitPrice: float64(si.UnitPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}

// GetUnitPriceDecimal returns the unit price as a decimal currency amount
func (si *SaleItem) GetUnitPriceDecimal() float64 {
	return float64(si.UnitPrice) / 100
}

// LineRevenue returns quantity * unit price in decimal currency units
func (si *SaleItem) LineRevenue() float64 {
	return float64(si.UnitPrice) / 100 * float64(si.Quantity)
}
