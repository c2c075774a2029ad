package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a catalog entry referenced by sale line items. The catalog is
// optional: a sale item carries its own product name, but items ingested
// without one are backfilled from here.
type Product struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	SKU       string         `gorm:"size:100;unique;not null" json:"sku"`
	UnitPrice int64          `gorm:"default:0" json:"unit_price"` // Stored in cents
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetUnitPriceDecimal returns the unit price as a decimal (for display)
func (p *Product) GetUnitPriceDecimal() float64 {
	return float64(p.UnitPrice) / 100
}

// productJSON is a helper struct for JSON marshaling with a decimal price
type productJSON struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	SKU       string    `json:"sku"`
	UnitPrice float64   `json:"unit_price"` // Decimal value for JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON converts Product to JSON with a decimal price
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productJSON{
		ID:        p.ID,
		Name:      p.Name,
		Slug:      p.Slug,
		SKU:       p.SKU,
		UnitPrice: p.GetUnitPriceDecimal(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	})
}
