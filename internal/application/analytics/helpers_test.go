package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/kibetdev/salespulse-api/internal/domain/entity"
	"github.com/kibetdev/salespulse-api/internal/domain/enum"
)

// newSale builds a sale with amounts given in cents
func newSale(date time.Time, totalCents, profitCents int64, items ...entity.SaleItem) entity.Sale {
	return entity.Sale{
		ID:       uuid.New(),
		SaleDate: date,
		Total:    totalCents,
		Profit:   profitCents,
		Items:    items,
	}
}

// newItem builds a line item with the unit price given in cents
func newItem(productID uuid.UUID, name string, quantity int, unitPriceCents int64) entity.SaleItem {
	return entity.SaleItem{
		ID:          uuid.New(),
		ProductID:   productID,
		ProductName: name,
		Quantity:    quantity,
		UnitPrice:   unitPriceCents,
	}
}

// customPeriod builds an inclusive custom window from explicit bounds
func customPeriod(start, end time.Time) Period {
	return Period{Kind: enum.PeriodCustom, Start: start, End: end}
}
