package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kibetdev/salespulse-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopProductsRanksByQuantity(t *testing.T) {
	day := time.Date(2025, time.June, 5, 10, 0, 0, 0, time.UTC)
	productA := uuid.New()
	productB := uuid.New()

	sales := []entity.Sale{
		newSale(day, 3500, 0,
			newItem(productA, "Americano", 3, 1000),
			newItem(productB, "Croissant", 1, 500),
		),
	}

	ranked := TopProducts(sales, 10)

	require.Len(t, ranked, 2)
	assert.Equal(t, "Americano", ranked[0].Name)
	assert.Equal(t, 3, ranked[0].Quantity)
	assert.InDelta(t, 30.0, ranked[0].Revenue, 1e-9)
	assert.Equal(t, "Croissant", ranked[1].Name)
}

func TestTopProductsAccumulatesAcrossSales(t *testing.T) {
	day := time.Date(2025, time.June, 5, 10, 0, 0, 0, time.UTC)
	productA := uuid.New()

	sales := []entity.Sale{
		newSale(day, 2000, 0, newItem(productA, "Americano", 2, 1000)),
		newSale(day.Add(time.Hour), 3000, 0, newItem(productA, "Americano", 3, 1000)),
	}

	ranked := TopProducts(sales, 10)

	require.Len(t, ranked, 1)
	assert.Equal(t, 5, ranked[0].Quantity)
	assert.InDelta(t, 50.0, ranked[0].Revenue, 1e-9)
}

func TestTopProductsStableTieBreak(t *testing.T) {
	day := time.Date(2025, time.June, 5, 10, 0, 0, 0, time.UTC)

	// Same quantity everywhere: encounter order must survive the sort
	sales := []entity.Sale{
		newSale(day, 1000, 0,
			newItem(uuid.New(), "First", 2, 100),
			newItem(uuid.New(), "Second", 2, 100),
			newItem(uuid.New(), "Third", 2, 100),
		),
	}

	ranked := TopProducts(sales, 10)

	require.Len(t, ranked, 3)
	assert.Equal(t, "First", ranked[0].Name)
	assert.Equal(t, "Second", ranked[1].Name)
	assert.Equal(t, "Third", ranked[2].Name)
}

func TestTopProductsTruncatesToLimit(t *testing.T) {
	day := time.Date(2025, time.June, 5, 10, 0, 0, 0, time.UTC)

	items := make([]entity.SaleItem, 0, 12)
	for i := 0; i < 12; i++ {
		items = append(items, newItem(uuid.New(), fmt.Sprintf("Product %d", i), 12-i, 100))
	}
	sales := []entity.Sale{newSale(day, 1000, 0, items...)}

	ranked := TopProducts(sales, 0) // zero limit falls back to the default

	require.Len(t, ranked, DefaultTopProductsLimit)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Quantity, ranked[i].Quantity)
	}
}

func TestTopProductsKeepsFirstSeenName(t *testing.T) {
	day := time.Date(2025, time.June, 5, 10, 0, 0, 0, time.UTC)
	productA := uuid.New()

	sales := []entity.Sale{
		newSale(day, 1000, 0, newItem(productA, "Americano", 1, 1000)),
		newSale(day.Add(time.Hour), 1000, 0, newItem(productA, "Americano Grande", 1, 1000)),
	}

	ranked := TopProducts(sales, 10)

	require.Len(t, ranked, 1)
	assert.Equal(t, "Americano", ranked[0].Name)
}

func TestTopProductsEmptySales(t *testing.T) {
	ranked := TopProducts(nil, 10)

	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}
