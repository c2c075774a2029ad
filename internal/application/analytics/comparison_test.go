package analytics

import (
	"testing"
	"time"

	"github.com/kibetdev/salespulse-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"both zero", 0, 0, 0},
		{"new activity against empty baseline", 5, 0, 100},
		{"halved", 50, 100, -50},
		{"doubled", 200, 100, 100},
		{"unchanged", 100, 100, 0},
		{"dropped to zero", 0, 100, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PercentChange(tt.current, tt.previous), 1e-9)
		})
	}
}

func TestSumTotals(t *testing.T) {
	day := time.Date(2025, time.June, 5, 10, 0, 0, 0, time.UTC)
	sales := []entity.Sale{
		newSale(day, 1000, 200),
		newSale(day, 1500, 300),
		newSale(day, 500, 0), // no recorded profit, sums must still work
	}

	totals := SumTotals(sales)

	assert.InDelta(t, 30.0, totals.Total, 1e-9)
	assert.Equal(t, 3, totals.Count)
	assert.InDelta(t, 5.0, totals.Profit, 1e-9)
}

func TestSumTotalsEmpty(t *testing.T) {
	totals := SumTotals(nil)

	assert.Zero(t, totals.Total)
	assert.Zero(t, totals.Count)
	assert.Zero(t, totals.Profit)
}

func TestCompare(t *testing.T) {
	day := time.Date(2025, time.June, 5, 10, 0, 0, 0, time.UTC)
	current := []entity.Sale{
		newSale(day, 10000, 2000),
		newSale(day, 10000, 2000),
	}
	previous := []entity.Sale{
		newSale(day.AddDate(0, -1, 0), 10000, 1000),
	}

	cmp := Compare(current, previous)

	assert.InDelta(t, 200.0, cmp.Current.Total, 1e-9)
	assert.Equal(t, 2, cmp.Current.Count)
	assert.InDelta(t, 100.0, cmp.Previous.Total, 1e-9)
	assert.Equal(t, 1, cmp.Previous.Count)

	assert.InDelta(t, 100.0, cmp.PercentChange.Total, 1e-9)
	assert.InDelta(t, 100.0, cmp.PercentChange.Count, 1e-9)
	assert.InDelta(t, 300.0, cmp.PercentChange.Profit, 1e-9)
}

func TestCompareAgainstEmptyPrevious(t *testing.T) {
	day := time.Date(2025, time.June, 5, 10, 0, 0, 0, time.UTC)
	current := []entity.Sale{newSale(day, 5000, 0)}

	cmp := Compare(current, nil)

	assert.InDelta(t, 100.0, cmp.PercentChange.Total, 1e-9)
	assert.InDelta(t, 100.0, cmp.PercentChange.Count, 1e-9)
	// No profit on either side reads as no change, not as new activity
	assert.Zero(t, cmp.PercentChange.Profit)
}
