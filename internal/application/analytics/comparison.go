package analytics

import "github.com/kibetdev/salespulse-api/internal/domain/entity"

// Totals holds the aggregate revenue, transaction count and profit of one
// period's sales
type Totals struct {
	Total  float64 `json:"total"`
	Count  int     `json:"count"`
	Profit float64 `json:"profit"`
}

// ChangeRates holds the percentage change of each aggregate between two
// periods
type ChangeRates struct {
	Total  float64 `json:"total"`
	Count  float64 `json:"count"`
	Profit float64 `json:"profit"`
}

// Comparison is the period-over-period result for the dashboard cards
type Comparison struct {
	Current       Totals      `json:"current"`
	Previous      Totals      `json:"previous"`
	PercentChange ChangeRates `json:"percent_change"`
}

// SumTotals accumulates revenue, count and profit over a set of sales
func SumTotals(sales []entity.Sale) Totals {
	var t Totals
	for _, s := range sales {
		t.Total += s.GetTotalDecimal()
		t.Count++
		t.Profit += s.GetProfitDecimal()
	}
	return t
}

// PercentChange computes the relative change from previous to current.
//
// A zero baseline is special-cased: any activity against an empty previous
// period reads as a full +100%, and no activity at all reads as 0%. This
// keeps the result finite without hiding that something new happened.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return ((current - previous) / previous) * 100
}

// Compare aggregates both periods and derives the percentage change of
// revenue, transaction count and profit
func Compare(currentSales, previousSales []entity.Sale) Comparison {
	current := SumTotals(currentSales)
	previous := SumTotals(previousSales)

	return Comparison{
		Current:  current,
		Previous: previous,
		PercentChange: ChangeRates{
			Total:  PercentChange(current.Total, previous.Total),
			Count:  PercentChange(float64(current.Count), float64(previous.Count)),
			Profit: PercentChange(current.Profit, previous.Profit),
		},
	}
}
