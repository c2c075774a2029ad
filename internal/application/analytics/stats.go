package analytics

import (
	"math"
	"time"

	"github.com/kibetdev/salespulse-api/internal/domain/entity"
)

// Stats holds the scalar KPIs derived from one period's sales
type Stats struct {
	AvgTicket  float64 `json:"avg_ticket"`
	Margin     float64 `json:"margin"` // profit as a percentage of revenue
	TotalItems int     `json:"total_items"`
	AvgPerDay  float64 `json:"avg_per_day"`
}

// DaysInPeriod returns the inclusive day count of a period:
// ceil(duration / 24h) + 1, both boundary days counted. An inverted period
// yields a non-positive count, which the KPI math treats as zero days.
func DaysInPeriod(p Period) int {
	d := p.Duration()
	if d < 0 {
		return 0
	}
	return int(math.Ceil(float64(d)/float64(24*time.Hour))) + 1
}

// CalculateStats derives the KPI card values from the current period's
// (already filtered) sales. Every ratio guards its denominator and degrades
// to zero instead of failing.
func CalculateStats(sales []entity.Sale, p Period) Stats {
	totals := SumTotals(sales)

	totalItems := 0
	for _, s := range sales {
		for _, item := range s.Items {
			totalItems += item.Quantity
		}
	}

	stats := Stats{TotalItems: totalItems}
	if totals.Count > 0 {
		stats.AvgTicket = totals.Total / float64(totals.Count)
	}
	if totals.Total > 0 {
		stats.Margin = (totals.Profit / totals.Total) * 100
	}
	if days := DaysInPeriod(p); days > 0 {
		stats.AvgPerDay = totals.Total / float64(days)
	}
	return stats
}
