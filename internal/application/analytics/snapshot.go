package analytics

import "github.com/kibetdev/salespulse-api/internal/domain/entity"

// Snapshot is the complete result of one engine run. Every field is always
// populated: empty slices and zero values rather than nulls, so consumers
// never need nil checks. A snapshot is built fresh per invocation and never
// mutated afterwards.
type Snapshot struct {
	Period         Period          `json:"period"`
	PreviousPeriod Period          `json:"previous_period"`
	ByDate         []DateBucket    `json:"by_date"`
	ByWeekday      []WeekdayBucket `json:"by_weekday"`
	ByHour         []HourBucket    `json:"by_hour"`
	Comparison     Comparison      `json:"comparison"`
	Stats          Stats           `json:"stats"`
	TopProducts    []ProductRank   `json:"top_products"`
}

// Compute runs the whole engine over the full sales collection for the
// given period: it filters the current and previous windows, buckets the
// current sales three ways, compares the two windows, derives the KPI
// scalars and ranks the top products.
func Compute(sales []entity.Sale, p Period, topLimit int) *Snapshot {
	prev := PreviousPeriod(p)

	currentSales := FilterByPeriod(sales, p)
	previousSales := FilterByPeriod(sales, prev)

	buckets := AggregateBuckets(currentSales)

	return &Snapshot{
		Period:         p,
		PreviousPeriod: prev,
		ByDate:         buckets.ByDate,
		ByWeekday:      buckets.ByWeekday,
		ByHour:         buckets.ByHour,
		Comparison:     Compare(currentSales, previousSales),
		Stats:          CalculateStats(currentSales, p),
		TopProducts:    TopProducts(currentSales, topLimit),
	}
}
