package analytics

import (
	"testing"
	"time"

	"github.com/kibetdev/salespulse-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByPeriodInclusiveBounds(t *testing.T) {
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 30, 23, 59, 59, 999000000, time.UTC)
	p := customPeriod(start, end)

	sales := []entity.Sale{
		newSale(start, 1000, 0),                       // exactly at start
		newSale(end, 2000, 0),                         // exactly at end
		newSale(end.Add(time.Millisecond), 3000, 0),   // one ms past end
		newSale(start.Add(-time.Millisecond), 4000, 0), // one ms before start
	}

	filtered := FilterByPeriod(sales, p)

	require.Len(t, filtered, 2)
	assert.Equal(t, int64(1000), filtered[0].Total)
	assert.Equal(t, int64(2000), filtered[1].Total)
}

func TestFilterByPeriodInvertedWindowIsEmpty(t *testing.T) {
	end := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	p := customPeriod(start, end)

	sales := []entity.Sale{
		newSale(time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC), 1000, 0),
	}

	assert.Empty(t, FilterByPeriod(sales, p))
}

func TestAggregateBucketsByDateMergesSameDay(t *testing.T) {
	day := time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)
	sales := []entity.Sale{
		newSale(day.Add(9*time.Hour), 1000, 200),
		newSale(day.Add(17*time.Hour), 1500, 300),
	}

	buckets := AggregateBuckets(sales)

	require.Len(t, buckets.ByDate, 1)
	assert.Equal(t, "05 Jun", buckets.ByDate[0].Date)
	assert.InDelta(t, 25.0, buckets.ByDate[0].Total, 1e-9)
	assert.Equal(t, 2, buckets.ByDate[0].Count)
	assert.InDelta(t, 5.0, buckets.ByDate[0].Profit, 1e-9)
}

func TestAggregateBucketsByDateChronologicalAcrossYearBoundary(t *testing.T) {
	sales := []entity.Sale{
		newSale(time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC), 2000, 0),
		newSale(time.Date(2024, time.December, 31, 10, 0, 0, 0, time.UTC), 1000, 0),
	}

	buckets := AggregateBuckets(sales)

	require.Len(t, buckets.ByDate, 2)
	assert.Equal(t, "31 Dec", buckets.ByDate[0].Date)
	assert.Equal(t, "01 Jan", buckets.ByDate[1].Date)
}

func TestAggregateBucketsWeekdayAlwaysSevenEntries(t *testing.T) {
	buckets := AggregateBuckets(nil)

	require.Len(t, buckets.ByWeekday, 7)
	assert.Equal(t, "Monday", buckets.ByWeekday[0].Day)
	assert.Equal(t, 1, buckets.ByWeekday[0].DayIndex)
	assert.Equal(t, "Sunday", buckets.ByWeekday[6].Day)
	assert.Equal(t, 0, buckets.ByWeekday[6].DayIndex)

	for _, wb := range buckets.ByWeekday {
		assert.Zero(t, wb.Count)
		assert.Zero(t, wb.Total)
	}
}

func TestAggregateBucketsWeekdayAccumulation(t *testing.T) {
	// 2025-06-22 is a Sunday, 2025-06-16 a Monday
	sales := []entity.Sale{
		newSale(time.Date(2025, time.June, 22, 12, 0, 0, 0, time.UTC), 1000, 0),
		newSale(time.Date(2025, time.June, 16, 12, 0, 0, 0, time.UTC), 2000, 0),
		newSale(time.Date(2025, time.June, 16, 15, 0, 0, 0, time.UTC), 500, 0),
	}

	buckets := AggregateBuckets(sales)

	monday := buckets.ByWeekday[0]
	sunday := buckets.ByWeekday[6]

	assert.Equal(t, 2, monday.Count)
	assert.InDelta(t, 25.0, monday.Total, 1e-9)
	assert.Equal(t, 1, sunday.Count)
	assert.InDelta(t, 10.0, sunday.Total, 1e-9)
}

func TestAggregateBucketsByHourOmitsEmptyHours(t *testing.T) {
	day := time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)
	sales := []entity.Sale{
		newSale(day.Add(9*time.Hour+15*time.Minute), 1000, 0),
		newSale(day.Add(9*time.Hour+45*time.Minute), 2000, 0),
		newSale(day.Add(14*time.Hour), 500, 0),
	}

	buckets := AggregateBuckets(sales)

	require.Len(t, buckets.ByHour, 2)
	assert.Equal(t, 9, buckets.ByHour[0].Hour)
	assert.Equal(t, 2, buckets.ByHour[0].Count)
	assert.InDelta(t, 30.0, buckets.ByHour[0].Total, 1e-9)
	assert.Equal(t, 14, buckets.ByHour[1].Hour)

	for _, hb := range buckets.ByHour {
		assert.NotZero(t, hb.Count)
	}
}

func TestAggregateBucketsEmptyInput(t *testing.T) {
	buckets := AggregateBuckets([]entity.Sale{})

	assert.Empty(t, buckets.ByDate)
	assert.Len(t, buckets.ByWeekday, 7)
	assert.Empty(t, buckets.ByHour)
}
