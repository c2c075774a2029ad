package analytics

import (
	"sort"
	"time"

	"github.com/kibetdev/salespulse-api/internal/domain/entity"
)

// DateBucket aggregates the sales of one calendar day
type DateBucket struct {
	Date   string  `json:"date"` // short display label, e.g. "05 Jan"
	Total  float64 `json:"total"`
	Count  int     `json:"count"`
	Profit float64 `json:"profit"`
}

// WeekdayBucket aggregates the sales of one weekday across the period.
// DayIndex follows the 0=Sunday convention.
type WeekdayBucket struct {
	Day      string  `json:"day"`
	DayIndex int     `json:"day_index"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// HourBucket aggregates the sales of one hour of day (0-23)
type HourBucket struct {
	Hour  int     `json:"hour"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// Buckets groups a period's sales along three independent dimensions
type Buckets struct {
	ByDate    []DateBucket    `json:"by_date"`
	ByWeekday []WeekdayBucket `json:"by_weekday"`
	ByHour    []HourBucket    `json:"by_hour"`
}

var weekdayNames = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// FilterByPeriod returns the sales whose date falls inside the period,
// both bounds inclusive. The input slice is never mutated.
func FilterByPeriod(sales []entity.Sale, p Period) []entity.Sale {
	filtered := make([]entity.Sale, 0, len(sales))
	for _, s := range sales {
		if p.Contains(s.SaleDate) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// AggregateBuckets groups the given (already filtered) sales by calendar
// day, by weekday and by hour of day.
//
// ByDate holds one chronologically ordered entry per day that has at least
// one sale. ByWeekday always holds exactly 7 entries, Monday first, zero
// values included. ByHour drops hours with no sales.
func AggregateBuckets(sales []entity.Sale) Buckets {
	type dayAccum struct {
		day    time.Time
		total  float64
		count  int
		profit float64
	}

	dayIndex := make(map[time.Time]*dayAccum)
	var days []*dayAccum
	var weekdays [7]WeekdayBucket
	var hours [24]HourBucket

	for i := range weekdays {
		weekdays[i] = WeekdayBucket{Day: weekdayNames[i], DayIndex: i}
	}
	for i := range hours {
		hours[i] = HourBucket{Hour: i}
	}

	for _, s := range sales {
		total := s.GetTotalDecimal()
		profit := s.GetProfitDecimal()

		day := time.Date(s.SaleDate.Year(), s.SaleDate.Month(), s.SaleDate.Day(), 0, 0, 0, 0, s.SaleDate.Location())
		acc, ok := dayIndex[day]
		if !ok {
			acc = &dayAccum{day: day}
			dayIndex[day] = acc
			days = append(days, acc)
		}
		acc.total += total
		acc.count++
		acc.profit += profit

		wd := int(s.SaleDate.Weekday())
		weekdays[wd].Total += total
		weekdays[wd].Count++

		h := s.SaleDate.Hour()
		hours[h].Total += total
		hours[h].Count++
	}

	// Buckets are keyed by the full calendar day, so periods spanning a
	// year boundary still sort chronologically; the short label is
	// display-only.
	sort.Slice(days, func(i, j int) bool { return days[i].day.Before(days[j].day) })

	byDate := make([]DateBucket, 0, len(days))
	for _, acc := range days {
		byDate = append(byDate, DateBucket{
			Date:   acc.day.Format("02 Jan"),
			Total:  acc.total,
			Count:  acc.count,
			Profit: acc.profit,
		})
	}

	// Re-order weekdays so Monday leads and Sunday closes the week
	byWeekday := make([]WeekdayBucket, 0, 7)
	for i := 1; i < 7; i++ {
		byWeekday = append(byWeekday, weekdays[i])
	}
	byWeekday = append(byWeekday, weekdays[0])

	byHour := make([]HourBucket, 0, 24)
	for _, hb := range hours {
		if hb.Count > 0 {
			byHour = append(byHour, hb)
		}
	}

	return Buckets{ByDate: byDate, ByWeekday: byWeekday, ByHour: byHour}
}
