// Package dashboard contains the budget analysis engine and the dashboard use cases built on it.
package dashboard

import (
	"fmt"
	"time"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// Bucket is a half-open date range [Start, End) used to group transactions for trend charts.
type Bucket struct {
	Start time.Time
	End   time.Time
	Label string
}

// Contains reports whether t falls inside the bucket.
func (b Bucket) Contains(t time.Time) bool {
	return !t.Before(b.Start) && t.Before(b.End)
}

// TrendPoint is the expense total of one bucket.
type TrendPoint struct {
	Date   time.Time
	Label  string
	Amount float64
}

// TransactionMatcher selects the transactions that count toward a total.
type TransactionMatcher func(t *entity.Transaction) bool

// GenerateBuckets partitions the time frame ending at now into contiguous buckets, oldest first:
// 7 daily buckets ending today for a week, 4 Monday-aligned weekly buckets ending with the
// current week for a month, and 12 calendar months ending with the current month for a year.
// Boundaries are computed in now's location.
func GenerateBuckets(tf entity.TimeFrame, now time.Time) []Bucket {
	n := tf.BucketCount()
	buckets := make([]Bucket, n)

	switch tf {
	case entity.TimeFrameWeek:
		today := startOfDay(now)
		for i := 0; i < n; i++ {
			start := today.AddDate(0, 0, i-(n-1))
			buckets[i] = Bucket{
				Start: start,
				End:   start.AddDate(0, 0, 1),
				Label: GeneratePeriodLabel(start, tf),
			}
		}

	case entity.TimeFrameYear:
		currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		for i := 0; i < n; i++ {
			start := currentMonth.AddDate(0, i-(n-1), 0)
			buckets[i] = Bucket{
				Start: start,
				End:   start.AddDate(0, 1, 0),
				Label: GeneratePeriodLabel(start, tf),
			}
		}

	default:
		currentWeek := getWeekStartDate(now)
		for i := 0; i < n; i++ {
			start := currentWeek.AddDate(0, 0, 7*(i-(n-1)))
			buckets[i] = Bucket{
				Start: start,
				End:   start.AddDate(0, 0, 7),
				Label: GeneratePeriodLabel(start, tf),
			}
		}
	}

	return buckets
}

// GeneratePeriodLabel generates a short chart label for a bucket start.
// Formats:
// - Week and month frames: "{month_abbr} {day}" (e.g., "Mar 11")
// - Year frame: "{month_abbr} {year}" (e.g., "Mar 2025")
func GeneratePeriodLabel(date time.Time, tf entity.TimeFrame) string {
	switch tf {
	case entity.TimeFrameYear:
		return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Year())
	default:
		return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Day())
	}
}

// FilterByTimeFrame returns the transactions dated within [tf.WindowStart(now), now], both ends inclusive.
func FilterByTimeFrame(transactions []*entity.Transaction, tf entity.TimeFrame, now time.Time) []*entity.Transaction {
	start := tf.WindowStart(now)
	filtered := make([]*entity.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t == nil {
			continue
		}
		if !t.Date.Before(start) && !t.Date.After(now) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// TrendSeries sums matching expenses per bucket. Every bucket is reported,
// with 0 for buckets that have no matching transactions.
func TrendSeries(buckets []Bucket, transactions []*entity.Transaction, match TransactionMatcher) []TrendPoint {
	points := make([]TrendPoint, len(buckets))
	for i, b := range buckets {
		points[i] = TrendPoint{Date: b.Start, Label: b.Label}
	}

	for _, t := range transactions {
		if t == nil || !t.IsExpense || (match != nil && !match(t)) {
			continue
		}
		for i := range buckets {
			if buckets[i].Contains(t.Date) {
				points[i].Amount = finiteOrZero(points[i].Amount + sanitizeAmount(t.Amount))
				break
			}
		}
	}

	return points
}

// CategoryMatcher matches transactions whose key resolves to category.
func CategoryMatcher(tax *entity.Taxonomy, category entity.Category) TransactionMatcher {
	return func(t *entity.Transaction) bool {
		return tax.Resolve(t.Category) == category
	}
}

// monthAbbreviations maps months to English abbreviations.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dec",
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// getWeekStartDate returns the Monday of the week containing the given date.
func getWeekStartDate(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	daysFromMonday := weekday - 1
	return time.Date(date.Year(), date.Month(), date.Day()-daysFromMonday, 0, 0, 0, 0, date.Location())
}
