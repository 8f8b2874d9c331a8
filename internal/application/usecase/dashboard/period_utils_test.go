package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/domain/entity"
)

func expense(amount float64, category string, date time.Time) *entity.Transaction {
	return &entity.Transaction{ID: uuid.New(), Amount: amount, Category: category, Date: date, IsExpense: true}
}

func income(amount float64, date time.Time) *entity.Transaction {
	return &entity.Transaction{ID: uuid.New(), Amount: amount, Category: "other", Date: date, IsExpense: false}
}

func TestGenerateBuckets_CountAndContiguity(t *testing.T) {
	nows := []time.Time{
		time.Date(2024, time.March, 13, 15, 4, 5, 0, time.UTC),  // Wednesday
		time.Date(2024, time.March, 17, 23, 59, 59, 0, time.UTC), // Sunday
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), // leap day
		time.Date(2025, time.January, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 12, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)),
	}
	frames := map[entity.TimeFrame]int{
		entity.TimeFrameWeek:  7,
		entity.TimeFrameMonth: 4,
		entity.TimeFrameYear:  12,
	}

	for _, now := range nows {
		for tf, expected := range frames {
			buckets := GenerateBuckets(tf, now)
			if len(buckets) != expected {
				t.Fatalf("%s at %v: expected %d buckets, got %d", tf, now, expected, len(buckets))
			}

			for i, b := range buckets {
				if !b.Start.Before(b.End) {
					t.Errorf("%s at %v: bucket %d is empty: %v - %v", tf, now, i, b.Start, b.End)
				}
				if i > 0 && !buckets[i-1].End.Equal(b.Start) {
					t.Errorf("%s at %v: gap between bucket %d and %d", tf, now, i-1, i)
				}
			}

			if !buckets[len(buckets)-1].Contains(now) {
				t.Errorf("%s at %v: last bucket does not contain now", tf, now)
			}
		}
	}
}

func TestGenerateBuckets_Week(t *testing.T) {
	now := time.Date(2024, time.March, 13, 15, 4, 5, 0, time.UTC)
	buckets := GenerateBuckets(entity.TimeFrameWeek, now)

	expectedFirst := time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)
	if !buckets[0].Start.Equal(expectedFirst) {
		t.Errorf("expected first bucket at %v, got %v", expectedFirst, buckets[0].Start)
	}
	expectedEnd := time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)
	if !buckets[6].End.Equal(expectedEnd) {
		t.Errorf("expected last bucket to end at %v, got %v", expectedEnd, buckets[6].End)
	}
	if buckets[6].Label != "Mar 13" {
		t.Errorf("expected label Mar 13, got %s", buckets[6].Label)
	}
}

func TestGenerateBuckets_MonthIsMondayAligned(t *testing.T) {
	now := time.Date(2024, time.March, 13, 15, 4, 5, 0, time.UTC) // Wednesday
	buckets := GenerateBuckets(entity.TimeFrameMonth, now)

	expectedStarts := []time.Time{
		time.Date(2024, time.February, 19, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 26, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC),
	}
	for i, expected := range expectedStarts {
		if !buckets[i].Start.Equal(expected) {
			t.Errorf("bucket %d: expected start %v, got %v", i, expected, buckets[i].Start)
		}
		if buckets[i].Start.Weekday() != time.Monday {
			t.Errorf("bucket %d: expected Monday, got %s", i, buckets[i].Start.Weekday())
		}
	}

	t.Run("sunday belongs to the week that started the previous monday", func(t *testing.T) {
		sunday := time.Date(2024, time.March, 17, 10, 0, 0, 0, time.UTC)
		b := GenerateBuckets(entity.TimeFrameMonth, sunday)
		if !b[3].Start.Equal(time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected current week to start Mar 11, got %v", b[3].Start)
		}
	})
}

func TestGenerateBuckets_YearIsCalendarMonths(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	buckets := GenerateBuckets(entity.TimeFrameYear, now)

	if !buckets[0].Start.Equal(time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected first bucket Apr 2023, got %v", buckets[0].Start)
	}
	if !buckets[11].Start.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected last bucket Mar 2024, got %v", buckets[11].Start)
	}
	if !buckets[11].End.Equal(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected last bucket to end Apr 2024, got %v", buckets[11].End)
	}
	if buckets[0].Label != "Apr 2023" {
		t.Errorf("expected label Apr 2023, got %s", buckets[0].Label)
	}
}

func TestFilterByTimeFrame_InclusiveBounds(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	start := now.AddDate(0, -1, 0)

	txs := []*entity.Transaction{
		expense(1, "food", start),
		expense(2, "food", now),
		expense(4, "food", start.Add(-time.Nanosecond)),
		expense(8, "food", now.Add(time.Nanosecond)),
		nil,
	}

	filtered := FilterByTimeFrame(txs, entity.TimeFrameMonth, now)
	if len(filtered) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(filtered))
	}
	if filtered[0].Amount != 1 || filtered[1].Amount != 2 {
		t.Errorf("expected the boundary transactions, got %v and %v", filtered[0].Amount, filtered[1].Amount)
	}
}

func TestTrendSeries(t *testing.T) {
	now := time.Date(2024, time.March, 13, 15, 0, 0, 0, time.UTC)
	buckets := GenerateBuckets(entity.TimeFrameWeek, now)

	t.Run("empty input still yields every bucket", func(t *testing.T) {
		points := TrendSeries(buckets, nil, nil)
		if len(points) != 7 {
			t.Fatalf("expected 7 points, got %d", len(points))
		}
		for i, p := range points {
			if p.Amount != 0 {
				t.Errorf("point %d: expected 0, got %v", i, p.Amount)
			}
			if !p.Date.Equal(buckets[i].Start) {
				t.Errorf("point %d: expected date %v, got %v", i, buckets[i].Start, p.Date)
			}
		}
	})

	t.Run("half-open buckets and expense-only sums", func(t *testing.T) {
		midnight := time.Date(2024, time.March, 13, 0, 0, 0, 0, time.UTC)
		txs := []*entity.Transaction{
			expense(10, "food", midnight),                      // first instant of today
			expense(5, "food", midnight.Add(-time.Nanosecond)), // last instant of yesterday
			income(100, now),
			expense(3, "rent", now),
		}

		points := TrendSeries(buckets, txs, nil)
		if points[6].Amount != 13 {
			t.Errorf("expected today to total 13, got %v", points[6].Amount)
		}
		if points[5].Amount != 5 {
			t.Errorf("expected yesterday to total 5, got %v", points[5].Amount)
		}
	})

	t.Run("matcher restricts to a category", func(t *testing.T) {
		tax := entity.NewTaxonomyFromKeys("other", "food", "rent")
		txs := []*entity.Transaction{
			expense(10, "food", now),
			expense(3, "rent", now),
			expense(7, "mystery", now),
		}

		food := TrendSeries(buckets, txs, CategoryMatcher(tax, "food"))
		if food[6].Amount != 10 {
			t.Errorf("expected food to total 10, got %v", food[6].Amount)
		}
		other := TrendSeries(buckets, txs, CategoryMatcher(tax, "other"))
		if other[6].Amount != 7 {
			t.Errorf("expected unknown category to count as other, got %v", other[6].Amount)
		}
	})
}
