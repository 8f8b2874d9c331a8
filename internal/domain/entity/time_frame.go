package entity

import (
	"strings"
	"time"
)

// TimeFrame is an analysis lookback window ending at "now".
type TimeFrame string

const (
	TimeFrameWeek  TimeFrame = "week"
	TimeFrameMonth TimeFrame = "month"
	TimeFrameYear  TimeFrame = "year"
)

// ParseTimeFrame parses a time frame key case-insensitively.
func ParseTimeFrame(s string) (TimeFrame, bool) {
	tf := TimeFrame(strings.ToLower(strings.TrimSpace(s)))
	if !tf.IsValid() {
		return "", false
	}
	return tf, true
}

// IsValid reports whether tf is a known time frame.
func (tf TimeFrame) IsValid() bool {
	switch tf {
	case TimeFrameWeek, TimeFrameMonth, TimeFrameYear:
		return true
	}
	return false
}

// WindowStart returns now minus the time frame's calendar duration:
// 7 days, 1 calendar month or 1 calendar year. Month and year steps clamp
// to the last day of the target month, so Mar 31 minus a month is Feb 28.
func (tf TimeFrame) WindowStart(now time.Time) time.Time {
	switch tf {
	case TimeFrameWeek:
		return now.AddDate(0, 0, -7)
	case TimeFrameYear:
		return addMonthsClamped(now, -12)
	default:
		return addMonthsClamped(now, -1)
	}
}

// addMonthsClamped moves t by months, keeping the clock time and location.
func addMonthsClamped(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	day := min(t.Day(), daysInMonth(first.Year(), first.Month()))
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// CalendarDays returns the number of days between WindowStart(now) and now,
// so a month frame spans 28 to 31 days depending on the calendar.
func (tf TimeFrame) CalendarDays(now time.Time) int {
	start := tf.WindowStart(now)
	a := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// BucketCount returns the number of trend buckets the frame is split into.
func (tf TimeFrame) BucketCount() int {
	switch tf {
	case TimeFrameWeek:
		return 7
	case TimeFrameYear:
		return 12
	default:
		return 4
	}
}
