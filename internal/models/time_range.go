package models

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the calendar date format accepted by --from and --to.
	DateLayout = "2006/01/02"
	// TimestampLayout is the second-granularity layout records are rendered with.
	TimestampLayout = "2006-01-02 15:04:05"
)

// TimeRange is an inclusive [From, To] window of whole-second UTC instants.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// NewAbsoluteTimeRange covers from 00:00:00 of the first date through 23:59:59 of the last.
// Dates use the YYYY/MM/DD layout and are interpreted in UTC, the zone the logs are written in.
func NewAbsoluteTimeRange(fromDate, toDate string) (TimeRange, error) {
	from, err := time.ParseInLocation(DateLayout, fromDate, time.UTC)
	if err != nil {
		return TimeRange{}, fmt.Errorf("invalid from date %q: expected YYYY/MM/DD", fromDate)
	}
	to, err := time.ParseInLocation(DateLayout, toDate, time.UTC)
	if err != nil {
		return TimeRange{}, fmt.Errorf("invalid to date %q: expected YYYY/MM/DD", toDate)
	}
	to = to.Add(24*time.Hour - time.Second)
	if from.After(to) {
		return TimeRange{}, fmt.Errorf("from date %s is after to date %s", fromDate, toDate)
	}
	return TimeRange{From: from, To: to}, nil
}

// NewRelativeTimeRange ends at now and starts value units earlier.
func NewRelativeTimeRange(now time.Time, value int, unit TimeUnit) (TimeRange, error) {
	if value <= 0 {
		return TimeRange{}, fmt.Errorf("relative value must be positive, got %d", value)
	}
	if _, err := NewTimeUnitFromString(string(unit)); err != nil {
		return TimeRange{}, err
	}
	to := now.UTC().Truncate(time.Second)
	return TimeRange{From: unit.SubtractFrom(to, value), To: to}, nil
}

// Contains reports whether t falls inside the window. Both ends are inclusive.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// Days returns midnight of every calendar day touched by the window, ascending.
func (r TimeRange) Days() []time.Time {
	first := truncateToDay(r.From)
	last := truncateToDay(r.To)

	var days []time.Time
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

func (r TimeRange) String() string {
	return fmt.Sprintf("[%s, %s]", r.From.Format(TimestampLayout), r.To.Format(TimestampLayout))
}

func truncateToDay(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
