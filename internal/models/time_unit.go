package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

type TimeUnit string

const (
	UnitYears   TimeUnit = "years"
	UnitMonths  TimeUnit = "months"
	UnitDays    TimeUnit = "days"
	UnitHours   TimeUnit = "hours"
	UnitMinutes TimeUnit = "minutes"
)

var allTimeUnits = []TimeUnit{UnitYears, UnitMonths, UnitDays, UnitHours, UnitMinutes}

// ValidTimeUnits lists the accepted unit names in the order they are documented.
func ValidTimeUnits() []string {
	return lo.Map(allTimeUnits, func(u TimeUnit, _ int) string { return string(u) })
}

// NewTimeUnitFromString parses a unit name. Matching is exact apart from surrounding spaces.
func NewTimeUnitFromString(s string) (TimeUnit, error) {
	unit := TimeUnit(strings.TrimSpace(s))
	if !lo.Contains(allTimeUnits, unit) {
		return "", fmt.Errorf("invalid time unit %q: must be one of %v", s, ValidTimeUnits())
	}
	return unit, nil
}

// SubtractFrom returns t moved back by value units. Years and months use calendar
// arithmetic, so 1 month before March 31 normalizes like time.AddDate does.
func (u TimeUnit) SubtractFrom(t time.Time, value int) time.Time {
	switch u {
	case UnitYears:
		return t.AddDate(-value, 0, 0)
	case UnitMonths:
		return t.AddDate(0, -value, 0)
	case UnitDays:
		return t.AddDate(0, 0, -value)
	case UnitHours:
		return t.Add(-time.Duration(value) * time.Hour)
	case UnitMinutes:
		return t.Add(-time.Duration(value) * time.Minute)
	default:
		panic(fmt.Sprintf("invalid TimeUnit: %q", u))
	}
}
