package lease

import (
	"encoding/json"
	"time"
)

// =============================================================================
// TIME POINT - Day-granularity date used everywhere in the engine
// =============================================================================

// TimePoint is a calendar date. The engine never cares about time-of-day:
// payment dates, reporting dates and journal dates are all whole days in UTC.
type TimePoint struct {
	Time time.Time
}

const dateLayout = "2006-01-02"

// Constructors
func NewTimePoint(year int, month time.Month, day int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseTimePoint parses a date in YYYY-MM-DD form.
func ParseTimePoint(s string) (TimePoint, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return TimePoint{}, err
	}
	return TimePoint{Time: t.UTC()}, nil
}

// Comparison
func (tp TimePoint) Before(other TimePoint) bool { return tp.normalize().Before(other.normalize()) }
func (tp TimePoint) Equal(other TimePoint) bool  { return tp.normalize().Equal(other.normalize()) }
func (tp TimePoint) After(other TimePoint) bool  { return tp.normalize().After(other.normalize()) }
func (tp TimePoint) BeforeOrEqual(other TimePoint) bool { return tp.Before(other) || tp.Equal(other) }
func (tp TimePoint) AfterOrEqual(other TimePoint) bool  { return tp.After(other) || tp.Equal(other) }

func (tp TimePoint) normalize() time.Time {
	return time.Date(tp.Time.Year(), tp.Time.Month(), tp.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Properties
func (tp TimePoint) Year() int         { return tp.Time.Year() }
func (tp TimePoint) Month() time.Month { return tp.Time.Month() }
func (tp TimePoint) Day() int          { return tp.Time.Day() }
func (tp TimePoint) IsZero() bool      { return tp.Time.IsZero() }

func (tp TimePoint) String() string { return tp.normalize().Format(dateLayout) }

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (tp TimePoint) MarshalJSON() ([]byte, error) {
	return []byte(`"` + tp.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (tp *TimePoint) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimePoint(s)
	if err != nil {
		return err
	}
	*tp = parsed
	return nil
}

// AddMonths advances the date by n calendar months, clamping the day to the
// length of the target month (Jan 31 + 1 month = Feb 28/29, never Mar 2).
func (tp TimePoint) AddMonths(n int) TimePoint {
	year := tp.Year()
	month := int(tp.Month()) - 1 + n
	year += month / 12
	month = month % 12
	if month < 0 {
		month += 12
		year--
	}
	targetMonth := time.Month(month + 1)
	day := tp.Day()
	if last := daysIn(year, targetMonth); day > last {
		day = last
	}
	return NewTimePoint(year, targetMonth, day)
}

// =============================================================================
// MONTH ARITHMETIC
// =============================================================================

// MonthsBetween returns the number of whole months from one date to a later
// one. A partial trailing month does not count: 2024-01-15 to 2024-02-14 is
// zero months, to 2024-02-15 is one.
func MonthsBetween(from, to TimePoint) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	return months
}

// EndOfMonth returns the last day of the date's calendar month.
func EndOfMonth(tp TimePoint) TimePoint {
	return NewTimePoint(tp.Year(), tp.Month(), daysIn(tp.Year(), tp.Month()))
}

// EndOfQuarter returns the last day of the date's calendar quarter
// (Mar 31, Jun 30, Sep 30 or Dec 31).
func EndOfQuarter(tp TimePoint) TimePoint {
	quarterEnd := time.Month((int(tp.Month())-1)/3*3 + 3)
	return NewTimePoint(tp.Year(), quarterEnd, daysIn(tp.Year(), quarterEnd))
}

// GroupKey returns the canonical reporting-period end date for a payment
// date. The same function is used both to group schedule entries and to date
// the resulting journal lines, so the two can never diverge.
func GroupKey(tp TimePoint, freq Frequency) TimePoint {
	if freq == FrequencyQuarterly {
		return EndOfQuarter(tp)
	}
	return EndOfMonth(tp)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
