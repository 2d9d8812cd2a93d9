// Package calendar provides a validated Gregorian date value with
// day-level arithmetic and total ordering.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned by New and Parse for day/month/year triples
// that do not name a real calendar day.
var ErrInvalidDate = errors.New("invalid date")

// monthLength is indexed by month number; February holds the common-year
// value and is corrected for leap years where it matters.
var monthLength = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Date is a plain Gregorian calendar day. The zero value is invalid.
//
// Fields are exported and unchecked: arithmetic and deserialization may
// build transient out-of-range values, and Valid reports whether the
// current triple names a real day. Use New when a validated value is
// required up front.
type Date struct {
	Day   int
	Month int
	Year  int
}

// New returns a validated Date or ErrInvalidDate.
func New(day, month, year int) (Date, error) {
	d := Date{Day: day, Month: month, Year: year}
	if !d.Valid() {
		return Date{}, fmt.Errorf("calendar: %w: %s", ErrInvalidDate, d)
	}
	return d, nil
}

// Parse converts YYYY-MM-DD to a Date.
func Parse(value string) (Date, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return Date{}, fmt.Errorf("calendar: parse %q: %w", value, ErrInvalidDate)
	}
	return FromTime(t), nil
}

// FromTime truncates a time.Time to its calendar day.
func FromTime(t time.Time) Date {
	return Date{Day: t.Day(), Month: int(t.Month()), Year: t.Year()}
}

// Time returns midnight UTC of the date. The receiver must be valid.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// IsLeapYear reports whether year is a Gregorian leap year: divisible by
// 4 and either not by 100 or also by 400.
func IsLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	if year%100 != 0 {
		return true
	}
	return year%400 == 0
}

// IsLeapYear reports whether the date's year is a leap year. Defined for
// any year value, including on otherwise invalid dates.
func (d Date) IsLeapYear() bool {
	return IsLeapYear(d.Year)
}

// DaysInMonth returns the length of month in year, or 0 for a month
// outside [1,12].
func DaysInMonth(month, year int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthLength[month]
}

// Valid reports whether the triple names a real calendar day: year >= 0,
// month in [1,12] and day within the month's actual length (Feb 29 only
// in leap years).
func (d Date) Valid() bool {
	if d.Year < 0 {
		return false
	}
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Month, d.Year)
}

// Next returns the following calendar day. Month and year roll over as
// needed; the step is leap-aware, so Feb 28 of a common year goes
// straight to Mar 1. Calling Next on an invalid date returns the date
// unchanged.
func (d Date) Next() Date {
	if !d.Valid() {
		return d
	}
	d.Day++
	if d.Day > DaysInMonth(d.Month, d.Year) {
		d.Day = 1
		d.Month++
		if d.Month > 12 {
			d.Month = 1
			d.Year++
		}
	}
	return d
}

// Prev returns the preceding calendar day, the exact inverse of Next.
// Calling Prev on an invalid date returns the date unchanged.
func (d Date) Prev() Date {
	if !d.Valid() {
		return d
	}
	d.Day--
	if d.Day < 1 {
		d.Month--
		if d.Month < 1 {
			d.Month = 12
			d.Year--
		}
		d.Day = DaysInMonth(d.Month, d.Year)
	}
	return d
}

// Compare orders dates lexicographically on (year, month, day) and
// returns -1, 0 or +1.
func (d Date) Compare(other Date) int {
	if d.Year != other.Year {
		return cmpInt(d.Year, other.Year)
	}
	if d.Month != other.Month {
		return cmpInt(d.Month, other.Month)
	}
	return cmpInt(d.Day, other.Day)
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Equal reports exact field equality.
func (d Date) Equal(other Date) bool {
	return d == other
}

// Before reports whether d orders strictly before other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d orders strictly after other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// String renders the fixed [day-month-year] debug form.
func (d Date) String() string {
	return fmt.Sprintf("[%d-%d-%d]", d.Day, d.Month, d.Year)
}
