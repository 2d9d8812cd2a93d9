// Package timeseries provides an ordered container of (date, element)
// pairs with sorted-date lookup. It carries no financial logic; the
// valuation package consumes its contents as plain slices.
package timeseries

import (
	"errors"
	"fmt"
	"sort"

	"github.com/davrios/finmath/calendar"
)

var (
	// ErrIndexOutOfRange is returned by index access outside [0, Size).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrDateNotPresent is returned by date lookups for absent dates.
	ErrDateNotPresent = errors.New("date not present")
	// ErrInvalidDate is returned when a lookup or insertion date fails
	// calendar validation.
	ErrInvalidDate = errors.New("invalid date")
	// ErrUnsorted is returned by FromPairs when dates are not strictly
	// ascending, and by Append when the new date does not extend the tail.
	ErrUnsorted = errors.New("dates not strictly ascending")
)

// Series owns parallel date/element sequences. Dates are kept strictly
// ascending and valid; both constructors enforce the invariant so the
// binary-search lookups are always well defined.
type Series[T any] struct {
	dates    []calendar.Date
	elements []T
}

// New returns an empty series.
func New[T any]() *Series[T] {
	return &Series[T]{}
}

// FromPairs builds a series from parallel slices. The slices must have
// equal length and the dates must be valid and strictly ascending. Both
// inputs are copied.
func FromPairs[T any](dates []calendar.Date, elements []T) (*Series[T], error) {
	if len(dates) != len(elements) {
		return nil, fmt.Errorf("timeseries: %d dates vs %d elements", len(dates), len(elements))
	}
	for i, d := range dates {
		if !d.Valid() {
			return nil, fmt.Errorf("timeseries: %w at index %d: %s", ErrInvalidDate, i, d)
		}
		if i > 0 && !dates[i-1].Before(d) {
			return nil, fmt.Errorf("timeseries: %w at index %d", ErrUnsorted, i)
		}
	}
	s := &Series[T]{
		dates:    make([]calendar.Date, len(dates)),
		elements: make([]T, len(elements)),
	}
	copy(s.dates, dates)
	copy(s.elements, elements)
	return s, nil
}

// Append adds a pair at the end. The date must be valid and order
// strictly after the current last date.
func (s *Series[T]) Append(d calendar.Date, element T) error {
	if !d.Valid() {
		return fmt.Errorf("timeseries: %w: %s", ErrInvalidDate, d)
	}
	if n := len(s.dates); n > 0 && !s.dates[n-1].Before(d) {
		return fmt.Errorf("timeseries: %w: %s after %s", ErrUnsorted, d, s.dates[n-1])
	}
	s.dates = append(s.dates, d)
	s.elements = append(s.elements, element)
	return nil
}

// Empty reports whether the series holds no pairs.
func (s *Series[T]) Empty() bool {
	return len(s.dates) == 0
}

// Size returns the number of pairs.
func (s *Series[T]) Size() int {
	return len(s.dates)
}

// DateAt returns the date at index i.
func (s *Series[T]) DateAt(i int) (calendar.Date, error) {
	if i < 0 || i >= len(s.dates) {
		return calendar.Date{}, fmt.Errorf("timeseries: %w: %d (size %d)", ErrIndexOutOfRange, i, len(s.dates))
	}
	return s.dates[i], nil
}

// ElementAt returns the element at index i.
func (s *Series[T]) ElementAt(i int) (T, error) {
	if i < 0 || i >= len(s.elements) {
		var zero T
		return zero, fmt.Errorf("timeseries: %w: %d (size %d)", ErrIndexOutOfRange, i, len(s.elements))
	}
	return s.elements[i], nil
}

// Contains reports whether d is present, by binary search.
func (s *Series[T]) Contains(d calendar.Date) bool {
	i := s.search(d)
	return i < len(s.dates) && s.dates[i].Equal(d)
}

// At returns the element stored under d, or ErrDateNotPresent.
func (s *Series[T]) At(d calendar.Date) (T, error) {
	i := s.search(d)
	if i >= len(s.dates) || !s.dates[i].Equal(d) {
		var zero T
		return zero, fmt.Errorf("timeseries: %w: %s", ErrDateNotPresent, d)
	}
	return s.elements[i], nil
}

// IndexOfDate returns the position of d. It fails with ErrInvalidDate
// when d itself is not a real calendar day and with ErrDateNotPresent
// when d is absent. Dates are unique, so the first match is the only one.
func (s *Series[T]) IndexOfDate(d calendar.Date) (int, error) {
	if !d.Valid() {
		return 0, fmt.Errorf("timeseries: %w: %s", ErrInvalidDate, d)
	}
	if !s.Contains(d) {
		return 0, fmt.Errorf("timeseries: %w: %s", ErrDateNotPresent, d)
	}
	for i, cur := range s.dates {
		if cur.Equal(d) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("timeseries: %w: %s", ErrDateNotPresent, d)
}

// Dates returns a copy of the date sequence.
func (s *Series[T]) Dates() []calendar.Date {
	out := make([]calendar.Date, len(s.dates))
	copy(out, s.dates)
	return out
}

// Elements returns a copy of the element sequence.
func (s *Series[T]) Elements() []T {
	out := make([]T, len(s.elements))
	copy(out, s.elements)
	return out
}

// Clone returns a deep copy sharing no backing storage with s.
func (s *Series[T]) Clone() *Series[T] {
	return &Series[T]{dates: s.Dates(), elements: s.Elements()}
}

// search returns the first index whose date is not before d.
func (s *Series[T]) search(d calendar.Date) int {
	return sort.Search(len(s.dates), func(i int) bool {
		return !s.dates[i].Before(d)
	})
}
