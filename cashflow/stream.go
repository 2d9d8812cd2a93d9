package cashflow

import (
	"fmt"

	"github.com/davrios/finmath/calendar"
	"github.com/davrios/finmath/timeseries"
	"github.com/davrios/finmath/utils"
)

// Stream is a dated cash-flow sequence: signed amounts keyed by strictly
// ascending calendar dates. It bridges the dated world to the raw
// time/amount slices the valuation functions operate on.
type Stream struct {
	*timeseries.Series[float64]
}

// NewStream builds a stream from parallel date/amount slices.
func NewStream(dates []calendar.Date, amounts []float64) (Stream, error) {
	s, err := timeseries.FromPairs(dates, amounts)
	if err != nil {
		return Stream{}, fmt.Errorf("cashflow: %w", err)
	}
	return Stream{Series: s}, nil
}

// Times maps the stream's dates to year fractions from base, counting
// actual days over a 365-day year. Payments before base come out
// negative; callers valuing at the first payment date pass that date as
// base and get times starting at zero.
func (s Stream) Times(base calendar.Date) []float64 {
	dates := s.Dates()
	times := make([]float64, len(dates))
	start := base.Time()
	for i, d := range dates {
		times[i] = utils.YearFraction(start, d.Time())
	}
	return times
}

// Amounts returns the signed payment amounts in date order.
func (s Stream) Amounts() []float64 {
	return s.Elements()
}

// NPVProfile samples PVDiscrete across rates, for tabulating or plotting
// the NPV curve of a stream. The result is parallel to rates.
func NPVProfile(times, amounts, rates []float64) []float64 {
	out := make([]float64, len(rates))
	for i, r := range rates {
		out[i] = PVDiscrete(times, amounts, r)
	}
	return out
}
