package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/davrios/finmath/calendar"
	"github.com/davrios/finmath/cashflow"
)

// StreamInput is the JSON input schema shared by the pv, irr and profile
// subcommands. A stream is given either as dated payments:
//
//	{"cashflows": [{"date": "2024-01-01", "amount": -100}, ...]}
//
// or as raw parallel sequences:
//
//	{"times": [0, 1, 2], "amounts": [-100, 10, 110]}
//
// Dated payments are mapped to ACT/365 year fractions from base_date
// (default: the earliest payment date).
type StreamInput struct {
	BaseDate  string        `json:"base_date"`
	Cashflows []DatedAmount `json:"cashflows"`
	Times     []float64     `json:"times"`
	Amounts   []float64     `json:"amounts"`
}

// DatedAmount is a single dated payment; negative amounts are outflows.
type DatedAmount struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// loadStreamInput reads the JSON schema from a file, or from stdin when
// path is empty.
func loadStreamInput(path string, stdin io.Reader) (*StreamInput, error) {
	var raw []byte
	var err error
	if path != "" {
		raw, err = os.ReadFile(path)
	} else {
		raw, err = io.ReadAll(stdin)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var in StreamInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("parse JSON input: %w", err)
	}
	return &in, nil
}

// Resolve converts the input into the parallel time/amount sequences the
// valuation functions consume.
func (in *StreamInput) Resolve() (times, amounts []float64, err error) {
	if len(in.Cashflows) > 0 {
		if len(in.Times) > 0 || len(in.Amounts) > 0 {
			return nil, nil, fmt.Errorf("give either cashflows or times/amounts, not both")
		}
		return in.resolveDated()
	}

	if len(in.Times) != len(in.Amounts) {
		return nil, nil, fmt.Errorf("%d times vs %d amounts", len(in.Times), len(in.Amounts))
	}
	if len(in.Times) == 0 {
		return nil, nil, fmt.Errorf("empty cash-flow stream")
	}
	return in.Times, in.Amounts, nil
}

func (in *StreamInput) resolveDated() ([]float64, []float64, error) {
	type pair struct {
		date   calendar.Date
		amount float64
	}
	pairs := make([]pair, 0, len(in.Cashflows))
	for _, cf := range in.Cashflows {
		d, err := calendar.Parse(cf.Date)
		if err != nil {
			return nil, nil, fmt.Errorf("cashflow date: %w", err)
		}
		pairs = append(pairs, pair{date: d, amount: cf.Amount})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].date.Before(pairs[j].date) })

	dates := make([]calendar.Date, len(pairs))
	amounts := make([]float64, len(pairs))
	for i, p := range pairs {
		dates[i] = p.date
		amounts[i] = p.amount
	}

	stream, err := cashflow.NewStream(dates, amounts)
	if err != nil {
		return nil, nil, err
	}

	base := dates[0]
	if in.BaseDate != "" {
		base, err = calendar.Parse(in.BaseDate)
		if err != nil {
			return nil, nil, fmt.Errorf("base_date: %w", err)
		}
	}
	return stream.Times(base), stream.Amounts(), nil
}

// writeJSON prints v as a single JSON line, the output convention of
// every subcommand.
func writeJSON(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}
