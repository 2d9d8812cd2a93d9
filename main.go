package main

import (
	"fmt"

	"github.com/davrios/finmath/calendar"
	"github.com/davrios/finmath/cashflow"
)

func main() {
	dates := []calendar.Date{
		{Day: 1, Month: 1, Year: 2024},
		{Day: 1, Month: 1, Year: 2025},
		{Day: 1, Month: 1, Year: 2026},
	}
	amounts := []float64{-100, 10, 110}

	stream, err := cashflow.NewStream(dates, amounts)
	if err != nil {
		panic(err)
	}

	times := stream.Times(dates[0])
	rate, err := cashflow.IRR(times, amounts)
	if err != nil {
		panic(err)
	}

	fmt.Printf("PV at 5%%:  %.4f\n", cashflow.PVDiscrete(times, amounts, 0.05))
	fmt.Printf("IRR:       %.4f%%\n", rate*100)
	fmt.Printf("Unique:    %v\n", cashflow.UniqueIRR(amounts))
	fmt.Printf("Annuity:   %.4f\n", cashflow.Annuity(100, 10, 0.07))
	fmt.Printf("Perpetuity: %.2f\n", cashflow.Perpetuity(100, 0.05))
}
