package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davrios/finmath/cashflow"
)

type annuityOutput struct {
	Payment float64 `json:"payment"`
	Periods int     `json:"periods,omitempty"`
	Rate    float64 `json:"rate"`
	Growth  float64 `json:"growth,omitempty"`
	PV      float64 `json:"pv"`
}

var (
	annuityPayment   float64
	annuityPeriods   int
	annuityRate      float64
	annuityGrowth    float64
	annuityPerpetual bool
)

var annuityCmd = &cobra.Command{
	Use:   "annuity",
	Short: "Closed-form annuity and perpetuity present values",
	Long: `Values a constant or growing payment stream in closed form. With
--perpetual the stream never terminates; otherwise --periods payments
are discounted.`,
	RunE: runAnnuity,
}

func init() {
	annuityCmd.Flags().Float64Var(&annuityPayment, "payment", 0, "first payment amount")
	annuityCmd.Flags().IntVar(&annuityPeriods, "periods", 0, "number of payments")
	annuityCmd.Flags().Float64Var(&annuityRate, "rate", 0, "discount rate per period as a decimal")
	annuityCmd.Flags().Float64Var(&annuityGrowth, "growth", 0, "payment growth rate per period as a decimal")
	annuityCmd.Flags().BoolVar(&annuityPerpetual, "perpetual", false, "value an infinite payment stream")
	rootCmd.AddCommand(annuityCmd)
}

func runAnnuity(cmd *cobra.Command, args []string) error {
	if annuityPayment == 0 {
		return fmt.Errorf("--payment is required")
	}
	if !annuityPerpetual && annuityPeriods < 0 {
		return fmt.Errorf("--periods must be non-negative")
	}

	var pv float64
	switch {
	case annuityPerpetual && annuityGrowth != 0:
		pv = cashflow.GrowingPerpetuity(annuityPayment, annuityRate, annuityGrowth)
	case annuityPerpetual:
		pv = cashflow.Perpetuity(annuityPayment, annuityRate)
	case annuityGrowth != 0:
		pv = cashflow.GrowingAnnuity(annuityPayment, annuityPeriods, annuityRate, annuityGrowth)
	default:
		pv = cashflow.Annuity(annuityPayment, annuityPeriods, annuityRate)
	}

	out := annuityOutput{
		Payment: annuityPayment,
		Rate:    annuityRate,
		Growth:  annuityGrowth,
		PV:      pv,
	}
	if !annuityPerpetual {
		out.Periods = annuityPeriods
	}
	return writeJSON(cmd.OutOrStdout(), out)
}
