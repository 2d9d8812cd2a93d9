package cmd

import (
	"github.com/spf13/cobra"

	"github.com/davrios/finmath/cashflow"
)

type pvOutput struct {
	Rate         float64 `json:"rate"`
	PVDiscrete   float64 `json:"pv_discrete"`
	PVContinuous float64 `json:"pv_continuous"`
}

var (
	pvInputPath string
	pvRate      float64
)

var pvCmd = &cobra.Command{
	Use:   "pv",
	Short: "Present value of a cash-flow stream at a given rate",
	Long: `Discounts the stream at the given rate under both discrete
(1+r)^-t and continuous e^(-rt) compounding.`,
	RunE: runPV,
}

func init() {
	pvCmd.Flags().StringVar(&pvInputPath, "input", "", "JSON input path (default: stdin)")
	pvCmd.Flags().Float64Var(&pvRate, "rate", 0, "annual discount rate as a decimal (e.g. 0.05)")
	rootCmd.AddCommand(pvCmd)
}

func runPV(cmd *cobra.Command, args []string) error {
	in, err := loadStreamInput(pvInputPath, cmd.InOrStdin())
	if err != nil {
		return err
	}
	times, amounts, err := in.Resolve()
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), pvOutput{
		Rate:         pvRate,
		PVDiscrete:   cashflow.PVDiscrete(times, amounts, pvRate),
		PVContinuous: cashflow.PVContinuous(times, amounts, pvRate),
	})
}
