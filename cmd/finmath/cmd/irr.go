package cmd

import (
	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"github.com/davrios/finmath/cashflow"
	"github.com/davrios/finmath/utils"
)

type irrOutput struct {
	IRR        float64 `json:"irr"`
	IRRPercent float64 `json:"irr_pct"`
	PVAtIRR    float64 `json:"pv_at_irr"`
	LikelySole bool    `json:"likely_unique"`
}

var irrInputPath string

var irrCmd = &cobra.Command{
	Use:   "irr",
	Short: "Solve the internal rate of return of a cash-flow stream",
	Long: `Solves for the discount rate at which the stream's discrete present
value is zero, via bracket expansion and bisection. Also reports the
sign-change uniqueness heuristic for the solved root.`,
	RunE: runIRR,
}

func init() {
	irrCmd.Flags().StringVar(&irrInputPath, "input", "", "JSON input path (default: stdin)")
	rootCmd.AddCommand(irrCmd)
}

func runIRR(cmd *cobra.Command, args []string) error {
	in, err := loadStreamInput(irrInputPath, cmd.InOrStdin())
	if err != nil {
		return err
	}
	times, amounts, err := in.Resolve()
	if err != nil {
		return err
	}

	log.Debug().Int("cashflows", len(amounts)).Msg("solving IRR")
	rate, err := cashflow.IRR(times, amounts)
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), irrOutput{
		IRR:        rate,
		IRRPercent: utils.RoundTo(rate*100, 6),
		PVAtIRR:    cashflow.PVDiscrete(times, amounts, rate),
		LikelySole: cashflow.UniqueIRR(amounts),
	})
}
