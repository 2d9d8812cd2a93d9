// Package cmd implements the finmath command line interface: present
// value, IRR, annuity closed forms and NPV profile charts over JSON
// cash-flow files.
package cmd

import (
	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"github.com/davrios/finmath/cashflow/config"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "finmath",
	Short: "Time-value-of-money calculations over cash-flow streams",
	Long: `finmath computes present values, internal rates of return and
annuity/perpetuity valuations from cash-flow streams supplied as JSON,
either as dated payments or as raw time/amount sequences.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.DefaultLogger = log.Logger{
			Level:  log.WarnLevel,
			Writer: &log.ConsoleWriter{ColorOutput: false},
		}
		if verbose {
			log.DefaultLogger.Level = log.DebugLevel
		}
		if configPath != "" {
			c, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			config.SetConfig(c)
			log.Debug().Str("path", configPath).Msg("solver config loaded")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML solver configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		log.Error().Err(err).Msg("command failed")
	}
	return err
}
