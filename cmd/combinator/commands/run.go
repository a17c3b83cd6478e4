package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"combinator/internal/app"
	"combinator/internal/domain"
)

// runCmd searches the space for s and writes the result file.
func runCmd(v *viper.Viper, s domain.Strategy) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd, v, s)
			a, err := app.New(cfg)
			if err != nil {
				return err
			}

			res, err := a.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s search: %w", s, err)
			}
			printResult(cmd.OutOrStdout(), res)
			a.Wire().Log.Info("result written", "path", cfg.Output, "sealed", cfg.SealKey != "")
			return nil
		},
	}
}

func printResult(w io.Writer, res domain.Result) {
	c := color.New(color.FgYellow)
	if res.Found {
		c = color.New(color.FgGreen, color.Bold)
	}
	_, _ = c.Fprintln(w, res.Message())
}
