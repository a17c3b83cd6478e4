package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"combinator/internal/app"
	"combinator/internal/domain"
)

func revealCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "reveal",
		Short: "Decrypt a result file written with --seal-key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd, v, domain.StrategyPermutations)
			if cfg.SealKey == "" {
				return fmt.Errorf("--seal-key (or SEAL_KEY) required")
			}
			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			res, err := a.Reveal()
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			fmt.Fprintf(cmd.OutOrStdout(), "strategy=%s target=%s evaluated=%d\n", res.Strategy, res.Target, res.Evaluated)
			return nil
		},
	}
}
