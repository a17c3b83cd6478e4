package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"combinator/internal/app"
	"combinator/internal/domain"
)

func fingerprintCmd(v *viper.Viper) *cobra.Command {
	var passphrase string
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the master fingerprint for the seed and a passphrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(loadConfig(cmd, v, domain.StrategyPermutations))
			if err != nil {
				return err
			}
			fp, err := a.Fingerprint(passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to derive with (default empty)")
	return cmd
}

func xpubCmd(v *viper.Viper) *cobra.Command {
	var passphrase string
	cmd := &cobra.Command{
		Use:   "xpub",
		Short: "Print the m/84'/0'/0' account xpub for the seed and a passphrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(loadConfig(cmd, v, domain.StrategyPermutations))
			if err != nil {
				return err
			}
			xpub, err := a.XPub(passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), xpub)
			return nil
		},
	}
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to derive with (default empty)")
	return cmd
}
