package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"combinator/internal/domain"
)

func permutationsCmd(v *viper.Viper) *cobra.Command {
	cmd := strategyCmd(v, domain.StrategyPermutations, &cobra.Command{
		Use:     "permutations",
		Aliases: []string{"p", "perm"},
		Short:   "Try every ordering of k words drawn from all groups",
	})
	cmd.PersistentFlags().IntP("length", "k", domain.DefaultPassphraseLength, "words per passphrase")
	cmd.PersistentFlags().Bool("all", false, "use every word (k = total word count)")
	_ = v.BindPFlags(cmd.PersistentFlags())
	return cmd
}

func productCmd(v *viper.Viper) *cobra.Command {
	return strategyCmd(v, domain.StrategyMultiCartesianProduct, &cobra.Command{
		Use:     "multi-cartesian-product",
		Aliases: []string{"mcp", "product", "cart"},
		Short:   "Try one word from each group, keeping group order",
	})
}

// strategyCmd attaches the run and count subcommands for s to parent.
func strategyCmd(v *viper.Viper, s domain.Strategy, parent *cobra.Command) *cobra.Command {
	parent.AddCommand(runCmd(v, s), countCmd(v, s))
	return parent
}
