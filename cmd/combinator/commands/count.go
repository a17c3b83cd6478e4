package commands

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"combinator/internal/app"
	"combinator/internal/domain"
)

// countCmd prints the size of the search space for s.
func countCmd(v *viper.Viper, s domain.Strategy) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Count the number of options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(loadConfig(cmd, v, s))
			if err != nil {
				return err
			}
			n, err := a.Count()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), withCommas(n))
			return nil
		},
	}
}

// withCommas formats n with thousands separators, e.g. 1,234,567.
func withCommas(n *big.Int) string {
	s := n.String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}
