package commands

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"combinator/internal/app"
	"combinator/internal/domain"
	"combinator/internal/store"
)

// Execute runs the CLI. SIGINT and SIGTERM cancel a running search.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// envKeys lists the only settings read from the environment. Everything else
// must be given as a flag.
var envKeys = map[string]string{
	"words":       "WORDS",
	"seed":        "SEED",
	"fingerprint": "FINGERPRINT",
	"seal-key":    "SEAL_KEY",
}

// NewRootCmd builds the command tree with its own flag and environment state.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "combinator",
		Short:         "Recover a forgotten BIP39 passphrase from known word groups",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("words", "", "word groups as JSON or YAML, e.g. [[\"a\",\"b\"],[\"c\"]] (env WORDS)")
	pf.String("words-file", "", "file holding the word groups (JSON or YAML)")
	pf.StringP("seed", "s", "", "BIP39 mnemonic (env SEED)")
	pf.StringP("fingerprint", "f", "", "target master fingerprint, 8 hex chars (env FINGERPRINT)")
	pf.Int("workers", 0, "parallel workers (default one per CPU)")
	pf.StringP("output", "o", store.DefaultResultFile, "file the result is written to")
	pf.String("seal-key", "", "encrypt the result file with this key (env SEAL_KEY)")
	pf.Bool("no-progress", false, "hide the progress bar")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	_ = v.BindPFlags(pf)
	for key, env := range envKeys {
		_ = v.BindEnv(key, env)
	}

	root.AddCommand(
		permutationsCmd(v),
		productCmd(v),
		fingerprintCmd(v),
		xpubCmd(v),
		revealCmd(v),
	)
	return root
}

// loadConfig merges flags and environment into an app.Config.
func loadConfig(cmd *cobra.Command, v *viper.Viper, s domain.Strategy) app.Config {
	cfg := app.Config{
		Strategy:    s,
		Words:       v.GetString("words"),
		WordsFile:   v.GetString("words-file"),
		Seed:        v.GetString("seed"),
		Fingerprint: v.GetString("fingerprint"),
		AllWords:    v.GetBool("all"),
		Workers:     v.GetInt("workers"),
		Output:      v.GetString("output"),
		SealKey:     v.GetString("seal-key"),
		LogLevel:    v.GetString("log-level"),
		Stderr:      cmd.ErrOrStderr(),
	}
	if cmd.Flags().Changed("length") {
		k := v.GetInt("length")
		cfg.Length = &k
	}
	if !v.GetBool("no-progress") && isTerminal(cmd.ErrOrStderr()) {
		cfg.Progress = cmd.ErrOrStderr()
	}
	return cfg
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
