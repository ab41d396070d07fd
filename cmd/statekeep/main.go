// Command statekeep exercises the statekeep library end to end on a small
// counter domain: run dispatches actions with snapshot persistence and
// journaling, replay folds a journal back into a final state, and watch
// follows a snapshot file written by another process.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/statekeep/statekeep/observability"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "statekeep",
	Short: "statekeep - a state container demo CLI",
	Long: `statekeep drives a counter through a state container: actions are
dispatched through the interceptor chain, state snapshots persist to disk,
and dispatched actions are journaled for replay.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (JSON or YAML)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging")
}

// resolveObserver builds the observer from config and the --verbose flag.
func resolveObserver(cfg *Config) (observability.Observer, error) {
	if verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		return observability.NewSlogObserver(logger), nil
	}
	name := cfg.Observer
	if name == "" {
		name = "noop"
	}
	return observability.Get(name)
}
