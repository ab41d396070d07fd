package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/statekeep/statekeep/journal"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Fold the configured journal into a final state",
	Long: `Reads the journal file, decodes each recorded action, and left-folds the
counter reducer over the sequence from its default state. The output equals
the state a live container would hold after dispatching the same actions.`,
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	if cfg.Journal == "" {
		return fmt.Errorf("no journal configured")
	}

	if err := registerCounterKinds(); err != nil {
		return err
	}

	entries, err := journal.ReadFile(cfg.Journal)
	if err != nil {
		return err
	}

	final, err := journal.Replay(counterReducer, Counter{}, entries)
	if err != nil {
		return err
	}

	out, err := json.Marshal(final)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d actions)\n", out, len(entries))
	return nil
}
