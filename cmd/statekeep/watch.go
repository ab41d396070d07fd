package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/statekeep/statekeep/snapshot"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the configured snapshot file and print each new state",
	Long: `Watches the snapshot file for writes from other processes and prints the
state carried by each new snapshot until interrupted.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	if cfg.Snapshot.Path == "" {
		return fmt.Errorf("no snapshot path configured")
	}

	observer, err := resolveObserver(cfg)
	if err != nil {
		return err
	}

	watcher, err := snapshot.NewWatcher(cfg.Snapshot.Path, func(data []byte) {
		var state Counter
		if err := json.Unmarshal(data, &state); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "bad snapshot: %v\n", err)
			return
		}
		out, _ := json.Marshal(state)
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	}, snapshot.WithWatcherObserver(observer))
	if err != nil {
		return err
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Fprintf(cmd.ErrOrStderr(), "watching %s (ctrl-c to stop)\n", cfg.Snapshot.Path)
	<-ctx.Done()
	return nil
}
