package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/statekeep/statekeep/interceptor"
	"github.com/statekeep/statekeep/journal"
	"github.com/statekeep/statekeep/snapshot"
	"github.com/statekeep/statekeep/store"
)

var runCmd = &cobra.Command{
	Use:   "run [action]...",
	Short: "Dispatch a sequence of actions and print the final state",
	Long: `Dispatches the given actions (inc, dec, add:<n>) through the container.
State preloads from the configured snapshot when one exists, persists back
after every transition, and each action is appended to the journal file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	observer, err := resolveObserver(cfg)
	if err != nil {
		return err
	}

	if err := registerCounterKinds(); err != nil {
		return err
	}

	actions := make([]store.Action, 0, len(args))
	for _, token := range args {
		action, err := parseAction(token)
		if err != nil {
			return err
		}
		actions = append(actions, action)
	}

	backend, err := snapshot.New(&cfg.Snapshot)
	if err != nil {
		return err
	}

	opts := []store.Option[Counter]{
		store.WithObserver[Counter](observer),
	}

	if backend != nil {
		preloaded, found, err := snapshot.PreloadJSON[Counter](ctx, backend)
		if err != nil {
			return fmt.Errorf("failed to preload snapshot: %w", err)
		}
		if found {
			opts = append(opts, store.WithPreloadedState(preloaded))
		}
	}

	interceptors := []store.Interceptor[Counter]{
		interceptor.NewLogger[Counter](observer, "cli.dispatch"),
		interceptor.NewThunk[Counter](),
	}

	var log journal.Log
	if cfg.Journal != "" {
		log = journal.NewMemoryLog()
		interceptors = append(interceptors, journal.NewRecorder[Counter](log,
			journal.WithObserver[Counter](observer)))
	}
	opts = append(opts, store.WithInterceptors(interceptors...))

	st, err := store.New(counterReducer, opts...)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}

	if backend != nil {
		persistor := snapshot.NewPersistor[Counter](backend,
			snapshot.WithObserver[Counter](observer))
		unsubscribe := persistor.Attach(ctx, st)
		defer unsubscribe()
	}

	for _, action := range actions {
		if _, err := st.Dispatch(action); err != nil {
			return fmt.Errorf("dispatch failed: %w", err)
		}
	}

	if log != nil {
		if err := journal.WriteFile(cfg.Journal, log.Entries()); err != nil {
			return err
		}
	}

	out, err := json.Marshal(st.GetState())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
