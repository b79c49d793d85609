// ABOUTME: Root Cobra command: fetch one feed URL and print canonical JSON
// ABOUTME: Loads configuration and the logger before any subcommand runs

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jdichev/forest/internal/config"
	"github.com/jdichev/forest/internal/fetch"
	"github.com/jdichev/forest/internal/fetchfeed"
	"github.com/jdichev/forest/internal/logger"
)

var (
	cfg      *config.Config
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "fetch-feed <url>",
	Short: "Fetch an RSS/Atom feed and print it as canonical JSON",
	Long: `Fetch an RSS or Atom feed and print it as one canonical JSON document.

Item markup is sanitized (noscript fallbacks are unwrapped first) and
dates are normalized to Unix seconds. The request times out after 2s.

On failure a JSON payload {"error": ..., "kind": ...} is printed instead
and the exit status tells the failure kind: 2 transport, 3 body read,
4 feed parse.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		if err := logger.Init(logger.FromConfig(cfg)); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		out, err := fetchfeed.FromURLWith(cmd.Context(), newFetcher(), args[0])
		if err != nil {
			return reportFailure(cmd, err, "url", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default: info)")
}

func newFetcher() *fetch.Fetcher {
	return fetch.New(cfg.GetUserAgent())
}

// exitError carries the process exit status for a reported failure.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// reportFailure prints the failure payload on stdout and logs one diagnostic.
func reportFailure(cmd *cobra.Command, err error, keysAndValues ...interface{}) error {
	failure := fetchfeed.NewFailure(err)
	fmt.Fprintln(cmd.OutOrStdout(), failure.JSON())

	fields := append([]interface{}{"call_id", uuid.NewString(), "kind", failure.Kind}, keysAndValues...)
	logger.With(fields...).Errorf("%s: %v", cmd.Name(), err)

	return &exitError{code: fetchfeed.ExitCode(err), err: err}
}
