// Command demandgen builds a road network and draws transport requests
// from it with the centre-biased node sampler.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/geomgraph/internal/config"
	"github.com/katalvlaran/geomgraph/internal/version"
)

// app holds state shared by the subcommands of one invocation.
type app struct {
	cfgFile  string
	seed     int64
	requests int
	backend  string
	verbose  bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "demandgen",
		Short: "Generate pickup/delivery demand over a spatial road network",
		Long: `demandgen builds a road network (grid, path, cycle, star, random geometric
or an explicit connection list) and draws transport requests whose endpoints
cluster around the centre of the network.`,
		Version:       version.Full(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file path (default: $GEOMGRAPH_CONFIG or ./demandgen.yaml)")
	rootCmd.PersistentFlags().Int64Var(&a.seed, "seed", 0, "random seed (overrides config)")
	rootCmd.PersistentFlags().IntVarP(&a.requests, "requests", "n", 0, "number of requests (overrides config)")
	rootCmd.PersistentFlags().StringVar(&a.backend, "backend", "", "storage backend: adjlist|matrix (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(a.sampleCmd())
	rootCmd.AddCommand(a.statsCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// loadConfig resolves the config file, applies flag overrides and sets up
// logging.
func (a *app) loadConfig(cmd *cobra.Command) error {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if a.cfgFile != "" {
		cfg, path, err = config.LoadFromPath(a.cfgFile)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("requests") {
		cfg.Requests = a.requests
	}
	if flags.Changed("backend") {
		cfg.Backend = config.Backend(a.backend)
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	if path != "" {
		a.logger.Debug("config loaded", "path", path)
	}
	return nil
}

func newLogger(w io.Writer, lc config.LogConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(lc.Level))); err != nil {
		return nil, fmt.Errorf("log level %q: %w", lc.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// Skips config loading.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "demandgen %s\n", version.Full())
			if version.BuildDate != "unknown" {
				fmt.Fprintf(out, "Build date: %s\n", version.BuildDate)
			}
			fmt.Fprintf(out, "Go version: %s\n", version.GoVersion)
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
