// Package cli implements the lunchr command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/mrterry/lunchr"
	"github.com/mrterry/lunchr/internal/logging"
	"github.com/mrterry/lunchr/internal/metrics"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	people     int
	tables     int
	capacity   int
	rounds     int
	scorer     string
	passes     int
	debug      bool
	metrics    bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:          "lunchr",
		Short:        "Seat people at capacity-bounded tables by local search",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, &f)
			if err != nil {
				return err
			}

			return run(cmd, cfg, &f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.configPath, "config", "f", "", "YAML configuration file (flags override its values)")
	flags.IntVarP(&f.people, "people", "p", 0, "number of people to seat (default 6)")
	flags.IntVarP(&f.tables, "tables", "t", 0, "number of tables (default 3)")
	flags.IntVarP(&f.capacity, "capacity", "c", 0, "seats per table (default 2)")
	flags.IntVar(&f.rounds, "rounds", 0, "maximum settle rounds (default 100)")
	flags.StringVar(&f.scorer, "scorer", "", "fit policy: size or packing (default size)")
	flags.IntVar(&f.passes, "passes", 2, "times each person is evaluated per round")
	flags.BoolVar(&f.metrics, "metrics", false, "print Prometheus metrics after settling")
	cmd.PersistentFlags().BoolVar(&f.debug, "debug", false, "log every committed move")

	return cmd
}

// resolveConfig loads the optional file and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, f *rootFlags) (*lunchr.Config, error) {
	cfg := &lunchr.Config{}
	if f.configPath != "" {
		loaded, err := lunchr.LoadConfig(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	for name, v := range map[string]int{
		"people":   f.people,
		"tables":   f.tables,
		"capacity": f.capacity,
		"rounds":   f.rounds,
	} {
		// Zero would silently select the library default.
		if flags.Changed(name) && v <= 0 {
			return nil, fmt.Errorf("%w: --%s must be > 0, got %d", lunchr.ErrInvalidConfig, name, v)
		}
	}

	if flags.Changed("people") {
		cfg.PersonCount = f.people
	}
	if flags.Changed("tables") {
		cfg.TableCount = f.tables
	}
	if flags.Changed("capacity") {
		cfg.TableCapacity = f.capacity
	}
	if flags.Changed("rounds") {
		cfg.MaxRounds = f.rounds
	}
	if flags.Changed("scorer") {
		cfg.Scorer = f.scorer
	}

	if f.passes <= 0 {
		return nil, fmt.Errorf("%w: --passes must be > 0, got %d", lunchr.ErrInvalidConfig, f.passes)
	}

	return cfg, nil
}

func run(cmd *cobra.Command, cfg *lunchr.Config, f *rootFlags) error {
	level := slog.LevelWarn
	if f.debug {
		level = slog.LevelDebug
	}
	logger := logging.NewSlogText(cmd.ErrOrStderr(), level)

	reg := prometheus.NewRegistry()
	collector := metrics.NewPrometheus(reg, "")

	eng, err := lunchr.New(cfg, lunchr.WithLogger(logger), lunchr.WithMetrics(collector))
	if err != nil {
		return err
	}

	order := make([]lunchr.PersonID, 0, f.passes*eng.Config().PersonCount)
	for range f.passes {
		order = append(order, eng.Persons()...)
	}

	report, err := eng.Settle(cmd.Context(), order)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printSeating(out, eng)
	fmt.Fprintf(out, "settled: reason=%s rounds=%d moves=%d evictions=%d unassigned=%d\n",
		report.Reason, report.Rounds, report.Moves, report.Evictions, len(eng.Unassigned()))

	if f.metrics {
		return writeMetrics(out, reg)
	}

	return nil
}

// printSeating writes one "person, table" line per person in ascending order.
// Unassigned persons get "-" as their table.
func printSeating(w io.Writer, eng *lunchr.Engine) {
	assignment := eng.Assignment()
	for _, p := range eng.Persons() {
		if table, ok := assignment[p]; ok {
			fmt.Fprintf(w, "%d, %d\n", p, table)
		} else {
			fmt.Fprintf(w, "%d, -\n", p)
		}
	}
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	return nil
}
