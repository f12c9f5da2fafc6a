// Command ges-solve reads a PDPTW instance and runs Guided Ejection Search
// against it, printing the resulting route set in the conventional
// "Route N : <id> <id> ..." text form.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/go-logistics/ges-pdptw"
	"github.com/go-logistics/ges-pdptw/config"
	"github.com/go-logistics/ges-pdptw/instance"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		path         string
		maxTime      time.Duration
		targetRoutes int
		quiet        bool
		verbose      bool
		extra        bool
		seed         int64
		kMax         int
		configPath   string
		metricsAddr  string
	)

	cmd := &cobra.Command{
		Use:   "ges-solve",
		Short: "Solve a PDPTW instance with Guided Ejection Search",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), runArgs{
				path:         path,
				maxTime:      maxTime,
				targetRoutes: targetRoutes,
				quiet:        quiet,
				verbose:      verbose,
				extra:        extra,
				seed:         seed,
				kMax:         kMax,
				configPath:   configPath,
				metricsAddr:  metricsAddr,
				flags:        cmd.Flags(),
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&path, "path", "", "path to a Li & Lim PDPTW instance file (required)")
	flags.DurationVar(&maxTime, "max-time", 0, "wall-clock optimization time budget (0 = unlimited)")
	flags.IntVar(&targetRoutes, "target-routes", 0, "stop once this many routes remain (0 = use the built-in table or run to convergence)")
	flags.BoolVar(&quiet, "quiet", false, "suppress progress logging (default)")
	flags.BoolVar(&verbose, "verbose", false, "log route removals and periodic totals")
	flags.BoolVar(&extra, "extra", false, "log verbose detail plus full solution dumps on every route removal")
	flags.Int64Var(&seed, "seed", 0, "deterministic RNG seed")
	flags.IntVar(&kMax, "k-max", ges.DefaultKMax, "maximum pickup/delivery pairs ejected together during reinsertion search")
	flags.StringVar(&configPath, "config", "", "optional YAML config file for ambient tuning knobs")
	flags.StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this host:port")
	cobra.CheckErr(cmd.MarkFlagRequired("path"))

	return cmd
}

type runArgs struct {
	path         string
	maxTime      time.Duration
	targetRoutes int
	quiet        bool
	verbose      bool
	extra        bool
	seed         int64
	kMax         int
	configPath   string
	metricsAddr  string
	flags        *pflag.FlagSet
}

func run(ctx context.Context, a runArgs) error {
	defaults := config.Tuning{KMax: a.kMax, PerturbBatch: ges.DefaultPerturbBatch, Seed: a.seed, MetricsAddr: a.metricsAddr}
	tuning, err := config.Load(a.configPath, defaults, a.flags)
	if err != nil {
		return err
	}

	header, nodes, err := instance.ReadFile(a.path)
	if err != nil {
		return err
	}

	inst, err := ges.NewInstance(nodes, header.Capacity)
	if err != nil {
		return err
	}

	opts := ges.DefaultOptions()
	opts.KMax = tuning.KMax
	opts.PerturbBatch = tuning.PerturbBatch
	opts.Seed = tuning.Seed
	opts.MaxTime = a.maxTime
	opts.TargetRoutes = resolveTargetRoutes(a.path, a.targetRoutes)
	opts.Log = resolveLogLevel(a.quiet, a.verbose, a.extra)
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	switch opts.Log {
	case ges.LogExtra:
		err = klogFlags.Set("v", "4")
	case ges.LogVerbose:
		err = klogFlags.Set("v", "2")
	}
	if err != nil {
		return err
	}

	driver, err := ges.NewDriver(inst, opts)
	if err != nil {
		return err
	}

	if tuning.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		if err := driver.EnableMetrics(reg); err != nil {
			return err
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: tuning.MetricsAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				klog.Errorf("ges-solve: metrics server: %v", err)
			}
		}()
	}

	fmt.Printf("%s %d %s\n", instanceName(a.path), opts.TargetRoutes, a.maxTime)

	sol, solveErr := driver.Solve(ctx)
	if solveErr != nil && !errors.Is(solveErr, ges.ErrTimeBudgetExceeded) && !errors.Is(solveErr, ges.ErrNoFeasibleInsertion) {
		return solveErr
	}

	meta := ges.SolutionMeta{
		InstanceName: instanceName(a.path),
		Authors:      "ges-solve",
		Reference:    "Guided Ejection Search",
		Date:         time.Now().Format("2006-01-02"),
	}
	return ges.WriteSolution(os.Stdout, meta, sol, inst)
}

func instanceName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func resolveTargetRoutes(path string, flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	if n, ok := instance.TargetRoutes[instanceName(path)]; ok {
		return n
	}
	return 0
}

func resolveLogLevel(quiet, verbose, extra bool) ges.LogLevel {
	switch {
	case extra:
		return ges.LogExtra
	case verbose:
		return ges.LogVerbose
	case quiet:
		return ges.LogQuiet
	default:
		return ges.LogQuiet
	}
}
