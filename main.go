// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cybrota/bstbench/bench"
	"github.com/cybrota/bstbench/checker"
	"github.com/cybrota/bstbench/printer"
	"github.com/cybrota/bstbench/tree"
)

// number of random keys dismantled when --keys is not given
const defaultDismantleKeys = 15

func main() {
	banner := `
 _         _   _                     _
| |__  ___| |_| |__   ___ _ __   ___| |__
| '_ \/ __| __| '_ \ / _ \ '_ \ / __| '_ \
| |_) \__ \ |_| |_) |  __/ | | | (__| | | |
|_.__/|___/\__|_.__/ \___|_| |_|\___|_| |_|
Unbalanced vs AVL binary search trees, probe by probe [Version: %s%s%s]

`

	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	InitializeColors(config.Display.Color)
	banner = fmt.Sprintf(banner, Green, version, Reset)

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Compare both trees and print a table",
		Long:  fmt.Sprintf("%s\n%s", banner, `Bench builds an unbalanced and an AVL tree from the same keys for every size and reports probes, compares, rotations, heights and time`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := benchConfigFromFlags(cmd, config.Bench)
			if err != nil {
				log.Fatalf("Invalid flags: %v", err)
			}
			formatName, _ := cmd.Flags().GetString("format")
			format, err := bench.ParseFormat(formatName)
			if err != nil {
				log.Fatalf("Invalid flags: %v", err)
			}

			results := runBench(cfg, nil)
			bench.Report(os.Stdout, results, format)
			if format == bench.FormatTable {
				for _, s := range bench.Speedups(results) {
					fmt.Printf("%sn=%d %s:%s the AVL tree probes %.2fx fewer nodes\n", Info, s.Size, s.Phase, Reset, s.Ratio)
				}
			}

			metricsOut, _ := cmd.Flags().GetString("metrics-out")
			if metricsOut != "" {
				if err := bench.WriteMetrics(metricsOut, results); err != nil {
					log.Fatalf("Error writing metrics: %v", err)
				}
				log.Printf("Metrics written to %s", metricsOut)
			}
		},
	}
	addBenchFlags(cmdBench)
	cmdBench.Flags().String("format", string(bench.FormatTable), "report format: table, markdown or csv")
	cmdBench.Flags().String("metrics-out", "", "write Prometheus gauges to this file")

	var cmdChart = &cobra.Command{
		Use:   "chart",
		Short: "Compare both trees and chart the probes per key",
		Long:  fmt.Sprintf("%s\n%s", banner, `Chart runs the same comparison as bench and draws the average probes per key as bar charts. Switching the lookup mode reruns the comparison, and modes already seen are redrawn from a cache`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := benchConfigFromFlags(cmd, config.Bench)
			if err != nil {
				log.Fatalf("Invalid flags: %v", err)
			}
			runs := newChartRuns(cfg, bench.NewResultCache())
			results := runBench(runs.cfg, runs.cache)
			// the terminal belongs to termui from here on
			runs.cfg.Progress = false
			if err := runChart(context.Background(), runs, results); err != nil {
				log.Fatalf("Error drawing chart: %v", err)
			}
		},
	}
	addBenchFlags(cmdChart)

	var cmdDismantle = &cobra.Command{
		Use:   "dismantle",
		Short: "Remove the root of a tree until it is empty",
		Long:  fmt.Sprintf("%s\n%s", banner, `Dismantle prints the tree after every root removal and checks it against the keys it should still hold`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			kindName, _ := cmd.Flags().GetString("kind")
			kind, err := tree.ParseKind(kindName)
			if err != nil {
				log.Fatalf("Invalid flags: %v", err)
			}

			keys, _ := cmd.Flags().GetIntSlice("keys")
			if len(keys) == 0 {
				seed, _ := cmd.Flags().GetUint64("seed")
				if seed == 0 {
					seed = uint64(time.Now().UnixNano())
				}
				keys = bench.NewGenerator(seed, config.Explore.MaxKey, bench.WorkloadRandom).InsertKeys(defaultDismantleKeys)
			}

			status, err := dismantle(os.Stdout, kind, keys, printOptions(config.Display, kind)...)
			if err != nil {
				log.Fatalf("Dismantle failed: %v", err)
			}
			color := Green
			if status != checker.NoError {
				color = Error
			}
			fmt.Printf("%s%s%s\n", color, status, Reset)
			if status != checker.NoError {
				os.Exit(1)
			}
		},
	}
	cmdDismantle.Flags().String("kind", config.Explore.Kind, "tree kind: avl or bst")
	cmdDismantle.Flags().IntSlice("keys", nil, "keys to insert before dismantling (default random)")
	cmdDismantle.Flags().Uint64("seed", 0, "seed for random keys (default derived from the clock)")

	var cmdExplore = &cobra.Command{
		Use:   "explore",
		Short: "Launch the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n%s", banner, `Explore opens a terminal UI to insert, remove and look up keys while watching the tree and its counters`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			kindName, _ := cmd.Flags().GetString("kind")
			kind, err := tree.ParseKind(kindName)
			if err != nil {
				log.Fatalf("Invalid flags: %v", err)
			}
			session := NewSession(kind, uint64(time.Now().UnixNano()), config.Explore.MaxKey)
			if err := runExplorer(session, config); err != nil {
				log.Fatalf("Error running explorer: %v", err)
			}
		},
	}
	cmdExplore.Flags().String("kind", config.Explore.Kind, "tree kind: avl or bst")

	var cmdConfig = &cobra.Command{
		Use:   "config",
		Short: "Display current configuration settings",
		Long:  fmt.Sprintf("%s\n%s", banner, `Config shows ~/.bstbench.yaml and creates it with defaults when missing`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print bstbench usage guide",
		Long:  fmt.Sprintf("%s\n%s", banner, `Usage displays the bstbench CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print bstbench version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "bstbench",
		Version: version,
		Long:    banner,
	}
	rootCmd.AddCommand(cmdBench, cmdChart, cmdDismantle, cmdExplore, cmdConfig, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addBenchFlags(cmd *cobra.Command) {
	cmd.Flags().IntSlice("sizes", nil, "tree sizes to compare (default from config)")
	cmd.Flags().Uint64("seed", 0, "workload seed, 0 derives one from the clock")
	cmd.Flags().Int("max-key", bench.DefaultMaxKey, "largest random key")
	cmd.Flags().String("workload", string(bench.WorkloadRandom), "insert keys: random or sequential")
	cmd.Flags().String("search", string(bench.SearchRandom), "lookup keys: random, hit or miss")
	cmd.Flags().Bool("verify", false, "check both trees after every insert phase")
	cmd.Flags().Bool("no-progress", false, "hide the progress bar")
}

// benchConfigFromFlags applies the flags the user set on top of base.
func benchConfigFromFlags(cmd *cobra.Command, base bench.Config) (bench.Config, error) {
	cfg := base
	flags := cmd.Flags()

	if flags.Changed("sizes") {
		sizes, err := flags.GetIntSlice("sizes")
		if err != nil {
			return cfg, err
		}
		cfg.Sizes = sizes
	}
	if flags.Changed("seed") {
		seed, err := flags.GetUint64("seed")
		if err != nil {
			return cfg, err
		}
		cfg.Seed = seed
	}
	if flags.Changed("max-key") {
		maxKey, err := flags.GetInt("max-key")
		if err != nil {
			return cfg, err
		}
		cfg.MaxKey = maxKey
	}
	if flags.Changed("workload") {
		name, _ := flags.GetString("workload")
		w, err := bench.ParseWorkload(name)
		if err != nil {
			return cfg, err
		}
		cfg.Workload = w
	}
	if flags.Changed("search") {
		name, _ := flags.GetString("search")
		m, err := bench.ParseSearchMode(name)
		if err != nil {
			return cfg, err
		}
		cfg.Search = m
	}
	if flags.Changed("verify") {
		cfg.Verify, _ = flags.GetBool("verify")
	}
	if noProgress, _ := flags.GetBool("no-progress"); noProgress {
		cfg.Progress = false
	}
	return cfg, cfg.Validate()
}

// runBench runs the comparison until done or interrupted. An interrupted run
// still returns the sizes that finished.
func runBench(cfg bench.Config, rc *bench.ResultCache) []bench.Result {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := bench.NewRunner(cfg, rc).Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Printf("Interrupted, showing the %d results gathered so far", len(results))
		return results
	}
	if err != nil {
		stop()
		log.Fatalf("Benchmark failed: %v", err)
	}
	return results
}

// printOptions follows the display settings. Heights are only stored by AVL
// trees, so they are never shown for the unbalanced kind.
func printOptions(display DisplayConfig, kind tree.Kind) []printer.Option {
	opts := []printer.Option{printer.WithHeights(display.ShowHeights && kind == tree.AVL)}
	if display.Color {
		opts = append(opts, printer.WithKeyStyle(keyStyle()))
	}
	return opts
}
