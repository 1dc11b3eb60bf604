// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchgraph charts Reduce and Scan benchmark timings.
//
// Usage:
//
//	benchgraph [flags]
//
// Benchgraph reads Google Benchmark CSV output (by default timing.csv
// in the current directory) and writes two logarithmic line charts,
// reduce.svg and scan.svg. Each benchmark "<Family>_<Variant>/<N>"
// becomes a point of line "<Variant>" in the chart of its family,
// with times shown in microseconds. The element counts of
// Reduce_GPU_Subgroup label the x axis of both charts.
//
// Every flag can also be set in a config file (-config) or through an
// environment variable such as BENCHGRAPH_SCAN_OUT.
package main

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vulkansubgroups/benchgraph/benchseries"
)

type config struct {
	Input     string
	ReduceOut string
	ScanOut   string
	Strict    bool
	Summary   bool
}

func main() {
	log := newLogger(os.Stderr)
	if err := newCommand(log).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log
}

func newCommand(log *logrus.Logger) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "benchgraph",
		Short: "Chart Reduce and Scan benchmark timings as SVG",
		Long: `Benchgraph reads Google Benchmark CSV results and writes one
logarithmic line chart per benchmark family (Reduce and Scan).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if path := v.GetString("config"); path != "" {
				v.SetConfigFile(path)
				if err := v.ReadInConfig(); err != nil {
					return errors.Wrap(err, "reading config")
				}
			}
			level, err := logrus.ParseLevel(v.GetString("log-level"))
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config{
				Input:     v.GetString("input"),
				ReduceOut: v.GetString("reduce-out"),
				ScanOut:   v.GetString("scan-out"),
				Strict:    v.GetBool("strict"),
				Summary:   v.GetBool("summary"),
			}
			return run(cfg, cmd.OutOrStdout(), log)
		},
	}

	flags := cmd.Flags()
	flags.String("input", "timing.csv", "Google Benchmark CSV `file` to read")
	flags.String("reduce-out", "reduce.svg", "write the Reduce chart to `file`")
	flags.String("scan-out", "scan.svg", "write the Scan chart to `file`")
	flags.Bool("strict", false, "reject names without a Reduce_/Scan_ prefix and series that do not match the x-axis labels")
	flags.Bool("summary", false, "print min/geomean/max of every series")
	flags.String("log-level", "info", "log `level` (debug, info, warn, error)")
	flags.String("config", "", "read settings from config `file` (yaml, toml or json)")

	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	v.SetEnvPrefix("benchgraph")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func run(cfg config, stdout io.Writer, log *logrus.Logger) error {
	bo := benchseries.DefaultBuilderOptions()
	bo.Strict = cfg.Strict
	bo.Warn = log.Warnf

	b := benchseries.NewBuilder(bo)
	if err := b.AddFile(cfg.Input); err != nil {
		return err
	}
	report, err := b.Report()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"reduce": report.Reduce.Len(),
		"scan":   report.Scan.Len(),
		"sizes":  len(report.Sizes),
	}).Debugf("read %s", cfg.Input)

	reduce, scan := report.Chart(benchseries.Reduce), report.Chart(benchseries.Scan)
	for _, out := range []struct {
		chart *benchseries.Chart
		path  string
	}{
		{reduce, cfg.ReduceOut},
		{scan, cfg.ScanOut},
	} {
		if err := out.chart.Save(out.path); err != nil {
			return err
		}
		log.Infof("wrote %s", out.path)
	}

	if cfg.Summary {
		return benchseries.WriteSummary(stdout, []*benchseries.Chart{reduce, scan})
	}
	return nil
}
