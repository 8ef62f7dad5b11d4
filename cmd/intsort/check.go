// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"cloudeng.io/intsort"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
)

var (
	errNotSorted      = errors.New("output is not sorted")
	errNotPermutation = errors.New("output is not a permutation of the input")
)

type checkFlags struct {
	cmdutil.LoggingFlags
	Config      string `subcmd:"config,,'yaml configuration file, see the command documentation'"`
	Seed        int64  `subcmd:"seed,0,'the initial random number seed, overrides the configuration file if non-zero'"`
	Trials      int    `subcmd:"trials,0,'the number of trials per input size, overrides the configuration file if non-zero'"`
	Concurrency int    `subcmd:"concurrency,0,'the number of trials to run concurrently, overrides the configuration file if non-zero'"`
	Sizes       string `subcmd:"sizes,,'comma separated input sizes, overrides those in the configuration file'"`
}

func checkCmd() *subcmd.Command {
	cmd := subcmd.NewCommand("check",
		subcmd.MustRegisterFlagStruct(&checkFlags{}, nil, nil),
		checkSorts, subcmd.ExactlyNumArguments(0))
	cmd.Document(`run randomized trials of the sorts and compare their output with slices.Sort.

Every trial generates an input with the configured distribution and size
and sorts it with each of the configured algorithms. A trial fails if the
output is not sorted or is not a permutation of its input. The optional
configuration file is of the form:

  seed: 1
  trials: 50
  concurrency: 4
  max_len: 1000
  algorithms: [partition, heap]
  inputs:
    - distribution: uniform
      sizes: [0, 1, 2, 17, 1000]
      max_value: 10000
`)
	return cmd
}

func checkSorts(ctx context.Context, values any, _ []string) error {
	fv := values.(*checkFlags)
	ctx, done, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	return runCheck(ctx, os.Stdout, fv)
}

func parseSizes(sizes string) ([]int, error) {
	c := flags.Commas{Validate: func(v string) error {
		if _, err := strconv.Atoi(strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("invalid size: %q", v)
		}
		return nil
	}}
	if err := c.Set(sizes); err != nil {
		return nil, err
	}
	r := make([]int, len(c.Values))
	for i, v := range c.Values {
		r[i], _ = strconv.Atoi(strings.TrimSpace(v))
	}
	return r, nil
}

func loadCheckConfig(ctx context.Context, fv *checkFlags) (checkConfig, error) {
	cfg := defaultCheckConfig()
	if len(fv.Config) > 0 {
		if err := cmdyaml.ParseConfigFileStrict(ctx, fv.Config, &cfg); err != nil {
			return cfg, err
		}
	}
	if fv.Seed != 0 {
		cfg.Seed = fv.Seed
	}
	if fv.Trials != 0 {
		cfg.Trials = fv.Trials
	}
	if fv.Concurrency != 0 {
		cfg.Concurrency = fv.Concurrency
	}
	if len(fv.Sizes) > 0 {
		sizes, err := parseSizes(fv.Sizes)
		if err != nil {
			return cfg, err
		}
		for i := range cfg.Inputs {
			cfg.Inputs[i].Sizes = sizes
		}
	}
	return cfg, cfg.validate()
}

func runCheck(ctx context.Context, out io.Writer, fv *checkFlags) error {
	cfg, err := loadCheckConfig(ctx, fv)
	if err != nil {
		return err
	}
	trials := cfg.trials()
	logger := ctxlog.Logger(ctx)
	logger.Info("check", "trials", len(trials), "algorithms", cfg.Algorithms, "concurrency", cfg.Concurrency)

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Concurrency > 0 {
		g = errgroup.WithConcurrency(g, cfg.Concurrency)
	}
	var sorts atomic.Int64
	for _, tr := range trials {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := runTrial(ctx, cfg, tr)
			sorts.Add(int64(n))
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "ok: %v trials, %v sorts\n", len(trials), sorts.Load())
	return err
}

// runTrial sorts a single generated input with every configured algorithm
// and returns the number of sorts performed.
func runTrial(ctx context.Context, cfg checkConfig, tr trial) (int, error) {
	logger := ctxlog.Logger(ctx)
	input := tr.generate()
	want := slices.Clone(input)
	slices.Sort(want)
	for i, name := range cfg.Algorithms {
		fn, _ := intsort.Lookup(name)
		xs := slices.Clone(input)
		var stats intsort.Stats
		if err := fn(xs, len(xs), intsort.WithMaxLen(cfg.MaxLen), intsort.WithStats(&stats)); err != nil {
			return i, fmt.Errorf("%v: %v: %w", name, tr, err)
		}
		logger.Debug("trial", "algorithm", name, "distribution", tr.distribution.String(), "size", tr.size, "seed", tr.seed, "stats", stats)
		if !slices.IsSorted(xs) {
			return i + 1, fmt.Errorf("%v: %v: %w: %v", name, tr, errNotSorted, intsort.Format(xs))
		}
		if !slices.Equal(xs, want) {
			return i + 1, fmt.Errorf("%v: %v: %w: %v", name, tr, errNotPermutation, intsort.Format(xs))
		}
	}
	return len(cfg.Algorithms), nil
}
