// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/intsort/randints"
	"cloudeng.io/logging/ctxlog"
)

type genFlags struct {
	cmdutil.LoggingFlags
	Distribution string `subcmd:"distribution,uniform,'the distribution of the generated values: uniform, zipf, few-unique, sorted, reversed or constant'"`
	Size         int    `subcmd:"size,10,'the number of values to generate'"`
	Seed         int64  `subcmd:"seed,1,'the random number seed'"`
	MaxValue     int    `subcmd:"max-value,10000,'the largest magnitude of any generated value'"`
}

func genCmd() *subcmd.Command {
	cmd := subcmd.NewCommand("gen",
		subcmd.MustRegisterFlagStruct(&genFlags{}, nil, nil),
		genInts, subcmd.ExactlyNumArguments(0))
	cmd.Document(`generate integers, one per line, suitable for use with the sort command.`)
	return cmd
}

func genInts(ctx context.Context, values any, _ []string) error {
	fv := values.(*genFlags)
	ctx, done, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	return runGen(ctx, os.Stdout, fv)
}

func runGen(ctx context.Context, out io.Writer, fv *genFlags) error {
	d, err := randints.ParseDistribution(fv.Distribution)
	if err != nil {
		return err
	}
	if fv.Size < 0 {
		return fmt.Errorf("invalid size: %v", fv.Size)
	}
	ctxlog.Logger(ctx).Debug("generating", "distribution", d.String(), "size", fv.Size, "seed", fv.Seed, "max_value", fv.MaxValue)
	wr := bufio.NewWriter(out)
	for _, v := range randints.Generate(d, fv.Seed, fv.Size, fv.MaxValue) {
		fmt.Fprintln(wr, v)
	}
	return wr.Flush()
}
