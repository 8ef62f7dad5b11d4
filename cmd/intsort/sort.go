// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"cloudeng.io/file"
	"cloudeng.io/intsort"
	"cloudeng.io/logging/ctxlog"
)

type sortFlags struct {
	cmdutil.LoggingFlags
	Algorithm string `subcmd:"algorithm,partition,'the sort to use: partition or heap'"`
	File      string `subcmd:"file,,'read whitespace or comma separated integers from this file, they precede any supplied as arguments'"`
	MaxLen    int    `subcmd:"max-len,1000,'the maximum number of integers that will be sorted, zero or less for no limit'"`
}

func sortCmd() *subcmd.Command {
	cmd := subcmd.NewCommand("sort",
		subcmd.MustRegisterFlagStruct(&sortFlags{}, nil, nil),
		sortInts, subcmd.AtLeastNArguments(0))
	cmd.Document(`sort the supplied integers and print them as {a, b, c}.`, "<int>...")
	return cmd
}

func sortInts(ctx context.Context, values any, args []string) error {
	fv := values.(*sortFlags)
	ctx, done, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	return runSort(ctx, os.Stdout, fv, args)
}

func validAlgorithm(name string) error {
	names := intsort.Algorithms()
	return flags.OneOf(name).Validate(names[0], names[1:]...)
}

func runSort(ctx context.Context, out io.Writer, fv *sortFlags, args []string) error {
	if err := validAlgorithm(fv.Algorithm); err != nil {
		return err
	}
	fn, _ := intsort.Lookup(fv.Algorithm)
	var xs []int
	if len(fv.File) > 0 {
		data, err := file.FSReadFile(ctx, fv.File)
		if err != nil {
			return err
		}
		if xs, err = parseInts(string(data)); err != nil {
			return fmt.Errorf("%v: %w", fv.File, err)
		}
	}
	fromArgs, err := parseInts(strings.Join(args, " "))
	if err != nil {
		return err
	}
	xs = append(xs, fromArgs...)
	var stats intsort.Stats
	if err := fn(xs, len(xs), intsort.WithMaxLen(fv.MaxLen), intsort.WithStats(&stats)); err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("sorted", "algorithm", fv.Algorithm, "n", len(xs), "stats", stats)
	_, err = fmt.Fprintln(out, intsort.Format(xs))
	return err
}

// parseInts parses integers separated by white space and/or commas.
func parseInts(input string) ([]int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	xs := make([]int, 0, len(fields))
	errs := errors.M{}
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			errs.Append(fmt.Errorf("invalid integer: %q", f))
			continue
		}
		xs = append(xs, v)
	}
	return xs, errs.Err()
}
