// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command intsort sorts integers using the partition and heap sorts
// provided by cloudeng.io/intsort, generates test inputs and checks both
// sorts against the standard library.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

var cmdSet *subcmd.CommandSet

func init() {
	cmdSet = subcmd.NewCommandSet(sortCmd(), checkCmd(), genCmd())
	cmdSet.Document(`sort integers with a work-list driven partition sort or a heap sort.

The sort command sorts the integers supplied on the command line or in
a file, the gen command generates inputs with a variety of distributions
and the check command runs randomized trials of both sorts and compares
their output with that of the standard library.
`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}

// withLogger returns a context containing the logger specified by lf and
// a function that must be called to release it.
func withLogger(ctx context.Context, lf cmdutil.LoggingFlags) (context.Context, func(), error) {
	logger, err := lf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { logger.Close() }, nil
}
