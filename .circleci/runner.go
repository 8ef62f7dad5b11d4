// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

var (
	testFlag bool
	fuzzFlag string
)

// configurations are the build tag sets that the tests are run with.
var configurations = [][]string{
	nil,
	{"intsort_invariants"},
}

func done(msg string, err error) {
	fmt.Printf("Failed: %s: %s\n", msg, err)
	os.Exit(1)
}

func main() {
	ctx := context.Background()
	flag.BoolVar(&testFlag, "test", false, "run tests with and without invariant checking enabled")
	flag.StringVar(&fuzzFlag, "fuzz", "", "run the sort fuzz test for the specified duration, eg. 30s")
	flag.Parse()

	if !testFlag && len(fuzzFlag) == 0 {
		fmt.Fprintf(os.Stderr, "at least one flag is required\n")
		flag.Usage()
		os.Exit(1)
	}

	if testFlag {
		if err := runTests(ctx); err != nil {
			done("tests", err)
		}
	}

	if len(fuzzFlag) > 0 {
		if err := run(ctx, "fuzz", "go", "test", "-run=^$", "-fuzz=FuzzSort", "-fuzztime="+fuzzFlag, "."); err != nil {
			done("fuzz", err)
		}
	}
}

func runTests(ctx context.Context) error {
	failed := false
	for _, tags := range configurations {
		name := "default"
		args := []string{"test", "-failfast", "--covermode=atomic", "-race"}
		if len(tags) > 0 {
			name = strings.Join(tags, ",")
			args = append(args, "-tags", name)
		}
		args = append(args, "./...")
		if err := run(ctx, name, "go", args...); err != nil {
			fmt.Fprintf(os.Stderr, "%v: failed: %v\n", name, err)
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("tests failed")
	}
	return nil
}

func run(ctx context.Context, name, command string, args ...string) error {
	fmt.Printf("%v...\n", name)
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		fmt.Printf("%v... ok\n", name)
	} else {
		fmt.Printf("%v... failed\n", name)
	}
	return err
}
