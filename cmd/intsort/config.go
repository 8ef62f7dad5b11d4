// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/intsort"
	"cloudeng.io/intsort/randints"
)

// inputConfig describes one family of generated inputs.
type inputConfig struct {
	Distribution randints.Distribution `yaml:"distribution"`
	Sizes        []int                 `yaml:"sizes"`
	MaxValue     int                   `yaml:"max_value"`
}

// checkConfig is the configuration for the check command. An example is:
//
//	seed: 1
//	trials: 50
//	concurrency: 4
//	max_len: 1000
//	algorithms: [partition, heap]
//	inputs:
//	  - distribution: uniform
//	    sizes: [0, 1, 2, 17, 1000]
//	    max_value: 10000
type checkConfig struct {
	Seed        int64         `yaml:"seed"`
	Trials      int           `yaml:"trials"`
	Concurrency int           `yaml:"concurrency"`
	MaxLen      int           `yaml:"max_len"`
	Algorithms  []string      `yaml:"algorithms"`
	Inputs      []inputConfig `yaml:"inputs"`
}

var defaultSizes = []int{0, 1, 2, 3, 17, 100, intsort.DefaultMaxLen}

func defaultCheckConfig() checkConfig {
	cfg := checkConfig{
		Seed:       1,
		Trials:     10,
		MaxLen:     intsort.DefaultMaxLen,
		Algorithms: intsort.Algorithms(),
	}
	for _, d := range randints.Distributions() {
		cfg.Inputs = append(cfg.Inputs, inputConfig{
			Distribution: d,
			Sizes:        defaultSizes,
			MaxValue:     randints.DefaultMaxValue,
		})
	}
	return cfg
}

func (c checkConfig) validate() error {
	errs := errors.M{}
	if c.Trials <= 0 {
		errs.Append(fmt.Errorf("trials must be positive: %v", c.Trials))
	}
	if c.Concurrency < 0 {
		errs.Append(fmt.Errorf("concurrency must not be negative: %v", c.Concurrency))
	}
	if len(c.Algorithms) == 0 {
		errs.Append(fmt.Errorf("no algorithms specified"))
	}
	for _, a := range c.Algorithms {
		errs.Append(validAlgorithm(a))
	}
	for _, in := range c.Inputs {
		for _, n := range in.Sizes {
			if n < 0 {
				errs.Append(fmt.Errorf("%v: size must not be negative: %v", in.Distribution, n))
			}
			if c.MaxLen > 0 && n > c.MaxLen {
				errs.Append(fmt.Errorf("%v: size %v exceeds max_len of %v", in.Distribution, n, c.MaxLen))
			}
		}
	}
	return errs.Err()
}

// trial is a single input to be sorted by every configured algorithm.
type trial struct {
	distribution randints.Distribution
	size         int
	maxValue     int
	seed         int64
}

func (c checkConfig) trials() []trial {
	var trials []trial
	seed := c.Seed
	for _, in := range c.Inputs {
		for _, n := range in.Sizes {
			for range c.Trials {
				trials = append(trials, trial{
					distribution: in.Distribution,
					size:         n,
					maxValue:     in.MaxValue,
					seed:         seed,
				})
				seed++
			}
		}
	}
	return trials
}

func (t trial) generate() []int {
	return randints.Generate(t.distribution, t.seed, t.size, t.maxValue)
}

func (t trial) String() string {
	return fmt.Sprintf("%v: size %v: seed %v", t.distribution, t.size, t.seed)
}
