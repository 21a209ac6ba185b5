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

// Package bench compares the unbalanced and the AVL tree under the same
// insertion and lookup workloads and reports the instrumentation of both.
package bench

import (
	"fmt"
	"strings"
)

// Workload decides which keys are inserted.
type Workload string

const (
	WorkloadRandom     Workload = "random"     // uniform keys in [1, MaxKey]
	WorkloadSequential Workload = "sequential" // 1, 2, ..., n
)

// SearchMode decides which keys are looked up after the insert phase.
type SearchMode string

const (
	SearchRandom SearchMode = "random" // fresh uniform keys, mostly misses
	SearchHit    SearchMode = "hit"    // keys that were inserted
	SearchMiss   SearchMode = "miss"   // keys that were not inserted
)

// DefaultMaxKey bounds randomly generated keys.
const DefaultMaxKey = 100000000

// sequential insertion makes the unbalanced tree a linked list, so large
// sizes take quadratic time
const sequentialWarnSize = 20000

// Config describes one comparison run.
type Config struct {
	Sizes    []int      `yaml:"sizes"`
	Seed     uint64     `yaml:"seed"` // 0 derives a seed from the clock
	MaxKey   int        `yaml:"max_key"`
	Workload Workload   `yaml:"workload"`
	Search   SearchMode `yaml:"search"`
	Verify   bool       `yaml:"verify"`
	Progress bool       `yaml:"progress"`
}

// DefaultSizes are the tree sizes of a default run.
func DefaultSizes() []int {
	sizes := make([]int, 0, 10)
	for n := 10000; n <= 100000; n += 10000 {
		sizes = append(sizes, n)
	}
	return sizes
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Sizes:    DefaultSizes(),
		MaxKey:   DefaultMaxKey,
		Workload: WorkloadRandom,
		Search:   SearchRandom,
		Progress: true,
	}
}

// ParseWorkload accepts a workload name in any case.
func ParseWorkload(s string) (Workload, error) {
	switch w := Workload(strings.ToLower(s)); w {
	case WorkloadRandom, WorkloadSequential:
		return w, nil
	}
	return "", fmt.Errorf("unknown workload %q (want random or sequential)", s)
}

// ParseSearchMode accepts a search mode name in any case.
func ParseSearchMode(s string) (SearchMode, error) {
	switch m := SearchMode(strings.ToLower(s)); m {
	case SearchRandom, SearchHit, SearchMiss:
		return m, nil
	}
	return "", fmt.Errorf("unknown search mode %q (want random, hit or miss)", s)
}

// Validate reports the first setting that cannot be run.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("no tree sizes given")
	}
	for _, n := range c.Sizes {
		if n <= 0 {
			return fmt.Errorf("tree size must be positive, got %d", n)
		}
	}
	if c.MaxKey <= 0 {
		return fmt.Errorf("max key must be positive, got %d", c.MaxKey)
	}
	if _, err := ParseWorkload(string(c.Workload)); err != nil {
		return err
	}
	if _, err := ParseSearchMode(string(c.Search)); err != nil {
		return err
	}
	if c.Search == SearchMiss {
		// at least half of the key range stays free, so a random draw is a
		// miss at least half the time
		for _, n := range c.Sizes {
			if n > c.MaxKey/2 {
				return fmt.Errorf("size %d leaves too few missing keys below %d (max key must be at least %d)", n, c.MaxKey, 2*n)
			}
		}
	}
	return nil
}
