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

package bench

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/bstbench/checker"
	"github.com/cybrota/bstbench/tree"
)

// Phase names the part of a round a result was measured in.
type Phase string

const (
	PhaseInsert Phase = "insert"
	PhaseSearch Phase = "search"
)

// Result is the instrumentation of one tree over one phase.
type Result struct {
	Seed      uint64
	Size      int
	Kind      tree.Kind
	Phase     Phase
	Probes    uint64
	Compares  uint64
	Rotations uint64
	Elapsed   time.Duration
	Height    int // after the insert phase
	Hits      int // keys found during the search phase
}

// Runner executes comparison runs.
type Runner struct {
	cfg    Config
	cache  *ResultCache
	output io.Writer // progress bar destination
}

// NewRunner creates a runner. The cache may be nil.
func NewRunner(cfg Config, rc *ResultCache) *Runner {
	return &Runner{cfg: cfg, cache: rc, output: os.Stderr}
}

// Run builds an unbalanced and an AVL tree from the same keys for every
// configured size, measures the insert and search phases and returns the
// results in size order. Cancellation is checked between phases; the
// results gathered so far are returned with the context error.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bench config: %w", err)
	}

	seed := r.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if r.cfg.Workload == WorkloadSequential && slices.Max(r.cfg.Sizes) > sequentialWarnSize {
		log.Printf("Warning: sequential keys degrade the unbalanced tree to a list, sizes above %d will be slow", sequentialWarnSize)
	}

	bar := r.newProgressBar()
	var results []Result
	for _, size := range r.cfg.Sizes {
		key := roundKey(r.cfg, seed, size)
		if cached, ok := r.cache.Get(key); ok {
			results = append(results, cached...)
			bar.Add(roundOps(size))
			continue
		}

		round, err := r.runRound(ctx, seed, size, bar)
		if err != nil {
			return results, err
		}
		r.cache.Set(key, round)
		results = append(results, round...)
	}
	bar.Finish()
	return results, nil
}

// every key is inserted into and looked up in both trees
func roundOps(size int) int {
	return size * 2 * len(tree.Kinds())
}

func (r *Runner) runRound(ctx context.Context, seed uint64, size int, bar *progressbar.ProgressBar) ([]Result, error) {
	// the seed is mixed with the size so a round does not depend on which
	// sizes ran before it
	gen := NewGenerator(seed^uint64(size), r.cfg.MaxKey, r.cfg.Workload)
	keys := gen.InsertKeys(size)

	trees := make([]*tree.Tree, 0, len(tree.Kinds()))
	for _, kind := range tree.Kinds() {
		trees = append(trees, tree.New(kind))
	}
	defer func() {
		for _, t := range trees {
			t.Clear()
		}
	}()

	results := make([]Result, 0, 2*len(trees))
	heights := make([]int, len(trees))
	for i, t := range trees {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t.Reset()
		for _, k := range keys {
			t.Insert(k)
		}
		bar.Add(size)

		res := r.result(seed, size, t, PhaseInsert)
		heights[i] = t.Height()
		res.Height = heights[i]
		t.Reset()
		results = append(results, res)

		if r.cfg.Verify {
			if err := verify(t, keys); err != nil {
				return nil, fmt.Errorf("%s tree of size %d: %w", t.Kind(), size, err)
			}
		}
	}

	lookups := gen.SearchKeys(r.cfg.Search, keys, size)
	for i, t := range trees {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hits := 0
		for _, k := range lookups {
			if t.Contains(k) {
				hits++
			}
		}
		bar.Add(size)

		res := r.result(seed, size, t, PhaseSearch)
		res.Hits = hits
		res.Height = heights[i]
		t.Reset()
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) result(seed uint64, size int, t *tree.Tree, phase Phase) Result {
	stats := t.Stats()
	return Result{
		Seed:      seed,
		Size:      size,
		Kind:      t.Kind(),
		Phase:     phase,
		Probes:    stats.Probes,
		Compares:  stats.Compares,
		Rotations: stats.Rotations,
		Elapsed:   stats.Elapsed,
	}
}

// verify compares the tree with an independently kept key set and checks
// its shape.
func verify(t *tree.Tree, keys []int) error {
	c := checker.New(t)
	for _, k := range keys {
		c.Add(k)
	}
	if status := c.Check(); status != checker.NoError {
		return fmt.Errorf("checker: %s", status)
	}
	return c.Verify()
}

func (r *Runner) newProgressBar() *progressbar.ProgressBar {
	total := 0
	for _, n := range r.cfg.Sizes {
		total += roundOps(n)
	}
	if !r.cfg.Progress {
		return progressbar.DefaultSilent(int64(total))
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Running workloads..."),
		progressbar.OptionSetWriter(r.output),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(r.output)
		}),
	)
}
