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
	"fmt"
	"io"

	"github.com/cybrota/bstbench/checker"
	"github.com/cybrota/bstbench/printer"
	"github.com/cybrota/bstbench/tree"
)

// dismantle builds a tree from keys and removes its root until the tree is
// empty, printing the tree and checking it after every removal. It stops at
// the first inconsistency and returns the checker's verdict.
func dismantle(w io.Writer, kind tree.Kind, keys []int, opts ...printer.Option) (checker.Status, error) {
	t := tree.New(kind)
	c := checker.New(t)
	for _, k := range keys {
		t.Insert(k)
		c.Add(k)
	}

	p := printer.New(w, opts...)
	fmt.Fprintf(w, "%s tree with %d keys\n", kind, checker.Count(t.Root()))
	p.Print(t.Root())

	for !t.IsEmpty() {
		k := t.Root().Key()
		t.Remove(k)
		c.Remove(k)

		fmt.Fprintf(w, "\nRemoving root %d\n", k)
		p.Print(t.Root())

		if status := c.Check(); status != checker.NoError {
			return status, nil
		}
		if err := c.Verify(); err != nil {
			return checker.NoError, fmt.Errorf("after removing %d: %w", k, err)
		}
	}

	stats := t.Stats()
	fmt.Fprintf(w, "\nprobes %d, compares %d, rotations %d\n", stats.Probes, stats.Compares, stats.Rotations)
	return c.Check(), nil
}
