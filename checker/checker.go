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

// Package checker re-derives the key set of a tree independently of the
// tree itself and reports structural defects.
package checker

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cybrota/bstbench/tree"
)

// Status is the outcome of comparing a tree with the expected keys.
type Status int

const (
	NoError          Status = iota
	DataMismatch            // a key differs from the expected one
	InsufficientData        // the tree has fewer keys than expected
	RemainingData           // the tree has more keys than expected
)

func (s Status) String() string {
	switch s {
	case NoError:
		return "The tree is consistent."
	case DataMismatch:
		return "Data mismatch."
	case InsufficientData:
		return "Data missing from tree."
	case RemainingData:
		return "Data remaining in tree."
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Checker shadows a tree with a sorted set of the keys it should hold.
type Checker struct {
	tree *tree.Tree
	keys []int
}

// New creates a checker with an empty expected set.
func New(t *tree.Tree) *Checker {
	return &Checker{tree: t}
}

// Add records key as expected. Duplicates are ignored, as in the tree.
func (c *Checker) Add(key int) {
	i, found := slices.BinarySearch(c.keys, key)
	if !found {
		c.keys = slices.Insert(c.keys, i, key)
	}
}

// Remove forgets key; an absent key is ignored.
func (c *Checker) Remove(key int) {
	if i, found := slices.BinarySearch(c.keys, key); found {
		c.keys = slices.Delete(c.keys, i, i+1)
	}
}

// Expected returns a copy of the expected keys in ascending order.
func (c *Checker) Expected() []int {
	return slices.Clone(c.keys)
}

// Check walks the tree in order and compares it against the expected keys.
func (c *Checker) Check() Status {
	actual := Keys(c.tree.Root())
	n := min(len(actual), len(c.keys))
	for i := 0; i < n; i++ {
		if actual[i] != c.keys[i] {
			return DataMismatch
		}
	}
	switch {
	case len(actual) < len(c.keys):
		return InsufficientData
	case len(actual) > len(c.keys):
		return RemainingData
	}
	return NoError
}

// Keys lists the keys below root in order.
func Keys(root *tree.Node) []int {
	keys := []int{}
	walk(root, func(n *tree.Node) {
		keys = append(keys, n.Key())
	})
	return keys
}

// Count returns the number of nodes below root, root included.
func Count(root *tree.Node) int {
	count := 0
	walk(root, func(*tree.Node) { count++ })
	return count
}

func walk(n *tree.Node, visit func(*tree.Node)) {
	if n == nil {
		return
	}
	walk(n.Left(), visit)
	visit(n)
	walk(n.Right(), visit)
}

// defect errors
var (
	ErrOrder   = errors.New("binary search order violated")
	ErrHeight  = errors.New("stored height is wrong")
	ErrBalance = errors.New("balance factor out of range")
)

// Verify checks binary search order below root and, when balanced is set,
// stored heights and the AVL balance condition. Every defect found is
// returned, joined.
func Verify(root *tree.Node, balanced bool) error {
	v := verifier{balanced: balanced}
	v.visit(root, nil, nil)
	return errors.Join(v.defects...)
}

type verifier struct {
	balanced bool
	defects  []error
}

// visit returns the measured height of n.
func (v *verifier) visit(n *tree.Node, lo, hi *int) int {
	if n == nil {
		return -1
	}
	key := n.Key()
	if (lo != nil && key <= *lo) || (hi != nil && key >= *hi) {
		v.defects = append(v.defects, fmt.Errorf("node %d: %w", key, ErrOrder))
	}

	lh := v.visit(n.Left(), lo, &key)
	rh := v.visit(n.Right(), &key, hi)
	h := 1 + max(lh, rh)

	if v.balanced {
		if n.Height() != h {
			v.defects = append(v.defects, fmt.Errorf("node %d: %w: stored %d, actual %d", key, ErrHeight, n.Height(), h))
		}
		if lh-rh > 1 || rh-lh > 1 {
			v.defects = append(v.defects, fmt.Errorf("node %d: %w: left %d, right %d", key, ErrBalance, lh, rh))
		}
	}
	return h
}

// Verify runs Verify on the checker's tree, balanced when it is an AVL tree.
func (c *Checker) Verify() error {
	return Verify(c.tree.Root(), c.tree.Kind() == tree.AVL)
}
