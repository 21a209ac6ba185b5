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

package tree

import "time"

// balancer restores a tree invariant on the way back up from a mutation.
// It is applied to every node on the return path and returns the node that
// now owns the subtree.
type balancer interface {
	rebalance(n *Node) *Node
}

// unbalanced leaves the shape exactly as insert and delete produced it.
type unbalanced struct{}

func (unbalanced) rebalance(n *Node) *Node { return n }

// Tree is an ordered set of int keys with per-tree instrumentation.
type Tree struct {
	root     *Node
	kind     Kind
	balancer balancer

	probes    Counter
	compares  Counter
	rotations Counter
	elapsed   time.Duration
}

// New creates an empty tree of the given kind. Unknown kinds fall back to
// an unbalanced tree.
func New(kind Kind) *Tree {
	t := &Tree{kind: kind}
	switch kind {
	case AVL:
		t.balancer = heightBalanced{rotations: &t.rotations}
	default:
		t.kind = BST
		t.balancer = unbalanced{}
	}
	return t
}

// NewBST creates an empty unbalanced tree.
func NewBST() *Tree {
	return New(BST)
}

// NewAVL creates an empty height-balanced tree.
func NewAVL() *Tree {
	return New(AVL)
}

// Kind reports how the tree balances itself.
func (t *Tree) Kind() Kind {
	return t.kind
}

// Root returns the root node, or nil for an empty tree. The node must not
// be retained across mutating calls.
func (t *Tree) Root() *Node {
	return t.root
}

// IsEmpty is true if the tree has no root. It is not instrumented.
func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

// Reset zeroes the instrumentation without touching the keys.
func (t *Tree) Reset() {
	t.probes = 0
	t.compares = 0
	t.rotations = 0
	t.elapsed = 0
}

// ProbeCount is the number of nodes visited since the last Reset.
func (t *Tree) ProbeCount() uint64 {
	return t.probes.Uint64()
}

// CompareCount is the number of branch decisions since the last Reset.
func (t *Tree) CompareCount() uint64 {
	return t.compares.Uint64()
}

// ElapsedTime is the time spent in Insert and Contains since the last Reset.
func (t *Tree) ElapsedTime() time.Duration {
	return t.elapsed
}

// Stats returns a snapshot of all counters.
func (t *Tree) Stats() Stats {
	return Stats{
		Probes:    t.probes.Uint64(),
		Compares:  t.compares.Uint64(),
		Rotations: t.rotations.Uint64(),
		Elapsed:   t.elapsed,
	}
}

// track adds the time since start to the elapsed accumulator.
// Use as: defer t.track(time.Now())
func (t *Tree) track(start time.Time) {
	t.elapsed += time.Since(start)
}
