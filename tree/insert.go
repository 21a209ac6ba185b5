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

// Insert adds key to the tree. Inserting a key that is already present
// changes nothing except the counters.
func (t *Tree) Insert(key int) {
	defer t.track(time.Now())
	t.root, _ = t.insert(t.root, key)
}

// insert returns the new owner of the subtree and whether a node was added.
// The absent slot where a new node is attached counts as a probe.
func (t *Tree) insert(n *Node, key int) (*Node, bool) {
	t.probes.Increment()
	if n == nil {
		return newNode(key), true
	}

	added := false
	t.compares.Increment()
	switch {
	case key < n.key:
		n.left, added = t.insert(n.left, key)
	case key > n.key:
		n.right, added = t.insert(n.right, key)
	default:
		return n, false
	}

	if !added {
		return n, false
	}
	return t.balancer.rebalance(n), true
}
