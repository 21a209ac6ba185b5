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

// Height measures the tree by walking every node; an empty tree is -1.
// Each call, including those on absent children, counts as a probe.
func (t *Tree) Height() int {
	return t.height(t.root)
}

func (t *Tree) height(n *Node) int {
	t.probes.Increment()
	if n == nil {
		return -1
	}
	return 1 + max(t.height(n.left), t.height(n.right))
}

// Clear drops every node, children before parents. Counters are kept.
func (t *Tree) Clear() {
	t.clear(t.root)
	t.root = nil
}

func (t *Tree) clear(n *Node) {
	t.probes.Increment()
	if n == nil {
		return
	}
	t.clear(n.left)
	t.clear(n.right)
	n.left, n.right = nil, nil
}
