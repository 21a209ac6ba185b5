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

// Remove deletes key from the tree; an absent key is ignored. A node with
// two children takes over the key of its in-order successor, which is then
// removed from the right subtree instead. Remove is counted but not timed.
func (t *Tree) Remove(key int) {
	t.root = t.remove(t.root, key)
}

func (t *Tree) remove(n *Node, key int) *Node {
	t.probes.Increment()
	if n == nil {
		return nil
	}

	switch {
	case key < n.key:
		t.compares.Increment()
		n.left = t.remove(n.left, key)
	case key > n.key:
		t.compares.Increment()
		n.right = t.remove(n.right, key)
	case n.left != nil && n.right != nil:
		t.compares.Increment()
		n.key = minNode(n.right).key
		n.right = t.remove(n.right, n.key)
	default:
		// unlink, the sole child (if any) takes the slot
		t.probes.Increment()
		child := n.left
		if child == nil {
			child = n.right
		}
		n.left, n.right = nil, nil
		return child
	}

	// every ancestor on the path is re-checked, not only the parent of the
	// unlinked node
	return t.balancer.rebalance(n)
}
