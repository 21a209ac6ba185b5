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

// Node is a single vertex of a tree. Nodes returned by Tree.Root are
// read-only borrows, valid until the next mutating call on the tree.
type Node struct {
	key    int
	height int // maintained by AVL trees only, a leaf is 0
	left   *Node
	right  *Node
}

func newNode(key int) *Node {
	return &Node{key: key}
}

// Key returns the key held by the node.
func (n *Node) Key() int {
	return n.key
}

// Left returns the left child or nil.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child or nil.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.right
}

// Height returns the stored height of the subtree rooted at n, or -1 for an
// absent subtree. Only AVL trees keep this value up to date; use Tree.Height
// to measure an unbalanced tree.
func (n *Node) Height() int {
	if n == nil {
		return -1
	}
	return n.height
}

// minNode walks left to the smallest key of a non-empty subtree.
func minNode(n *Node) *Node {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode(n *Node) *Node {
	for n.right != nil {
		n = n.right
	}
	return n
}
