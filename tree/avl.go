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

// heightBalanced keeps |height(left) - height(right)| <= 1 at every node.
type heightBalanced struct {
	rotations *Counter
}

func updateHeight(n *Node) {
	n.height = 1 + max(n.left.Height(), n.right.Height())
}

func balanceFactor(n *Node) int {
	return n.left.Height() - n.right.Height()
}

func (b heightBalanced) rotateLeft(n *Node) *Node {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	updateHeight(n)
	updateHeight(pivot)
	b.rotations.Increment()
	return pivot
}

func (b heightBalanced) rotateRight(n *Node) *Node {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	updateHeight(n)
	updateHeight(pivot)
	b.rotations.Increment()
	return pivot
}

// rebalance recomputes the height of n and rotates if n has become
// unbalanced. A child leaning the same way, or not at all, needs a single
// rotation; a child leaning the other way needs a double one.
func (b heightBalanced) rebalance(n *Node) *Node {
	updateHeight(n)

	switch bf := balanceFactor(n); {
	case bf > 1:
		if balanceFactor(n.left) < 0 {
			n.left = b.rotateLeft(n.left)
		}
		return b.rotateRight(n)
	case bf < -1:
		if balanceFactor(n.right) > 0 {
			n.right = b.rotateRight(n.right)
		}
		return b.rotateLeft(n)
	}
	return n
}
