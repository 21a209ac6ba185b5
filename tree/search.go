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

// Contains reports whether key is in the tree.
func (t *Tree) Contains(key int) bool {
	defer t.track(time.Now())

	n := t.root
	for n != nil {
		t.probes.Increment()
		t.compares.Increment()
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// FindMin returns the smallest key, or ErrEmptyTree.
func (t *Tree) FindMin() (int, error) {
	if t.IsEmpty() {
		return 0, ErrEmptyTree
	}
	return minNode(t.root).key, nil
}

// FindMax returns the largest key, or ErrEmptyTree.
func (t *Tree) FindMax() (int, error) {
	if t.IsEmpty() {
		return 0, ErrEmptyTree
	}
	return maxNode(t.root).key, nil
}
