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

package checker

import (
	"errors"
	"slices"
	"testing"

	"github.com/cybrota/bstbench/tree"
)

func build(kind tree.Kind, keys ...int) (*tree.Tree, *Checker) {
	t := tree.New(kind)
	c := New(t)
	for _, k := range keys {
		t.Insert(k)
		c.Add(k)
	}
	return t, c
}

func TestCheckStatuses(t *testing.T) {
	testCases := []struct {
		Name     string
		Tree     []int
		Expected []int
		Status   Status
	}{
		{"Consistent", []int{2, 1, 3}, []int{1, 2, 3}, NoError},
		{"Both empty", nil, nil, NoError},
		{"Missing key", []int{1, 2}, []int{1, 2, 3}, InsufficientData},
		{"Extra key", []int{1, 2, 3, 4}, []int{1, 2, 3}, RemainingData},
		{"Different key", []int{1, 2, 4}, []int{1, 2, 3}, DataMismatch},
		{"Different and shorter", []int{1, 5}, []int{1, 2, 3}, DataMismatch},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tr := tree.NewAVL()
			for _, k := range tc.Tree {
				tr.Insert(k)
			}
			c := New(tr)
			for _, k := range tc.Expected {
				c.Add(k)
			}
			if got := c.Check(); got != tc.Status {
				t.Errorf("Check: expected %v, got %v", tc.Status, got)
			}
		})
	}
}

func TestAddRemoveKeepsSortedUniqueKeys(t *testing.T) {
	c := New(tree.NewBST())
	for _, k := range []int{5, 1, 9, 5, 3, 1} {
		c.Add(k)
	}
	c.Remove(9)
	c.Remove(42)
	if got, want := c.Expected(), []int{1, 3, 5}; !slices.Equal(got, want) {
		t.Errorf("Expected: expected %v, got %v", want, got)
	}
}

// remove the root until the tree is empty, checking after every step
func TestDismantleByRoot(t *testing.T) {
	for _, kind := range tree.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			tr, c := build(kind, 62, 18, 97, 3, 44, 71, 25, 88, 50, 9, 33, 80, 66)
			for !tr.IsEmpty() {
				key := tr.Root().Key()
				tr.Remove(key)
				c.Remove(key)
				if status := c.Check(); status != NoError {
					t.Fatalf("after removing root %d: %v", key, status)
				}
				if err := c.Verify(); err != nil {
					t.Fatalf("after removing root %d: %v", key, err)
				}
			}
			if len(c.Expected()) != 0 {
				t.Errorf("checker still expects %v", c.Expected())
			}
		})
	}
}

func TestVerifyDetectsUnbalancedShape(t *testing.T) {
	// an unbalanced tree neither stores heights nor keeps balance
	tr, _ := build(tree.BST, 1, 2, 3)

	if err := Verify(tr.Root(), false); err != nil {
		t.Errorf("order-only verification failed: %v", err)
	}

	err := Verify(tr.Root(), true)
	if !errors.Is(err, ErrBalance) {
		t.Errorf("expected %v, got %v", ErrBalance, err)
	}
	if !errors.Is(err, ErrHeight) {
		t.Errorf("expected %v, got %v", ErrHeight, err)
	}
	if errors.Is(err, ErrOrder) {
		t.Errorf("unexpected order defect: %v", err)
	}
}

func TestKeysAndCount(t *testing.T) {
	tr, _ := build(tree.AVL, 4, 2, 6, 1, 3, 5, 7)
	if got, want := Keys(tr.Root()), []int{1, 2, 3, 4, 5, 6, 7}; !slices.Equal(got, want) {
		t.Errorf("Keys: expected %v, got %v", want, got)
	}
	if n := Count(tr.Root()); n != 7 {
		t.Errorf("Count: expected 7, got %d", n)
	}
	if n := Count(nil); n != 0 {
		t.Errorf("Count(nil): expected 0, got %d", n)
	}
}
