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

import (
	"math/rand/v2"
	"testing"
)

type AVLTestCase struct {
	Name          string
	InitialKeys   []int
	KeysToInsert  []int
	KeysToDelete  []int
	ExpectedOrder []int // in-order traversal after operations
	ExpectedRoot  int
}

func TestAVLTreeOperations(t *testing.T) {
	testCases := []AVLTestCase{
		{
			Name:          "Right-right insertion rotates left",
			KeysToInsert:  []int{1, 2, 3},
			ExpectedOrder: []int{1, 2, 3},
			ExpectedRoot:  2,
		},
		{
			Name:          "Left-left insertion rotates right",
			InitialKeys:   []int{3},
			KeysToInsert:  []int{2, 1},
			ExpectedOrder: []int{1, 2, 3},
			ExpectedRoot:  2,
		},
		{
			Name:          "Left-right insertion rotates twice",
			KeysToInsert:  []int{30, 10, 20},
			ExpectedOrder: []int{10, 20, 30},
			ExpectedRoot:  20,
		},
		{
			Name:          "Right-left insertion rotates twice",
			KeysToInsert:  []int{10, 30, 20},
			ExpectedOrder: []int{10, 20, 30},
			ExpectedRoot:  20,
		},
		{
			Name:          "Deletion with balancing",
			InitialKeys:   []int{20, 10, 30, 40},
			KeysToDelete:  []int{10},
			ExpectedOrder: []int{20, 30, 40},
			ExpectedRoot:  30,
		},
		{
			Name:          "Mixed operations",
			InitialKeys:   []int{4, 3},
			KeysToInsert:  []int{5, 2},
			KeysToDelete:  []int{3},
			ExpectedOrder: []int{2, 4, 5},
			ExpectedRoot:  4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := NewAVL()
			for _, key := range tc.InitialKeys {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToInsert {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToDelete {
				tree.Remove(key)
			}
			if got := keysOf(tree); !equalKeys(got, tc.ExpectedOrder) {
				t.Errorf("in-order: expected %v, got %v", tc.ExpectedOrder, got)
			}
			if tree.Root().Key() != tc.ExpectedRoot {
				t.Errorf("root: expected %d, got %d", tc.ExpectedRoot, tree.Root().Key())
			}
			if _, err := checkBalance(tree.Root()); err != nil {
				t.Errorf("balance: %v", err)
			}
		})
	}
}

func TestAVLScenario(t *testing.T) {
	tree := NewAVL()
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.Insert(k)
	}
	if h := tree.Height(); h != 2 {
		t.Errorf("height: expected 2, got %d", h)
	}
	if tree.Root().Key() != 50 {
		t.Errorf("root: expected 50, got %d", tree.Root().Key())
	}
	if r := tree.Stats().Rotations; r != 0 {
		t.Errorf("rotations: expected 0, got %d", r)
	}

	steps := []struct {
		key       int
		rotations uint64
		leftKey   int // key of the root's left child afterwards
	}{
		{10, 0, 30},
		{5, 1, 30}, // 20 is rotated below 10
		{1, 2, 10}, // 30 is rotated below 10
	}
	for _, step := range steps {
		tree.Insert(step.key)
		if _, err := checkBalance(tree.Root()); err != nil {
			t.Fatalf("after inserting %d: %v", step.key, err)
		}
		if r := tree.Stats().Rotations; r != step.rotations {
			t.Errorf("after inserting %d: expected %d rotations, got %d", step.key, step.rotations, r)
		}
		if k := tree.Root().Left().Key(); k != step.leftKey {
			t.Errorf("after inserting %d: expected left child %d, got %d", step.key, step.leftKey, k)
		}
	}

	twenty := tree.Root().Left().Right().Left()
	if twenty.Key() != 20 || twenty.Height() != 0 {
		t.Errorf("expected leaf 20 under 30, got %d (height %d)", twenty.Key(), twenty.Height())
	}
	if tree.Root().Key() != 50 {
		t.Errorf("root moved: %d", tree.Root().Key())
	}
}

// removing from the short side of a minimal AVL tree shrinks several
// levels at once, so more than one ancestor must rotate
func TestAVLRemovalRebalancesEveryAncestor(t *testing.T) {
	tree := NewAVL()
	for _, k := range []int{8, 5, 11, 3, 7, 10, 12, 2, 4, 6, 9, 1} {
		tree.Insert(k)
	}
	if _, err := checkBalance(tree.Root()); err != nil {
		t.Fatalf("setup: %v", err)
	}
	tree.Reset()

	tree.Remove(12)

	if _, err := checkBalance(tree.Root()); err != nil {
		t.Errorf("after removal: %v", err)
	}
	if got, want := keysOf(tree), []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}; !equalKeys(got, want) {
		t.Errorf("in-order: expected %v, got %v", want, got)
	}
	if r := tree.Stats().Rotations; r < 2 {
		t.Errorf("expected rotations at more than one level, got %d", r)
	}
}

func TestAVLRandomOperationsStayBalanced(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	tree := NewAVL()
	present := map[int]bool{}

	for i := 0; i < 5000; i++ {
		k := rng.IntN(500)
		if rng.IntN(3) == 0 {
			tree.Remove(k)
			delete(present, k)
		} else {
			tree.Insert(k)
			present[k] = true
		}
		if _, err := checkBalance(tree.Root()); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if n := countNodes(tree.Root()); n != len(present) {
		t.Errorf("expected %d nodes, got %d", len(present), n)
	}
	if err := checkOrder(tree.Root(), nil, nil); err != nil {
		t.Errorf("order: %v", err)
	}
}

func TestBSTDegeneratesOnSortedInput(t *testing.T) {
	bst := NewBST()
	avl := NewAVL()
	for k := 1; k <= 127; k++ {
		bst.Insert(k)
		avl.Insert(k)
	}
	if h := bst.Height(); h != 126 {
		t.Errorf("BST height: expected 126, got %d", h)
	}
	if h := avl.Height(); h != 6 {
		t.Errorf("AVL height: expected 6, got %d", h)
	}
	if avl.Root().Height() != avl.Height() {
		t.Errorf("stored root height %d differs from measured %d", avl.Root().Height(), avl.Height())
	}
}
