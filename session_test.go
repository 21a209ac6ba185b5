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

package main

import (
	"strings"
	"testing"

	"github.com/cybrota/bstbench/checker"
	"github.com/cybrota/bstbench/tree"
)

func keysOf(s *Session) []int {
	return checker.Keys(s.Tree().Root())
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSessionCommands(t *testing.T) {
	s := NewSession(tree.AVL, 1, 100)

	testCases := []struct {
		Line     string
		Message  string
		WantKeys []int
	}{
		{"insert 50 30 70", "inserted 50 30 70", []int{30, 50, 70}},
		{`insert "20"`, "inserted 20", []int{20, 30, 50, 70}},
		{"contains 30", "30 found", []int{20, 30, 50, 70}},
		{"contains 99", "99 not found", []int{20, 30, 50, 70}},
		{"min", "min 20", []int{20, 30, 50, 70}},
		{"max", "max 70", []int{20, 30, 50, 70}},
		{"remove 30 99", "removed 30 99", []int{20, 50, 70}},
		{"height", "height 1", []int{20, 50, 70}},
		{"check", checker.NoError.String(), []int{20, 50, 70}},
		{"", "", []int{20, 50, 70}},
		{"clear", "tree cleared", nil},
	}

	for _, tc := range testCases {
		r, err := s.Execute(tc.Line)
		if err != nil {
			t.Fatalf("Execute(%q) failed: %v", tc.Line, err)
		}
		if r.Message != tc.Message {
			t.Errorf("Execute(%q) = %q; want %q", tc.Line, r.Message, tc.Message)
		}
		if got := keysOf(s); !equalInts(got, tc.WantKeys) {
			t.Errorf("after %q keys are %v; want %v", tc.Line, got, tc.WantKeys)
		}
	}
}

func TestSessionErrors(t *testing.T) {
	s := NewSession(tree.BST, 1, 100)

	for _, line := range []string{
		"insert",
		"insert five",
		"remove",
		"contains",
		"contains 1 2",
		"random",
		"random -3",
		"kind",
		"kind redblack",
		"rotate 5",
		`insert "5`,
	} {
		if _, err := s.Execute(line); err == nil {
			t.Errorf("Execute(%q) succeeded; want an error", line)
		}
	}

	_, err := s.Execute("min")
	if !tree.IsErrEmptyTree(err) {
		t.Errorf("min on an empty tree: got %v; want the empty tree error", err)
	}
	_, err = s.Execute("max")
	if !tree.IsErrEmptyTree(err) {
		t.Errorf("max on an empty tree: got %v; want the empty tree error", err)
	}
}

func TestSessionRandomAndCheck(t *testing.T) {
	s := NewSession(tree.AVL, 7, 1000)
	if _, err := s.Execute("random 200"); err != nil {
		t.Fatalf("random failed: %v", err)
	}
	n := checker.Count(s.Tree().Root())
	if n == 0 || n > 200 {
		t.Errorf("random 200 left %d nodes", n)
	}
	if _, err := s.Execute("check"); err != nil {
		t.Errorf("check failed after random inserts: %v", err)
	}
}

func TestSessionKindKeepsShape(t *testing.T) {
	s := NewSession(tree.AVL, 1, 100)
	if _, err := s.Execute("insert 1 2 3 4 5 6 7"); err != nil {
		t.Fatal(err)
	}

	r, err := s.Execute("kind bst")
	if err != nil {
		t.Fatal(err)
	}
	if r.Message != "rebuilt as BST" {
		t.Errorf("unexpected message %q", r.Message)
	}
	if s.Tree().Kind() != tree.BST {
		t.Fatalf("kind is %s; want BST", s.Tree().Kind())
	}
	// pre-order reinsertion reproduces the balanced shape
	if s.Tree().Root().Key() != 4 || nodeHeight(s.Tree().Root()) != 2 {
		t.Errorf("rebuilt tree has root %d and height %d; want 4 and 2",
			s.Tree().Root().Key(), nodeHeight(s.Tree().Root()))
	}
	if !s.Tree().Stats().IsZero() {
		t.Errorf("rebuilt tree starts with counters %v", s.Tree().Stats())
	}
	if _, err := s.Execute("check"); err != nil {
		t.Errorf("check failed after rebuild: %v", err)
	}
}

func TestSessionResetAndHelp(t *testing.T) {
	s := NewSession(tree.AVL, 1, 100)
	s.Execute("insert 3 2 1")
	if s.Tree().Stats().Rotations != 1 {
		t.Errorf("rotations = %d; want 1", s.Tree().Stats().Rotations)
	}

	if _, err := s.Execute("reset"); err != nil {
		t.Fatal(err)
	}
	if !s.Tree().Stats().IsZero() {
		t.Errorf("reset left counters %v", s.Tree().Stats())
	}

	r, err := s.Execute("HELP")
	if err != nil {
		t.Fatal(err)
	}
	if !r.Help || !strings.Contains(r.Message, "Explorer commands") {
		t.Errorf("help returned %+v", r)
	}
}

func TestSessionSummary(t *testing.T) {
	s := NewSession(tree.AVL, 1, 100)
	s.Execute("insert 10 20 30")
	before := s.Tree().Stats()

	summary := s.Summary()
	for _, want := range []string{"AVL", "nodes 3", "height 1", "rotations 1"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary %q does not contain %q", summary, want)
		}
	}
	if s.Tree().Stats() != before {
		t.Errorf("Summary changed the counters")
	}
}
