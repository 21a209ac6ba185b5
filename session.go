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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-shellwords"

	"github.com/cybrota/bstbench/bench"
	"github.com/cybrota/bstbench/checker"
	"github.com/cybrota/bstbench/tree"
)

// reply is what a session command has to show.
type reply struct {
	Message string
	Help    bool // Message is the markdown help page
}

// Session interprets explorer commands against one tree and keeps a checker
// in step with every change.
type Session struct {
	tree    *tree.Tree
	checker *checker.Checker
	gen     *bench.Generator
}

// NewSession starts with an empty tree of the given kind. Keys added by
// "random N" fall in [1, maxKey].
func NewSession(kind tree.Kind, seed uint64, maxKey int) *Session {
	t := tree.New(kind)
	return &Session{
		tree:    t,
		checker: checker.New(t),
		gen:     bench.NewGenerator(seed, max(maxKey, 1), bench.WorkloadRandom),
	}
}

// Tree is the tree the session currently works on. It changes on "kind".
func (s *Session) Tree() *tree.Tree {
	return s.tree
}

// Summary is the one line status shown under the tree.
func (s *Session) Summary() string {
	stats := s.tree.Stats()
	return fmt.Sprintf("%s  nodes %s  height %d  probes %s  compares %s  rotations %s  elapsed %s",
		s.tree.Kind(),
		humanize.Comma(int64(checker.Count(s.tree.Root()))),
		nodeHeight(s.tree.Root()),
		humanize.Comma(int64(stats.Probes)),
		humanize.Comma(int64(stats.Compares)),
		humanize.Comma(int64(stats.Rotations)),
		stats.Elapsed,
	)
}

// Execute runs one command line.
func (s *Session) Execute(line string) (reply, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return reply{}, fmt.Errorf("failed to parse %q: %w", line, err)
	}
	if len(args) == 0 {
		return reply{}, nil
	}

	name, args := strings.ToLower(args[0]), args[1:]
	switch name {
	case "insert", "add", "i":
		keys, err := parseKeys(name, args)
		if err != nil {
			return reply{}, err
		}
		for _, k := range keys {
			s.tree.Insert(k)
			s.checker.Add(k)
		}
		return reply{Message: fmt.Sprintf("inserted %s", joinKeys(keys))}, nil

	case "remove", "delete", "rm":
		keys, err := parseKeys(name, args)
		if err != nil {
			return reply{}, err
		}
		for _, k := range keys {
			s.tree.Remove(k)
			s.checker.Remove(k)
		}
		return reply{Message: fmt.Sprintf("removed %s", joinKeys(keys))}, nil

	case "contains", "find":
		if len(args) != 1 {
			return reply{}, fmt.Errorf("%s takes exactly one key", name)
		}
		keys, err := parseKeys(name, args)
		if err != nil {
			return reply{}, err
		}
		if s.tree.Contains(keys[0]) {
			return reply{Message: fmt.Sprintf("%d found", keys[0])}, nil
		}
		return reply{Message: fmt.Sprintf("%d not found", keys[0])}, nil

	case "min", "max":
		find := s.tree.FindMin
		if name == "max" {
			find = s.tree.FindMax
		}
		k, err := find()
		if err != nil {
			return reply{}, fmt.Errorf("%s: %w", name, err)
		}
		return reply{Message: fmt.Sprintf("%s %d", name, k)}, nil

	case "height":
		return reply{Message: fmt.Sprintf("height %d", s.tree.Height())}, nil

	case "random":
		if len(args) != 1 {
			return reply{}, fmt.Errorf("random takes a key count")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return reply{}, fmt.Errorf("random: %q is not a positive count", args[0])
		}
		for _, k := range s.gen.InsertKeys(n) {
			s.tree.Insert(k)
			s.checker.Add(k)
		}
		return reply{Message: fmt.Sprintf("inserted %d random keys", n)}, nil

	case "kind":
		if len(args) != 1 {
			return reply{}, fmt.Errorf("kind takes avl or bst")
		}
		kind, err := tree.ParseKind(args[0])
		if err != nil {
			return reply{}, err
		}
		s.rebuild(kind)
		return reply{Message: fmt.Sprintf("rebuilt as %s", kind)}, nil

	case "check":
		if status := s.checker.Check(); status != checker.NoError {
			return reply{}, errors.New(status.String())
		}
		if err := s.checker.Verify(); err != nil {
			return reply{}, err
		}
		return reply{Message: checker.NoError.String()}, nil

	case "reset":
		s.tree.Reset()
		return reply{Message: "counters reset"}, nil

	case "clear":
		s.tree.Clear()
		s.checker = checker.New(s.tree)
		return reply{Message: "tree cleared"}, nil

	case "help", "?":
		return reply{Message: exploreHelp, Help: true}, nil
	}
	return reply{}, fmt.Errorf("unknown command %q, type help for a list", name)
}

// rebuild moves the keys into a new tree of another kind. Keys are inserted
// in pre-order, so an unbalanced rebuild keeps the old shape.
func (s *Session) rebuild(kind tree.Kind) {
	t := tree.New(kind)
	c := checker.New(t)
	var visit func(n *tree.Node)
	visit = func(n *tree.Node) {
		if n == nil {
			return
		}
		t.Insert(n.Key())
		c.Add(n.Key())
		visit(n.Left())
		visit(n.Right())
	}
	visit(s.tree.Root())
	t.Reset()

	s.tree.Clear()
	s.tree, s.checker = t, c
}

// nodeHeight measures without touching the tree's counters. Stored heights
// are only kept by AVL trees.
func nodeHeight(n *tree.Node) int {
	if n == nil {
		return -1
	}
	return 1 + max(nodeHeight(n.Left()), nodeHeight(n.Right()))
}

func parseKeys(cmd string, args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%s needs at least one key", cmd)
	}
	keys := make([]int, 0, len(args))
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a key", cmd, a)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func joinKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " ")
}
