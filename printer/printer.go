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

// Package printer draws a tree sideways: the right subtree above a node,
// the left subtree below it.
package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/bstbench/tree"
)

// to control the connector drawn in front of a node
type branch int

const (
	root branch = iota
	left
	right
)

// Printer renders trees to a writer.
type Printer struct {
	w        io.Writer
	heights  bool
	keyStyle *lipgloss.Style
}

// Option configures a Printer.
type Option func(*Printer)

// WithHeights appends the stored height of every node.
func WithHeights(on bool) Option {
	return func(p *Printer) { p.heights = on }
}

// WithKeyStyle renders keys with the given style.
func WithKeyStyle(style lipgloss.Style) Option {
	return func(p *Printer) { p.keyStyle = &style }
}

// New creates a printer writing to w.
func New(w io.Writer, opts ...Option) *Printer {
	p := &Printer{w: w}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print renders the tree below top and returns its depth, the number of
// levels drawn. An empty tree prints nothing and has depth 0.
func (p *Printer) Print(top *tree.Node) int {
	return p.print(top, "", root)
}

func (p *Printer) print(n *tree.Node, prefix string, br branch) int {
	if n == nil {
		return 0
	}

	rd := 0
	if n.Right() != nil {
		t := "       "
		if br == left {
			t = "|      "
		}
		rd = p.print(n.Right(), prefix+t, right)
	}

	switch br {
	case root:
		fmt.Fprintf(p.w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(p.w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(p.w, "%s/------+ ", prefix)
	}
	fmt.Fprintln(p.w, p.label(n))

	ld := 0
	if n.Left() != nil {
		t := "       "
		if br == right {
			t = "|      "
		}
		ld = p.print(n.Left(), prefix+t, left)
	}

	return 1 + max(rd, ld)
}

func (p *Printer) label(n *tree.Node) string {
	key := strconv.Itoa(n.Key())
	if p.keyStyle != nil {
		key = p.keyStyle.Render(key)
	}
	if p.heights {
		return fmt.Sprintf("%s [%d]", key, n.Height())
	}
	return key
}

// Sprint renders the tree below top into a string.
func Sprint(top *tree.Node, opts ...Option) string {
	var sb strings.Builder
	New(&sb, opts...).Print(top)
	return sb.String()
}
