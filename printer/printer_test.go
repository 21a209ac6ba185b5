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

package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cybrota/bstbench/tree"
)

func TestPrintSmallTree(t *testing.T) {
	tr := tree.NewAVL()
	for _, k := range []int{1, 2, 3} {
		tr.Insert(k)
	}

	var buf bytes.Buffer
	depth := New(&buf).Print(tr.Root())

	expected := "" +
		"       /------+ 3\n" +
		"|------+ 2\n" +
		"       \\------+ 1\n"
	if buf.String() != expected {
		t.Errorf("Print: expected\n%s\ngot\n%s", expected, buf.String())
	}
	if depth != tr.Height()+1 {
		t.Errorf("depth: expected %d, got %d", tr.Height()+1, depth)
	}
}

func TestPrintConnectors(t *testing.T) {
	tr := tree.NewBST()
	for _, k := range []int{4, 2, 6, 3, 5} {
		tr.Insert(k)
	}

	expected := "" +
		"       /------+ 6\n" +
		"       |      \\------+ 5\n" +
		"|------+ 4\n" +
		"       |      /------+ 3\n" +
		"       \\------+ 2\n"
	if got := Sprint(tr.Root()); got != expected {
		t.Errorf("Sprint: expected\n%s\ngot\n%s", expected, got)
	}
}

func TestPrintHeights(t *testing.T) {
	tr := tree.NewAVL()
	for _, k := range []int{10, 5, 15, 1} {
		tr.Insert(k)
	}
	out := Sprint(tr.Root(), WithHeights(true))
	for _, want := range []string{"10 [2]", "5 [1]", "15 [0]", "1 [0]"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in\n%s", want, out)
		}
	}
}

func TestPrintEmpty(t *testing.T) {
	var buf bytes.Buffer
	if depth := New(&buf).Print(nil); depth != 0 {
		t.Errorf("depth: expected 0, got %d", depth)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
