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

package bench

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/cybrota/bstbench/tree"
)

// Format selects how a report is rendered.
type Format string

const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
)

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatMarkdown, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("unknown report format %q (want table, markdown or csv)", s)
}

// Report writes one row per tree and phase, grouped by size.
func Report(w io.Writer, results []Result, format Format) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})

	tbl.AppendHeader(table.Row{"N", "OPERATION", "PROBE COUNT", "COMPARE COUNT", "ROTATIONS", "HEIGHT", "ELAPSED TIME"})

	prevSize := -1
	for _, r := range results {
		if prevSize != -1 && r.Size != prevSize && format == FormatTable {
			tbl.AppendSeparator()
		}
		prevSize = r.Size

		tbl.AppendRow(table.Row{
			humanize.Comma(int64(r.Size)),
			fmt.Sprintf("%s %s", r.Kind, r.Phase),
			humanize.Comma(int64(r.Probes)),
			humanize.Comma(int64(r.Compares)),
			humanize.Comma(int64(r.Rotations)),
			r.Height,
			formatElapsed(r.Elapsed),
		})
	}

	if len(results) > 0 {
		tbl.AppendFooter(table.Row{"", fmt.Sprintf("seed %d", results[0].Seed)})
	}

	switch format {
	case FormatMarkdown:
		tbl.RenderMarkdown()
	case FormatCSV:
		tbl.RenderCSV()
	default:
		tbl.Render()
	}
}

// elapsed times are always shown in milliseconds
func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
}

// Speedup is the ratio of unbalanced to AVL probes for each size and phase.
type Speedup struct {
	Size  int
	Phase Phase
	Ratio float64
}

// Speedups pairs the BST and AVL results of every size and phase.
func Speedups(results []Result) []Speedup {
	type roundPhase struct {
		size  int
		phase Phase
	}
	bst := map[roundPhase]Result{}
	var order []roundPhase
	for _, r := range results {
		if r.Kind == tree.BST {
			rp := roundPhase{r.Size, r.Phase}
			bst[rp] = r
			order = append(order, rp)
		}
	}

	speedups := make([]Speedup, 0, len(order))
	for _, rp := range order {
		for _, r := range results {
			if r.Kind != tree.AVL || r.Size != rp.size || r.Phase != rp.phase || r.Probes == 0 {
				continue
			}
			speedups = append(speedups, Speedup{
				Size:  rp.size,
				Phase: rp.phase,
				Ratio: float64(bst[rp].Probes) / float64(r.Probes),
			})
		}
	}
	return speedups
}
