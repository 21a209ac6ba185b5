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
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"

	"github.com/cybrota/bstbench/bench"
	"github.com/cybrota/bstbench/tree"
)

// order the s key steps through lookup modes
var searchCycle = []bench.SearchMode{bench.SearchRandom, bench.SearchHit, bench.SearchMiss}

// chartRuns reruns the comparison under other lookup modes. All runs share
// one seed and one result cache, so coming back to a mode is served from
// the cache instead of rebuilding the trees.
type chartRuns struct {
	cfg   bench.Config
	cache *bench.ResultCache
}

func newChartRuns(cfg bench.Config, rc *bench.ResultCache) *chartRuns {
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return &chartRuns{cfg: cfg, cache: rc}
}

func (c *chartRuns) run(ctx context.Context) ([]bench.Result, error) {
	return bench.NewRunner(c.cfg, c.cache).Run(ctx)
}

// nextSearch switches to the following lookup mode the settings allow and
// reruns. Miss lookups are skipped when the key range is too small.
func (c *chartRuns) nextSearch(ctx context.Context) ([]bench.Result, error) {
	i := slices.Index(searchCycle, c.cfg.Search)
	for range searchCycle {
		i = (i + 1) % len(searchCycle)
		next := c.cfg
		next.Search = searchCycle[i]
		if next.Validate() == nil {
			c.cfg = next
			break
		}
	}
	return c.run(ctx)
}

// probeSeries lists one bar per size and kind for a phase, valued as the
// average number of probes per key.
func probeSeries(results []bench.Result, phase bench.Phase) (labels []string, data []float64, kinds []tree.Kind) {
	for _, r := range results {
		if r.Phase != phase || r.Size == 0 {
			continue
		}
		labels = append(labels, fmt.Sprintf("%s %s", sizeLabel(r.Size), r.Kind))
		data = append(data, float64(r.Probes)/float64(r.Size))
		kinds = append(kinds, r.Kind)
	}
	return labels, data, kinds
}

// sizeLabel keeps bar labels short: 20000 becomes 20k.
func sizeLabel(n int) string {
	if n >= 1000 && n%1000 == 0 {
		return strconv.Itoa(n/1000) + "k"
	}
	return strconv.Itoa(n)
}

func newProbeChart(title string) *widgets.BarChart {
	bc := widgets.NewBarChart()
	bc.Title = title
	bc.BarWidth = 9
	bc.BarGap = 1
	bc.LabelStyles = []ui.Style{chartTextStyle()}
	bc.NumStyles = []ui.Style{ui.NewStyle(ui.ColorBlack)}
	bc.NumFormatter = func(v float64) string {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return bc
}

func fillProbeChart(bc *widgets.BarChart, results []bench.Result, phase bench.Phase) {
	labels, data, kinds := probeSeries(results, phase)
	bc.Labels = labels
	bc.Data = data
	bc.BarColors = make([]ui.Color, len(kinds))
	for i, k := range kinds {
		bc.BarColors[i] = kindColor(k == tree.BST)
	}
}

func chartLegend(cfg bench.Config, failure error) string {
	text := fmt.Sprintf("Seed %d, %s keys, %s lookups. Lower is better, the unbalanced tree is drawn first for every size.\n"+
		"Press s to switch lookup mode, q to quit.", cfg.Seed, cfg.Workload, cfg.Search)
	if failure != nil {
		text = fmt.Sprintf("%s\nRerun failed: %v", text, failure)
	}
	return text
}

// runChart draws the probes per key of both phases until q is pressed.
func runChart(ctx context.Context, runs *chartRuns, results []bench.Result) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	defer ui.Close()
	// keep mouse events out of the event stream
	tb.SetInputMode(tb.InputEsc)

	insertChart := newProbeChart(" Insert: probes per key ")
	searchChart := newProbeChart(" Search: probes per key ")
	legend := widgets.NewParagraph()
	legend.Title = " Legend "

	redraw := func(failure error) {
		fillProbeChart(insertChart, results, bench.PhaseInsert)
		fillProbeChart(searchChart, results, bench.PhaseSearch)
		legend.Text = chartLegend(runs.cfg, failure)
	}
	redraw(nil)

	grid := ui.NewGrid()
	termWidth, termHeight := ui.TerminalDimensions()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(
		ui.NewRow(0.42, insertChart),
		ui.NewRow(0.42, searchChart),
		ui.NewRow(0.16, legend),
	)
	ui.Render(grid)

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "s":
			legend.Text = "Running the next lookup mode..."
			ui.Render(legend)
			next, err := runs.nextSearch(ctx)
			if err == nil {
				results = next
			}
			redraw(err)
			ui.Clear()
			ui.Render(grid)
		case "<Resize>":
			payload := e.Payload.(ui.Resize)
			grid.SetRect(0, 0, payload.Width, payload.Height)
			ui.Clear()
			ui.Render(grid)
		}
	}
	return nil
}
