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
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "bstbench"

var resultLabels = []string{"kind", "phase", "size"}

// WriteMetrics stores results as Prometheus gauges in the text exposition
// format, ready for a node exporter textfile collector.
func WriteMetrics(path string, results []Result) error {
	reg := prometheus.NewRegistry()

	gauge := func(name, help string) *prometheus.GaugeVec {
		g := prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      name,
			Help:      help,
		}, resultLabels)
		reg.MustRegister(g)
		return g
	}

	probes := gauge("probes", "Nodes visited during the phase.")
	compares := gauge("compares", "Key comparisons made during the phase.")
	rotations := gauge("rotations", "Rotations performed during the phase.")
	elapsed := gauge("elapsed_seconds", "Time spent in insert and contains calls.")
	height := gauge("height", "Tree height after the insert phase.")

	for _, r := range results {
		labels := prometheus.Labels{
			"kind":  r.Kind.String(),
			"phase": string(r.Phase),
			"size":  strconv.Itoa(r.Size),
		}
		probes.With(labels).Set(float64(r.Probes))
		compares.With(labels).Set(float64(r.Compares))
		rotations.With(labels).Set(float64(r.Rotations))
		elapsed.With(labels).Set(r.Elapsed.Seconds())
		height.With(labels).Set(float64(r.Height))
	}

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
