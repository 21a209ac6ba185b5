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
	"encoding/binary"
	"math/rand/v2"

	"github.com/willf/bloom"
)

// false positive rate of the filter used to pick missing keys
const missFilterRate = 0.01

// draws trusted to the filter before falling back to the exact key set
const missFilterDraws = 32

// Generator produces workload keys from an explicit seed, so a run can be
// repeated exactly.
type Generator struct {
	rng      *rand.Rand
	maxKey   int
	workload Workload
}

// NewGenerator creates a generator. Random keys fall in [1, maxKey].
func NewGenerator(seed uint64, maxKey int, workload Workload) *Generator {
	return &Generator{
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		maxKey:   maxKey,
		workload: workload,
	}
}

func (g *Generator) randomKey() int {
	return 1 + g.rng.IntN(g.maxKey)
}

// InsertKeys returns n keys to insert. Random workloads may repeat a key.
func (g *Generator) InsertKeys(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		if g.workload == WorkloadSequential {
			keys[i] = i + 1
		} else {
			keys[i] = g.randomKey()
		}
	}
	return keys
}

// SearchKeys returns n keys to look up in a tree built from inserted.
func (g *Generator) SearchKeys(mode SearchMode, inserted []int, n int) []int {
	keys := make([]int, n)
	switch mode {
	case SearchHit:
		for i := range keys {
			keys[i] = inserted[g.rng.IntN(len(inserted))]
		}
	case SearchMiss:
		filter := bloom.NewWithEstimates(uint(max(len(inserted), 1)), missFilterRate)
		present := make(map[int]struct{}, len(inserted))
		for _, k := range inserted {
			filter.Add(keyBytes(k))
			present[k] = struct{}{}
		}
		for i := range keys {
			keys[i] = g.missingKey(filter, present)
		}
	default:
		for i := range keys {
			keys[i] = g.randomKey()
		}
	}
	return keys
}

// missingKey draws until the filter is certain the key was never inserted.
// The filter only errs towards "maybe present", so a key it rejects may still
// be a miss. After missFilterDraws rejections the exact set decides instead,
// which keeps the draw finite when every missing key is a false positive.
func (g *Generator) missingKey(filter *bloom.BloomFilter, present map[int]struct{}) int {
	for i := 0; ; i++ {
		k := g.randomKey()
		if i < missFilterDraws {
			if !filter.Test(keyBytes(k)) {
				return k
			}
			continue
		}
		if _, ok := present[k]; !ok {
			return k
		}
	}
}

func keyBytes(k int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(k))
	return b
}
