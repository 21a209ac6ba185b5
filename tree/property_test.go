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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type treeOp struct {
	Insert bool
	Key    int
}

var treeOpGenerator = rapid.Custom(func(t *rapid.T) treeOp {
	return treeOp{
		Insert: rapid.Float64Range(0, 1).Draw(t, "p") < 0.65,
		Key:    rapid.IntRange(-64, 64).Draw(t, "key"),
	}
})

func TestTreeProperties(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			rapid.Check(t, func(t *rapid.T) {
				require := require.New(t)
				tree := New(kind)
				present := map[int]bool{}

				ops := rapid.SliceOfN(treeOpGenerator, 0, 200).Draw(t, "ops")
				for _, op := range ops {
					before := countNodes(tree.Root())
					if op.Insert {
						tree.Insert(op.Key)
						require.True(tree.Contains(op.Key), "inserted %d not found", op.Key)
						if !present[op.Key] {
							before++
						}
						present[op.Key] = true
					} else {
						tree.Remove(op.Key)
						require.False(tree.Contains(op.Key), "removed %d still found", op.Key)
						if present[op.Key] {
							before--
						}
						delete(present, op.Key)
					}

					require.Equal(before, countNodes(tree.Root()))
					require.NoError(checkOrder(tree.Root(), nil, nil))
					if kind == AVL {
						_, err := checkBalance(tree.Root())
						require.NoError(err)
					}
				}

				keys := make([]int, 0, len(present))
				for k := range present {
					keys = append(keys, k)
				}
				assert.ElementsMatch(t, keys, keysOf(tree))
				assert.Equal(t, len(keys) == 0, tree.IsEmpty())
			})
		})
	}
}

func TestResetProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tree := New(rapid.SampledFrom(Kinds()).Draw(t, "kind"))
		keys := rapid.SliceOf(rapid.Int()).Draw(t, "keys")
		for _, k := range keys {
			tree.Insert(k)
			tree.Contains(k)
		}
		size := countNodes(tree.Root())

		tree.Reset()

		assert.True(t, tree.Stats().IsZero())
		assert.Equal(t, size, countNodes(tree.Root()))
	})
}
