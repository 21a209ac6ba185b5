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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **bstbench %s**

Compare an unbalanced binary search tree with a self-balancing AVL tree under the same workloads.
Every lookup, insertion and removal is instrumented: nodes probed, key comparisons and rotations.

Built with Go %s

# 1. Commands
* **bench**: build both trees for each size, time the insert and search phases and print a table
* **chart**: the same run shown as bar charts of probes per key
* **dismantle**: remove the root of a tree until it is empty, checking the tree after every step
* **explore**: an interactive shell over a single tree
* **config**: show or create ~/.bstbench.yaml

# 2. Examples
* bstbench bench --sizes 1000,10000 --seed 42
* bstbench bench --workload sequential --sizes 1000,5000 --format markdown
* bstbench bench --search miss --metrics-out /var/lib/node_exporter/bstbench.prom
* bstbench dismantle --kind bst --keys 50,30,70,20,40

# 3. Reading the numbers
* A probe is one visit to a node, including the empty slot where a new key lands
* A compare is one three-way branch decision
* Only insertions and lookups are timed

# Please be aware
* Sequential workloads turn the unbalanced tree into a list, large sizes take a long time
* Copy to clipboard in explore on Linux requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}

// exploreHelp is rendered with glamour inside the explorer.
const exploreHelp = `# Explorer commands

| Command | Effect |
|---|---|
| ` + "`insert K...`" + ` | insert one or more keys |
| ` + "`remove K...`" + ` | remove keys, absent keys are ignored |
| ` + "`contains K`" + ` | look a key up |
| ` + "`min`, `max`" + ` | smallest and largest key |
| ` + "`height`" + ` | tree height, -1 when empty |
| ` + "`random N`" + ` | insert N random keys |
| ` + "`kind avl\\|bst`" + ` | rebuild the same keys as another kind |
| ` + "`check`" + ` | verify order, heights and balance |
| ` + "`reset`" + ` | zero the counters |
| ` + "`clear`" + ` | remove every key |
| ` + "`help`" + ` | show this page |

Counters accumulate until ` + "`reset`" + `. Press **ctrl+y** to copy the tree, **esc** to quit.
`
