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
	"fmt"
	"time"
)

// Counter counts events. A tree has a single writer, so no atomics.
type Counter uint64

// Increment adds 1 to the counter.
func (c *Counter) Increment() {
	*c++
}

// Uint64 returns the current value.
func (c *Counter) Uint64() uint64 {
	return uint64(*c)
}

// IsZero reports whether nothing has been counted since the last reset.
func (c *Counter) IsZero() bool {
	return *c == 0
}

// Stats is a snapshot of a tree's instrumentation.
type Stats struct {
	Probes    uint64        // nodes visited, absent slots included where noted
	Compares  uint64        // three-way branch decisions
	Rotations uint64        // single rotations performed by the balancer
	Elapsed   time.Duration // time spent in Insert and Contains
}

func (s Stats) String() string {
	return fmt.Sprintf("probes=%d compares=%d rotations=%d elapsed=%s",
		s.Probes, s.Compares, s.Rotations, s.Elapsed)
}

// IsZero reports whether every counter is zero.
func (s Stats) IsZero() bool {
	return s == Stats{}
}
