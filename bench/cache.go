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
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Keep finished rounds for 30 minutes
	resultCacheExpiration = 30 * time.Minute
	// Clean up expired rounds every 5 minutes
	resultCacheCleanup = 5 * time.Minute
)

// ResultCache memoises the results of one size so that identical runs are
// not repeated. A nil cache stores nothing.
type ResultCache struct {
	c *cache.Cache
}

// NewResultCache creates a cache with the default expiry.
func NewResultCache() *ResultCache {
	return &ResultCache{c: cache.New(resultCacheExpiration, resultCacheCleanup)}
}

// Get returns the cached results for key.
func (rc *ResultCache) Get(key string) ([]Result, bool) {
	if rc == nil {
		return nil, false
	}
	val, ok := rc.c.Get(key)
	if !ok {
		return nil, false
	}
	return val.([]Result), true
}

// Set stores results under key, replacing anything already there.
func (rc *ResultCache) Set(key string, results []Result) {
	if rc == nil {
		return
	}
	rc.c.Set(key, results, cache.DefaultExpiration)
}

// Len is the number of rounds currently cached.
func (rc *ResultCache) Len() int {
	if rc == nil {
		return 0
	}
	return rc.c.ItemCount()
}

// roundKey identifies a round by everything that determines its keys.
func roundKey(cfg Config, seed uint64, size int) string {
	return fmt.Sprintf("%s/%s/%d/%d/%d", cfg.Workload, cfg.Search, cfg.MaxKey, seed, size)
}
