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

// Package tree implements an ordered set of int keys backed by a binary
// search tree, in an unbalanced and a height-balanced (AVL) flavour.
//
// Every tree carries its own instrumentation: the number of nodes probed,
// the number of key comparisons made and the wall-clock time spent inside
// Insert and Contains. The counters only move forward until Reset is called,
// which makes it possible to measure one batch of operations at a time.
//
// A tree is not safe for concurrent use.
package tree
