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

import "errors"

// EmptyTreeError is returned by operations that need at least one node.
type EmptyTreeError string

func (e EmptyTreeError) Error() string { return string(e) }

// ErrEmptyTree is returned by FindMin and FindMax on a tree without a root.
var ErrEmptyTree = EmptyTreeError("empty tree")

// IsErrEmptyTree reports whether err is, or wraps, an EmptyTreeError.
func IsErrEmptyTree(err error) bool {
	var e EmptyTreeError
	return errors.As(err, &e)
}
