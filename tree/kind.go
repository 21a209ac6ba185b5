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
	"strings"
)

// Kind selects the balancing behaviour of a tree.
type Kind int

const (
	BST Kind = iota // plain binary search tree
	AVL             // height-balanced
)

func (k Kind) String() string {
	switch k {
	case BST:
		return "BST"
	case AVL:
		return "AVL"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts "bst" or "avl" in any case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bst":
		return BST, nil
	case "avl":
		return AVL, nil
	}
	return BST, fmt.Errorf("unknown tree kind %q (want bst or avl)", s)
}

// Kinds lists every supported kind, unbalanced first.
func Kinds() []Kind {
	return []Kind{BST, AVL}
}
