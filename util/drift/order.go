/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package drift

import (
	"cmp"
	"strings"
)

// Ranks order canonical values of different kinds.
const (
	rankNull = iota
	rankBool
	rankString
	rankSequence
	rankMapping
	rankUnknown
)

func rank(c Canonical) int {
	switch c.(type) {
	case nil:
		return rankNull
	case bool:
		return rankBool
	case string:
		return rankString
	case Sequence:
		return rankSequence
	case Mapping:
		return rankMapping
	default:
		return rankUnknown
	}
}

// Compare is a total order over canonical forms. Values of different kinds
// order as null < bool < string < Sequence < Mapping. Sequences and mappings
// compare element by element, a shorter prefix first; mapping entries compare
// by key, then by value.
func Compare(a, b Canonical) int {
	if c := cmp.Compare(rank(a), rank(b)); c != 0 {
		return c
	}

	switch at := a.(type) {
	case bool:
		bt := b.(bool)
		switch {
		case at == bt:
			return 0
		case !at:
			return -1
		default:
			return 1
		}
	case string:
		return strings.Compare(at, b.(string))
	case Sequence:
		bt := b.(Sequence)
		for i := 0; i < len(at) && i < len(bt); i++ {
			if c := Compare(at[i], bt[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(at), len(bt))
	case Mapping:
		bt := b.(Mapping)
		for i := 0; i < len(at) && i < len(bt); i++ {
			if c := strings.Compare(at[i].Key, bt[i].Key); c != 0 {
				return c
			}
			if c := Compare(at[i].Value, bt[i].Value); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(at), len(bt))
	}
	return 0
}

// EqualCanonical reports whether two canonical forms are equal.
func EqualCanonical(a, b Canonical) bool {
	return Compare(a, b) == 0
}
