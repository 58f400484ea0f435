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
	"encoding/json"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultMaxDepth is the nesting depth past which canonicalization and
// comparison fail with ErrMaxDepthExceeded.
const DefaultMaxDepth = 64

var (
	// ErrUnsupportedKind is returned for values that are not a mapping,
	// sequence, string, number, boolean or null.
	ErrUnsupportedKind = errors.New("unsupported value kind")

	// ErrMaxDepthExceeded is returned when a value nests deeper than the
	// configured maximum depth.
	ErrMaxDepthExceeded = errors.New("nesting depth exceeded")
)

// Canonical is the order and case normalized form of a semi-structured value.
// It holds one of nil, bool, string, Sequence or Mapping. Numbers are
// represented by their decimal string.
type Canonical interface{}

// Entry is a single key of a canonical Mapping.
type Entry struct {
	Key   string
	Value Canonical
}

// Mapping is a canonical mapping, its entries sorted by key.
type Mapping []Entry

// Sequence is a canonical sequence, its elements sorted by Compare.
type Sequence []Canonical

// Canonicalize maps v to its canonical form so that two values that are equal
// up to key order, element order and string case compare equal with Equal.
// Canonicalize accepts its own output, so canonicalizing twice yields the same
// form.
func Canonicalize(v interface{}) (Canonical, error) {
	return newCanonicalizer(DefaultMaxDepth).canonicalize(v, 0)
}

// canonicalizer carries the per-call state of a canonicalization. A
// cases.Caser is stateful, so each canonicalizer owns its own.
type canonicalizer struct {
	maxDepth int
	lower    cases.Caser
}

func newCanonicalizer(maxDepth int) *canonicalizer {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &canonicalizer{
		maxDepth: maxDepth,
		lower:    cases.Lower(language.Und),
	}
}

func (c *canonicalizer) canonicalize(v interface{}, depth int) (Canonical, error) {
	if depth > c.maxDepth {
		return nil, errors.Wrapf(ErrMaxDepthExceeded, "limit is %d", c.maxDepth)
	}

	switch t := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return t, nil
	case string:
		return c.lower.String(t), nil
	case json.Number:
		return t.String(), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(t), nil
	case Mapping:
		entries := make(Mapping, len(t))
		for i, e := range t {
			value, err := c.canonicalize(e.Value, depth+1)
			if err != nil {
				return nil, err
			}
			entries[i] = Entry{Key: e.Key, Value: value}
		}
		return sortEntries(entries), nil
	case Sequence:
		return c.sequence(len(t), func(i int) interface{} { return t[i] }, depth)
	case map[string]interface{}:
		entries := make(Mapping, 0, len(t))
		for key, raw := range t {
			value, err := c.canonicalize(raw, depth+1)
			if err != nil {
				return nil, err
			}
			entries = append(entries, Entry{Key: key, Value: value})
		}
		return sortEntries(entries), nil
	case []interface{}:
		return c.sequence(len(t), func(i int) interface{} { return t[i] }, depth)
	}

	return c.canonicalizeReflect(reflect.ValueOf(v), depth)
}

// canonicalizeReflect handles the named and typed variants of the supported
// kinds, such as map[string]string, []string or SDK string enums.
func (c *canonicalizer) canonicalizeReflect(rv reflect.Value, depth int) (Canonical, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		return c.lower.String(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, errors.Wrapf(ErrUnsupportedKind, "map with %s keys", rv.Type().Key())
		}
		if rv.IsNil() {
			return Mapping{}, nil
		}
		entries := make(Mapping, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			value, err := c.canonicalize(iter.Value().Interface(), depth+1)
			if err != nil {
				return nil, err
			}
			entries = append(entries, Entry{Key: iter.Key().String(), Value: value})
		}
		return sortEntries(entries), nil
	case reflect.Slice, reflect.Array:
		return c.sequence(rv.Len(), func(i int) interface{} { return rv.Index(i).Interface() }, depth)
	}

	return nil, errors.Wrapf(ErrUnsupportedKind, "%s", rv.Kind())
}

func (c *canonicalizer) sequence(n int, at func(int) interface{}, depth int) (Canonical, error) {
	elems := make(Sequence, n)
	for i := 0; i < n; i++ {
		elem, err := c.canonicalize(at(i), depth+1)
		if err != nil {
			return nil, err
		}
		elems[i] = elem
	}
	slices.SortStableFunc(elems, Compare)
	return elems, nil
}

func sortEntries(entries Mapping) Mapping {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Key, b.Key)
	})
	return entries
}
