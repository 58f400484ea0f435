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

// Package drift decides whether the live configuration of a resource has
// drifted from the configuration declared for it. Both sides are
// semi-structured values (the output of decoding JSON or YAML); they are
// compared ignoring key order, list element order and the case of strings.
package drift

import (
	"context"
	"encoding/json"
	"reflect"
	"slices"
	"strings"

	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/tele"
)

// Difference describes one key whose desired and observed values are not
// equal, both in canonical form.
type Difference struct {
	Path     string
	Desired  Canonical
	Observed Canonical
}

// Detector compares a desired configuration against an observed one. Flat
// fields are compared as a whole and only when the desired value is set; nested
// fields are compared key by key for every key present on the desired side.
// The zero value is usable but compares nothing.
type Detector struct {
	// FlatFields are compared in order, before any nested field.
	FlatFields []string
	// NestedFields are compared in order with the deep structural comparator.
	NestedFields []string
	// MaxDepth bounds the nesting of both payloads. Zero means DefaultMaxDepth.
	MaxDepth int
}

// VirtualMachineFields is the field set of a virtual machine.
var VirtualMachineFields = Detector{
	FlatFields: []string{
		"location",
		"tags",
		"plan",
		"availability_set",
		"eviction_policy",
		"billing_profile",
		"priority",
		"hardware_profile",
	},
	NestedFields: []string{
		"os_profile",
		"storage_profile",
		"network_profile",
	},
}

// ConfigurationChanged reports whether the observed virtual machine
// configuration differs from the desired one.
func ConfigurationChanged(ctx context.Context, desired, observed map[string]interface{}) (bool, error) {
	return VirtualMachineFields.Changed(ctx, desired, observed)
}

// Changed reports whether any field differs. Scanning stops at the first
// difference, which is logged with its key path and both canonical values.
func (d Detector) Changed(ctx context.Context, desired, observed map[string]interface{}) (bool, error) {
	_, log, done := tele.StartSpanWithLogger(ctx, "drift.Detector.Changed")
	defer done()

	diffs, err := d.scan(desired, observed, true)
	if err != nil {
		return false, err
	}
	if len(diffs) == 0 {
		return false, nil
	}
	report(log, diffs[0])
	return true, nil
}

// Differences returns every difference between desired and observed, in the
// order Changed would find them.
func (d Detector) Differences(ctx context.Context, desired, observed map[string]interface{}) ([]Difference, error) {
	_, log, done := tele.StartSpanWithLogger(ctx, "drift.Detector.Differences")
	defer done()

	diffs, err := d.scan(desired, observed, false)
	if err != nil {
		return nil, err
	}
	for _, diff := range diffs {
		report(log, diff)
	}
	return diffs, nil
}

func report(log logr.Logger, diff Difference) {
	log.V(2).Info("configuration drift detected", "path", diff.Path, "desired", diff.Desired, "observed", diff.Observed)
	log.V(4).Info("configuration drift detail", "path", diff.Path, "diff", cmp.Diff(diff.Desired, diff.Observed))
}

type scanner struct {
	c         *canonicalizer
	firstOnly bool
	diffs     []Difference
}

func (s *scanner) done() bool {
	return s.firstOnly && len(s.diffs) > 0
}

func (d Detector) scan(desired, observed map[string]interface{}, firstOnly bool) ([]Difference, error) {
	s := &scanner{
		c:         newCanonicalizer(d.MaxDepth),
		firstOnly: firstOnly,
	}

	for _, field := range d.FlatFields {
		want := desired[field]
		if !isSet(want) {
			continue
		}
		if err := s.compareValues(field, want, observed[field], 1); err != nil {
			return nil, err
		}
		if s.done() {
			return s.diffs, nil
		}
	}

	for _, field := range d.NestedFields {
		if err := s.compareNested(field, desired[field], observed[field], 1); err != nil {
			return nil, err
		}
		if s.done() {
			return s.diffs, nil
		}
	}

	return s.diffs, nil
}

// compareNested compares want and got key by key when want is a mapping. A
// missing or null observed value counts as an empty mapping.
func (s *scanner) compareNested(path string, want, got interface{}, depth int) error {
	if depth > s.c.maxDepth {
		return errors.Wrapf(ErrMaxDepthExceeded, "limit is %d at %s", s.c.maxDepth, path)
	}

	wantMap, ok := asMapping(want)
	if !ok {
		if !isSet(want) {
			return nil
		}
		return s.compareValues(path, want, got, depth)
	}
	if len(wantMap) == 0 {
		return nil
	}

	var gotMap map[string]interface{}
	if got != nil {
		gotMap, ok = asMapping(got)
		if !ok {
			// a mapping never equals a non-mapping
			return s.compareValues(path, want, got, depth)
		}
	}

	keys := make([]string, 0, len(wantMap))
	for k := range wantMap {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		childPath := path + "." + k
		child := wantMap[k]
		if _, isMap := asMapping(child); isMap {
			if err := s.compareNested(childPath, child, gotMap[k], depth+1); err != nil {
				return err
			}
		} else if err := s.compareValues(childPath, child, gotMap[k], depth+1); err != nil {
			return err
		}
		if s.done() {
			return nil
		}
	}
	return nil
}

func (s *scanner) compareValues(path string, want, got interface{}, depth int) error {
	wantCanon, err := s.c.canonicalize(want, depth)
	if err != nil {
		return errors.Wrapf(err, "failed to canonicalize desired value at %s", path)
	}
	gotCanon, err := s.c.canonicalize(got, depth)
	if err != nil {
		return errors.Wrapf(err, "failed to canonicalize observed value at %s", path)
	}
	if !EqualCanonical(wantCanon, gotCanon) {
		s.diffs = append(s.diffs, Difference{Path: path, Desired: wantCanon, Observed: gotCanon})
	}
	return nil
}

// asMapping returns v as a map when it is a string keyed mapping.
func asMapping(v interface{}) (map[string]interface{}, bool) {
	switch t := v.(type) {
	case map[string]interface{}:
		return t, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]interface{}, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

// isSet reports whether a desired flat value expresses an opinion. Null, empty
// strings, zero numbers, false and empty collections do not.
func isSet(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Bool:
		return rv.Bool()
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// String renders a difference for operators.
func (d Difference) String() string {
	var b strings.Builder
	b.WriteString(d.Path)
	b.WriteString(": desired ")
	b.WriteString(render(d.Desired))
	b.WriteString(", observed ")
	b.WriteString(render(d.Observed))
	return b.String()
}

func render(c Canonical) string {
	out, err := json.Marshal(plain(c))
	if err != nil {
		return "<unrenderable>"
	}
	return string(out)
}

// plain converts a canonical form back to JSON friendly values.
func plain(c Canonical) interface{} {
	switch t := c.(type) {
	case Mapping:
		m := make(map[string]interface{}, len(t))
		for _, e := range t {
			m[e.Key] = plain(e.Value)
		}
		return m
	case Sequence:
		s := make([]interface{}, len(t))
		for i, e := range t {
			s[i] = plain(e)
		}
		return s
	}
	return c
}
