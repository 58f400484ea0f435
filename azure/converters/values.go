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

package converters

import (
	"encoding/json"

	"github.com/gobuffalo/flect"
	"github.com/pkg/errors"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
)

// propertiesKey is the ARM envelope holding the resource specific fields.
const propertiesKey = "properties"

// verbatimKeys hold user supplied keys which are never renamed.
var verbatimKeys = map[string]bool{
	"tags": true,
}

// keyNames holds the ARM field names whose snake case form flect gets wrong
// because they run an acronym flect does not know into the next word.
var keyNames = map[string]string{
	"provisionVMAgent":             "provision_vm_agent",
	"enableVMAgentPlatformUpdates": "enable_vm_agent_platform_updates",
}

// snakeCase returns the node configuration name of an ARM field.
func snakeCase(k string) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return flect.Underscore(k)
}

// ResourceToValue renders an SDK resource as a plain value shaped like a node
// configuration: every "properties" envelope is merged into its parent and
// keys are converted to snake case.
func ResourceToValue(resource interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(resource)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal resource")
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal resource")
	}
	m, ok := normalize(v).(map[string]interface{})
	if !ok {
		return map[string]interface{}{}, nil
	}
	return m, nil
}

func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		if props, ok := t[propertiesKey].(map[string]interface{}); ok {
			for k, pv := range props {
				putValue(out, k, pv)
			}
		}
		for k, tv := range t {
			if k == propertiesKey {
				if _, ok := tv.(map[string]interface{}); ok {
					continue
				}
			}
			putValue(out, k, tv)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = normalize(t[i])
		}
		return out
	default:
		return v
	}
}

func putValue(out map[string]interface{}, k string, v interface{}) {
	key := snakeCase(k)
	if verbatimKeys[key] {
		out[key] = v
		return
	}
	out[key] = normalize(v)
}

// ConfigToValue renders a typed node configuration as a plain value using its
// JSON field names.
func ConfigToValue(config interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal configuration")
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal configuration")
	}
	return out, nil
}

// DesiredValue renders config with the location and tags of the resource added,
// leaving out either when it is empty.
func DesiredValue(config interface{}, location string, tags infrav1.Tags) (map[string]interface{}, error) {
	out, err := ConfigToValue(config)
	if err != nil {
		return nil, err
	}
	if location != "" {
		out["location"] = location
	}
	if len(tags) > 0 {
		out["tags"] = map[string]string(tags)
	}
	return out, nil
}

// AlignSequences returns observed with the mapping elements of every sequence
// reduced to the keys set on the elements of the matching desired sequence.
// Azure fills in server side fields on list elements (a data disk's
// delete_option, an IP configuration's etag), and list elements are compared
// whole. observed is not modified.
func AlignSequences(observed, desired map[string]interface{}) map[string]interface{} {
	aligned, _ := align(observed, desired, false).(map[string]interface{})
	return aligned
}

func align(observed, desired interface{}, prune bool) interface{} {
	switch want := desired.(type) {
	case map[string]interface{}:
		got, ok := observed.(map[string]interface{})
		if !ok {
			return observed
		}
		out := make(map[string]interface{}, len(got))
		for k, gv := range got {
			wv, wanted := want[k]
			switch {
			case wanted:
				out[k] = align(gv, wv, prune)
			case !prune:
				out[k] = gv
			}
		}
		return out
	case []interface{}:
		got, ok := observed.([]interface{})
		if !ok {
			return observed
		}
		template, ok := mergeElements(want)
		if !ok {
			return observed
		}
		out := make([]interface{}, len(got))
		for i := range got {
			out[i] = align(got[i], template, true)
		}
		return out
	default:
		return observed
	}
}

// mergeElements folds the mapping elements of a sequence into one mapping
// holding every key set on any of them.
func mergeElements(elements []interface{}) (map[string]interface{}, bool) {
	var merged map[string]interface{}
	for _, e := range elements {
		m, ok := e.(map[string]interface{})
		if !ok {
			return nil, false
		}
		if merged == nil {
			merged = map[string]interface{}{}
		}
		mergeInto(merged, m)
	}
	return merged, merged != nil
}

func mergeInto(dst, src map[string]interface{}) {
	for k, v := range src {
		existing, found := dst[k]
		if !found {
			dst[k] = v
			continue
		}
		em, emOK := existing.(map[string]interface{})
		sm, smOK := v.(map[string]interface{})
		if emOK && smOK {
			merged := make(map[string]interface{}, len(em))
			mergeInto(merged, em)
			mergeInto(merged, sm)
			dst[k] = merged
		}
	}
}
