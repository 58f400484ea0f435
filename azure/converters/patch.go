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

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/pkg/errors"
)

// MergePatch returns the JSON merge patch that brings observed in line with
// desired. Keys only present on observed are left out of the patch.
func MergePatch(desired, observed map[string]interface{}) ([]byte, error) {
	desiredJSON, err := json.Marshal(desired)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal desired configuration")
	}
	observedJSON, err := json.Marshal(observed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal observed configuration")
	}
	target, err := jsonpatch.MergePatch(observedJSON, desiredJSON)
	if err != nil {
		return nil, errors.Wrap(err, "failed to apply desired configuration")
	}
	patch, err := jsonpatch.CreateMergePatch(observedJSON, target)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create merge patch")
	}
	return patch, nil
}
