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

package v1alpha1

// RuntimeProperties is what the plugin records about a node between lifecycle
// operations. The orchestrator hands it back on every run.
type RuntimeProperties struct {
	// ResourceID is the Azure resource ID of the node's resource once it exists.
	ResourceID string `json:"resource_id,omitempty"`

	// Futures are the long-running operations still in progress.
	Futures Futures `json:"futures,omitempty"`

	// Conditions describe the state of the node's resource.
	Conditions Conditions `json:"conditions,omitempty"`

	// Outputs are values other nodes may consume, such as a private IP address.
	Outputs map[string]string `json:"outputs,omitempty"`
}

// GetFutures returns the list of long running operation states for the node.
func (p *RuntimeProperties) GetFutures() Futures {
	return p.Futures
}

// SetFutures will set the given long running operation states on the node.
func (p *RuntimeProperties) SetFutures(futures Futures) {
	p.Futures = futures
}

// GetConditions returns the list of conditions for the node.
func (p *RuntimeProperties) GetConditions() Conditions {
	return p.Conditions
}

// SetConditions will set the given conditions on the node.
func (p *RuntimeProperties) SetConditions(conditions Conditions) {
	p.Conditions = conditions
}

// SetOutput records an output value. An empty value removes the output.
func (p *RuntimeProperties) SetOutput(key, value string) {
	if value == "" {
		delete(p.Outputs, key)
		return
	}
	if p.Outputs == nil {
		p.Outputs = map[string]string{}
	}
	p.Outputs[key] = value
}
