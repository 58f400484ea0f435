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

// Package v1alpha1 contains the node property types of the Azure plugin: what a
// blueprint node declares about the resource it manages, and the status the
// plugin records for it between lifecycle operations.
package v1alpha1

import "time"

// NodeKind is the type of Azure resource a node manages.
type NodeKind string

const (
	// ResourceGroupKind is a resource group node.
	ResourceGroupKind NodeKind = "resourcegroup"
	// VirtualNetworkKind is a virtual network node.
	VirtualNetworkKind NodeKind = "virtualnetwork"
	// SubnetKind is a subnet node.
	SubnetKind NodeKind = "subnet"
	// AvailabilitySetKind is an availability set node.
	AvailabilitySetKind NodeKind = "availabilityset"
	// DiskKind is a managed disk node.
	DiskKind NodeKind = "disk"
	// NetworkInterfaceKind is a network interface node.
	NetworkInterfaceKind NodeKind = "networkinterface"
	// VirtualMachineKind is a virtual machine node.
	VirtualMachineKind NodeKind = "virtualmachine"
)

// NodeKinds lists every supported kind in dependency order: a kind only refers to kinds before it.
var NodeKinds = []NodeKind{
	ResourceGroupKind,
	VirtualNetworkKind,
	SubnetKind,
	AvailabilitySetKind,
	DiskKind,
	NetworkInterfaceKind,
	VirtualMachineKind,
}

// Tags defines a map of tags for an Azure resource.
type Tags map[string]string

// SubResource is a reference to another Azure resource by its ID.
type SubResource struct {
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
}

// FutureType is the type of a long-running operation.
type FutureType string

const (
	// PutFuture is a future that was derived from a PUT request.
	PutFuture FutureType = "PUT"
	// DeleteFuture is a future that was derived from a DELETE request.
	DeleteFuture FutureType = "DELETE"
	// PostFuture is a future that was derived from a POST request, such as a power operation.
	PostFuture FutureType = "POST"
)

// Future contains the data needed to resume a long-running Azure operation in a
// later run of the plugin.
type Future struct {
	// Type describes the type of future, such as update, create, delete, etc.
	Type FutureType `json:"type"`

	// ResourceGroup is the Azure resource group for the resource.
	ResourceGroup string `json:"resource_group,omitempty"`

	// ServiceName is the name of the Azure service.
	// Together with the name of the resource, this forms the unique identifier for the future.
	ServiceName string `json:"service_name"`

	// Name is the name of the Azure resource.
	// Together with the service name, this forms the unique identifier for the future.
	Name string `json:"name"`

	// Data is the base64 url encoded json Azure AutoRest Future.
	Data string `json:"data"`
}

// Futures is a slice of Future.
type Futures []Future

// ConditionType is the name of a node status condition.
type ConditionType string

// ConditionStatus is the status of a condition.
type ConditionStatus string

const (
	// ConditionTrue means the resource is in the condition.
	ConditionTrue ConditionStatus = "True"
	// ConditionFalse means the resource is not in the condition.
	ConditionFalse ConditionStatus = "False"
	// ConditionUnknown means the plugin cannot decide if the resource is in the condition.
	ConditionUnknown ConditionStatus = "Unknown"
)

// ConditionSeverity expresses how bad a false condition is.
type ConditionSeverity string

const (
	// ConditionSeverityError is for conditions that need attention.
	ConditionSeverityError ConditionSeverity = "Error"
	// ConditionSeverityWarning is for conditions that may resolve on their own.
	ConditionSeverityWarning ConditionSeverity = "Warning"
	// ConditionSeverityInfo is for conditions describing progress.
	ConditionSeverityInfo ConditionSeverity = "Info"
	// ConditionSeverityNone is for true conditions.
	ConditionSeverityNone ConditionSeverity = ""
)

// Condition is an observation of a node's resource at a point in time.
type Condition struct {
	Type               ConditionType     `json:"type"`
	Status             ConditionStatus   `json:"status"`
	Severity           ConditionSeverity `json:"severity,omitempty"`
	Reason             string            `json:"reason,omitempty"`
	Message            string            `json:"message,omitempty"`
	LastTransitionTime time.Time         `json:"last_transition_time"`
}

// Conditions is a list of conditions, at most one per type.
type Conditions []Condition

// Get returns the condition of type t, or nil.
func (c Conditions) Get(t ConditionType) *Condition {
	for i := range c {
		if c[i].Type == t {
			return &c[i]
		}
	}
	return nil
}

// IsTrue reports whether the condition of type t exists and is true.
func (c Conditions) IsTrue(t ConditionType) bool {
	cond := c.Get(t)
	return cond != nil && cond.Status == ConditionTrue
}
