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

// Node conditions.
const (
	// ResourceGroupReadyCondition means the resource group exists and is ready to be used.
	ResourceGroupReadyCondition ConditionType = "ResourceGroupReady"
	// VNetReadyCondition means the virtual network exists and is ready to be used.
	VNetReadyCondition ConditionType = "VNetReady"
	// SubnetReadyCondition means the subnet exists and is ready to be used.
	SubnetReadyCondition ConditionType = "SubnetReady"
	// AvailabilitySetReadyCondition means the availability set exists and is ready to be used.
	AvailabilitySetReadyCondition ConditionType = "AvailabilitySetReady"
	// DiskReadyCondition means the managed disk exists and is ready to be used.
	DiskReadyCondition ConditionType = "DiskReady"
	// NetworkInterfaceReadyCondition means the network interface exists and is ready to be used.
	NetworkInterfaceReadyCondition ConditionType = "NetworkInterfaceReady"
	// VMRunningCondition reports on current status of the Azure VM.
	VMRunningCondition ConditionType = "VMRunning"
	// ConfigurationDriftedCondition is true when the last diff found the resource out of line with the node.
	ConfigurationDriftedCondition ConditionType = "ConfigurationDrifted"
)

// Condition reasons.
const (
	// CreatingReason means the resource is being created.
	CreatingReason = "Creating"
	// UpdatingReason means the resource is being updated.
	UpdatingReason = "Updating"
	// DeletingReason means the resource is being deleted.
	DeletingReason = "Deleting"
	// DeletedReason means the resource was deleted.
	DeletedReason = "Deleted"
	// DeletionFailedReason means the resource failed to be deleted.
	DeletionFailedReason = "DeletionFailed"
	// FailedReason means the resource failed to be created or updated.
	FailedReason = "Failed"
	// ExternalResourceReason means the node uses a resource the plugin does not manage.
	ExternalResourceReason = "ExternalResource"
	// VMStartingReason means a start was requested.
	VMStartingReason = "VMStarting"
	// VMStoppingReason means a stop or deallocation was requested.
	VMStoppingReason = "VMStopping"
	// VMRestartingReason means a restart was requested.
	VMRestartingReason = "VMRestarting"
	// VMStoppedReason means the VM is stopped or deallocated.
	VMStoppedReason = "VMStopped"
	// DriftDetectedReason means a difference between node and resource was found.
	DriftDetectedReason = "DriftDetected"
)
