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

// AvailabilitySetConfig is the resource_config of an availability set node.
type AvailabilitySetConfig struct {
	SKU                       *SKU   `json:"sku,omitempty" yaml:"sku,omitempty"`
	PlatformFaultDomainCount  *int32 `json:"platform_fault_domain_count,omitempty" yaml:"platform_fault_domain_count,omitempty"`
	PlatformUpdateDomainCount *int32 `json:"platform_update_domain_count,omitempty" yaml:"platform_update_domain_count,omitempty"`
}

// SKU names a resource SKU.
type SKU struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// DiskConfig is the resource_config of a managed disk node.
type DiskConfig struct {
	SKU          *SKU          `json:"sku,omitempty" yaml:"sku,omitempty"`
	DiskSizeGB   *int32        `json:"disk_size_gb,omitempty" yaml:"disk_size_gb,omitempty"`
	Zones        []string      `json:"zones,omitempty" yaml:"zones,omitempty"`
	CreationData *CreationData `json:"creation_data,omitempty" yaml:"creation_data,omitempty"`
}

// CreationData describes where a disk's content comes from.
type CreationData struct {
	CreateOption     string `json:"create_option,omitempty" yaml:"create_option,omitempty"`
	SourceResourceID string `json:"source_resource_id,omitempty" yaml:"source_resource_id,omitempty"`
	SourceURI        string `json:"source_uri,omitempty" yaml:"source_uri,omitempty"`
}
