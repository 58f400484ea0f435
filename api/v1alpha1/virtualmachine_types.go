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

// VirtualMachineConfig is the resource_config of a virtual machine node. Field
// names follow the ARM virtual machine resource so the rendered configuration
// lines up with what Azure returns for the machine.
type VirtualMachineConfig struct {
	Plan            *Plan            `json:"plan,omitempty" yaml:"plan,omitempty"`
	HardwareProfile *HardwareProfile `json:"hardware_profile,omitempty" yaml:"hardware_profile,omitempty"`
	StorageProfile  *StorageProfile  `json:"storage_profile,omitempty" yaml:"storage_profile,omitempty"`
	OSProfile       *OSProfile       `json:"os_profile,omitempty" yaml:"os_profile,omitempty"`
	NetworkProfile  *NetworkProfile  `json:"network_profile,omitempty" yaml:"network_profile,omitempty"`

	AvailabilitySet *SubResource `json:"availability_set,omitempty" yaml:"availability_set,omitempty"`
	// AvailabilitySetName names an availability set in the node's resource group; it resolves to AvailabilitySet.
	AvailabilitySetName string `json:"-" yaml:"availability_set_name,omitempty"`

	Priority       string          `json:"priority,omitempty" yaml:"priority,omitempty"`
	EvictionPolicy string          `json:"eviction_policy,omitempty" yaml:"eviction_policy,omitempty"`
	BillingProfile *BillingProfile `json:"billing_profile,omitempty" yaml:"billing_profile,omitempty"`
	Zones          []string        `json:"zones,omitempty" yaml:"zones,omitempty"`

	// DeallocateOnStop makes the stop operation release the machine's compute resources instead of only powering it off.
	DeallocateOnStop bool `json:"-" yaml:"deallocate_on_stop,omitempty"`
}

// Plan is the marketplace plan of the image a VM was created from.
type Plan struct {
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	Publisher     string `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Product       string `json:"product,omitempty" yaml:"product,omitempty"`
	PromotionCode string `json:"promotion_code,omitempty" yaml:"promotion_code,omitempty"`
}

// HardwareProfile holds the size of a VM.
type HardwareProfile struct {
	VMSize string `json:"vm_size,omitempty" yaml:"vm_size,omitempty"`
}

// StorageProfile holds the image and disks of a VM.
type StorageProfile struct {
	ImageReference *ImageReference `json:"image_reference,omitempty" yaml:"image_reference,omitempty"`
	OSDisk         *OSDisk         `json:"os_disk,omitempty" yaml:"os_disk,omitempty"`
	DataDisks      []DataDisk      `json:"data_disks,omitempty" yaml:"data_disks,omitempty"`
}

// ImageReference points at a marketplace image or an image resource.
type ImageReference struct {
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Offer     string `json:"offer,omitempty" yaml:"offer,omitempty"`
	SKU       string `json:"sku,omitempty" yaml:"sku,omitempty"`
	Version   string `json:"version,omitempty" yaml:"version,omitempty"`
}

// OSDisk is the operating system disk of a VM.
type OSDisk struct {
	Name         string                 `json:"name,omitempty" yaml:"name,omitempty"`
	OSType       string                 `json:"os_type,omitempty" yaml:"os_type,omitempty"`
	Caching      string                 `json:"caching,omitempty" yaml:"caching,omitempty"`
	CreateOption string                 `json:"create_option,omitempty" yaml:"create_option,omitempty"`
	DiskSizeGB   *int32                 `json:"disk_size_gb,omitempty" yaml:"disk_size_gb,omitempty"`
	ManagedDisk  *ManagedDiskParameters `json:"managed_disk,omitempty" yaml:"managed_disk,omitempty"`
	DeleteOption string                 `json:"delete_option,omitempty" yaml:"delete_option,omitempty"`
}

// DataDisk is a data disk attached to a VM.
type DataDisk struct {
	Lun          int32                  `json:"lun" yaml:"lun"`
	Name         string                 `json:"name,omitempty" yaml:"name,omitempty"`
	Caching      string                 `json:"caching,omitempty" yaml:"caching,omitempty"`
	CreateOption string                 `json:"create_option,omitempty" yaml:"create_option,omitempty"`
	DiskSizeGB   *int32                 `json:"disk_size_gb,omitempty" yaml:"disk_size_gb,omitempty"`
	ManagedDisk  *ManagedDiskParameters `json:"managed_disk,omitempty" yaml:"managed_disk,omitempty"`
	DeleteOption string                 `json:"delete_option,omitempty" yaml:"delete_option,omitempty"`
}

// ManagedDiskParameters selects the storage of a managed disk, or an existing disk by ID.
type ManagedDiskParameters struct {
	ID                 string `json:"id,omitempty" yaml:"id,omitempty"`
	StorageAccountType string `json:"storage_account_type,omitempty" yaml:"storage_account_type,omitempty"`
}

// OSProfile holds the guest operating system settings of a VM.
type OSProfile struct {
	ComputerName  string `json:"computer_name,omitempty" yaml:"computer_name,omitempty"`
	AdminUsername string `json:"admin_username,omitempty" yaml:"admin_username,omitempty"`
	// AdminPassword is write-only: Azure never returns it, so it takes no part in drift detection.
	AdminPassword string `json:"-" yaml:"admin_password,omitempty"`
	// CustomData is write-only like AdminPassword. It is sent base64 encoded.
	CustomData string `json:"-" yaml:"custom_data,omitempty"`

	LinuxConfiguration   *LinuxConfiguration   `json:"linux_configuration,omitempty" yaml:"linux_configuration,omitempty"`
	WindowsConfiguration *WindowsConfiguration `json:"windows_configuration,omitempty" yaml:"windows_configuration,omitempty"`
}

// LinuxConfiguration holds the Linux specific guest settings.
type LinuxConfiguration struct {
	DisablePasswordAuthentication *bool             `json:"disable_password_authentication,omitempty" yaml:"disable_password_authentication,omitempty"`
	SSH                           *SSHConfiguration `json:"ssh,omitempty" yaml:"ssh,omitempty"`
}

// SSHConfiguration holds the SSH public keys installed on a Linux VM.
type SSHConfiguration struct {
	PublicKeys []SSHPublicKey `json:"public_keys,omitempty" yaml:"public_keys,omitempty"`
}

// SSHPublicKey is an SSH public key and the file it is written to on the VM.
type SSHPublicKey struct {
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	KeyData string `json:"key_data,omitempty" yaml:"key_data,omitempty"`
}

// WindowsConfiguration holds the Windows specific guest settings.
type WindowsConfiguration struct {
	ProvisionVMAgent       *bool  `json:"provision_vm_agent,omitempty" yaml:"provision_vm_agent,omitempty"`
	EnableAutomaticUpdates *bool  `json:"enable_automatic_updates,omitempty" yaml:"enable_automatic_updates,omitempty"`
	TimeZone               string `json:"time_zone,omitempty" yaml:"time_zone,omitempty"`
}

// NetworkProfile holds the network interfaces of a VM.
type NetworkProfile struct {
	NetworkInterfaces []NetworkInterfaceReference `json:"network_interfaces,omitempty" yaml:"network_interfaces,omitempty"`
}

// NetworkInterfaceReference attaches a network interface to a VM.
type NetworkInterfaceReference struct {
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
	// Name names a network interface in the node's resource group; it resolves to ID.
	Name    string `json:"-" yaml:"name,omitempty"`
	Primary *bool  `json:"primary,omitempty" yaml:"primary,omitempty"`
}

// BillingProfile holds the price cap of a Spot VM.
type BillingProfile struct {
	MaxPrice *float64 `json:"max_price,omitempty" yaml:"max_price,omitempty"`
}
