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

import (
	"fmt"

	"k8s.io/utils/ptr"
)

const (
	// DefaultAvailabilitySetFaultDomainCount is the fault domain count of an availability set that declares none.
	DefaultAvailabilitySetFaultDomainCount int32 = 2
	// DefaultAvailabilitySetUpdateDomainCount is the update domain count of an availability set that declares none.
	DefaultAvailabilitySetUpdateDomainCount int32 = 5
	// DefaultIPConfigurationName names the first IP configuration of a network interface when it has no name.
	DefaultIPConfigurationName = "ipconfig1"
)

// SetNodeDefaults fills in the node's location from the provider configuration.
func SetNodeDefaults(node *Node, cfg *ProviderConfig) {
	if node.Location == "" && cfg != nil {
		node.Location = cfg.Location
	}
	if node.Kind == ResourceGroupKind && node.ResourceGroup == "" {
		node.ResourceGroup = node.Name
	}
}

// Default sets the default values of a resource group.
func (c *ResourceGroupConfig) Default(_ *Node) {}

// Default sets the default values of a virtual network.
func (c *VirtualNetworkConfig) Default(_ *Node) {}

// Default sets the default values of a subnet.
func (c *SubnetConfig) Default(_ *Node) {}

// Default sets the default values of an availability set. Availability sets
// hosting managed disks need the Aligned SKU.
func (c *AvailabilitySetConfig) Default(_ *Node) {
	if c.SKU == nil || c.SKU.Name == "" {
		c.SKU = &SKU{Name: "Aligned"}
	}
	if c.PlatformFaultDomainCount == nil {
		c.PlatformFaultDomainCount = ptr.To(DefaultAvailabilitySetFaultDomainCount)
	}
	if c.PlatformUpdateDomainCount == nil {
		c.PlatformUpdateDomainCount = ptr.To(DefaultAvailabilitySetUpdateDomainCount)
	}
}

// Default sets the default values of a managed disk.
func (c *DiskConfig) Default(_ *Node) {
	if c.SKU == nil || c.SKU.Name == "" {
		c.SKU = &SKU{Name: "Standard_LRS"}
	}
	if c.CreationData == nil {
		c.CreationData = &CreationData{}
	}
	if c.CreationData.CreateOption == "" {
		c.CreationData.CreateOption = "Empty"
	}
}

// Default sets the default values of a network interface.
func (c *NetworkInterfaceConfig) Default(_ *Node) {
	for i := range c.IPConfigurations {
		ipc := &c.IPConfigurations[i]
		if ipc.Name == "" {
			if i == 0 {
				ipc.Name = DefaultIPConfigurationName
			} else {
				ipc.Name = fmt.Sprintf("ipconfig%d", i+1)
			}
		}
		if ipc.PrivateIPAllocationMethod == "" {
			if ipc.PrivateIPAddress != "" {
				ipc.PrivateIPAllocationMethod = "Static"
			} else {
				ipc.PrivateIPAllocationMethod = "Dynamic"
			}
		}
		if len(c.IPConfigurations) > 1 && i == 0 && ipc.Primary == nil {
			ipc.Primary = ptr.To(true)
		}
	}
}

// Default sets the default values of a virtual machine.
func (c *VirtualMachineConfig) Default(node *Node) {
	if c.StorageProfile == nil {
		c.StorageProfile = &StorageProfile{}
	}
	c.StorageProfile.setDefaults(node.Name)
	if c.OSProfile != nil {
		c.OSProfile.setDefaults(node.Name)
	}
	if c.NetworkProfile != nil && len(c.NetworkProfile.NetworkInterfaces) > 1 {
		if c.NetworkProfile.NetworkInterfaces[0].Primary == nil {
			c.NetworkProfile.NetworkInterfaces[0].Primary = ptr.To(true)
		}
	}
	if c.Priority == "Spot" && c.EvictionPolicy == "" {
		c.EvictionPolicy = "Deallocate"
	}
}

// OSDiskName is the name given to the OS disk of a VM that does not name it.
func OSDiskName(vmName string) string {
	return fmt.Sprintf("%s_OSDisk", vmName)
}

// DataDiskName is the name given to a data disk of a VM that does not name it.
func DataDiskName(vmName string, lun int32) string {
	return fmt.Sprintf("%s_datadisk_%d", vmName, lun)
}

func (s *StorageProfile) setDefaults(vmName string) {
	if s.OSDisk == nil {
		s.OSDisk = &OSDisk{}
	}
	if s.OSDisk.Name == "" {
		s.OSDisk.Name = OSDiskName(vmName)
	}
	if s.OSDisk.CreateOption == "" {
		if s.ImageReference != nil {
			s.OSDisk.CreateOption = "FromImage"
		} else {
			s.OSDisk.CreateOption = "Attach"
		}
	}
	if s.OSDisk.Caching == "" {
		s.OSDisk.Caching = "ReadWrite"
	}
	for i := range s.DataDisks {
		d := &s.DataDisks[i]
		if d.CreateOption == "" {
			if d.ManagedDisk != nil && d.ManagedDisk.ID != "" {
				d.CreateOption = "Attach"
			} else {
				d.CreateOption = "Empty"
			}
		}
		if d.Name == "" && d.CreateOption == "Empty" {
			d.Name = DataDiskName(vmName, d.Lun)
		}
		if d.Caching == "" {
			d.Caching = "None"
		}
	}
}

func (p *OSProfile) setDefaults(vmName string) {
	if p.ComputerName == "" {
		p.ComputerName = vmName
	}
	lc := p.LinuxConfiguration
	if lc == nil || lc.SSH == nil {
		return
	}
	for i := range lc.SSH.PublicKeys {
		if lc.SSH.PublicKeys[i].Path == "" && p.AdminUsername != "" {
			lc.SSH.PublicKeys[i].Path = fmt.Sprintf("/home/%s/.ssh/authorized_keys", p.AdminUsername)
		}
	}
	if len(lc.SSH.PublicKeys) > 0 && lc.DisablePasswordAuthentication == nil && p.AdminPassword == "" {
		lc.DisablePasswordAuthentication = ptr.To(true)
	}
}
