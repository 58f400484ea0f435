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

package scope

import (
	"strings"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/availabilitysets"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/disks"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/groups"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/networkinterfaces"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/subnets"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/virtualmachines"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/virtualnetworks"
)

// GroupSpec returns the resource group spec, or nil when the node is not a resource group.
func (s *NodeScope) GroupSpec() azure.DriftSpecGetter {
	cfg, ok := s.config.(*infrav1.ResourceGroupConfig)
	if !ok {
		return nil
	}
	return &groups.GroupSpec{
		Name:           s.Name(),
		Location:       s.Location(),
		ManagedBy:      cfg.ManagedBy,
		AdditionalTags: s.AdditionalTags(),
	}
}

// VNetSpec returns the virtual network spec, or nil when the node is not a virtual network.
func (s *NodeScope) VNetSpec() azure.DriftSpecGetter {
	cfg, ok := s.config.(*infrav1.VirtualNetworkConfig)
	if !ok {
		return nil
	}
	return &virtualnetworks.VNetSpec{
		ResourceGroup:  s.ResourceGroup(),
		Name:           s.Name(),
		Location:       s.Location(),
		AdditionalTags: s.AdditionalTags(),
		Config:         *cfg,
	}
}

// SubnetSpec returns the subnet spec, or nil when the node is not a subnet.
func (s *NodeScope) SubnetSpec() azure.DriftSpecGetter {
	cfg, ok := s.config.(*infrav1.SubnetConfig)
	if !ok {
		return nil
	}
	return &subnets.SubnetSpec{
		Name:          s.Name(),
		ResourceGroup: s.ResourceGroup(),
		VNetName:      cfg.VirtualNetworkName,
		Config:        *cfg,
	}
}

// AvailabilitySetSpec returns the availability set spec, or nil when the node is not an availability set.
func (s *NodeScope) AvailabilitySetSpec() azure.DriftSpecGetter {
	cfg, ok := s.config.(*infrav1.AvailabilitySetConfig)
	if !ok {
		return nil
	}
	return &availabilitysets.AvailabilitySetSpec{
		Name:           s.Name(),
		ResourceGroup:  s.ResourceGroup(),
		Location:       s.Location(),
		AdditionalTags: s.AdditionalTags(),
		Config:         *cfg,
	}
}

// DiskSpec returns the managed disk spec, or nil when the node is not a disk.
func (s *NodeScope) DiskSpec() azure.DriftSpecGetter {
	cfg, ok := s.config.(*infrav1.DiskConfig)
	if !ok {
		return nil
	}
	return &disks.DiskSpec{
		Name:           s.Name(),
		ResourceGroup:  s.ResourceGroup(),
		Location:       s.Location(),
		AdditionalTags: s.AdditionalTags(),
		Config:         *cfg,
	}
}

// NICSpec returns the network interface spec, or nil when the node is not a network interface.
func (s *NodeScope) NICSpec() azure.DriftSpecGetter {
	cfg, ok := s.config.(*infrav1.NetworkInterfaceConfig)
	if !ok {
		return nil
	}
	return &networkinterfaces.NICSpec{
		Name:           s.Name(),
		ResourceGroup:  s.ResourceGroup(),
		Location:       s.Location(),
		AdditionalTags: s.AdditionalTags(),
		Config:         *cfg,
	}
}

// VMSpec returns the virtual machine spec, or nil when the node is not a virtual machine.
func (s *NodeScope) VMSpec() azure.DriftSpecGetter {
	cfg, ok := s.config.(*infrav1.VirtualMachineConfig)
	if !ok {
		return nil
	}
	return &virtualmachines.VMSpec{
		Name:           s.Name(),
		ResourceGroup:  s.ResourceGroup(),
		Location:       s.Location(),
		AdditionalTags: s.AdditionalTags(),
		Config:         *cfg,
	}
}

// DiskSpecsToDelete returns the disks that go away with the virtual machine: the OS disk
// created from its image, and the data disks whose delete option is Delete.
func (s *NodeScope) DiskSpecsToDelete() []azure.ResourceSpecGetter {
	cfg, ok := s.config.(*infrav1.VirtualMachineConfig)
	if !ok || cfg.StorageProfile == nil {
		return nil
	}

	var specs []azure.ResourceSpecGetter
	if d := cfg.StorageProfile.OSDisk; d != nil && strings.EqualFold(d.CreateOption, "FromImage") {
		name := d.Name
		if name == "" {
			name = infrav1.OSDiskName(s.Name())
		}
		specs = append(specs, &disks.DeleteSpec{Name: name, ResourceGroup: s.ResourceGroup()})
	}
	for _, d := range cfg.StorageProfile.DataDisks {
		if !strings.EqualFold(d.DeleteOption, "Delete") {
			continue
		}
		rg, name := s.ResourceGroup(), d.Name
		if d.ManagedDisk != nil && d.ManagedDisk.ID != "" {
			if diskRG, diskName, err := azure.ParseDiskID(d.ManagedDisk.ID); err == nil {
				rg, name = diskRG, diskName
			}
		}
		if name == "" {
			name = infrav1.DataDiskName(s.Name(), d.Lun)
		}
		specs = append(specs, &disks.DeleteSpec{Name: name, ResourceGroup: rg})
	}
	return specs
}

// DeallocateOnStop reports whether stopping the virtual machine releases its compute resources.
func (s *NodeScope) DeallocateOnStop() bool {
	cfg, ok := s.config.(*infrav1.VirtualMachineConfig)
	return ok && cfg.DeallocateOnStop
}
