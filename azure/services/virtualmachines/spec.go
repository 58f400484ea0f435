/*
Copyright 2022 The Kubernetes Authors.

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

package virtualmachines

import (
	"context"
	"encoding/base64"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/pkg/errors"
	"k8s.io/utils/ptr"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/converters"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/drift"
)

// VMSpec defines the specification for a Virtual Machine.
type VMSpec struct {
	Name           string
	ResourceGroup  string
	Location       string
	AdditionalTags infrav1.Tags
	Config         infrav1.VirtualMachineConfig
}

// ResourceName returns the name of the virtual machine.
func (s *VMSpec) ResourceName() string {
	return s.Name
}

// ResourceGroupName returns the name of the resource group.
func (s *VMSpec) ResourceGroupName() string {
	return s.ResourceGroup
}

// OwnerResourceName is a no-op for virtual machines.
func (s *VMSpec) OwnerResourceName() string {
	return ""
}

// Parameters returns the parameters for the virtual machine.
func (s *VMSpec) Parameters(ctx context.Context, existing interface{}) (params interface{}, err error) {
	if existing != nil {
		if _, ok := existing.(armcompute.VirtualMachine); !ok {
			return nil, errors.Errorf("%T is not an armcompute.VirtualMachine", existing)
		}
		upToDate, err := azure.IsUpToDate(ctx, ServiceName, s, existing)
		if err != nil {
			return nil, err
		}
		if upToDate {
			return nil, nil
		}
	}

	cfg := s.Config
	vm := armcompute.VirtualMachine{
		Location: ptr.To(s.Location),
		Tags:     converters.TagsToMap(s.AdditionalTags),
		Properties: &armcompute.VirtualMachineProperties{
			HardwareProfile: s.hardwareProfile(),
			StorageProfile:  s.storageProfile(),
			// the admin password and custom data can only be set when the VM is created.
			OSProfile:      s.osProfile(existing == nil),
			NetworkProfile: s.networkProfile(),
		},
	}
	if cfg.Plan != nil {
		vm.Plan = &armcompute.Plan{
			Name:      ptr.To(cfg.Plan.Name),
			Publisher: ptr.To(cfg.Plan.Publisher),
			Product:   ptr.To(cfg.Plan.Product),
		}
		if cfg.Plan.PromotionCode != "" {
			vm.Plan.PromotionCode = ptr.To(cfg.Plan.PromotionCode)
		}
	}
	if cfg.AvailabilitySet != nil && cfg.AvailabilitySet.ID != "" {
		vm.Properties.AvailabilitySet = &armcompute.SubResource{ID: ptr.To(cfg.AvailabilitySet.ID)}
	}
	if cfg.Priority != "" {
		vm.Properties.Priority = ptr.To(armcompute.VirtualMachinePriorityTypes(cfg.Priority))
	}
	if cfg.EvictionPolicy != "" {
		vm.Properties.EvictionPolicy = ptr.To(armcompute.VirtualMachineEvictionPolicyTypes(cfg.EvictionPolicy))
	}
	if cfg.BillingProfile != nil && cfg.BillingProfile.MaxPrice != nil {
		vm.Properties.BillingProfile = &armcompute.BillingProfile{MaxPrice: cfg.BillingProfile.MaxPrice}
	}
	if len(cfg.Zones) > 0 {
		vm.Zones = to.SliceOfPtrs(cfg.Zones...)
	}

	return vm, nil
}

func (s *VMSpec) hardwareProfile() *armcompute.HardwareProfile {
	if s.Config.HardwareProfile == nil || s.Config.HardwareProfile.VMSize == "" {
		return nil
	}
	return &armcompute.HardwareProfile{VMSize: ptr.To(armcompute.VirtualMachineSizeTypes(s.Config.HardwareProfile.VMSize))}
}

func (s *VMSpec) storageProfile() *armcompute.StorageProfile {
	sp := s.Config.StorageProfile
	if sp == nil {
		return nil
	}
	profile := &armcompute.StorageProfile{}
	if img := sp.ImageReference; img != nil {
		profile.ImageReference = &armcompute.ImageReference{}
		if img.ID != "" {
			profile.ImageReference.ID = ptr.To(img.ID)
		} else {
			profile.ImageReference.Publisher = ptr.To(img.Publisher)
			profile.ImageReference.Offer = ptr.To(img.Offer)
			profile.ImageReference.SKU = ptr.To(img.SKU)
			profile.ImageReference.Version = ptr.To(img.Version)
		}
	}
	if d := sp.OSDisk; d != nil {
		osDisk := &armcompute.OSDisk{
			CreateOption: ptr.To(armcompute.DiskCreateOptionTypesFromImage),
			DiskSizeGB:   d.DiskSizeGB,
			ManagedDisk:  managedDisk(d.ManagedDisk),
		}
		if d.Name != "" {
			osDisk.Name = ptr.To(d.Name)
		}
		if d.OSType != "" {
			osDisk.OSType = ptr.To(armcompute.OperatingSystemTypes(d.OSType))
		}
		if d.Caching != "" {
			osDisk.Caching = ptr.To(armcompute.CachingTypes(d.Caching))
		}
		if d.CreateOption != "" {
			osDisk.CreateOption = ptr.To(armcompute.DiskCreateOptionTypes(d.CreateOption))
		}
		if d.DeleteOption != "" {
			osDisk.DeleteOption = ptr.To(armcompute.DiskDeleteOptionTypes(d.DeleteOption))
		}
		profile.OSDisk = osDisk
	}
	for _, d := range sp.DataDisks {
		dataDisk := &armcompute.DataDisk{
			Lun:          ptr.To(d.Lun),
			CreateOption: ptr.To(armcompute.DiskCreateOptionTypesEmpty),
			DiskSizeGB:   d.DiskSizeGB,
			ManagedDisk:  managedDisk(d.ManagedDisk),
		}
		if d.Name != "" {
			dataDisk.Name = ptr.To(d.Name)
		}
		if d.Caching != "" {
			dataDisk.Caching = ptr.To(armcompute.CachingTypes(d.Caching))
		}
		if d.CreateOption != "" {
			dataDisk.CreateOption = ptr.To(armcompute.DiskCreateOptionTypes(d.CreateOption))
		}
		if d.DeleteOption != "" {
			dataDisk.DeleteOption = ptr.To(armcompute.DiskDeleteOptionTypes(d.DeleteOption))
		}
		profile.DataDisks = append(profile.DataDisks, dataDisk)
	}
	return profile
}

func managedDisk(md *infrav1.ManagedDiskParameters) *armcompute.ManagedDiskParameters {
	if md == nil {
		return nil
	}
	out := &armcompute.ManagedDiskParameters{}
	if md.ID != "" {
		out.ID = ptr.To(md.ID)
	}
	if md.StorageAccountType != "" {
		out.StorageAccountType = ptr.To(armcompute.StorageAccountTypes(md.StorageAccountType))
	}
	return out
}

func (s *VMSpec) osProfile(withSecrets bool) *armcompute.OSProfile {
	op := s.Config.OSProfile
	if op == nil {
		return nil
	}
	profile := &armcompute.OSProfile{
		ComputerName:  ptr.To(op.ComputerName),
		AdminUsername: ptr.To(op.AdminUsername),
	}
	if op.ComputerName == "" {
		profile.ComputerName = ptr.To(s.Name)
	}
	if withSecrets {
		if op.AdminPassword != "" {
			profile.AdminPassword = ptr.To(op.AdminPassword)
		}
		if op.CustomData != "" {
			profile.CustomData = ptr.To(base64.StdEncoding.EncodeToString([]byte(op.CustomData)))
		}
	}
	if lc := op.LinuxConfiguration; lc != nil {
		profile.LinuxConfiguration = &armcompute.LinuxConfiguration{
			DisablePasswordAuthentication: lc.DisablePasswordAuthentication,
		}
		if lc.SSH != nil {
			profile.LinuxConfiguration.SSH = &armcompute.SSHConfiguration{}
			for _, k := range lc.SSH.PublicKeys {
				profile.LinuxConfiguration.SSH.PublicKeys = append(profile.LinuxConfiguration.SSH.PublicKeys,
					&armcompute.SSHPublicKey{Path: ptr.To(k.Path), KeyData: ptr.To(k.KeyData)})
			}
		}
	}
	if wc := op.WindowsConfiguration; wc != nil {
		profile.WindowsConfiguration = &armcompute.WindowsConfiguration{
			ProvisionVMAgent:       wc.ProvisionVMAgent,
			EnableAutomaticUpdates: wc.EnableAutomaticUpdates,
		}
		if wc.TimeZone != "" {
			profile.WindowsConfiguration.TimeZone = ptr.To(wc.TimeZone)
		}
	}
	return profile
}

func (s *VMSpec) networkProfile() *armcompute.NetworkProfile {
	np := s.Config.NetworkProfile
	if np == nil {
		return nil
	}
	profile := &armcompute.NetworkProfile{}
	for _, nic := range np.NetworkInterfaces {
		ref := &armcompute.NetworkInterfaceReference{ID: ptr.To(nic.ID)}
		if nic.Primary != nil {
			ref.Properties = &armcompute.NetworkInterfaceReferenceProperties{Primary: nic.Primary}
		}
		profile.NetworkInterfaces = append(profile.NetworkInterfaces, ref)
	}
	return profile
}

// Detector returns the fields compared on a virtual machine.
func (s *VMSpec) Detector() drift.Detector {
	return drift.VirtualMachineFields
}

// DriftValues returns the configured and the observed values of a virtual machine.
func (s *VMSpec) DriftValues(existing interface{}) (desired, observed map[string]interface{}, err error) {
	vm, ok := existing.(armcompute.VirtualMachine)
	if !ok {
		return nil, nil, errors.Errorf("%T is not an armcompute.VirtualMachine", existing)
	}
	desired, err = converters.DesiredValue(s.Config, s.Location, s.AdditionalTags)
	if err != nil {
		return nil, nil, err
	}
	observed, err = converters.ResourceToValue(vm)
	if err != nil {
		return nil, nil, err
	}
	return desired, converters.AlignSequences(observed, desired), nil
}
