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

package disks

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/pkg/errors"
	"k8s.io/utils/ptr"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/converters"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/drift"
)

// DiskSpec defines the specification for a managed disk.
type DiskSpec struct {
	Name           string
	ResourceGroup  string
	Location       string
	AdditionalTags infrav1.Tags
	Config         infrav1.DiskConfig
}

var diskDetector = drift.Detector{
	FlatFields:   []string{"location", "tags", "disk_size_gb", "zones"},
	NestedFields: []string{"sku", "creation_data"},
}

// ResourceName returns the name of the disk.
func (s *DiskSpec) ResourceName() string {
	return s.Name
}

// ResourceGroupName returns the name of the resource group.
func (s *DiskSpec) ResourceGroupName() string {
	return s.ResourceGroup
}

// OwnerResourceName is a no-op for disks.
func (s *DiskSpec) OwnerResourceName() string {
	return ""
}

// Parameters returns the parameters for the disk.
func (s *DiskSpec) Parameters(ctx context.Context, existing interface{}) (params interface{}, err error) {
	if existing != nil {
		if _, ok := existing.(armcompute.Disk); !ok {
			return nil, errors.Errorf("%T is not an armcompute.Disk", existing)
		}
		upToDate, err := azure.IsUpToDate(ctx, ServiceName, s, existing)
		if err != nil {
			return nil, err
		}
		if upToDate {
			return nil, nil
		}
	}

	disk := armcompute.Disk{
		Location: ptr.To(s.Location),
		Tags:     converters.TagsToMap(s.AdditionalTags),
		Properties: &armcompute.DiskProperties{
			DiskSizeGB:   s.Config.DiskSizeGB,
			CreationData: &armcompute.CreationData{CreateOption: ptr.To(armcompute.DiskCreateOptionEmpty)},
		},
	}
	if s.Config.SKU != nil && s.Config.SKU.Name != "" {
		disk.SKU = &armcompute.DiskSKU{Name: ptr.To(armcompute.DiskStorageAccountTypes(s.Config.SKU.Name))}
	}
	if len(s.Config.Zones) > 0 {
		disk.Zones = to.SliceOfPtrs(s.Config.Zones...)
	}
	if cd := s.Config.CreationData; cd != nil {
		if cd.CreateOption != "" {
			disk.Properties.CreationData.CreateOption = ptr.To(armcompute.DiskCreateOption(cd.CreateOption))
		}
		if cd.SourceResourceID != "" {
			disk.Properties.CreationData.SourceResourceID = ptr.To(cd.SourceResourceID)
		}
		if cd.SourceURI != "" {
			disk.Properties.CreationData.SourceURI = ptr.To(cd.SourceURI)
		}
	}

	return disk, nil
}

// Detector returns the fields compared on a disk.
func (s *DiskSpec) Detector() drift.Detector {
	return diskDetector
}

// DriftValues returns the configured and the observed values of a disk.
func (s *DiskSpec) DriftValues(existing interface{}) (desired, observed map[string]interface{}, err error) {
	disk, ok := existing.(armcompute.Disk)
	if !ok {
		return nil, nil, errors.Errorf("%T is not an armcompute.Disk", existing)
	}
	desired, err = converters.DesiredValue(s.Config, s.Location, s.AdditionalTags)
	if err != nil {
		return nil, nil, err
	}
	observed, err = converters.ResourceToValue(disk)
	if err != nil {
		return nil, nil, err
	}
	return desired, observed, nil
}

// DeleteSpec identifies a disk that is only ever deleted, such as the OS disk of a
// virtual machine.
type DeleteSpec struct {
	Name          string
	ResourceGroup string
}

// ResourceName returns the name of the disk.
func (s *DeleteSpec) ResourceName() string {
	return s.Name
}

// ResourceGroupName returns the name of the resource group.
func (s *DeleteSpec) ResourceGroupName() string {
	return s.ResourceGroup
}

// OwnerResourceName is a no-op for disks.
func (s *DeleteSpec) OwnerResourceName() string {
	return ""
}

// Parameters is a no-op for disks that are only deleted.
func (s *DeleteSpec) Parameters(_ context.Context, _ interface{}) (params interface{}, err error) {
	return nil, nil
}
