/*
Copyright 2021 The Kubernetes Authors.

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

package availabilitysets

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/pkg/errors"
	"k8s.io/utils/ptr"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/converters"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/drift"
)

// AvailabilitySetSpec defines the specification for an availability set.
type AvailabilitySetSpec struct {
	Name           string
	ResourceGroup  string
	Location       string
	AdditionalTags infrav1.Tags
	Config         infrav1.AvailabilitySetConfig
}

var availabilitySetDetector = drift.Detector{
	FlatFields: []string{"location", "tags", "sku", "platform_fault_domain_count", "platform_update_domain_count"},
}

// ResourceName returns the name of the availability set.
func (s *AvailabilitySetSpec) ResourceName() string {
	return s.Name
}

// ResourceGroupName returns the name of the resource group.
func (s *AvailabilitySetSpec) ResourceGroupName() string {
	return s.ResourceGroup
}

// OwnerResourceName is a no-op for availability sets.
func (s *AvailabilitySetSpec) OwnerResourceName() string {
	return ""
}

// Parameters returns the parameters for the availability set.
func (s *AvailabilitySetSpec) Parameters(ctx context.Context, existing interface{}) (params interface{}, err error) {
	if existing != nil {
		if _, ok := existing.(armcompute.AvailabilitySet); !ok {
			return nil, errors.Errorf("%T is not an armcompute.AvailabilitySet", existing)
		}
		upToDate, err := azure.IsUpToDate(ctx, ServiceName, s, existing)
		if err != nil {
			return nil, err
		}
		if upToDate {
			return nil, nil
		}
	}

	asParams := armcompute.AvailabilitySet{
		Location: ptr.To(s.Location),
		Tags:     converters.TagsToMap(s.AdditionalTags),
		Properties: &armcompute.AvailabilitySetProperties{
			PlatformFaultDomainCount:  s.Config.PlatformFaultDomainCount,
			PlatformUpdateDomainCount: s.Config.PlatformUpdateDomainCount,
		},
	}
	if s.Config.SKU != nil && s.Config.SKU.Name != "" {
		asParams.SKU = &armcompute.SKU{Name: ptr.To(s.Config.SKU.Name)}
	}

	return asParams, nil
}

// Detector returns the fields compared on an availability set.
func (s *AvailabilitySetSpec) Detector() drift.Detector {
	return availabilitySetDetector
}

// DriftValues returns the configured and the observed values of an availability set.
func (s *AvailabilitySetSpec) DriftValues(existing interface{}) (desired, observed map[string]interface{}, err error) {
	availabilitySet, ok := existing.(armcompute.AvailabilitySet)
	if !ok {
		return nil, nil, errors.Errorf("%T is not an armcompute.AvailabilitySet", existing)
	}
	desired, err = converters.DesiredValue(s.Config, s.Location, s.AdditionalTags)
	if err != nil {
		return nil, nil, err
	}
	observed, err = converters.ResourceToValue(availabilitySet)
	if err != nil {
		return nil, nil, err
	}
	return desired, observed, nil
}
