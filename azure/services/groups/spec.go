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

package groups

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/pkg/errors"
	"k8s.io/utils/ptr"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/converters"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/drift"
)

// GroupSpec defines the specification for a Resource Group.
type GroupSpec struct {
	Name           string
	Location       string
	ManagedBy      string
	AdditionalTags infrav1.Tags
}

var groupDetector = drift.Detector{
	FlatFields: []string{"location", "tags", "managed_by"},
}

// ResourceName returns the name of the group.
func (s *GroupSpec) ResourceName() string {
	return s.Name
}

// ResourceGroupName returns the name of the group.
// Note that it is the same as the resource name in this case.
func (s *GroupSpec) ResourceGroupName() string {
	return s.Name
}

// OwnerResourceName is a no-op for groups.
func (s *GroupSpec) OwnerResourceName() string {
	return "" // not applicable
}

// Parameters returns the parameters for the group.
func (s *GroupSpec) Parameters(ctx context.Context, existing interface{}) (params interface{}, err error) {
	if existing != nil {
		upToDate, err := azure.IsUpToDate(ctx, ServiceName, s, existing)
		if err != nil {
			return nil, err
		}
		if upToDate {
			return nil, nil
		}
	}

	group := armresources.ResourceGroup{
		Location: ptr.To(s.Location),
		Tags:     converters.TagsToMap(s.AdditionalTags),
	}
	if s.ManagedBy != "" {
		group.ManagedBy = ptr.To(s.ManagedBy)
	}
	return group, nil
}

// Detector returns the fields compared on a resource group.
func (s *GroupSpec) Detector() drift.Detector {
	return groupDetector
}

// DriftValues returns the configured and the observed values of a resource group.
func (s *GroupSpec) DriftValues(existing interface{}) (desired, observed map[string]interface{}, err error) {
	group, ok := existing.(armresources.ResourceGroup)
	if !ok {
		return nil, nil, errors.Errorf("%T is not an armresources.ResourceGroup", existing)
	}
	desired = map[string]interface{}{
		"location": s.Location,
		"tags":     map[string]string(s.AdditionalTags),
	}
	if s.ManagedBy != "" {
		desired["managed_by"] = s.ManagedBy
	}
	observed, err = converters.ResourceToValue(group)
	if err != nil {
		return nil, nil, err
	}
	return desired, observed, nil
}
