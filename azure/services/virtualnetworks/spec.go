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

package virtualnetworks

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	"github.com/pkg/errors"
	"k8s.io/utils/ptr"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/converters"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/drift"
)

// VNetSpec defines the specification for a Virtual Network.
type VNetSpec struct {
	ResourceGroup  string
	Name           string
	Location       string
	AdditionalTags infrav1.Tags
	Config         infrav1.VirtualNetworkConfig
}

var vnetDetector = drift.Detector{
	FlatFields:   []string{"location", "tags"},
	NestedFields: []string{"address_space", "dhcp_options"},
}

// ResourceName returns the name of the vnet.
func (s *VNetSpec) ResourceName() string {
	return s.Name
}

// ResourceGroupName returns the name of the resource group.
func (s *VNetSpec) ResourceGroupName() string {
	return s.ResourceGroup
}

// OwnerResourceName is a no-op for vnets.
func (s *VNetSpec) OwnerResourceName() string {
	return ""
}

// Parameters returns the parameters for the vnet.
func (s *VNetSpec) Parameters(ctx context.Context, existing interface{}) (interface{}, error) {
	vnet := armnetwork.VirtualNetwork{
		Location: ptr.To(s.Location),
		Tags:     converters.TagsToMap(s.AdditionalTags),
		Properties: &armnetwork.VirtualNetworkPropertiesFormat{
			AddressSpace: &armnetwork.AddressSpace{},
		},
	}
	if s.Config.AddressSpace != nil {
		vnet.Properties.AddressSpace.AddressPrefixes = to.SliceOfPtrs(s.Config.AddressSpace.AddressPrefixes...)
	}
	if s.Config.DhcpOptions != nil {
		vnet.Properties.DhcpOptions = &armnetwork.DhcpOptions{
			DNSServers: to.SliceOfPtrs(s.Config.DhcpOptions.DNSServers...),
		}
	}

	if existing != nil {
		existingVnet, ok := existing.(armnetwork.VirtualNetwork)
		if !ok {
			return nil, errors.Errorf("%T is not an armnetwork.VirtualNetwork", existing)
		}
		upToDate, err := azure.IsUpToDate(ctx, ServiceName, s, existing)
		if err != nil {
			return nil, err
		}
		if upToDate {
			return nil, nil
		}
		// subnets are separate nodes; a PUT without them would remove them.
		if existingVnet.Properties != nil {
			vnet.Properties.Subnets = existingVnet.Properties.Subnets
		}
	}

	return vnet, nil
}

// Detector returns the fields compared on a virtual network.
func (s *VNetSpec) Detector() drift.Detector {
	return vnetDetector
}

// DriftValues returns the configured and the observed values of a virtual network.
func (s *VNetSpec) DriftValues(existing interface{}) (desired, observed map[string]interface{}, err error) {
	vnet, ok := existing.(armnetwork.VirtualNetwork)
	if !ok {
		return nil, nil, errors.Errorf("%T is not an armnetwork.VirtualNetwork", existing)
	}
	desired, err = converters.DesiredValue(s.Config, s.Location, s.AdditionalTags)
	if err != nil {
		return nil, nil, err
	}
	observed, err = converters.ResourceToValue(vnet)
	if err != nil {
		return nil, nil, err
	}
	return desired, converters.AlignSequences(observed, desired), nil
}
