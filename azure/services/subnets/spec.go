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

package subnets

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

// SubnetSpec defines the specification for a Subnet.
type SubnetSpec struct {
	Name          string
	ResourceGroup string
	VNetName      string
	Config        infrav1.SubnetConfig
}

var subnetDetector = drift.Detector{
	FlatFields:   []string{"address_prefix", "address_prefixes"},
	NestedFields: []string{"network_security_group", "route_table"},
}

// ResourceName returns the name of the subnet.
func (s *SubnetSpec) ResourceName() string {
	return s.Name
}

// ResourceGroupName returns the name of the resource group of the vnet that owns the subnet.
func (s *SubnetSpec) ResourceGroupName() string {
	return s.ResourceGroup
}

// OwnerResourceName returns the name of the vnet that owns the subnet.
func (s *SubnetSpec) OwnerResourceName() string {
	return s.VNetName
}

// Parameters returns the parameters for the subnet.
func (s *SubnetSpec) Parameters(ctx context.Context, existing interface{}) (parameters interface{}, err error) {
	if existing != nil {
		if _, ok := existing.(armnetwork.Subnet); !ok {
			return nil, errors.Errorf("%T is not an armnetwork.Subnet", existing)
		}
		upToDate, err := azure.IsUpToDate(ctx, ServiceName, s, existing)
		if err != nil {
			return nil, err
		}
		if upToDate {
			return nil, nil
		}
	}

	subnet := armnetwork.Subnet{
		Properties: &armnetwork.SubnetPropertiesFormat{},
	}
	if s.Config.AddressPrefix != "" {
		subnet.Properties.AddressPrefix = ptr.To(s.Config.AddressPrefix)
	}
	if len(s.Config.AddressPrefixes) > 0 {
		subnet.Properties.AddressPrefixes = to.SliceOfPtrs(s.Config.AddressPrefixes...)
	}
	if s.Config.NetworkSecurityGroup != nil && s.Config.NetworkSecurityGroup.ID != "" {
		subnet.Properties.NetworkSecurityGroup = &armnetwork.SecurityGroup{
			ID: ptr.To(s.Config.NetworkSecurityGroup.ID),
		}
	}
	if s.Config.RouteTable != nil && s.Config.RouteTable.ID != "" {
		subnet.Properties.RouteTable = &armnetwork.RouteTable{
			ID: ptr.To(s.Config.RouteTable.ID),
		}
	}

	return subnet, nil
}

// Detector returns the fields compared on a subnet.
func (s *SubnetSpec) Detector() drift.Detector {
	return subnetDetector
}

// DriftValues returns the configured and the observed values of a subnet.
func (s *SubnetSpec) DriftValues(existing interface{}) (desired, observed map[string]interface{}, err error) {
	subnet, ok := existing.(armnetwork.Subnet)
	if !ok {
		return nil, nil, errors.Errorf("%T is not an armnetwork.Subnet", existing)
	}
	desired, err = converters.ConfigToValue(s.Config)
	if err != nil {
		return nil, nil, err
	}
	observed, err = converters.ResourceToValue(subnet)
	if err != nil {
		return nil, nil, err
	}
	return desired, converters.AlignSequences(observed, desired), nil
}
