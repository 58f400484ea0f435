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

package networkinterfaces

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

// NICSpec defines the specification for a Network Interface.
type NICSpec struct {
	Name           string
	ResourceGroup  string
	Location       string
	AdditionalTags infrav1.Tags
	Config         infrav1.NetworkInterfaceConfig
}

var nicDetector = drift.Detector{
	FlatFields:   []string{"location", "tags", "enable_accelerated_networking", "enable_ip_forwarding", "ip_configurations"},
	NestedFields: []string{"network_security_group", "dns_settings"},
}

// ResourceName returns the name of the network interface.
func (s *NICSpec) ResourceName() string {
	return s.Name
}

// ResourceGroupName returns the name of the resource group.
func (s *NICSpec) ResourceGroupName() string {
	return s.ResourceGroup
}

// OwnerResourceName is a no-op for network interfaces.
func (s *NICSpec) OwnerResourceName() string {
	return ""
}

// Parameters returns the parameters for the network interface.
func (s *NICSpec) Parameters(ctx context.Context, existing interface{}) (parameters interface{}, err error) {
	if existing != nil {
		if _, ok := existing.(armnetwork.Interface); !ok {
			return nil, errors.Errorf("%T is not an armnetwork.Interface", existing)
		}
		upToDate, err := azure.IsUpToDate(ctx, ServiceName, s, existing)
		if err != nil {
			return nil, err
		}
		if upToDate {
			return nil, nil
		}
	}

	ipConfigurations := make([]*armnetwork.InterfaceIPConfiguration, 0, len(s.Config.IPConfigurations))
	for _, c := range s.Config.IPConfigurations {
		ipConfigurations = append(ipConfigurations, ipConfiguration(c))
	}

	nic := armnetwork.Interface{
		Location: ptr.To(s.Location),
		Tags:     converters.TagsToMap(s.AdditionalTags),
		Properties: &armnetwork.InterfacePropertiesFormat{
			IPConfigurations:            ipConfigurations,
			EnableAcceleratedNetworking: s.Config.EnableAcceleratedNetworking,
			EnableIPForwarding:          s.Config.EnableIPForwarding,
		},
	}
	if nsg := s.Config.NetworkSecurityGroup; nsg != nil && nsg.ID != "" {
		nic.Properties.NetworkSecurityGroup = &armnetwork.SecurityGroup{ID: ptr.To(nsg.ID)}
	}
	if dns := s.Config.DNSSettings; dns != nil {
		nic.Properties.DNSSettings = &armnetwork.InterfaceDNSSettings{
			DNSServers: to.SliceOfPtrs(dns.DNSServers...),
		}
		if dns.InternalDNSNameLabel != "" {
			nic.Properties.DNSSettings.InternalDNSNameLabel = ptr.To(dns.InternalDNSNameLabel)
		}
	}

	return nic, nil
}

func ipConfiguration(c infrav1.IPConfiguration) *armnetwork.InterfaceIPConfiguration {
	props := &armnetwork.InterfaceIPConfigurationPropertiesFormat{
		Primary: c.Primary,
	}
	if c.Subnet != nil && c.Subnet.ID != "" {
		props.Subnet = &armnetwork.Subnet{ID: ptr.To(c.Subnet.ID)}
	}
	if c.PrivateIPAllocationMethod != "" {
		props.PrivateIPAllocationMethod = ptr.To(armnetwork.IPAllocationMethod(c.PrivateIPAllocationMethod))
	}
	if c.PrivateIPAddress != "" {
		props.PrivateIPAddress = ptr.To(c.PrivateIPAddress)
	}
	if c.PublicIPAddress != nil && c.PublicIPAddress.ID != "" {
		props.PublicIPAddress = &armnetwork.PublicIPAddress{ID: ptr.To(c.PublicIPAddress.ID)}
	}
	return &armnetwork.InterfaceIPConfiguration{
		Name:       ptr.To(c.Name),
		Properties: props,
	}
}

// Detector returns the fields compared on a network interface.
func (s *NICSpec) Detector() drift.Detector {
	return nicDetector
}

// DriftValues returns the configured and the observed values of a network interface.
func (s *NICSpec) DriftValues(existing interface{}) (desired, observed map[string]interface{}, err error) {
	nic, ok := existing.(armnetwork.Interface)
	if !ok {
		return nil, nil, errors.Errorf("%T is not an armnetwork.Interface", existing)
	}
	desired, err = converters.DesiredValue(s.Config, s.Location, s.AdditionalTags)
	if err != nil {
		return nil, nil, err
	}
	observed, err = converters.ResourceToValue(nic)
	if err != nil {
		return nil, nil, err
	}
	return desired, converters.AlignSequences(observed, desired), nil
}

// PrivateIPAddress returns the private address of the primary IP configuration
// of nic, or of its first one when none is marked primary.
func PrivateIPAddress(nic armnetwork.Interface) string {
	if nic.Properties == nil || len(nic.Properties.IPConfigurations) == 0 {
		return ""
	}
	chosen := nic.Properties.IPConfigurations[0]
	for _, c := range nic.Properties.IPConfigurations {
		if c != nil && c.Properties != nil && ptr.Deref(c.Properties.Primary, false) {
			chosen = c
			break
		}
	}
	if chosen == nil || chosen.Properties == nil {
		return ""
	}
	return ptr.Deref(chosen.Properties.PrivateIPAddress, "")
}
