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

// ResourceGroupConfig is the resource_config of a resource group node. Resource
// groups carry nothing beyond the node's location and tags.
type ResourceGroupConfig struct {
	// ManagedBy is the ID of the resource that manages this resource group.
	ManagedBy string `json:"managed_by,omitempty" yaml:"managed_by,omitempty"`
}

// VirtualNetworkConfig is the resource_config of a virtual network node.
type VirtualNetworkConfig struct {
	AddressSpace *AddressSpace `json:"address_space,omitempty" yaml:"address_space,omitempty"`
	DhcpOptions  *DhcpOptions  `json:"dhcp_options,omitempty" yaml:"dhcp_options,omitempty"`
}

// AddressSpace is the set of CIDR blocks of a virtual network.
type AddressSpace struct {
	AddressPrefixes []string `json:"address_prefixes,omitempty" yaml:"address_prefixes,omitempty"`
}

// DhcpOptions holds the DNS servers handed out by a virtual network.
type DhcpOptions struct {
	DNSServers []string `json:"dns_servers,omitempty" yaml:"dns_servers,omitempty"`
}

// SubnetConfig is the resource_config of a subnet node.
type SubnetConfig struct {
	// VirtualNetworkName is the virtual network the subnet belongs to, in the node's resource group.
	VirtualNetworkName string `json:"-" yaml:"virtual_network_name"`

	AddressPrefix   string   `json:"address_prefix,omitempty" yaml:"address_prefix,omitempty"`
	AddressPrefixes []string `json:"address_prefixes,omitempty" yaml:"address_prefixes,omitempty"`

	NetworkSecurityGroup *SubResource `json:"network_security_group,omitempty" yaml:"network_security_group,omitempty"`
	// NetworkSecurityGroupName names a security group in the node's resource group; it resolves to NetworkSecurityGroup.
	NetworkSecurityGroupName string `json:"-" yaml:"network_security_group_name,omitempty"`

	RouteTable *SubResource `json:"route_table,omitempty" yaml:"route_table,omitempty"`
	// RouteTableName names a route table in the node's resource group; it resolves to RouteTable.
	RouteTableName string `json:"-" yaml:"route_table_name,omitempty"`
}

// NetworkInterfaceConfig is the resource_config of a network interface node.
type NetworkInterfaceConfig struct {
	IPConfigurations            []IPConfiguration `json:"ip_configurations,omitempty" yaml:"ip_configurations,omitempty"`
	EnableAcceleratedNetworking *bool             `json:"enable_accelerated_networking,omitempty" yaml:"enable_accelerated_networking,omitempty"`
	EnableIPForwarding          *bool             `json:"enable_ip_forwarding,omitempty" yaml:"enable_ip_forwarding,omitempty"`

	NetworkSecurityGroup *SubResource `json:"network_security_group,omitempty" yaml:"network_security_group,omitempty"`
	// NetworkSecurityGroupName names a security group in the node's resource group; it resolves to NetworkSecurityGroup.
	NetworkSecurityGroupName string `json:"-" yaml:"network_security_group_name,omitempty"`

	DNSSettings *DNSSettings `json:"dns_settings,omitempty" yaml:"dns_settings,omitempty"`
}

// IPConfiguration is one IP configuration of a network interface.
type IPConfiguration struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	Subnet *SubResource `json:"subnet,omitempty" yaml:"subnet,omitempty"`
	// SubnetName and VirtualNetworkName name a subnet in the node's resource group; they resolve to Subnet.
	SubnetName         string `json:"-" yaml:"subnet_name,omitempty"`
	VirtualNetworkName string `json:"-" yaml:"virtual_network_name,omitempty"`

	PrivateIPAllocationMethod string       `json:"private_ip_allocation_method,omitempty" yaml:"private_ip_allocation_method,omitempty"`
	PrivateIPAddress          string       `json:"private_ip_address,omitempty" yaml:"private_ip_address,omitempty"`
	PublicIPAddress           *SubResource `json:"public_ip_address,omitempty" yaml:"public_ip_address,omitempty"`
	Primary                   *bool        `json:"primary,omitempty" yaml:"primary,omitempty"`
}

// DNSSettings holds the DNS servers of a network interface.
type DNSSettings struct {
	DNSServers           []string `json:"dns_servers,omitempty" yaml:"dns_servers,omitempty"`
	InternalDNSNameLabel string   `json:"internal_dns_name_label,omitempty" yaml:"internal_dns_name_label,omitempty"`
}
