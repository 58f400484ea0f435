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
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	"github.com/asaskevich/govalidator"
	"golang.org/x/crypto/ssh"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

const (
	// maxResourceNameLength is the longest name shared by every supported kind.
	maxResourceNameLength = 64
	// maxResourceGroupNameLength is the longest resource group name Azure accepts.
	maxResourceGroupNameLength = 90
)

var (
	resourceNameRegex      = regexp.MustCompile(`^[-\w\._]+$`)
	resourceGroupNameRegex = regexp.MustCompile(`^[-\w\._\(\)]+$`)
)

// ValidateNode validates the kind independent properties of a node.
func ValidateNode(node *Node) field.ErrorList {
	allErrs := field.ErrorList{}

	if _, err := NewResourceConfig(node.Kind); err != nil {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("kind"), node.Kind, nodeKindStrings()))
	}
	allErrs = append(allErrs, validateResourceName(node.Name, field.NewPath("name"))...)
	if node.Kind != ResourceGroupKind {
		allErrs = append(allErrs, validateResourceGroupName(node.ResourceGroup, field.NewPath("resource_group"))...)
	}
	if node.Location == "" && !node.UseExternalResource && node.Kind != SubnetKind {
		allErrs = append(allErrs, field.Required(field.NewPath("location"), "location must be set on the node or in the provider configuration"))
	}
	for k := range node.Tags {
		if len(k) > 512 {
			allErrs = append(allErrs, field.TooLong(field.NewPath("tags").Key(k[:16]), k, 512))
		}
	}

	return allErrs
}

// ValidateProviderConfig validates the Azure account settings.
func ValidateProviderConfig(cfg *ProviderConfig) field.ErrorList {
	allErrs := field.ErrorList{}

	if !govalidator.IsUUID(cfg.SubscriptionID) {
		allErrs = append(allErrs, field.Invalid(field.NewPath("subscription_id"), cfg.SubscriptionID, "must be a UUID"))
	}
	if cfg.TenantID != "" && !govalidator.IsUUID(cfg.TenantID) {
		allErrs = append(allErrs, field.Invalid(field.NewPath("tenant_id"), cfg.TenantID, "must be a UUID"))
	}
	if cfg.ClientID != "" && !govalidator.IsUUID(cfg.ClientID) {
		allErrs = append(allErrs, field.Invalid(field.NewPath("client_id"), cfg.ClientID, "must be a UUID"))
	}
	if cfg.ClientSecret != "" && (cfg.TenantID == "" || cfg.ClientID == "") {
		allErrs = append(allErrs, field.Required(field.NewPath("tenant_id"), "tenant_id and client_id are required with client_secret"))
	}
	if cfg.ClientSecret != "" && cfg.FederatedTokenFile != "" {
		allErrs = append(allErrs, field.Forbidden(field.NewPath("federated_token_file"), "cannot be combined with client_secret"))
	}
	switch cfg.CloudEnvironment {
	case "", AzurePublicCloud, AzureChinaCloud, AzureUSGovernmentCloud:
	default:
		allErrs = append(allErrs, field.NotSupported(field.NewPath("cloud_environment"), cfg.CloudEnvironment,
			[]string{AzurePublicCloud, AzureChinaCloud, AzureUSGovernmentCloud}))
	}

	return allErrs
}

// Validate validates a resource group configuration.
func (c *ResourceGroupConfig) Validate(_ *Node) error {
	return nil
}

// Validate validates a virtual network configuration.
func (c *VirtualNetworkConfig) Validate(node *Node) error {
	allErrs := field.ErrorList{}
	fldPath := field.NewPath("resource_config")

	if node.UseExternalResource {
		return nil
	}
	if c.AddressSpace == nil || len(c.AddressSpace.AddressPrefixes) == 0 {
		allErrs = append(allErrs, field.Required(fldPath.Child("address_space", "address_prefixes"), "at least one address prefix is required"))
	} else {
		allErrs = append(allErrs, validateCIDRs(c.AddressSpace.AddressPrefixes, fldPath.Child("address_space", "address_prefixes"))...)
	}
	if c.DhcpOptions != nil {
		for i, server := range c.DhcpOptions.DNSServers {
			if !govalidator.IsIP(server) {
				allErrs = append(allErrs, field.Invalid(fldPath.Child("dhcp_options", "dns_servers").Index(i), server, "must be an IP address"))
			}
		}
	}

	return allErrs.ToAggregate()
}

// Validate validates a subnet configuration.
func (c *SubnetConfig) Validate(node *Node) error {
	allErrs := field.ErrorList{}
	fldPath := field.NewPath("resource_config")

	allErrs = append(allErrs, validateResourceName(c.VirtualNetworkName, fldPath.Child("virtual_network_name"))...)
	if node.UseExternalResource {
		return allErrs.ToAggregate()
	}
	if c.AddressPrefix == "" && len(c.AddressPrefixes) == 0 {
		allErrs = append(allErrs, field.Required(fldPath.Child("address_prefix"), "one of address_prefix or address_prefixes is required"))
	}
	if c.AddressPrefix != "" {
		allErrs = append(allErrs, validateCIDRs([]string{c.AddressPrefix}, fldPath.Child("address_prefix"))...)
	}
	allErrs = append(allErrs, validateCIDRs(c.AddressPrefixes, fldPath.Child("address_prefixes"))...)
	allErrs = append(allErrs, validateReference(c.NetworkSecurityGroup, c.NetworkSecurityGroupName, fldPath.Child("network_security_group"))...)
	allErrs = append(allErrs, validateReference(c.RouteTable, c.RouteTableName, fldPath.Child("route_table"))...)

	return allErrs.ToAggregate()
}

// Validate validates an availability set configuration.
func (c *AvailabilitySetConfig) Validate(_ *Node) error {
	allErrs := field.ErrorList{}
	fldPath := field.NewPath("resource_config")

	if c.SKU != nil && c.SKU.Name != "" && c.SKU.Name != "Aligned" && c.SKU.Name != "Classic" {
		allErrs = append(allErrs, field.NotSupported(fldPath.Child("sku", "name"), c.SKU.Name, []string{"Aligned", "Classic"}))
	}
	if c.PlatformFaultDomainCount != nil && (*c.PlatformFaultDomainCount < 1 || *c.PlatformFaultDomainCount > 3) {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("platform_fault_domain_count"), *c.PlatformFaultDomainCount, "must be between 1 and 3"))
	}
	if c.PlatformUpdateDomainCount != nil && (*c.PlatformUpdateDomainCount < 1 || *c.PlatformUpdateDomainCount > 20) {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("platform_update_domain_count"), *c.PlatformUpdateDomainCount, "must be between 1 and 20"))
	}

	return allErrs.ToAggregate()
}

// Validate validates a managed disk configuration.
func (c *DiskConfig) Validate(node *Node) error {
	allErrs := field.ErrorList{}
	fldPath := field.NewPath("resource_config")

	if node.UseExternalResource {
		return nil
	}
	if c.SKU != nil && c.SKU.Name != "" {
		allErrs = append(allErrs, validateOneOf(c.SKU.Name, armcompute.PossibleDiskStorageAccountTypesValues(), fldPath.Child("sku", "name"))...)
	}
	createOption := ""
	if c.CreationData != nil {
		createOption = c.CreationData.CreateOption
		if createOption != "" {
			allErrs = append(allErrs, validateOneOf(createOption, armcompute.PossibleDiskCreateOptionValues(), fldPath.Child("creation_data", "create_option"))...)
		}
		if (createOption == "Copy" || createOption == "Restore") && c.CreationData.SourceResourceID == "" {
			allErrs = append(allErrs, field.Required(fldPath.Child("creation_data", "source_resource_id"), fmt.Sprintf("required with create_option %s", createOption)))
		}
	}
	if createOption == "" || createOption == "Empty" {
		if c.DiskSizeGB == nil || *c.DiskSizeGB <= 0 {
			allErrs = append(allErrs, field.Required(fldPath.Child("disk_size_gb"), "a positive size is required for an empty disk"))
		}
	}
	if len(c.Zones) > 1 {
		allErrs = append(allErrs, field.TooMany(fldPath.Child("zones"), len(c.Zones), 1))
	}

	return allErrs.ToAggregate()
}

// Validate validates a network interface configuration.
func (c *NetworkInterfaceConfig) Validate(node *Node) error {
	allErrs := field.ErrorList{}
	fldPath := field.NewPath("resource_config")

	if node.UseExternalResource {
		return nil
	}
	if len(c.IPConfigurations) == 0 {
		allErrs = append(allErrs, field.Required(fldPath.Child("ip_configurations"), "at least one IP configuration is required"))
	}
	primaries := 0
	for i, ipc := range c.IPConfigurations {
		ipPath := fldPath.Child("ip_configurations").Index(i)
		if ipc.Subnet == nil && ipc.SubnetName == "" {
			allErrs = append(allErrs, field.Required(ipPath.Child("subnet"), "a subnet id or subnet_name is required"))
		}
		if ipc.Subnet == nil && ipc.SubnetName != "" && ipc.VirtualNetworkName == "" {
			allErrs = append(allErrs, field.Required(ipPath.Child("virtual_network_name"), "required with subnet_name"))
		}
		if ipc.PrivateIPAllocationMethod != "" {
			allErrs = append(allErrs, validateOneOf(ipc.PrivateIPAllocationMethod, armnetwork.PossibleIPAllocationMethodValues(), ipPath.Child("private_ip_allocation_method"))...)
		}
		if strings.EqualFold(ipc.PrivateIPAllocationMethod, "Static") && ipc.PrivateIPAddress == "" {
			allErrs = append(allErrs, field.Required(ipPath.Child("private_ip_address"), "required with Static allocation"))
		}
		if ipc.PrivateIPAddress != "" && !govalidator.IsIP(ipc.PrivateIPAddress) {
			allErrs = append(allErrs, field.Invalid(ipPath.Child("private_ip_address"), ipc.PrivateIPAddress, "must be an IP address"))
		}
		if ipc.Primary != nil && *ipc.Primary {
			primaries++
		}
	}
	if primaries > 1 {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("ip_configurations"), primaries, "only one IP configuration can be primary"))
	}
	allErrs = append(allErrs, validateReference(c.NetworkSecurityGroup, c.NetworkSecurityGroupName, fldPath.Child("network_security_group"))...)

	return allErrs.ToAggregate()
}

// Validate validates a virtual machine configuration.
func (c *VirtualMachineConfig) Validate(node *Node) error {
	allErrs := field.ErrorList{}
	fldPath := field.NewPath("resource_config")

	if node.UseExternalResource {
		return nil
	}
	if c.HardwareProfile == nil || c.HardwareProfile.VMSize == "" {
		allErrs = append(allErrs, field.Required(fldPath.Child("hardware_profile", "vm_size"), "the VM size is required"))
	}
	if c.NetworkProfile == nil || len(c.NetworkProfile.NetworkInterfaces) == 0 {
		allErrs = append(allErrs, field.Required(fldPath.Child("network_profile", "network_interfaces"), "at least one network interface is required"))
	} else {
		for i, nic := range c.NetworkProfile.NetworkInterfaces {
			if nic.ID == "" && nic.Name == "" {
				allErrs = append(allErrs, field.Required(fldPath.Child("network_profile", "network_interfaces").Index(i), "an id or name is required"))
			}
		}
	}
	if c.StorageProfile != nil {
		allErrs = append(allErrs, validateStorageProfile(c.StorageProfile, fldPath.Child("storage_profile"))...)
	}
	if c.OSProfile != nil {
		allErrs = append(allErrs, validateOSProfile(c.OSProfile, fldPath.Child("os_profile"))...)
	} else if c.StorageProfile != nil && c.StorageProfile.ImageReference != nil {
		allErrs = append(allErrs, field.Required(fldPath.Child("os_profile"), "required when creating from an image"))
	}
	if c.Priority != "" {
		allErrs = append(allErrs, validateOneOf(c.Priority, armcompute.PossibleVirtualMachinePriorityTypesValues(), fldPath.Child("priority"))...)
	}
	if c.EvictionPolicy != "" {
		allErrs = append(allErrs, validateOneOf(c.EvictionPolicy, armcompute.PossibleVirtualMachineEvictionPolicyTypesValues(), fldPath.Child("eviction_policy"))...)
		if c.Priority != "Spot" && c.Priority != "Low" {
			allErrs = append(allErrs, field.Forbidden(fldPath.Child("eviction_policy"), "only Spot VMs have an eviction policy"))
		}
	}
	if c.BillingProfile != nil && c.BillingProfile.MaxPrice != nil {
		if c.Priority != "Spot" {
			allErrs = append(allErrs, field.Forbidden(fldPath.Child("billing_profile"), "only Spot VMs have a billing profile"))
		}
		if p := *c.BillingProfile.MaxPrice; p != -1 && p <= 0 {
			allErrs = append(allErrs, field.Invalid(fldPath.Child("billing_profile", "max_price"), p, "must be -1 or a positive price"))
		}
	}
	allErrs = append(allErrs, validateReference(c.AvailabilitySet, c.AvailabilitySetName, fldPath.Child("availability_set"))...)
	if (c.AvailabilitySet != nil || c.AvailabilitySetName != "") && len(c.Zones) > 0 {
		allErrs = append(allErrs, field.Forbidden(fldPath.Child("zones"), "a VM in an availability set cannot be pinned to a zone"))
	}

	return allErrs.ToAggregate()
}

func validateStorageProfile(s *StorageProfile, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}

	if s.ImageReference == nil && (s.OSDisk == nil || s.OSDisk.ManagedDisk == nil || s.OSDisk.ManagedDisk.ID == "") {
		allErrs = append(allErrs, field.Required(fldPath.Child("image_reference"), "an image reference or an existing OS disk id is required"))
	}
	if img := s.ImageReference; img != nil && img.ID == "" && (img.Publisher == "" || img.Offer == "" || img.SKU == "") {
		allErrs = append(allErrs, field.Required(fldPath.Child("image_reference"), "either id or publisher, offer and sku are required"))
	}
	if s.OSDisk != nil {
		allErrs = append(allErrs, validateDisk(s.OSDisk.Caching, s.OSDisk.CreateOption, s.OSDisk.ManagedDisk, s.OSDisk.DiskSizeGB, fldPath.Child("os_disk"))...)
		if s.OSDisk.OSType != "" {
			allErrs = append(allErrs, validateOneOf(s.OSDisk.OSType, armcompute.PossibleOperatingSystemTypesValues(), fldPath.Child("os_disk", "os_type"))...)
		}
		if s.OSDisk.DeleteOption != "" {
			allErrs = append(allErrs, validateOneOf(s.OSDisk.DeleteOption, armcompute.PossibleDiskDeleteOptionTypesValues(), fldPath.Child("os_disk", "delete_option"))...)
		}
	}

	luns := map[int32]struct{}{}
	for i, d := range s.DataDisks {
		diskPath := fldPath.Child("data_disks").Index(i)
		if _, ok := luns[d.Lun]; ok {
			allErrs = append(allErrs, field.Duplicate(diskPath.Child("lun"), d.Lun))
		}
		luns[d.Lun] = struct{}{}
		if d.Lun < 0 || d.Lun > 63 {
			allErrs = append(allErrs, field.Invalid(diskPath.Child("lun"), d.Lun, "must be between 0 and 63"))
		}
		allErrs = append(allErrs, validateDisk(d.Caching, d.CreateOption, d.ManagedDisk, d.DiskSizeGB, diskPath)...)
		if d.CreateOption == "Empty" && (d.DiskSizeGB == nil || *d.DiskSizeGB <= 0) {
			allErrs = append(allErrs, field.Required(diskPath.Child("disk_size_gb"), "a positive size is required for an empty disk"))
		}
		if d.DeleteOption != "" {
			allErrs = append(allErrs, validateOneOf(d.DeleteOption, armcompute.PossibleDiskDeleteOptionTypesValues(), diskPath.Child("delete_option"))...)
		}
	}

	return allErrs
}

func validateDisk(caching, createOption string, managedDisk *ManagedDiskParameters, sizeGB *int32, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}

	if caching != "" {
		allErrs = append(allErrs, validateOneOf(caching, armcompute.PossibleCachingTypesValues(), fldPath.Child("caching"))...)
	}
	if createOption != "" {
		allErrs = append(allErrs, validateOneOf(createOption, armcompute.PossibleDiskCreateOptionTypesValues(), fldPath.Child("create_option"))...)
	}
	if createOption == "Attach" && (managedDisk == nil || managedDisk.ID == "") {
		allErrs = append(allErrs, field.Required(fldPath.Child("managed_disk", "id"), "required to attach an existing disk"))
	}
	if managedDisk != nil && managedDisk.StorageAccountType != "" {
		allErrs = append(allErrs, validateOneOf(managedDisk.StorageAccountType, armcompute.PossibleStorageAccountTypesValues(), fldPath.Child("managed_disk", "storage_account_type"))...)
	}
	if sizeGB != nil && (*sizeGB <= 0 || *sizeGB > 32767) {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("disk_size_gb"), *sizeGB, "the disk size should be a value between 1 and 32767"))
	}

	return allErrs
}

func validateOSProfile(p *OSProfile, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}

	if p.AdminUsername == "" {
		allErrs = append(allErrs, field.Required(fldPath.Child("admin_username"), "the admin username is required"))
	}
	if len(p.ComputerName) > 64 {
		allErrs = append(allErrs, field.TooLong(fldPath.Child("computer_name"), p.ComputerName, 64))
	}
	if p.LinuxConfiguration != nil && p.WindowsConfiguration != nil {
		allErrs = append(allErrs, field.Forbidden(fldPath.Child("windows_configuration"), "linux_configuration and windows_configuration are mutually exclusive"))
	}
	if lc := p.LinuxConfiguration; lc != nil {
		keys := 0
		if lc.SSH != nil {
			keys = len(lc.SSH.PublicKeys)
			for i, key := range lc.SSH.PublicKeys {
				allErrs = append(allErrs, ValidateSSHKey(key.KeyData, fldPath.Child("linux_configuration", "ssh", "public_keys").Index(i).Child("key_data"))...)
			}
		}
		if lc.DisablePasswordAuthentication != nil && *lc.DisablePasswordAuthentication && keys == 0 {
			allErrs = append(allErrs, field.Required(fldPath.Child("linux_configuration", "ssh", "public_keys"), "an SSH key is required when password authentication is disabled"))
		}
	}
	if p.AdminPassword == "" && p.WindowsConfiguration != nil {
		allErrs = append(allErrs, field.Required(fldPath.Child("admin_password"), "Windows VMs require an admin password"))
	}

	return allErrs
}

// ValidateSSHKey validates an SSH public key given in authorized_keys format,
// either as is or base64 encoded.
func ValidateSSHKey(sshKey string, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}

	key := []byte(sshKey)
	if !strings.HasPrefix(strings.TrimSpace(sshKey), "ssh-") && !strings.HasPrefix(strings.TrimSpace(sshKey), "ecdsa-") {
		decoded, err := base64.StdEncoding.DecodeString(sshKey)
		if err != nil {
			allErrs = append(allErrs, field.Required(fldPath, "the SSH public key is not properly base64 encoded"))
			return allErrs
		}
		key = decoded
	}

	if _, _, _, _, err := ssh.ParseAuthorizedKey(key); err != nil {
		allErrs = append(allErrs, field.Required(fldPath, "the SSH public key is not valid"))
		return allErrs
	}

	return allErrs
}

func validateResourceName(name string, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}
	if name == "" {
		return append(allErrs, field.Required(fldPath, "a name is required"))
	}
	if len(name) > maxResourceNameLength {
		allErrs = append(allErrs, field.TooLong(fldPath, name, maxResourceNameLength))
	}
	if !resourceNameRegex.MatchString(name) {
		allErrs = append(allErrs, field.Invalid(fldPath, name, "may only contain alphanumerics, underscores, periods and hyphens"))
	}
	return allErrs
}

func validateResourceGroupName(name string, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}
	if name == "" {
		return append(allErrs, field.Required(fldPath, "a resource group is required"))
	}
	if len(name) > maxResourceGroupNameLength {
		allErrs = append(allErrs, field.TooLong(fldPath, name, maxResourceGroupNameLength))
	}
	if !resourceGroupNameRegex.MatchString(name) || strings.HasSuffix(name, ".") {
		allErrs = append(allErrs, field.Invalid(fldPath, name, "may only contain alphanumerics, underscores, parentheses, hyphens and periods (except at the end)"))
	}
	return allErrs
}

func validateCIDRs(cidrs []string, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}
	for i, cidr := range cidrs {
		if !govalidator.IsCIDR(cidr) {
			allErrs = append(allErrs, field.Invalid(fldPath.Index(i), cidr, "must be a valid CIDR"))
		}
	}
	return allErrs
}

func validateReference(ref *SubResource, name string, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}
	if ref != nil && ref.ID != "" && name != "" {
		allErrs = append(allErrs, field.Forbidden(fldPath, "set either the id or the name, not both"))
	}
	if ref != nil && ref.ID != "" && !strings.HasPrefix(strings.ToLower(ref.ID), "/subscriptions/") {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("id"), ref.ID, "must be an Azure resource ID"))
	}
	return allErrs
}

func validateOneOf[T ~string](value string, allowed []T, fldPath *field.Path) field.ErrorList {
	names := make([]string, 0, len(allowed))
	for _, a := range allowed {
		if strings.EqualFold(string(a), value) {
			return nil
		}
		names = append(names, string(a))
	}
	return field.ErrorList{field.NotSupported(fldPath, value, names)}
}

func nodeKindStrings() []string {
	kinds := make([]string, 0, len(NodeKinds))
	for _, k := range NodeKinds {
		kinds = append(kinds, string(k))
	}
	return kinds
}
