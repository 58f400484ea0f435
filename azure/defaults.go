/*
Copyright 2018 The Kubernetes Authors.

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

package azure

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/pkg/errors"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/tele"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/version"
)

const (
	// PublicCloudName is the name of the Azure public cloud.
	PublicCloudName = infrav1.AzurePublicCloud
	// ChinaCloudName is the name of the Azure China cloud.
	ChinaCloudName = infrav1.AzureChinaCloud
	// USGovernmentCloudName is the name of the Azure US Government cloud.
	USGovernmentCloudName = infrav1.AzureUSGovernmentCloud
)

const (
	// ManagedByTagKey is the tag the plugin puts on every resource it creates.
	ManagedByTagKey = "managed-by"
	// ManagedByTagValue is the value of ManagedByTagKey.
	ManagedByTagValue = "cloudify"
)

// ResourceGroupID returns the azure resource ID for a given resource group.
func ResourceGroupID(subscriptionID, resourceGroup string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s", subscriptionID, resourceGroup)
}

// VMID returns the azure resource ID for a given VM.
func VMID(subscriptionID, resourceGroup, vmName string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Compute/virtualMachines/%s", subscriptionID, resourceGroup, vmName)
}

// VNetID returns the azure resource ID for a given VNet.
func VNetID(subscriptionID, resourceGroup, vnetName string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Network/virtualNetworks/%s", subscriptionID, resourceGroup, vnetName)
}

// SubnetID returns the azure resource ID for a given subnet.
func SubnetID(subscriptionID, resourceGroup, vnetName, subnetName string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Network/virtualNetworks/%s/subnets/%s", subscriptionID, resourceGroup, vnetName, subnetName)
}

// RouteTableID returns the azure resource ID for a given route table.
func RouteTableID(subscriptionID, resourceGroup, routeTableName string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Network/routeTables/%s", subscriptionID, resourceGroup, routeTableName)
}

// SecurityGroupID returns the azure resource ID for a given security group.
func SecurityGroupID(subscriptionID, resourceGroup, nsgName string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Network/networkSecurityGroups/%s", subscriptionID, resourceGroup, nsgName)
}

// NetworkInterfaceID returns the azure resource ID for a given network interface.
func NetworkInterfaceID(subscriptionID, resourceGroup, nicName string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Network/networkInterfaces/%s", subscriptionID, resourceGroup, nicName)
}

// AvailabilitySetID returns the azure resource ID for a given availability set.
func AvailabilitySetID(subscriptionID, resourceGroup, availabilitySetName string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Compute/availabilitySets/%s", subscriptionID, resourceGroup, availabilitySetName)
}

// DiskID returns the azure resource ID for a given managed disk.
func DiskID(subscriptionID, resourceGroup, diskName string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Compute/disks/%s", subscriptionID, resourceGroup, diskName)
}

// ParseDiskID returns the resource group and name of a managed disk from its ID.
func ParseDiskID(id string) (resourceGroup, name string, err error) {
	parsed, err := arm.ParseResourceID(id)
	if err != nil {
		return "", "", errors.Wrapf(err, "invalid disk ID %q", id)
	}
	if !strings.EqualFold(parsed.ResourceType.String(), "Microsoft.Compute/disks") {
		return "", "", errors.Errorf("%q is not a managed disk ID", id)
	}
	return parsed.ResourceGroupName, parsed.Name, nil
}

// UserAgent specifies a string to append to the agent identifier.
func UserAgent() string {
	return fmt.Sprintf("cloudify-azure-plugin/%s", version.Get())
}

var requestPolicies []policy.Policy

// SetRequestPolicies sets policies run on every request of the ARM clients
// created afterwards, after the plugin's own policies.
func SetRequestPolicies(policies ...policy.Policy) {
	requestPolicies = policies
}

// ARMClientOptions returns default ARM client options for the plugin's SDK v2 requests.
func ARMClientOptions(azureEnvironment string, extraPolicies ...policy.Policy) (*arm.ClientOptions, error) {
	opts := &arm.ClientOptions{}

	switch azureEnvironment {
	case PublicCloudName:
		opts.Cloud = cloud.AzurePublic
	case ChinaCloudName:
		opts.Cloud = cloud.AzureChina
	case USGovernmentCloudName:
		opts.Cloud = cloud.AzureGovernment
	case "":
		// No cloud name provided, so leave at defaults.
	default:
		return nil, fmt.Errorf("invalid cloud name %q", azureEnvironment)
	}
	opts.PerCallPolicies = []policy.Policy{
		correlationIDPolicy{},
		userAgentPolicy{},
	}
	opts.PerCallPolicies = append(opts.PerCallPolicies, requestPolicies...)
	opts.PerCallPolicies = append(opts.PerCallPolicies, extraPolicies...)
	// The retryable transport retries connection failures and retryable status codes.
	opts.Retry.MaxRetries = -1 // Less than zero means one try and no retries.
	opts.Transport = newRetryableTransport()

	return opts, nil
}

// correlationIDPolicy adds the "x-ms-correlation-request-id" header to requests.
// It implements the policy.Policy interface.
type correlationIDPolicy struct{}

// Do adds a correlation ID header to the request, if one is found in the context.
func (p correlationIDPolicy) Do(req *policy.Request) (*http.Response, error) {
	if corrID, ok := tele.CorrIDFromCtx(req.Raw().Context()); ok {
		req.Raw().Header.Set(string(tele.CorrIDKeyVal), string(corrID))
	}
	return req.Next()
}

// userAgentPolicy extends the "User-Agent" header on requests.
// It implements the policy.Policy interface.
type userAgentPolicy struct{}

// Do extends the "User-Agent" header of a request by appending the plugin's user agent.
func (p userAgentPolicy) Do(req *policy.Request) (*http.Response, error) {
	req.Raw().Header.Set("User-Agent", req.Raw().UserAgent()+" "+UserAgent())
	return req.Next()
}
