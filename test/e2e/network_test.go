//go:build e2e
// +build e2e

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

package e2e

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/utils/ptr"
)

var _ = Describe("Network lifecycle", Ordered, func() {
	var (
		ctx          context.Context
		cancel       context.CancelFunc
		groupName    string
		group        node
		vnet         node
		subnet       node
		vnetsClient  *armnetwork.VirtualNetworksClient
		groupsClient *armresources.ResourceGroupsClient
	)

	BeforeAll(func() {
		ctx, cancel = context.WithCancel(context.Background())

		var err error
		vnetsClient, err = armnetwork.NewVirtualNetworksClient(subscriptionID, cred, nil)
		Expect(err).NotTo(HaveOccurred())
		groupsClient, err = armresources.NewResourceGroupsClient(subscriptionID, cred, nil)
		Expect(err).NotTo(HaveOccurred())

		groupName = randomName("azure-plugin-e2e")
		group = newNode("resourcegroup", groupName, fmt.Sprintf(`
kind: resourcegroup
name: %s
tags:
  suite: e2e
`, groupName))
		vnet = newNode("virtualnetwork", "vnet-1", fmt.Sprintf(`
kind: virtualnetwork
name: vnet-1
resource_group: %s
tags:
  suite: e2e
resource_config:
  address_space:
    address_prefixes:
    - 10.10.0.0/16
`, groupName))
		subnet = newNode("subnet", "subnet-1", fmt.Sprintf(`
kind: subnet
name: subnet-1
resource_group: %s
resource_config:
  virtual_network_name: vnet-1
  address_prefix: 10.10.1.0/24
`, groupName))
	})

	AfterAll(func() {
		defer cancel()
		By("deleting the resource group")
		group.runToCompletion(ctx, "delete")
	})

	It("creates the resource group, virtual network and subnet", func() {
		result := group.runToCompletion(ctx, "create")
		Expect(result.ResourceID).To(HaveSuffix("/resourceGroups/" + groupName))

		result = vnet.runToCompletion(ctx, "create")
		Expect(result.ResourceID).To(HaveSuffix("/virtualNetworks/vnet-1"))

		result = subnet.runToCompletion(ctx, "create")
		Expect(result.ResourceID).To(HaveSuffix("/subnets/subnet-1"))

		_, err := groupsClient.Get(ctx, groupName, nil)
		Expect(err).NotTo(HaveOccurred())
	})

	It("reports no drift right after creation", func() {
		result := vnet.runToCompletion(ctx, "diff")
		Expect(result.Drift).NotTo(BeNil())
		Expect(result.Drift.Exists).To(BeTrue())
		Expect(result.Drift.Drifted).To(BeFalse(), "unexpected differences %v", result.Drift.Differences)
	})

	It("detects and repairs a change made outside of the plugin", func() {
		By("adding an address prefix to the virtual network")
		existing, err := vnetsClient.Get(ctx, groupName, "vnet-1", nil)
		Expect(err).NotTo(HaveOccurred())
		changed := existing.VirtualNetwork
		changed.Properties.AddressSpace.AddressPrefixes = append(changed.Properties.AddressSpace.AddressPrefixes, ptr.To("10.20.0.0/16"))
		poller, err := vnetsClient.BeginCreateOrUpdate(ctx, groupName, "vnet-1", changed, nil)
		Expect(err).NotTo(HaveOccurred())
		_, err = poller.PollUntilDone(ctx, nil)
		Expect(err).NotTo(HaveOccurred())

		By("running diff")
		result := vnet.runToCompletion(ctx, "diff")
		Expect(result.Drift.Drifted).To(BeTrue())
		Expect(result.Drift.Differences).To(ContainElement(HavePrefix("address_space")))
		Expect(result.Drift.Patch).NotTo(BeEmpty())

		By("running create again")
		vnet.runToCompletion(ctx, "create")
		result = vnet.runToCompletion(ctx, "diff")
		Expect(result.Drift.Drifted).To(BeFalse(), "unexpected differences %v", result.Drift.Differences)

		By("checking the subnet survived the update")
		updated, err := vnetsClient.Get(ctx, groupName, "vnet-1", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Properties.Subnets).To(HaveLen(1))
	})

	It("deletes the subnet and the virtual network", func() {
		subnet.runToCompletion(ctx, "delete")
		vnet.runToCompletion(ctx, "delete")

		result := vnet.runToCompletion(ctx, "diff")
		Expect(result.Drift.Exists).To(BeFalse())
	})
})
