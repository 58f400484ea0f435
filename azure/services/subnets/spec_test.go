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
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	. "github.com/onsi/gomega"
	"k8s.io/utils/ptr"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
)

func TestParameters(t *testing.T) {
	tests := []struct {
		name     string
		spec     SubnetSpec
		existing interface{}
		expect   func(g *WithT, result interface{})
	}{
		{
			name:     "subnet does not exist",
			spec:     fakeSubnetSpec,
			existing: nil,
			expect: func(g *WithT, result interface{}) {
				g.Expect(result).To(Equal(armnetwork.Subnet{
					Properties: &armnetwork.SubnetPropertiesFormat{
						AddressPrefix:        ptr.To("10.0.0.0/24"),
						NetworkSecurityGroup: &armnetwork.SecurityGroup{ID: ptr.To(nsgID)},
					},
				}))
			},
		},
		{
			name: "subnet with several prefixes and a route table",
			spec: SubnetSpec{
				Name:          "my-subnet",
				ResourceGroup: "my-rg",
				VNetName:      "my-vnet",
				Config: infrav1.SubnetConfig{
					AddressPrefixes: []string{"10.0.0.0/24", "fd00::/64"},
					RouteTable:      &infrav1.SubResource{ID: "/subscriptions/123/resourceGroups/my-rg/providers/Microsoft.Network/routeTables/rt"},
				},
			},
			existing: nil,
			expect: func(g *WithT, result interface{}) {
				subnet, ok := result.(armnetwork.Subnet)
				g.Expect(ok).To(BeTrue())
				g.Expect(subnet.Properties.AddressPrefix).To(BeNil())
				g.Expect(subnet.Properties.AddressPrefixes).To(Equal([]*string{ptr.To("10.0.0.0/24"), ptr.To("fd00::/64")}))
				g.Expect(subnet.Properties.RouteTable.ID).To(Equal(ptr.To("/subscriptions/123/resourceGroups/my-rg/providers/Microsoft.Network/routeTables/rt")))
				g.Expect(subnet.Properties.NetworkSecurityGroup).To(BeNil())
			},
		},
		{
			name:     "subnet exists and matches its configuration",
			spec:     fakeSubnetSpec,
			existing: sampleSubnet,
			expect: func(g *WithT, result interface{}) {
				g.Expect(result).To(BeNil())
			},
		},
		{
			name: "subnet security group id differs only in case",
			spec: fakeSubnetSpec,
			existing: armnetwork.Subnet{
				Properties: &armnetwork.SubnetPropertiesFormat{
					AddressPrefix:        ptr.To("10.0.0.0/24"),
					NetworkSecurityGroup: &armnetwork.SecurityGroup{ID: ptr.To("/subscriptions/123/resourceGroups/MY-RG/providers/Microsoft.Network/networkSecurityGroups/my-nsg")},
				},
			},
			expect: func(g *WithT, result interface{}) {
				g.Expect(result).To(BeNil())
			},
		},
		{
			name: "subnet exists with a different prefix",
			spec: fakeSubnetSpec,
			existing: armnetwork.Subnet{
				Properties: &armnetwork.SubnetPropertiesFormat{
					AddressPrefix:        ptr.To("10.0.9.0/24"),
					NetworkSecurityGroup: &armnetwork.SecurityGroup{ID: ptr.To(nsgID)},
				},
			},
			expect: func(g *WithT, result interface{}) {
				subnet, ok := result.(armnetwork.Subnet)
				g.Expect(ok).To(BeTrue())
				g.Expect(subnet.Properties.AddressPrefix).To(Equal(ptr.To("10.0.0.0/24")))
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := NewWithT(t)
			result, err := test.spec.Parameters(t.Context(), test.existing)
			g.Expect(err).NotTo(HaveOccurred())
			test.expect(g, result)
		})
	}
}

func TestSubnetSpecNames(t *testing.T) {
	g := NewWithT(t)
	g.Expect(fakeSubnetSpec.ResourceName()).To(Equal("my-subnet"))
	g.Expect(fakeSubnetSpec.OwnerResourceName()).To(Equal("my-vnet"))
	g.Expect(fakeSubnetSpec.ResourceGroupName()).To(Equal("my-rg"))

	_, _, err := fakeSubnetSpec.DriftValues(armnetwork.VirtualNetwork{})
	g.Expect(err).To(MatchError("armnetwork.VirtualNetwork is not an armnetwork.Subnet"))
}

func TestRenderedSubnetIsUpToDate(t *testing.T) {
	g := NewWithT(t)

	spec := SubnetSpec{
		Name:          "subnet-1",
		ResourceGroup: "my-rg",
		VNetName:      "vnet-1",
		Config: infrav1.SubnetConfig{
			AddressPrefix:        "10.0.0.0/24",
			AddressPrefixes:      []string{"10.0.0.0/24", "10.0.1.0/24"},
			NetworkSecurityGroup: &infrav1.SubResource{ID: "/subscriptions/123/resourceGroups/my-rg/providers/Microsoft.Network/networkSecurityGroups/nsg-1"},
			RouteTable:           &infrav1.SubResource{ID: "/subscriptions/123/resourceGroups/my-rg/providers/Microsoft.Network/routeTables/rt-1"},
		},
	}

	rendered, err := spec.Parameters(t.Context(), nil)
	g.Expect(err).NotTo(HaveOccurred())
	diffs, err := azure.Differences(t.Context(), &spec, rendered)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(diffs).To(BeEmpty())

	result, err := spec.Parameters(t.Context(), rendered)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(result).To(BeNil())
}
