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
		spec     VNetSpec
		existing interface{}
		expect   func(g *WithT, result interface{})
	}{
		{
			name:     "vnet does not exist",
			spec:     fakeVNetSpec,
			existing: nil,
			expect: func(g *WithT, result interface{}) {
				g.Expect(result).To(Equal(armnetwork.VirtualNetwork{
					Location: ptr.To("westeurope"),
					Tags:     map[string]*string{"env": ptr.To("dev")},
					Properties: &armnetwork.VirtualNetworkPropertiesFormat{
						AddressSpace: &armnetwork.AddressSpace{
							AddressPrefixes: []*string{ptr.To("10.0.0.0/16")},
						},
					},
				}))
			},
		},
		{
			name: "vnet with dhcp options does not exist",
			spec: VNetSpec{
				ResourceGroup: "my-rg",
				Name:          "my-vnet",
				Location:      "westeurope",
				Config: infrav1.VirtualNetworkConfig{
					DhcpOptions: &infrav1.DhcpOptions{DNSServers: []string{"10.0.0.4"}},
				},
			},
			existing: nil,
			expect: func(g *WithT, result interface{}) {
				vnet, ok := result.(armnetwork.VirtualNetwork)
				g.Expect(ok).To(BeTrue())
				g.Expect(vnet.Properties.DhcpOptions.DNSServers).To(Equal([]*string{ptr.To("10.0.0.4")}))
			},
		},
		{
			name:     "vnet exists and matches its configuration",
			spec:     fakeVNetSpec,
			existing: sampleVNet,
			expect: func(g *WithT, result interface{}) {
				g.Expect(result).To(BeNil())
			},
		},
		{
			name: "drifted vnet keeps its subnets",
			spec: VNetSpec{
				ResourceGroup: "my-rg",
				Name:          "my-vnet",
				Location:      "westeurope",
				Config: infrav1.VirtualNetworkConfig{
					AddressSpace: &infrav1.AddressSpace{AddressPrefixes: []string{"10.0.0.0/8"}},
				},
			},
			existing: sampleVNet,
			expect: func(g *WithT, result interface{}) {
				vnet, ok := result.(armnetwork.VirtualNetwork)
				g.Expect(ok).To(BeTrue())
				g.Expect(vnet.Properties.AddressSpace.AddressPrefixes).To(Equal([]*string{ptr.To("10.0.0.0/8")}))
				g.Expect(vnet.Properties.Subnets).To(Equal(sampleVNet.Properties.Subnets))
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

func TestDriftValuesRejectsOtherResources(t *testing.T) {
	g := NewWithT(t)
	_, _, err := fakeVNetSpec.DriftValues("not a vnet")
	g.Expect(err).To(MatchError("string is not an armnetwork.VirtualNetwork"))

	_, err = fakeVNetSpec.Parameters(t.Context(), "not a vnet")
	g.Expect(err).To(HaveOccurred())
}

func TestRenderedVNetIsUpToDate(t *testing.T) {
	g := NewWithT(t)

	spec := VNetSpec{
		Name:           "vnet-1",
		ResourceGroup:  "my-rg",
		Location:       "westeurope",
		AdditionalTags: infrav1.Tags{"env": "dev"},
		Config: infrav1.VirtualNetworkConfig{
			AddressSpace: &infrav1.AddressSpace{AddressPrefixes: []string{"10.0.0.0/16", "10.1.0.0/16"}},
			DhcpOptions:  &infrav1.DhcpOptions{DNSServers: []string{"10.0.0.10"}},
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
