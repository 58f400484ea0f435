/*
Copyright 2021 The Kubernetes Authors.

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

package availabilitysets

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	. "github.com/onsi/gomega"
	"k8s.io/utils/ptr"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
)

func TestParameters(t *testing.T) {
	testcases := []struct {
		name          string
		spec          AvailabilitySetSpec
		existing      interface{}
		expect        func(g *WithT, result interface{})
		expectedError string
	}{
		{
			name:     "availability set does not exist",
			spec:     fakeSetSpec,
			existing: nil,
			expect: func(g *WithT, result interface{}) {
				g.Expect(result).To(Equal(armcompute.AvailabilitySet{
					Location: ptr.To("test-location"),
					SKU:      &armcompute.SKU{Name: ptr.To("Aligned")},
					Properties: &armcompute.AvailabilitySetProperties{
						PlatformFaultDomainCount:  ptr.To[int32](3),
						PlatformUpdateDomainCount: ptr.To[int32](5),
					},
				}))
			},
		},
		{
			name:     "availability set exists and is up to date",
			spec:     fakeSetSpec,
			existing: fakeSet,
			expect: func(g *WithT, result interface{}) {
				g.Expect(result).To(BeNil())
			},
		},
		{
			name:     "availability set exists with different sku",
			spec:     fakeSetSpec,
			existing: armcompute.AvailabilitySet{Location: ptr.To("test-location"), SKU: &armcompute.SKU{Name: ptr.To("Classic")}, Properties: fakeSet.Properties},
			expect: func(g *WithT, result interface{}) {
				as, ok := result.(armcompute.AvailabilitySet)
				g.Expect(ok).To(BeTrue())
				g.Expect(as.SKU.Name).To(Equal(ptr.To("Aligned")))
			},
		},
		{
			name:          "existing is not an availability set",
			spec:          fakeSetSpec,
			existing:      "not an availability set",
			expectedError: "string is not an armcompute.AvailabilitySet",
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			result, err := tc.spec.Parameters(t.Context(), tc.existing)
			if tc.expectedError != "" {
				g.Expect(err).To(MatchError(tc.expectedError))
				return
			}
			g.Expect(err).NotTo(HaveOccurred())
			tc.expect(g, result)
		})
	}
}

func TestRenderedAvailabilitySetIsUpToDate(t *testing.T) {
	g := NewWithT(t)

	spec := AvailabilitySetSpec{
		Name:           "as-1",
		ResourceGroup:  "my-rg",
		Location:       "westeurope",
		AdditionalTags: infrav1.Tags{"env": "dev"},
		Config: infrav1.AvailabilitySetConfig{
			SKU:                       &infrav1.SKU{Name: "Aligned"},
			PlatformFaultDomainCount:  ptr.To[int32](2),
			PlatformUpdateDomainCount: ptr.To[int32](5),
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
