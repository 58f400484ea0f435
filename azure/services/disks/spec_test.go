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

package disks

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	. "github.com/onsi/gomega"
	"k8s.io/utils/ptr"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
)

func TestParameters(t *testing.T) {
	tests := []struct {
		name     string
		spec     DiskSpec
		existing interface{}
		expect   func(g *WithT, result interface{})
	}{
		{
			name:     "disk does not exist",
			spec:     fakeDiskSpec,
			existing: nil,
			expect: func(g *WithT, result interface{}) {
				g.Expect(result).To(Equal(armcompute.Disk{
					Location: ptr.To("westeurope"),
					SKU:      &armcompute.DiskSKU{Name: ptr.To(armcompute.DiskStorageAccountTypesPremiumLRS)},
					Properties: &armcompute.DiskProperties{
						DiskSizeGB:   ptr.To[int32](128),
						CreationData: &armcompute.CreationData{CreateOption: ptr.To(armcompute.DiskCreateOptionEmpty)},
					},
				}))
			},
		},
		{
			name: "disk copied from a snapshot in a zone",
			spec: DiskSpec{
				Name:          "my-disk",
				ResourceGroup: "my-rg",
				Location:      "westeurope",
				Config: infrav1.DiskConfig{
					Zones: []string{"1"},
					CreationData: &infrav1.CreationData{
						CreateOption:     "Copy",
						SourceResourceID: "/subscriptions/123/resourceGroups/my-rg/providers/Microsoft.Compute/snapshots/snap",
					},
				},
			},
			existing: nil,
			expect: func(g *WithT, result interface{}) {
				disk, ok := result.(armcompute.Disk)
				g.Expect(ok).To(BeTrue())
				g.Expect(disk.Zones).To(Equal([]*string{ptr.To("1")}))
				g.Expect(disk.Properties.CreationData).To(Equal(&armcompute.CreationData{
					CreateOption:     ptr.To(armcompute.DiskCreateOptionCopy),
					SourceResourceID: ptr.To("/subscriptions/123/resourceGroups/my-rg/providers/Microsoft.Compute/snapshots/snap"),
				}))
			},
		},
		{
			name:     "disk exists with the server side sku tier",
			spec:     fakeDiskSpec,
			existing: fakeDisk,
			expect: func(g *WithT, result interface{}) {
				g.Expect(result).To(BeNil())
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

func TestDeleteSpec(t *testing.T) {
	g := NewWithT(t)
	g.Expect(osDiskSpec.ResourceName()).To(Equal("vm-osdisk"))
	g.Expect(osDiskSpec.ResourceGroupName()).To(Equal("my-rg"))
	params, err := osDiskSpec.Parameters(t.Context(), nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(params).To(BeNil())
}

func TestRenderedDiskIsUpToDate(t *testing.T) {
	g := NewWithT(t)

	spec := DiskSpec{
		Name:           "disk-1",
		ResourceGroup:  "my-rg",
		Location:       "westeurope",
		AdditionalTags: infrav1.Tags{"env": "dev"},
		Config: infrav1.DiskConfig{
			SKU:        &infrav1.SKU{Name: "Premium_LRS"},
			DiskSizeGB: ptr.To[int32](128),
			Zones:      []string{"2"},
			CreationData: &infrav1.CreationData{
				CreateOption:     "Copy",
				SourceResourceID: "/subscriptions/123/resourceGroups/my-rg/providers/Microsoft.Compute/snapshots/snap-1",
				SourceURI:        "https://account.blob.core.windows.net/vhds/disk.vhd",
			},
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
