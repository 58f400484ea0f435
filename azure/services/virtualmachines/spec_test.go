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

package virtualmachines

import (
	"encoding/base64"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	. "github.com/onsi/gomega"
	"k8s.io/utils/ptr"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
)

func TestParameters(t *testing.T) {
	spotSpec := fakeVMSpec
	spotSpec.Config.Priority = "Spot"
	spotSpec.Config.EvictionPolicy = "Deallocate"
	spotSpec.Config.BillingProfile = &infrav1.BillingProfile{MaxPrice: ptr.To(-1.0)}
	spotSpec.Config.AvailabilitySet = &infrav1.SubResource{ID: "/subscriptions/123/resourceGroups/my-rg/providers/Microsoft.Compute/availabilitySets/as-1"}
	spotSpec.Config.Zones = []string{"1"}

	resized := fakeVM
	resizedProps := *fakeVM.Properties
	resizedProps.HardwareProfile = &armcompute.HardwareProfile{VMSize: ptr.To(armcompute.VirtualMachineSizeTypesStandardD4SV3)}
	resized.Properties = &resizedProps

	testcases := []struct {
		name          string
		spec          *VMSpec
		existing      interface{}
		expect        func(g *WithT, result interface{})
		expectedError string
	}{
		{
			name:     "vm is created with its secrets",
			spec:     &fakeVMSpec,
			existing: nil,
			expect: func(g *WithT, result interface{}) {
				g.Expect(result).To(BeAssignableToTypeOf(armcompute.VirtualMachine{}))
				vm := result.(armcompute.VirtualMachine)
				g.Expect(vm.Location).To(Equal(ptr.To("westeurope")))
				g.Expect(vm.Properties.HardwareProfile.VMSize).To(Equal(ptr.To(armcompute.VirtualMachineSizeTypesStandardD2SV3)))
				g.Expect(vm.Properties.OSProfile.AdminPassword).To(Equal(ptr.To("Passw0rd!")))
				g.Expect(vm.Properties.OSProfile.CustomData).To(Equal(ptr.To(base64.StdEncoding.EncodeToString([]byte("#cloud-config")))))
				g.Expect(vm.Properties.StorageProfile.OSDisk.CreateOption).To(Equal(ptr.To(armcompute.DiskCreateOptionTypesFromImage)))
				g.Expect(vm.Properties.StorageProfile.DataDisks).To(HaveLen(1))
				g.Expect(vm.Properties.StorageProfile.DataDisks[0].DeleteOption).To(Equal(ptr.To(armcompute.DiskDeleteOptionTypesDelete)))
				g.Expect(vm.Properties.NetworkProfile.NetworkInterfaces).To(HaveLen(1))
				g.Expect(vm.Properties.NetworkProfile.NetworkInterfaces[0].ID).To(Equal(ptr.To(nicID)))
				g.Expect(vm.Properties.NetworkProfile.NetworkInterfaces[0].Properties.Primary).To(Equal(ptr.To(true)))
			},
		},
		{
			name:     "spot vm in an availability set",
			spec:     &spotSpec,
			existing: nil,
			expect: func(g *WithT, result interface{}) {
				vm := result.(armcompute.VirtualMachine)
				g.Expect(vm.Properties.Priority).To(Equal(ptr.To(armcompute.VirtualMachinePriorityTypesSpot)))
				g.Expect(vm.Properties.EvictionPolicy).To(Equal(ptr.To(armcompute.VirtualMachineEvictionPolicyTypesDeallocate)))
				g.Expect(vm.Properties.BillingProfile.MaxPrice).To(Equal(ptr.To(-1.0)))
				g.Expect(vm.Properties.AvailabilitySet.ID).To(Equal(ptr.To(spotSpec.Config.AvailabilitySet.ID)))
				g.Expect(vm.Zones).To(Equal([]*string{ptr.To("1")}))
			},
		},
		{
			name:     "vm is up to date",
			spec:     &fakeVMSpec,
			existing: fakeVM,
			expect: func(g *WithT, result interface{}) {
				g.Expect(result).To(BeNil())
			},
		},
		{
			name:     "vm update leaves out secrets",
			spec:     &fakeVMSpec,
			existing: resized,
			expect: func(g *WithT, result interface{}) {
				vm := result.(armcompute.VirtualMachine)
				g.Expect(vm.Properties.HardwareProfile.VMSize).To(Equal(ptr.To(armcompute.VirtualMachineSizeTypesStandardD2SV3)))
				g.Expect(vm.Properties.OSProfile.AdminPassword).To(BeNil())
				g.Expect(vm.Properties.OSProfile.CustomData).To(BeNil())
			},
		},
		{
			name:          "existing is not a virtual machine",
			spec:          &fakeVMSpec,
			existing:      armnetwork.Interface{},
			expectedError: "armnetwork.Interface is not an armcompute.VirtualMachine",
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			t.Parallel()

			result, err := tc.spec.Parameters(t.Context(), tc.existing)
			if tc.expectedError != "" {
				g.Expect(err).To(HaveOccurred())
				g.Expect(err).To(MatchError(tc.expectedError))
			} else {
				g.Expect(err).NotTo(HaveOccurred())
				tc.expect(g, result)
			}
		})
	}
}

func TestDefaultComputerName(t *testing.T) {
	g := NewWithT(t)
	spec := VMSpec{
		Name:     "vm-2",
		Location: "westeurope",
		Config: infrav1.VirtualMachineConfig{
			OSProfile: &infrav1.OSProfile{AdminUsername: "azureuser"},
		},
	}
	result, err := spec.Parameters(t.Context(), nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(result.(armcompute.VirtualMachine).Properties.OSProfile.ComputerName).To(Equal(ptr.To("vm-2")))
}

func TestRenderedVMIsUpToDate(t *testing.T) {
	linux := VMSpec{
		Name:           "vm-linux",
		ResourceGroup:  "my-rg",
		Location:       "westeurope",
		AdditionalTags: infrav1.Tags{"env": "dev"},
		Config: infrav1.VirtualMachineConfig{
			Plan:            &infrav1.Plan{Name: "plan", Publisher: "publisher", Product: "product", PromotionCode: "promo"},
			HardwareProfile: &infrav1.HardwareProfile{VMSize: "Standard_D2s_v3"},
			StorageProfile: &infrav1.StorageProfile{
				ImageReference: &infrav1.ImageReference{Publisher: "Canonical", Offer: "0001-com-ubuntu-server-jammy", SKU: "22_04-lts-gen2", Version: "latest"},
				OSDisk: &infrav1.OSDisk{
					Name:         "vm-linux_OSDisk",
					OSType:       "Linux",
					Caching:      "ReadWrite",
					CreateOption: "FromImage",
					DiskSizeGB:   ptr.To[int32](30),
					ManagedDisk:  &infrav1.ManagedDiskParameters{StorageAccountType: "Premium_LRS"},
					DeleteOption: "Delete",
				},
				DataDisks: []infrav1.DataDisk{
					{Lun: 0, Name: "vm-linux_data-0", Caching: "ReadOnly", CreateOption: "Empty", DiskSizeGB: ptr.To[int32](64), DeleteOption: "Delete"},
					{Lun: 1, Name: "shared", CreateOption: "Attach", ManagedDisk: &infrav1.ManagedDiskParameters{ID: "/subscriptions/123/resourceGroups/my-rg/providers/Microsoft.Compute/disks/shared"}},
				},
			},
			OSProfile: &infrav1.OSProfile{
				ComputerName:  "vm-linux",
				AdminUsername: "azureuser",
				AdminPassword: "Passw0rd!",
				CustomData:    "#cloud-config",
				LinuxConfiguration: &infrav1.LinuxConfiguration{
					DisablePasswordAuthentication: ptr.To(true),
					SSH: &infrav1.SSHConfiguration{PublicKeys: []infrav1.SSHPublicKey{
						{Path: "/home/azureuser/.ssh/authorized_keys", KeyData: "ssh-rsa AAAAB3NzaC1yc2E"},
					}},
				},
			},
			NetworkProfile: &infrav1.NetworkProfile{NetworkInterfaces: []infrav1.NetworkInterfaceReference{
				{ID: nicID, Primary: ptr.To(true)},
			}},
			AvailabilitySet: &infrav1.SubResource{ID: "/subscriptions/123/resourceGroups/my-rg/providers/Microsoft.Compute/availabilitySets/as-1"},
			Priority:        "Spot",
			EvictionPolicy:  "Deallocate",
			BillingProfile:  &infrav1.BillingProfile{MaxPrice: ptr.To(-1.0)},
			Zones:           []string{"1"},
		},
	}
	windows := VMSpec{
		Name:          "vm-windows",
		ResourceGroup: "my-rg",
		Location:      "westeurope",
		Config: infrav1.VirtualMachineConfig{
			HardwareProfile: &infrav1.HardwareProfile{VMSize: "Standard_D4s_v3"},
			StorageProfile: &infrav1.StorageProfile{
				ImageReference: &infrav1.ImageReference{ID: "/subscriptions/123/resourceGroups/images/providers/Microsoft.Compute/images/win2022"},
				OSDisk:         &infrav1.OSDisk{OSType: "Windows", Caching: "ReadWrite"},
			},
			OSProfile: &infrav1.OSProfile{
				AdminUsername: "azureuser",
				AdminPassword: "Passw0rd!",
				WindowsConfiguration: &infrav1.WindowsConfiguration{
					ProvisionVMAgent:       ptr.To(true),
					EnableAutomaticUpdates: ptr.To(false),
					TimeZone:               "UTC",
				},
			},
			NetworkProfile: &infrav1.NetworkProfile{NetworkInterfaces: []infrav1.NetworkInterfaceReference{{ID: nicID}}},
		},
	}

	for _, spec := range []VMSpec{linux, windows} {
		t.Run(spec.Name, func(t *testing.T) {
			g := NewWithT(t)

			rendered, err := spec.Parameters(t.Context(), nil)
			g.Expect(err).NotTo(HaveOccurred())
			diffs, err := azure.Differences(t.Context(), &spec, rendered)
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(diffs).To(BeEmpty())

			result, err := spec.Parameters(t.Context(), rendered)
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(result).To(BeNil())
		})
	}
}
