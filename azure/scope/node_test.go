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

package scope

import (
	"context"
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/disks"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/virtualmachines"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/drift"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/reconciler"
)

const fakeSubscriptionID = "00000000-0000-0000-0000-000000000123"

type memoryStore struct {
	props *infrav1.RuntimeProperties
	saved *infrav1.RuntimeProperties
}

func (m *memoryStore) Load(_ context.Context) (*infrav1.RuntimeProperties, error) {
	if m.props == nil {
		return &infrav1.RuntimeProperties{}, nil
	}
	return m.props, nil
}

func (m *memoryStore) Save(_ context.Context, props *infrav1.RuntimeProperties) error {
	m.saved = props
	return nil
}

func loadNode(t *testing.T, doc string) *infrav1.Node {
	t.Helper()
	node, err := infrav1.LoadNode(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func newTestScope(t *testing.T, doc string) *NodeScope {
	t.Helper()
	s, err := NewNodeScope(t.Context(), NodeScopeParams{
		Node:           loadNode(t, doc),
		ProviderConfig: &infrav1.ProviderConfig{SubscriptionID: fakeSubscriptionID, Location: "westeurope"},
		Store:          &memoryStore{},
		Timeouts:       reconciler.Timeouts{},
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

const vmNode = `
kind: virtualmachine
name: vm-1
resource_group: my-rg
tags:
  env: test
resource_config:
  hardware_profile:
    vm_size: Standard_D2s_v3
  availability_set_name: as-1
  deallocate_on_stop: true
  storage_profile:
    image_reference:
      publisher: Canonical
      offer: 0001-com-ubuntu-server-jammy
      sku: 22_04-lts-gen2
      version: latest
    data_disks:
    - lun: 0
      disk_size_gb: 64
      delete_option: Delete
    - lun: 1
      disk_size_gb: 64
    - lun: 2
      create_option: Attach
      delete_option: delete
      managed_disk:
        id: /subscriptions/00000000-0000-0000-0000-000000000123/resourceGroups/shared-rg/providers/Microsoft.Compute/disks/shared-disk
  os_profile:
    admin_username: azureuser
  network_profile:
    network_interfaces:
    - name: vm-1-nic
`

func TestNewNodeScope(t *testing.T) {
	testcases := []struct {
		name          string
		params        func(t *testing.T) NodeScopeParams
		expectedError string
		terminal      bool
	}{
		{
			name: "nil node",
			params: func(_ *testing.T) NodeScopeParams {
				return NodeScopeParams{ProviderConfig: &infrav1.ProviderConfig{}, Store: &memoryStore{}}
			},
			expectedError: "failed to generate new scope from nil Node",
		},
		{
			name: "nil provider config",
			params: func(t *testing.T) NodeScopeParams {
				return NodeScopeParams{Node: loadNode(t, vmNode), Store: &memoryStore{}}
			},
			expectedError: "failed to generate new scope from nil ProviderConfig",
		},
		{
			name: "nil store",
			params: func(t *testing.T) NodeScopeParams {
				return NodeScopeParams{Node: loadNode(t, vmNode), ProviderConfig: &infrav1.ProviderConfig{}}
			},
			expectedError: "failed to generate new scope from nil Store",
		},
		{
			name: "node without a location",
			params: func(t *testing.T) NodeScopeParams {
				return NodeScopeParams{
					Node:           loadNode(t, vmNode),
					ProviderConfig: &infrav1.ProviderConfig{SubscriptionID: fakeSubscriptionID},
					Store:          &memoryStore{},
				}
			},
			expectedError: "invalid node vm-1",
			terminal:      true,
		},
		{
			name: "invalid resource config",
			params: func(t *testing.T) NodeScopeParams {
				return NodeScopeParams{
					Node:           loadNode(t, "kind: virtualnetwork\nname: vnet-1\nresource_group: my-rg\n"),
					ProviderConfig: &infrav1.ProviderConfig{SubscriptionID: fakeSubscriptionID, Location: "westeurope"},
					Store:          &memoryStore{},
				}
			},
			expectedError: "invalid resource_config of virtualnetwork vnet-1",
			terminal:      true,
		},
		{
			name: "missing subscription",
			params: func(t *testing.T) NodeScopeParams {
				return NodeScopeParams{
					Node:           loadNode(t, vmNode),
					ProviderConfig: &infrav1.ProviderConfig{Location: "westeurope"},
					Store:          &memoryStore{},
				}
			},
			expectedError: "subscription ID is required",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			_, err := NewNodeScope(t.Context(), tc.params(t))
			g.Expect(err).To(HaveOccurred())
			g.Expect(err.Error()).To(ContainSubstring(tc.expectedError))
			var reconcileErr azure.ReconcileError
			if tc.terminal {
				g.Expect(err).To(BeAssignableToTypeOf(reconcileErr))
				g.Expect(err.(azure.ReconcileError).IsTerminal()).To(BeTrue())
			}
		})
	}
}

func TestNodeScopeVMSpec(t *testing.T) {
	g := NewWithT(t)
	s := newTestScope(t, vmNode)

	g.Expect(s.GroupSpec()).To(BeNil())
	g.Expect(s.VNetSpec()).To(BeNil())
	g.Expect(s.SubnetSpec()).To(BeNil())
	g.Expect(s.AvailabilitySetSpec()).To(BeNil())
	g.Expect(s.DiskSpec()).To(BeNil())
	g.Expect(s.NICSpec()).To(BeNil())
	g.Expect(s.DeallocateOnStop()).To(BeTrue())

	spec, ok := s.VMSpec().(*virtualmachines.VMSpec)
	g.Expect(ok).To(BeTrue())
	g.Expect(spec.Name).To(Equal("vm-1"))
	g.Expect(spec.ResourceGroup).To(Equal("my-rg"))
	g.Expect(spec.Location).To(Equal("westeurope"))
	g.Expect(spec.AdditionalTags).To(Equal(infrav1.Tags{azure.ManagedByTagKey: azure.ManagedByTagValue, "env": "test"}))
	g.Expect(spec.Config.AvailabilitySet.ID).To(Equal(azure.AvailabilitySetID(fakeSubscriptionID, "my-rg", "as-1")))
	g.Expect(spec.Config.NetworkProfile.NetworkInterfaces[0].ID).To(Equal(azure.NetworkInterfaceID(fakeSubscriptionID, "my-rg", "vm-1-nic")))
	g.Expect(spec.Config.StorageProfile.OSDisk.Name).To(Equal("vm-1_OSDisk"))
	g.Expect(spec.Config.StorageProfile.OSDisk.CreateOption).To(Equal("FromImage"))
	g.Expect(spec.Config.OSProfile.ComputerName).To(Equal("vm-1"))
}

func TestDiskSpecsToDelete(t *testing.T) {
	g := NewWithT(t)
	s := newTestScope(t, vmNode)

	g.Expect(s.DiskSpecsToDelete()).To(Equal([]azure.ResourceSpecGetter{
		&disks.DeleteSpec{Name: "vm-1_OSDisk", ResourceGroup: "my-rg"},
		&disks.DeleteSpec{Name: "vm-1_datadisk_0", ResourceGroup: "my-rg"},
		&disks.DeleteSpec{Name: "shared-disk", ResourceGroup: "shared-rg"},
	}))

	other := newTestScope(t, "kind: resourcegroup\nname: my-rg\n")
	g.Expect(other.DiskSpecsToDelete()).To(BeNil())
	g.Expect(other.DeallocateOnStop()).To(BeFalse())
}

func TestNodeScopeSpecsPerKind(t *testing.T) {
	testcases := []struct {
		name   string
		doc    string
		getter func(s *NodeScope) azure.DriftSpecGetter
	}{
		{
			name:   "resource group",
			doc:    "kind: resourcegroup\nname: my-rg\n",
			getter: func(s *NodeScope) azure.DriftSpecGetter { return s.GroupSpec() },
		},
		{
			name: "virtual network",
			doc: `kind: virtualnetwork
name: vnet-1
resource_group: my-rg
resource_config:
  address_space:
    address_prefixes: [10.0.0.0/16]
`,
			getter: func(s *NodeScope) azure.DriftSpecGetter { return s.VNetSpec() },
		},
		{
			name: "subnet",
			doc: `kind: subnet
name: subnet-1
resource_group: my-rg
resource_config:
  virtual_network_name: vnet-1
  address_prefix: 10.0.1.0/24
  network_security_group_name: nsg-1
`,
			getter: func(s *NodeScope) azure.DriftSpecGetter { return s.SubnetSpec() },
		},
		{
			name:   "availability set",
			doc:    "kind: availabilityset\nname: as-1\nresource_group: my-rg\n",
			getter: func(s *NodeScope) azure.DriftSpecGetter { return s.AvailabilitySetSpec() },
		},
		{
			name:   "disk",
			doc:    "kind: disk\nname: disk-1\nresource_group: my-rg\nresource_config:\n  disk_size_gb: 32\n",
			getter: func(s *NodeScope) azure.DriftSpecGetter { return s.DiskSpec() },
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			s := newTestScope(t, tc.doc)
			spec := tc.getter(s)
			g.Expect(spec).NotTo(BeNil())
			g.Expect(spec.ResourceName()).To(Equal(s.Name()))
			g.Expect(spec.ResourceGroupName()).To(Equal(s.ResourceGroup()))
			g.Expect(s.VMSpec()).To(BeNil())
		})
	}
}

func TestNodeScopeStatus(t *testing.T) {
	notDone := azure.WithTransientError(azure.NewOperationNotDoneError(&infrav1.Future{
		Type:          infrav1.PutFuture,
		ResourceGroup: "my-rg",
		Name:          "vm-1",
	}), reconciler.DefaultReconcilerRequeue)

	testcases := []struct {
		name           string
		update         func(s *NodeScope)
		condition      infrav1.ConditionType
		expectedStatus infrav1.ConditionStatus
		expectedReason string
	}{
		{
			name:           "put succeeded",
			update:         func(s *NodeScope) { s.UpdatePutStatus(infrav1.VMRunningCondition, "virtualmachine", nil) },
			condition:      infrav1.VMRunningCondition,
			expectedStatus: infrav1.ConditionTrue,
		},
		{
			name:           "put in progress",
			update:         func(s *NodeScope) { s.UpdatePutStatus(infrav1.VMRunningCondition, "virtualmachine", notDone) },
			condition:      infrav1.VMRunningCondition,
			expectedStatus: infrav1.ConditionFalse,
			expectedReason: infrav1.CreatingReason,
		},
		{
			name: "delete failed",
			update: func(s *NodeScope) {
				s.UpdateDeleteStatus(infrav1.VMRunningCondition, "virtualmachine", azure.WithTerminalError(context.Canceled))
			},
			condition:      infrav1.VMRunningCondition,
			expectedStatus: infrav1.ConditionFalse,
			expectedReason: infrav1.DeletionFailedReason,
		},
		{
			name: "stop succeeded",
			update: func(s *NodeScope) {
				s.UpdatePostStatus(infrav1.VMRunningCondition, virtualmachines.StopServiceName, nil)
			},
			condition:      infrav1.VMRunningCondition,
			expectedStatus: infrav1.ConditionFalse,
			expectedReason: infrav1.VMStoppedReason,
		},
		{
			name: "restart in progress",
			update: func(s *NodeScope) {
				s.UpdatePostStatus(infrav1.VMRunningCondition, virtualmachines.RestartServiceName, notDone)
			},
			condition:      infrav1.VMRunningCondition,
			expectedStatus: infrav1.ConditionFalse,
			expectedReason: infrav1.VMRestartingReason,
		},
		{
			name: "drift detected",
			update: func(s *NodeScope) {
				s.UpdateDriftStatus("virtualmachine", &azure.DriftReport{
					Exists:      true,
					Differences: []drift.Difference{{Path: "hardware_profile"}},
				})
			},
			condition:      infrav1.ConfigurationDriftedCondition,
			expectedStatus: infrav1.ConditionTrue,
			expectedReason: infrav1.DriftDetectedReason,
		},
		{
			name:           "no drift",
			update:         func(s *NodeScope) { s.UpdateDriftStatus("virtualmachine", &azure.DriftReport{Exists: true}) },
			condition:      infrav1.ConfigurationDriftedCondition,
			expectedStatus: infrav1.ConditionFalse,
			expectedReason: "NoDrift",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			s := newTestScope(t, vmNode)
			tc.update(s)
			c := s.RuntimeProperties().Conditions.Get(tc.condition)
			g.Expect(c).NotTo(BeNil())
			g.Expect(c.Status).To(Equal(tc.expectedStatus))
			g.Expect(c.Reason).To(Equal(tc.expectedReason))
		})
	}
}

func TestNodeScopeResourceRecords(t *testing.T) {
	g := NewWithT(t)
	store := &memoryStore{}
	s, err := NewNodeScope(t.Context(), NodeScopeParams{
		Node:           loadNode(t, vmNode),
		ProviderConfig: &infrav1.ProviderConfig{SubscriptionID: fakeSubscriptionID, Location: "westeurope"},
		Store:          store,
	})
	g.Expect(err).NotTo(HaveOccurred())

	s.SetResourceID("/subscriptions/123/resourceGroups/my-rg/providers/Microsoft.Compute/virtualMachines/vm-1")
	s.SetOutput("private_ip_address", "10.0.0.4")
	g.Expect(s.Close(t.Context())).To(Succeed())
	g.Expect(store.saved.ResourceID).NotTo(BeEmpty())
	g.Expect(store.saved.Outputs).To(HaveKeyWithValue("private_ip_address", "10.0.0.4"))

	s.ClearResource()
	g.Expect(s.RuntimeProperties().ResourceID).To(BeEmpty())
	g.Expect(s.RuntimeProperties().Outputs).To(BeEmpty())
}
