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
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"k8s.io/utils/ptr"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/asyncpoller/mock_asyncpoller"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/subnets/mock_subnets"
	gomockinternal "github.com/cloudify-cosmo/cloudify-azure-plugin/internal/test/matchers/gomock"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/reconciler"
)

func internalError() *azcore.ResponseError {
	return &azcore.ResponseError{
		StatusCode: http.StatusInternalServerError,
		RawResponse: &http.Response{
			Body:       io.NopCloser(strings.NewReader("#: Internal Server Error: StatusCode=500")),
			StatusCode: http.StatusInternalServerError,
		},
	}
}

const (
	subnetID = "/subscriptions/123/resourceGroups/my-rg/providers/Microsoft.Network/virtualNetworks/my-vnet/subnets/my-subnet"
	nsgID    = "/subscriptions/123/resourceGroups/my-rg/providers/Microsoft.Network/networkSecurityGroups/my-nsg"
)

var (
	fakeSubnetSpec = SubnetSpec{
		Name:          "my-subnet",
		ResourceGroup: "my-rg",
		VNetName:      "my-vnet",
		Config: infrav1.SubnetConfig{
			AddressPrefix:        "10.0.0.0/24",
			NetworkSecurityGroup: &infrav1.SubResource{ID: nsgID},
		},
	}
	errNotFound = &azcore.ResponseError{
		StatusCode:  http.StatusNotFound,
		RawResponse: &http.Response{StatusCode: http.StatusNotFound},
	}
	sampleSubnet = armnetwork.Subnet{
		ID:   ptr.To(subnetID),
		Name: ptr.To("my-subnet"),
		Properties: &armnetwork.SubnetPropertiesFormat{
			AddressPrefix:        ptr.To("10.0.0.0/24"),
			NetworkSecurityGroup: &armnetwork.SecurityGroup{ID: ptr.To(nsgID)},
			ProvisioningState:    ptr.To(armnetwork.ProvisioningStateSucceeded),
		},
	}
)

func TestReconcileSubnets(t *testing.T) {
	testcases := []struct {
		name          string
		expectedError string
		expect        func(s *mock_subnets.MockSubnetScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder)
	}{
		{
			name:          "noop if no subnet spec is found",
			expectedError: "",
			expect: func(s *mock_subnets.MockSubnetScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.SubnetSpec().Return(nil)
			},
		},
		{
			name:          "create subnet succeeds",
			expectedError: "",
			expect: func(s *mock_subnets.MockSubnetScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.SubnetSpec().Return(&fakeSubnetSpec)
				s.UseExternalResource().Return(false)
				r.CreateOrUpdateResource(gomockinternal.AContext(), &fakeSubnetSpec, ServiceName).Return(sampleSubnet, nil)
				s.SetResourceID(subnetID)
				s.UpdatePutStatus(infrav1.SubnetReadyCondition, ServiceName, nil)
			},
		},
		{
			name:          "create subnet fails",
			expectedError: "#: Internal Server Error: StatusCode=500",
			expect: func(s *mock_subnets.MockSubnetScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.SubnetSpec().Return(&fakeSubnetSpec)
				s.UseExternalResource().Return(false)
				err := internalError()
				r.CreateOrUpdateResource(gomockinternal.AContext(), &fakeSubnetSpec, ServiceName).Return(nil, err)
				s.UpdatePutStatus(infrav1.SubnetReadyCondition, ServiceName, err)
			},
		},
		{
			name:          "external subnet is recorded without being written",
			expectedError: "",
			expect: func(s *mock_subnets.MockSubnetScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.SubnetSpec().Return(&fakeSubnetSpec)
				s.UseExternalResource().Return(true)
				g.Get(gomockinternal.AContext(), &fakeSubnetSpec).Return(sampleSubnet, nil)
				s.SetResourceID(subnetID)
				s.UpdatePutStatus(infrav1.SubnetReadyCondition, ServiceName, nil)
			},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			t.Parallel()
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()
			scopeMock := mock_subnets.NewMockSubnetScope(mockCtrl)
			asyncMock := mock_asyncpoller.NewMockReconciler(mockCtrl)
			getterMock := mock_asyncpoller.NewMockGetter(mockCtrl)

			tc.expect(scopeMock.EXPECT(), asyncMock.EXPECT(), getterMock.EXPECT())

			s := &Service{
				Scope:      scopeMock,
				Reconciler: asyncMock,
				getter:     getterMock,
			}

			err := s.Reconcile(t.Context())
			if tc.expectedError != "" {
				g.Expect(err).To(HaveOccurred())
				g.Expect(err.Error()).To(ContainSubstring(tc.expectedError))
			} else {
				g.Expect(err).NotTo(HaveOccurred())
			}
		})
	}
}

func TestDeleteSubnets(t *testing.T) {
	testcases := []struct {
		name          string
		expectedError string
		expect        func(s *mock_subnets.MockSubnetScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder)
	}{
		{
			name:          "delete subnet succeeds",
			expectedError: "",
			expect: func(s *mock_subnets.MockSubnetScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.SubnetSpec().Return(&fakeSubnetSpec)
				s.UseExternalResource().Return(false)
				r.DeleteResource(gomockinternal.AContext(), &fakeSubnetSpec, ServiceName).Return(nil)
				s.UpdateDeleteStatus(infrav1.SubnetReadyCondition, ServiceName, nil)
			},
		},
		{
			name:          "skip delete for external subnet",
			expectedError: "",
			expect: func(s *mock_subnets.MockSubnetScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.SubnetSpec().Return(&fakeSubnetSpec)
				s.UseExternalResource().Return(true)
			},
		},
		{
			name:          "delete subnet fails",
			expectedError: "#: Internal Server Error: StatusCode=500",
			expect: func(s *mock_subnets.MockSubnetScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.SubnetSpec().Return(&fakeSubnetSpec)
				s.UseExternalResource().Return(false)
				err := internalError()
				r.DeleteResource(gomockinternal.AContext(), &fakeSubnetSpec, ServiceName).Return(err)
				s.UpdateDeleteStatus(infrav1.SubnetReadyCondition, ServiceName, err)
			},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			t.Parallel()
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()
			scopeMock := mock_subnets.NewMockSubnetScope(mockCtrl)
			asyncMock := mock_asyncpoller.NewMockReconciler(mockCtrl)

			tc.expect(scopeMock.EXPECT(), asyncMock.EXPECT())

			s := &Service{
				Scope:      scopeMock,
				Reconciler: asyncMock,
			}

			err := s.Delete(t.Context())
			if tc.expectedError != "" {
				g.Expect(err).To(HaveOccurred())
				g.Expect(err.Error()).To(ContainSubstring(tc.expectedError))
			} else {
				g.Expect(err).NotTo(HaveOccurred())
			}
		})
	}
}

func TestDiffSubnet(t *testing.T) {
	testcases := []struct {
		name          string
		existing      interface{}
		getErr        error
		expectedPaths []string
		expectedError string
	}{
		{
			name:          "subnet matches its configuration",
			existing:      sampleSubnet,
			expectedPaths: []string{},
		},
		{
			name: "subnet lost its network security group",
			existing: armnetwork.Subnet{
				ID: ptr.To(subnetID),
				Properties: &armnetwork.SubnetPropertiesFormat{
					AddressPrefix: ptr.To("10.0.0.0/24"),
				},
			},
			expectedPaths: []string{"network_security_group.id"},
		},
		{
			name: "subnet prefix and security group changed",
			existing: armnetwork.Subnet{
				ID: ptr.To(subnetID),
				Properties: &armnetwork.SubnetPropertiesFormat{
					AddressPrefix:        ptr.To("10.0.1.0/24"),
					NetworkSecurityGroup: &armnetwork.SecurityGroup{ID: ptr.To(nsgID + "-other")},
				},
			},
			expectedPaths: []string{"address_prefix", "network_security_group.id"},
		},
		{
			name:          "subnet could not be read",
			getErr:        internalError(),
			expectedError: "failed to get existing resource my-rg/my-subnet (service: subnet)",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()
			scopeMock := mock_subnets.NewMockSubnetScope(mockCtrl)
			getterMock := mock_asyncpoller.NewMockGetter(mockCtrl)

			scopeMock.EXPECT().SubnetSpec().Return(&fakeSubnetSpec)
			getterMock.EXPECT().Get(gomockinternal.AContext(), &fakeSubnetSpec).Return(tc.existing, tc.getErr)
			if tc.expectedError == "" {
				scopeMock.EXPECT().UpdateDriftStatus(ServiceName, gomock.Any())
			}

			s := &Service{Scope: scopeMock, getter: getterMock}
			report, err := s.Diff(t.Context())
			if tc.expectedError != "" {
				g.Expect(err).To(HaveOccurred())
				g.Expect(err.Error()).To(ContainSubstring(tc.expectedError))
				return
			}
			g.Expect(err).NotTo(HaveOccurred())
			paths := []string{}
			for _, d := range report.Differences {
				paths = append(paths, d.Path)
			}
			g.Expect(paths).To(Equal(tc.expectedPaths))
		})
	}
}
