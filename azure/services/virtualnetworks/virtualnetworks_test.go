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
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/virtualnetworks/mock_virtualnetworks"
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

const vnetID = "/subscriptions/123/resourceGroups/my-rg/providers/Microsoft.Network/virtualNetworks/my-vnet"

var (
	fakeVNetSpec = VNetSpec{
		ResourceGroup:  "my-rg",
		Name:           "my-vnet",
		Location:       "westeurope",
		AdditionalTags: infrav1.Tags{"env": "dev"},
		Config: infrav1.VirtualNetworkConfig{
			AddressSpace: &infrav1.AddressSpace{AddressPrefixes: []string{"10.0.0.0/16"}},
		},
	}
	errNotFound = &azcore.ResponseError{
		StatusCode:  http.StatusNotFound,
		RawResponse: &http.Response{StatusCode: http.StatusNotFound},
	}
	sampleVNet = armnetwork.VirtualNetwork{
		ID:       ptr.To(vnetID),
		Name:     ptr.To("my-vnet"),
		Location: ptr.To("westeurope"),
		Tags:     map[string]*string{"env": ptr.To("dev")},
		Properties: &armnetwork.VirtualNetworkPropertiesFormat{
			AddressSpace: &armnetwork.AddressSpace{
				AddressPrefixes: []*string{ptr.To("10.0.0.0/16")},
			},
			Subnets: []*armnetwork.Subnet{
				{Name: ptr.To("default"), ID: ptr.To(vnetID + "/subnets/default")},
			},
			ProvisioningState: ptr.To(armnetwork.ProvisioningStateSucceeded),
		},
	}
)

func TestReconcileVnet(t *testing.T) {
	testcases := []struct {
		name          string
		expectedError string
		expect        func(s *mock_virtualnetworks.MockVNetScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder)
	}{
		{
			name:          "noop if no vnet spec is found",
			expectedError: "",
			expect: func(s *mock_virtualnetworks.MockVNetScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.VNetSpec().Return(nil)
			},
		},
		{
			name:          "create vnet succeeds",
			expectedError: "",
			expect: func(s *mock_virtualnetworks.MockVNetScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.VNetSpec().Return(&fakeVNetSpec)
				s.UseExternalResource().Return(false)
				r.CreateOrUpdateResource(gomockinternal.AContext(), &fakeVNetSpec, ServiceName).Return(sampleVNet, nil)
				s.SetResourceID(vnetID)
				s.UpdatePutStatus(infrav1.VNetReadyCondition, ServiceName, nil)
			},
		},
		{
			name:          "create vnet fails",
			expectedError: "#: Internal Server Error: StatusCode=500",
			expect: func(s *mock_virtualnetworks.MockVNetScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.VNetSpec().Return(&fakeVNetSpec)
				s.UseExternalResource().Return(false)
				err := internalError()
				r.CreateOrUpdateResource(gomockinternal.AContext(), &fakeVNetSpec, ServiceName).Return(nil, err)
				s.UpdatePutStatus(infrav1.VNetReadyCondition, ServiceName, err)
			},
		},
		{
			name:          "external vnet is recorded without being written",
			expectedError: "",
			expect: func(s *mock_virtualnetworks.MockVNetScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.VNetSpec().Return(&fakeVNetSpec)
				s.UseExternalResource().Return(true)
				g.Get(gomockinternal.AContext(), &fakeVNetSpec).Return(sampleVNet, nil)
				s.SetResourceID(vnetID)
				s.UpdatePutStatus(infrav1.VNetReadyCondition, ServiceName, nil)
			},
		},
		{
			name:          "missing external vnet fails",
			expectedError: "external resource my-rg/my-vnet not found (service: virtualnetwork)",
			expect: func(s *mock_virtualnetworks.MockVNetScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.VNetSpec().Return(&fakeVNetSpec)
				s.UseExternalResource().Return(true)
				g.Get(gomockinternal.AContext(), &fakeVNetSpec).Return(nil, errNotFound)
				s.UpdatePutStatus(infrav1.VNetReadyCondition, ServiceName, gomock.Any())
			},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			t.Parallel()
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()
			scopeMock := mock_virtualnetworks.NewMockVNetScope(mockCtrl)
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

func TestDeleteVnet(t *testing.T) {
	testcases := []struct {
		name          string
		expectedError string
		expect        func(s *mock_virtualnetworks.MockVNetScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder)
	}{
		{
			name:          "noop if no vnet spec is found",
			expectedError: "",
			expect: func(s *mock_virtualnetworks.MockVNetScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.VNetSpec().Return(nil)
			},
		},
		{
			name:          "delete vnet succeeds",
			expectedError: "",
			expect: func(s *mock_virtualnetworks.MockVNetScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.VNetSpec().Return(&fakeVNetSpec)
				s.UseExternalResource().Return(false)
				r.DeleteResource(gomockinternal.AContext(), &fakeVNetSpec, ServiceName).Return(nil)
				s.UpdateDeleteStatus(infrav1.VNetReadyCondition, ServiceName, nil)
			},
		},
		{
			name:          "skip delete for external vnet",
			expectedError: "",
			expect: func(s *mock_virtualnetworks.MockVNetScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.VNetSpec().Return(&fakeVNetSpec)
				s.UseExternalResource().Return(true)
			},
		},
		{
			name:          "delete vnet fails",
			expectedError: "#: Internal Server Error: StatusCode=500",
			expect: func(s *mock_virtualnetworks.MockVNetScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.VNetSpec().Return(&fakeVNetSpec)
				s.UseExternalResource().Return(false)
				err := internalError()
				r.DeleteResource(gomockinternal.AContext(), &fakeVNetSpec, ServiceName).Return(err)
				s.UpdateDeleteStatus(infrav1.VNetReadyCondition, ServiceName, err)
			},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			t.Parallel()
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()
			scopeMock := mock_virtualnetworks.NewMockVNetScope(mockCtrl)
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

func TestDiffVnet(t *testing.T) {
	t.Run("drifted address space", func(t *testing.T) {
		g := NewWithT(t)
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		scopeMock := mock_virtualnetworks.NewMockVNetScope(mockCtrl)
		getterMock := mock_asyncpoller.NewMockGetter(mockCtrl)

		drifted := sampleVNet
		drifted.Properties = &armnetwork.VirtualNetworkPropertiesFormat{
			AddressSpace: &armnetwork.AddressSpace{
				AddressPrefixes: []*string{ptr.To("10.0.0.0/16"), ptr.To("10.1.0.0/16")},
			},
		}
		scopeMock.EXPECT().VNetSpec().Return(&fakeVNetSpec)
		getterMock.EXPECT().Get(gomockinternal.AContext(), &fakeVNetSpec).Return(drifted, nil)
		scopeMock.EXPECT().UpdateDriftStatus(ServiceName, gomock.Any())

		s := &Service{Scope: scopeMock, getter: getterMock}
		report, err := s.Diff(t.Context())
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(report.Differences).To(HaveLen(1))
		g.Expect(report.Differences[0].Path).To(Equal("address_space.address_prefixes"))
		g.Expect(string(report.Patch)).To(MatchJSON(`{"address_space":{"address_prefixes":["10.0.0.0/16"]}}`))
	})

	t.Run("missing vnet", func(t *testing.T) {
		g := NewWithT(t)
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		scopeMock := mock_virtualnetworks.NewMockVNetScope(mockCtrl)
		getterMock := mock_asyncpoller.NewMockGetter(mockCtrl)

		scopeMock.EXPECT().VNetSpec().Return(&fakeVNetSpec)
		getterMock.EXPECT().Get(gomockinternal.AContext(), &fakeVNetSpec).Return(nil, errNotFound)
		scopeMock.EXPECT().UpdateDriftStatus(ServiceName, gomock.Any())

		s := &Service{Scope: scopeMock, getter: getterMock}
		report, err := s.Diff(t.Context())
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(report.Exists).To(BeFalse())
		g.Expect(report.Drifted()).To(BeFalse())
	})
}
