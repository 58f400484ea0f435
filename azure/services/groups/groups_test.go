/*
Copyright 2020 The Kubernetes Authors.

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

package groups

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"k8s.io/utils/ptr"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/asyncpoller/mock_asyncpoller"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/groups/mock_groups"
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

const groupID = "/subscriptions/123/resourceGroups/test-group"

var (
	fakeGroupSpec = GroupSpec{
		Name:     "test-group",
		Location: "test-location",
		AdditionalTags: infrav1.Tags{
			azure.ManagedByTagKey: azure.ManagedByTagValue,
			"foo":                 "bar",
		},
	}
	errNotFound = &azcore.ResponseError{
		StatusCode:  http.StatusNotFound,
		RawResponse: &http.Response{StatusCode: http.StatusNotFound},
	}
	sampleManagedGroup = armresources.ResourceGroup{
		ID:       ptr.To(groupID),
		Name:     ptr.To("test-group"),
		Location: ptr.To("test-location"),
		Tags: map[string]*string{
			azure.ManagedByTagKey: ptr.To(azure.ManagedByTagValue),
			"foo":                 ptr.To("bar"),
		},
	}
	sampleBYOGroup = armresources.ResourceGroup{
		ID:       ptr.To(groupID),
		Name:     ptr.To("test-group"),
		Location: ptr.To("test-location"),
		Tags: map[string]*string{
			"foo": ptr.To("bar"),
		},
	}
)

func TestReconcileGroups(t *testing.T) {
	testcases := []struct {
		name          string
		expectedError string
		expect        func(s *mock_groups.MockGroupScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder)
	}{
		{
			name:          "noop if no group spec is found",
			expectedError: "",
			expect: func(s *mock_groups.MockGroupScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.GroupSpec().Return(nil)
			},
		},
		{
			name:          "create group succeeds",
			expectedError: "",
			expect: func(s *mock_groups.MockGroupScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.GroupSpec().Return(&fakeGroupSpec)
				s.UseExternalResource().Return(false)
				r.CreateOrUpdateResource(gomockinternal.AContext(), &fakeGroupSpec, ServiceName).Return(sampleManagedGroup, nil)
				s.SetResourceID(groupID)
				s.UpdatePutStatus(infrav1.ResourceGroupReadyCondition, ServiceName, nil)
			},
		},
		{
			name:          "create resource group fails",
			expectedError: "#: Internal Server Error: StatusCode=500",
			expect: func(s *mock_groups.MockGroupScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.GroupSpec().Return(&fakeGroupSpec)
				s.UseExternalResource().Return(false)
				err := internalError()
				r.CreateOrUpdateResource(gomockinternal.AContext(), &fakeGroupSpec, ServiceName).Return(nil, err)
				s.UpdatePutStatus(infrav1.ResourceGroupReadyCondition, ServiceName, err)
			},
		},
		{
			name:          "external resource group is recorded without being written",
			expectedError: "",
			expect: func(s *mock_groups.MockGroupScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.GroupSpec().Return(&fakeGroupSpec)
				s.UseExternalResource().Return(true)
				g.Get(gomockinternal.AContext(), &fakeGroupSpec).Return(sampleBYOGroup, nil)
				s.SetResourceID(groupID)
				s.UpdatePutStatus(infrav1.ResourceGroupReadyCondition, ServiceName, nil)
			},
		},
		{
			name:          "missing external resource group fails",
			expectedError: "external resource test-group/test-group not found (service: group)",
			expect: func(s *mock_groups.MockGroupScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.GroupSpec().Return(&fakeGroupSpec)
				s.UseExternalResource().Return(true)
				g.Get(gomockinternal.AContext(), &fakeGroupSpec).Return(nil, errNotFound)
				s.UpdatePutStatus(infrav1.ResourceGroupReadyCondition, ServiceName, gomock.Any())
			},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			t.Parallel()
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()
			scopeMock := mock_groups.NewMockGroupScope(mockCtrl)
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

func TestDeleteGroups(t *testing.T) {
	testcases := []struct {
		name          string
		expectedError string
		expect        func(s *mock_groups.MockGroupScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder)
	}{
		{
			name:          "noop if no group spec is found",
			expectedError: "",
			expect: func(s *mock_groups.MockGroupScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.GroupSpec().Return(nil)
			},
		},
		{
			name:          "delete operation is successful for managed resource group",
			expectedError: "",
			expect: func(s *mock_groups.MockGroupScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.GroupSpec().AnyTimes().Return(&fakeGroupSpec)
				s.UseExternalResource().Return(false)
				g.Get(gomockinternal.AContext(), &fakeGroupSpec).Return(sampleManagedGroup, nil)
				r.DeleteResource(gomockinternal.AContext(), &fakeGroupSpec, ServiceName).Return(nil)
				s.UpdateDeleteStatus(infrav1.ResourceGroupReadyCondition, ServiceName, nil)
			},
		},
		{
			name:          "skip delete for unmanaged resource group",
			expectedError: "",
			expect: func(s *mock_groups.MockGroupScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.GroupSpec().AnyTimes().Return(&fakeGroupSpec)
				s.UseExternalResource().Return(false)
				g.Get(gomockinternal.AContext(), &fakeGroupSpec).Return(sampleBYOGroup, nil)
			},
		},
		{
			name:          "skip delete for external resource group",
			expectedError: "",
			expect: func(s *mock_groups.MockGroupScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.GroupSpec().Return(&fakeGroupSpec)
				s.UseExternalResource().Return(true)
			},
		},
		{
			name:          "resource group already deleted",
			expectedError: "",
			expect: func(s *mock_groups.MockGroupScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.GroupSpec().AnyTimes().Return(&fakeGroupSpec)
				s.UseExternalResource().Return(false)
				g.Get(gomockinternal.AContext(), &fakeGroupSpec).Return(nil, errNotFound)
				s.DeleteLongRunningOperationState(fakeGroupSpec.Name, ServiceName, infrav1.DeleteFuture)
				s.UpdateDeleteStatus(infrav1.ResourceGroupReadyCondition, ServiceName, nil)
			},
		},
		{
			name:          "error getting the management state fails the delete",
			expectedError: "could not get resource group management state",
			expect: func(s *mock_groups.MockGroupScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.GroupSpec().AnyTimes().Return(&fakeGroupSpec)
				s.UseExternalResource().Return(false)
				g.Get(gomockinternal.AContext(), &fakeGroupSpec).Return(nil, internalError())
			},
		},
		{
			name:          "resource group deletion fails",
			expectedError: "#: Internal Server Error: StatusCode=500",
			expect: func(s *mock_groups.MockGroupScopeMockRecorder, r *mock_asyncpoller.MockReconcilerMockRecorder, g *mock_asyncpoller.MockGetterMockRecorder) {
				s.DefaultedAzureServiceReconcileTimeout().Return(reconciler.DefaultAzureServiceReconcileTimeout)
				s.GroupSpec().AnyTimes().Return(&fakeGroupSpec)
				s.UseExternalResource().Return(false)
				g.Get(gomockinternal.AContext(), &fakeGroupSpec).Return(sampleManagedGroup, nil)
				err := internalError()
				r.DeleteResource(gomockinternal.AContext(), &fakeGroupSpec, ServiceName).Return(err)
				s.UpdateDeleteStatus(infrav1.ResourceGroupReadyCondition, ServiceName, err)
			},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			t.Parallel()
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()
			scopeMock := mock_groups.NewMockGroupScope(mockCtrl)
			asyncMock := mock_asyncpoller.NewMockReconciler(mockCtrl)
			getterMock := mock_asyncpoller.NewMockGetter(mockCtrl)

			tc.expect(scopeMock.EXPECT(), asyncMock.EXPECT(), getterMock.EXPECT())

			s := &Service{
				Scope:      scopeMock,
				Reconciler: asyncMock,
				getter:     getterMock,
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

func TestDiffGroup(t *testing.T) {
	g := NewWithT(t)
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	scopeMock := mock_groups.NewMockGroupScope(mockCtrl)
	getterMock := mock_asyncpoller.NewMockGetter(mockCtrl)

	drifted := sampleManagedGroup
	drifted.Tags = map[string]*string{
		azure.ManagedByTagKey: ptr.To(azure.ManagedByTagValue),
		"foo":                 ptr.To("baz"),
	}
	scopeMock.EXPECT().GroupSpec().Return(&fakeGroupSpec)
	getterMock.EXPECT().Get(gomockinternal.AContext(), &fakeGroupSpec).Return(drifted, nil)
	scopeMock.EXPECT().UpdateDriftStatus(ServiceName, gomock.Any())

	s := &Service{Scope: scopeMock, getter: getterMock}
	report, err := s.Diff(t.Context())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(report.Exists).To(BeTrue())
	g.Expect(report.Differences).To(HaveLen(1))
	g.Expect(report.Differences[0].Path).To(Equal("tags"))
	g.Expect(string(report.Patch)).To(MatchJSON(`{"tags":{"foo":"bar"}}`))
}
