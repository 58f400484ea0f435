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
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	"k8s.io/utils/ptr"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/asyncpoller"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/tele"
)

// ServiceName is the name of this service.
const ServiceName = "virtualnetwork"

// VNetScope defines the scope interface for a virtual network service.
type VNetScope interface {
	azure.Authorizer
	azure.AsyncStatusUpdater
	azure.AsyncReconciler
	azure.ResourceRecorder
	VNetSpec() azure.DriftSpecGetter
}

// Service provides operations on Azure resources.
type Service struct {
	Scope VNetScope
	asyncpoller.Reconciler
	getter asyncpoller.Getter
}

// New creates a new service.
func New(scope VNetScope) (*Service, error) {
	client, err := newClient(scope, scope.DefaultedAzureCallTimeout())
	if err != nil {
		return nil, err
	}
	return &Service{
		Scope:  scope,
		getter: client,
		Reconciler: asyncpoller.New[armnetwork.VirtualNetworksClientCreateOrUpdateResponse,
			armnetwork.VirtualNetworksClientDeleteResponse](scope, client, client),
	}, nil
}

// Name returns the service name.
func (s *Service) Name() string {
	return ServiceName
}

// Reconcile idempotently creates or updates a virtual network.
func (s *Service) Reconcile(ctx context.Context) error {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "virtualnetworks.Service.Reconcile")
	defer done()

	ctx, cancel := context.WithTimeout(ctx, s.Scope.DefaultedAzureServiceReconcileTimeout())
	defer cancel()

	vnetSpec := s.Scope.VNetSpec()
	if vnetSpec == nil {
		return nil
	}

	var result interface{}
	var err error
	if s.Scope.UseExternalResource() {
		result, err = asyncpoller.GetExternalResource(ctx, s.getter, vnetSpec, ServiceName)
	} else {
		result, err = s.CreateOrUpdateResource(ctx, vnetSpec, ServiceName)
	}
	if err == nil {
		if vnet, ok := result.(armnetwork.VirtualNetwork); ok {
			s.Scope.SetResourceID(ptr.Deref(vnet.ID, ""))
		}
	}
	s.Scope.UpdatePutStatus(infrav1.VNetReadyCondition, ServiceName, err)
	return err
}

// Delete deletes the virtual network unless it is an external resource.
func (s *Service) Delete(ctx context.Context) error {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "virtualnetworks.Service.Delete")
	defer done()

	ctx, cancel := context.WithTimeout(ctx, s.Scope.DefaultedAzureServiceReconcileTimeout())
	defer cancel()

	vnetSpec := s.Scope.VNetSpec()
	if vnetSpec == nil {
		return nil
	}

	if s.Scope.UseExternalResource() {
		log.V(2).Info("Skipping deletion of external vnet", "vnet", vnetSpec.ResourceName())
		return nil
	}

	err := s.DeleteResource(ctx, vnetSpec, ServiceName)
	s.Scope.UpdateDeleteStatus(infrav1.VNetReadyCondition, ServiceName, err)
	return err
}

// Diff reports how the virtual network differs from its configuration.
func (s *Service) Diff(ctx context.Context) (*azure.DriftReport, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "virtualnetworks.Service.Diff")
	defer done()

	vnetSpec := s.Scope.VNetSpec()
	if vnetSpec == nil {
		return &azure.DriftReport{}, nil
	}
	report, err := asyncpoller.ReportDrift(ctx, s.getter, vnetSpec, ServiceName)
	if err != nil {
		return nil, err
	}
	s.Scope.UpdateDriftStatus(ServiceName, report)
	return report, nil
}
