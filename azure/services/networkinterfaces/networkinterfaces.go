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

package networkinterfaces

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
const ServiceName = "interfaces"

// PrivateIPAddressOutput is the runtime property holding the private address of the interface.
const PrivateIPAddressOutput = "private_ip_address"

// NICScope defines the scope interface for a network interfaces service.
type NICScope interface {
	azure.Authorizer
	azure.AsyncStatusUpdater
	azure.AsyncReconciler
	azure.ResourceRecorder
	NICSpec() azure.DriftSpecGetter
}

// Service provides operations on Azure resources.
type Service struct {
	Scope NICScope
	asyncpoller.Reconciler
	getter asyncpoller.Getter
}

// New creates a new service.
func New(scope NICScope) (*Service, error) {
	client, err := newClient(scope, scope.DefaultedAzureCallTimeout())
	if err != nil {
		return nil, err
	}
	return &Service{
		Scope:  scope,
		getter: client,
		Reconciler: asyncpoller.New[armnetwork.InterfacesClientCreateOrUpdateResponse,
			armnetwork.InterfacesClientDeleteResponse](scope, client, client),
	}, nil
}

// Name returns the service name.
func (s *Service) Name() string {
	return ServiceName
}

// Reconcile idempotently creates or updates a network interface.
func (s *Service) Reconcile(ctx context.Context) error {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "networkinterfaces.Service.Reconcile")
	defer done()

	ctx, cancel := context.WithTimeout(ctx, s.Scope.DefaultedAzureServiceReconcileTimeout())
	defer cancel()

	nicSpec := s.Scope.NICSpec()
	if nicSpec == nil {
		return nil
	}

	var result interface{}
	var err error
	if s.Scope.UseExternalResource() {
		result, err = asyncpoller.GetExternalResource(ctx, s.getter, nicSpec, ServiceName)
	} else {
		result, err = s.CreateOrUpdateResource(ctx, nicSpec, ServiceName)
	}
	if err == nil {
		if nic, ok := result.(armnetwork.Interface); ok {
			s.Scope.SetResourceID(ptr.Deref(nic.ID, ""))
			s.Scope.SetOutput(PrivateIPAddressOutput, PrivateIPAddress(nic))
		}
	}
	s.Scope.UpdatePutStatus(infrav1.NetworkInterfaceReadyCondition, ServiceName, err)
	return err
}

// Delete deletes the network interface unless it is an external resource.
func (s *Service) Delete(ctx context.Context) error {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "networkinterfaces.Service.Delete")
	defer done()

	ctx, cancel := context.WithTimeout(ctx, s.Scope.DefaultedAzureServiceReconcileTimeout())
	defer cancel()

	nicSpec := s.Scope.NICSpec()
	if nicSpec == nil {
		return nil
	}

	if s.Scope.UseExternalResource() {
		log.V(2).Info("Skipping deletion of external network interface", "networkInterface", nicSpec.ResourceName())
		return nil
	}

	err := s.DeleteResource(ctx, nicSpec, ServiceName)
	if err == nil {
		s.Scope.SetOutput(PrivateIPAddressOutput, "")
	}
	s.Scope.UpdateDeleteStatus(infrav1.NetworkInterfaceReadyCondition, ServiceName, err)
	return err
}

// Diff reports how the network interface differs from its configuration.
func (s *Service) Diff(ctx context.Context) (*azure.DriftReport, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "networkinterfaces.Service.Diff")
	defer done()

	nicSpec := s.Scope.NICSpec()
	if nicSpec == nil {
		return &azure.DriftReport{}, nil
	}
	report, err := asyncpoller.ReportDrift(ctx, s.getter, nicSpec, ServiceName)
	if err != nil {
		return nil, err
	}
	s.Scope.UpdateDriftStatus(ServiceName, report)
	return report, nil
}
