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
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	"k8s.io/utils/ptr"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/asyncpoller"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/tele"
)

// ServiceName is the name of this service.
const ServiceName = "subnet"

// SubnetScope defines the scope interface for a subnet service.
type SubnetScope interface {
	azure.Authorizer
	azure.AsyncStatusUpdater
	azure.AsyncReconciler
	azure.ResourceRecorder
	SubnetSpec() azure.DriftSpecGetter
}

// Service provides operations on Azure resources.
type Service struct {
	Scope SubnetScope
	asyncpoller.Reconciler
	getter asyncpoller.Getter
}

// New creates a new service.
func New(scope SubnetScope) (*Service, error) {
	client, err := newClient(scope, scope.DefaultedAzureCallTimeout())
	if err != nil {
		return nil, err
	}
	return &Service{
		Scope:  scope,
		getter: client,
		Reconciler: asyncpoller.New[armnetwork.SubnetsClientCreateOrUpdateResponse,
			armnetwork.SubnetsClientDeleteResponse](scope, client, client),
	}, nil
}

// Name returns the service name.
func (s *Service) Name() string {
	return ServiceName
}

// Reconcile idempotently creates or updates a subnet.
func (s *Service) Reconcile(ctx context.Context) error {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "subnets.Service.Reconcile")
	defer done()

	ctx, cancel := context.WithTimeout(ctx, s.Scope.DefaultedAzureServiceReconcileTimeout())
	defer cancel()

	subnetSpec := s.Scope.SubnetSpec()
	if subnetSpec == nil {
		return nil
	}

	var result interface{}
	var err error
	if s.Scope.UseExternalResource() {
		result, err = asyncpoller.GetExternalResource(ctx, s.getter, subnetSpec, ServiceName)
	} else {
		result, err = s.CreateOrUpdateResource(ctx, subnetSpec, ServiceName)
	}
	if err == nil {
		if subnet, ok := result.(armnetwork.Subnet); ok {
			s.Scope.SetResourceID(ptr.Deref(subnet.ID, ""))
		}
	}
	s.Scope.UpdatePutStatus(infrav1.SubnetReadyCondition, ServiceName, err)
	return err
}

// Delete deletes the subnet unless it is an external resource.
func (s *Service) Delete(ctx context.Context) error {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "subnets.Service.Delete")
	defer done()

	ctx, cancel := context.WithTimeout(ctx, s.Scope.DefaultedAzureServiceReconcileTimeout())
	defer cancel()

	subnetSpec := s.Scope.SubnetSpec()
	if subnetSpec == nil {
		return nil
	}

	if s.Scope.UseExternalResource() {
		log.V(2).Info("Skipping deletion of external subnet", "subnet", subnetSpec.ResourceName(), "vnet", subnetSpec.OwnerResourceName())
		return nil
	}

	err := s.DeleteResource(ctx, subnetSpec, ServiceName)
	s.Scope.UpdateDeleteStatus(infrav1.SubnetReadyCondition, ServiceName, err)
	return err
}

// Diff reports how the subnet differs from its configuration.
func (s *Service) Diff(ctx context.Context) (*azure.DriftReport, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "subnets.Service.Diff")
	defer done()

	subnetSpec := s.Scope.SubnetSpec()
	if subnetSpec == nil {
		return &azure.DriftReport{}, nil
	}
	report, err := asyncpoller.ReportDrift(ctx, s.getter, subnetSpec, ServiceName)
	if err != nil {
		return nil, err
	}
	s.Scope.UpdateDriftStatus(ServiceName, report)
	return report, nil
}
