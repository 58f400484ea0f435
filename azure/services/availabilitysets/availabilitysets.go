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
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/pkg/errors"
	"k8s.io/utils/ptr"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/asyncpoller"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/tele"
)

// ServiceName is the name of this service.
const ServiceName = "availabilityset"

// AvailabilitySetScope defines the scope interface for an availability sets service.
type AvailabilitySetScope interface {
	azure.Authorizer
	azure.AsyncStatusUpdater
	azure.AsyncReconciler
	azure.ResourceRecorder
	AvailabilitySetSpec() azure.DriftSpecGetter
}

// Service provides operations on Azure resources.
type Service struct {
	Scope AvailabilitySetScope
	asyncpoller.Reconciler
	getter asyncpoller.Getter
}

// New creates a new availability sets service.
func New(scope AvailabilitySetScope) (*Service, error) {
	client, err := newClient(scope, scope.DefaultedAzureCallTimeout())
	if err != nil {
		return nil, err
	}
	return &Service{
		Scope:  scope,
		getter: client,
		Reconciler: asyncpoller.New[armcompute.AvailabilitySetsClientCreateOrUpdateResponse,
			armcompute.AvailabilitySetsClientDeleteResponse](scope, client, client),
	}, nil
}

// Name returns the service name.
func (s *Service) Name() string {
	return ServiceName
}

// Reconcile idempotently creates or updates an availability set.
func (s *Service) Reconcile(ctx context.Context) error {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "availabilitysets.Service.Reconcile")
	defer done()

	ctx, cancel := context.WithTimeout(ctx, s.Scope.DefaultedAzureServiceReconcileTimeout())
	defer cancel()

	setSpec := s.Scope.AvailabilitySetSpec()
	if setSpec == nil {
		return nil
	}

	var result interface{}
	var err error
	if s.Scope.UseExternalResource() {
		result, err = asyncpoller.GetExternalResource(ctx, s.getter, setSpec, ServiceName)
	} else {
		result, err = s.CreateOrUpdateResource(ctx, setSpec, ServiceName)
	}
	if err == nil {
		if availabilitySet, ok := result.(armcompute.AvailabilitySet); ok {
			s.Scope.SetResourceID(ptr.Deref(availabilitySet.ID, ""))
		}
	}
	s.Scope.UpdatePutStatus(infrav1.AvailabilitySetReadyCondition, ServiceName, err)
	return err
}

// Delete deletes the availability set once no virtual machine is left in it.
func (s *Service) Delete(ctx context.Context) error {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "availabilitysets.Service.Delete")
	defer done()

	ctx, cancel := context.WithTimeout(ctx, s.Scope.DefaultedAzureServiceReconcileTimeout())
	defer cancel()

	setSpec := s.Scope.AvailabilitySetSpec()
	if setSpec == nil {
		return nil
	}

	if s.Scope.UseExternalResource() {
		log.V(2).Info("Skipping deletion of external availability set", "availabilitySet", setSpec.ResourceName())
		return nil
	}

	var resultErr error
	existingSet, err := s.getter.Get(ctx, setSpec)
	if err != nil {
		if !azure.ResourceNotFound(err) {
			resultErr = errors.Wrapf(err, "failed to get availability set %s in resource group %s", setSpec.ResourceName(), setSpec.ResourceGroupName())
		}
	} else {
		availabilitySet, ok := existingSet.(armcompute.AvailabilitySet)
		switch {
		case !ok:
			resultErr = errors.Errorf("%T is not an armcompute.AvailabilitySet", existingSet)
		case availabilitySet.Properties != nil && len(availabilitySet.Properties.VirtualMachines) > 0:
			// only delete when the availability set does not have any vms
			log.V(2).Info("Skipping deletion of availability set still in use", "availabilitySet", setSpec.ResourceName(), "vms", len(availabilitySet.Properties.VirtualMachines))
		default:
			resultErr = s.DeleteResource(ctx, setSpec, ServiceName)
		}
	}

	s.Scope.UpdateDeleteStatus(infrav1.AvailabilitySetReadyCondition, ServiceName, resultErr)
	return resultErr
}

// Diff reports how the availability set differs from its configuration.
func (s *Service) Diff(ctx context.Context) (*azure.DriftReport, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "availabilitysets.Service.Diff")
	defer done()

	setSpec := s.Scope.AvailabilitySetSpec()
	if setSpec == nil {
		return &azure.DriftReport{}, nil
	}
	report, err := asyncpoller.ReportDrift(ctx, s.getter, setSpec, ServiceName)
	if err != nil {
		return nil, err
	}
	s.Scope.UpdateDriftStatus(ServiceName, report)
	return report, nil
}
