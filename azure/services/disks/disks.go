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
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"k8s.io/utils/ptr"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/asyncpoller"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/tele"
)

// ServiceName is the name of this service.
const ServiceName = "disk"

// DiskScope defines the scope interface for a disk service.
type DiskScope interface {
	azure.Authorizer
	azure.AsyncStatusUpdater
	azure.AsyncReconciler
	azure.ResourceRecorder
	DiskSpec() azure.DriftSpecGetter
}

// Service provides operations on Azure resources.
type Service struct {
	Scope DiskScope
	asyncpoller.Reconciler
	getter asyncpoller.Getter
}

// New creates a new disks service.
func New(scope DiskScope) (*Service, error) {
	client, err := newClient(scope, scope.DefaultedAzureCallTimeout())
	if err != nil {
		return nil, err
	}
	return &Service{
		Scope:  scope,
		getter: client,
		Reconciler: asyncpoller.New[armcompute.DisksClientCreateOrUpdateResponse,
			armcompute.DisksClientDeleteResponse](scope, client, client),
	}, nil
}

// Name returns the service name.
func (s *Service) Name() string {
	return ServiceName
}

// Reconcile idempotently creates or updates a managed disk.
func (s *Service) Reconcile(ctx context.Context) error {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "disks.Service.Reconcile")
	defer done()

	ctx, cancel := context.WithTimeout(ctx, s.Scope.DefaultedAzureServiceReconcileTimeout())
	defer cancel()

	diskSpec := s.Scope.DiskSpec()
	if diskSpec == nil {
		return nil
	}

	var result interface{}
	var err error
	if s.Scope.UseExternalResource() {
		result, err = asyncpoller.GetExternalResource(ctx, s.getter, diskSpec, ServiceName)
	} else {
		result, err = s.CreateOrUpdateResource(ctx, diskSpec, ServiceName)
	}
	if err == nil {
		if disk, ok := result.(armcompute.Disk); ok {
			s.Scope.SetResourceID(ptr.Deref(disk.ID, ""))
		}
	}
	s.Scope.UpdatePutStatus(infrav1.DiskReadyCondition, ServiceName, err)
	return err
}

// Delete deletes the managed disk unless it is an external resource.
func (s *Service) Delete(ctx context.Context) error {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "disks.Service.Delete")
	defer done()

	ctx, cancel := context.WithTimeout(ctx, s.Scope.DefaultedAzureServiceReconcileTimeout())
	defer cancel()

	diskSpec := s.Scope.DiskSpec()
	if diskSpec == nil {
		return nil
	}

	if s.Scope.UseExternalResource() {
		log.V(2).Info("Skipping deletion of external disk", "disk", diskSpec.ResourceName())
		return nil
	}

	err := s.DeleteResource(ctx, diskSpec, ServiceName)
	s.Scope.UpdateDeleteStatus(infrav1.DiskReadyCondition, ServiceName, err)
	return err
}

// DeleteDisks deletes every disk in specs, independently of the result of the
// previous one. A disk that is already gone counts as deleted.
func (s *Service) DeleteDisks(ctx context.Context, specs []azure.ResourceSpecGetter) error {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "disks.Service.DeleteDisks")
	defer done()

	var result error

	// If multiple errors occur, we return the most pressing one.
	//  Order of precedence (highest -> lowest) is: error that is not an operationNotDoneError (ie. error deleting) -> operationNotDoneError (ie. deleting in progress) -> no error (ie. deleted)
	for _, diskSpec := range specs {
		if err := s.DeleteResource(ctx, diskSpec, ServiceName); err != nil {
			if !azure.IsOperationNotDoneError(err) || result == nil {
				result = err
			}
		}
	}
	return result
}

// Diff reports how the managed disk differs from its configuration.
func (s *Service) Diff(ctx context.Context) (*azure.DriftReport, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "disks.Service.Diff")
	defer done()

	diskSpec := s.Scope.DiskSpec()
	if diskSpec == nil {
		return &azure.DriftReport{}, nil
	}
	report, err := asyncpoller.ReportDrift(ctx, s.getter, diskSpec, ServiceName)
	if err != nil {
		return nil, err
	}
	s.Scope.UpdateDriftStatus(ServiceName, report)
	return report, nil
}
