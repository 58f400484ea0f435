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

package groups

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/pkg/errors"
	"k8s.io/utils/ptr"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/converters"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/asyncpoller"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/tele"
)

// ServiceName is the name of this service.
const ServiceName = "group"

// Service provides operations on Azure resources.
type Service struct {
	Scope GroupScope
	asyncpoller.Reconciler
	getter asyncpoller.Getter
}

// GroupScope defines the scope interface for a group service.
type GroupScope interface {
	azure.Authorizer
	azure.AsyncStatusUpdater
	azure.AsyncReconciler
	azure.ResourceRecorder
	GroupSpec() azure.DriftSpecGetter
}

// New creates a new service.
func New(scope GroupScope) (*Service, error) {
	client, err := newClient(scope, scope.DefaultedAzureCallTimeout())
	if err != nil {
		return nil, err
	}
	return &Service{
		Scope:  scope,
		getter: client,
		Reconciler: asyncpoller.New[armresources.ResourceGroupsClientCreateOrUpdateResponse,
			armresources.ResourceGroupsClientDeleteResponse](scope, client, client),
	}, nil
}

// Name returns the service name.
func (s *Service) Name() string {
	return ServiceName
}

// Reconcile idempotently creates or updates a resource group.
func (s *Service) Reconcile(ctx context.Context) error {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "groups.Service.Reconcile")
	defer done()

	ctx, cancel := context.WithTimeout(ctx, s.Scope.DefaultedAzureServiceReconcileTimeout())
	defer cancel()

	groupSpec := s.Scope.GroupSpec()
	if groupSpec == nil {
		return nil
	}

	var result interface{}
	var err error
	if s.Scope.UseExternalResource() {
		result, err = asyncpoller.GetExternalResource(ctx, s.getter, groupSpec, ServiceName)
	} else {
		result, err = s.CreateOrUpdateResource(ctx, groupSpec, ServiceName)
	}
	if err == nil {
		if group, ok := result.(armresources.ResourceGroup); ok {
			s.Scope.SetResourceID(ptr.Deref(group.ID, ""))
		}
	}
	s.Scope.UpdatePutStatus(infrav1.ResourceGroupReadyCondition, ServiceName, err)
	return err
}

// Delete deletes the resource group if it is managed by the plugin.
func (s *Service) Delete(ctx context.Context) error {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "groups.Service.Delete")
	defer done()

	ctx, cancel := context.WithTimeout(ctx, s.Scope.DefaultedAzureServiceReconcileTimeout())
	defer cancel()

	groupSpec := s.Scope.GroupSpec()
	if groupSpec == nil {
		return nil
	}

	if s.Scope.UseExternalResource() {
		log.V(2).Info("Skipping deletion of external resource group", "resourceGroup", groupSpec.ResourceName())
		return nil
	}

	// check that the resource group was created by the plugin.
	managed, err := s.IsManaged(ctx)
	if err != nil {
		if azure.ResourceNotFound(err) {
			// already deleted or doesn't exist, cleanup status and return.
			s.Scope.DeleteLongRunningOperationState(groupSpec.ResourceName(), ServiceName, infrav1.DeleteFuture)
			s.Scope.UpdateDeleteStatus(infrav1.ResourceGroupReadyCondition, ServiceName, nil)
			return nil
		}
		return errors.Wrap(err, "could not get resource group management state")
	}
	if !managed {
		log.V(2).Info("Skipping resource group deletion in unmanaged mode", "resourceGroup", groupSpec.ResourceName())
		return nil
	}

	err = s.DeleteResource(ctx, groupSpec, ServiceName)
	s.Scope.UpdateDeleteStatus(infrav1.ResourceGroupReadyCondition, ServiceName, err)
	return err
}

// Diff reports how the resource group differs from its configuration.
func (s *Service) Diff(ctx context.Context) (*azure.DriftReport, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "groups.Service.Diff")
	defer done()

	groupSpec := s.Scope.GroupSpec()
	if groupSpec == nil {
		return &azure.DriftReport{}, nil
	}
	report, err := asyncpoller.ReportDrift(ctx, s.getter, groupSpec, ServiceName)
	if err != nil {
		return nil, err
	}
	s.Scope.UpdateDriftStatus(ServiceName, report)
	return report, nil
}

// IsManaged returns true if the resource group carries the managed-by tag of the plugin,
// meaning that the resource group's lifecycle is managed.
func (s *Service) IsManaged(ctx context.Context) (bool, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "groups.Service.IsManaged")
	defer done()

	groupSpec := s.Scope.GroupSpec()
	groupIface, err := s.getter.Get(ctx, groupSpec)
	if err != nil {
		return false, err
	}
	group, ok := groupIface.(armresources.ResourceGroup)
	if !ok {
		return false, errors.Errorf("%T is not an armresources.ResourceGroup", groupIface)
	}

	tags := converters.MapToTags(group.Tags)
	return tags[azure.ManagedByTagKey] == azure.ManagedByTagValue, nil
}
