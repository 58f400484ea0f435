/*
Copyright 2018 The Kubernetes Authors.

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

package azure

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/drift"
)

// Reconciler is a generic interface used by components offering a type of service.
// Example: virtualnetworks service would offer Reconcile/Delete methods.
type Reconciler interface {
	Reconcile(ctx context.Context) error
	Delete(ctx context.Context) error
}

// ServiceReconciler is an Azure service reconciler which can reconcile an Azure service.
type ServiceReconciler interface {
	Name() string
	Reconciler
}

// DriftReporter is a service that can compare the node's resource with its configuration.
type DriftReporter interface {
	Diff(ctx context.Context) (*DriftReport, error)
}

// Authorizer is an interface which can get the subscription ID and the credential for an Azure service.
type Authorizer interface {
	SubscriptionID() string
	ClientID() string
	TenantID() string
	CloudEnvironment() string
	Token() azcore.TokenCredential
	HashKey() string
}

// AsyncReconciler is an interface for the timeouts of an asynchronous reconcile.
type AsyncReconciler interface {
	DefaultedAzureCallTimeout() time.Duration
	DefaultedAzureServiceReconcileTimeout() time.Duration
	DefaultedReconcilerRequeue() time.Duration
}

// AsyncStatusUpdater is an interface used to keep track of long running operations in the node's
// runtime properties, which hold Conditions and Futures.
type AsyncStatusUpdater interface {
	SetLongRunningOperationState(*infrav1.Future)
	GetLongRunningOperationState(name, service string, futureType infrav1.FutureType) *infrav1.Future
	DeleteLongRunningOperationState(name, service string, futureType infrav1.FutureType)
	UpdatePutStatus(infrav1.ConditionType, string, error)
	UpdateDeleteStatus(infrav1.ConditionType, string, error)
	UpdatePostStatus(infrav1.ConditionType, string, error)
}

// ResourceRecorder records what the plugin learned about the node's resource in its runtime properties.
type ResourceRecorder interface {
	// UseExternalResource reports whether the resource is managed outside of the plugin.
	UseExternalResource() bool
	SetResourceID(id string)
	SetOutput(key, value string)
	UpdateDriftStatus(service string, report *DriftReport)
}

// ResourceSpecGetter is an interface for getting all the required information to create/update/delete an Azure resource.
type ResourceSpecGetter interface {
	// ResourceName returns the name of the resource.
	ResourceName() string
	// OwnerResourceName returns the name of the resource that owns the resource
	// in the case that the resource is an Azure subresource.
	OwnerResourceName() string
	// ResourceGroupName returns the name of the resource group the resource is in.
	ResourceGroupName() string
	// Parameters takes the existing resource and returns the desired parameters of the resource.
	// If the resource does not exist, existing is nil.
	// If no update is needed on the resource, Parameters should return nil.
	Parameters(ctx context.Context, existing interface{}) (params interface{}, err error)
}

// DriftSpecGetter is a ResourceSpecGetter that can render both its desired configuration
// and an existing resource as plain values for the drift detector.
type DriftSpecGetter interface {
	ResourceSpecGetter
	// Detector returns the field sets compared for the resource.
	Detector() drift.Detector
	// DriftValues returns the desired configuration and the observed configuration of existing.
	DriftValues(existing interface{}) (desired, observed map[string]interface{}, err error)
}
