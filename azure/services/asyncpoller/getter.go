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

package asyncpoller

import (
	"context"

	"github.com/pkg/errors"

	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/tele"
)

// GetExternalResource gets a resource the plugin uses but does not manage. The resource must exist.
func GetExternalResource(ctx context.Context, getter Getter, spec azure.ResourceSpecGetter, serviceName string) (interface{}, error) {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "asyncpoller.GetExternalResource",
		tele.KVP("service", serviceName),
		tele.KVP("resource", spec.ResourceName()),
	)
	defer done()

	resourceName, rgName := spec.ResourceName(), spec.ResourceGroupName()
	existing, err := getter.Get(ctx, spec)
	if azure.ResourceNotFound(err) {
		return nil, azure.WithTerminalError(errors.Errorf("external resource %s/%s not found (service: %s)", rgName, resourceName, serviceName))
	} else if err != nil {
		errWrapped := errors.Wrapf(err, "failed to get external resource %s/%s (service: %s)", rgName, resourceName, serviceName)
		return nil, azure.WithTransientError(errWrapped, getRetryAfterFromError(err))
	}
	log.V(2).Info("using external resource", "service", serviceName, "resource", resourceName, "resourceGroup", rgName)
	return existing, nil
}

// ReportDrift gets the resource of spec and reports how it differs from its configuration.
// A resource that does not exist has no drift.
func ReportDrift(ctx context.Context, getter Getter, spec azure.DriftSpecGetter, serviceName string) (*azure.DriftReport, error) {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "asyncpoller.ReportDrift",
		tele.KVP("service", serviceName),
		tele.KVP("resource", spec.ResourceName()),
	)
	defer done()

	resourceName, rgName := spec.ResourceName(), spec.ResourceGroupName()
	existing, err := getter.Get(ctx, spec)
	if azure.ResourceNotFound(err) {
		log.V(2).Info("resource not found, nothing to compare", "service", serviceName, "resource", resourceName, "resourceGroup", rgName)
		return &azure.DriftReport{}, nil
	} else if err != nil {
		errWrapped := errors.Wrapf(err, "failed to get existing resource %s/%s (service: %s)", rgName, resourceName, serviceName)
		return nil, azure.WithTransientError(errWrapped, getRetryAfterFromError(err))
	}

	report, err := azure.ReportDrift(ctx, spec, existing)
	if err != nil {
		return nil, azure.WithTerminalError(err)
	}
	log.V(2).Info("compared resource with its configuration", "service", serviceName, "resource", resourceName, "differences", len(report.Differences))
	return report, nil
}
