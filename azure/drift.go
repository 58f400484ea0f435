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

package azure

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/converters"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/feature"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/metrics"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/drift"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/tele"
)

// IsUpToDate reports whether existing matches the configuration of spec. It is
// what a spec's Parameters consults before building an update. With the
// DriftDetection feature gate disabled every existing resource is up to date.
func IsUpToDate(ctx context.Context, serviceName string, spec DriftSpecGetter, existing interface{}) (bool, error) {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "azure.IsUpToDate",
		tele.KVP("service", serviceName),
		tele.KVP("resource", spec.ResourceName()),
	)
	defer done()

	if !feature.Gates.Enabled(feature.DriftDetection) {
		log.V(4).Info("drift detection is disabled, keeping existing resource")
		return true, nil
	}

	desired, observed, err := spec.DriftValues(existing)
	if err != nil {
		return false, errors.Wrapf(err, "failed to render %s %s for comparison", serviceName, spec.ResourceName())
	}
	changed, err := spec.Detector().Changed(ctx, desired, observed)
	if err != nil {
		return false, errors.Wrapf(err, "failed to compare %s %s", serviceName, spec.ResourceName())
	}
	if changed {
		metrics.DriftDetected(serviceName)
	}
	return !changed, nil
}

// Differences lists every way existing differs from the configuration of spec.
func Differences(ctx context.Context, spec DriftSpecGetter, existing interface{}) ([]drift.Difference, error) {
	desired, observed, err := spec.DriftValues(existing)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render %s for comparison", spec.ResourceName())
	}
	return spec.Detector().Differences(ctx, desired, observed)
}

// DriftReport describes how the resource of a node differs from its configuration.
type DriftReport struct {
	// Exists is false when the resource was not found, in which case nothing else is set.
	Exists      bool               `json:"exists"`
	Differences []drift.Difference `json:"-"`
	// Patch is a JSON merge patch taking the observed configuration to the desired one.
	Patch json.RawMessage `json:"patch,omitempty"`
}

// Drifted reports whether any difference was found.
func (r *DriftReport) Drifted() bool {
	return r != nil && len(r.Differences) > 0
}

// ReportDrift compares existing with the configuration of spec and renders the result.
func ReportDrift(ctx context.Context, spec DriftSpecGetter, existing interface{}) (*DriftReport, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "azure.ReportDrift", tele.KVP("resource", spec.ResourceName()))
	defer done()

	desired, observed, err := spec.DriftValues(existing)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render %s for comparison", spec.ResourceName())
	}
	diffs, err := spec.Detector().Differences(ctx, desired, observed)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compare %s", spec.ResourceName())
	}
	report := &DriftReport{Exists: true, Differences: diffs}
	if len(diffs) == 0 {
		return report, nil
	}
	patch, err := converters.MergePatch(desired, observed)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build merge patch for %s", spec.ResourceName())
	}
	report.Patch = patch
	return report, nil
}
