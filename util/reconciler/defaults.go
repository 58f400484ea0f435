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

package reconciler

import "time"

const (
	// DefaultOperationTimeout is the default bound on a whole lifecycle operation run.
	DefaultOperationTimeout = 90 * time.Minute
	// DefaultAzureCallTimeout is the default bound on a single Azure API call.
	DefaultAzureCallTimeout = 2 * time.Second
	// DefaultAzureServiceReconcileTimeout is the default bound on one service's Reconcile or Delete.
	DefaultAzureServiceReconcileTimeout = 12 * time.Second
	// DefaultReconcilerRequeue is the retry hint handed to the orchestrator when Azure gives none.
	DefaultReconcilerRequeue = 15 * time.Second
	// DefaultHTTP429RetryAfter is the retry hint after Azure throttled a call without a Retry-After header.
	DefaultHTTP429RetryAfter = 1 * time.Minute
)

// Timeouts holds the timeouts of a lifecycle operation. Zero or negative values
// fall back to the package defaults.
type Timeouts struct {
	Operation             time.Duration
	AzureCall             time.Duration
	AzureServiceReconcile time.Duration
	Requeue               time.Duration
}

// DefaultedOperationTimeout returns the operation timeout or its default.
func (t Timeouts) DefaultedOperationTimeout() time.Duration {
	return orDefault(t.Operation, DefaultOperationTimeout)
}

// DefaultedAzureCallTimeout returns the Azure call timeout or its default.
func (t Timeouts) DefaultedAzureCallTimeout() time.Duration {
	return orDefault(t.AzureCall, DefaultAzureCallTimeout)
}

// DefaultedAzureServiceReconcileTimeout returns the service reconcile timeout or its default.
func (t Timeouts) DefaultedAzureServiceReconcileTimeout() time.Duration {
	return orDefault(t.AzureServiceReconcile, DefaultAzureServiceReconcileTimeout)
}

// DefaultedReconcilerRequeue returns the requeue hint or its default.
func (t Timeouts) DefaultedReconcilerRequeue() time.Duration {
	return orDefault(t.Requeue, DefaultReconcilerRequeue)
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
