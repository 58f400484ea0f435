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

package reconciler_test

import (
	"testing"
	"time"

	"github.com/onsi/gomega"

	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/reconciler"
)

func TestTimeoutsDefaulting(t *testing.T) {
	getters := []struct {
		Name     string
		Set      func(d time.Duration) reconciler.Timeouts
		Get      func(reconciler.Timeouts) time.Duration
		Fallback time.Duration
	}{
		{
			Name:     "Operation",
			Set:      func(d time.Duration) reconciler.Timeouts { return reconciler.Timeouts{Operation: d} },
			Get:      reconciler.Timeouts.DefaultedOperationTimeout,
			Fallback: reconciler.DefaultOperationTimeout,
		},
		{
			Name:     "AzureCall",
			Set:      func(d time.Duration) reconciler.Timeouts { return reconciler.Timeouts{AzureCall: d} },
			Get:      reconciler.Timeouts.DefaultedAzureCallTimeout,
			Fallback: reconciler.DefaultAzureCallTimeout,
		},
		{
			Name:     "AzureServiceReconcile",
			Set:      func(d time.Duration) reconciler.Timeouts { return reconciler.Timeouts{AzureServiceReconcile: d} },
			Get:      reconciler.Timeouts.DefaultedAzureServiceReconcileTimeout,
			Fallback: reconciler.DefaultAzureServiceReconcileTimeout,
		},
		{
			Name:     "Requeue",
			Set:      func(d time.Duration) reconciler.Timeouts { return reconciler.Timeouts{Requeue: d} },
			Get:      reconciler.Timeouts.DefaultedReconcilerRequeue,
			Fallback: reconciler.DefaultReconcilerRequeue,
		},
	}

	for _, getter := range getters {
		getter := getter
		t.Run(getter.Name, func(t *testing.T) {
			t.Parallel()
			g := gomega.NewWithT(t)
			g.Expect(getter.Get(getter.Set(0))).To(gomega.Equal(getter.Fallback))
			g.Expect(getter.Get(getter.Set(-2))).To(gomega.Equal(getter.Fallback))
			g.Expect(getter.Get(getter.Set(2 * time.Hour))).To(gomega.Equal(2 * time.Hour))
		})
	}
}
