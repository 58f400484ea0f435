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

package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveOperation(t *testing.T) {
	g := NewWithT(t)

	before := testutil.ToFloat64(reconcileTotal.WithLabelValues("disk", "create", ResultOK))
	ObserveOperation("disk", "create", ResultOK, 2*time.Second)
	ObserveOperation("disk", "create", ResultOK, time.Second)
	g.Expect(testutil.ToFloat64(reconcileTotal.WithLabelValues("disk", "create", ResultOK))).To(Equal(before + 2))
}

func TestDriftDetected(t *testing.T) {
	g := NewWithT(t)

	before := testutil.ToFloat64(driftDetectedTotal.WithLabelValues("virtualmachine"))
	DriftDetected("virtualmachine")
	g.Expect(testutil.ToFloat64(driftDetectedTotal.WithLabelValues("virtualmachine"))).To(Equal(before + 1))
}

func TestWriteTextfile(t *testing.T) {
	g := NewWithT(t)

	DriftDetected("subnet")
	path := filepath.Join(t.TempDir(), "plugin.prom")
	g.Expect(WriteTextfile(path)).To(Succeed())

	data, err := os.ReadFile(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(data)).To(ContainSubstring(`cloudify_azure_drift_detected_total{service="subnet"}`))

	g.Expect(WriteTextfile(filepath.Join(t.TempDir(), "missing", "plugin.prom"))).NotTo(Succeed())
}
