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

// Package metrics holds the prometheus collectors of the plugin. A plugin run
// is a short lived process, so the registry is written to a node exporter
// textfile at exit instead of being scraped.
package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "cloudify_azure"

// Result labels of an operation run.
const (
	ResultOK    = "ok"
	ResultRetry = "retry"
	ResultError = "error"
)

var (
	// Registry holds every collector of this package.
	Registry = prometheus.NewRegistry()

	reconcileTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "reconcile_total",
			Help:      "The number of lifecycle operations run, by node kind, operation and result.",
		}, []string{"kind", "operation", "result"},
	)

	reconcileDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "reconcile_duration_seconds",
			Help:      "The time taken by a lifecycle operation.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 300},
		}, []string{"kind", "operation"},
	)

	driftDetectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "drift_detected_total",
			Help:      "The number of times an existing resource was found out of line with its node.",
		}, []string{"service"},
	)
)

func init() {
	Registry.MustRegister(reconcileTotal, reconcileDuration, driftDetectedTotal)
}

// ObserveOperation records the outcome and duration of a lifecycle operation.
func ObserveOperation(kind, operation, result string, elapsed time.Duration) {
	reconcileTotal.WithLabelValues(kind, operation, result).Inc()
	reconcileDuration.WithLabelValues(kind, operation).Observe(elapsed.Seconds())
}

// DriftDetected records that the resource of a service drifted.
func DriftDetected(service string) {
	driftDetectedTotal.WithLabelValues(service).Inc()
}

// WriteTextfile writes the registry to path in the text exposition format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", path)
	}
	return nil
}
