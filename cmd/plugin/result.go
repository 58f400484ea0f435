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

package plugin

import (
	"encoding/json"
	"io"
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/metrics"
)

// Status is the outcome of an operation as reported to the orchestrator.
type Status string

const (
	// StatusOK means the operation completed.
	StatusOK Status = metrics.ResultOK
	// StatusRetry means the operation should be run again after RetryAfter seconds.
	StatusRetry Status = metrics.ResultRetry
	// StatusError means the operation failed and running it again will not help.
	StatusError Status = metrics.ResultError
)

// Exit codes of the plugin binary.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitRecoverable = 2
)

// Result is the JSON document written to stdout after every operation.
type Result struct {
	Status     Status `json:"status"`
	RetryAfter int64  `json:"retry_after"`
	Message    string `json:"message,omitempty"`
	ResourceID string `json:"resource_id,omitempty"`
	Drift      *Drift `json:"drift,omitempty"`
}

// Drift is the outcome of the diff operation.
type Drift struct {
	Exists      bool            `json:"exists"`
	Drifted     bool            `json:"drifted"`
	Differences []string        `json:"differences,omitempty"`
	Patch       json.RawMessage `json:"patch,omitempty"`
}

// okResult is the result of an operation that completed.
func okResult(resourceID string) Result {
	return Result{Status: StatusOK, ResourceID: resourceID}
}

// errorResult classifies err as recoverable or not.
func errorResult(err error, defaultRequeue time.Duration) Result {
	if err == nil {
		return okResult("")
	}
	if recoverable, after := azure.Recoverable(err, defaultRequeue); recoverable {
		return Result{
			Status:     StatusRetry,
			RetryAfter: int64(math.Ceil(after.Seconds())),
			Message:    err.Error(),
		}
	}
	return Result{Status: StatusError, Message: err.Error()}
}

// newDrift renders a drift report.
func newDrift(report *azure.DriftReport) *Drift {
	if report == nil || !report.Exists {
		return &Drift{}
	}
	d := &Drift{
		Exists:  true,
		Drifted: report.Drifted(),
		Patch:   report.Patch,
	}
	for _, diff := range report.Differences {
		d.Differences = append(d.Differences, diff.String())
	}
	return d
}

// ExitCode is the process exit code matching the result's status.
func (r Result) ExitCode() int {
	switch r.Status {
	case StatusOK:
		return ExitOK
	case StatusRetry:
		return ExitRecoverable
	default:
		return ExitError
	}
}

// Write encodes the result as a single JSON document.
func (r Result) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(r), "failed to write result")
}
