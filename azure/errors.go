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

package azure

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/pkg/errors"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
)

// ResourceNotFound parses an error to check if its status code is Not Found (404).
func ResourceNotFound(err error) bool {
	return hasStatusCode(err, http.StatusNotFound)
}

// ResourceConflict parses an error to check if its status code is Conflict (409).
func ResourceConflict(err error) bool {
	return hasStatusCode(err, http.StatusConflict)
}

// Throttled parses an error to check if its status code is Too Many Requests (429).
func Throttled(err error) bool {
	return hasStatusCode(err, http.StatusTooManyRequests)
}

// hasStatusCode returns true if an error is a ResponseError with a matching status code.
func hasStatusCode(err error, statusCode int) bool {
	var rerr *azcore.ResponseError
	return errors.As(err, &rerr) && rerr.StatusCode == statusCode
}

// ReconcileError represents an error that is not automatically recoverable
// errorType indicates what type of action is required to recover. It can take two values:
// 1. `Transient` - Can be recovered, the orchestrator should run the operation again after the requeue hint.
// 2. `Terminal` - Cannot be recovered, the operation fails.
type ReconcileError struct {
	error
	errorType    ReconcileErrorType
	requestAfter time.Duration
}

// ReconcileErrorType represents the type of a ReconcileError.
type ReconcileErrorType string

const (
	// TransientErrorType can be recovered, will be requeued after a configured time interval.
	TransientErrorType ReconcileErrorType = "Transient"
	// TerminalErrorType cannot be recovered, will not be requeued.
	TerminalErrorType ReconcileErrorType = "Terminal"
)

// Error returns the error message for a ReconcileError.
func (t ReconcileError) Error() string {
	var errStr string
	if t.error != nil {
		errStr = t.error.Error()
	}
	switch t.errorType {
	case TransientErrorType:
		return fmt.Sprintf("%s. Object will be requeued after %s", errStr, t.requestAfter.String())
	case TerminalErrorType:
		return fmt.Sprintf("reconcile error that cannot be recovered occurred: %s. Object will not be requeued", errStr)
	default:
		return fmt.Sprintf("reconcile error occurred with unknown recovery type. The actual error is: %s", errStr)
	}
}

// Unwrap returns the underlying error.
func (t ReconcileError) Unwrap() error {
	return t.error
}

// IsTransient returns if the ReconcileError is recoverable.
func (t ReconcileError) IsTransient() bool {
	return t.errorType == TransientErrorType
}

// IsTerminal returns if the ReconcileError is not recoverable.
func (t ReconcileError) IsTerminal() bool {
	return t.errorType == TerminalErrorType
}

// RequeueAfter returns requestAfter value.
func (t ReconcileError) RequeueAfter() time.Duration {
	return t.requestAfter
}

// WithTransientError wraps the error in a ReconcileError with errorType as `Transient`.
func WithTransientError(err error, requeueAfter time.Duration) ReconcileError {
	return ReconcileError{error: err, errorType: TransientErrorType, requestAfter: requeueAfter}
}

// WithTerminalError wraps the error in a ReconcileError with errorType as `Terminal`.
func WithTerminalError(err error) ReconcileError {
	return ReconcileError{error: err, errorType: TerminalErrorType}
}

// OperationNotDoneError is used to represent a long-running operation that is not yet complete.
type OperationNotDoneError struct {
	Future *infrav1.Future
}

// NewOperationNotDoneError returns a new OperationNotDoneError wrapping a Future.
func NewOperationNotDoneError(future *infrav1.Future) OperationNotDoneError {
	return OperationNotDoneError{
		Future: future,
	}
}

// Error returns the error represented as a string.
func (onde OperationNotDoneError) Error() string {
	return fmt.Sprintf("operation type %s on Azure resource %s/%s is not done", onde.Future.Type, onde.Future.ResourceGroup, onde.Future.Name)
}

// Is returns true if the target error is an `OperationNotDoneError`.
func (onde OperationNotDoneError) Is(target error) bool {
	return IsOperationNotDoneError(target)
}

// IsOperationNotDoneError returns true if target is an OperationNotDoneError.
func IsOperationNotDoneError(target error) bool {
	reconcileErr := &ReconcileError{}
	if errors.As(target, reconcileErr) {
		return IsOperationNotDoneError(reconcileErr.error)
	}
	return errors.As(target, &OperationNotDoneError{})
}

// IsContextDeadlineExceededOrCanceledError checks if it's a context deadline
// exceeded or canceled error.
func IsContextDeadlineExceededOrCanceledError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// Recoverable reports whether running the failed operation again may succeed,
// and after how long. Long-running operations still in flight, throttling,
// server errors and exceeded deadlines are recoverable. Terminal errors, client
// errors such as validation failures, and untyped errors are not.
func Recoverable(err error, defaultRequeue time.Duration) (bool, time.Duration) {
	if err == nil {
		return false, 0
	}

	var reconcileErr ReconcileError
	if errors.As(err, &reconcileErr) {
		if reconcileErr.IsTerminal() {
			return false, 0
		}
		if reconcileErr.IsTransient() {
			requeue := reconcileErr.RequeueAfter()
			if requeue <= 0 {
				requeue = defaultRequeue
			}
			return true, requeue
		}
	}

	if IsContextDeadlineExceededOrCanceledError(err) {
		return true, defaultRequeue
	}

	var rerr *azcore.ResponseError
	if errors.As(err, &rerr) {
		switch {
		case rerr.StatusCode == http.StatusTooManyRequests, rerr.StatusCode == http.StatusConflict:
			return true, defaultRequeue
		case rerr.StatusCode >= http.StatusInternalServerError:
			return true, defaultRequeue
		}
	}

	return false, 0
}
