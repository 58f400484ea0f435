/*
Copyright 2021 The Kubernetes Authors.

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
	"net/http"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
)

func TestIsContextDeadlineExceededOrCanceled(t *testing.T) {
	tests := []struct {
		name string
		want bool
		err  error
	}{
		{
			name: "Context deadline exceeded error",
			err: func() error {
				ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-7*time.Hour))
				defer cancel()
				return ctx.Err()
			}(),
			want: true,
		},
		{
			name: "Wrapped context canceled error",
			err: func() error {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return errors.Wrap(ctx.Err(), "failed to get resource")
			}(),
			want: true,
		},
		{
			name: "Nil error",
			err:  nil,
			want: false,
		},
		{
			name: "Error other than context deadline exceeded or canceled error",
			err:  errors.New("dummy error"),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsContextDeadlineExceededOrCanceledError(tt.err); got != tt.want {
				t.Errorf("IsContextDeadlineExceededOrCanceled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResponseErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		notFound  bool
		conflict  bool
		throttled bool
	}{
		{
			name:     "Not Found response error",
			err:      &azcore.ResponseError{StatusCode: http.StatusNotFound},
			notFound: true,
		},
		{
			name:     "Wrapped Conflict response error",
			err:      errors.Wrap(&azcore.ResponseError{StatusCode: http.StatusConflict}, "failed to create"),
			conflict: true,
		},
		{
			name:      "Too Many Requests response error",
			err:       &azcore.ResponseError{StatusCode: http.StatusTooManyRequests},
			throttled: true,
		},
		{
			name: "Not Found generic error",
			err:  errors.New("404: Not Found"),
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)
			g.Expect(ResourceNotFound(tc.err)).To(Equal(tc.notFound))
			g.Expect(ResourceConflict(tc.err)).To(Equal(tc.conflict))
			g.Expect(Throttled(tc.err)).To(Equal(tc.throttled))
		})
	}
}

func TestReconcileError(t *testing.T) {
	g := NewWithT(t)

	transient := WithTransientError(errors.New("boom"), 30*time.Second)
	g.Expect(transient.IsTransient()).To(BeTrue())
	g.Expect(transient.IsTerminal()).To(BeFalse())
	g.Expect(transient.RequeueAfter()).To(Equal(30 * time.Second))
	g.Expect(transient.Error()).To(Equal("boom. Object will be requeued after 30s"))

	terminal := WithTerminalError(errors.New("bad input"))
	g.Expect(terminal.IsTerminal()).To(BeTrue())
	g.Expect(terminal.Error()).To(ContainSubstring("cannot be recovered occurred: bad input"))
	g.Expect(errors.Unwrap(terminal)).To(MatchError("bad input"))
}

func TestIsOperationNotDoneError(t *testing.T) {
	future := &infrav1.Future{Type: infrav1.PutFuture, ResourceGroup: "rg", Name: "vm", ServiceName: "virtualmachine"}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "operation not done error",
			err:  NewOperationNotDoneError(future),
			want: true,
		},
		{
			name: "operation not done error in a transient error",
			err:  WithTransientError(NewOperationNotDoneError(future), time.Second),
			want: true,
		},
		{
			name: "wrapped operation not done error",
			err:  errors.Wrap(NewOperationNotDoneError(future), "virtualmachine"),
			want: true,
		},
		{
			name: "other error",
			err:  errors.New("operation type PUT on Azure resource rg/vm is not done"),
			want: false,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			g.Expect(IsOperationNotDoneError(tc.err)).To(Equal(tc.want))
		})
	}
}

func TestRecoverable(t *testing.T) {
	const requeue = 15 * time.Second
	future := &infrav1.Future{Type: infrav1.DeleteFuture, ResourceGroup: "rg", Name: "disk"}

	tests := []struct {
		name        string
		err         error
		recoverable bool
		after       time.Duration
	}{
		{
			name: "nil",
		},
		{
			name:        "operation in flight",
			err:         WithTransientError(NewOperationNotDoneError(future), time.Minute),
			recoverable: true,
			after:       time.Minute,
		},
		{
			name:        "transient without hint",
			err:         WithTransientError(errors.New("try again"), 0),
			recoverable: true,
			after:       requeue,
		},
		{
			name: "terminal",
			err:  WithTerminalError(&azcore.ResponseError{StatusCode: http.StatusInternalServerError}),
		},
		{
			name:        "throttled",
			err:         errors.Wrap(&azcore.ResponseError{StatusCode: http.StatusTooManyRequests}, "get"),
			recoverable: true,
			after:       requeue,
		},
		{
			name:        "server error",
			err:         &azcore.ResponseError{StatusCode: http.StatusBadGateway},
			recoverable: true,
			after:       requeue,
		},
		{
			name: "bad request",
			err:  &azcore.ResponseError{StatusCode: http.StatusBadRequest},
		},
		{
			name:        "deadline",
			err:         errors.Wrap(context.DeadlineExceeded, "poll"),
			recoverable: true,
			after:       requeue,
		},
		{
			name: "plain error",
			err:  errors.New("invalid node"),
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			recoverable, after := Recoverable(tc.err, requeue)
			g.Expect(recoverable).To(Equal(tc.recoverable))
			g.Expect(after).To(Equal(tc.after))
		})
	}
}
