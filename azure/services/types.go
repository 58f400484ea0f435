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

package services

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/juju/clock"
	"github.com/pkg/errors"
	"k8s.io/client-go/util/flowcontrol"

	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
)

var retryAfterError = errors.New("Retry-After has not yet expired")

// ServiceLimiter represents Rate Limiter + Exponential Backoff state.
type ServiceLimiter struct {
	flowcontrol.RateLimiter

	clock      clock.Clock
	mu         sync.Mutex
	retryAfter time.Time
}

// NewServiceLimiter wraps limiter with the backoff state of a kind of request.
func NewServiceLimiter(limiter flowcontrol.RateLimiter, clk clock.Clock) *ServiceLimiter {
	return &ServiceLimiter{RateLimiter: limiter, clock: clk}
}

// TryRequest waits for the rate limiter and returns a transient error while
// the limiter is under active exponential backoff.
func (s *ServiceLimiter) TryRequest(ctx context.Context, log logr.Logger) error {
	if !s.TryAccept() {
		log.V(4).Info("Rate Limited", "qps", s.QPS())
		if err := s.Wait(ctx); err != nil {
			return errors.Wrap(err, "failed waiting for the rate limiter")
		}
	}

	s.mu.Lock()
	until := s.retryAfter
	s.mu.Unlock()
	if wait := until.Sub(s.clock.Now()); wait > 0 {
		log.Error(retryAfterError, "In Exponential Backoff", "RetryAfter", until)
		return azure.WithTransientError(retryAfterError, wait)
	}
	return nil
}

// StoreRetryAfter detects HTTP 429 responses, stores their Retry-After value
// and returns how long to back off. It returns false for any other response.
func (s *ServiceLimiter) StoreRetryAfter(log logr.Logger, resp *http.Response, defaultRetryAfter time.Duration) (time.Duration, bool) {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return 0, false
	}

	now := s.clock.Now()
	retryAfter := resp.Header.Get("Retry-After")
	if retryAfter == "" {
		log.Info("HTTP 429 Response with no Retry-After, will use a fallback value", "defaultRetryAfter", defaultRetryAfter)
	} else {
		log.Info("HTTP 429 Response", "Retry-After", retryAfter)
	}
	until := GetRetryAfterTime(retryAfter, defaultRetryAfter, now)

	s.mu.Lock()
	if until.After(s.retryAfter) {
		s.retryAfter = until
	}
	s.mu.Unlock()
	return until.Sub(now), true
}
