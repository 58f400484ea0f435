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
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/go-logr/logr"
	"github.com/juju/clock"
	"k8s.io/client-go/util/flowcontrol"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
)

// Standard defaults for Azure service rate limits.
const (
	// AzureServiceRateLimitQPS is the default QPS permitted by a rate limiter.
	AzureServiceRateLimitQPS = 1.0
	// AzureServiceRateLimitBucket is the default maximum number of requests to hold in a queue when rate limiting is active.
	AzureServiceRateLimitBucket = 5
)

// NewRateLimiters creates new read, write, and delete flowcontrol.RateLimiters from RateLimitConfig.
func NewRateLimiters(config *infrav1.RateLimitConfig) (reader flowcontrol.RateLimiter, writer flowcontrol.RateLimiter, deleter flowcontrol.RateLimiter) {
	reader = flowcontrol.NewFakeAlwaysRateLimiter()
	writer = flowcontrol.NewFakeAlwaysRateLimiter()
	deleter = flowcontrol.NewFakeAlwaysRateLimiter()

	if config != nil && config.Enabled {
		reader = flowcontrol.NewTokenBucketRateLimiter(qpsOrDefault(config.ReadQPS), bucketOrDefault(config.ReadBucket))
		writer = flowcontrol.NewTokenBucketRateLimiter(qpsOrDefault(config.WriteQPS), bucketOrDefault(config.WriteBucket))
		deleter = flowcontrol.NewTokenBucketRateLimiter(qpsOrDefault(config.DeleteQPS), bucketOrDefault(config.DeleteBucket))
	}

	return reader, writer, deleter
}

func qpsOrDefault(qps float32) float32 {
	if qps <= 0 {
		return AzureServiceRateLimitQPS
	}
	return qps
}

func bucketOrDefault(bucket int) int {
	if bucket <= 0 {
		return AzureServiceRateLimitBucket
	}
	return bucket
}

// ThrottlePolicy is an ARM pipeline policy that rate limits requests and
// backs off after a HTTP 429 response. A throttled response is returned as a
// transient error carrying the Retry-After delay.
type ThrottlePolicy struct {
	reader  *ServiceLimiter
	writer  *ServiceLimiter
	deleter *ServiceLimiter
}

var _ policy.Policy = (*ThrottlePolicy)(nil)

// NewThrottlePolicy creates a ThrottlePolicy from config.
func NewThrottlePolicy(config *infrav1.RateLimitConfig) *ThrottlePolicy {
	return newThrottlePolicy(config, clock.WallClock)
}

func newThrottlePolicy(config *infrav1.RateLimitConfig, clk clock.Clock) *ThrottlePolicy {
	reader, writer, deleter := NewRateLimiters(config)
	return &ThrottlePolicy{
		reader:  NewServiceLimiter(reader, clk),
		writer:  NewServiceLimiter(writer, clk),
		deleter: NewServiceLimiter(deleter, clk),
	}
}

// Do implements policy.Policy.
func (p *ThrottlePolicy) Do(req *policy.Request) (*http.Response, error) {
	raw := req.Raw()
	log := logr.FromContextOrDiscard(raw.Context()).WithValues("method", raw.Method, "host", raw.URL.Host)

	limiter := p.limiterFor(raw.Method)
	if err := limiter.TryRequest(raw.Context(), log); err != nil {
		return nil, err
	}

	resp, err := req.Next()
	if err != nil {
		return resp, err
	}
	if wait, throttled := limiter.StoreRetryAfter(log, resp, DefaultBackoffWaitTime(raw.Method)); throttled {
		return resp, azure.WithTransientError(runtime.NewResponseError(resp), wait)
	}
	return resp, nil
}

func (p *ThrottlePolicy) limiterFor(method string) *ServiceLimiter {
	switch method {
	case http.MethodGet, http.MethodHead:
		return p.reader
	case http.MethodDelete:
		return p.deleter
	default:
		return p.writer
	}
}
