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
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	transportRetryMax     = 3
	transportRetryWaitMin = 1 * time.Second
	transportRetryWaitMax = 30 * time.Second
)

var transportLog = logr.Discard()

// SetTransportLogger sets the logger retries of the ARM transport are reported to.
// It must be called before any client is created.
func SetTransportLogger(log logr.Logger) {
	transportLog = log.WithName("transport")
}

// newRetryableTransport returns the HTTP client the ARM pipelines send requests
// with. It retries connection errors, throttling and server errors with
// exponential backoff, honoring Retry-After, and hands the last response back
// to the pipeline unchanged so azcore can turn it into a ResponseError.
func newRetryableTransport() *http.Client {
	return newRetryableClient(transportLog).StandardClient()
}

func newRetryableClient(log logr.Logger) *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.RetryMax = transportRetryMax
	c.RetryWaitMin = transportRetryWaitMin
	c.RetryWaitMax = transportRetryWaitMax
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler
	c.Logger = retryLogger{log: log}
	return c
}

// retryLogger adapts a logr.Logger to retryablehttp's LeveledLogger.
type retryLogger struct {
	log logr.Logger
}

func (l retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Error(nil, msg, keysAndValues...)
}

func (l retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.V(4).Info(msg, keysAndValues...)
}

func (l retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.V(6).Info(msg, keysAndValues...)
}

func (l retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.V(2).Info(msg, keysAndValues...)
}
