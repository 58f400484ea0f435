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
	"strconv"
	"time"
)

// Standard defaults for Azure service exponential backoff responses,
// in case we don't get Retry-After data in the HTTP header response.
const (
	// DefaultBackoffWaitTimeRead is the default backoff time for a read request following a HTTP 429 response.
	DefaultBackoffWaitTimeRead time.Duration = 1 * time.Minute
	// DefaultBackoffWaitTimeWrite is the default backoff time for a write request following a HTTP 429 response.
	DefaultBackoffWaitTimeWrite time.Duration = 3 * time.Minute
	// DefaultBackoffWaitTimeDelete is the default backoff time for a delete request following a HTTP 429 response.
	DefaultBackoffWaitTimeDelete time.Duration = 3 * time.Minute
)

// DefaultBackoffWaitTime returns the backoff time after a HTTP 429 response to a request with method.
func DefaultBackoffWaitTime(method string) time.Duration {
	switch method {
	case http.MethodGet, http.MethodHead:
		return DefaultBackoffWaitTimeRead
	case http.MethodDelete:
		return DefaultBackoffWaitTimeDelete
	default:
		return DefaultBackoffWaitTimeWrite
	}
}

// GetRetryAfterTime parses the Retry-After data from an HTTP response header
// and returns the absolute time after adding that data to now.
// If we can't interpret Retry-After data we return a passed in default.
func GetRetryAfterTime(ra string, defaultWait time.Duration, now time.Time) time.Time {
	// Retry-After can be expressed in either units of seconds or absolute time
	if retryAfter, _ := strconv.Atoi(ra); retryAfter > 0 {
		return now.Add(time.Duration(retryAfter) * time.Second)
	} else if t, err := http.ParseTime(ra); err == nil {
		return t
	}
	return now.Add(defaultWait)
}
