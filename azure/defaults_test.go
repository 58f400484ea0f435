/*
Copyright 2022 The Kubernetes Authors.

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
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/go-logr/logr/funcr"
	. "github.com/onsi/gomega"

	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/tele"
)

// TestARMClientOptions tests the `ARMClientOptions()` factory function.
func TestARMClientOptions(t *testing.T) {
	tests := []struct {
		name          string
		cloudName     string
		expectedCloud cloud.Configuration
		expectError   bool
	}{
		{
			name:          "should return default client options if cloudName is empty",
			cloudName:     "",
			expectedCloud: cloud.Configuration{},
		},
		{
			name:          "should return Azure public cloud client options",
			cloudName:     PublicCloudName,
			expectedCloud: cloud.AzurePublic,
		},
		{
			name:          "should return Azure China cloud client options",
			cloudName:     ChinaCloudName,
			expectedCloud: cloud.AzureChina,
		},
		{
			name:          "should return Azure government cloud client options",
			cloudName:     USGovernmentCloudName,
			expectedCloud: cloud.AzureGovernment,
		},
		{
			name:        "should return error if cloudName is unrecognized",
			cloudName:   "AzureUnrecognizedCloud",
			expectError: true,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			opts, err := ARMClientOptions(tc.cloudName)
			if tc.expectError {
				g.Expect(err).To(HaveOccurred())
				return
			}
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(opts.Cloud).To(Equal(tc.expectedCloud))
			g.Expect(opts.Retry.MaxRetries).To(BeNumerically("==", -1))
			g.Expect(opts.PerCallPolicies).To(HaveLen(2))
			g.Expect(opts.Transport).NotTo(BeNil())
		})
	}
}

// TestPerCallPolicies tests the per-call policies returned by `ARMClientOptions()`.
func TestPerCallPolicies(t *testing.T) {
	g := NewWithT(t)

	corrID := "test-1234abcd-5678efgh"
	// This server will check that the correlation ID and user-agent are set correctly.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g.Expect(r.Header.Get("User-Agent")).To(ContainSubstring("cloudify-azure-plugin/"))
		g.Expect(r.Header.Get(string(tele.CorrIDKeyVal))).To(Equal(corrID))
		fmt.Fprintf(w, "Hello, %s", r.Proto)
	}))
	defer server.Close()

	// Call the factory function and ensure it has both PerCallPolicies.
	opts, err := ARMClientOptions("")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(opts.PerCallPolicies).To(HaveLen(2))
	g.Expect(opts.PerCallPolicies).To(ContainElement(BeAssignableToTypeOf(correlationIDPolicy{})))
	g.Expect(opts.PerCallPolicies).To(ContainElement(BeAssignableToTypeOf(userAgentPolicy{})))

	// Create a request with a correlation ID.
	ctx := context.WithValue(context.Background(), tele.CorrIDKeyVal, tele.CorrID(corrID))
	req, err := runtime.NewRequest(ctx, http.MethodGet, server.URL)
	g.Expect(err).NotTo(HaveOccurred())

	// Create a pipeline and send the request, where it will be checked by the server.
	pipeline := defaultTestPipeline(opts.PerCallPolicies, nil)
	resp, err := pipeline.Do(req)
	g.Expect(err).NotTo(HaveOccurred())
	defer resp.Body.Close()
	g.Expect(resp.StatusCode).To(Equal(http.StatusOK))
}

type headerPolicy struct{}

func (headerPolicy) Do(req *policy.Request) (*http.Response, error) {
	req.Raw().Header.Set("X-Test", "set")
	return req.Next()
}

func TestSetRequestPolicies(t *testing.T) {
	g := NewWithT(t)
	SetRequestPolicies(headerPolicy{})
	defer SetRequestPolicies()

	opts, err := ARMClientOptions(PublicCloudName, userAgentPolicy{})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(opts.PerCallPolicies).To(HaveLen(4))
	g.Expect(opts.PerCallPolicies[2]).To(BeAssignableToTypeOf(headerPolicy{}))
	g.Expect(opts.PerCallPolicies[3]).To(BeAssignableToTypeOf(userAgentPolicy{}))
}

func TestRetryableTransport(t *testing.T) {
	g := NewWithT(t)

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var messages []string
	log := funcr.New(func(_, args string) { messages = append(messages, args) }, funcr.Options{Verbosity: 4})
	client := newRetryableClient(log)
	client.RetryWaitMin = 0
	client.RetryWaitMax = 0

	req, err := runtime.NewRequest(context.Background(), http.MethodGet, server.URL)
	g.Expect(err).NotTo(HaveOccurred())
	resp, err := defaultTestPipeline(nil, client.StandardClient()).Do(req)
	g.Expect(err).NotTo(HaveOccurred())
	defer resp.Body.Close()
	g.Expect(resp.StatusCode).To(Equal(http.StatusOK))
	g.Expect(atomic.LoadInt32(&calls)).To(BeNumerically("==", 2))
	g.Expect(messages).NotTo(BeEmpty())
}

func TestRetryableTransportPassesLastResponseThrough(t *testing.T) {
	g := NewWithT(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":{"code":"InternalServerError"}}`)
	}))
	defer server.Close()

	client := newRetryableClient(funcr.New(func(_, _ string) {}, funcr.Options{}))
	client.RetryMax = 1
	client.RetryWaitMin = 0
	client.RetryWaitMax = 0

	req, err := runtime.NewRequest(context.Background(), http.MethodGet, server.URL)
	g.Expect(err).NotTo(HaveOccurred())
	resp, err := defaultTestPipeline(nil, client.StandardClient()).Do(req)
	g.Expect(err).NotTo(HaveOccurred())
	defer resp.Body.Close()
	g.Expect(resp.StatusCode).To(Equal(http.StatusInternalServerError))
}

func TestResourceIDs(t *testing.T) {
	g := NewWithT(t)
	const sub, rg = "123", "my-rg"

	g.Expect(ResourceGroupID(sub, rg)).To(Equal("/subscriptions/123/resourceGroups/my-rg"))
	g.Expect(SubnetID(sub, rg, "vnet", "subnet")).To(Equal("/subscriptions/123/resourceGroups/my-rg/providers/Microsoft.Network/virtualNetworks/vnet/subnets/subnet"))
	g.Expect(NetworkInterfaceID(sub, rg, "nic")).To(Equal("/subscriptions/123/resourceGroups/my-rg/providers/Microsoft.Network/networkInterfaces/nic"))
	g.Expect(AvailabilitySetID(sub, rg, "as")).To(Equal("/subscriptions/123/resourceGroups/my-rg/providers/Microsoft.Compute/availabilitySets/as"))

	diskRG, diskName, err := ParseDiskID(DiskID("00000000-0000-0000-0000-000000000000", rg, "vm_OSDisk"))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(diskRG).To(Equal(rg))
	g.Expect(diskName).To(Equal("vm_OSDisk"))

	_, _, err = ParseDiskID(NetworkInterfaceID("00000000-0000-0000-0000-000000000000", rg, "nic"))
	g.Expect(err).To(MatchError(ContainSubstring("is not a managed disk ID")))

	_, _, err = ParseDiskID("not-an-id")
	g.Expect(err).To(HaveOccurred())
}

func defaultTestPipeline(policies []policy.Policy, transport policy.Transporter) runtime.Pipeline {
	return runtime.NewPipeline(
		"testmodule",
		"v0.1.0",
		runtime.PipelineOptions{},
		&policy.ClientOptions{PerCallPolicies: policies, Transport: transport, Retry: policy.RetryOptions{MaxRetries: -1}},
	)
}
