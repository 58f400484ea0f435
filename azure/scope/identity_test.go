/*
Copyright 2023 The Kubernetes Authors.

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

package scope

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
)

func TestNewProviderConfigCredentialsProvider(t *testing.T) {
	g := NewWithT(t)
	cache, err := azure.NewCredentialCache()
	g.Expect(err).NotTo(HaveOccurred())

	_, err = NewProviderConfigCredentialsProvider(nil, cache)
	g.Expect(err).To(MatchError("failed to generate new ProviderConfigCredentialsProvider from empty provider config"))

	_, err = NewProviderConfigCredentialsProvider(&infrav1.ProviderConfig{}, nil)
	g.Expect(err).To(MatchError("failed to generate new ProviderConfigCredentialsProvider without a credential cache"))
}

func TestGetTokenCredential(t *testing.T) {
	testcases := []struct {
		name          string
		config        *infrav1.ProviderConfig
		expectedError string
	}{
		{
			name: "client secret",
			config: &infrav1.ProviderConfig{
				TenantID:     "00000000-0000-0000-0000-000000000001",
				ClientID:     "00000000-0000-0000-0000-000000000002",
				ClientSecret: "secret",
			},
		},
		{
			name: "federated token file",
			config: &infrav1.ProviderConfig{
				TenantID:           "00000000-0000-0000-0000-000000000001",
				ClientID:           "00000000-0000-0000-0000-000000000002",
				FederatedTokenFile: "/var/run/secrets/azure/tokens/azure-identity-token",
			},
		},
		{
			name: "token cache file",
			config: &infrav1.ProviderConfig{
				TenantID:              "00000000-0000-0000-0000-000000000001",
				ClientID:              "00000000-0000-0000-0000-000000000002",
				ClientSecret:          "secret",
				TokenCacheFile:        "/tmp/tokens.json",
				TokenRefreshThreshold: time.Minute,
			},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			cache, err := azure.NewCredentialCache()
			g.Expect(err).NotTo(HaveOccurred())
			provider, err := NewProviderConfigCredentialsProvider(tc.config, cache)
			g.Expect(err).NotTo(HaveOccurred())

			cred, err := provider.GetTokenCredential(t.Context(), azure.PublicCloudName)
			if tc.expectedError != "" {
				g.Expect(err).To(MatchError(ContainSubstring(tc.expectedError)))
				return
			}
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(cred).To(BeAssignableToTypeOf(&azure.CachedCredential{}))
		})
	}
}

func TestGetTokenCredentialInvalidCloud(t *testing.T) {
	g := NewWithT(t)
	cache, err := azure.NewCredentialCache()
	g.Expect(err).NotTo(HaveOccurred())
	provider, err := NewProviderConfigCredentialsProvider(&infrav1.ProviderConfig{}, cache)
	g.Expect(err).NotTo(HaveOccurred())

	_, err = provider.GetTokenCredential(t.Context(), "Invalid")
	g.Expect(err).To(MatchError(ContainSubstring("failed to build client options for credential")))
}
