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

package v1alpha1

import "time"

const (
	// AzurePublicCloud is the default cloud environment.
	AzurePublicCloud = "AzurePublicCloud"
	// AzureChinaCloud is the Azure China cloud environment.
	AzureChinaCloud = "AzureChinaCloud"
	// AzureUSGovernmentCloud is the Azure US Government cloud environment.
	AzureUSGovernmentCloud = "AzureUSGovernmentCloud"
)

// ProviderConfig holds the Azure account the plugin works against. It is read
// from the plugin configuration file and AZURE_ environment variables.
type ProviderConfig struct {
	SubscriptionID   string `mapstructure:"subscription_id"`
	TenantID         string `mapstructure:"tenant_id"`
	ClientID         string `mapstructure:"client_id"`
	ClientSecret     string `mapstructure:"client_secret"`
	CloudEnvironment string `mapstructure:"cloud_environment"`

	// FederatedTokenFile is a projected service account token exchanged for an
	// Azure token through workload identity federation.
	FederatedTokenFile string `mapstructure:"federated_token_file"`

	// Location is the default location of nodes that do not declare one.
	Location string `mapstructure:"location"`

	// TokenCacheFile persists access tokens between plugin runs when set.
	TokenCacheFile string `mapstructure:"token_cache_file"`
	// TokenRefreshThreshold is how long before expiry a cached token is refreshed.
	TokenRefreshThreshold time.Duration `mapstructure:"token_refresh_threshold"`

	// RateLimit bounds the rate of Azure API calls of one plugin run.
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig holds token bucket limits per kind of request. Rate limiting
// is off unless Enabled is set.
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// ReadQPS and ReadBucket limit GET requests.
	ReadQPS    float32 `mapstructure:"read_qps"`
	ReadBucket int     `mapstructure:"read_bucket"`
	// WriteQPS and WriteBucket limit PUT, PATCH and POST requests.
	WriteQPS    float32 `mapstructure:"write_qps"`
	WriteBucket int     `mapstructure:"write_bucket"`
	// DeleteQPS and DeleteBucket limit DELETE requests.
	DeleteQPS    float32 `mapstructure:"delete_qps"`
	DeleteBucket int     `mapstructure:"delete_bucket"`
}

// DefaultTokenRefreshThreshold is used when the configuration sets no refresh threshold.
const DefaultTokenRefreshThreshold = 5 * time.Minute

// Default fills in the cloud environment and token refresh threshold.
func (c *ProviderConfig) Default() {
	if c.CloudEnvironment == "" {
		c.CloudEnvironment = AzurePublicCloud
	}
	if c.TokenRefreshThreshold <= 0 {
		c.TokenRefreshThreshold = DefaultTokenRefreshThreshold
	}
}
