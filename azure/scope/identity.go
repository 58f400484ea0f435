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

package scope

import (
	"context"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/pkg/errors"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/tele"
)

// CredentialsProvider defines the behavior for azure identity based credential providers.
type CredentialsProvider interface {
	GetTokenCredential(ctx context.Context, cloudEnvironment string) (azcore.TokenCredential, error)
}

// ProviderConfigCredentialsProvider builds credentials from the plugin's provider configuration.
type ProviderConfigCredentialsProvider struct {
	Config *infrav1.ProviderConfig
	Cache  azure.CredentialCache
}

var _ CredentialsProvider = (*ProviderConfigCredentialsProvider)(nil)

// NewProviderConfigCredentialsProvider creates a new ProviderConfigCredentialsProvider from the supplied inputs.
func NewProviderConfigCredentialsProvider(cfg *infrav1.ProviderConfig, cache azure.CredentialCache) (*ProviderConfigCredentialsProvider, error) {
	if cfg == nil {
		return nil, errors.New("failed to generate new ProviderConfigCredentialsProvider from empty provider config")
	}
	if cache == nil {
		return nil, errors.New("failed to generate new ProviderConfigCredentialsProvider without a credential cache")
	}
	return &ProviderConfigCredentialsProvider{
		Config: cfg,
		Cache:  cache,
	}, nil
}

// GetTokenCredential returns an Azure TokenCredential based on the provided provider configuration.
// A client secret is preferred, then a federated token file, then the default credential chain.
// The result keeps its token until it is about to expire.
func (p *ProviderConfigCredentialsProvider) GetTokenCredential(ctx context.Context, cloudEnvironment string) (azcore.TokenCredential, error) {
	_, log, done := tele.StartSpanWithLogger(ctx, "scope.ProviderConfigCredentialsProvider.GetTokenCredential")
	defer done()

	opts, err := azure.ARMClientOptions(cloudEnvironment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build client options for credential")
	}

	var cred azcore.TokenCredential
	switch {
	case p.Config.ClientSecret != "":
		log.V(4).Info("using client secret credential", "tenantID", p.Config.TenantID, "clientID", p.Config.ClientID)
		cred, err = p.Cache.GetOrStoreClientSecret(p.Config.TenantID, p.Config.ClientID, p.Config.ClientSecret,
			&azidentity.ClientSecretCredentialOptions{ClientOptions: opts.ClientOptions})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create client secret credential")
		}
	case p.federatedTokenFile() != "":
		log.V(4).Info("using workload identity credential", "tenantID", p.Config.TenantID, "clientID", p.Config.ClientID)
		wiOpts, err := NewWorkloadIdentityCredentialOptions().
			WithTenantID(p.Config.TenantID).
			WithClientID(p.Config.ClientID).
			WithTokenFilePath(p.Config.FederatedTokenFile).
			WithDefaults()
		if err != nil {
			return nil, errors.Wrap(err, "failed to create workload identity options")
		}
		wiOpts.ClientOptions = opts.ClientOptions
		cred, err = NewWorkloadIdentityCredential(wiOpts)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create workload identity credential")
		}
	default:
		log.V(4).Info("using default credential chain")
		cred, err = p.Cache.GetOrStoreDefault(&azidentity.DefaultAzureCredentialOptions{
			ClientOptions: opts.ClientOptions,
			TenantID:      p.Config.TenantID,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create default credential")
		}
	}

	var cacheOpts []azure.CachedCredentialOption
	if p.Config.TokenCacheFile != "" {
		cacheOpts = append(cacheOpts, azure.WithTokenCacheFile(p.Config.TokenCacheFile))
	}
	return azure.NewCachedCredential(cred, p.Config.TokenRefreshThreshold, cacheOpts...), nil
}

func (p *ProviderConfigCredentialsProvider) federatedTokenFile() string {
	if strings.TrimSpace(p.Config.FederatedTokenFile) != "" {
		return p.Config.FederatedTokenFile
	}
	path, _ := GetProjectedTokenPath()
	return path
}
