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
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/pkg/errors"

	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/cache/ttllru"
)

const (
	credentialCacheSize = 64
	credentialCacheTTL  = 1 * time.Hour
)

// CredentialCache caches token credentials, so that resources sharing an
// identity in one plugin process share its tokens.
type CredentialCache interface {
	GetOrStoreClientSecret(tenantID, clientID, clientSecret string, opts *azidentity.ClientSecretCredentialOptions) (azcore.TokenCredential, error)
	GetOrStoreDefault(opts *azidentity.DefaultAzureCredentialOptions) (azcore.TokenCredential, error)
}

type credentialType int

const (
	credentialTypeClientSecret credentialType = iota
	credentialTypeDefault
)

type credentialCacheKey struct {
	authorityHost  string
	credentialType credentialType
	tenantID       string
	clientID       string
	secretHash     string
}

type credentialCache struct {
	mut   *sync.Mutex
	cache *ttllru.Cache
}

// NewCredentialCache creates a new, empty CredentialCache.
func NewCredentialCache() (CredentialCache, error) {
	cache, err := ttllru.New(credentialCacheSize, credentialCacheTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create credential cache")
	}
	return &credentialCache{
		mut:   new(sync.Mutex),
		cache: cache,
	}, nil
}

// GetOrStoreClientSecret returns a cached credential for the service principal,
// creating one if none is cached.
func (c *credentialCache) GetOrStoreClientSecret(tenantID, clientID, clientSecret string, opts *azidentity.ClientSecretCredentialOptions) (azcore.TokenCredential, error) {
	sum := sha256.Sum256([]byte(clientSecret))
	key := credentialCacheKey{
		credentialType: credentialTypeClientSecret,
		tenantID:       tenantID,
		clientID:       clientID,
		secretHash:     hex.EncodeToString(sum[:]),
	}
	if opts != nil {
		key.authorityHost = opts.Cloud.ActiveDirectoryAuthorityHost
	}
	return c.getOrStore(key, func() (azcore.TokenCredential, error) {
		return azidentity.NewClientSecretCredential(tenantID, clientID, clientSecret, opts)
	})
}

// GetOrStoreDefault returns a cached default Azure credential, creating one if none is cached.
func (c *credentialCache) GetOrStoreDefault(opts *azidentity.DefaultAzureCredentialOptions) (azcore.TokenCredential, error) {
	key := credentialCacheKey{credentialType: credentialTypeDefault}
	if opts != nil {
		key.authorityHost = opts.Cloud.ActiveDirectoryAuthorityHost
		key.tenantID = opts.TenantID
	}
	return c.getOrStore(key, func() (azcore.TokenCredential, error) {
		return azidentity.NewDefaultAzureCredential(opts)
	})
}

func (c *credentialCache) getOrStore(key credentialCacheKey, newCredFunc func() (azcore.TokenCredential, error)) (azcore.TokenCredential, error) {
	c.mut.Lock()
	defer c.mut.Unlock()
	if cred, exists := c.cache.Get(key); exists {
		return cred.(azcore.TokenCredential), nil
	}

	cred, err := newCredFunc()
	if err != nil {
		return nil, err
	}

	c.cache.Add(key, cred)
	return cred, nil
}
