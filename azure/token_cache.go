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
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/juju/clock"
	"github.com/juju/mutex/v2"
	"github.com/pkg/errors"

	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/tele"
)

const (
	// tokenCacheLockName is the machine wide lock taken while the token file is read or refreshed.
	tokenCacheLockName    = "cloudify-azure-token"
	tokenCacheLockDelay   = 50 * time.Millisecond
	tokenCacheLockTimeout = 1 * time.Minute
)

// CachedCredential is an azcore.TokenCredential that hands out the token it
// fetched last until the token is within the refresh threshold of expiring.
// With a cache file, tokens are shared by every plugin process on the machine:
// refreshes are serialized with a named machine wide mutex and the file is
// written with 0600 permissions.
type CachedCredential struct {
	cred      azcore.TokenCredential
	clock     clock.Clock
	threshold time.Duration
	path      string
	acquire   func(mutex.Spec) (mutex.Releaser, error)

	mu     sync.Mutex
	tokens map[string]azcore.AccessToken
}

// CachedCredentialOption configures a CachedCredential.
type CachedCredentialOption func(*CachedCredential)

// WithTokenCacheFile persists tokens to path.
func WithTokenCacheFile(path string) CachedCredentialOption {
	return func(c *CachedCredential) {
		c.path = path
	}
}

// WithClock sets the clock token expiry is measured with.
func WithClock(clk clock.Clock) CachedCredentialOption {
	return func(c *CachedCredential) {
		c.clock = clk
	}
}

// NewCachedCredential wraps cred so tokens are reused until refreshThreshold before they expire.
func NewCachedCredential(cred azcore.TokenCredential, refreshThreshold time.Duration, opts ...CachedCredentialOption) *CachedCredential {
	c := &CachedCredential{
		cred:      cred,
		clock:     clock.WallClock,
		threshold: refreshThreshold,
		acquire:   mutex.Acquire,
		tokens:    map[string]azcore.AccessToken{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetToken returns a cached token for the requested scopes, or a new one from
// the wrapped credential when the cached token is missing or about to expire.
func (c *CachedCredential) GetToken(ctx context.Context, opts policy.TokenRequestOptions) (azcore.AccessToken, error) {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "azure.CachedCredential.GetToken")
	defer done()

	key := tokenKey(opts)

	c.mu.Lock()
	defer c.mu.Unlock()

	if tok, ok := c.tokens[key]; ok && c.fresh(tok) {
		return tok, nil
	}

	if c.path == "" {
		tok, err := c.cred.GetToken(ctx, opts)
		if err != nil {
			return azcore.AccessToken{}, err
		}
		c.tokens[key] = tok
		return tok, nil
	}

	releaser, err := c.acquire(mutex.Spec{
		Name:    tokenCacheLockName,
		Clock:   c.clock,
		Delay:   tokenCacheLockDelay,
		Timeout: tokenCacheLockTimeout,
		Cancel:  ctx.Done(),
	})
	if err != nil {
		return azcore.AccessToken{}, errors.Wrap(err, "failed to acquire token cache lock")
	}
	defer releaser.Release()

	// Another process may have refreshed the token while the lock was held elsewhere.
	stored, err := readTokenFile(c.path)
	if err != nil {
		log.V(2).Info("ignoring unreadable token cache", "path", c.path, "error", err.Error())
		stored = map[string]tokenFileEntry{}
	}
	if entry, ok := stored[key]; ok {
		tok := azcore.AccessToken{Token: entry.Token, ExpiresOn: entry.ExpiresOn}
		if c.fresh(tok) {
			c.tokens[key] = tok
			return tok, nil
		}
	}

	log.V(4).Info("refreshing access token", "scopes", key)
	tok, err := c.cred.GetToken(ctx, opts)
	if err != nil {
		return azcore.AccessToken{}, err
	}
	c.tokens[key] = tok

	stored[key] = tokenFileEntry{Token: tok.Token, ExpiresOn: tok.ExpiresOn}
	for k, entry := range stored {
		if !c.clock.Now().Before(entry.ExpiresOn) {
			delete(stored, k)
		}
	}
	if err := writeTokenFile(c.path, stored); err != nil {
		log.Error(err, "failed to persist access token", "path", c.path)
	}
	return tok, nil
}

// fresh reports whether tok is valid for longer than the refresh threshold.
func (c *CachedCredential) fresh(tok azcore.AccessToken) bool {
	return tok.ExpiresOn.Sub(c.clock.Now()) > c.threshold
}

func tokenKey(opts policy.TokenRequestOptions) string {
	scopes := append([]string(nil), opts.Scopes...)
	sort.Strings(scopes)
	key := strings.Join(scopes, " ")
	if opts.TenantID != "" {
		key = opts.TenantID + "|" + key
	}
	return key
}

type tokenFileEntry struct {
	Token     string    `json:"token"`
	ExpiresOn time.Time `json:"expires_on"`
}

func readTokenFile(path string) (map[string]tokenFileEntry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]tokenFileEntry{}, nil
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to read token cache")
	}
	entries := map[string]tokenFileEntry{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(err, "failed to decode token cache")
	}
	return entries, nil
}

func writeTokenFile(path string, entries map[string]tokenFileEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "failed to encode token cache")
	}
	return WriteFileAtomic(path, data, 0o600)
}

// WriteFileAtomic writes data to a temporary file next to path and renames it
// over path, so readers never see a partial file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "failed to create temporary file in %s", dir)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "failed to write %s", tmpName)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "failed to set permissions of %s", tmpName)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "failed to sync %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", tmpName)
	}
	return errors.Wrapf(os.Rename(tmpName, path), "failed to rename %s to %s", tmpName, path)
}
