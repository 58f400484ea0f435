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
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/juju/clock"
	"github.com/pkg/errors"
)

/*

Workload identity federation exchanges a token issued by another identity
provider for an Azure access token. When the plugin runs in a pod labelled
`azure.workload.identity/use=true`, the workload identity webhook injects:

|-----------------------------------------------------------------------------------|
|AZURE_CLIENT_ID            | The client ID of the Azure AD                         |
|                           | application or user-assigned managed identity.        |
|AZURE_TENANT_ID            | The tenant ID of the Azure subscription.              |
|AZURE_FEDERATED_TOKEN_FILE | The path of the projected service account token file. |
|-----------------------------------------------------------------------------------|

Outside of Kubernetes, federated_token_file in the provider configuration points
at any file holding a token the federated credential trusts.

*/

const (
	// AzureFedratedTokenFileEnvKey is the env key for AZURE_FEDERATED_TOKEN_FILE.
	AzureFedratedTokenFileEnvKey = "AZURE_FEDERATED_TOKEN_FILE"
	// AzureClientIDEnvKey is the env key for AZURE_CLIENT_ID.
	AzureClientIDEnvKey = "AZURE_CLIENT_ID"
	// AzureTenantIDEnvKey is the env key for AZURE_TENANT_ID.
	AzureTenantIDEnvKey = "AZURE_TENANT_ID"

	// assertionReadInterval is how long a read assertion is reused before the file is read again.
	assertionReadInterval = 5 * time.Minute
)

type workloadIdentityCredential struct {
	mu        sync.Mutex
	assertion string
	file      string
	clock     clock.Clock
	cred      *azidentity.ClientAssertionCredential
	lastRead  time.Time
}

// WorkloadIdentityCredentialOptions contains the configurable options for workload identity.
type WorkloadIdentityCredentialOptions struct {
	azcore.ClientOptions
	ClientID      string
	TenantID      string
	TokenFilePath string
	Clock         clock.Clock
}

// NewWorkloadIdentityCredentialOptions returns an empty instance of WorkloadIdentityCredentialOptions.
func NewWorkloadIdentityCredentialOptions() *WorkloadIdentityCredentialOptions {
	return &WorkloadIdentityCredentialOptions{}
}

// WithClientID sets client ID to WorkloadIdentityCredentialOptions.
func (w *WorkloadIdentityCredentialOptions) WithClientID(clientID string) *WorkloadIdentityCredentialOptions {
	w.ClientID = clientID
	return w
}

// WithTenantID sets tenant ID to WorkloadIdentityCredentialOptions.
func (w *WorkloadIdentityCredentialOptions) WithTenantID(tenantID string) *WorkloadIdentityCredentialOptions {
	w.TenantID = tenantID
	return w
}

// WithTokenFilePath sets the federated token file to WorkloadIdentityCredentialOptions.
func (w *WorkloadIdentityCredentialOptions) WithTokenFilePath(path string) *WorkloadIdentityCredentialOptions {
	w.TokenFilePath = path
	return w
}

// GetProjectedTokenPath return projected token file path from the env variable.
func GetProjectedTokenPath() (string, error) {
	tokenPath := os.Getenv(AzureFedratedTokenFileEnvKey)
	if strings.TrimSpace(tokenPath) == "" {
		return "", errors.New("projected token path not injected")
	}
	return tokenPath, nil
}

// WithDefaults fills the token file path, client ID and tenant ID from the injected
// env variables when they are not set.
func (w *WorkloadIdentityCredentialOptions) WithDefaults() (*WorkloadIdentityCredentialOptions, error) {
	if strings.TrimSpace(w.TokenFilePath) == "" {
		tokenFilePath, err := GetProjectedTokenPath()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get token file path for identity")
		}
		w.TokenFilePath = tokenFilePath
	}

	if strings.TrimSpace(w.ClientID) == "" {
		w.ClientID = os.Getenv(AzureClientIDEnvKey)
		if strings.TrimSpace(w.ClientID) == "" {
			return nil, errors.New("empty client ID")
		}
	}

	if strings.TrimSpace(w.TenantID) == "" {
		w.TenantID = os.Getenv(AzureTenantIDEnvKey)
		if strings.TrimSpace(w.TenantID) == "" {
			return nil, errors.New("empty tenant ID")
		}
	}

	if w.Clock == nil {
		w.Clock = clock.WallClock
	}
	return w, nil
}

// NewWorkloadIdentityCredential returns a workload identity credential.
func NewWorkloadIdentityCredential(options *WorkloadIdentityCredentialOptions) (*workloadIdentityCredential, error) {
	clk := options.Clock
	if clk == nil {
		clk = clock.WallClock
	}
	w := &workloadIdentityCredential{file: options.TokenFilePath, clock: clk}
	cred, err := azidentity.NewClientAssertionCredential(options.TenantID, options.ClientID, w.getAssertion, &azidentity.ClientAssertionCredentialOptions{ClientOptions: options.ClientOptions})
	if err != nil {
		return nil, err
	}
	w.cred = cred
	return w, nil
}

// GetToken returns the token for workload identity.
func (w *workloadIdentityCredential) GetToken(ctx context.Context, opts policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return w.cred.GetToken(ctx, opts)
}

func (w *workloadIdentityCredential) getAssertion(context.Context) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if now := w.clock.Now(); w.lastRead.IsZero() || w.lastRead.Add(assertionReadInterval).Before(now) {
		content, err := os.ReadFile(w.file)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read federated token file %s", w.file)
		}
		w.assertion = strings.TrimSpace(string(content))
		w.lastRead = now
	}
	return w.assertion, nil
}
