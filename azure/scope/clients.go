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
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/pkg/errors"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
)

// AzureClients contains all the Azure clients used by the scopes.
type AzureClients struct {
	subscriptionID          string
	tenantID                string
	clientID                string
	clientSecret            string
	cloudEnvironment        string
	ResourceManagerEndpoint string
	TokenCredential         azcore.TokenCredential
}

// CloudEnvironment returns the Azure environment the node's resource lives in.
func (c *AzureClients) CloudEnvironment() string {
	return c.cloudEnvironment
}

// TenantID returns the Azure tenant id the plugin authenticates against.
func (c *AzureClients) TenantID() string {
	return c.tenantID
}

// ClientID returns the Azure client id the plugin authenticates as.
func (c *AzureClients) ClientID() string {
	return c.clientID
}

// ClientSecret returns the Azure client secret, which is empty for other credential types.
func (c *AzureClients) ClientSecret() string {
	return c.clientSecret
}

// SubscriptionID returns the Azure subscription id of the node's resource.
func (c *AzureClients) SubscriptionID() string {
	return c.subscriptionID
}

// Token returns the Azure token credential.
func (c *AzureClients) Token() azcore.TokenCredential {
	return c.TokenCredential
}

// HashKey returns a base64 url encoded sha256 hash for the Auth scope (Azure TenantID + CloudEnv + SubscriptionID +
// ClientID).
func (c *AzureClients) HashKey() string {
	hasher := sha256.New()
	_, _ = hasher.Write([]byte(c.TenantID() + c.CloudEnvironment() + c.SubscriptionID() + c.ClientID()))
	return base64.URLEncoding.EncodeToString(hasher.Sum(nil))
}

func (c *AzureClients) setCredentials(subscriptionID, cloudEnvironment string) error {
	if subscriptionID == "" {
		return errors.New("subscription ID is required")
	}
	if cloudEnvironment == "" {
		cloudEnvironment = azure.PublicCloudName
	}
	opts, err := azure.ARMClientOptions(cloudEnvironment)
	if err != nil {
		return err
	}
	c.subscriptionID = subscriptionID
	c.cloudEnvironment = cloudEnvironment
	c.ResourceManagerEndpoint = strings.TrimSuffix(opts.Cloud.Services[cloud.ResourceManager].Endpoint, "/") + "/"
	return nil
}

func (c *AzureClients) setCredentialsWithProvider(ctx context.Context, cfg *infrav1.ProviderConfig, credentialsProvider CredentialsProvider) error {
	if credentialsProvider == nil {
		return errors.New("credentials provider cannot have an empty value")
	}
	if err := c.setCredentials(cfg.SubscriptionID, cfg.CloudEnvironment); err != nil {
		return err
	}
	cred, err := credentialsProvider.GetTokenCredential(ctx, c.cloudEnvironment)
	if err != nil {
		return err
	}
	c.tenantID = cfg.TenantID
	c.clientID = cfg.ClientID
	c.clientSecret = cfg.ClientSecret
	c.TokenCredential = cred
	return nil
}
