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

package groups

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/pkg/errors"

	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/tele"
)

// azureClient contains the Azure go-sdk Client.
type azureClient struct {
	groups         *armresources.ResourceGroupsClient
	apiCallTimeout time.Duration
}

// newClient creates a new resource groups client from an authorizer.
func newClient(auth azure.Authorizer, apiCallTimeout time.Duration) (*azureClient, error) {
	opts, err := azure.ARMClientOptions(auth.CloudEnvironment())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create resourcegroups client options")
	}
	c, err := armresources.NewResourceGroupsClient(auth.SubscriptionID(), auth.Token(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create resourcegroups client")
	}
	return &azureClient{c, apiCallTimeout}, nil
}

// Get gets a resource group.
func (ac *azureClient) Get(ctx context.Context, spec azure.ResourceSpecGetter) (result interface{}, err error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "groups.AzureClient.Get")
	defer done()

	resp, err := ac.groups.Get(ctx, spec.ResourceGroupName(), nil)
	if err != nil {
		return nil, err
	}
	return resp.ResourceGroup, nil
}

// CreateOrUpdateAsync creates or updates a resource group.
// Creating a resource group is not a long running operation, so we don't ever return a poller.
func (ac *azureClient) CreateOrUpdateAsync(ctx context.Context, spec azure.ResourceSpecGetter, _ string, parameters interface{}) (result interface{}, poller *runtime.Poller[armresources.ResourceGroupsClientCreateOrUpdateResponse], err error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "groups.AzureClient.CreateOrUpdateAsync")
	defer done()

	group, ok := parameters.(armresources.ResourceGroup)
	if !ok && parameters != nil {
		return nil, nil, errors.Errorf("%T is not an armresources.ResourceGroup", parameters)
	}

	resp, err := ac.groups.CreateOrUpdate(ctx, spec.ResourceGroupName(), group, nil)
	if err != nil {
		return nil, nil, err
	}
	return resp.ResourceGroup, nil, nil
}

// DeleteAsync deletes a resource group asynchronously. DeleteAsync sends a DELETE
// request to Azure and if accepted without error, the func will return a Poller which can be used to track the ongoing
// progress of the operation.
//
// NOTE: When you delete a resource group, all of its resources are also deleted.
func (ac *azureClient) DeleteAsync(ctx context.Context, spec azure.ResourceSpecGetter, resumeToken string) (poller *runtime.Poller[armresources.ResourceGroupsClientDeleteResponse], err error) {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "groups.AzureClient.DeleteAsync")
	defer done()

	opts := &armresources.ResourceGroupsClientBeginDeleteOptions{ResumeToken: resumeToken}
	log.V(4).Info("sending request", "resumeToken", resumeToken)
	poller, err = ac.groups.BeginDelete(ctx, spec.ResourceGroupName(), opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, ac.apiCallTimeout)
	defer cancel()

	_, err = poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{})
	if err != nil {
		// if an error occurs, return the poller.
		// this means the long-running operation didn't finish in the specified timeout.
		return poller, err
	}

	// if the operation completed, return a nil poller.
	return nil, err
}

// IsDone returns true if the long-running operation has completed.
func (ac *azureClient) IsDone(ctx context.Context, poller interface{}) (isDone bool, err error) {
	_, _, done := tele.StartSpanWithLogger(ctx, "groups.AzureClient.IsDone")
	defer done()

	switch t := poller.(type) {
	case *runtime.Poller[armresources.ResourceGroupsClientCreateOrUpdateResponse]:
		return t.Done(), nil
	case *runtime.Poller[armresources.ResourceGroupsClientDeleteResponse]:
		return t.Done(), nil
	default:
		return false, errors.Errorf("unexpected poller type %T", t)
	}
}

// Result fetches the result of a long-running operation future.
func (ac *azureClient) Result(ctx context.Context, poller interface{}) (result interface{}, err error) {
	_, _, done := tele.StartSpanWithLogger(ctx, "groups.AzureClient.Result")
	defer done()

	switch t := poller.(type) {
	case *runtime.Poller[armresources.ResourceGroupsClientCreateOrUpdateResponse]:
		return t.Result(ctx)
	case *runtime.Poller[armresources.ResourceGroupsClientDeleteResponse]:
		return t.Result(ctx)
	default:
		return nil, errors.Errorf("unexpected poller type %T", t)
	}
}
