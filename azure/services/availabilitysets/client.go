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

package availabilitysets

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/pkg/errors"

	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/tele"
)

// azureClient contains the Azure go-sdk Client.
type azureClient struct {
	availabilitySets *armcompute.AvailabilitySetsClient
	apiCallTimeout   time.Duration
}

// newClient creates a new availability sets client from an authorizer.
func newClient(auth azure.Authorizer, apiCallTimeout time.Duration) (*azureClient, error) {
	opts, err := azure.ARMClientOptions(auth.CloudEnvironment())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create availabilitysets client options")
	}
	c, err := armcompute.NewAvailabilitySetsClient(auth.SubscriptionID(), auth.Token(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create armcompute client")
	}
	return &azureClient{c, apiCallTimeout}, nil
}

// Get gets an availability set.
func (ac *azureClient) Get(ctx context.Context, spec azure.ResourceSpecGetter) (result interface{}, err error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "availabilitysets.AzureClient.Get")
	defer done()

	resp, err := ac.availabilitySets.Get(ctx, spec.ResourceGroupName(), spec.ResourceName(), nil)
	if err != nil {
		return nil, err
	}
	return resp.AvailabilitySet, nil
}

// CreateOrUpdateAsync creates or updates an availability set.
// Creating an availability set is not a long running operation, so we don't ever return a poller.
func (ac *azureClient) CreateOrUpdateAsync(ctx context.Context, spec azure.ResourceSpecGetter, _ string, parameters interface{}) (result interface{}, poller *runtime.Poller[armcompute.AvailabilitySetsClientCreateOrUpdateResponse], err error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "availabilitysets.AzureClient.CreateOrUpdateAsync")
	defer done()

	availabilitySet, ok := parameters.(armcompute.AvailabilitySet)
	if !ok && parameters != nil {
		return nil, nil, errors.Errorf("%T is not an armcompute.AvailabilitySet", parameters)
	}

	resp, err := ac.availabilitySets.CreateOrUpdate(ctx, spec.ResourceGroupName(), spec.ResourceName(), availabilitySet, nil)
	if err != nil {
		return nil, nil, err
	}
	return resp.AvailabilitySet, nil, nil
}

// DeleteAsync deletes an availability set.
// Deleting an availability set is not a long running operation, so we don't ever return a poller.
func (ac *azureClient) DeleteAsync(ctx context.Context, spec azure.ResourceSpecGetter, _ string) (poller *runtime.Poller[armcompute.AvailabilitySetsClientDeleteResponse], err error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "availabilitysets.AzureClient.DeleteAsync")
	defer done()

	_, err = ac.availabilitySets.Delete(ctx, spec.ResourceGroupName(), spec.ResourceName(), nil)
	return nil, err
}

// IsDone returns true if the long-running operation has completed.
func (ac *azureClient) IsDone(ctx context.Context, poller interface{}) (isDone bool, err error) {
	_, _, done := tele.StartSpanWithLogger(ctx, "availabilitysets.AzureClient.IsDone")
	defer done()

	switch t := poller.(type) {
	case *runtime.Poller[armcompute.AvailabilitySetsClientCreateOrUpdateResponse]:
		return t.Done(), nil
	case *runtime.Poller[armcompute.AvailabilitySetsClientDeleteResponse]:
		return t.Done(), nil
	default:
		return false, errors.Errorf("unexpected poller type %T", t)
	}
}

// Result fetches the result of a long-running operation future.
func (ac *azureClient) Result(ctx context.Context, poller interface{}) (result interface{}, err error) {
	_, _, done := tele.StartSpanWithLogger(ctx, "availabilitysets.AzureClient.Result")
	defer done()

	switch t := poller.(type) {
	case *runtime.Poller[armcompute.AvailabilitySetsClientCreateOrUpdateResponse]:
		return t.Result(ctx)
	case *runtime.Poller[armcompute.AvailabilitySetsClientDeleteResponse]:
		return t.Result(ctx)
	default:
		return nil, errors.Errorf("unexpected poller type %T", t)
	}
}
