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

package disks

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
	disks          *armcompute.DisksClient
	apiCallTimeout time.Duration
}

// newClient creates a new disks client from an authorizer.
func newClient(auth azure.Authorizer, apiCallTimeout time.Duration) (*azureClient, error) {
	opts, err := azure.ARMClientOptions(auth.CloudEnvironment())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create disks client options")
	}
	c, err := armcompute.NewDisksClient(auth.SubscriptionID(), auth.Token(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create armcompute client")
	}
	return &azureClient{c, apiCallTimeout}, nil
}

// Get gets the specified disk.
func (ac *azureClient) Get(ctx context.Context, spec azure.ResourceSpecGetter) (result interface{}, err error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "disks.AzureClient.Get")
	defer done()

	resp, err := ac.disks.Get(ctx, spec.ResourceGroupName(), spec.ResourceName(), nil)
	if err != nil {
		return nil, err
	}
	return resp.Disk, nil
}

// CreateOrUpdateAsync creates or updates a disk asynchronously.
// It sends a PUT request to Azure and if accepted without error, the func will return a Poller which can be used to track the ongoing
// progress of the operation.
func (ac *azureClient) CreateOrUpdateAsync(ctx context.Context, spec azure.ResourceSpecGetter, resumeToken string, parameters interface{}) (result interface{}, poller *runtime.Poller[armcompute.DisksClientCreateOrUpdateResponse], err error) {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "disks.AzureClient.CreateOrUpdateAsync")
	defer done()

	disk, ok := parameters.(armcompute.Disk)
	if !ok && parameters != nil {
		return nil, nil, errors.Errorf("%T is not an armcompute.Disk", parameters)
	}

	opts := &armcompute.DisksClientBeginCreateOrUpdateOptions{ResumeToken: resumeToken}
	log.V(4).Info("sending request", "resumeToken", resumeToken)
	poller, err = ac.disks.BeginCreateOrUpdate(ctx, spec.ResourceGroupName(), spec.ResourceName(), disk, opts)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, ac.apiCallTimeout)
	defer cancel()

	resp, err := poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{})
	if err != nil {
		// if an error occurs, return the poller.
		// this means the long-running operation didn't finish in the specified timeout.
		return nil, poller, err
	}

	// if the operation completed, return a nil poller
	return resp.Disk, nil, err
}

// DeleteAsync deletes a disk asynchronously. DeleteAsync sends a DELETE
// request to Azure and if accepted without error, the func will return a Poller which can be used to track the ongoing
// progress of the operation.
func (ac *azureClient) DeleteAsync(ctx context.Context, spec azure.ResourceSpecGetter, resumeToken string) (poller *runtime.Poller[armcompute.DisksClientDeleteResponse], err error) {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "disks.AzureClient.DeleteAsync")
	defer done()

	opts := &armcompute.DisksClientBeginDeleteOptions{ResumeToken: resumeToken}
	log.V(4).Info("sending request", "resumeToken", resumeToken)
	poller, err = ac.disks.BeginDelete(ctx, spec.ResourceGroupName(), spec.ResourceName(), opts)
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
	_, _, done := tele.StartSpanWithLogger(ctx, "disks.AzureClient.IsDone")
	defer done()

	switch t := poller.(type) {
	case *runtime.Poller[armcompute.DisksClientCreateOrUpdateResponse]:
		return t.Done(), nil
	case *runtime.Poller[armcompute.DisksClientDeleteResponse]:
		return t.Done(), nil
	default:
		return false, errors.Errorf("unexpected poller type %T", t)
	}
}

// Result fetches the result of a long-running operation future.
func (ac *azureClient) Result(ctx context.Context, poller interface{}) (result interface{}, err error) {
	_, _, done := tele.StartSpanWithLogger(ctx, "disks.AzureClient.Result")
	defer done()

	switch t := poller.(type) {
	case *runtime.Poller[armcompute.DisksClientCreateOrUpdateResponse]:
		resp, err := t.Result(ctx)
		if err != nil {
			return nil, err
		}
		return resp.Disk, nil
	case *runtime.Poller[armcompute.DisksClientDeleteResponse]:
		return t.Result(ctx)
	default:
		return nil, errors.Errorf("unexpected poller type %T", t)
	}
}
