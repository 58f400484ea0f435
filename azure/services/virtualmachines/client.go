/*
Copyright 2019 The Kubernetes Authors.

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

package virtualmachines

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/pkg/errors"
	"k8s.io/utils/ptr"

	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/tele"
)

// PowerClient runs the power operations of a virtual machine. Each call starts the operation,
// or resumes it from resumeToken, and returns a poller when it did not finish within the Azure
// call timeout.
type PowerClient interface {
	StartAsync(ctx context.Context, spec azure.ResourceSpecGetter, resumeToken string) (*runtime.Poller[armcompute.VirtualMachinesClientStartResponse], error)
	PowerOffAsync(ctx context.Context, spec azure.ResourceSpecGetter, resumeToken string) (*runtime.Poller[armcompute.VirtualMachinesClientPowerOffResponse], error)
	DeallocateAsync(ctx context.Context, spec azure.ResourceSpecGetter, resumeToken string) (*runtime.Poller[armcompute.VirtualMachinesClientDeallocateResponse], error)
	RestartAsync(ctx context.Context, spec azure.ResourceSpecGetter, resumeToken string) (*runtime.Poller[armcompute.VirtualMachinesClientRestartResponse], error)
}

// azureClient contains the Azure go-sdk Client.
type azureClient struct {
	virtualmachines *armcompute.VirtualMachinesClient
	apiCallTimeout  time.Duration
}

var _ PowerClient = (*azureClient)(nil)

// newClient creates a new VM client from an authorizer.
func newClient(auth azure.Authorizer, apiCallTimeout time.Duration) (*azureClient, error) {
	opts, err := azure.ARMClientOptions(auth.CloudEnvironment())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create virtualmachines client options")
	}
	c, err := armcompute.NewVirtualMachinesClient(auth.SubscriptionID(), auth.Token(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create armcompute client")
	}
	return &azureClient{c, apiCallTimeout}, nil
}

// Get retrieves information about the model view of a virtual machine.
func (ac *azureClient) Get(ctx context.Context, spec azure.ResourceSpecGetter) (result interface{}, err error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "virtualmachines.AzureClient.Get")
	defer done()

	resp, err := ac.virtualmachines.Get(ctx, spec.ResourceGroupName(), spec.ResourceName(), nil)
	if err != nil {
		return nil, err
	}
	return resp.VirtualMachine, nil
}

// CreateOrUpdateAsync creates or updates a virtual machine asynchronously.
// It sends a PUT request to Azure and if accepted without error, the func will return a Poller which can be used to track the ongoing
// progress of the operation.
func (ac *azureClient) CreateOrUpdateAsync(ctx context.Context, spec azure.ResourceSpecGetter, resumeToken string, parameters interface{}) (result interface{}, poller *runtime.Poller[armcompute.VirtualMachinesClientCreateOrUpdateResponse], err error) {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "virtualmachines.AzureClient.CreateOrUpdateAsync")
	defer done()

	vm, ok := parameters.(armcompute.VirtualMachine)
	if !ok && parameters != nil {
		return nil, nil, errors.Errorf("%T is not an armcompute.VirtualMachine", parameters)
	}

	opts := &armcompute.VirtualMachinesClientBeginCreateOrUpdateOptions{ResumeToken: resumeToken}
	log.V(4).Info("sending request", "resumeToken", resumeToken)
	poller, err = ac.virtualmachines.BeginCreateOrUpdate(ctx, spec.ResourceGroupName(), spec.ResourceName(), vm, opts)
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
	return resp.VirtualMachine, nil, err
}

// DeleteAsync deletes a virtual machine asynchronously. DeleteAsync sends a DELETE
// request to Azure and if accepted without error, the func will return a Poller which can be used to track the ongoing
// progress of the operation.
func (ac *azureClient) DeleteAsync(ctx context.Context, spec azure.ResourceSpecGetter, resumeToken string) (poller *runtime.Poller[armcompute.VirtualMachinesClientDeleteResponse], err error) {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "virtualmachines.AzureClient.DeleteAsync")
	defer done()

	opts := &armcompute.VirtualMachinesClientBeginDeleteOptions{
		ForceDeletion: ptr.To(false),
		ResumeToken:   resumeToken,
	}
	log.V(4).Info("sending request", "resumeToken", resumeToken)
	poller, err = ac.virtualmachines.BeginDelete(ctx, spec.ResourceGroupName(), spec.ResourceName(), opts)
	if err != nil {
		return nil, err
	}
	return waitFor(ctx, ac.apiCallTimeout, poller)
}

// StartAsync starts a virtual machine.
func (ac *azureClient) StartAsync(ctx context.Context, spec azure.ResourceSpecGetter, resumeToken string) (*runtime.Poller[armcompute.VirtualMachinesClientStartResponse], error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "virtualmachines.AzureClient.StartAsync")
	defer done()

	opts := &armcompute.VirtualMachinesClientBeginStartOptions{ResumeToken: resumeToken}
	poller, err := ac.virtualmachines.BeginStart(ctx, spec.ResourceGroupName(), spec.ResourceName(), opts)
	if err != nil {
		return nil, err
	}
	return waitFor(ctx, ac.apiCallTimeout, poller)
}

// PowerOffAsync stops a virtual machine, which keeps its compute resources allocated.
func (ac *azureClient) PowerOffAsync(ctx context.Context, spec azure.ResourceSpecGetter, resumeToken string) (*runtime.Poller[armcompute.VirtualMachinesClientPowerOffResponse], error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "virtualmachines.AzureClient.PowerOffAsync")
	defer done()

	opts := &armcompute.VirtualMachinesClientBeginPowerOffOptions{ResumeToken: resumeToken}
	poller, err := ac.virtualmachines.BeginPowerOff(ctx, spec.ResourceGroupName(), spec.ResourceName(), opts)
	if err != nil {
		return nil, err
	}
	return waitFor(ctx, ac.apiCallTimeout, poller)
}

// DeallocateAsync stops a virtual machine and releases its compute resources.
func (ac *azureClient) DeallocateAsync(ctx context.Context, spec azure.ResourceSpecGetter, resumeToken string) (*runtime.Poller[armcompute.VirtualMachinesClientDeallocateResponse], error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "virtualmachines.AzureClient.DeallocateAsync")
	defer done()

	opts := &armcompute.VirtualMachinesClientBeginDeallocateOptions{ResumeToken: resumeToken}
	poller, err := ac.virtualmachines.BeginDeallocate(ctx, spec.ResourceGroupName(), spec.ResourceName(), opts)
	if err != nil {
		return nil, err
	}
	return waitFor(ctx, ac.apiCallTimeout, poller)
}

// RestartAsync restarts a virtual machine.
func (ac *azureClient) RestartAsync(ctx context.Context, spec azure.ResourceSpecGetter, resumeToken string) (*runtime.Poller[armcompute.VirtualMachinesClientRestartResponse], error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "virtualmachines.AzureClient.RestartAsync")
	defer done()

	opts := &armcompute.VirtualMachinesClientBeginRestartOptions{ResumeToken: resumeToken}
	poller, err := ac.virtualmachines.BeginRestart(ctx, spec.ResourceGroupName(), spec.ResourceName(), opts)
	if err != nil {
		return nil, err
	}
	return waitFor(ctx, ac.apiCallTimeout, poller)
}

// waitFor polls until the operation is done or the timeout passes. A nil poller means the
// operation completed.
func waitFor[T any](ctx context.Context, timeout time.Duration, poller *runtime.Poller[T]) (*runtime.Poller[T], error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{}); err != nil {
		// if an error occurs, return the poller.
		// this means the long-running operation didn't finish in the specified timeout.
		return poller, err
	}
	return nil, nil
}

// IsDone returns true if the long-running operation has completed.
func (ac *azureClient) IsDone(ctx context.Context, poller interface{}) (isDone bool, err error) {
	_, _, done := tele.StartSpanWithLogger(ctx, "virtualmachines.AzureClient.IsDone")
	defer done()

	switch t := poller.(type) {
	case *runtime.Poller[armcompute.VirtualMachinesClientCreateOrUpdateResponse]:
		return t.Done(), nil
	case *runtime.Poller[armcompute.VirtualMachinesClientDeleteResponse]:
		return t.Done(), nil
	default:
		return false, errors.Errorf("unexpected poller type %T", t)
	}
}

// Result fetches the result of a long-running operation future.
func (ac *azureClient) Result(ctx context.Context, poller interface{}) (result interface{}, err error) {
	_, _, done := tele.StartSpanWithLogger(ctx, "virtualmachines.AzureClient.Result")
	defer done()

	switch t := poller.(type) {
	case *runtime.Poller[armcompute.VirtualMachinesClientCreateOrUpdateResponse]:
		resp, err := t.Result(ctx)
		if err != nil {
			return nil, err
		}
		return resp.VirtualMachine, nil
	case *runtime.Poller[armcompute.VirtualMachinesClientDeleteResponse]:
		return t.Result(ctx)
	default:
		return nil, errors.Errorf("unexpected poller type %T", t)
	}
}
