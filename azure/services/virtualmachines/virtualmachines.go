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

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/pkg/errors"
	"k8s.io/utils/ptr"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/asyncpoller"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/disks"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/feature"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/tele"
)

const (
	// ServiceName is the name of this service.
	ServiceName = "virtualmachine"
	// StartServiceName is the service name of the start operation.
	StartServiceName = ServiceName + "/start"
	// StopServiceName is the service name of the stop operation.
	StopServiceName = ServiceName + "/stop"
	// RestartServiceName is the service name of the restart operation.
	RestartServiceName = ServiceName + "/restart"
)

// VMScope defines the scope interface for a virtual machines service.
type VMScope interface {
	azure.Authorizer
	azure.AsyncStatusUpdater
	azure.AsyncReconciler
	azure.ResourceRecorder
	VMSpec() azure.DriftSpecGetter
	// DiskSpecsToDelete returns the disks deleted together with the VM.
	DiskSpecsToDelete() []azure.ResourceSpecGetter
	// DeallocateOnStop reports whether stop releases the compute resources of the VM.
	DeallocateOnStop() bool
}

type diskDeleter interface {
	DeleteDisks(ctx context.Context, specs []azure.ResourceSpecGetter) error
}

// Service provides operations on Azure resources.
type Service struct {
	Scope VMScope
	asyncpoller.Reconciler
	getter asyncpoller.Getter
	power  PowerClient
	disks  diskDeleter
}

// New creates a new service.
func New(scope VMScope) (*Service, error) {
	client, err := newClient(scope, scope.DefaultedAzureCallTimeout())
	if err != nil {
		return nil, err
	}
	diskSvc, err := disks.New(diskScope{scope})
	if err != nil {
		return nil, err
	}
	return &Service{
		Scope:  scope,
		getter: client,
		power:  client,
		disks:  diskSvc,
		Reconciler: asyncpoller.New[armcompute.VirtualMachinesClientCreateOrUpdateResponse,
			armcompute.VirtualMachinesClientDeleteResponse](scope, client, client),
	}, nil
}

// diskScope lends the VM scope to the disks service, which only deletes disks on its behalf.
type diskScope struct {
	VMScope
}

func (diskScope) DiskSpec() azure.DriftSpecGetter {
	return nil
}

// Name returns the service name.
func (s *Service) Name() string {
	return ServiceName
}

// Reconcile idempotently creates or updates a virtual machine.
func (s *Service) Reconcile(ctx context.Context) error {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "virtualmachines.Service.Reconcile")
	defer done()

	ctx, cancel := context.WithTimeout(ctx, s.Scope.DefaultedAzureServiceReconcileTimeout())
	defer cancel()

	vmSpec := s.Scope.VMSpec()
	if vmSpec == nil {
		return nil
	}

	var result interface{}
	var err error
	if s.Scope.UseExternalResource() {
		result, err = asyncpoller.GetExternalResource(ctx, s.getter, vmSpec, ServiceName)
	} else {
		result, err = s.CreateOrUpdateResource(ctx, vmSpec, ServiceName)
	}
	if err == nil {
		if vm, ok := result.(armcompute.VirtualMachine); ok {
			s.Scope.SetResourceID(ptr.Deref(vm.ID, ""))
		}
	}
	s.Scope.UpdatePutStatus(infrav1.VMRunningCondition, ServiceName, err)
	return err
}

// Delete deletes the virtual machine and then the disks that go with it.
func (s *Service) Delete(ctx context.Context) error {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "virtualmachines.Service.Delete")
	defer done()

	ctx, cancel := context.WithTimeout(ctx, s.Scope.DefaultedAzureServiceReconcileTimeout())
	defer cancel()

	vmSpec := s.Scope.VMSpec()
	if vmSpec == nil {
		return nil
	}

	if s.Scope.UseExternalResource() {
		log.V(2).Info("Skipping deletion of external virtual machine", "vm", vmSpec.ResourceName())
		return nil
	}

	err := s.DeleteResource(ctx, vmSpec, ServiceName)
	if err == nil {
		if diskSpecs := s.Scope.DiskSpecsToDelete(); len(diskSpecs) > 0 {
			err = errors.Wrapf(s.disks.DeleteDisks(ctx, diskSpecs), "failed to delete disks of virtual machine %s", vmSpec.ResourceName())
		}
	}
	s.Scope.UpdateDeleteStatus(infrav1.VMRunningCondition, ServiceName, err)
	return err
}

// Diff reports how the virtual machine differs from its configuration.
func (s *Service) Diff(ctx context.Context) (*azure.DriftReport, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "virtualmachines.Service.Diff")
	defer done()

	vmSpec := s.Scope.VMSpec()
	if vmSpec == nil {
		return &azure.DriftReport{}, nil
	}
	report, err := asyncpoller.ReportDrift(ctx, s.getter, vmSpec, ServiceName)
	if err != nil {
		return nil, err
	}
	s.Scope.UpdateDriftStatus(ServiceName, report)
	return report, nil
}

// Start starts the virtual machine.
func (s *Service) Start(ctx context.Context) error {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "virtualmachines.Service.Start")
	defer done()

	return runPowerOperation(ctx, s, StartServiceName, s.power.StartAsync)
}

// Stop powers off the virtual machine, deallocating it when the node asks for that.
func (s *Service) Stop(ctx context.Context) error {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "virtualmachines.Service.Stop")
	defer done()

	if s.Scope.DeallocateOnStop() {
		return runPowerOperation(ctx, s, StopServiceName, s.power.DeallocateAsync)
	}
	return runPowerOperation(ctx, s, StopServiceName, s.power.PowerOffAsync)
}

// Restart restarts the virtual machine.
func (s *Service) Restart(ctx context.Context) error {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "virtualmachines.Service.Restart")
	defer done()

	return runPowerOperation(ctx, s, RestartServiceName, s.power.RestartAsync)
}

type powerFunc[T any] func(ctx context.Context, spec azure.ResourceSpecGetter, resumeToken string) (*runtime.Poller[T], error)

func runPowerOperation[T any](ctx context.Context, s *Service, serviceName string, op powerFunc[T]) error {
	if !feature.Gates.Enabled(feature.VMPowerOperations) {
		return azure.WithTerminalError(errors.Errorf("%s requires the %s feature gate", serviceName, feature.VMPowerOperations))
	}

	ctx, cancel := context.WithTimeout(ctx, s.Scope.DefaultedAzureServiceReconcileTimeout())
	defer cancel()

	vmSpec := s.Scope.VMSpec()
	if vmSpec == nil {
		return nil
	}

	err := asyncpoller.PostResource(ctx, s.Scope, vmSpec, serviceName, func(ctx context.Context, resumeToken string) (*runtime.Poller[T], error) {
		return op(ctx, vmSpec, resumeToken)
	})
	s.Scope.UpdatePostStatus(infrav1.VMRunningCondition, serviceName, err)
	return err
}
