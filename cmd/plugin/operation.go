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

package plugin

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/scope"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/availabilitysets"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/disks"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/groups"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/networkinterfaces"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/subnets"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/virtualmachines"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/services/virtualnetworks"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/metrics"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/tele"
)

// Lifecycle operations.
const (
	OperationCreate  = "create"
	OperationDelete  = "delete"
	OperationDiff    = "diff"
	OperationStart   = "start"
	OperationStop    = "stop"
	OperationRestart = "restart"
)

// nodeService is implemented by the service of every node kind.
type nodeService interface {
	azure.ServiceReconciler
	azure.DriftReporter
}

// powerService is implemented by services whose resource can be started and stopped.
type powerService interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Restart(ctx context.Context) error
}

// serviceFactory builds the service running the operations of a node.
type serviceFactory func(kind infrav1.NodeKind, s *scope.NodeScope) (nodeService, error)

// newService returns the service managing nodes of kind.
func newService(kind infrav1.NodeKind, s *scope.NodeScope) (nodeService, error) {
	switch kind {
	case infrav1.ResourceGroupKind:
		return asService(groups.New(s))
	case infrav1.VirtualNetworkKind:
		return asService(virtualnetworks.New(s))
	case infrav1.SubnetKind:
		return asService(subnets.New(s))
	case infrav1.AvailabilitySetKind:
		return asService(availabilitysets.New(s))
	case infrav1.DiskKind:
		return asService(disks.New(s))
	case infrav1.NetworkInterfaceKind:
		return asService(networkinterfaces.New(s))
	case infrav1.VirtualMachineKind:
		return asService(virtualmachines.New(s))
	default:
		return nil, azure.WithTerminalError(errors.Errorf("unknown node kind %q", kind))
	}
}

func asService[T nodeService](svc T, err error) (nodeService, error) {
	if err != nil {
		return nil, errors.Wrap(err, "failed to create service")
	}
	return svc, nil
}

// runner runs one lifecycle operation on one node.
type runner struct {
	opts       *options
	viper      *viper.Viper
	newService serviceFactory
	newCache   func() (azure.CredentialCache, error)
}

func newRunner(opts *options, v *viper.Viper) *runner {
	return &runner{
		opts:       opts,
		viper:      v,
		newService: newService,
		newCache:   azure.NewCredentialCache,
	}
}

// run runs operation on the node of kind and records its outcome.
func (r *runner) run(ctx context.Context, kind infrav1.NodeKind, operation string) Result {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "plugin.runner.run",
		tele.KVP("kind", string(kind)),
		tele.KVP("operation", operation),
	)
	defer done()

	start := time.Now()
	result := r.execute(ctx, kind, operation)
	metrics.ObserveOperation(string(kind), operation, string(result.Status), time.Since(start))

	switch result.Status {
	case StatusOK:
		log.V(2).Info("operation completed", "resourceID", result.ResourceID)
	case StatusRetry:
		log.Info("operation not done yet, retry later", "retryAfter", result.RetryAfter, "reason", result.Message)
	default:
		log.Error(errors.New(result.Message), "operation failed")
	}
	return result
}

func (r *runner) execute(ctx context.Context, kind infrav1.NodeKind, operation string) Result {
	requeue := r.opts.timeouts.DefaultedReconcilerRequeue()

	nodeScope, err := r.newScope(ctx, kind)
	if err != nil {
		return errorResult(err, requeue)
	}

	ctx, cancel := context.WithTimeout(ctx, nodeScope.DefaultedOperationTimeout())
	defer cancel()

	var drift *Drift
	err = func() error {
		svc, err := r.newService(kind, nodeScope)
		if err != nil {
			return err
		}
		switch operation {
		case OperationCreate:
			return svc.Reconcile(ctx)
		case OperationDelete:
			if err := svc.Delete(ctx); err != nil {
				return err
			}
			nodeScope.ClearResource()
			return nil
		case OperationDiff:
			report, err := svc.Diff(ctx)
			if err != nil {
				return err
			}
			drift = newDrift(report)
			return nil
		case OperationStart, OperationStop, OperationRestart:
			power, ok := svc.(powerService)
			if !ok {
				return azure.WithTerminalError(errors.Errorf("operation %s is not supported by %s nodes", operation, kind))
			}
			switch operation {
			case OperationStart:
				return power.Start(ctx)
			case OperationStop:
				return power.Stop(ctx)
			default:
				return power.Restart(ctx)
			}
		default:
			return azure.WithTerminalError(errors.Errorf("unknown operation %q", operation))
		}
	}()

	// The runtime properties are saved even when the operation failed, so that
	// an operation still in flight is resumed next time.
	if closeErr := nodeScope.Close(context.WithoutCancel(ctx)); closeErr != nil {
		closeErr = errors.Wrap(closeErr, "failed to save runtime properties")
		if err == nil {
			err = closeErr
		} else {
			// err stays the cause so that a transient error is still retried.
			err = errors.WithMessage(err, closeErr.Error())
		}
	}
	if err != nil {
		return errorResult(err, requeue)
	}

	result := okResult(nodeScope.RuntimeProperties().ResourceID)
	result.Drift = drift
	return result
}

// newScope loads the provider configuration, the node and its runtime properties.
func (r *runner) newScope(ctx context.Context, kind infrav1.NodeKind) (*scope.NodeScope, error) {
	cfg, err := loadProviderConfig(r.viper, r.opts.configFile, r.opts.configFileSet)
	if err != nil {
		return nil, err
	}

	azure.SetRequestPolicies(services.NewThrottlePolicy(&cfg.RateLimit))

	node, err := readNode(r.opts.nodeFile, kind)
	if err != nil {
		return nil, err
	}

	cache, err := r.newCache()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create credential cache")
	}
	provider, err := scope.NewProviderConfigCredentialsProvider(cfg, cache)
	if err != nil {
		return nil, err
	}

	return scope.NewNodeScope(ctx, scope.NodeScopeParams{
		Node:                node,
		ProviderConfig:      cfg,
		Store:               &scope.FileStore{Path: r.opts.propertiesFile},
		CredentialsProvider: provider,
		Timeouts:            r.opts.timeouts,
	})
}

// readNode reads the node document at path. A node without kind takes the
// kind of the command; any other kind is rejected.
func readNode(path string, kind infrav1.NodeKind) (*infrav1.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, azure.WithTerminalError(errors.Wrap(err, "failed to open node"))
	}
	defer f.Close()

	node, err := infrav1.LoadNode(f)
	if err != nil {
		return nil, azure.WithTerminalError(errors.Wrapf(err, "failed to load node from %s", path))
	}
	switch node.Kind {
	case "":
		node.Kind = kind
	case kind:
	default:
		return nil, azure.WithTerminalError(errors.Errorf("node %s is a %s, not a %s", node.Name, node.Kind, kind))
	}
	return node, nil
}
