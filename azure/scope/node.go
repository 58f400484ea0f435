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
	"fmt"
	"strings"

	"github.com/pkg/errors"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/conditions"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/futures"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/maps"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/reconciler"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/tele"
)

// NodeScopeParams defines the input parameters used to create a new NodeScope.
type NodeScopeParams struct {
	AzureClients
	Node                *infrav1.Node
	ProviderConfig      *infrav1.ProviderConfig
	Store               PropertiesStore
	CredentialsProvider CredentialsProvider
	Timeouts            reconciler.Timeouts
}

// NewNodeScope creates a new NodeScope from the supplied parameters.
// This is meant to be called for each lifecycle operation.
func NewNodeScope(ctx context.Context, params NodeScopeParams) (*NodeScope, error) {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "scope.NewNodeScope")
	defer done()

	if params.Node == nil {
		return nil, errors.New("failed to generate new scope from nil Node")
	}
	if params.ProviderConfig == nil {
		return nil, errors.New("failed to generate new scope from nil ProviderConfig")
	}
	if params.Store == nil {
		return nil, errors.New("failed to generate new scope from nil Store")
	}

	node := params.Node
	infrav1.SetNodeDefaults(node, params.ProviderConfig)
	if err := infrav1.ValidateNode(node).ToAggregate(); err != nil {
		return nil, azure.WithTerminalError(errors.Wrapf(err, "invalid node %s", node.Name))
	}
	config, err := node.Config()
	if err != nil {
		return nil, azure.WithTerminalError(err)
	}
	config.Default(node)
	if err := config.Validate(node); err != nil {
		return nil, azure.WithTerminalError(errors.Wrapf(err, "invalid resource_config of %s %s", node.Kind, node.Name))
	}

	if params.CredentialsProvider != nil {
		if err := params.AzureClients.setCredentialsWithProvider(ctx, params.ProviderConfig, params.CredentialsProvider); err != nil {
			return nil, errors.Wrap(err, "failed to configure azure settings and credentials")
		}
	} else if err := params.AzureClients.setCredentials(params.ProviderConfig.SubscriptionID, params.ProviderConfig.CloudEnvironment); err != nil {
		return nil, errors.Wrap(err, "failed to configure azure settings")
	}

	props, err := params.Store.Load(ctx)
	if err != nil {
		return nil, err
	}

	s := &NodeScope{
		AzureClients: params.AzureClients,
		Timeouts:     params.Timeouts,
		node:         node,
		config:       config,
		store:        params.Store,
		properties:   props,
	}
	s.resolveReferences()
	log.V(4).Info("created node scope", "kind", node.Kind, "name", node.Name, "resourceGroup", node.ResourceGroup)
	return s, nil
}

// NodeScope defines the basic context for an actuator to operate upon.
type NodeScope struct {
	AzureClients
	reconciler.Timeouts

	node       *infrav1.Node
	config     infrav1.ResourceConfig
	store      PropertiesStore
	properties *infrav1.RuntimeProperties
}

// Close saves the runtime properties of the node.
func (s *NodeScope) Close(ctx context.Context) error {
	return s.store.Save(ctx, s.properties)
}

// Name returns the name of the node's resource.
func (s *NodeScope) Name() string {
	return s.node.Name
}

// Kind returns the kind of the node.
func (s *NodeScope) Kind() infrav1.NodeKind {
	return s.node.Kind
}

// ResourceGroup returns the resource group of the node's resource.
func (s *NodeScope) ResourceGroup() string {
	return s.node.ResourceGroup
}

// Location returns the Azure location of the node's resource.
func (s *NodeScope) Location() string {
	return s.node.Location
}

// UseExternalResource reports whether the node refers to a resource the plugin does not manage.
func (s *NodeScope) UseExternalResource() bool {
	return s.node.UseExternalResource
}

// AdditionalTags returns the tags set on every resource created for the node: the
// managed-by tag overlaid with the node's tags.
func (s *NodeScope) AdditionalTags() infrav1.Tags {
	return maps.Merge(map[string]string{azure.ManagedByTagKey: azure.ManagedByTagValue}, s.node.Tags)
}

// RuntimeProperties returns the runtime properties the scope records into.
func (s *NodeScope) RuntimeProperties() *infrav1.RuntimeProperties {
	return s.properties
}

// SetResourceID records the Azure resource ID of the node's resource.
func (s *NodeScope) SetResourceID(id string) {
	s.properties.ResourceID = id
}

// SetOutput records a value other nodes may consume.
func (s *NodeScope) SetOutput(key, value string) {
	s.properties.SetOutput(key, value)
}

// ClearResource forgets the node's resource once it was deleted.
func (s *NodeScope) ClearResource() {
	s.properties.ResourceID = ""
	s.properties.Outputs = nil
}

// SetLongRunningOperationState will set the future on the runtime properties to allow the resource to continue
// in the next operation.
func (s *NodeScope) SetLongRunningOperationState(future *infrav1.Future) {
	futures.Set(s.properties, future)
}

// GetLongRunningOperationState will get the future on the runtime properties.
func (s *NodeScope) GetLongRunningOperationState(name, service string, futureType infrav1.FutureType) *infrav1.Future {
	return futures.Get(s.properties, name, service, futureType)
}

// DeleteLongRunningOperationState will delete the future from the runtime properties.
func (s *NodeScope) DeleteLongRunningOperationState(name, service string, futureType infrav1.FutureType) {
	futures.Delete(s.properties, name, service, futureType)
}

// UpdatePutStatus updates a condition on the runtime properties after a PUT operation.
func (s *NodeScope) UpdatePutStatus(condition infrav1.ConditionType, service string, err error) {
	switch {
	case err == nil:
		conditions.MarkTrue(s.properties, condition)
	case azure.IsOperationNotDoneError(err):
		conditions.MarkFalse(s.properties, condition, infrav1.CreatingReason, infrav1.ConditionSeverityInfo, "%s creating or updating", service)
	default:
		conditions.MarkFalse(s.properties, condition, infrav1.FailedReason, infrav1.ConditionSeverityError, "%s failed to create or update. err: %s", service, err.Error())
	}
}

// UpdateDeleteStatus updates a condition on the runtime properties after a DELETE operation.
func (s *NodeScope) UpdateDeleteStatus(condition infrav1.ConditionType, service string, err error) {
	switch {
	case err == nil:
		conditions.MarkFalse(s.properties, condition, infrav1.DeletedReason, infrav1.ConditionSeverityInfo, "%s successfully deleted", service)
	case azure.IsOperationNotDoneError(err):
		conditions.MarkFalse(s.properties, condition, infrav1.DeletingReason, infrav1.ConditionSeverityInfo, "%s deleting", service)
	default:
		conditions.MarkFalse(s.properties, condition, infrav1.DeletionFailedReason, infrav1.ConditionSeverityError, "%s failed to delete. err: %s", service, err.Error())
	}
}

// UpdatePostStatus updates a condition on the runtime properties after a POST operation. The
// service name tells which power operation ran.
func (s *NodeScope) UpdatePostStatus(condition infrav1.ConditionType, service string, err error) {
	if err != nil {
		if azure.IsOperationNotDoneError(err) {
			conditions.MarkFalse(s.properties, condition, postReason(service), infrav1.ConditionSeverityInfo, "%s in progress", service)
			return
		}
		conditions.MarkFalse(s.properties, condition, infrav1.FailedReason, infrav1.ConditionSeverityError, "%s failed. err: %s", service, err.Error())
		return
	}
	if strings.HasSuffix(service, "/stop") {
		conditions.MarkFalse(s.properties, condition, infrav1.VMStoppedReason, infrav1.ConditionSeverityInfo, "%s succeeded", service)
		return
	}
	conditions.MarkTrue(s.properties, condition)
}

func postReason(service string) string {
	switch {
	case strings.HasSuffix(service, "/start"):
		return infrav1.VMStartingReason
	case strings.HasSuffix(service, "/stop"):
		return infrav1.VMStoppingReason
	case strings.HasSuffix(service, "/restart"):
		return infrav1.VMRestartingReason
	default:
		return infrav1.UpdatingReason
	}
}

// UpdateDriftStatus records on the runtime properties whether the node's resource drifted from its configuration.
func (s *NodeScope) UpdateDriftStatus(service string, report *azure.DriftReport) {
	if !report.Drifted() {
		conditions.MarkFalse(s.properties, infrav1.ConfigurationDriftedCondition, "NoDrift", infrav1.ConditionSeverityNone, "%s matches its configuration", service)
		return
	}
	paths := make([]string, 0, len(report.Differences))
	for _, d := range report.Differences {
		paths = append(paths, d.Path)
	}
	conditions.Set(s.properties, &infrav1.Condition{
		Type:     infrav1.ConfigurationDriftedCondition,
		Status:   infrav1.ConditionTrue,
		Severity: infrav1.ConditionSeverityWarning,
		Reason:   infrav1.DriftDetectedReason,
		Message:  fmt.Sprintf("%s differs from its configuration at %s", service, strings.Join(paths, ", ")),
	})
}

// resolveReferences turns references to resources by name into resource IDs.
func (s *NodeScope) resolveReferences() {
	sub, rg := s.SubscriptionID(), s.ResourceGroup()
	switch cfg := s.config.(type) {
	case *infrav1.SubnetConfig:
		if cfg.NetworkSecurityGroup == nil && cfg.NetworkSecurityGroupName != "" {
			cfg.NetworkSecurityGroup = &infrav1.SubResource{ID: azure.SecurityGroupID(sub, rg, cfg.NetworkSecurityGroupName)}
		}
		if cfg.RouteTable == nil && cfg.RouteTableName != "" {
			cfg.RouteTable = &infrav1.SubResource{ID: azure.RouteTableID(sub, rg, cfg.RouteTableName)}
		}
	case *infrav1.NetworkInterfaceConfig:
		for i := range cfg.IPConfigurations {
			ipc := &cfg.IPConfigurations[i]
			if ipc.Subnet == nil && ipc.SubnetName != "" {
				ipc.Subnet = &infrav1.SubResource{ID: azure.SubnetID(sub, rg, ipc.VirtualNetworkName, ipc.SubnetName)}
			}
		}
		if cfg.NetworkSecurityGroup == nil && cfg.NetworkSecurityGroupName != "" {
			cfg.NetworkSecurityGroup = &infrav1.SubResource{ID: azure.SecurityGroupID(sub, rg, cfg.NetworkSecurityGroupName)}
		}
	case *infrav1.VirtualMachineConfig:
		if cfg.AvailabilitySet == nil && cfg.AvailabilitySetName != "" {
			cfg.AvailabilitySet = &infrav1.SubResource{ID: azure.AvailabilitySetID(sub, rg, cfg.AvailabilitySetName)}
		}
		if cfg.NetworkProfile != nil {
			for i := range cfg.NetworkProfile.NetworkInterfaces {
				nic := &cfg.NetworkProfile.NetworkInterfaces[i]
				if nic.ID == "" && nic.Name != "" {
					nic.ID = azure.NetworkInterfaceID(sub, rg, nic.Name)
				}
			}
		}
	}
}
