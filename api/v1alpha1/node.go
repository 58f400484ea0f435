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

package v1alpha1

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Node is the declaration of one Azure resource as the orchestrator hands it to
// the plugin.
type Node struct {
	// Kind is the type of resource the node manages.
	Kind NodeKind `yaml:"kind"`

	// Name is the Azure name of the resource.
	Name string `yaml:"name"`

	// ResourceGroup is the resource group holding the resource. Resource group nodes leave it empty.
	ResourceGroup string `yaml:"resource_group,omitempty"`

	// Location is the Azure region of the resource. Defaults to the provider configuration's location.
	Location string `yaml:"location,omitempty"`

	// Tags are applied to the resource, on top of the plugin's own tags.
	Tags Tags `yaml:"tags,omitempty"`

	// UseExternalResource makes the plugin adopt an existing resource it must neither modify nor delete.
	UseExternalResource bool `yaml:"use_external_resource,omitempty"`

	// ResourceConfig holds the kind specific properties, decoded by Config.
	ResourceConfig yaml.Node `yaml:"resource_config,omitempty"`
}

// ResourceConfig is implemented by the resource_config type of every kind.
type ResourceConfig interface {
	// Default fills in the fields Azure would otherwise default, so the desired
	// configuration matches what Azure reports back.
	Default(node *Node)
	// Validate checks the configuration of node.
	Validate(node *Node) error
}

// LoadNode reads a node document. Unknown top level properties are rejected.
func LoadNode(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read node")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	node := &Node{}
	if err := dec.Decode(node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("node document is empty")
		}
		return nil, errors.Wrap(err, "failed to decode node")
	}
	return node, nil
}

// NewResourceConfig returns an empty resource_config of the given kind.
func NewResourceConfig(kind NodeKind) (ResourceConfig, error) {
	switch kind {
	case ResourceGroupKind:
		return &ResourceGroupConfig{}, nil
	case VirtualNetworkKind:
		return &VirtualNetworkConfig{}, nil
	case SubnetKind:
		return &SubnetConfig{}, nil
	case AvailabilitySetKind:
		return &AvailabilitySetConfig{}, nil
	case DiskKind:
		return &DiskConfig{}, nil
	case NetworkInterfaceKind:
		return &NetworkInterfaceConfig{}, nil
	case VirtualMachineKind:
		return &VirtualMachineConfig{}, nil
	default:
		return nil, errors.Errorf("unknown node kind %q", kind)
	}
}

// Config decodes the node's resource_config into the type of its kind. A node
// without resource_config gets the empty configuration.
func (n *Node) Config() (ResourceConfig, error) {
	cfg, err := NewResourceConfig(n.Kind)
	if err != nil {
		return nil, err
	}
	if n.ResourceConfig.Kind == 0 {
		return cfg, nil
	}
	if err := n.ResourceConfig.Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to decode resource_config of %s %s", n.Kind, n.Name)
	}
	return cfg, nil
}
