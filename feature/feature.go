/*
Copyright 2020 The Kubernetes Authors.

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

package feature

import (
	"k8s.io/apimachinery/pkg/util/runtime"
	"k8s.io/component-base/featuregate"
)

const (
	// nolint:godot
	// Every plugin feature gate should add a method here following this template:
	//
	// // MyFeature is the feature gate for my feature.
	// // alpha: v0.X
	// MyFeature featuregate.Feature = "MyFeature"

	// DriftDetection is the feature gate for comparing an existing resource with its node
	// configuration before deciding whether to update it. With the gate off, a resource
	// that already exists is left as it is.
	// beta: v0.2
	DriftDetection featuregate.Feature = "DriftDetection"

	// VMPowerOperations is the feature gate for the virtual machine start, stop and restart operations.
	// alpha: v0.3
	VMPowerOperations featuregate.Feature = "VMPowerOperations"
)

var (
	// MutableGates is a mutable version of Gates, used by the command line to set gates from flags.
	MutableGates featuregate.MutableFeatureGate = featuregate.NewFeatureGate()

	// Gates is a shared global FeatureGate.
	Gates featuregate.FeatureGate = MutableGates
)

func init() {
	runtime.Must(MutableGates.Add(defaultPluginFeatureGates))
}

// defaultPluginFeatureGates consists of all known plugin feature keys.
// To add a new feature, define a key for it above and add it here.
var defaultPluginFeatureGates = map[featuregate.Feature]featuregate.FeatureSpec{
	DriftDetection:    {Default: true, PreRelease: featuregate.Beta},
	VMPowerOperations: {Default: false, PreRelease: featuregate.Alpha},
}
