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

// Package futures manages the long-running operation states held by a node.
package futures

import (
	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
)

// Getter interface defines methods that an object should implement in order to
// use the futures package for getting long-running operation states.
type Getter interface {
	// GetFutures returns the list of long-running operation states for an object.
	GetFutures() infrav1.Futures
}

// Get returns the future with the given name, service and type, if the future does not exists,
// it returns nil.
func Get(from Getter, name, service string, futureType infrav1.FutureType) *infrav1.Future {
	futures := from.GetFutures()
	if futures == nil {
		return nil
	}

	for i := range futures {
		f := futures[i]
		if f.Name == name && f.ServiceName == service && f.Type == futureType {
			return &f
		}
	}
	return nil
}

// Has returns true if a future with the given name, service and type exists.
func Has(from Getter, name, service string, futureType infrav1.FutureType) bool {
	return Get(from, name, service, futureType) != nil
}
