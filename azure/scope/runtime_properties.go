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
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/tele"
)

// PropertiesStore loads and saves the runtime properties of a node.
type PropertiesStore interface {
	Load(ctx context.Context) (*infrav1.RuntimeProperties, error)
	Save(ctx context.Context, props *infrav1.RuntimeProperties) error
}

// FileStore keeps runtime properties in a JSON file.
type FileStore struct {
	Path string
}

var _ PropertiesStore = (*FileStore)(nil)

// Load reads the runtime properties. A missing or empty file holds empty properties.
func (f *FileStore) Load(ctx context.Context) (*infrav1.RuntimeProperties, error) {
	_, log, done := tele.StartSpanWithLogger(ctx, "scope.FileStore.Load", tele.KVP("path", f.Path))
	defer done()

	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		log.V(4).Info("no runtime properties found, starting empty")
		return &infrav1.RuntimeProperties{}, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to read runtime properties %s", f.Path)
	}

	props := &infrav1.RuntimeProperties{}
	if len(data) == 0 {
		return props, nil
	}
	if err := json.Unmarshal(data, props); err != nil {
		return nil, errors.Wrapf(err, "failed to decode runtime properties %s", f.Path)
	}
	return props, nil
}

// Save replaces the runtime properties file. Readers never see a partial file.
func (f *FileStore) Save(ctx context.Context, props *infrav1.RuntimeProperties) error {
	_, _, done := tele.StartSpanWithLogger(ctx, "scope.FileStore.Save", tele.KVP("path", f.Path))
	defer done()

	data, err := json.MarshalIndent(props, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode runtime properties")
	}
	return azure.WriteFileAtomic(f.Path, append(data, '\n'), 0o600)
}
