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
	"io/fs"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
)

const (
	// DefaultConfigFile is the provider configuration read when --config is not set.
	DefaultConfigFile = "azure_config.yaml"

	// EnvPrefix prefixes the environment variables overriding the provider configuration,
	// e.g. AZURE_SUBSCRIPTION_ID.
	EnvPrefix = "AZURE"
)

// providerConfigKeys are bound to environment variables so that Unmarshal sees
// them without a config file.
var providerConfigKeys = []string{
	"subscription_id",
	"tenant_id",
	"client_id",
	"client_secret",
	"cloud_environment",
	"federated_token_file",
	"location",
	"token_cache_file",
	"token_refresh_threshold",
	"rate_limit.enabled",
}

// newViper returns the viper instance holding the provider configuration.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, key := range providerConfigKeys {
		_ = v.BindEnv(key)
	}
	return v
}

// loadProviderConfig reads the provider configuration from path, with
// environment overrides. A missing file is only an error when required is set.
func loadProviderConfig(v *viper.Viper, path string, required bool) (*infrav1.ProviderConfig, error) {
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if !missing || required {
			return nil, azure.WithTerminalError(errors.Wrapf(err, "failed to read provider configuration %s", path))
		}
	}

	cfg := &infrav1.ProviderConfig{}
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	))
	if err := v.Unmarshal(cfg, decodeHook); err != nil {
		return nil, azure.WithTerminalError(errors.Wrap(err, "failed to decode provider configuration"))
	}

	cfg.Default()
	if err := infrav1.ValidateProviderConfig(cfg).ToAggregate(); err != nil {
		return nil, azure.WithTerminalError(errors.Wrap(err, "invalid provider configuration"))
	}
	return cfg, nil
}
