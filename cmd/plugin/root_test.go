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
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure/scope"
)

func TestExecute(t *testing.T) {
	testcases := []struct {
		name           string
		args           func(env *testEnv) []string
		setup          func(f *fakeService)
		expectedCode   int
		expectedStatus Status
		expectedStderr string
	}{
		{
			name: "create a resource group",
			args: func(env *testEnv) []string {
				return []string{"resourcegroup", "create",
					"--config", env.opts.configFile,
					"--node", env.opts.nodeFile,
					"--runtime-properties", env.opts.propertiesFile,
				}
			},
			expectedCode:   ExitOK,
			expectedStatus: StatusOK,
		},
		{
			name: "retry a delete in progress",
			args: func(env *testEnv) []string {
				return []string{"resourcegroup", "delete",
					"--config", env.opts.configFile,
					"--node", env.opts.nodeFile,
					"--runtime-properties", env.opts.propertiesFile,
					"--retry-after", "45s",
				}
			},
			setup: func(f *fakeService) {
				f.err = azure.WithTransientError(azure.NewOperationNotDoneError(&infrav1.Future{Name: "my-rg"}), 0)
			},
			expectedCode:   ExitRecoverable,
			expectedStatus: StatusRetry,
		},
		{
			name: "power operations only exist for virtual machines",
			args: func(env *testEnv) []string {
				return []string{"subnet", "start", "--node", env.opts.nodeFile, "--runtime-properties", env.opts.propertiesFile}
			},
			expectedCode:   ExitError,
			expectedStderr: `unknown command "start" for "azure-plugin subnet"`,
		},
		{
			name: "node flag is required",
			args: func(env *testEnv) []string {
				return []string{"resourcegroup", "create", "--runtime-properties", env.opts.propertiesFile}
			},
			expectedCode:   ExitError,
			expectedStderr: `required flag(s) "node" not set`,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			env := newTestEnv(t, groupNode, nil)
			if tc.setup != nil {
				tc.setup(env.fake)
			}
			factory := func(_ infrav1.NodeKind, s *scope.NodeScope) (nodeService, error) {
				env.fake.scope = s
				return env.fake, nil
			}

			var stdout, stderr bytes.Buffer
			code := execute(t.Context(), newRootCommand(factory), tc.args(env), &stdout, &stderr)
			g.Expect(code).To(Equal(tc.expectedCode))
			if tc.expectedStderr != "" {
				g.Expect(stderr.String()).To(ContainSubstring(tc.expectedStderr))
				return
			}

			var result Result
			g.Expect(json.Unmarshal(stdout.Bytes(), &result)).To(Succeed())
			g.Expect(result.Status).To(Equal(tc.expectedStatus))
			if tc.expectedStatus == StatusRetry {
				g.Expect(result.RetryAfter).To(Equal(int64(45)))
			}
		})
	}
}

func TestExecuteWritesMetrics(t *testing.T) {
	g := NewWithT(t)
	env := newTestEnv(t, groupNode, nil)
	metricsFile := filepath.Join(t.TempDir(), "azure_plugin.prom")
	factory := func(_ infrav1.NodeKind, s *scope.NodeScope) (nodeService, error) {
		env.fake.scope = s
		return env.fake, nil
	}

	var stdout, stderr bytes.Buffer
	code := execute(t.Context(), newRootCommand(factory), []string{
		"resourcegroup", "create",
		"--config", env.opts.configFile,
		"--node", env.opts.nodeFile,
		"--runtime-properties", env.opts.propertiesFile,
		"--metrics-file", metricsFile,
	}, &stdout, &stderr)
	g.Expect(code).To(Equal(ExitOK))

	content := readFile(t, metricsFile)
	g.Expect(content).To(ContainSubstring(`cloudify_azure_reconcile_total{kind="resourcegroup",operation="create",result="ok"}`))
}

func TestVersionCommand(t *testing.T) {
	g := NewWithT(t)
	var stdout, stderr bytes.Buffer
	code := Execute(t.Context(), []string{"version"}, &stdout, &stderr)
	g.Expect(code).To(Equal(ExitOK))

	var info map[string]string
	g.Expect(json.Unmarshal(stdout.Bytes(), &info)).To(Succeed())
	g.Expect(info).To(HaveKey("git_version"))
	g.Expect(info).To(HaveKey("go_version"))
}
