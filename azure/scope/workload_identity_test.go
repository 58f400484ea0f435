/*
Copyright 2023 The Kubernetes Authors.

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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	. "github.com/onsi/gomega"
)

func TestWorkloadIdentityCredentialOptionsWithDefaults(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token")
	t.Setenv(AzureFedratedTokenFileEnvKey, tokenFile)
	t.Setenv(AzureClientIDEnvKey, "env-client")
	t.Setenv(AzureTenantIDEnvKey, "env-tenant")

	g := NewWithT(t)
	opts, err := NewWorkloadIdentityCredentialOptions().WithDefaults()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(opts.TokenFilePath).To(Equal(tokenFile))
	g.Expect(opts.ClientID).To(Equal("env-client"))
	g.Expect(opts.TenantID).To(Equal("env-tenant"))

	opts, err = NewWorkloadIdentityCredentialOptions().
		WithClientID("client").
		WithTenantID("tenant").
		WithTokenFilePath("/var/run/token").
		WithDefaults()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(opts.TokenFilePath).To(Equal("/var/run/token"))
	g.Expect(opts.ClientID).To(Equal("client"))
	g.Expect(opts.TenantID).To(Equal("tenant"))
}

func TestWorkloadIdentityCredentialOptionsMissingValues(t *testing.T) {
	t.Setenv(AzureFedratedTokenFileEnvKey, "")
	t.Setenv(AzureClientIDEnvKey, "")
	t.Setenv(AzureTenantIDEnvKey, "")

	g := NewWithT(t)
	_, err := NewWorkloadIdentityCredentialOptions().WithDefaults()
	g.Expect(err).To(MatchError(ContainSubstring("projected token path not injected")))

	_, err = NewWorkloadIdentityCredentialOptions().WithTokenFilePath("/var/run/token").WithDefaults()
	g.Expect(err).To(MatchError("empty client ID"))

	_, err = NewWorkloadIdentityCredentialOptions().WithTokenFilePath("/var/run/token").WithClientID("client").WithDefaults()
	g.Expect(err).To(MatchError("empty tenant ID"))
}

func TestWorkloadIdentityAssertionIsReread(t *testing.T) {
	g := NewWithT(t)
	tokenFile := filepath.Join(t.TempDir(), "token")
	g.Expect(os.WriteFile(tokenFile, []byte("first\n"), 0o600)).To(Succeed())

	clk := testclock.NewClock(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	cred, err := NewWorkloadIdentityCredential(&WorkloadIdentityCredentialOptions{
		ClientID:      "00000000-0000-0000-0000-000000000001",
		TenantID:      "00000000-0000-0000-0000-000000000002",
		TokenFilePath: tokenFile,
		Clock:         clk,
	})
	g.Expect(err).NotTo(HaveOccurred())

	assertion, err := cred.getAssertion(t.Context())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(assertion).To(Equal("first"))

	g.Expect(os.WriteFile(tokenFile, []byte("second"), 0o600)).To(Succeed())
	clk.Advance(time.Minute)
	assertion, err = cred.getAssertion(t.Context())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(assertion).To(Equal("first"))

	clk.Advance(assertionReadInterval)
	assertion, err = cred.getAssertion(t.Context())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(assertion).To(Equal("second"))
}
