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

// Package plugin implements the azure-plugin command line, which the
// orchestrator runs once per node lifecycle operation.
package plugin

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/azure"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/feature"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/metrics"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/reconciler"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/util/tele"
	"github.com/cloudify-cosmo/cloudify-azure-plugin/version"
)

const tracingShutdownTimeout = 5 * time.Second

// options holds the flags of the plugin.
type options struct {
	configFile     string
	configFileSet  bool
	nodeFile       string
	propertiesFile string
	metricsFile    string
	otlpEndpoint   string
	otlpInsecure   bool
	timeouts       reconciler.Timeouts
}

// exitError carries the exit code of an operation whose result was already written.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

var nodeKinds = []infrav1.NodeKind{
	infrav1.ResourceGroupKind,
	infrav1.VirtualNetworkKind,
	infrav1.SubnetKind,
	infrav1.AvailabilitySetKind,
	infrav1.DiskKind,
	infrav1.NetworkInterfaceKind,
	infrav1.VirtualMachineKind,
}

// Execute runs the plugin with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return execute(ctx, NewRootCommand(), args, stdout, stderr)
}

func execute(ctx context.Context, cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	defer klog.Flush()

	if err := cmd.ExecuteContext(ctx); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitOK
}

// NewRootCommand returns the azure-plugin command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(newService)
}

func newRootCommand(factory serviceFactory) *cobra.Command {
	opts := &options{}
	v := newViper()

	cmd := &cobra.Command{
		Use:   "azure-plugin",
		Short: "Provision Azure resources for orchestrator nodes",
		Long: "azure-plugin creates, deletes and compares the Azure resource of a single node. " +
			"The outcome is written to stdout as JSON and reflected in the exit code: " +
			"0 when done, 2 when the operation should be retried and 1 when it failed.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.configFileSet = cmd.Flags().Changed("config")
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	initFlags(cmd.PersistentFlags(), opts)

	for _, kind := range nodeKinds {
		cmd.AddCommand(newKindCommand(kind, opts, v, factory))
	}
	cmd.AddCommand(newVersionCommand())
	return cmd
}

// initFlags initializes the flags shared by every command.
func initFlags(fs *pflag.FlagSet, opts *options) {
	goFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(goFlags)
	fs.AddGoFlagSet(goFlags)

	fs.StringVar(&opts.configFile,
		"config",
		DefaultConfigFile,
		"Path to the Azure provider configuration. Every setting can be overridden with an "+EnvPrefix+"_ environment variable.",
	)
	fs.StringVar(&opts.metricsFile,
		"metrics-file",
		"",
		"Write the operation metrics to this file in the prometheus text format.",
	)
	fs.StringVar(&opts.otlpEndpoint,
		"otlp-endpoint",
		"",
		"Export traces to the OTLP gRPC collector at this address (e.g. localhost:4317). Tracing is disabled when empty.",
	)
	fs.BoolVar(&opts.otlpInsecure,
		"otlp-insecure",
		false,
		"Connect to the OTLP collector without TLS.",
	)
	fs.DurationVar(&opts.timeouts.Operation,
		"operation-timeout",
		reconciler.DefaultOperationTimeout,
		"The maximum duration of a lifecycle operation (e.g. 90m).",
	)
	fs.DurationVar(&opts.timeouts.AzureCall,
		"azure-call-timeout",
		reconciler.DefaultAzureCallTimeout,
		"How long to wait for a long running Azure operation before returning a retry result.",
	)
	fs.DurationVar(&opts.timeouts.AzureServiceReconcile,
		"service-reconcile-timeout",
		reconciler.DefaultAzureServiceReconcileTimeout,
		"The maximum duration of the Azure calls of one operation.",
	)
	fs.DurationVar(&opts.timeouts.Requeue,
		"retry-after",
		reconciler.DefaultReconcilerRequeue,
		"The retry hint reported when Azure gives none.",
	)
	feature.MutableGates.AddFlag(fs)
}

// newKindCommand returns the command grouping the operations of one node kind.
func newKindCommand(kind infrav1.NodeKind, opts *options, v *viper.Viper, factory serviceFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:          string(kind),
		Short:        fmt.Sprintf("Run a lifecycle operation on a %s node", kind),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.nodeFile, "node", "", "Path to the node document (YAML).")
	cmd.PersistentFlags().StringVar(&opts.propertiesFile, "runtime-properties", "", "Path to the runtime properties of the node (JSON). Created when missing.")
	_ = cmd.MarkPersistentFlagRequired("node")
	_ = cmd.MarkPersistentFlagRequired("runtime-properties")

	operations := []struct {
		name  string
		short string
	}{
		{OperationCreate, "Create the resource, or update it when it drifted from the node"},
		{OperationDelete, "Delete the resource"},
		{OperationDiff, "Report how the resource differs from the node without changing it"},
	}
	if kind == infrav1.VirtualMachineKind {
		operations = append(operations, []struct {
			name  string
			short string
		}{
			{OperationStart, "Start the virtual machine"},
			{OperationStop, "Stop the virtual machine"},
			{OperationRestart, "Restart the virtual machine"},
		}...)
	}

	for _, op := range operations {
		operation := op.name
		cmd.AddCommand(&cobra.Command{
			Use:          operation,
			Short:        op.short,
			Args:         cobra.NoArgs,
			SilenceUsage: true,
			RunE: func(cmd *cobra.Command, _ []string) error {
				r := newRunner(opts, v)
				r.newService = factory
				return runOperation(cmd, r, kind, operation)
			},
		})
	}
	return cmd
}

// runOperation runs the operation, writes its result and turns a failed
// result into an exitError.
func runOperation(cmd *cobra.Command, r *runner, kind infrav1.NodeKind, operation string) error {
	log := klog.NewKlogr().WithValues("kind", kind, "operation", operation)
	azure.SetTransportLogger(log)
	ctx := logr.NewContext(cmd.Context(), log)
	ctx, _ = tele.CtxWithCorrID(ctx)

	var result Result
	shutdown, err := initTracing(ctx, r.opts.otlpEndpoint, r.opts.otlpInsecure)
	if err != nil {
		result = errorResult(azure.WithTerminalError(err), r.opts.timeouts.DefaultedReconcilerRequeue())
	} else {
		result = r.run(ctx, kind, operation)
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), tracingShutdownTimeout)
		if err := shutdown(flushCtx); err != nil {
			log.Error(err, "failed to flush traces")
		}
		cancel()
	}

	if r.opts.metricsFile != "" {
		if err := metrics.WriteTextfile(r.opts.metricsFile); err != nil {
			log.Error(err, "failed to write metrics")
		}
	}

	if err := result.Write(cmd.OutOrStdout()); err != nil {
		return err
	}
	if code := result.ExitCode(); code != ExitOK {
		return &exitError{code: code}
	}
	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of the plugin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(version.Get())
		},
	}
}
