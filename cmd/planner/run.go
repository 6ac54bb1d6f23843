/*
Copyright 2025.

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

// Package planner resolves every fleet in the catalog into a provisioning
// plan and update policy for one pipeline stage, and writes the result as
// JSON for the provisioning back-end.
package planner

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"github.com/dc-tec/runner-fleet-provisioner/internal/environment"
	"github.com/dc-tec/runner-fleet-provisioner/internal/errors"
	"github.com/dc-tec/runner-fleet-provisioner/internal/fleet"
	"github.com/dc-tec/runner-fleet-provisioner/internal/logging"
	"github.com/dc-tec/runner-fleet-provisioner/internal/metrics"
	"github.com/dc-tec/runner-fleet-provisioner/internal/plan"
	"github.com/dc-tec/runner-fleet-provisioner/internal/policy"
	"github.com/dc-tec/runner-fleet-provisioner/internal/templates"
)

// FleetResult pairs one resolved fleet with its update policy in the JSON
// output handed to the provisioning back-end.
type FleetResult struct {
	Name   string              `json:"name"`
	Plan   *plan.Plan          `json:"plan"`
	Policy policy.UpdatePolicy `json:"updatePolicy"`
}

// Run executes the planner subcommand.
func Run(args []string) error {
	flags := flag.NewFlagSet("planner", flag.ContinueOnError)
	var (
		environmentConfig string
		fleetConfig       string
		stageName         string
		templatesDir      string
		outputPath        string
	)
	flags.StringVar(&environmentConfig, "environment-config", "environments.hcl",
		"Path to the HCL environment configuration file.")
	flags.StringVar(&fleetConfig, "fleet-config", "fleets.hcl",
		"Path to the HCL fleet catalog file.")
	flags.StringVar(&stageName, "stage", string(fleet.StageBeta),
		"Pipeline stage to resolve plans for.")
	flags.StringVar(&templatesDir, "templates-dir", "",
		"Optional directory overriding the embedded boot-script templates.")
	flags.StringVar(&outputPath, "output", "",
		"File to write resolved plans to. Defaults to stdout.")
	if err := flags.Parse(args); err != nil {
		return err
	}

	zapLog, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to construct logger: %w", err)
	}
	defer func() { _ = zapLog.Sync() }()
	log := zapr.NewLogger(zapLog).WithName("planner")

	// Environment resolution runs once, before any plan resolution, and a
	// failure aborts startup.
	cfg, err := environment.Load(environmentConfig)
	if err != nil {
		return err
	}
	logging.LogAuditEvent(log, logging.EventEnvironmentResolved, map[string]string{
		"config": environmentConfig,
		"dev":    fmt.Sprintf("%t", cfg.IsDev),
	})

	stage := fleet.Stage(stageName)
	env, ok := cfg.SpecFor(stage)
	if !ok {
		metrics.RecordResolutionFailure(metrics.ReasonMissingEnvironment)
		return errors.WrapInvalidRunnerConfig(
			fmt.Errorf("stage %q has no environment mapping (dev mode only maps pipeline and beta)", stage))
	}

	descriptors, err := fleet.LoadCatalog(fleetConfig)
	if err != nil {
		return err
	}

	results, failed := resolveFleets(log, descriptors, stage, env, templateSource(templatesDir))

	if err := writeResults(outputPath, results); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d fleets failed to resolve", failed, len(descriptors))
	}
	return nil
}

// resolveFleets resolves each descriptor independently: one fleet's failure
// does not abort the others.
func resolveFleets(log logr.Logger, descriptors []fleet.Descriptor, stage fleet.Stage, env environment.Spec, source plan.TemplateSource) ([]FleetResult, int) {
	resolver := plan.NewResolver(source, log)

	results := make([]FleetResult, 0, len(descriptors))
	failed := 0
	for _, desc := range descriptors {
		p, err := resolveOne(resolver, desc, stage, env)
		if err != nil {
			failed++
			log.Error(err, "fleet resolution failed", "fleet", desc.Name)
			logging.LogAuditEvent(log, logging.EventPlanFailed, map[string]string{
				"fleet": desc.Name,
				"stage": string(stage),
			})
			metrics.RecordResolutionFailure(failureReason(err))
			continue
		}

		up := policy.Resolve(stage, time.Now().UTC())
		if up.ScheduledShutdown != nil && desc.ShutdownRecurrence != "" {
			up.ScheduledShutdown.Recurrence = desc.ShutdownRecurrence
		}

		logging.LogAuditEvent(log, logging.EventPlanResolved, map[string]string{
			"fleet":          desc.Name,
			"stage":          string(stage),
			"shape":          p.InstanceShape,
			"resource_group": p.ResourceGroupName,
		})
		metrics.RecordResolution(string(desc.Platform), string(stage))

		results = append(results, FleetResult{Name: desc.Name, Plan: p, Policy: up})
	}
	return results, failed
}

func resolveOne(resolver *plan.Resolver, desc fleet.Descriptor, stage fleet.Stage, env environment.Spec) (*plan.Plan, error) {
	if err := policy.ValidateRecurrence(desc.ShutdownRecurrence); err != nil {
		return nil, errors.WrapInvalidRunnerConfig(err)
	}
	return resolver.Resolve(desc, stage, env)
}

func templateSource(dir string) plan.TemplateSource {
	if dir != "" {
		return templates.Dir(dir)
	}
	return templates.Embedded()
}

func failureReason(err error) string {
	switch {
	case errors.IsUnsupportedPlatform(err):
		return metrics.ReasonUnsupportedPlatform
	case errors.IsInvalidRunnerConfig(err):
		return metrics.ReasonInvalidRunnerConfig
	default:
		// The only non-classified failure path in plan resolution is a
		// template lookup.
		return metrics.ReasonTemplateLookup
	}
}

func writeResults(path string, results []FleetResult) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to encode resolved plans: %w", err)
	}
	return nil
}
