// Package environment resolves and validates the promotion-environment
// configuration: which account/region pair each pipeline stage deploys to.
// Resolution runs once at process start; the resulting Config is read-only
// for the process lifetime.
package environment

import (
	"fmt"

	"github.com/dc-tec/runner-fleet-provisioner/internal/errors"
	"github.com/dc-tec/runner-fleet-provisioner/internal/fleet"
)

// Spec is one account/region pair. Immutable once resolved.
type Spec struct {
	Account string `json:"account"`
	Region  string `json:"region"`
}

// IsComplete reports whether both account and region are populated.
func (s Spec) IsComplete() bool {
	return s.Account != "" && s.Region != ""
}

// RawConfig is the unvalidated environment mapping as supplied by the
// configuration source. Each field is either absent (nil) or a populated
// spec.
type RawConfig struct {
	EnvDev      *Spec
	EnvPipeline *Spec
	EnvBeta     *Spec
	EnvProd     *Spec
	EnvRelease  *Spec
}

// Config is the validated stage -> account/region map.
//
// In dev mode only pipeline and beta are populated (and equal); prod and
// release are nil. Outside dev mode all four stages are present and
// complete.
type Config struct {
	IsDev    bool
	Pipeline Spec
	Beta     Spec
	Prod     *Spec
	Release  *Spec
}

// Resolve validates and normalizes a raw environment mapping.
//
// If EnvDev is present the resolver short-circuits to dev mode: pipeline and
// beta both map to the dev spec and every other field is ignored. This
// models a single-account sandbox, distinct from the four-stage promotion
// pipeline.
//
// Otherwise all four stage mappings are required, checked in pipeline, beta,
// prod, release order. The first missing or incomplete mapping fails
// resolution; partial configuration is never acceptable because pipeline
// wiring depends on every stage.
func Resolve(raw RawConfig) (*Config, error) {
	if raw.EnvDev != nil {
		if err := requireComplete("envDev", raw.EnvDev); err != nil {
			return nil, err
		}
		return &Config{
			IsDev:    true,
			Pipeline: *raw.EnvDev,
			Beta:     *raw.EnvDev,
		}, nil
	}

	required := []struct {
		name string
		spec *Spec
	}{
		{name: "envPipeline", spec: raw.EnvPipeline},
		{name: "envBeta", spec: raw.EnvBeta},
		{name: "envProd", spec: raw.EnvProd},
		{name: "envRelease", spec: raw.EnvRelease},
	}
	for _, r := range required {
		if err := requireComplete(r.name, r.spec); err != nil {
			return nil, err
		}
	}

	return &Config{
		Pipeline: *raw.EnvPipeline,
		Beta:     *raw.EnvBeta,
		Prod:     raw.EnvProd,
		Release:  raw.EnvRelease,
	}, nil
}

func requireComplete(name string, spec *Spec) error {
	if spec == nil {
		return errors.WrapConfigValidation(fmt.Errorf("missing required environment %s", name))
	}
	if !spec.IsComplete() {
		return errors.WrapConfigValidation(fmt.Errorf("environment %s must set both account and region", name))
	}
	return nil
}

// SpecFor returns the environment spec for a pipeline stage. The second
// return is false when the stage has no mapping, which only happens for
// prod/release in dev mode or an unrecognized stage name.
func (c *Config) SpecFor(stage fleet.Stage) (Spec, bool) {
	switch stage {
	case fleet.StagePipeline:
		return c.Pipeline, true
	case fleet.StageBeta:
		return c.Beta, true
	case fleet.StageProd:
		if c.Prod == nil {
			return Spec{}, false
		}
		return *c.Prod, true
	case fleet.StageRelease:
		if c.Release == nil {
			return Spec{}, false
		}
		return *c.Release, true
	default:
		return Spec{}, false
	}
}
