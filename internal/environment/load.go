package environment

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// The environment configuration file is HCL, one block per recognized
// stage mapping:
//
//	pipeline {
//	  account = "111111111111"
//	  region  = "us-east-1"
//	}
//
// A dev block, when present, short-circuits every other block.

type hclEnvironments struct {
	Dev      *hclEnvironmentSpec `hcl:"dev,block"`
	Pipeline *hclEnvironmentSpec `hcl:"pipeline,block"`
	Beta     *hclEnvironmentSpec `hcl:"beta,block"`
	Prod     *hclEnvironmentSpec `hcl:"prod,block"`
	Release  *hclEnvironmentSpec `hcl:"release,block"`
}

type hclEnvironmentSpec struct {
	Account string `hcl:"account"`
	Region  string `hcl:"region"`
}

// Load parses an HCL environment configuration file and resolves it.
func Load(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse environment config %s: %s", path, diags.Error())
	}

	var decoded hclEnvironments
	diags = gohcl.DecodeBody(file.Body, nil, &decoded)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode environment config %s: %s", path, diags.Error())
	}

	return Resolve(RawConfig{
		EnvDev:      decoded.Dev.toSpec(),
		EnvPipeline: decoded.Pipeline.toSpec(),
		EnvBeta:     decoded.Beta.toSpec(),
		EnvProd:     decoded.Prod.toSpec(),
		EnvRelease:  decoded.Release.toSpec(),
	})
}

func (s *hclEnvironmentSpec) toSpec() *Spec {
	if s == nil {
		return nil
	}
	return &Spec{Account: s.Account, Region: s.Region}
}
