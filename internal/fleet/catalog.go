package fleet

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// The fleet catalog is an HCL file of runner blocks:
//
//	runner "linux-large" {
//	  platform          = "amazonlinux"
//	  arch              = "arm"
//	  version           = "2023"
//	  repo              = "my-service"
//	  desired_instances = 4
//	}

type hclCatalog struct {
	Runners []hclRunner `hcl:"runner,block"`
}

type hclRunner struct {
	Name string `hcl:"name,label"`

	Platform         string `hcl:"platform"`
	Arch             string `hcl:"arch"`
	Version          string `hcl:"version"`
	Repo             string `hcl:"repo"`
	DesiredInstances int    `hcl:"desired_instances"`

	ShutdownRecurrence *string `hcl:"shutdown_recurrence,optional"`
}

// LoadCatalog parses and validates an HCL fleet catalog file into
// descriptors. Catalog labels must be unique; every descriptor must
// validate.
func LoadCatalog(path string) ([]Descriptor, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse fleet catalog %s: %s", path, diags.Error())
	}

	var catalog hclCatalog
	diags = gohcl.DecodeBody(file.Body, nil, &catalog)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode fleet catalog %s: %s", path, diags.Error())
	}

	seen := make(map[string]struct{}, len(catalog.Runners))
	descriptors := make([]Descriptor, 0, len(catalog.Runners))
	for _, r := range catalog.Runners {
		if _, dup := seen[r.Name]; dup {
			return nil, fmt.Errorf("duplicate runner block %q in %s", r.Name, path)
		}
		seen[r.Name] = struct{}{}

		d := Descriptor{
			Name:             r.Name,
			Platform:         Platform(r.Platform),
			Arch:             Arch(r.Arch),
			Version:          r.Version,
			Repo:             r.Repo,
			DesiredInstances: r.DesiredInstances,
		}
		if r.ShutdownRecurrence != nil {
			d.ShutdownRecurrence = *r.ShutdownRecurrence
		}

		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("invalid runner block %q: %w", r.Name, err)
		}
		descriptors = append(descriptors, d)
	}

	return descriptors, nil
}
