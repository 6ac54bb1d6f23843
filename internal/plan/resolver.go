// Package plan resolves runner fleet descriptors into concrete,
// platform-specific provisioning plans: instance shape, machine image
// selector, boot user-data, root volume, and resource naming. Resolution is
// a pure function of the descriptor, stage, and environment spec plus
// injected read-only template data; materializing the plan is the
// provisioning back-end's job.
package plan

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/dc-tec/runner-fleet-provisioner/internal/constants"
	"github.com/dc-tec/runner-fleet-provisioner/internal/environment"
	"github.com/dc-tec/runner-fleet-provisioner/internal/errors"
	"github.com/dc-tec/runner-fleet-provisioner/internal/fleet"
)

// TemplateSource supplies named boot-script template bodies. The resolver
// never opens files itself; template access is an injected dependency.
type TemplateSource interface {
	// Lookup returns the raw text of the named template, or an error if
	// no template with that name exists.
	Lookup(name string) (string, error)
}

// Plan is the resolved set of provisioning parameters for one runner fleet.
// Created once per descriptor resolution, immutable, consumed exactly once
// by the provisioning back-end.
type Plan struct {
	InstanceShape     string        `json:"instanceShape"`
	Image             ImageSelector `json:"image"`
	UserData          string        `json:"userData"`
	RootVolumeGiB     int32         `json:"rootVolumeGiB"`
	ResourceGroupName string        `json:"resourceGroupName"`
	ASGBaseName       string        `json:"asgBaseName"`
}

// Resolver turns runner type descriptors into provisioning plans.
type Resolver struct {
	templates TemplateSource
	log       logr.Logger
}

// NewResolver creates a plan resolver backed by the given template source.
func NewResolver(templates TemplateSource, log logr.Logger) *Resolver {
	return &Resolver{
		templates: templates,
		log:       log.WithName("plan-resolver"),
	}
}

// Resolve dispatches on (platform, arch) to produce a provisioning plan.
//
// The dispatch is an explicit match with one handler per platform variant
// and no fallthrough: an unrecognized platform or arch fails with
// ErrUnsupportedPlatform instead of silently inheriting the generic Linux
// defaults, which would provision the wrong compute shape.
func (r *Resolver) Resolve(desc fleet.Descriptor, stage fleet.Stage, env environment.Spec) (*Plan, error) {
	if !env.IsComplete() {
		return nil, errors.WrapInvalidRunnerConfig(
			fmt.Errorf("environment spec for stage %q is missing account or region", stage))
	}

	var (
		p   *Plan
		err error
	)
	switch desc.Platform {
	case fleet.PlatformMac:
		p, err = r.resolveMac(desc, stage, env)
	case fleet.PlatformWindows:
		p, err = r.resolveWindows(desc, stage, env)
	case fleet.PlatformAmazonLinux:
		p, err = r.resolveAmazonLinux(desc, stage, env)
	case fleet.PlatformLinuxOther:
		p, err = r.resolveLinuxOther(desc, stage, env)
	default:
		return nil, errors.WrapUnsupportedPlatform(
			fmt.Errorf("no dispatch entry for platform %q", desc.Platform))
	}
	if err != nil {
		return nil, err
	}

	r.log.V(1).Info("resolved provisioning plan",
		"fleet", desc.Name,
		"platform", string(desc.Platform),
		"arch", string(desc.Arch),
		"shape", p.InstanceShape,
		"resource_group", p.ResourceGroupName,
	)
	return p, nil
}

func (r *Resolver) resolveMac(desc fleet.Descriptor, stage fleet.Stage, env environment.Spec) (*Plan, error) {
	var shape, imageArch string
	switch desc.Arch {
	case fleet.ArchARM:
		shape = constants.ShapeMacARM
		imageArch = "arm64_mac"
	case fleet.ArchX86:
		shape = constants.ShapeMacX86
		imageArch = "x86_64_mac"
	default:
		return nil, errors.WrapUnsupportedPlatform(
			fmt.Errorf("no mac dispatch entry for arch %q", desc.Arch))
	}

	userData, err := r.renderShell(constants.TemplateMacSetup, desc, stage, env)
	if err != nil {
		return nil, err
	}

	return &Plan{
		InstanceShape:     shape,
		Image:             NamePatternImage(constants.MacImageNamePattern(desc.Version), macImageFilters(imageArch)),
		UserData:          userData,
		RootVolumeGiB:     constants.RootVolumeGiB,
		ResourceGroupName: resourceGroupName(desc),
		ASGBaseName:       asgBaseName(desc.Platform),
	}, nil
}

func (r *Resolver) resolveWindows(desc fleet.Descriptor, stage fleet.Stage, env environment.Spec) (*Plan, error) {
	body, err := r.lookupTemplate(constants.TemplateWindowsConfig)
	if err != nil {
		return nil, err
	}

	return &Plan{
		InstanceShape:     constants.ShapeWindows,
		Image:             KnownIDImage(constants.ImageWindowsServer2022),
		UserData:          placeholderUserData(stage, desc.Repo, env.Region, body),
		RootVolumeGiB:     constants.RootVolumeGiB,
		ResourceGroupName: resourceGroupName(desc),
		ASGBaseName:       asgBaseName(desc.Platform),
	}, nil
}

func (r *Resolver) resolveAmazonLinux(desc fleet.Descriptor, stage fleet.Stage, env environment.Spec) (*Plan, error) {
	shape, err := linuxShape(desc.Arch)
	if err != nil {
		return nil, err
	}

	// Version "2" pins Amazon Linux 2; anything else tracks Amazon Linux
	// 2023.
	imageParam := constants.ImageAmazonLinux2023(desc.Arch.ImageArch())
	if desc.Version == "2" {
		imageParam = constants.ImageAmazonLinux2(desc.Arch.ImageArch())
	}

	userData, err := r.renderShell(constants.TemplateLinuxSetup, desc, stage, env)
	if err != nil {
		return nil, err
	}

	return &Plan{
		InstanceShape:     shape,
		Image:             KnownIDImage(imageParam),
		UserData:          userData,
		RootVolumeGiB:     constants.RootVolumeGiB,
		ResourceGroupName: resourceGroupName(desc),
		ASGBaseName:       asgBaseName(desc.Platform),
	}, nil
}

func (r *Resolver) resolveLinuxOther(desc fleet.Descriptor, stage fleet.Stage, env environment.Spec) (*Plan, error) {
	shape, err := linuxShape(desc.Arch)
	if err != nil {
		return nil, err
	}

	userData, err := r.renderShell(constants.TemplateLinuxSetup, desc, stage, env)
	if err != nil {
		return nil, err
	}

	return &Plan{
		InstanceShape:     shape,
		Image:             RegionMapImage(constants.CommunityLinuxImagesByRegion),
		UserData:          userData,
		RootVolumeGiB:     constants.RootVolumeGiB,
		ResourceGroupName: resourceGroupName(desc),
		ASGBaseName:       asgBaseName(desc.Platform),
	}, nil
}

func linuxShape(arch fleet.Arch) (string, error) {
	switch arch {
	case fleet.ArchARM:
		return constants.ShapeLinuxARM, nil
	case fleet.ArchX86:
		return constants.ShapeLinuxX86, nil
	default:
		return "", errors.WrapUnsupportedPlatform(
			fmt.Errorf("no linux dispatch entry for arch %q", arch))
	}
}

func (r *Resolver) renderShell(templateName string, desc fleet.Descriptor, stage fleet.Stage, env environment.Spec) (string, error) {
	body, err := r.lookupTemplate(templateName)
	if err != nil {
		return "", err
	}
	return shellUserData(stage, desc.Repo, env.Region, body), nil
}

func (r *Resolver) lookupTemplate(name string) (string, error) {
	body, err := r.templates.Lookup(name)
	if err != nil {
		return "", fmt.Errorf("failed to load boot template %s: %w", name, err)
	}
	return body, nil
}
