// Package fleet defines runner fleet descriptors: which platform, CPU
// architecture, OS version, and repository a pool of ephemeral build runners
// serves, and how many instances it should hold at rest.
package fleet

import (
	"fmt"
	"strings"
)

// Platform identifies the operating system family of a runner fleet.
type Platform string

const (
	// PlatformMac runs macOS runners on dedicated metal hosts.
	PlatformMac Platform = "mac"
	// PlatformWindows runs Windows Server runners.
	PlatformWindows Platform = "windows"
	// PlatformAmazonLinux runs Amazon Linux runners (AL2 or AL2023,
	// selected by the descriptor version).
	PlatformAmazonLinux Platform = "amazonlinux"
	// PlatformLinuxOther runs any other Linux distribution from a fixed
	// community image table.
	PlatformLinuxOther Platform = "linux"
)

// Arch identifies the CPU architecture of a runner fleet.
type Arch string

const (
	ArchX86 Arch = "x86"
	ArchARM Arch = "arm"
)

// ImageArch returns the architecture label used in machine image names and
// SSM parameter paths.
func (a Arch) ImageArch() string {
	if a == ArchARM {
		return "arm64"
	}
	return "x86_64"
}

// Stage is a named point in the environment promotion pipeline. Stages other
// than the named ones are valid; they behave like Release for labeling and
// never get a scheduled shutdown.
type Stage string

const (
	StagePipeline Stage = "pipeline"
	StageBeta     Stage = "beta"
	StageProd     Stage = "prod"
	StageRelease  Stage = "release"
)

// Descriptor describes one distinct runner pool. Descriptors are supplied by
// the fleet catalog; one descriptor per pool.
type Descriptor struct {
	// Name is the catalog label for the fleet, used for logging and output
	// keying only.
	Name string

	// Platform is the operating system family.
	Platform Platform

	// Arch is the CPU architecture.
	Arch Arch

	// Version is the OS version string, e.g. "14" for macOS or "2023" for
	// Amazon Linux.
	Version string

	// Repo is the repository the runners serve.
	Repo string

	// DesiredInstances is the fleet size at rest. Zero is valid: a fleet
	// may be fully scaled down.
	DesiredInstances int

	// ShutdownRecurrence is an optional cron expression for recurring
	// scheduled shutdowns, validated at catalog load time.
	ShutdownRecurrence string
}

var knownPlatforms = map[Platform]struct{}{
	PlatformMac:         {},
	PlatformWindows:     {},
	PlatformAmazonLinux: {},
	PlatformLinuxOther:  {},
}

// Validate checks descriptor invariants. It does not consult the dispatch
// table; a descriptor that validates here can still be rejected by plan
// resolution if its platform/arch pairing has no dispatch entry.
func (d Descriptor) Validate() error {
	if _, ok := knownPlatforms[d.Platform]; !ok {
		return fmt.Errorf("unknown platform %q", d.Platform)
	}
	if d.Arch != ArchX86 && d.Arch != ArchARM {
		return fmt.Errorf("unknown arch %q", d.Arch)
	}
	if strings.TrimSpace(d.Repo) == "" {
		return fmt.Errorf("repo must not be empty")
	}
	if strings.TrimSpace(d.Version) == "" {
		return fmt.Errorf("version must not be empty")
	}
	if d.DesiredInstances < 0 {
		return fmt.Errorf("desiredInstances must be >= 0, got %d", d.DesiredInstances)
	}
	return nil
}

// MajorVersion returns the digits of the version string before the first
// dot, e.g. "14" from "14.2.1" and "2023" from "2023". Non-digit characters
// in the major segment are dropped.
func (d Descriptor) MajorVersion() string {
	major, _, _ := strings.Cut(d.Version, ".")
	var b strings.Builder
	for _, r := range major {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
