package plan

import (
	"fmt"

	"github.com/dc-tec/runner-fleet-provisioner/internal/constants"
	"github.com/dc-tec/runner-fleet-provisioner/internal/fleet"
)

// resourceGroupName derives the host group name for a fleet. The name must
// be globally unique per distinct (repo, platform, major version, arch)
// tuple; the provisioning back-end rejects duplicates.
func resourceGroupName(d fleet.Descriptor) string {
	return fmt.Sprintf("%s-%s-%s%s%s",
		d.Repo, d.Platform, d.MajorVersion(), d.Arch, constants.SuffixHostGroup)
}

// asgBaseName maps a platform family to its autoscaling group base name.
func asgBaseName(platform fleet.Platform) string {
	switch platform {
	case fleet.PlatformMac:
		return constants.ASGBaseNameMac
	case fleet.PlatformWindows:
		return constants.ASGBaseNameWindows
	default:
		return constants.ASGBaseNameLinux
	}
}
