package constants

// Autoscaling group base names, one per platform family. The provisioning
// back-end derives the final group name from the base name and the resource
// group.
const (
	ASGBaseNameMac     = "MacASG"
	ASGBaseNameWindows = "WindowsASG"
	ASGBaseNameLinux   = "LinuxASG"
)

// SuffixHostGroup terminates every resource group name. Resource group names
// must be globally unique per (repo, platform, major version, arch) tuple;
// duplicates are rejected by the provisioning back-end.
const SuffixHostGroup = "HostGroup"

// Well-known boot-script template names served by the template source.
const (
	TemplateMacSetup      = "setup-runner.sh"
	TemplateLinuxSetup    = "setup-linux-runner.sh"
	TemplateWindowsConfig = "windows-runner-user-data.yaml"
)
