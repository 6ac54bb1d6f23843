package constants

// Instance shapes requested per platform/arch. Mac runners require dedicated
// metal hosts; Windows runners use metal for nested virtualization support;
// Linux runners run on current-generation large instances.
const (
	ShapeMacARM   = "mac2.metal"
	ShapeMacX86   = "mac1.metal"
	ShapeWindows  = "m5zn.metal"
	ShapeLinuxARM = "c7g.large"
	ShapeLinuxX86 = "c7a.large"
)

// RootVolumeGiB is the root EBS volume size for every runner platform.
// Builds need local scratch space; 100 GiB covers checkout plus toolchains.
const RootVolumeGiB int32 = 100
