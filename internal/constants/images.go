package constants

import "fmt"

// Machine image defaults. Known-id selectors carry SSM public parameter paths
// so the provisioning back-end always boots the latest published image for
// the platform; name-pattern selectors (macOS) and the static region map
// (community Linux images) are resolved by the back-end at materialization.

// ImageWindowsServer2022 is the SSM parameter for the latest Windows Server
// 2022 English full base image.
const ImageWindowsServer2022 = "/aws/service/ami-windows-latest/Windows_Server-2022-English-Full-Base"

const (
	imageAmazonLinux2Format    = "/aws/service/ami-amazon-linux-latest/amzn2-ami-kernel-5.10-hvm-%s-gp2"
	imageAmazonLinux2023Format = "/aws/service/ami-amazon-linux-latest/al2023-ami-kernel-default-%s"

	macImageNamePatternFormat = "amzn-ec2-macos-%s*"
)

// ImageAmazonLinux2 returns the SSM parameter for the latest Amazon Linux 2
// image for the given image architecture ("x86_64" or "arm64").
func ImageAmazonLinux2(imageArch string) string {
	return fmt.Sprintf(imageAmazonLinux2Format, imageArch)
}

// ImageAmazonLinux2023 returns the SSM parameter for the latest Amazon Linux
// 2023 image for the given image architecture.
func ImageAmazonLinux2023(imageArch string) string {
	return fmt.Sprintf(imageAmazonLinux2023Format, imageArch)
}

// MacImageNamePattern returns the AMI name pattern matching Amazon-published
// macOS images for the given OS version, e.g. "amzn-ec2-macos-14*".
func MacImageNamePattern(version string) string {
	return fmt.Sprintf(macImageNamePatternFormat, version)
}

// CommunityLinuxImagesByRegion maps regions to fixed community Linux image
// ids for the generic Linux fallback. Only the two regions the promotion
// pipeline deploys to are populated; resolving a generic Linux fleet in any
// other region is a back-end lookup failure, not a resolver concern.
var CommunityLinuxImagesByRegion = map[string]string{
	"us-east-1": "ami-0e2c8caa4b6378d8c",
	"eu-west-1": "ami-0c1c30571d2dae5c9",
}
