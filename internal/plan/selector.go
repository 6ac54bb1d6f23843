package plan

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// SelectorKind discriminates the image selector union.
type SelectorKind string

const (
	// SelectorNamePattern locates an image by name pattern plus filters.
	// Used for custom/lookup images (macOS).
	SelectorNamePattern SelectorKind = "NamePattern"
	// SelectorKnownID locates an image by a well-known platform default
	// (an SSM public parameter path).
	SelectorKnownID SelectorKind = "KnownID"
	// SelectorRegionMap locates an image through a static region -> image
	// id table.
	SelectorRegionMap SelectorKind = "RegionMap"
)

// ImageSelector is a tagged description of how the provisioning back-end
// locates a boot image. Exactly one variant field is populated, matching
// Kind.
type ImageSelector struct {
	Kind SelectorKind `json:"kind"`

	NamePattern *NamePatternSelector `json:"namePattern,omitempty"`
	KnownID     *KnownIDSelector     `json:"knownId,omitempty"`
	RegionMap   map[string]string    `json:"regionMap,omitempty"`
}

// NamePatternSelector matches images by name glob plus EC2 describe-images
// filters.
type NamePatternSelector struct {
	Pattern string            `json:"pattern"`
	Filters []ec2types.Filter `json:"filters"`
}

// KnownIDSelector names a platform default image by SSM parameter path.
type KnownIDSelector struct {
	PlatformDefault string `json:"platformDefault"`
}

// NamePatternImage builds a name-pattern selector.
func NamePatternImage(pattern string, filters []ec2types.Filter) ImageSelector {
	return ImageSelector{
		Kind:        SelectorNamePattern,
		NamePattern: &NamePatternSelector{Pattern: pattern, Filters: filters},
	}
}

// KnownIDImage builds a known-id selector for a platform default.
func KnownIDImage(platformDefault string) ImageSelector {
	return ImageSelector{
		Kind:    SelectorKnownID,
		KnownID: &KnownIDSelector{PlatformDefault: platformDefault},
	}
}

// RegionMapImage builds a static region map selector.
func RegionMapImage(images map[string]string) ImageSelector {
	return ImageSelector{
		Kind:      SelectorRegionMap,
		RegionMap: images,
	}
}

// macImageFilters builds the describe-images filters for Amazon-published
// macOS images of the given image architecture ("arm64_mac" or
// "x86_64_mac").
func macImageFilters(imageArch string) []ec2types.Filter {
	return []ec2types.Filter{
		{Name: aws.String("virtualization-type"), Values: []string{"hvm"}},
		{Name: aws.String("root-device-type"), Values: []string{"ebs"}},
		{Name: aws.String("architecture"), Values: []string{imageArch}},
		{Name: aws.String("owner-alias"), Values: []string{"amazon"}},
	}
}
