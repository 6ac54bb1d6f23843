package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDescriptor() Descriptor {
	return Descriptor{
		Name:             "linux-arm",
		Platform:         PlatformAmazonLinux,
		Arch:             ArchARM,
		Version:          "2023",
		Repo:             "my-service",
		DesiredInstances: 4,
	}
}

func TestDescriptorValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Descriptor)
		wantErr string
	}{
		{
			name:   "valid descriptor",
			mutate: func(d *Descriptor) {},
		},
		{
			name:   "zero desired instances is valid",
			mutate: func(d *Descriptor) { d.DesiredInstances = 0 },
		},
		{
			name:    "unknown platform",
			mutate:  func(d *Descriptor) { d.Platform = "solaris" },
			wantErr: "unknown platform",
		},
		{
			name:    "unknown arch",
			mutate:  func(d *Descriptor) { d.Arch = "riscv" },
			wantErr: "unknown arch",
		},
		{
			name:    "empty repo",
			mutate:  func(d *Descriptor) { d.Repo = "  " },
			wantErr: "repo must not be empty",
		},
		{
			name:    "empty version",
			mutate:  func(d *Descriptor) { d.Version = "" },
			wantErr: "version must not be empty",
		},
		{
			name:    "negative desired instances",
			mutate:  func(d *Descriptor) { d.DesiredInstances = -1 },
			wantErr: "must be >= 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDescriptor()
			tt.mutate(&d)

			err := d.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestMajorVersion(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{version: "14", want: "14"},
		{version: "14.2.1", want: "14"},
		{version: "2023", want: "2023"},
		{version: "2023.3.20240101", want: "2023"},
		{version: "2", want: "2"},
		{version: "2022-core", want: "2022"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			d := validDescriptor()
			d.Version = tt.version
			assert.Equal(t, tt.want, d.MajorVersion())
		})
	}
}

func TestArchImageArch(t *testing.T) {
	assert.Equal(t, "arm64", ArchARM.ImageArch())
	assert.Equal(t, "x86_64", ArchX86.ImageArch())
}
