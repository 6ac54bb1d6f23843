package interfaces

import (
	"context"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dc-tec/runner-fleet-provisioner/internal/environment"
	"github.com/dc-tec/runner-fleet-provisioner/internal/fleet"
	"github.com/dc-tec/runner-fleet-provisioner/internal/plan"
	"github.com/dc-tec/runner-fleet-provisioner/internal/policy"
	"github.com/dc-tec/runner-fleet-provisioner/internal/templates"
)

// recordingProvisioner captures applied plans for assertions.
type recordingProvisioner struct {
	applied []string
}

func (r *recordingProvisioner) Apply(_ context.Context, p *plan.Plan, up policy.UpdatePolicy) error {
	r.applied = append(r.applied, p.ResourceGroupName)
	// The back-end submits the scheduled action derived from the policy.
	_ = up.ShutdownAction(p.ResourceGroupName)
	return nil
}

var _ Provisioner = (*recordingProvisioner)(nil)

func TestProvisionerConsumesResolvedPlan(t *testing.T) {
	resolver := plan.NewResolver(templates.Embedded(), logr.Discard())

	desc := fleet.Descriptor{
		Name:             "linux-arm",
		Platform:         fleet.PlatformAmazonLinux,
		Arch:             fleet.ArchARM,
		Version:          "2023",
		Repo:             "foo",
		DesiredInstances: 2,
	}
	env := environment.Spec{Account: "123", Region: "us-east-1"}

	p, err := resolver.Resolve(desc, fleet.StageBeta, env)
	require.NoError(t, err)
	up := policy.Resolve(fleet.StageBeta, time.Now().UTC())

	backend := &recordingProvisioner{}
	require.NoError(t, backend.Apply(context.Background(), p, up))

	assert.Equal(t, []string{"foo-amazonlinux-2023armHostGroup"}, backend.applied)
}
