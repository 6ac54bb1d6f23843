package policy

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dc-tec/runner-fleet-provisioner/internal/fleet"
)

func TestResolveConservativeDefaults(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, stage := range []fleet.Stage{fleet.StageBeta, fleet.StageRelease, fleet.StagePipeline, fleet.StageProd} {
		t.Run(string(stage), func(t *testing.T) {
			p := Resolve(stage, now)

			assert.Equal(t, int32(1), p.MaxBatchSize)
			assert.Equal(t, int32(0), p.MinInstancesInService)
			assert.ElementsMatch(t, []ScalingProcess{
				ProcessHealthCheck,
				ProcessReplaceUnhealthy,
				ProcessAZRebalance,
				ProcessAlarmNotification,
				ProcessScheduledActions,
			}, p.SuspendedProcesses)
		})
	}
}

func TestResolveBetaSchedulesShutdown(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	p := Resolve(fleet.StageBeta, now)

	require.NotNil(t, p.ScheduledShutdown)
	assert.Equal(t, int32(0), p.ScheduledShutdown.TargetCapacity)
	assert.Equal(t, now.Add(24*time.Hour), p.ScheduledShutdown.StartTime)
	assert.True(t, p.ScheduledShutdown.StartTime.After(now))
}

func TestResolveShutdownTimeIsUTC(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	now := time.Date(2026, 3, 1, 7, 0, 0, 0, loc)

	p := Resolve(fleet.StageBeta, now)

	require.NotNil(t, p.ScheduledShutdown)
	assert.Equal(t, time.UTC, p.ScheduledShutdown.StartTime.Location())
	assert.Equal(t, now.UTC().Add(24*time.Hour), p.ScheduledShutdown.StartTime)
}

func TestResolveNonBetaStagesHaveNoShutdown(t *testing.T) {
	now := time.Now().UTC()

	for _, stage := range []fleet.Stage{fleet.StageRelease, fleet.StageProd, fleet.StagePipeline, fleet.Stage("canary")} {
		t.Run(string(stage), func(t *testing.T) {
			p := Resolve(stage, now)
			assert.Nil(t, p.ScheduledShutdown)
		})
	}
}

func TestShutdownAction(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := Resolve(fleet.StageBeta, now)

	action := p.ShutdownAction("myrepo-amazonlinux-2023armHostGroup")
	require.NotNil(t, action)
	assert.Equal(t, "myrepo-amazonlinux-2023armHostGroup", aws.ToString(action.AutoScalingGroupName))
	assert.Equal(t, "myrepo-amazonlinux-2023armHostGroup-scheduled-shutdown", aws.ToString(action.ScheduledActionName))
	assert.Equal(t, int32(0), aws.ToInt32(action.DesiredCapacity))
	require.NotNil(t, action.StartTime)
	assert.Equal(t, now.Add(24*time.Hour), *action.StartTime)
	assert.Nil(t, action.Recurrence)
}

func TestShutdownActionWithRecurrence(t *testing.T) {
	p := Resolve(fleet.StageBeta, time.Now())
	p.ScheduledShutdown.Recurrence = "0 20 * * 1-5"

	action := p.ShutdownAction("group")
	require.NotNil(t, action)
	assert.Equal(t, "0 20 * * 1-5", aws.ToString(action.Recurrence))
}

func TestShutdownActionNilWithoutShutdown(t *testing.T) {
	p := Resolve(fleet.StageRelease, time.Now())
	assert.Nil(t, p.ShutdownAction("group"))
}
