// Package policy derives the rolling-update safety policy and optional
// scheduled-shutdown action for a runner fleet from its pipeline stage.
package policy

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	autoscalingtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"

	"github.com/dc-tec/runner-fleet-provisioner/internal/constants"
	"github.com/dc-tec/runner-fleet-provisioner/internal/fleet"
)

// ScalingProcess names an autoscaling process that may be suspended on a
// runner fleet's group.
type ScalingProcess string

const (
	ProcessHealthCheck       ScalingProcess = "HealthCheck"
	ProcessReplaceUnhealthy  ScalingProcess = "ReplaceUnhealthy"
	ProcessAZRebalance       ScalingProcess = "AZRebalance"
	ProcessAlarmNotification ScalingProcess = "AlarmNotification"
	ProcessScheduledActions  ScalingProcess = "ScheduledActions"
)

// ScheduledShutdown is a one-shot scheduled capacity drop to zero, with an
// optional recurrence for fleets that should also shut down on a schedule.
type ScheduledShutdown struct {
	// StartTime is when the action fires, in UTC.
	StartTime time.Time `json:"startTime"`
	// TargetCapacity is the desired capacity the action sets. Always zero
	// for shutdown actions.
	TargetCapacity int32 `json:"targetCapacity"`
	// Recurrence is an optional cron expression for recurring shutdowns.
	Recurrence string `json:"recurrence,omitempty"`
}

// UpdatePolicy bounds how aggressively a fleet's capacity may change during
// a rolling replacement, and which autoscaling processes stay suspended.
type UpdatePolicy struct {
	MaxBatchSize          int32              `json:"maxBatchSize"`
	MinInstancesInService int32              `json:"minInstancesInService"`
	SuspendedProcesses    []ScalingProcess   `json:"suspendedProcesses"`
	ScheduledShutdown     *ScheduledShutdown `json:"scheduledShutdown,omitempty"`
}

// Resolve derives the update policy for a stage at the given resolution
// time.
//
// The rolling-update bounds are always conservative: batch size one, zero
// minimum in service. Build runners are stateless and ephemeral, so the
// fleet may scale fully down before replacement. Reactive autoscaling
// processes stay suspended because desired/min/max are fixed and externally
// managed.
//
// Beta fleets additionally get a one-shot scheduled capacity drop to zero,
// 24 hours after resolution. Forgotten beta fleets self-terminate instead of
// accruing cost. No other stage gets a scheduled action.
func Resolve(stage fleet.Stage, now time.Time) UpdatePolicy {
	p := UpdatePolicy{
		MaxBatchSize:          1,
		MinInstancesInService: 0,
		SuspendedProcesses: []ScalingProcess{
			ProcessHealthCheck,
			ProcessReplaceUnhealthy,
			ProcessAZRebalance,
			ProcessAlarmNotification,
			ProcessScheduledActions,
		},
	}

	if stage == fleet.StageBeta {
		p.ScheduledShutdown = &ScheduledShutdown{
			StartTime:      now.UTC().Add(constants.BetaShutdownDelay),
			TargetCapacity: 0,
		}
	}

	return p
}

// ShutdownAction converts the scheduled shutdown into the autoscaling
// scheduled-action shape the provisioning back-end submits. Returns nil when
// the policy has no scheduled shutdown.
func (p UpdatePolicy) ShutdownAction(groupName string) *autoscalingtypes.ScheduledUpdateGroupAction {
	if p.ScheduledShutdown == nil {
		return nil
	}

	action := &autoscalingtypes.ScheduledUpdateGroupAction{
		AutoScalingGroupName: aws.String(groupName),
		ScheduledActionName:  aws.String(groupName + "-scheduled-shutdown"),
		StartTime:            aws.Time(p.ScheduledShutdown.StartTime),
		DesiredCapacity:      aws.Int32(p.ScheduledShutdown.TargetCapacity),
	}
	if p.ScheduledShutdown.Recurrence != "" {
		action.Recurrence = aws.String(p.ScheduledShutdown.Recurrence)
	}
	return action
}
