// Package metrics exposes Prometheus counters for fleet plan resolution.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// resolutionsCounter tracks successful plan resolutions per platform
	// and stage.
	resolutionsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "runner_fleet",
			Subsystem: "planner",
			Name:      "resolutions_total",
			Help:      "Total number of successful provisioning plan resolutions",
		},
		[]string{"platform", "stage"},
	)

	// resolutionFailuresCounter tracks failed plan resolutions by failure
	// reason.
	resolutionFailuresCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "runner_fleet",
			Subsystem: "planner",
			Name:      "resolution_failures_total",
			Help:      "Total number of failed provisioning plan resolutions",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(
		resolutionsCounter,
		resolutionFailuresCounter,
	)
}

// Failure reasons recorded on the failure counter.
const (
	ReasonInvalidRunnerConfig = "invalid_runner_config"
	ReasonUnsupportedPlatform = "unsupported_platform"
	ReasonMissingEnvironment  = "missing_environment"
	ReasonTemplateLookup      = "template_lookup"
)

// RecordResolution records one successful plan resolution.
func RecordResolution(platform, stage string) {
	resolutionsCounter.WithLabelValues(platform, stage).Inc()
}

// RecordResolutionFailure records one failed plan resolution.
func RecordResolutionFailure(reason string) {
	resolutionFailuresCounter.WithLabelValues(reason).Inc()
}
