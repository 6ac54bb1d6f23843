package logging

import "github.com/go-logr/logr"

// LogAuditEvent logs a structured audit event for fleet resolution actions.
// Audit events are distinct from regular debug/info logs and are tagged
// with "audit=true" for easy filtering in log aggregation systems.
func LogAuditEvent(logger logr.Logger, eventType string, fields map[string]string) {
	auditLogger := logger.WithValues("audit", "true", "event_type", eventType)
	for key, value := range fields {
		auditLogger = auditLogger.WithValues(key, value)
	}
	auditLogger.Info("Fleet resolution audit event")
}

// Well-known audit event types emitted by the planner.
const (
	EventEnvironmentResolved = "environment_resolved"
	EventPlanResolved        = "plan_resolved"
	EventPlanFailed          = "plan_resolution_failed"
)
