// Package interfaces defines service interfaces for dependency injection.
// This package enables loose coupling between components and facilitates testing.
package interfaces

import (
	"context"

	"github.com/dc-tec/runner-fleet-provisioner/internal/plan"
	"github.com/dc-tec/runner-fleet-provisioner/internal/policy"
)

// Provisioner materializes resolved plans into real compute, networking,
// identity, and scaling resources. Implementations make the actual cloud
// calls; the resolvers never do.
type Provisioner interface {
	// Apply provisions one fleet from its resolved plan and update
	// policy. Apply consumes each plan exactly once; retrying a failed
	// Apply is the implementation's concern, never the resolvers'.
	Apply(ctx context.Context, p *plan.Plan, up policy.UpdatePolicy) error
}
