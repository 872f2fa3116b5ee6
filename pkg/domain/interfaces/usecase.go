package interfaces

import (
	"context"

	"github.com/Agrysif/ghrelease/pkg/domain/model"
)

// PublishUseCase defines release publishing for a list of versions
type PublishUseCase interface {
	// Publish creates a release with assets for each version, in order.
	// Per-version failures are recorded in the results, never returned.
	Publish(ctx context.Context, versions []string) []*model.ReleaseResult
}
