package interfaces

import (
	"context"

	"github.com/Agrysif/ghrelease/pkg/domain/model"
)

// ReleaseClient defines release operations against the GitHub API
type ReleaseClient interface {
	// CreateRelease creates a release and returns its numeric ID
	CreateRelease(ctx context.Context, owner, repo string, release *model.Release) (int64, error)

	// UploadAsset attaches a file to an existing release
	UploadAsset(ctx context.Context, owner, repo string, releaseID int64, asset *model.Asset) error
}
