package interfaces

import (
	"context"

	"github.com/Agrysif/ghrelease/pkg/domain/model"
)

// Reporter receives human-readable progress of a publishing run
type Reporter interface {
	Banner(appName string)
	CreatingRelease(version string)
	ReleaseCreated(version string, releaseID int64)
	ReleaseFailed(version string, err error)
	Uploading(name string)
	Uploaded(name string)
	UploadFailed(name string, err error)
	FileNotFound(name string)
	VersionFailed(version string)
	EndVersion()
	Done()
}

// Notifier delivers a run summary to an external channel
type Notifier interface {
	Notify(ctx context.Context, project *model.Project, results []*model.ReleaseResult) error
}
