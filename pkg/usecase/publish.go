package usecase

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Agrysif/ghrelease/pkg/domain/interfaces"
	"github.com/Agrysif/ghrelease/pkg/domain/model"
	"github.com/Agrysif/ghrelease/pkg/utils/errutil"
)

// Publisher creates releases and attaches their artifacts, one version at a time
type Publisher struct {
	client   interfaces.ReleaseClient
	reporter interfaces.Reporter
	project  *model.Project
}

var _ interfaces.PublishUseCase = (*Publisher)(nil)

// NewPublisher creates a new Publisher
func NewPublisher(client interfaces.ReleaseClient, reporter interfaces.Reporter, project *model.Project) *Publisher {
	return &Publisher{
		client:   client,
		reporter: reporter,
		project:  project,
	}
}

// Publish creates a release for each version in order. A failed version is
// reported and skipped; the next version is always attempted.
func (uc *Publisher) Publish(ctx context.Context, versions []string) []*model.ReleaseResult {
	logger := ctxlog.From(ctx)

	results := make([]*model.ReleaseResult, 0, len(versions))
	for _, version := range versions {
		result := uc.CreateRelease(ctx, version)
		if result.Failed() {
			uc.reporter.VersionFailed(version)
		}
		uc.reporter.EndVersion()
		results = append(results, result)
	}

	summary := model.Summarize(results)
	logger.Info("Publishing finished",
		"versions", len(versions),
		"created", summary.Created,
		"failed", summary.Failed,
		"assets_uploaded", summary.AssetsUploaded,
		"assets_missing", summary.AssetsMissing,
		"assets_failed", summary.AssetsFailed,
	)

	return results
}

// CreateRelease creates the release for a version and, once it exists,
// uploads its assets. Assets are never uploaded for a release that failed.
func (uc *Publisher) CreateRelease(ctx context.Context, version string) *model.ReleaseResult {
	logger := ctxlog.From(ctx)
	result := &model.ReleaseResult{Version: version}

	uc.reporter.CreatingRelease(version)

	release, err := uc.project.NewRelease(version)
	if err != nil {
		result.Err = err
		uc.reporter.ReleaseFailed(version, err)
		logger.Info("Failed to build release", "error", err, "version", version)
		errutil.Capture(ctx, err, map[string]string{"version": version})
		return result
	}

	releaseID, err := uc.client.CreateRelease(ctx, uc.project.Owner, uc.project.Repo, release)
	if err != nil {
		result.Err = err
		uc.reporter.ReleaseFailed(version, err)
		logger.Info("Failed to create release",
			"error", err,
			"owner", uc.project.Owner,
			"repo", uc.project.Repo,
			"tag", release.TagName,
		)
		errutil.Capture(ctx, err, map[string]string{
			"version": version,
			"repo":    uc.project.Owner + "/" + uc.project.Repo,
		})
		return result
	}

	result.Created = true
	result.ReleaseID = releaseID
	uc.reporter.ReleaseCreated(version, releaseID)
	logger.Info("Release created",
		"owner", uc.project.Owner,
		"repo", uc.project.Repo,
		"tag", release.TagName,
		"release_id", releaseID,
	)

	result.Assets = uc.UploadAssets(ctx, version, releaseID)
	return result
}

// UploadAssets uploads every artifact of a version to an existing release.
// Each file is handled independently: a missing or failing file does not
// stop the remaining uploads.
func (uc *Publisher) UploadAssets(ctx context.Context, version string, releaseID int64) []*model.AssetResult {
	logger := ctxlog.From(ctx)

	names, err := uc.project.AssetNames(version)
	if err != nil {
		logger.Error("Failed to resolve asset names", "error", err, "version", version)
		errutil.Capture(ctx, err, map[string]string{"version": version})
		return nil
	}

	results := make([]*model.AssetResult, 0, len(names))
	for _, name := range names {
		results = append(results, uc.uploadAsset(ctx, releaseID, name))
	}
	return results
}

func (uc *Publisher) uploadAsset(ctx context.Context, releaseID int64, name string) *model.AssetResult {
	logger := ctxlog.From(ctx)
	path := filepath.Join(uc.project.DistDir, name)

	asset, err := loadAsset(name, path)
	if errors.Is(err, fs.ErrNotExist) {
		uc.reporter.FileNotFound(name)
		logger.Info("Asset file not found", "name", name, "path", path)
		return &model.AssetResult{Name: name, Status: model.AssetMissing, Err: err}
	}

	uc.reporter.Uploading(name)
	if err == nil {
		err = uc.client.UploadAsset(ctx, uc.project.Owner, uc.project.Repo, releaseID, asset)
	}
	if err != nil {
		uc.reporter.UploadFailed(name, err)
		logger.Info("Failed to upload asset",
			"error", err,
			"release_id", releaseID,
			"name", name,
		)
		errutil.Capture(ctx, err, map[string]string{
			"asset":      name,
			"release_id": strconv.FormatInt(releaseID, 10),
		})
		return &model.AssetResult{Name: name, Status: model.AssetFailed, Err: err}
	}

	uc.reporter.Uploaded(name)
	logger.Info("Asset uploaded",
		"release_id", releaseID,
		"name", name,
		"size_bytes", asset.Size(),
	)
	return &model.AssetResult{Name: name, Status: model.AssetUploaded}
}

// loadAsset reads the whole file into memory
func loadAsset(name, path string) (*model.Asset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to stat asset file", goerr.V("path", path))
	}
	if info.IsDir() {
		return nil, goerr.New("asset path is a directory", goerr.V("path", path))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read asset file", goerr.V("path", path))
	}

	return &model.Asset{
		Name:    name,
		Path:    path,
		Content: content,
	}, nil
}
