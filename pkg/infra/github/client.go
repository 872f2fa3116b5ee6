package github

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Agrysif/ghrelease/pkg/domain/interfaces"
	"github.com/Agrysif/ghrelease/pkg/domain/model"
	"github.com/Agrysif/ghrelease/pkg/domain/types"
)

const assetMediaType = "application/octet-stream"

type config struct {
	httpClient *http.Client
	baseURL    string
	uploadURL  string
}

// Option is a functional option for the GitHub client
type Option func(*config)

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = c
	}
}

// WithBaseURL sets the REST API endpoint, e.g. for GitHub Enterprise
func WithBaseURL(u string) Option {
	return func(cfg *config) {
		cfg.baseURL = u
	}
}

// WithUploadURL sets the asset upload endpoint
func WithUploadURL(u string) Option {
	return func(cfg *config) {
		cfg.uploadURL = u
	}
}

type client struct {
	githubClient *github.Client
}

// NewClient creates a new GitHub client authenticated with a bearer token
func NewClient(token types.GitHubToken, opts ...Option) (interfaces.ReleaseClient, error) {
	if token.IsEmpty() {
		return nil, goerr.New("GitHub token is required")
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	githubClient := github.NewClient(cfg.httpClient).WithAuthToken(string(token))

	if cfg.baseURL != "" {
		u, err := parseEndpoint(cfg.baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub API URL", goerr.V("url", cfg.baseURL))
		}
		githubClient.BaseURL = u
	}
	if cfg.uploadURL != "" {
		u, err := parseEndpoint(cfg.uploadURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub upload URL", goerr.V("url", cfg.uploadURL))
		}
		githubClient.UploadURL = u
	}

	return &client{
		githubClient: githubClient,
	}, nil
}

// parseEndpoint parses an endpoint URL and ensures the trailing slash go-github requires
func parseEndpoint(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse endpoint", goerr.V("url", raw))
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, goerr.New("endpoint must be an absolute URL", goerr.V("url", raw))
	}
	return u, nil
}

// CreateRelease creates a release and returns its ID
func (c *client) CreateRelease(ctx context.Context, owner, repo string, release *model.Release) (int64, error) {
	logger := ctxlog.From(ctx)

	req := &github.RepositoryRelease{
		TagName:         github.Ptr(release.TagName),
		TargetCommitish: github.Ptr(release.TargetCommitish),
		Name:            github.Ptr(release.Name),
		Body:            github.Ptr(release.Body),
		Draft:           github.Ptr(release.Draft),
		Prerelease:      github.Ptr(release.Prerelease),
	}

	logger.Debug("Creating GitHub release",
		"owner", owner,
		"repo", repo,
		"tag", release.TagName,
	)

	created, _, err := c.githubClient.Repositories.CreateRelease(ctx, owner, repo, req)
	if err != nil {
		return 0, wrapAPIError(err, "failed to create release",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("tag", release.TagName),
		)
	}

	if created.ID == nil {
		return 0, goerr.New("release response has no id",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("tag", release.TagName),
		)
	}

	return created.GetID(), nil
}

// UploadAsset uploads the in-memory content of an asset to a release
func (c *client) UploadAsset(ctx context.Context, owner, repo string, releaseID int64, asset *model.Asset) error {
	logger := ctxlog.From(ctx)

	query := url.Values{"name": []string{asset.Name}}
	u := fmt.Sprintf("repos/%s/%s/releases/%d/assets?%s", owner, repo, releaseID, query.Encode())

	req, err := c.githubClient.NewUploadRequest(u, bytes.NewReader(asset.Content), asset.Size(), assetMediaType)
	if err != nil {
		return goerr.Wrap(err, "failed to build upload request", goerr.V("name", asset.Name))
	}

	uploaded := new(github.ReleaseAsset)
	if _, err := c.githubClient.Do(ctx, req, uploaded); err != nil {
		return wrapAPIError(err, "failed to upload asset",
			goerr.V("release_id", releaseID),
			goerr.V("name", asset.Name),
		)
	}

	logger.Debug("Uploaded release asset",
		"release_id", releaseID,
		"name", asset.Name,
		"asset_id", uploaded.GetID(),
		"size_bytes", asset.Size(),
	)

	return nil
}

// wrapAPIError attaches the HTTP status and GitHub error detail when available
func wrapAPIError(err error, msg string, opts ...goerr.Option) error {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		if ghErr.Response != nil {
			opts = append(opts, goerr.V("status", ghErr.Response.StatusCode))
		}
		opts = append(opts, goerr.V("message", ghErr.Message))
		for i, e := range ghErr.Errors {
			opts = append(opts, goerr.V(fmt.Sprintf("detail_%d", i), e.Error()))
		}
	}
	return goerr.Wrap(err, msg, opts...)
}
