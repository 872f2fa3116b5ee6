package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Agrysif/ghrelease/pkg/domain/interfaces"
	"github.com/Agrysif/ghrelease/pkg/domain/types"
	githubinfra "github.com/Agrysif/ghrelease/pkg/infra/github"
)

// ErrTokenMissing is returned when no GitHub token is configured
var ErrTokenMissing = goerr.New("GITHUB_TOKEN environment variable not set")

// GitHub holds GitHub API configuration
type GitHub struct {
	Token     string `masq:"secret"`
	APIURL    string
	UploadURL string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token used to create releases",
			Destination: &c.Token,
			Sources:     cli.EnvVars("GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API endpoint (GitHub Enterprise)",
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("GHRELEASE_GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "github-upload-url",
			Usage:       "GitHub asset upload endpoint (GitHub Enterprise)",
			Destination: &c.UploadURL,
			Sources:     cli.EnvVars("GHRELEASE_GITHUB_UPLOAD_URL"),
		},
	}
}

// Validate checks that a token is present. No request may be issued without it.
func (c *GitHub) Validate() error {
	if c.Token == "" {
		return ErrTokenMissing
	}
	return nil
}

// NewClient builds the release client from the configuration
func (c *GitHub) NewClient() (interfaces.ReleaseClient, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var opts []githubinfra.Option
	if c.APIURL != "" {
		opts = append(opts, githubinfra.WithBaseURL(c.APIURL))
	}
	if c.UploadURL != "" {
		opts = append(opts, githubinfra.WithUploadURL(c.UploadURL))
	}

	return githubinfra.NewClient(types.GitHubToken(c.Token), opts...)
}
