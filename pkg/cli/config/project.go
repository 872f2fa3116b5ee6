package config

import (
	"bytes"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/Agrysif/ghrelease/pkg/domain/model"
)

// Project holds release target configuration
type Project struct {
	ConfigFile string
	Owner      string
	Repo       string
	AppName    string
	DistDir    string
	Branch     string
	Versions   []string
}

// Flags returns CLI flags for project configuration
func (c *Project) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Project file in TOML format",
			Destination: &c.ConfigFile,
			Sources:     cli.EnvVars("GHRELEASE_CONFIG"),
		},
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Repository owner",
			Value:       model.DefaultOwner,
			Destination: &c.Owner,
			Sources:     cli.EnvVars("GHRELEASE_OWNER"),
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Repository name",
			Value:       model.DefaultRepo,
			Destination: &c.Repo,
			Sources:     cli.EnvVars("GHRELEASE_REPO"),
		},
		&cli.StringFlag{
			Name:        "app-name",
			Usage:       "Application name used in asset names and release notes",
			Value:       model.DefaultAppName,
			Destination: &c.AppName,
			Sources:     cli.EnvVars("GHRELEASE_APP_NAME"),
		},
		&cli.StringFlag{
			Name:        "dist",
			Usage:       "Directory containing the built artifacts",
			Value:       model.DefaultDistDir,
			Destination: &c.DistDir,
			Sources:     cli.EnvVars("GHRELEASE_DIST"),
		},
		&cli.StringFlag{
			Name:        "branch",
			Usage:       "Target branch for release tags",
			Value:       model.DefaultBranch,
			Destination: &c.Branch,
			Sources:     cli.EnvVars("GHRELEASE_BRANCH"),
		},
		&cli.StringSliceFlag{
			Name:        "release-version",
			Aliases:     []string{"r"},
			Usage:       "Version to publish, repeatable (default: 1.0.10, 1.0.11)",
			Destination: &c.Versions,
			Sources:     cli.EnvVars("GHRELEASE_VERSIONS"),
		},
	}
}

// Build resolves the project settings. Defaults are overridden by the
// project file, which is overridden by explicitly set flags.
func (c *Project) Build(cmd *cli.Command) (*model.Project, error) {
	project := model.DefaultProject()

	if c.ConfigFile != "" {
		if err := loadProjectFile(c.ConfigFile, project); err != nil {
			return nil, err
		}
	}

	overrides := []struct {
		flag string
		set  func()
	}{
		{"owner", func() { project.Owner = c.Owner }},
		{"repo", func() { project.Repo = c.Repo }},
		{"app-name", func() { project.AppName = c.AppName }},
		{"dist", func() { project.DistDir = c.DistDir }},
		{"branch", func() { project.Branch = c.Branch }},
		{"release-version", func() { project.Versions = append([]string{}, c.Versions...) }},
	}
	for _, o := range overrides {
		if cmd != nil && cmd.IsSet(o.flag) {
			o.set()
		}
	}

	if err := project.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid project configuration")
	}

	return project, nil
}

// loadProjectFile decodes a TOML project file onto project. Keys absent from
// the file keep their current value; unknown keys are rejected.
func loadProjectFile(path string, project *model.Project) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read project file", goerr.V("path", path))
	}

	decoder := toml.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(project); err != nil {
		return goerr.Wrap(err, "failed to parse project file", goerr.V("path", path))
	}

	return nil
}
