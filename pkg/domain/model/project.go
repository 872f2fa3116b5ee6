package model

import (
	"bytes"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultOwner   = "Agrysif"
	DefaultRepo    = "WatchTwitch"
	DefaultAppName = "WatchTwitch"
	DefaultDistDir = "dist"
	DefaultBranch  = "main"
)

// DefaultVersions is the ordered list of versions published when none are given
var DefaultVersions = []string{"1.0.10", "1.0.11"}

// DefaultAssetTemplates are the per-version artifact names: installer, its
// blockmap and the update metadata file. Upload order follows this list.
var DefaultAssetTemplates = []string{
	"{{.AppName}} Setup {{.Version}}.exe",
	"{{.AppName}} Setup {{.Version}}.exe.blockmap",
	"latest-{{.Version}}.yml",
}

// DefaultBodyTemplate renders the release notes
const DefaultBodyTemplate = `{{.AppName}} v{{.Version}} - Auto Update Release

This is an automated release build for testing the auto-update system.

## Changes
- Fixed update download and progress tracking
- Added error handling for failed downloads
- Improved update UI responsiveness

## Files
- {{.AppName}} Setup {{.Version}}.exe - Main installer
- {{.AppName}} Setup {{.Version}}.exe.blockmap - Delta update file
- latest-{{.Version}}.yml - Update metadata file`

// Project describes where releases are published and which artifacts belong to them
type Project struct {
	Owner          string   `toml:"owner"`
	Repo           string   `toml:"repo"`
	AppName        string   `toml:"app_name"`
	DistDir        string   `toml:"dist_dir"`
	Branch         string   `toml:"branch"`
	Versions       []string `toml:"versions"`
	BodyTemplate   string   `toml:"body_template"`
	AssetTemplates []string `toml:"assets"`
}

// DefaultProject returns the project settings used when nothing is configured
func DefaultProject() *Project {
	return &Project{
		Owner:          DefaultOwner,
		Repo:           DefaultRepo,
		AppName:        DefaultAppName,
		DistDir:        DefaultDistDir,
		Branch:         DefaultBranch,
		Versions:       append([]string{}, DefaultVersions...),
		BodyTemplate:   DefaultBodyTemplate,
		AssetTemplates: append([]string{}, DefaultAssetTemplates...),
	}
}

// templateVars is the data available to body and asset templates
type templateVars struct {
	AppName string
	Version string
}

// Validate checks that the project settings are usable
func (p *Project) Validate() error {
	switch {
	case p.Owner == "":
		return goerr.New("owner is required")
	case p.Repo == "":
		return goerr.New("repo is required")
	case p.DistDir == "":
		return goerr.New("dist directory is required")
	case p.Branch == "":
		return goerr.New("target branch is required")
	case len(p.AssetTemplates) == 0:
		return goerr.New("at least one asset name template is required")
	}

	for _, v := range p.Versions {
		if v == "" {
			return goerr.New("version must not be empty", goerr.V("versions", p.Versions))
		}
	}

	if _, err := template.New("body").Parse(p.BodyTemplate); err != nil {
		return goerr.Wrap(err, "invalid body template")
	}
	for _, a := range p.AssetTemplates {
		if _, err := template.New("asset").Parse(a); err != nil {
			return goerr.Wrap(err, "invalid asset name template", goerr.V("template", a))
		}
	}

	return nil
}

// NewRelease builds the release descriptor for a version
func (p *Project) NewRelease(version string) (*Release, error) {
	body, err := p.render("body", p.BodyTemplate, version)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render release body", goerr.V("version", version))
	}

	return &Release{
		Version:         version,
		TagName:         "v" + version,
		Name:            "Release " + version,
		Body:            body,
		TargetCommitish: p.Branch,
		Draft:           false,
		Prerelease:      false,
	}, nil
}

// AssetNames returns the artifact file names for a version in upload order
func (p *Project) AssetNames(version string) ([]string, error) {
	names := make([]string, 0, len(p.AssetTemplates))
	for _, tmpl := range p.AssetTemplates {
		name, err := p.render("asset", tmpl, version)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to render asset name",
				goerr.V("version", version),
				goerr.V("template", tmpl),
			)
		}
		names = append(names, name)
	}
	return names, nil
}

func (p *Project) render(name, text, version string) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", goerr.Wrap(err, "failed to parse template")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateVars{AppName: p.AppName, Version: version}); err != nil {
		return "", goerr.Wrap(err, "failed to execute template")
	}
	return buf.String(), nil
}
