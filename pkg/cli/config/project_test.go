package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Agrysif/ghrelease/pkg/cli/config"
	"github.com/Agrysif/ghrelease/pkg/domain/model"
)

func TestProject_Build_Defaults(t *testing.T) {
	cfg := &config.Project{}

	project, err := cfg.Build(nil)
	gt.NoError(t, err)
	gt.Value(t, project).Equal(model.DefaultProject())
}

func TestProject_Build_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "release.toml")
	gt.NoError(t, os.WriteFile(path, []byte(`
owner = "someone"
repo = "viewer"
dist_dir = "out"
versions = ["3.0.0", "3.0.1"]
`), 0644))

	cfg := &config.Project{ConfigFile: path}
	project, err := cfg.Build(nil)
	gt.NoError(t, err)

	gt.Value(t, project.Owner).Equal("someone")
	gt.Value(t, project.Repo).Equal("viewer")
	gt.Value(t, project.DistDir).Equal("out")
	gt.Value(t, project.Versions).Equal([]string{"3.0.0", "3.0.1"})
	gt.Value(t, project.AppName).Equal(model.DefaultAppName)
	gt.Value(t, project.AssetTemplates).Equal(model.DefaultAssetTemplates)
}

func TestProject_Build_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg := &config.Project{ConfigFile: filepath.Join(t.TempDir(), "none.toml")}
		_, err := cfg.Build(nil)
		gt.Error(t, err)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "release.toml")
		gt.NoError(t, os.WriteFile(path, []byte(`token = "x"`), 0644))

		_, err := (&config.Project{ConfigFile: path}).Build(nil)
		gt.Error(t, err)
	})

	t.Run("invalid settings", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "release.toml")
		gt.NoError(t, os.WriteFile(path, []byte(`owner = ""`), 0644))

		_, err := (&config.Project{ConfigFile: path}).Build(nil)
		gt.Error(t, err)
	})
}

func TestGitHub_Validate(t *testing.T) {
	gt.Error(t, (&config.GitHub{}).Validate())
	gt.NoError(t, (&config.GitHub{Token: "x"}).Validate())

	_, err := (&config.GitHub{}).NewClient()
	gt.Error(t, err)

	client, err := (&config.GitHub{Token: "x", APIURL: "https://ghe.example.com/api/v3"}).NewClient()
	gt.NoError(t, err)
	gt.Value(t, client).NotNil()
}
