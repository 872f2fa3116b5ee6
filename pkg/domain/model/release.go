package model

// Release is the descriptor submitted to the releases endpoint for one version
type Release struct {
	Version         string // Version without the "v" prefix
	TagName         string // Git tag, "v" + Version
	Name            string // Display name
	Body            string // Release notes
	TargetCommitish string // Branch the tag is created from
	Draft           bool
	Prerelease      bool
}

// Asset is a local file attached to a release
type Asset struct {
	Name    string // File name, also used as the asset name on GitHub
	Path    string // Local path
	Content []byte // Whole file content
}

// Size returns the content length in bytes
func (a *Asset) Size() int64 {
	return int64(len(a.Content))
}
