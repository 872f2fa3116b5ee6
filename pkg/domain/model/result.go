package model

// AssetStatus is the outcome of a single asset upload attempt
type AssetStatus string

const (
	AssetUploaded AssetStatus = "uploaded"
	AssetMissing  AssetStatus = "missing"
	AssetFailed   AssetStatus = "failed"
)

// AssetResult records what happened to one artifact of a release
type AssetResult struct {
	Name   string
	Status AssetStatus
	Err    error
}

// ReleaseResult records what happened to one version
type ReleaseResult struct {
	Version   string
	ReleaseID int64
	Created   bool
	Err       error
	Assets    []*AssetResult
}

// Failed reports whether the release could not be created
func (x *ReleaseResult) Failed() bool {
	return !x.Created
}

// CountAssets returns the number of assets with the given status
func (x *ReleaseResult) CountAssets(status AssetStatus) int {
	var n int
	for _, a := range x.Assets {
		if a.Status == status {
			n++
		}
	}
	return n
}

// Summary aggregates the results of a whole run
type Summary struct {
	Created        int
	Failed         int
	AssetsUploaded int
	AssetsMissing  int
	AssetsFailed   int
}

// Summarize aggregates per-version results
func Summarize(results []*ReleaseResult) Summary {
	var s Summary
	for _, r := range results {
		if r.Failed() {
			s.Failed++
			continue
		}
		s.Created++
		s.AssetsUploaded += r.CountAssets(AssetUploaded)
		s.AssetsMissing += r.CountAssets(AssetMissing)
		s.AssetsFailed += r.CountAssets(AssetFailed)
	}
	return s
}
