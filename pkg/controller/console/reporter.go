package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// config holds internal reporter configuration
type config struct {
	color bool
}

// Option is a functional option for Reporter configuration
type Option func(*config)

// WithColor enables or disables ANSI colors. Colors follow the terminal detection of fatih/color by default.
func WithColor(enabled bool) Option {
	return func(c *config) {
		c.color = enabled
	}
}

// Reporter prints publishing progress for humans
type Reporter struct {
	w    io.Writer
	ok   *color.Color
	ng   *color.Color
	warn *color.Color
	bold *color.Color
}

// NewReporter creates a Reporter writing to w
func NewReporter(w io.Writer, opts ...Option) *Reporter {
	cfg := &config{
		color: !color.NoColor,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	r := &Reporter{
		w:    w,
		ok:   color.New(color.FgGreen),
		ng:   color.New(color.FgRed),
		warn: color.New(color.FgYellow),
		bold: color.New(color.Bold),
	}

	for _, c := range []*color.Color{r.ok, r.ng, r.warn, r.bold} {
		if cfg.color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

// Banner prints the title block shown before any release is created
func (r *Reporter) Banner(appName string) {
	title := fmt.Sprintf("GitHub Release Creator for %s", appName)
	r.bold.Fprintln(r.w, title)
	fmt.Fprintln(r.w, strings.Repeat("=", 50))
	fmt.Fprintln(r.w)
}

// CreatingRelease announces the release about to be created
func (r *Reporter) CreatingRelease(version string) {
	fmt.Fprintf(r.w, "Creating release for version %s...\n", version)
}

// ReleaseCreated reports the ID GitHub assigned to a new release
func (r *Reporter) ReleaseCreated(version string, releaseID int64) {
	r.ok.Fprintf(r.w, "✓ Release created with ID: %d\n", releaseID)
}

// ReleaseFailed reports why a release could not be created
func (r *Reporter) ReleaseFailed(version string, err error) {
	r.ng.Fprintf(r.w, "✗ Error creating release: %v\n", err)
}

// Uploading announces an upload before the request is sent
func (r *Reporter) Uploading(name string) {
	fmt.Fprintf(r.w, "  Uploading: %s...\n", name)
}

// Uploaded reports a completed upload
func (r *Reporter) Uploaded(name string) {
	r.ok.Fprintf(r.w, "  ✓ Uploaded: %s\n", name)
}

// UploadFailed reports a failed upload
func (r *Reporter) UploadFailed(name string, err error) {
	r.ng.Fprintf(r.w, "  ✗ Error uploading %s: %v\n", name, err)
}

// FileNotFound reports an artifact missing from the dist directory
func (r *Reporter) FileNotFound(name string) {
	r.warn.Fprintf(r.w, "✗ File not found: %s\n", name)
}

// VersionFailed closes the block of a version whose release could not be created
func (r *Reporter) VersionFailed(version string) {
	fmt.Fprintf(r.w, "Failed to create release for %s\n", version)
}

// Done prints the closing line
func (r *Reporter) Done() {
	r.bold.Fprintln(r.w, "All releases created successfully!")
}

// EndVersion prints the separator between versions
func (r *Reporter) EndVersion() {
	fmt.Fprintln(r.w)
}
