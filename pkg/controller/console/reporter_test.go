package console_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Agrysif/ghrelease/pkg/controller/console"
)

func TestReporter_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	r := console.NewReporter(&buf, console.WithColor(false))

	r.Banner("WatchTwitch")
	r.CreatingRelease("1.0.10")
	r.ReleaseCreated("1.0.10", 99)
	r.Uploading("latest-1.0.10.yml")
	r.Uploaded("latest-1.0.10.yml")
	r.FileNotFound("WatchTwitch Setup 1.0.10.exe")
	r.UploadFailed("WatchTwitch Setup 1.0.10.exe.blockmap", errors.New("boom"))
	r.EndVersion()
	r.CreatingRelease("1.0.11")
	r.ReleaseFailed("1.0.11", errors.New("422 Validation Failed"))
	r.VersionFailed("1.0.11")
	r.EndVersion()
	r.Done()

	expected := "GitHub Release Creator for WatchTwitch\n" +
		"==================================================\n" +
		"\n" +
		"Creating release for version 1.0.10...\n" +
		"✓ Release created with ID: 99\n" +
		"  Uploading: latest-1.0.10.yml...\n" +
		"  ✓ Uploaded: latest-1.0.10.yml\n" +
		"✗ File not found: WatchTwitch Setup 1.0.10.exe\n" +
		"  ✗ Error uploading WatchTwitch Setup 1.0.10.exe.blockmap: boom\n" +
		"\n" +
		"Creating release for version 1.0.11...\n" +
		"✗ Error creating release: 422 Validation Failed\n" +
		"Failed to create release for 1.0.11\n" +
		"\n" +
		"All releases created successfully!\n"

	gt.Value(t, buf.String()).Equal(expected)
}

func TestReporter_ColorOutput(t *testing.T) {
	var buf bytes.Buffer
	r := console.NewReporter(&buf, console.WithColor(true))

	r.Uploaded("a.exe")
	gt.String(t, buf.String()).Contains("\x1b[32m")
	gt.String(t, buf.String()).Contains("✓ Uploaded: a.exe")
}
