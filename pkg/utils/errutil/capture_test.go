package errutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/Agrysif/ghrelease/pkg/utils/errutil"
)

func newHub(t *testing.T) (*sentry.Hub, *sentry.MockTransport) {
	t.Helper()
	transport := &sentry.MockTransport{}
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:       "https://public@sentry.example.com/1",
		Transport: transport,
	})
	gt.NoError(t, err)
	return sentry.NewHub(client, sentry.NewScope()), transport
}

func TestCapture(t *testing.T) {
	hub, transport := newHub(t)
	ctx := sentry.SetHubOnContext(context.Background(), hub)

	err := goerr.New("failed to create release", goerr.V("tag", "v1.0.10"))
	errutil.Capture(ctx, err, map[string]string{"version": "1.0.10"})

	events := transport.Events()
	gt.Number(t, len(events)).Equal(1)
	gt.Value(t, events[0].Tags["version"]).Equal("1.0.10")
	gt.Value(t, events[0].Extra["tag"]).Equal(any("v1.0.10"))
	gt.True(t, len(events[0].Exception) > 0)
	last := events[0].Exception[len(events[0].Exception)-1]
	gt.String(t, last.Value).Contains("failed to create release")
}

func TestCapture_NoHub(t *testing.T) {
	// Nothing to assert beyond not panicking.
	errutil.Capture(context.Background(), errors.New("boom"), nil)
}

func TestCapture_NilError(t *testing.T) {
	hub, transport := newHub(t)
	ctx := sentry.SetHubOnContext(context.Background(), hub)

	errutil.Capture(ctx, nil, nil)

	gt.Number(t, len(transport.Events())).Equal(0)
}
