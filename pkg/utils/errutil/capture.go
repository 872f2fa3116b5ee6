package errutil

import (
	"context"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
)

// Capture sends err to the Sentry hub bound to ctx, with tags on the event and
// goerr values as extras. It does nothing when ctx carries no hub.
func Capture(ctx context.Context, err error, tags map[string]string) {
	if err == nil {
		return
	}
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		return
	}

	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		scope.SetExtras(goerr.Values(err))
		hub.CaptureException(err)
	})
}
