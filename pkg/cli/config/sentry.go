package config

import (
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Agrysif/ghrelease/pkg/domain/types"
)

// Sentry holds error reporting configuration
type Sentry struct {
	DSN         string `masq:"secret"`
	Environment string

	// Transport replaces the HTTP transport when set
	Transport sentry.Transport
}

// Flags returns CLI flags for Sentry configuration
func (c *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for reporting release and upload failures (disabled if empty)",
			Destination: &c.DSN,
			Sources:     cli.EnvVars("GHRELEASE_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment name",
			Destination: &c.Environment,
			Sources:     cli.EnvVars("GHRELEASE_SENTRY_ENV"),
		},
	}
}

// Configure returns a hub bound to a new Sentry client, or nil if no DSN is set.
// The global hub is left untouched so SENTRY_DSN alone never enables reporting.
func (c *Sentry) Configure() (*sentry.Hub, error) {
	if c.DSN == "" {
		return nil, nil
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         c.DSN,
		Environment: c.Environment,
		Release:     "ghrelease@" + types.Version,
		Transport:   c.Transport,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize Sentry client")
	}

	return sentry.NewHub(client, sentry.NewScope()), nil
}
