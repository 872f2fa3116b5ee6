package config

import (
	"github.com/urfave/cli/v3"

	"github.com/Agrysif/ghrelease/pkg/domain/interfaces"
	slackinfra "github.com/Agrysif/ghrelease/pkg/infra/slack"
)

// Slack holds notification configuration
type Slack struct {
	WebhookURL string `masq:"secret"`
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL to post the run summary to",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("GHRELEASE_SLACK_WEBHOOK_URL"),
		},
	}
}

// NewNotifier returns nil when no webhook is configured
func (c *Slack) NewNotifier() (interfaces.Notifier, error) {
	if c.WebhookURL == "" {
		return nil, nil
	}
	return slackinfra.NewNotifier(c.WebhookURL, nil)
}
