package slack

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/Agrysif/ghrelease/pkg/domain/interfaces"
	"github.com/Agrysif/ghrelease/pkg/domain/model"
)

type notifier struct {
	webhookURL string
	httpClient *http.Client
}

// NewNotifier creates a Notifier posting run summaries to a Slack incoming webhook
func NewNotifier(webhookURL string, httpClient *http.Client) (interfaces.Notifier, error) {
	if webhookURL == "" {
		return nil, goerr.New("slack webhook URL is required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &notifier{
		webhookURL: webhookURL,
		httpClient: httpClient,
	}, nil
}

// Notify posts the summary once; delivery failure is returned to the caller
func (n *notifier) Notify(ctx context.Context, project *model.Project, results []*model.ReleaseResult) error {
	msg := &slack.WebhookMessage{
		Text: formatSummary(project, results),
	}

	if err := slack.PostWebhookCustomHTTPContext(ctx, n.webhookURL, n.httpClient, msg); err != nil {
		return goerr.Wrap(err, "failed to post slack webhook")
	}
	return nil
}

func formatSummary(project *model.Project, results []*model.ReleaseResult) string {
	var sb strings.Builder
	summary := model.Summarize(results)

	sb.WriteString(fmt.Sprintf("*%s/%s* releases: %d created, %d failed\n",
		project.Owner, project.Repo, summary.Created, summary.Failed))

	for _, r := range results {
		if r.Failed() {
			sb.WriteString(fmt.Sprintf("• v%s: failed\n", r.Version))
			continue
		}
		sb.WriteString(fmt.Sprintf("• v%s: release %d, %d uploaded, %d missing, %d failed\n",
			r.Version,
			r.ReleaseID,
			r.CountAssets(model.AssetUploaded),
			r.CountAssets(model.AssetMissing),
			r.CountAssets(model.AssetFailed),
		))
	}

	return sb.String()
}
