package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Agrysif/ghrelease/pkg/cli/config"
	"github.com/Agrysif/ghrelease/pkg/usecase"
)

func cmdPublish(stdout io.Writer) *cli.Command {
	var (
		projectCfg config.Project
		githubCfg  config.GitHub
		slackCfg   config.Slack
		outputCfg  = config.Output{Writer: stdout}
	)

	var flags []cli.Flag
	flags = append(flags, projectCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, outputCfg.Flags()...)

	return &cli.Command{
		Name:    "publish",
		Aliases: []string{"p"},
		Usage:   "Create releases and upload their assets",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			project, err := projectCfg.Build(c)
			if err != nil {
				return err
			}

			reporter := outputCfg.NewReporter()
			reporter.Banner(project.AppName)

			if err := githubCfg.Validate(); err != nil {
				fmt.Fprintln(stdout, "Error: GITHUB_TOKEN environment variable not set")
				fmt.Fprintln(stdout, "Please set GITHUB_TOKEN before running this script")
				return err
			}

			client, err := githubCfg.NewClient()
			if err != nil {
				return goerr.Wrap(err, "failed to create GitHub client")
			}

			notifier, err := slackCfg.NewNotifier()
			if err != nil {
				return goerr.Wrap(err, "failed to create notifier")
			}

			logger.Info("Publishing releases",
				"owner", project.Owner,
				"repo", project.Repo,
				"dist", project.DistDir,
				"versions", project.Versions,
			)

			publisher := usecase.NewPublisher(client, reporter, project)
			results := publisher.Publish(ctx, project.Versions)

			if notifier != nil {
				if err := notifier.Notify(ctx, project, results); err != nil {
					logger.Warn("Failed to send notification", "error", err)
				}
			}

			// Per-version failures were already reported and do not change the exit status
			reporter.Done()
			return nil
		},
	}
}
