package start

import (
	"context"
	"fmt"
	"os"

	"github.com/Tomas-vilte/jira-issue-mcp/internal/config"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/i18n"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/logger"
	"github.com/urfave/cli/v3"
)

// ServerRunner serves MCP requests until ctx is cancelled or the host disconnects.
type ServerRunner func(ctx context.Context, cfg *config.Config, t *i18n.Translations) error

type StartCommandFactory struct {
	run ServerRunner
}

func NewStartCommandFactory(run ServerRunner) *StartCommandFactory {
	return &StartCommandFactory{run: run}
}

func (f *StartCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "start",
		Usage: t.GetMessage("start_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: config.DefaultEnvFile,
				Usage: t.GetMessage("env_file_flag_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: t.GetMessage("debug_flag_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   t.GetMessage("verbose_flag_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			logger.Initialize(os.Stderr, command.Bool("debug"), command.Bool("verbose"))

			cfg, err := config.LoadConfig(command.String("env-file"))
			if err != nil {
				logger.Error(ctx, "configuration error", err)
				return fmt.Errorf("%s: %w", t.GetMessage("config_load_failed", 0, nil), err)
			}

			logger.Info(ctx, "starting jira issue server", "base_url", cfg.JiraConfig.BaseURL)
			return f.run(ctx, cfg, t)
		},
	}
}
