package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Tomas-vilte/jira-issue-mcp/internal/cli/command/start"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/cli/registry"
	cfg "github.com/Tomas-vilte/jira-issue-mcp/internal/config"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/i18n"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/infrastructure/di"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/logger"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/version"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/urfave/cli/v3"
)

func main() {
	// stdout pertenece al transporte MCP
	log.SetOutput(os.Stderr)

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error starting the cli: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	translations, err := i18n.NewTranslations(cfg.Language(), "")
	if err != nil {
		return nil, err
	}

	registerCommand := registry.NewRegistry(translations)
	if err := registerCommand.Register("start", start.NewStartCommandFactory(runStdioServer)); err != nil {
		return nil, err
	}

	commands := registerCommand.CreateCommands()
	commands = append(commands, &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	})

	return &cli.Command{
		Name:        "jira-issue-mcp",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.FullVersion(),
		Description: translations.GetMessage("app_description", 0, nil),
		Commands:    commands,
	}, nil
}

func runStdioServer(ctx context.Context, config *cfg.Config, t *i18n.Translations) error {
	if err := t.SetLanguage(config.Language); err != nil {
		logger.Warn(ctx, "unsupported language, keeping the default", "language", config.Language)
	}

	container := di.NewContainer(config, t)
	return container.NewMCPServer(version.FullVersion()).Run(ctx, &mcp.StdioTransport{})
}
