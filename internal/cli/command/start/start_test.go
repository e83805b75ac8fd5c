package start

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tomas-vilte/jira-issue-mcp/internal/config"
	domainErrors "github.com/Tomas-vilte/jira-issue-mcp/internal/domain/errors"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func clearJiraEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvBaseURL, config.EnvUsername, config.EnvAPIToken, config.EnvLanguage} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func newApp(t *testing.T, run ServerRunner) *cli.Command {
	t.Helper()
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	cmd := NewStartCommandFactory(run).CreateCommand(translations)
	return &cli.Command{Name: "jira-issue-mcp", Commands: []*cli.Command{cmd}}
}

func TestStartCommand(t *testing.T) {
	t.Run("should load the configuration and run the server", func(t *testing.T) {
		// Arrange
		clearJiraEnv(t)
		envFile := filepath.Join(t.TempDir(), ".env")
		content := "JIRA_BASE_URL=https://example.atlassian.net\nJIRA_USERNAME=user\nJIRA_API_TOKEN=token\n"
		require.NoError(t, os.WriteFile(envFile, []byte(content), 0600))

		var received *config.Config
		app := newApp(t, func(_ context.Context, cfg *config.Config, _ *i18n.Translations) error {
			received = cfg
			return nil
		})

		// Act
		err := app.Run(context.Background(), []string{"jira-issue-mcp", "start", "--env-file", envFile})

		// Assert
		require.NoError(t, err)
		require.NotNil(t, received)
		assert.Equal(t, "https://example.atlassian.net", received.JiraConfig.BaseURL)
		assert.Equal(t, "user", received.JiraConfig.Username)
		assert.Equal(t, "token", received.JiraConfig.APIToken)
	})

	t.Run("should not serve when credentials are missing", func(t *testing.T) {
		// Arrange
		clearJiraEnv(t)
		called := false
		app := newApp(t, func(context.Context, *config.Config, *i18n.Translations) error {
			called = true
			return nil
		})

		// Act
		err := app.Run(context.Background(), []string{"jira-issue-mcp", "start", "--env-file", ""})

		// Assert
		assert.False(t, called)
		assert.ErrorContains(t, err, "Could not load the Jira configuration")
		var cfgErr *domainErrors.ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, config.EnvBaseURL, cfgErr.Field)
	})

	t.Run("should return the runner error", func(t *testing.T) {
		// Arrange
		clearJiraEnv(t)
		t.Setenv(config.EnvBaseURL, "https://example.atlassian.net")
		t.Setenv(config.EnvUsername, "user")
		t.Setenv(config.EnvAPIToken, "token")

		app := newApp(t, func(context.Context, *config.Config, *i18n.Translations) error {
			return errors.New("stdin closed")
		})

		// Act
		err := app.Run(context.Background(), []string{"jira-issue-mcp", "start", "--env-file", ""})

		// Assert
		assert.EqualError(t, err, "stdin closed")
	})
}
