package logger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	domainErrors "github.com/Tomas-vilte/jira-issue-mcp/internal/domain/errors"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withoutColor(t *testing.T) {
	t.Helper()
	previous := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = previous })
}

func TestPrettyHandler(t *testing.T) {
	withoutColor(t)

	t.Run("filters records below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

		log.Debug("hidden")
		log.Info("fetching issue", "issue_key", "KEY-1")

		assert.Equal(t, "[INFO]  fetching issue issue_key=KEY-1\n", buf.String())
	})

	t.Run("defaults to warn", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(NewPrettyHandler(&buf, nil))

		log.Info("hidden")
		log.Warn("careful")

		assert.Equal(t, "[WARN]  careful\n", buf.String())
	})

	t.Run("prefixes grouped attributes", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		log.WithGroup("http").With("method", "GET").Debug("request", "status", 200)

		assert.Equal(t, "[DEBUG] request http.method=GET http.status=200\n", buf.String())
	})
}

func TestContextHelpers(t *testing.T) {
	withoutColor(t)

	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	ctx = With(ctx, "tool", "get_issue_summary")

	Error(ctx, "tool failed", errors.New("boom"))

	assert.Equal(t, "[ERROR] tool failed tool=get_issue_summary error=boom\n", buf.String())
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Equal(t, slog.Default(), FromContext(context.Background()))
}

func TestLevel(t *testing.T) {
	cases := []struct {
		name     string
		debug    bool
		verbose  bool
		expected slog.Level
	}{
		{"default", false, false, slog.LevelWarn},
		{"verbose", false, true, slog.LevelInfo},
		{"debug", true, false, slog.LevelDebug},
		{"debug wins over verbose", true, true, slog.LevelDebug},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Level(tc.debug, tc.verbose))
		})
	}
}

func TestNew(t *testing.T) {
	withoutColor(t)

	var buf bytes.Buffer
	log := New(&buf, false, true)

	log.Debug("hidden")
	log.Info("server ready", "tool", "get_issue_summary")

	assert.Equal(t, "[INFO]  server ready tool=get_issue_summary\n", buf.String())
}

func TestErrorAddsJiraStatus(t *testing.T) {
	withoutColor(t)

	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New(&buf, false, false))
	ctx = WithIssueKey(ctx, "KEY-404")

	Error(ctx, "failed to fetch issue", fmt.Errorf("error fetching issue KEY-404: %w", domainErrors.NewAPIError(404, "missing")))

	assert.Equal(t, "[ERROR] failed to fetch issue issue_key=KEY-404 error=error fetching issue KEY-404: Jira API Error (404): missing status=404\n", buf.String())
}
