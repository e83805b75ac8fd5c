package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	domainErrors "github.com/Tomas-vilte/jira-issue-mcp/internal/domain/errors"
)

type contextKey struct{}

var loggerKey = contextKey{}

// Level maps the CLI flags to a log level: warn by default, info with
// --verbose and debug with --debug.
func Level(debug, verbose bool) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// New builds a PrettyHandler logger writing to w, or to stderr when w is nil.
func New(w io.Writer, debug, verbose bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(NewPrettyHandler(w, &slog.HandlerOptions{
		Level:     Level(debug, verbose),
		AddSource: debug,
	}))
}

// Initialize installs the default logger. Output must never go to stdout:
// the MCP stdio transport owns it.
func Initialize(w io.Writer, debug, verbose bool) {
	slog.SetDefault(New(w, debug, verbose))
}

func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

// WithIssueKey tags every later record of ctx with the issue being served.
func WithIssueKey(ctx context.Context, issueKey string) context.Context {
	return With(ctx, "issue_key", issueKey)
}

func Debug(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Debug(msg, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Info(msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Warn(msg, args...)
}

// Error logs err under "error". Jira API failures also get their HTTP status.
func Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, errorAttrs(err)...)
	}
	FromContext(ctx).Error(msg, args...)
}

func errorAttrs(err error) []any {
	attrs := []any{slog.Any("error", err)}

	var apiErr *domainErrors.APIError
	if errors.As(err, &apiErr) {
		attrs = append(attrs, slog.Int("status", apiErr.StatusCode))
	}
	return attrs
}
