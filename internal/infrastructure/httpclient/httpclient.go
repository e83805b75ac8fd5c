package httpclient

import (
	"net/http"
	"time"

	"github.com/Tomas-vilte/jira-issue-mcp/internal/logger"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewDefaultClient devuelve un *http.Client. Un timeout de 0 deja el
// comportamiento por defecto del transporte.
func NewDefaultClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// LoggingClient logs every outgoing request at debug level. Headers are
// never logged since they carry the Authorization credentials.
type LoggingClient struct {
	base HTTPClient
}

func NewLoggingClient(base HTTPClient) *LoggingClient {
	return &LoggingClient{base: base}
}

func (c *LoggingClient) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	start := time.Now()

	resp, err := c.base.Do(req)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		logger.Debug(ctx, "http request failed",
			"method", req.Method,
			"url", req.URL.Redacted(),
			"duration_ms", elapsed,
			"error", err)
		return nil, err
	}

	logger.Debug(ctx, "http request",
		"method", req.Method,
		"url", req.URL.Redacted(),
		"status", resp.StatusCode,
		"duration_ms", elapsed)
	return resp, nil
}
