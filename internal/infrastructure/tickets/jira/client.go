package jira

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Tomas-vilte/jira-issue-mcp/internal/config"
	domainErrors "github.com/Tomas-vilte/jira-issue-mcp/internal/domain/errors"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/infrastructure/httpclient"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/logger"
)

const issuePathPrefix = "rest/api/2/issue/"

// Client representa el cliente HTTP para la API REST de Jira.
type Client struct {
	baseURL  string
	username string
	apiToken string
	client   httpclient.HTTPClient
}

// NewClient crea una nueva instancia de Client.
func NewClient(cfg *config.JiraConfig, client httpclient.HTTPClient) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		apiToken: cfg.APIToken,
		client:   client,
	}
}

// Get realiza un GET autenticado y devuelve el cuerpo como valor JSON genérico.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (any, error) {
	body, err := c.makeRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON(body)
}

// Post serializa payload como JSON y realiza un POST autenticado.
func (c *Client) Post(ctx context.Context, path string, payload any) (any, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error encoding request body: %w", err)
	}

	body, err := c.makeRequest(ctx, http.MethodPost, path, nil, data)
	if err != nil {
		return nil, err
	}
	return decodeJSON(body)
}

// GetIssue obtiene el documento crudo de un issue de Jira.
func (c *Client) GetIssue(ctx context.Context, issueKey string) (json.RawMessage, error) {
	body, err := c.makeRequest(ctx, http.MethodGet, issuePath(issueKey), nil, nil)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, domainErrors.NewParseError(string(body), err)
	}
	return raw, nil
}

// SubmitHoursLogged registra tiempo trabajado sobre un issue. timeSpent usa
// el formato de Jira, por ejemplo "1.5h" o "1h 15m".
func (c *Client) SubmitHoursLogged(ctx context.Context, issueKey string, startTime time.Time, timeSpent, comment string) (any, error) {
	payload := map[string]string{
		"timeSpent": timeSpent,
		"comment":   comment,
		"started":   FormatStarted(startTime),
	}
	return c.Post(ctx, issuePath(issueKey), payload)
}

// FormatStarted formats t in UTC the way Jira expects worklog start times,
// with a fixed ".000+0000" suffix.
func FormatStarted(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05") + ".000+0000"
}

func issuePath(issueKey string) string {
	return issuePathPrefix + url.PathEscape(issueKey)
}

// makeRequest realiza una solicitud HTTP a la API de Jira y devuelve el cuerpo
// de las respuestas 2xx.
func (c *Client) makeRequest(ctx context.Context, method, path string, query url.Values, payload []byte) ([]byte, error) {
	endpoint, err := c.buildURL(path, query)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Authorization", getBasicAuth(c.username, c.apiToken))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn(ctx, "error closing response body", "error", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domainErrors.NewAPIError(resp.StatusCode, string(body))
	}

	return body, nil
}

func (c *Client) buildURL(path string, query url.Values) (string, error) {
	u, err := url.Parse(c.baseURL + "/" + strings.TrimLeft(path, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid request URL: %w", err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

func decodeJSON(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var out any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, domainErrors.NewParseError(string(body), err)
	}
	return out, nil
}

// getBasicAuth genera el encabezado de autenticación básica.
func getBasicAuth(username, token string) string {
	credentials := fmt.Sprintf("%s:%s", username, token)
	return fmt.Sprintf("Basic %s", base64.StdEncoding.EncodeToString([]byte(credentials)))
}
