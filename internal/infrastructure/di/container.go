package di

import (
	"github.com/Tomas-vilte/jira-issue-mcp/internal/config"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/domain/ports"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/i18n"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/infrastructure/httpclient"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/infrastructure/mcpserver"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/infrastructure/tickets/jira"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/services"
)

// Container gestiona las dependencias de la aplicación
type Container struct {
	config       *config.Config
	translations *i18n.Translations

	// Services (lazy initialized)
	httpClient     httpclient.HTTPClient
	issueTracker   ports.IssueTracker
	summaryService ports.IssueSummaryService
}

// NewContainer crea un nuevo contenedor de dependencias
func NewContainer(cfg *config.Config, trans *i18n.Translations) *Container {
	return &Container{
		config:       cfg,
		translations: trans,
	}
}

// SetHTTPClient reemplaza el cliente HTTP usado contra Jira
func (c *Container) SetHTTPClient(client httpclient.HTTPClient) {
	c.httpClient = client
}

func (c *Container) getHTTPClient() httpclient.HTTPClient {
	if c.httpClient == nil {
		c.httpClient = httpclient.NewLoggingClient(httpclient.NewDefaultClient(0))
	}
	return c.httpClient
}

// GetIssueTracker retorna el cliente de Jira
func (c *Container) GetIssueTracker() ports.IssueTracker {
	if c.issueTracker == nil {
		c.issueTracker = jira.NewClient(&c.config.JiraConfig, c.getHTTPClient())
	}
	return c.issueTracker
}

// GetIssueSummaryService retorna el servicio de resumen de issues
func (c *Container) GetIssueSummaryService() ports.IssueSummaryService {
	if c.summaryService == nil {
		c.summaryService = services.NewIssueSummaryService(c.GetIssueTracker())
	}
	return c.summaryService
}

// NewMCPServer crea el servidor MCP con todas las herramientas registradas
func (c *Container) NewMCPServer(version string) *mcpserver.Server {
	return mcpserver.NewServer(c.GetIssueSummaryService(), c.translations, version)
}
