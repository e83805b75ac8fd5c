package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	domainErrors "github.com/Tomas-vilte/jira-issue-mcp/internal/domain/errors"
	"github.com/joho/godotenv"
)

type (
	Config struct {
		JiraConfig JiraConfig
		Language   string
	}

	JiraConfig struct {
		BaseURL  string
		Username string
		APIToken string
	}
)

const (
	EnvBaseURL  = "JIRA_BASE_URL"
	EnvUsername = "JIRA_USERNAME"
	EnvAPIToken = "JIRA_API_TOKEN"
	EnvLanguage = "JIRA_MCP_LANG"

	DefaultEnvFile = ".env"
	defaultLang    = "en"
)

// LoadConfig lee la configuración desde el entorno. Si envFile existe se carga
// primero; las variables ya presentes en el proceso tienen prioridad.
func LoadConfig(envFile string) (*Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	config := &Config{
		JiraConfig: JiraConfig{
			BaseURL:  strings.TrimRight(strings.TrimSpace(os.Getenv(EnvBaseURL)), "/"),
			Username: strings.TrimSpace(os.Getenv(EnvUsername)),
			APIToken: strings.TrimSpace(os.Getenv(EnvAPIToken)),
		},
		Language: Language(),
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Language devuelve el idioma configurado o el idioma por defecto.
func Language() string {
	if lang := strings.TrimSpace(os.Getenv(EnvLanguage)); lang != "" {
		return lang
	}
	return defaultLang
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return domainErrors.NewConfigError("env_file", fmt.Sprintf("cannot access %s", path), err)
	}

	if err := godotenv.Load(path); err != nil {
		return domainErrors.NewConfigError("env_file", fmt.Sprintf("cannot parse %s", path), err)
	}
	return nil
}

func validateConfig(config *Config) error {
	if config.JiraConfig.BaseURL == "" {
		return domainErrors.NewConfigError(EnvBaseURL, "jira base URL is not configured", nil)
	}
	if config.JiraConfig.Username == "" {
		return domainErrors.NewConfigError(EnvUsername, "jira username is not configured", nil)
	}
	if config.JiraConfig.APIToken == "" {
		return domainErrors.NewConfigError(EnvAPIToken, "jira API token is not configured", nil)
	}
	return nil
}
