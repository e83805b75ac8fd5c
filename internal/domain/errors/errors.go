package errors

import "fmt"

// ConfigError representa un error de configuración
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error [%s]: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError crea un nuevo error de configuración
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// APIError is returned when Jira answers outside the 2xx range.
// Body holds the raw response body as received.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Jira API Error (%d): %s", e.StatusCode, e.Body)
}

// NewAPIError crea un nuevo error de la API de Jira
func NewAPIError(statusCode int, body string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Body:       body,
	}
}

// ParseError indica que la respuesta de Jira no es JSON válido
type ParseError struct {
	Body string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid JSON response: %v", e.Err)
	}
	return "invalid JSON response"
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError crea un nuevo error de parseo
func NewParseError(body string, err error) *ParseError {
	return &ParseError{
		Body: body,
		Err:  err,
	}
}
