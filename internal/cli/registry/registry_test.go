package registry

import (
	"testing"

	"github.com/Tomas-vilte/jira-issue-mcp/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type mockCommandFactory struct {
	name string
}

func (m *mockCommandFactory) CreateCommand(_ *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name: m.name,
	}
}

func newTranslations(t *testing.T) *i18n.Translations {
	t.Helper()
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return translations
}

func TestRegistry_Register(t *testing.T) {
	t.Run("should register new factory successfully", func(t *testing.T) {
		// arrange
		registry := NewRegistry(newTranslations(t))

		// act
		err := registry.Register("start", &mockCommandFactory{name: "start"})

		// assert
		assert.NoError(t, err)
		assert.Len(t, registry.factories, 1)
		assert.Contains(t, registry.factories, "start")
	})

	t.Run("should return error when registering duplicate factory", func(t *testing.T) {
		// arrange
		registry := NewRegistry(newTranslations(t))
		factory := &mockCommandFactory{name: "start"}

		// act
		_ = registry.Register("start", factory)
		err := registry.Register("start", factory)

		// assert
		assert.EqualError(t, err, "Command factory 'start' is already registered")
		assert.Len(t, registry.factories, 1)
	})
}

func TestRegistry_CreateCommands(t *testing.T) {
	registry := NewRegistry(newTranslations(t))
	require.NoError(t, registry.Register("start", &mockCommandFactory{name: "start"}))
	require.NoError(t, registry.Register("doctor", &mockCommandFactory{name: "doctor"}))

	commands := registry.CreateCommands()

	require.Len(t, commands, 2)
	assert.Equal(t, "doctor", commands[0].Name)
	assert.Equal(t, "start", commands[1].Name)
}
