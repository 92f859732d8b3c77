package main

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/anjiri1684/error_paper/aigen"
	config "github.com/anjiri1684/error_paper/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAIConfig(t *testing.T) {
	got := aiConfig(&config.Settings{
		AIProvider:      "openai",
		OpenAIAPIKey:    "sk-test",
		OpenAIModel:     "gpt-4o-mini",
		OpenAIBaseURL:   "http://localhost:9999/v1",
		AnthropicModel:  "claude-haiku",
		AITimeout:       5 * time.Second,
		AIRetryAttempts: 1,
	})
	assert.Equal(t, aigen.Config{
		Provider:  "openai",
		OpenAI:    aigen.OpenAIConfig{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: "http://localhost:9999/v1"},
		Anthropic: aigen.AnthropicConfig{Model: "claude-haiku"},
		Timeout:   5 * time.Second,
		Retries:   1,
	}, got)
}

func TestMigrateAndSweepCommands(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("DATABASE_URL", filepath.Join(dir, "test.db"))
	t.Setenv("LOG_LEVEL", "error")

	migrate := newMigrateCommand()
	migrate.SetArgs([]string{})
	require.NoError(t, migrate.Execute())

	var out bytes.Buffer
	cmd := newSweepCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "removed 0 practice questions and 0 practice records\n", out.String())
}

func TestSetupRejectsInvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "oracle")

	_, _, _, err := setup()
	assert.ErrorContains(t, err, "DB_DRIVER")
}
