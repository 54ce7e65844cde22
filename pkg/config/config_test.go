package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("POSTGRES_URL", "postgres://localhost/itinero_test")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("PLANNER_PROVIDER", "")
	t.Setenv("PLANNER_MODEL", "")
	t.Setenv("PORT", "")
}

func TestLoadAppliesDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.PlannerProvider)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "test-key", cfg.PlannerAPIKey())
}

func TestLoadFailsWithoutDatabaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POSTGRES_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_URL")
}

func TestLoadFailsWithoutProviderKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoadOpenAIProvider(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PLANNER_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "openai-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "openai-key", cfg.PlannerAPIKey())
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PLANNER_PROVIDER", "llama")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported planner provider")
}
