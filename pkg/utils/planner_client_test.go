package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlannerClientRejectsUnknownProvider(t *testing.T) {
	_, err := NewPlannerClient("llama", "key", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported provider")
}

func TestNewPlannerClientOpenAI(t *testing.T) {
	client, err := NewPlannerClient("openai", "key", "")
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.NoError(t, client.Close())
}
