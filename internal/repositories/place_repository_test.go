package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilteredModeShortCircuitsEmptyPreferences(t *testing.T) {
	// An empty IN list can never match; the query must not reach the pool.
	repo := NewPlaceRepository(nil)

	rows, err := repo.ListPlacesByCityAndPreferences(context.Background(), "Cairo", nil)
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = repo.ListPlacesByCityAndPreferences(context.Background(), "Cairo", []string{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
