package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	c := NewCache()

	var got []string
	assert.False(t, c.Load("u1", "/api/progress", &got))

	require.NoError(t, c.Store("u1", "/api/progress", []string{"a", "b"}))
	require.NoError(t, c.Store("u1", "/api/workouts", []string{"w"}))
	require.NoError(t, c.Store("u2", "/api/progress", []string{"z"}))

	assert.True(t, c.Load("u1", "/api/progress", &got))
	assert.Equal(t, []string{"a", "b"}, got)

	c.Drop("u1", "/api/progress")
	assert.False(t, c.Load("u1", "/api/progress", &got))

	c.Forget("u1")
	assert.False(t, c.Load("u1", "/api/workouts", &got))
	assert.True(t, c.Load("u2", "/api/progress", &got))
	assert.Equal(t, []string{"z"}, got)
}
