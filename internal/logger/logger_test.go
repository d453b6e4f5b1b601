package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	log, err := New(true, false)
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.False(t, log.Core().Enabled(-1)) // debug disabled

	log, err = New(false, true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(-1))
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "short", TruncateForLog("short", 10))
	assert.Equal(t, "abc...", TruncateForLog("abcdefgh", 3))
	assert.Equal(t, "", TruncateForLog("anything", 0))
	assert.Equal(t, "trimmed", TruncateForLog("  trimmed  ", 10))
}
