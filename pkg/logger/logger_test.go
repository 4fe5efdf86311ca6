package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_ValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		log, err := New(level)
		require.NoError(t, err, "level %s", level)
		require.NotNil(t, log)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("verbose")
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	log := Default()
	require.NotNil(t, log)

	// Must be safe to use immediately.
	log.Debug("suppressed at info level")
}
