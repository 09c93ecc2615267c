package utils

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "batch", "warn", false)

	log.Info().Msg("dropped")
	log.Warn().Int("rows", 3).Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "batch", entry["component"])
	assert.Equal(t, float64(3), entry["rows"])
}

func TestNewLogger_UnknownLevelMeansInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "api", "loud", false)

	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
