package logger

import (
	"bytes"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCharmlogLevel(t *testing.T) {
	tests := []struct {
		level    Level
		expected charmlog.Level
	}{
		{DebugLevel, charmlog.DebugLevel},
		{InfoLevel, charmlog.InfoLevel},
		{WarnLevel, charmlog.WarnLevel},
		{ErrorLevel, charmlog.ErrorLevel},
		{DisabledLevel, charmlog.Level(1000)},
		{Level("unknown"), charmlog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.ToCharmlogLevel())
		})
	}
}

func TestNewWritesText(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: InfoLevel, Output: &buf})

	l.Info("section dropped", "type", "footer")

	out := buf.String()
	assert.Contains(t, out, "section dropped")
	assert.Contains(t, out, "footer")
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: DebugLevel, Output: &buf, JSON: true})

	l.Debug("mapping applied", "path", "social.linkedin")

	out := buf.String()
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "{"))
	assert.Contains(t, out, "social.linkedin")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: WarnLevel, Output: &buf})

	l.Debug("hidden debug")
	l.Info("hidden info")
	l.Warn("visible warn")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible warn")
}

func TestWithCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: InfoLevel, Output: &buf}).With("component", "normalizer")

	l.Info("ready")

	assert.Contains(t, buf.String(), "normalizer")
}

func TestOrDiscard(t *testing.T) {
	l := OrDiscard(nil)
	require.NotNil(t, l)
	l.Error("goes nowhere")

	var buf bytes.Buffer
	given := New(&Config{Output: &buf})
	assert.Equal(t, given, OrDiscard(given))
}
