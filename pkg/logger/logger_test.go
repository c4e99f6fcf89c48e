package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"warning", WARN},
		{" error ", ERROR},
		{"unknown", INFO},
		{"", INFO},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestLogger_LevelAndPrefix(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	Configure("warn", false)
	defer Configure("info", false)

	Info("hidden %d", 1)
	Warn("shown %d", 2)
	WithPrefix("Torrentz").Error("boom")
	WithPrefix("Torrentz").Debug("also hidden")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown 2")
	assert.Contains(t, out, "[Torrentz] [ERROR] boom")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}
