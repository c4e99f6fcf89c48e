package core

import (
	"testing"

	"TorrentHunter/internal/platform"

	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	newFn := func(platform.Config) (platform.Platform, error) { return nil, nil }
	defFn := func() platform.Config { return &mockConfig{} }

	tests := []struct {
		name    string
		p       Provider
		wantErr bool
	}{
		{"empty name", Provider{New: newFn, DefaultConfig: defFn}, true},
		{"missing factory", Provider{Name: "x1", DefaultConfig: defFn}, true},
		{"duplicate", Provider{Name: "mock", New: newFn, DefaultConfig: defFn}, true},
		{"ok", Provider{Name: "registry-test", New: newFn, DefaultConfig: defFn}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Register(tt.p)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	_, ok := Get("registry-test")
	assert.True(t, ok)
	assert.Contains(t, List(), "mock")
	assert.Panics(t, func() { MustRegister(Provider{}) })
}

func TestNewHTTPClient(t *testing.T) {
	c := NewHTTPClient(0, "")
	assert.Equal(t, 30e9, float64(c.Timeout))

	c = NewHTTPClient(5e9, "http://127.0.0.1:7890")
	assert.Equal(t, 5e9, float64(c.Timeout))
	assert.NotNil(t, c.Transport)
}
