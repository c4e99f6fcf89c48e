package torrentz

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"TorrentHunter/internal/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequest(t *testing.T) {
	req := BuildRequest(platform.Query{Keywords: []string{"test_query"}, Page: 1})

	assert.Equal(t, http.MethodGet, req.Method)
	assert.Contains(t, req.URL, "test_query")
	assert.Contains(t, req.URL, "torrentz.eu")
	assert.True(t, strings.HasPrefix(req.URL, "https://"))
	assert.NotEmpty(t, req.Header.Get("User-Agent"))
}

func TestBuildRequest_EncodingAndPaging(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		page     int
		wantQ    string
		wantP    string
	}{
		{"first page", []string{"ubuntu"}, 1, "ubuntu", "0"},
		{"third page", []string{"ubuntu"}, 3, "ubuntu", "2"},
		{"zero page clamps", []string{"ubuntu"}, 0, "ubuntu", "0"},
		{"special characters", []string{"a&b=c", "ü/?#"}, 2, "a&b=c ü/?#", "1"},
		{"empty query", nil, 1, "", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := BuildRequest(platform.Query{Keywords: tt.keywords, Page: tt.page})

			u, err := url.Parse(req.URL)
			require.NoError(t, err)
			assert.True(t, u.IsAbs())
			assert.Equal(t, "torrentz.eu", u.Host)
			assert.Equal(t, "/search", u.Path)
			assert.Equal(t, tt.wantQ, u.Query().Get("q"))
			assert.Equal(t, tt.wantP, u.Query().Get("p"))
		})
	}
}
