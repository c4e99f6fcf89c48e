package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"TorrentHunter/internal/models"
	"TorrentHunter/internal/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, cfg map[string]platform.Config) *App {
	t.Helper()
	app, err := NewApp(filepath.Join(t.TempDir(), "app.db"), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })
	return app
}

func TestApp_SearchDoesNotPersist(t *testing.T) {
	app := newTestApp(t, nil)

	res, err := app.Search(context.Background(), "mock", platform.Query{Keywords: []string{"x"}})
	require.NoError(t, err)
	assert.Len(t, res.Torrents, 3)

	_, total, err := app.List(context.Background(), models.SearchCondition{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestApp_CrawlListExport(t *testing.T) {
	app := newTestApp(t, nil)
	ctx := context.Background()

	var seen []string
	count, err := app.CrawlWithProgress(ctx, "mock", platform.Query{Keywords: []string{"x"}},
		func(index, total int, tr *models.Torrent, id int64) {
			assert.Equal(t, 3, total)
			assert.Positive(t, id)
			seen = append(seen, tr.Title)
		})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"alpha", "beta"}, seen)

	torrents, total, err := app.List(ctx, models.SearchCondition{MinSeed: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, torrents, 1)
	assert.Equal(t, "alpha", torrents[0].Title)

	out := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, app.Export(ctx, "json", out, models.SearchCondition{}))
	_, err = os.Stat(out)
	assert.NoError(t, err)

	assert.Error(t, app.Export(ctx, "xml", out, models.SearchCondition{}))
	assert.Error(t, app.Export(ctx, "csv", out, models.SearchCondition{Keyword: "nothing"}))

	deleted, err := app.Delete(ctx, models.SearchCondition{Keyword: "beta"})
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}

func TestApp_Errors(t *testing.T) {
	app := newTestApp(t, map[string]platform.Config{"mock": &mockConfig{fail: true}})

	_, err := app.Search(context.Background(), "unknown", platform.Query{})
	assert.Error(t, err)

	_, err = app.Crawl(context.Background(), "mock", platform.Query{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
