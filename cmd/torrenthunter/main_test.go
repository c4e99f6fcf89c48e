package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"TorrentHunter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTorrents(t *testing.T) {
	seed, leech := 5555, 1234567
	size := int64(30 * 1024 * 1024)
	published := time.Now().Add(-48 * time.Hour)
	magnet := "magnet:?xt=urn:btih:4362e08b1d80e1820fb2550b752f9f3126fe76d6"

	torrents := []*models.Torrent{
		{Title: "full", Seed: &seed, Leech: &leech, FileSize: &size, PublishedDate: &published, MagnetLink: &magnet},
		{Title: "bare"},
	}

	var buf bytes.Buffer
	require.NoError(t, printTorrents(&buf, torrents))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "30 MiB")
	assert.Contains(t, lines[1], "5,555")
	assert.Contains(t, lines[1], "1,234,567")
	assert.Contains(t, lines[1], "2 days ago")
	assert.Contains(t, lines[1], magnet)
	assert.Equal(t, 5, strings.Count(lines[2], "-"))
}

func TestPrintTorrents_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printTorrents(&buf, nil))
	assert.Equal(t, "没有找到结果\n", buf.String())
}

func TestRootCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"search", "list", "export", "config", "platforms"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}
