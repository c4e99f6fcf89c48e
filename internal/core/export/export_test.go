package export_test

import (
	stdcsv "encoding/csv"
	stdjson "encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"TorrentHunter/internal/core/export"
	"TorrentHunter/internal/core/export/csv"
	"TorrentHunter/internal/core/export/json"
	"TorrentHunter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTorrents() []*models.Torrent {
	seed, leech := 14, 1
	size := int64(31457280)
	published := time.Date(2015, 11, 22, 3, 1, 42, 0, time.UTC)
	magnet := "magnet:?xt=urn:btih:4362e08b1d80e1820fb2550b752f9f3126fe76d6"
	seed2, leech2 := 5555, 1234567

	return []*models.Torrent{
		{
			ID: 1, Source: "torrentz",
			URL:   "https://torrentz.eu/4362e08b1d80e1820fb2550b752f9f3126fe76d6",
			Title: "Completely valid info books ebooks",
			Seed:  &seed, Leech: &leech, FileSize: &size, PublishedDate: &published, MagnetLink: &magnet,
		},
		{
			ID: 2, Source: "torrentz",
			URL:   "https://torrentz.eu/poaskdpokaspod",
			Title: "Invalid hash and date and filesize books ebooks",
			Seed:  &seed2, Leech: &leech2,
		},
	}
}

func TestJSONExporter(t *testing.T) {
	var exp export.Exporter = json.NewJSONExporter()
	out := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, exp.Export(sampleTorrents(), out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "magnet:?xt=urn:btih:")

	var decoded struct {
		Total    int                      `json:"total"`
		Torrents []map[string]interface{} `json:"torrents"`
	}
	require.NoError(t, stdjson.Unmarshal(data, &decoded))
	assert.Equal(t, 2, decoded.Total)
	require.Len(t, decoded.Torrents, 2)
	assert.EqualValues(t, 31457280, decoded.Torrents[0]["filesize"])

	second := decoded.Torrents[1]
	assert.EqualValues(t, 1234567, second["leech"])
	for _, key := range []string{"magnetlink", "filesize", "publishedDate"} {
		_, ok := second[key]
		assert.False(t, ok, "key %q should be absent", key)
	}
}

func TestCSVExporter(t *testing.T) {
	var exp export.Exporter = csv.NewCSVExporter()
	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, exp.Export(sampleTorrents(), out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "\xEF\xBB\xBF"))

	records, err := stdcsv.NewReader(strings.NewReader(string(data[3:]))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"1", "torrentz", "Completely valid info books ebooks",
		"https://torrentz.eu/4362e08b1d80e1820fb2550b752f9f3126fe76d6",
		"14", "1", "31457280", "2015-11-22 03:01:42",
		"magnet:?xt=urn:btih:4362e08b1d80e1820fb2550b752f9f3126fe76d6",
	}, records[1])
	assert.Equal(t, []string{
		"2", "torrentz", "Invalid hash and date and filesize books ebooks",
		"https://torrentz.eu/poaskdpokaspod",
		"5555", "1234567", "", "", "",
	}, records[2])
}
