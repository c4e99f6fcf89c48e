package core

import (
	"context"
	"errors"

	"TorrentHunter/internal/models"
	"TorrentHunter/internal/platform"
)

type mockConfig struct {
	fail bool
}

func (c *mockConfig) Validate() error { return nil }

// mockPlatform 返回固定结果，fail 时模拟传输错误
type mockPlatform struct {
	cfg      *mockConfig
	torrents []*models.Torrent
}

func (m *mockPlatform) Name() string { return "mock" }

func (m *mockPlatform) Categories() []string { return []string{"files"} }

func (m *mockPlatform) Paging() bool { return false }

func (m *mockPlatform) GetConfig() platform.Config { return m.cfg }

func (m *mockPlatform) ParseResponse(string) []*models.Torrent { return m.torrents }

func (m *mockPlatform) BuildRequest(q platform.Query) platform.Request {
	return platform.Request{URL: "https://mock.invalid/?q=" + q.Text(), Method: "GET"}
}

func (m *mockPlatform) Search(ctx context.Context, q platform.Query) (platform.Result, error) {
	if m.cfg.fail {
		return platform.Result{}, errors.New("connection refused")
	}
	return platform.Result{Total: len(m.torrents), Torrents: m.torrents}, nil
}

func mockTorrents() []*models.Torrent {
	seed, leech := 14, 1
	return []*models.Torrent{
		{Source: "mock", URL: "https://mock.invalid/a", Title: "alpha", Seed: &seed, Leech: &leech},
		nil,
		{Source: "mock", URL: "https://mock.invalid/b", Title: "beta"},
	}
}

func init() {
	MustRegister(Provider{
		Name: "mock",
		New: func(cfg platform.Config) (platform.Platform, error) {
			c, _ := cfg.(*mockConfig)
			if c == nil {
				c = &mockConfig{}
			}
			return &mockPlatform{cfg: c, torrents: mockTorrents()}, nil
		},
		DefaultConfig: func() platform.Config { return &mockConfig{} },
	})
}
