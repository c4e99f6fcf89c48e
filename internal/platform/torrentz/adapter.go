package torrentz

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"TorrentHunter/internal/core"
	"TorrentHunter/internal/models"
	"TorrentHunter/internal/platform"
	"TorrentHunter/pkg/logger"
)

const (
	Name = "torrentz"

	maxBodySize = 8 << 20
)

var log = logger.WithPrefix("Torrentz")

type Adapter struct {
	config     *Config
	httpClient *http.Client
}

func NewAdapter(config *Config) (*Adapter, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := core.NewHTTPClient(config.Timeout, config.Proxy)
	return &Adapter{config: config, httpClient: client}, nil
}

func (a *Adapter) Name() string { return Name }

func (a *Adapter) Categories() []string { return []string{"files", "videos", "music"} }

func (a *Adapter) Paging() bool { return true }

func (a *Adapter) GetConfig() platform.Config { return a.config }

func (a *Adapter) BuildRequest(q platform.Query) platform.Request { return BuildRequest(q) }

func (a *Adapter) ParseResponse(body string) []*models.Torrent { return ParseResponse(body) }

// Search 从 q.Page 开始最多翻 MaxPages 页，遇到空页或达到 Limit 即停止
// 第一页请求失败返回错误，后续页失败只记录日志并返回已拿到的结果
func (a *Adapter) Search(ctx context.Context, q platform.Query) (platform.Result, error) {
	start := q.Page
	if start < 1 {
		start = 1
	}

	torrents := []*models.Torrent{}
	for p := 0; p < a.config.MaxPages; p++ {
		if q.Limit > 0 && len(torrents) >= q.Limit {
			break
		}

		pq := q
		pq.Page = start + p
		req := a.BuildRequest(pq)
		log.Debug("搜索 URL(page=%d): %s", pq.Page, req.URL)

		body, err := a.fetch(ctx, req)
		if err != nil {
			if p == 0 {
				return platform.Result{}, fmt.Errorf("search request failed: %w", err)
			}
			log.Warn("第 %d 页请求失败: %v", pq.Page, err)
			break
		}

		page := a.ParseResponse(body)
		log.Debug("第 %d 页解析出 %d 条结果", pq.Page, len(page))
		if len(page) == 0 {
			break
		}
		torrents = append(torrents, page...)
	}

	if q.Limit > 0 && len(torrents) > q.Limit {
		torrents = torrents[:q.Limit]
	}

	log.Info("搜索 %q 完成，返回 %d 条结果", q.Text(), len(torrents))
	return platform.Result{Total: len(torrents), Torrents: torrents}, nil
}

func (a *Adapter) fetch(ctx context.Context, r platform.Request) (string, error) {
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = r.Header.Clone()

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	return string(body), nil
}
