package platform

import (
	"context"
	"net/http"
	"strings"

	"TorrentHunter/internal/models"
)

// Query 平台查询参数（统一接口），也是 cli 对应的参数
type Query struct {
	Keywords []string
	Page     int // 从 1 开始
	Limit    int // 0 表示不限制
}

// Text 返回拼接后的查询文本
func (q Query) Text() string {
	return strings.Join(q.Keywords, " ")
}

// Request 出站请求描述，由各平台的 BuildRequest 生成，不做任何 I/O
type Request struct {
	URL    string
	Method string
	Header http.Header
}

// Result 查询结果
type Result struct {
	Total    int
	Torrents []*models.Torrent
}

// Platform 平台接口，所有种子站点都需实现
type Platform interface {
	Name() string

	// Categories 平台所属的结果分类，如 files/videos/music
	Categories() []string

	// Paging 平台是否支持翻页
	Paging() bool

	// BuildRequest 由查询构造请求，纯函数
	BuildRequest(q Query) Request

	// ParseResponse 解析原始页面，永不返回错误；坏字段省略，坏条目跳过
	ParseResponse(body string) []*models.Torrent

	// Search 执行搜索查询（请求 + 解析）
	Search(ctx context.Context, q Query) (Result, error)

	GetConfig() Config
}

type Config interface {
	Validate() error
}
