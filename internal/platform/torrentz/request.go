package torrentz

import (
	"net/http"
	"net/url"
	"strconv"

	"TorrentHunter/internal/platform"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36"

// BuildRequest 构造搜索请求：https://torrentz.eu/search?p=<page-1>&q=<query>
// 页码小于 1 按第 1 页处理；空查询同样返回合法地址，语义交给站点判断
func BuildRequest(q platform.Query) platform.Request {
	page := q.Page
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("q", q.Text())
	params.Set("p", strconv.Itoa(page-1))

	header := http.Header{}
	header.Set("User-Agent", userAgent)
	header.Set("Accept", "text/html,application/xhtml+xml")

	return platform.Request{
		URL:    BaseURL + searchPath + "?" + params.Encode(),
		Method: http.MethodGet,
		Header: header,
	}
}
