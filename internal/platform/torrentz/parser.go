package torrentz

import (
	"math"
	"net/url"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"TorrentHunter/internal/models"

	"github.com/PuerkitoBio/goquery"
)

const (
	// Sun, 22 Nov 2015 03:01:42
	dateLayout   = "Mon, 02 Jan 2006 15:04:05"
	magnetPrefix = "magnet:?xt=urn:btih:"
)

var (
	reInfoHash = regexp.MustCompile(`^[0-9a-fA-F]{40}$`)
	// 只接受逗号千分位，拒绝正负号和指数写法
	reCount    = regexp.MustCompile(`^(\d+|\d{1,3}(,\d{3})+)$`)
	reDecimal  = regexp.MustCompile(`^(\d+|\d{1,3}(,\d{3})+)(\.\d+)?$`)

	// 站点的体积单位一律按 1024 进制
	sizeUnits = map[string]int64{
		"B":     1,
		"BYTES": 1,
		"KB":    1 << 10,
		"KIB":   1 << 10,
		"MB":    1 << 20,
		"MIB":   1 << 20,
		"GB":    1 << 30,
		"GIB":   1 << 30,
		"TB":    1 << 40,
		"TIB":   1 << 40,
	}

	baseURL, _ = url.Parse(BaseURL)
)

// ParseResponse 解析搜索结果页
// 没有 div.results 时返回空切片；单个条目的坏字段只会被省略，不影响其它条目
func ParseResponse(body string) []*models.Torrent {
	torrents := []*models.Torrent{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		log.Debug("页面无法解析: %v", err)
		return torrents
	}

	doc.Find("div.results > dl").Each(func(i int, s *goquery.Selection) {
		t, ok := parseEntry(s)
		if !ok {
			log.Debug("跳过第 %d 个条目: 缺少链接、标题或做种信息", i+1)
			return
		}
		torrents = append(torrents, t)
	})

	return torrents
}

func parseEntry(s *goquery.Selection) (*models.Torrent, bool) {
	dt := s.ChildrenFiltered("dt").First()
	if dt.Length() == 0 {
		return nil, false
	}

	// 标题行里只允许有一个指向种子的链接
	links := dt.ChildrenFiltered("a")
	if links.Length() != 1 {
		return nil, false
	}
	href := strings.TrimSpace(links.AttrOr("href", ""))
	if href == "" {
		return nil, false
	}
	link, linkPath := resolveLink(href)

	title := cleanText(dt.Text())
	if title == "" {
		return nil, false
	}

	dd := s.ChildrenFiltered("dd")
	seedNode := dd.Find("span.u").First()
	leechNode := dd.Find("span.d").First()
	if seedNode.Length() == 0 || leechNode.Length() == 0 {
		return nil, false
	}

	t := &models.Torrent{
		Source:   Name,
		URL:      link,
		Title:    title,
		Template: "torrent",
	}
	t.Seed = parseCount(seedNode.Text())
	t.Leech = parseCount(leechNode.Text())

	if date, ok := dd.Find("span.a span[title]").First().Attr("title"); ok {
		t.PublishedDate = parseDate(date)
	}
	if size := dd.Find("span.s").First(); size.Length() > 0 {
		t.FileSize = parseFileSize(size.Text())
	}
	t.MagnetLink = magnetFromPath(linkPath)

	return t, true
}

// resolveLink 返回绝对链接及其 path
// href 不是合法 URL（如路径里有落单的 %）时按原样拼到 BaseURL 后面，条目照常保留
func resolveLink(href string) (string, string) {
	if ref, err := url.Parse(href); err == nil {
		link := baseURL.ResolveReference(ref)
		return link.String(), link.Path
	}

	raw := strings.TrimLeft(href, "/")
	p := raw
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	return BaseURL + raw, p
}

// parseCount 解析带千分位逗号的计数，如 "1,234,567"
func parseCount(text string) *int {
	text = strings.TrimSpace(text)
	if !reCount.MatchString(text) {
		return nil
	}
	n, err := strconv.Atoi(strings.ReplaceAll(text, ",", ""))
	if err != nil {
		return nil
	}
	return &n
}

func parseDate(text string) *time.Time {
	t, err := time.Parse(dateLayout, strings.TrimSpace(text))
	if err != nil {
		return nil
	}
	return &t
}

// parseFileSize 解析 "<数字> <单位>"，缺少空格或单位未知都视为无效
func parseFileSize(text string) *int64 {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return nil
	}

	mul, ok := sizeUnits[strings.ToUpper(fields[1])]
	if !ok {
		return nil
	}

	if !reDecimal.MatchString(fields[0]) {
		return nil
	}
	num, err := strconv.ParseFloat(strings.ReplaceAll(fields[0], ",", ""), 64)
	if err != nil || math.IsInf(num, 0) {
		return nil
	}

	bytes := num * float64(mul)
	if bytes >= math.MaxInt64 {
		return nil
	}
	size := int64(bytes)
	return &size
}

// magnetFromPath 链接末段是 40 位十六进制 info hash 时才生成 magnet
func magnetFromPath(p string) *string {
	hash := path.Base(p)
	if !reInfoHash.MatchString(hash) {
		return nil
	}
	magnet := magnetPrefix + hash
	return &magnet
}

// cleanText 折叠空白；strings.Fields 按 unicode 判断，&nbsp; 也算空白
func cleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
