package models

import (
	"time"
)

// Torrent 统一的种子结果模型，是 adapter 交给聚合层的最小单元
// URL 与 Title 必定有值，其余字段解析失败时为 nil（而不是零值）
type Torrent struct {
	ID            int64      `json:"-" db:"id"`
	Source        string     `json:"engine" db:"source"` // 产生该结果的平台，如 "torrentz"
	URL           string     `json:"url" db:"url"`
	Title         string     `json:"title" db:"title"`
	Seed          *int       `json:"seed,omitempty" db:"seed"`
	Leech         *int       `json:"leech,omitempty" db:"leech"`
	PublishedDate *time.Time `json:"publishedDate,omitempty" db:"published_at"`
	FileSize      *int64     `json:"filesize,omitempty" db:"filesize"`
	MagnetLink    *string    `json:"magnetlink,omitempty" db:"magnetlink"`
	Template      string     `json:"template,omitempty" db:"-"`
	UpdatedAt     time.Time  `json:"-" db:"updated_at"`
}

// SeedOr 返回做种数，缺失时返回 def
func (t *Torrent) SeedOr(def int) int {
	if t.Seed == nil {
		return def
	}
	return *t.Seed
}

// LeechOr 返回下载数，缺失时返回 def
func (t *Torrent) LeechOr(def int) int {
	if t.Leech == nil {
		return def
	}
	return *t.Leech
}

func (t *Torrent) HasMagnet() bool {
	return t.MagnetLink != nil && *t.MagnetLink != ""
}
