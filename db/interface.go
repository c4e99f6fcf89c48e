package db

import (
	"TorrentHunter/internal/models"
)

// TorrentStorage 结果持久化接口，目前只有 sqlite 实现
type TorrentStorage interface {
	Upsert(t *models.Torrent) (int64, error)

	GetByURL(url string) (*models.Torrent, error)

	Search(cond models.SearchCondition) ([]*models.Torrent, error)

	Count(cond models.SearchCondition) (int, error)

	Delete(cond models.SearchCondition) (int, error)

	Close() error
}
