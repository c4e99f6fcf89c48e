package export

import (
	"TorrentHunter/internal/models"
)

// Exporter 导出器接口
type Exporter interface {
	// Export 导出种子结果到指定文件
	Export(torrents []*models.Torrent, outputPath string) error
}
