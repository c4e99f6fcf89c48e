package json

import (
	"encoding/json"
	"fmt"
	"os"

	"TorrentHunter/internal/models"
)

type JSONExporter struct{}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export 缺失的可选字段不会出现在输出里（omitempty）
func (e *JSONExporter) Export(torrents []*models.Torrent, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("创建文件失败: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false) // magnet 链接里的 & 不转义

	data := map[string]interface{}{
		"total":    len(torrents),
		"torrents": torrents,
	}

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("写入 JSON 失败: %w", err)
	}

	return nil
}
