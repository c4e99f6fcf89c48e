package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"TorrentHunter/internal/models"
)

type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Export 缺失字段写空串
func (e *CSVExporter) Export(torrents []*models.Torrent, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("创建文件失败: %w", err)
	}
	defer file.Close()

	// Excel 需要 BOM 才能正确识别 UTF-8
	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("写入 BOM 失败: %w", err)
	}

	writer := csv.NewWriter(file)

	headers := []string{
		"ID", "数据源", "标题", "URL", "做种", "下载", "大小(字节)", "发布时间", "Magnet",
	}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("写入表头失败: %w", err)
	}

	for _, t := range torrents {
		record := []string{
			strconv.FormatInt(t.ID, 10),
			t.Source,
			t.Title,
			t.URL,
			formatInt(t.Seed),
			formatInt(t.Leech),
			formatInt64(t.FileSize),
			formatTime(t.PublishedDate),
			formatString(t.MagnetLink),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("写入数据失败: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatInt64(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
