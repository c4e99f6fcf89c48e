package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	storage "TorrentHunter/db"
	dbsqlite "TorrentHunter/db/sqlite"

	exporter "TorrentHunter/internal/core/export"
	csv "TorrentHunter/internal/core/export/csv"
	json "TorrentHunter/internal/core/export/json"
	"TorrentHunter/internal/models"
	"TorrentHunter/internal/platform"
	"TorrentHunter/pkg/logger"
)

type App struct {
	db          storage.TorrentStorage
	platformCfg map[string]platform.Config
}

// DefaultDatabasePath ~/.torrenthunter/data/torrenthunter.db
func DefaultDatabasePath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".torrenthunter", "data", "torrenthunter.db")
}

func NewApp(databasePath string, pCfg map[string]platform.Config) (*App, error) {
	if databasePath == "" {
		databasePath = DefaultDatabasePath()
	}
	sqliteDB, err := dbsqlite.NewSQLiteDB(databasePath)
	if err != nil {
		return nil, err
	}

	if pCfg == nil {
		pCfg = map[string]platform.Config{}
	}

	return &App{
		db:          sqliteDB,
		platformCfg: pCfg,
	}, nil
}

func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) GetPlatform(platformName string) (platform.Platform, error) {
	prov, ok := Get(platformName)
	if !ok {
		return nil, fmt.Errorf("未知或未实现的平台: %s", platformName)
	}

	pcfg, ok := a.platformCfg[platformName]
	if !ok {
		logger.Debug("使用平台默认配置: %s", platformName)
		pcfg = prov.DefaultConfig()
	}

	return prov.New(pcfg)
}

// Search 只查询不入库
func (a *App) Search(ctx context.Context, platformName string, q platform.Query) (platform.Result, error) {
	plat, err := a.GetPlatform(platformName)
	if err != nil {
		return platform.Result{}, fmt.Errorf("创建平台实例失败: %w", err)
	}

	logger.Debug("执行搜索查询: platform=%s, keywords=%v, page=%d, limit=%d", platformName, q.Keywords, q.Page, q.Limit)
	res, err := plat.Search(ctx, q)
	if err != nil {
		logger.Error("平台搜索失败: %v", err)
		return platform.Result{}, fmt.Errorf("搜索失败: %w", err)
	}
	return res, nil
}

type CrawlProgress func(index int, total int, t *models.Torrent, torrentID int64)

func (a *App) Crawl(ctx context.Context, platformName string, q platform.Query) (int, error) {
	return a.CrawlWithProgress(ctx, platformName, q, nil)
}

// CrawlWithProgress 搜索并写入数据库，返回成功保存的条数
func (a *App) CrawlWithProgress(ctx context.Context, platformName string, q platform.Query, progress CrawlProgress) (int, error) {
	logger.Info("开始爬取平台: %s", platformName)
	res, err := a.Search(ctx, platformName, q)
	if err != nil {
		return 0, err
	}
	logger.Info("搜索返回 %d 条结果", len(res.Torrents))

	count := 0
	total := len(res.Torrents)
	for i, t := range res.Torrents {
		if t == nil {
			continue
		}
		select {
		case <-ctx.Done():
			return count, ctx.Err()
		default:
		}

		logger.Debug("[%d/%d] 保存: %s", i+1, total, t.Title)
		tid, err := a.db.Upsert(t)
		if err != nil {
			logger.Error("保存失败 [%s]: %v", t.URL, err)
			return count, fmt.Errorf("保存失败(%s): %w", t.URL, err)
		}
		count++

		if progress != nil {
			progress(i, total, t, tid)
		}
	}

	logger.Info("爬取完成，共保存 %d 条", count)
	return count, nil
}

// List 返回本地库中满足条件的结果以及满足条件的总数
func (a *App) List(ctx context.Context, cond models.SearchCondition) ([]*models.Torrent, int, error) {
	total, err := a.db.Count(cond)
	if err != nil {
		return nil, 0, fmt.Errorf("统计失败: %w", err)
	}
	torrents, err := a.db.Search(cond)
	if err != nil {
		return nil, 0, fmt.Errorf("查询失败: %w", err)
	}
	return torrents, total, nil
}

func (a *App) Delete(ctx context.Context, cond models.SearchCondition) (int, error) {
	return a.db.Delete(cond)
}

// Export 导出本地库结果到文件，format 支持 csv/json
func (a *App) Export(ctx context.Context, format string, outputPath string, cond models.SearchCondition) error {
	logger.Info("开始导出: 格式=%s, 输出=%s", format, outputPath)

	var exp exporter.Exporter
	switch format {
	case "csv":
		exp = csv.NewCSVExporter()
	case "json":
		exp = json.NewJSONExporter()
	default:
		return fmt.Errorf("不支持的导出格式: %s", format)
	}

	torrents, err := a.db.Search(cond)
	if err != nil {
		return fmt.Errorf("查询失败: %w", err)
	}

	if len(torrents) == 0 {
		return fmt.Errorf("没有找到符合条件的结果")
	}

	logger.Info("找到 %d 条结果待导出", len(torrents))

	if err := exp.Export(torrents, outputPath); err != nil {
		return fmt.Errorf("导出失败: %w", err)
	}

	logger.Info("导出成功: %d 条 -> %s", len(torrents), outputPath)
	return nil
}
