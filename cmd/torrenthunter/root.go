package main

import (
	"TorrentHunter/config"
	"TorrentHunter/internal/core"
	"TorrentHunter/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "torrenthunter",
	Short: "torrent 元搜索适配器命令行",
	Long: `torrenthunter 调用各种子站点适配器进行搜索，可选择将结果保存到本地 sqlite 并导出。

Examples:
  torrenthunter search ubuntu iso
  torrenthunter search --save --pages 3 debian
  torrenthunter list --keyword ubuntu
  torrenthunter export --format csv -o out.csv`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "配置文件路径（yaml 文件或所在目录）")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "", "日志级别: debug, info, warn, error（覆盖配置文件）")
}

// loadConfig 加载配置并按配置初始化日志
func loadConfig() (*config.AppConfig, error) {
	cfg, err := config.Init(cfgFile)
	if err != nil {
		return nil, err
	}

	if cfg.Log.File != "" {
		if err := logger.InitWithFile(cfg.Log.Level, cfg.Log.File); err != nil {
			logger.Warn("日志文件打开失败，继续输出到 stderr: %v", err)
		}
	}
	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	logger.Configure(level, cfg.Log.Color && cfg.Log.File == "")
	return cfg, nil
}

func newApp() (*core.App, *config.AppConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	app, err := core.NewApp(cfg.Database.Path, cfg.PlatformConfigs())
	if err != nil {
		return nil, nil, err
	}
	return app, cfg, nil
}
