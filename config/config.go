package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"TorrentHunter/internal/core"
	"TorrentHunter/internal/platform"
	"TorrentHunter/internal/platform/torrentz"
	"TorrentHunter/pkg/logger"
)

// LogConfig 日志配置
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // DEBUG/INFO/WARN/ERROR
	Color bool   `mapstructure:"color" yaml:"color"`
	File  string `mapstructure:"file" yaml:"file"` // 留空输出到 stderr
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// AppConfig 应用总配置(全局 + 平台)
type AppConfig struct {
	Env      string          `mapstructure:"env" yaml:"env"`
	Log      LogConfig       `mapstructure:"log" yaml:"log"`
	Database DatabaseConfig  `mapstructure:"database" yaml:"database"`
	Torrentz torrentz.Config `mapstructure:"torrentz" yaml:"torrentz"`
}

// PlatformConfigs 按平台名返回配置，交给 core.NewApp
func (c *AppConfig) PlatformConfigs() map[string]platform.Config {
	return map[string]platform.Config{
		torrentz.Name: &c.Torrentz,
	}
}

func (c *AppConfig) Validate() error {
	if err := c.Torrentz.Validate(); err != nil {
		return fmt.Errorf("torrentz 配置不合法: %w", err)
	}
	return nil
}

var (
	global     *AppConfig
	once       sync.Once
	globalErr  error
	configPath string
)

// DefaultConfigDir ~/.torrenthunter/config
func DefaultConfigDir() string {
	homedir, _ := os.UserHomeDir()
	return filepath.Join(homedir, ".torrenthunter", "config")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "prod")
	v.SetDefault("log.level", "INFO")
	v.SetDefault("log.color", true)
	v.SetDefault("log.file", "")
	v.SetDefault("database.path", core.DefaultDatabasePath())

	def := torrentz.DefaultConfig()
	v.SetDefault("torrentz.timeout", def.Timeout.String())
	v.SetDefault("torrentz.proxy", def.Proxy)
	v.SetDefault("torrentz.max_pages", def.MaxPages)
}

// Load 读取配置，不缓存；configPaths 可以是目录或具体的 yaml 文件
// 找不到配置文件时使用默认值，返回的 path 为空
func Load(configPaths ...string) (*AppConfig, string, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	explicitFile := false
	for _, p := range configPaths {
		if p == "" {
			continue
		}
		if strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml") {
			v.SetConfigFile(p)
			explicitFile = true
		} else {
			v.AddConfigPath(p)
		}
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath(DefaultConfigDir())

	v.SetEnvPrefix("TH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	used := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitFile || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("读取配置文件失败: %w", err)
		}
	} else {
		used = v.ConfigFileUsed()
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, "", fmt.Errorf("配置解析失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return cfg, used, nil
}

// Init 进程级单例，首次调用时若没有配置文件则生成示例配置
func Init(configPaths ...string) (*AppConfig, error) {
	once.Do(func() {
		cfg, used, err := Load(configPaths...)
		if err != nil {
			globalErr = err
			return
		}

		if used == "" {
			path := filepath.Join(DefaultConfigDir(), "config.yaml")
			if err := CreateExampleConfig(path); err != nil {
				logger.Warn("创建示例配置文件失败: %v", err)
			}
		}

		configPath = used
		global = cfg
	})
	return global, globalErr
}

func MustInit(configPaths ...string) *AppConfig {
	cfg, err := Init(configPaths...)
	if err != nil {
		panic(err)
	}
	return cfg
}

func Get() *AppConfig {
	if global == nil {
		_, _ = Init()
	}
	return global
}

func GetConfigPath() string {
	return configPath
}

// DefaultAppConfig 与 setDefaults 保持一致
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Env:      "prod",
		Log:      LogConfig{Level: "INFO", Color: true},
		Database: DatabaseConfig{Path: core.DefaultDatabasePath()},
		Torrentz: *torrentz.DefaultConfig(),
	}
}

// toYAML 保持字段顺序输出；Duration 写成 "30s" 而不是纳秒整数
func (c *AppConfig) toYAML() yaml.MapSlice {
	return yaml.MapSlice{
		{Key: "env", Value: c.Env},
		{Key: "log", Value: yaml.MapSlice{
			{Key: "level", Value: c.Log.Level},
			{Key: "color", Value: c.Log.Color},
			{Key: "file", Value: c.Log.File},
		}},
		{Key: "database", Value: yaml.MapSlice{
			{Key: "path", Value: c.Database.Path},
		}},
		{Key: "torrentz", Value: yaml.MapSlice{
			{Key: "timeout", Value: c.Torrentz.Timeout.String()},
			{Key: "proxy", Value: c.Torrentz.Proxy},
			{Key: "max_pages", Value: c.Torrentz.MaxPages},
		}},
	}
}

// WriteConfig 把配置写回 yaml 文件
func WriteConfig(cfg *AppConfig, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg.toYAML())
	if err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("创建配置目录失败: %w", err)
	}

	header := "# TorrentHunter 配置文件\n# 环境变量可覆盖任意项，如 TH_TORRENTZ_PROXY=http://127.0.0.1:7890\n\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0644); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}
	return nil
}

// CreateExampleConfig 文件已存在时不覆盖
func CreateExampleConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		logger.Warn("配置文件已存在，请直接编辑: %s", path)
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("检查配置文件时出错: %w", err)
	}

	if err := WriteConfig(DefaultAppConfig(), path); err != nil {
		return err
	}
	logger.Info("已在 %s 中创建配置文件", path)
	return nil
}
