package torrentz

import (
	"fmt"
	"time"

	"TorrentHunter/internal/platform"
)

// 站点地址与分页方式是平台常量，不开放配置
const (
	BaseURL    = "https://torrentz.eu/"
	searchPath = "search"
)

// Config 定义 torrentz 平台的抓取配置
type Config struct {
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Proxy    string        `mapstructure:"proxy" yaml:"proxy"`
	MaxPages int           `mapstructure:"max_pages" yaml:"max_pages"` // 单次 Search 最多翻几页
}

func DefaultConfig() *Config {
	return &Config{
		Timeout:  30 * time.Second,
		MaxPages: 1,
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	if c.MaxPages <= 0 || c.MaxPages > 20 {
		return fmt.Errorf("invalid max_pages: %d", c.MaxPages)
	}
	return nil
}

var _ platform.Config = (*Config)(nil)
