package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "config/config.yaml"

	defaultGraphBaseURL  = "https://graph.microsoft.com/v1.0"
	defaultGraphTimeout  = 30
	defaultUserCacheSize = 1024
	defaultListenAddr    = ":8443"
)

type GraphConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (g GraphConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

type CacheConfig struct {
	// ディレクトリ解決キャッシュの上限エントリ数（LRU）
	UserCacheSize int `yaml:"user_cache_size"`
}

type ServerConfig struct {
	Listen       string   `yaml:"listen"`
	AllowOrigins []string `yaml:"allow_origins"`
}

type Certs struct {
	Cert string `yaml:"cert"`
	Key  string `yaml:"key"`
}

type Config struct {
	Version     string       `yaml:"version"`
	Mode        string       `yaml:"mode"`
	Server      ServerConfig `yaml:"server"`
	Graph       GraphConfig  `yaml:"graph"`
	Cache       CacheConfig  `yaml:"cache"`
	Certificate Certs        `yaml:"certificate"`
}

func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定ファイルの読み込み失敗: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("設定ファイルのパース失敗: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// 未指定項目はデフォルトで埋める（設定ファイルは最小構成でも動くように）
func (c *Config) applyDefaults() {
	if c.Graph.BaseURL == "" {
		c.Graph.BaseURL = defaultGraphBaseURL
	}
	if c.Graph.TimeoutSeconds <= 0 {
		c.Graph.TimeoutSeconds = defaultGraphTimeout
	}
	if c.Cache.UserCacheSize <= 0 {
		c.Cache.UserCacheSize = defaultUserCacheSize
	}
	if c.Server.Listen == "" {
		c.Server.Listen = defaultListenAddr
	}
}
