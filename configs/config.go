// Package configs provides configuration structures and utilities for the
// moderation back office client. It offers mechanisms for loading,
// validating, and saving configuration from JSON and YAML files, plus
// Viper-based hot reloading.
//
// Package configs 提供审核后台客户端的配置结构和工具。
// 它提供从JSON和YAML文件加载、验证和保存配置的机制，
// 以及基于Viper的热重载。
package configs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for the moderation client.
// It contains all settings needed to reach the backend, cache responses,
// and drive the listing, organized into logical sections.
//
// Config 表示审核客户端的完整配置。
// 它包含访问后端、缓存响应以及驱动列表所需的所有设置，
// 按逻辑部分进行组织。
type Config struct {
	// API contains backend connection settings
	// API 包含后端连接设置
	API APIConfig `json:"api" yaml:"api"`

	// Auth contains the bearer token settings
	// Auth 包含 bearer 令牌设置
	Auth AuthConfig `json:"auth" yaml:"auth"`

	// Cache selects and tunes the response cache backend
	// Cache 选择并调节响应缓存后端
	Cache CacheConfig `json:"cache" yaml:"cache"`

	// Redis configures the Redis backend when selected
	// Redis 配置选用时的 Redis 后端
	Redis RedisConfig `json:"redis" yaml:"redis"`

	// List tunes the listing behavior
	// List 调节列表行为
	List ListConfig `json:"list" yaml:"list"`

	// Log configures the logging behavior
	// Log 配置日志行为
	Log LogConfig `json:"log" yaml:"log"`

	// Extra allows for custom configuration options
	// Extra 允许自定义配置选项
	Extra map[string]interface{} `json:"extra" yaml:"extra"`
}

// APIConfig contains settings for reaching the moderation backend.
//
// APIConfig 包含访问审核后端的设置。
type APIConfig struct {
	// BaseURL is the root of the moderation API
	// BaseURL 是审核API的根地址
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// Timeout is the per-request timeout
	// Timeout 是单个请求的超时时间
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// PageLimit is the page size requested from the listing endpoint
	// PageLimit 是向列表端点请求的页大小
	PageLimit int `json:"page_limit" yaml:"page_limit" mapstructure:"page_limit"`
}

// AuthConfig contains the bearer token passed to the backend.
//
// AuthConfig 包含传递给后端的 bearer 令牌。
type AuthConfig struct {
	// Token is the bearer token; empty means unauthenticated
	// Token 是 bearer 令牌；为空表示未认证
	Token string `json:"token" yaml:"token"`
}

// CacheConfig selects the response cache backend and its freshness
// windows.
//
// CacheConfig 选择响应缓存后端及其新鲜度窗口。
type CacheConfig struct {
	// Backend is "memory" or "redis"
	// Backend 为 "memory" 或 "redis"
	Backend string `json:"backend" yaml:"backend"`

	// MaxEntries bounds the memory backend (0 = unlimited)
	// MaxEntries 限制内存后端的条目数（0 = 无限制）
	MaxEntries int `json:"max_entries" yaml:"max_entries" mapstructure:"max_entries"`

	// ListTTL is the freshness window for list pages
	// ListTTL 是列表页的新鲜度窗口
	ListTTL time.Duration `json:"list_ttl" yaml:"list_ttl" mapstructure:"list_ttl"`

	// DetailTTL is the freshness window for single advertisements
	// DetailTTL 是单个广告的新鲜度窗口
	DetailTTL time.Duration `json:"detail_ttl" yaml:"detail_ttl" mapstructure:"detail_ttl"`
}

// RedisConfig configures the Redis cache backend.
//
// RedisConfig 配置Redis缓存后端。
type RedisConfig struct {
	// Addr is the host:port of the Redis server
	// Addr 是Redis服务器的 host:port
	Addr string `json:"addr" yaml:"addr"`

	// Password is the Redis password; empty means none
	// Password 是Redis密码；为空表示无密码
	Password string `json:"password" yaml:"password"`

	// DB is the Redis database index
	// DB 是Redis数据库索引
	DB int `json:"db" yaml:"db"`

	// Prefix namespaces every key written by this client
	// Prefix 为该客户端写入的每个键加上命名空间
	Prefix string `json:"prefix" yaml:"prefix"`
}

// ListConfig tunes the listing behavior.
//
// ListConfig 调节列表行为。
type ListConfig struct {
	// SearchDelay is the debounce delay before a search commits
	// SearchDelay 是搜索提交前的防抖延迟
	SearchDelay time.Duration `json:"search_delay" yaml:"search_delay" mapstructure:"search_delay"`
}

// LogConfig contains settings for logging.
//
// LogConfig 包含日志设置。
type LogConfig struct {
	// Mode is "debug" for console output or "release" for file output
	// Mode 为 "debug"（控制台输出）或 "release"（文件输出）
	Mode string `json:"mode" yaml:"mode"`

	// Dir is the log directory; empty means ./logs
	// Dir 是日志目录；为空表示 ./logs
	Dir string `json:"dir" yaml:"dir"`

	// Filename is the log file name within Dir
	// Filename 是 Dir 内的日志文件名
	Filename string `json:"filename" yaml:"filename"`

	// MaxSizeMB is the rotation size in megabytes
	// MaxSizeMB 是滚动大小（MB）
	MaxSizeMB int `json:"max_size_mb" yaml:"max_size_mb" mapstructure:"max_size_mb"`

	// MaxBackups is the number of rotated files to keep
	// MaxBackups 是保留的滚动文件数量
	MaxBackups int `json:"max_backups" yaml:"max_backups" mapstructure:"max_backups"`

	// MaxAgeDays is the retention period in days
	// MaxAgeDays 是保留期限（天）
	MaxAgeDays int `json:"max_age_days" yaml:"max_age_days" mapstructure:"max_age_days"`

	// Compress enables gzip of rotated files
	// Compress 启用滚动文件的gzip压缩
	Compress bool `json:"compress" yaml:"compress"`
}

// DefaultConfig returns a new Config with default values.
// This provides a starting point with reasonable defaults for all
// settings, which can then be customized as needed.
//
// DefaultConfig 返回具有默认值的新Config。
// 这为所有设置提供了具有合理默认值的配置起点，
// 然后可以根据需要进行自定义。
//
// Returns:
//   - *Config: A new configuration instance with default values
//
// 返回：
//   - *Config: 具有默认值的新配置实例
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   "http://localhost:3001",
			Timeout:   15 * time.Second,
			PageLimit: 10,
		},
		Cache: CacheConfig{
			Backend:    "memory",
			MaxEntries: 10000,
			ListTTL:    30 * time.Second,
			DetailTTL:  2 * time.Minute,
		},
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: "admod",
		},
		List: ListConfig{
			SearchDelay: 500 * time.Millisecond,
		},
		Log: LogConfig{
			Mode:       "release",
			Filename:   "admod.log",
			MaxSizeMB:  50,
			MaxBackups: 5,
			MaxAgeDays: 14,
			Compress:   true,
		},
		Extra: make(map[string]interface{}),
	}
}

// LoadFromFile loads configuration from a file.
// It supports both YAML and JSON formats, automatically
// detecting the format based on the file extension.
//
// LoadFromFile 从文件加载配置。
// 它支持YAML和JSON格式，根据文件扩展名自动检测格式。
//
// Parameters:
//   - filename: Path to the configuration file
//
// Returns:
//   - *Config: The loaded configuration
//   - error: An error if loading fails
//
// 参数：
//   - filename: 配置文件的路径
//
// 返回：
//   - *Config: 加载的配置
//   - error: 如果加载失败则返回错误
func LoadFromFile(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration file: %w", err)
	}
	defer file.Close()

	return LoadFromReader(file, strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), "."))
}

// LoadFromReader loads configuration from an io.Reader.
// This allows loading configuration from sources other than files,
// such as network streams or in-memory data.
//
// LoadFromReader 从io.Reader加载配置。
// 这允许从文件以外的源加载配置，如网络流或内存中的数据。
//
// Parameters:
//   - r: The reader providing the configuration data
//   - format: The format of the data ("json", "yaml", or "yml")
//
// Returns:
//   - *Config: The loaded configuration
//   - error: An error if loading fails
func LoadFromReader(r io.Reader, format string) (*Config, error) {
	config := DefaultConfig()
	var err error

	switch strings.ToLower(format) {
	case "yaml", "yml":
		err = yaml.NewDecoder(r).Decode(config)
	case "json":
		err = json.NewDecoder(r).Decode(config)
	default:
		return nil, fmt.Errorf("unsupported configuration format: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a file.
// It supports both YAML and JSON formats, automatically
// selecting the format based on the file extension.
//
// SaveToFile 将配置保存到文件。
// 它支持YAML和JSON格式，根据文件扩展名自动选择格式。
//
// Parameters:
//   - filename: Path where the configuration will be saved
//
// Returns:
//   - error: An error if saving fails
func (c *Config) SaveToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create configuration file: %w", err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".yaml", ".yml":
		encoder := yaml.NewEncoder(file)
		defer encoder.Close()
		err = encoder.Encode(c)
	case ".json":
		encoder := json.NewEncoder(file)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(c)
	default:
		return fmt.Errorf("unsupported configuration file format: %s", ext)
	}

	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	return nil
}

// Validate validates the configuration.
// It checks that all settings have valid values and
// that there are no conflicts or inconsistencies.
//
// Validate 验证配置。
// 它检查所有设置是否具有有效值，并且没有冲突或不一致。
//
// Returns:
//   - error: An error describing the validation failure, or nil if valid
func (c *Config) Validate() error {
	// Validate API settings
	// 验证API设置
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	if c.API.PageLimit < 1 || c.API.PageLimit > 100 {
		return fmt.Errorf("api.page_limit must be between 1 and 100")
	}

	// Validate cache settings
	// 验证缓存设置
	switch c.Cache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("cache.backend must be \"memory\" or \"redis\"")
	}
	if c.Cache.MaxEntries < 0 {
		return fmt.Errorf("cache.max_entries must be non-negative")
	}
	if c.Cache.ListTTL <= 0 {
		return fmt.Errorf("cache.list_ttl must be positive")
	}
	if c.Cache.DetailTTL <= 0 {
		return fmt.Errorf("cache.detail_ttl must be positive")
	}

	// Validate Redis settings when selected
	// 选用Redis时验证其设置
	if c.Cache.Backend == "redis" {
		if strings.TrimSpace(c.Redis.Addr) == "" {
			return fmt.Errorf("redis.addr must not be empty")
		}
		if c.Redis.DB < 0 {
			return fmt.Errorf("redis.db must be non-negative")
		}
	}

	// Validate list settings
	// 验证列表设置
	if c.List.SearchDelay < 0 {
		return fmt.Errorf("list.search_delay must be non-negative")
	}

	// Validate log settings
	// 验证日志设置
	switch c.Log.Mode {
	case "debug", "release":
	default:
		return fmt.Errorf("log.mode must be \"debug\" or \"release\"")
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation settings must be non-negative")
	}

	return nil
}
