package configs

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if err := config.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if config.API.PageLimit != 10 {
		t.Errorf("unexpected default page limit: %d", config.API.PageLimit)
	}
	if config.Cache.Backend != "memory" {
		t.Errorf("unexpected default cache backend: %s", config.Cache.Backend)
	}
	if config.List.SearchDelay != 500*time.Millisecond {
		t.Errorf("unexpected default search delay: %v", config.List.SearchDelay)
	}
}

func TestLoadAndSaveConfig(t *testing.T) {
	tmpDir := t.TempDir()

	for _, ext := range []string{".yaml", ".json"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(tmpDir, "config"+ext)

			original := DefaultConfig()
			original.API.BaseURL = "https://moderation.example/api"
			original.Cache.Backend = "redis"
			original.Redis.Addr = "redis.example:6379"
			original.Cache.ListTTL = time.Minute

			if err := original.SaveToFile(path); err != nil {
				t.Fatalf("save failed: %v", err)
			}
			loaded, err := LoadFromFile(path)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}

			if loaded.API.BaseURL != original.API.BaseURL {
				t.Errorf("base url lost: %s", loaded.API.BaseURL)
			}
			if loaded.Cache.Backend != "redis" || loaded.Redis.Addr != "redis.example:6379" {
				t.Errorf("redis settings lost: %+v", loaded.Redis)
			}
			if loaded.Cache.ListTTL != time.Minute {
				t.Errorf("ttl lost: %v", loaded.Cache.ListTTL)
			}
		})
	}
}

func TestLoadFromReader(t *testing.T) {
	// Durations in plain YAML are integer nanoseconds; the human-readable
	// form is only understood through Viper.
	yamlData := `
api:
  base_url: "https://api.example"
list:
  search_delay: 250000000
`
	config, err := LoadFromReader(strings.NewReader(yamlData), "yaml")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if config.API.BaseURL != "https://api.example" {
		t.Errorf("base url not loaded: %s", config.API.BaseURL)
	}
	if config.List.SearchDelay != 250*time.Millisecond {
		t.Errorf("search delay not loaded: %v", config.List.SearchDelay)
	}
	// Untouched sections keep their defaults.
	if config.API.PageLimit != 10 {
		t.Errorf("defaults lost: %d", config.API.PageLimit)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base url", func(c *Config) { c.API.BaseURL = " " }},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }},
		{"page limit too large", func(c *Config) { c.API.PageLimit = 101 }},
		{"unknown cache backend", func(c *Config) { c.Cache.Backend = "memcached" }},
		{"negative max entries", func(c *Config) { c.Cache.MaxEntries = -1 }},
		{"zero list ttl", func(c *Config) { c.Cache.ListTTL = 0 }},
		{"redis without addr", func(c *Config) {
			c.Cache.Backend = "redis"
			c.Redis.Addr = ""
		}},
		{"negative search delay", func(c *Config) { c.List.SearchDelay = -time.Second }},
		{"unknown log mode", func(c *Config) { c.Log.Mode = "verbose" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			tc.mutate(config)
			if err := config.Validate(); err == nil {
				t.Error("expected validation to fail")
			}
		})
	}
}
