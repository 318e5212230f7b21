package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestViperConfigFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	yamlData := `
api:
  base_url: "https://moderation.example/api"
  timeout: 5s
  page_limit: 20
cache:
  backend: memory
  list_ttl: 45s
  detail_ttl: 3m
list:
  search_delay: 250ms
log:
  mode: debug
`
	if err := os.WriteFile(path, []byte(yamlData), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	vc, err := NewViperConfig(path)
	if err != nil {
		t.Fatalf("NewViperConfig failed: %v", err)
	}

	config := vc.Get()
	if config.API.BaseURL != "https://moderation.example/api" {
		t.Errorf("base url not loaded: %s", config.API.BaseURL)
	}
	if config.API.Timeout != 5*time.Second {
		t.Errorf("timeout not loaded: %v", config.API.Timeout)
	}
	if config.API.PageLimit != 20 {
		t.Errorf("page limit not loaded: %d", config.API.PageLimit)
	}
	if config.Cache.ListTTL != 45*time.Second {
		t.Errorf("list ttl not loaded: %v", config.Cache.ListTTL)
	}
	if config.List.SearchDelay != 250*time.Millisecond {
		t.Errorf("search delay not loaded: %v", config.List.SearchDelay)
	}
	if config.Log.Mode != "debug" {
		t.Errorf("log mode not loaded: %s", config.Log.Mode)
	}
}

func TestViperConfigRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	yamlData := `
cache:
  backend: memcached
`
	if err := os.WriteFile(path, []byte(yamlData), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := NewViperConfig(path); err == nil {
		t.Error("expected an invalid backend to be rejected")
	}
}

func TestConfigsEqual(t *testing.T) {
	a := DefaultConfig()
	b := DefaultConfig()
	if !configsEqual(a, b) {
		t.Error("identical configs must compare equal")
	}
	b.API.PageLimit = 50
	if configsEqual(a, b) {
		t.Error("differing configs must compare unequal")
	}
}
