package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoad_Defaults(t *testing.T) {
	p := writeConfig(t, `server: {}
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.HTTPPort != DefaultHTTPPort {
		t.Errorf("http_port: got %d, want %d", cfg.Server.HTTPPort, DefaultHTTPPort)
	}
	if cfg.Server.StreamInterval != DefaultStreamInterval {
		t.Errorf("stream_interval: got %v, want %v", cfg.Server.StreamInterval, DefaultStreamInterval)
	}
	if got := len(cfg.SiteList()); got != 5 {
		t.Errorf("SiteList: got %d default sites, want 5", got)
	}
}

func TestLoad_Full(t *testing.T) {
	p := writeConfig(t, `server:
  http_port: 9090
  base_url: https://kpi.example.com/
  stream_interval: 10s
sites:
  - site_id: oulu-lab
    name: Oulu Lab Kitchen
    region: Pohjois-Pohjanmaa
    segment: workplace
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.HTTPPort != 9090 {
		t.Errorf("http_port: got %d, want 9090", cfg.Server.HTTPPort)
	}
	if cfg.Server.StreamInterval != 10*time.Second {
		t.Errorf("stream_interval: got %v, want 10s", cfg.Server.StreamInterval)
	}
	if got := cfg.Server.EffectiveBaseURL(); got != "https://kpi.example.com" {
		t.Errorf("EffectiveBaseURL: got %q, want trailing slash stripped", got)
	}

	list := cfg.SiteList()
	if len(list) != 1 || list[0].SiteID != "oulu-lab" {
		t.Errorf("SiteList: got %+v, want single oulu-lab entry", list)
	}
}

func TestEffectiveBaseURL_Default(t *testing.T) {
	s := ServerConfig{HTTPPort: 8080}
	if got := s.EffectiveBaseURL(); got != "http://localhost:8080" {
		t.Errorf("EffectiveBaseURL: got %q, want http://localhost:8080", got)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"port out of range", "server:\n  http_port: 70000\n"},
		{"negative interval", "server:\n  stream_interval: -1s\n"},
		{"empty site id", "sites:\n  - name: No ID\n"},
		{"duplicate site id", "sites:\n  - site_id: a\n  - site_id: a\n"},
		{"unknown segment", "sites:\n  - site_id: a\n    segment: spaceship\n"},
		{"malformed yaml", "server: [\n"},
	}
	for _, tt := range tests {
		p := writeConfig(t, tt.yaml)
		if _, err := Load(p); err == nil {
			t.Errorf("%s: Load succeeded, want error", tt.name)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load of missing file succeeded, want error")
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	p := writeConfig(t, "server:\n  http_port: 8080\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Config, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = Watch(ctx, p, func(cfg *Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	// Give the watcher a moment to register before rewriting.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(p, []byte("server:\n  http_port: 9999\n"), 0o600); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Server.HTTPPort != 9999 {
			t.Errorf("reloaded http_port: got %d, want 9999", cfg.Server.HTTPPort)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}

	cancel()
	<-done
}

func TestWatch_KeepsPreviousOnBadReload(t *testing.T) {
	p := writeConfig(t, "server:\n  http_port: 8080\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 4)
	go func() {
		_ = Watch(ctx, p, func(*Config) { calls <- struct{}{} })
	}()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(p, []byte("server: ["), 0o600); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case <-calls:
		t.Fatal("onChange called for a config that fails to parse")
	case <-time.After(500 * time.Millisecond):
		// expected: no callback
	}
}
