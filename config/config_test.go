package config

import (
	"os"
	"path/filepath"
	"testing"
)

// fakeFS is a FileSystem stub that reports canned paths as existing and
// records .env loads.
type fakeFS struct {
	existing map[string]bool
	loaded   []string
}

func (f *fakeFS) Exists(path string) bool { return f.existing[path] }

func (f *fakeFS) LoadEnv(path string) error {
	f.loaded = append(f.loaded, path)
	return nil
}

func TestLoadDefaultsWithoutFiles(t *testing.T) {
	cfg := &ServiceConfig{}
	err := Load("regtest", cfg, WithFileSystem(&fakeFS{existing: map[string]bool{}}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Name != "regtest" {
		t.Errorf("expected name fallback to the service name, got %q", cfg.Name)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected default environment, got %q", cfg.Environment)
	}
	if !cfg.Debug {
		t.Error("expected debug to default on in development")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Errorf("expected logging defaults, got %+v", cfg.Logging)
	}
	if cfg.Logging.ServiceName != "regtest" {
		t.Errorf("expected logging service name to follow the config name, got %q", cfg.Logging.ServiceName)
	}
}

func TestLoadFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := []byte(`
name: registry-svc
environment: production
version: "1.2.3"
logging:
  level: warn
  format: json
registry:
  capacity_hint: 32
  warn_on_replace: true
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg := &ServiceConfig{}
	if err := Load("regtest", cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Name != "registry-svc" {
		t.Errorf("expected name from file, got %q", cfg.Name)
	}
	if cfg.Environment != "production" {
		t.Errorf("expected environment from file, got %q", cfg.Environment)
	}
	if cfg.Debug {
		t.Error("expected debug off outside development")
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("expected logging from file, got %+v", cfg.Logging)
	}
	if cfg.Registry.CapacityHint != 32 || !cfg.Registry.WarnOnReplace {
		t.Errorf("expected registry settings from file, got %+v", cfg.Registry)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := []byte(`
name: registry-svc
environment: development
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	t.Setenv("REGKIT_ENVIRONMENT", "staging")

	cfg := &ServiceConfig{}
	if err := Load("regtest", cfg, WithConfigFile(path), WithEnvPrefix("REGKIT")); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Environment != "staging" {
		t.Errorf("expected the environment variable to win, got %q", cfg.Environment)
	}
}

func TestLoadInvalidEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("environment: qa\n"), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg := &ServiceConfig{}
	if err := Load("regtest", cfg, WithConfigFile(path)); err == nil {
		t.Error("expected a validation error for an unknown environment")
	}
}

func TestLoadEnvFileDiscovery(t *testing.T) {
	fs := &fakeFS{existing: map[string]bool{".env.regtest": true}}
	cfg := &ServiceConfig{}
	if err := Load("regtest", cfg, WithFileSystem(fs)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(fs.loaded) != 1 || fs.loaded[0] != ".env.regtest" {
		t.Errorf("expected the service-specific env file to be loaded, got %v", fs.loaded)
	}
}

type appConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`
	CacheDir      string `yaml:"cache_dir" mapstructure:"cache_dir"`
}

func TestLoadEmbeddedConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := []byte(`
name: embedded-svc
environment: staging
cache_dir: /var/cache/regkit
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg := &appConfig{}
	if err := Load("regtest", cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "embedded-svc" {
		t.Errorf("expected promoted base fields, got %q", cfg.Name)
	}
	if cfg.CacheDir != "/var/cache/regkit" {
		t.Errorf("expected the embedding struct's own fields, got %q", cfg.CacheDir)
	}
}

func TestFindFirst(t *testing.T) {
	fs := &fakeFS{existing: map[string]bool{"b": true, "c": true}}
	if got := findFirst(fs, "a", "b", "c"); got != "b" {
		t.Errorf("expected first existing path 'b', got %q", got)
	}
	if got := findFirst(fs, "x", "y"); got != "" {
		t.Errorf("expected empty result, got %q", got)
	}
}

func TestServiceConfigValidate(t *testing.T) {
	cfg := &ServiceConfig{Name: "svc", Environment: "production"}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	bad := &ServiceConfig{Name: "svc", Environment: "production"}
	bad.ApplyDefaults()
	bad.Logging.Level = "verbose"
	if err := bad.Validate(); err == nil {
		t.Error("expected a logging validation error")
	}
}
