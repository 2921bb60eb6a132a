package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BACKEND_HOST", "PORT", "BACKEND_PORT", "DB_DRIVER", "DATABASE_URL", "DEBUG",
		"FRONTEND_URL", "CORS_ORIGINS", "LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT",
		"LOG_MAX_AGE", "DATA_DIR", "JWT_SECRET", "CHART_WINDOW",
	} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("driver = %q", cfg.Database.Driver)
	}
	if !strings.HasPrefix(cfg.Database.URL, "postgresql://") {
		t.Errorf("url = %q", cfg.Database.URL)
	}
	if cfg.Chart.DefaultWindow != 90*24*time.Hour {
		t.Errorf("window = %s", cfg.Chart.DefaultWindow)
	}
	if cfg.Admin.JWTSecret != "" {
		t.Error("admin secret should default to empty")
	}
	if got := cfg.Addr(); got != "0.0.0.0:8000" {
		t.Errorf("addr = %s", got)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BACKEND_PORT", "9100")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "stride.db")
	t.Setenv("DEBUG", "true")
	t.Setenv("CHART_WINDOW", "720h")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" || cfg.Database.URL != "stride.db" || !cfg.Database.Debug {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.Chart.DefaultWindow != 30*24*time.Hour {
		t.Errorf("window = %s", cfg.Chart.DefaultWindow)
	}
	if cfg.Admin.JWTSecret != "s3cret" {
		t.Errorf("secret = %q", cfg.Admin.JWTSecret)
	}
}

func TestLoadPortPrefersPORT(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")
	t.Setenv("BACKEND_PORT", "9100")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("port = %d, want 7000", cfg.Server.Port)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	content := `
server:
  port: 8088
database:
  driver: mysql
  url: "user:pass@tcp(localhost:3306)/stride?parseTime=true"
logging:
  level: debug
  format: text
data:
  dir: ./fixtures
`
	tmpfile, err := os.CreateTemp("", "stride-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()
	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8088 || cfg.Database.Driver != "mysql" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Logging.Format != "text" || cfg.Data.Dir != "./fixtures" {
		t.Errorf("unexpected logging/data %+v %+v", cfg.Logging, cfg.Data)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load("/nonexistent/stride.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:   ServerConfig{Host: "localhost", Port: 8000},
			Database: DatabaseConfig{Driver: "postgres", URL: "postgresql://x"},
			Logging:  LoggingConfig{Level: "info", Format: "json"},
			Chart:    ChartConfig{DefaultWindow: time.Hour},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, true},
		{"unknown driver", func(c *Config) { c.Database.Driver = "oracle" }, true},
		{"empty url", func(c *Config) { c.Database.URL = "" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"zero window", func(c *Config) { c.Chart.DefaultWindow = 0 }, true},
		{"negative pool", func(c *Config) { c.Database.MaxOpenConns = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAllowedOrigins(t *testing.T) {
	c := CORSConfig{
		FrontendURL:  "https://stride.example.com",
		ExtraOrigins: " https://a.example.com, ,http://localhost:3000,https://b.example.com",
	}
	got := c.AllowedOrigins()
	want := []string{
		"https://stride.example.com",
		"http://localhost:5173",
		"http://localhost:3000",
		"http://localhost:3001",
		"https://a.example.com",
		"https://b.example.com",
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v\nwant %v", got, want)
	}
}
