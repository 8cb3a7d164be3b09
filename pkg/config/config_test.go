package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("MOVIEMATCH_TEST_DB_PASSWORD", "s3cret")

	path := writeConfig(t, `
db_creds:
  host: localhost
  username: movies
  password: ${MOVIEMATCH_TEST_DB_PASSWORD}
  database: moviematch
recommend:
  max_top_n: 50
logging:
  env: dev
  level: debug
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.DBCreds.Password != "s3cret" {
		t.Errorf("DBCreds.Password = %q, want expanded env value", cfg.DBCreds.Password)
	}
	if cfg.DBCreds.Port != "5432" {
		t.Errorf("DBCreds.Port = %q, want default 5432", cfg.DBCreds.Port)
	}
	if cfg.Server.Address != ":8080" {
		t.Errorf("Server.Address = %q, want :8080", cfg.Server.Address)
	}
	if cfg.Recommend.DefaultTopN != 5 || cfg.Recommend.MaxTopN != 50 {
		t.Errorf("Recommend = %+v, want default_top_n 5 and max_top_n 50", cfg.Recommend)
	}
	if cfg.Recommend.TimeoutSeconds != 30 {
		t.Errorf("Recommend.TimeoutSeconds = %d, want 30", cfg.Recommend.TimeoutSeconds)
	}
	if cfg.Logging.Env != "dev" || cfg.Logging.Level != "debug" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing host",
			body:    "db_creds:\n  database: moviematch\n",
			wantErr: "db_creds.host",
		},
		{
			name:    "missing database",
			body:    "db_creds:\n  host: localhost\n",
			wantErr: "db_creds.database",
		},
		{
			name:    "default exceeds max",
			body:    "db_creds:\n  host: localhost\n  database: m\nrecommend:\n  default_top_n: 20\n  max_top_n: 10\n",
			wantErr: "exceeds",
		},
		{
			name:    "negative max",
			body:    "db_creds:\n  host: localhost\n  database: m\nrecommend:\n  max_top_n: -1\n",
			wantErr: "max_top_n",
		},
		{
			name:    "unknown logging env",
			body:    "db_creds:\n  host: localhost\n  database: m\nlogging:\n  env: staging\n",
			wantErr: "logging.env",
		},
		{
			name:    "bad yaml",
			body:    "db_creds: [",
			wantErr: "unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("LoadConfig() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig() on a missing file should fail")
	}
}

func TestLoadUsesConfigPath(t *testing.T) {
	path := writeConfig(t, "db_creds:\n  host: db\n  database: moviematch\n")
	t.Setenv("CONFIG_PATH", path)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBCreds.Host != "db" {
		t.Errorf("DBCreds.Host = %q, want db", cfg.DBCreds.Host)
	}
}
