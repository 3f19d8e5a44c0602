package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Server.Port != DefaultPort || c.Addr() != "127.0.0.1:8787" {
		t.Errorf("defaults = %+v", c.Server)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	content := "server:\n  port: 9000\n  allow_origins: [\"http://localhost:3000\"]\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Server.Port != 9000 || c.Log.Level != "debug" || len(c.Server.AllowOrigins) != 1 {
		t.Errorf("file config = %+v", c)
	}

	t.Setenv("DAYLOG_PORT", "9100")
	t.Setenv("DAYLOG_JWT_SECRET", "from-env")
	c, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Server.Port != 9100 || c.Auth.JWTSecret != "from-env" {
		t.Errorf("env overrides not applied: %+v", c)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing explicit file")
	}

	t.Setenv("DAYLOG_PORT", "eighty")
	if _, err := Load(""); err == nil {
		t.Error("Load() should fail for a non-numeric port")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, true},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
