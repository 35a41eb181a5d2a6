package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	filename := filepath.Join(dir, "cardmap.conf")
	if err := ioutil.WriteFile(filename, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestParseMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Parse(filepath.Join(os.TempDir(), "does-not-exist.conf"))
	if err == nil {
		t.Error("Parse() expected advisory error for missing file")
	}
	if cfg.Consul.FlpHardwarePath != "o2/hardware/flps" {
		t.Errorf("Parse() hardware path = %q", cfg.Consul.FlpHardwarePath)
	}
	if cfg.Consul.Address != "" {
		t.Errorf("Parse() consul address = %q, want unset", cfg.Consul.Address)
	}
}

func TestParseMalformedFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Parse(writeConfig(t, `consul { address = `))
	if err == nil {
		t.Error("Parse() expected advisory error for malformed file")
	}
	if cfg.Web.Listen != ":8084" {
		t.Errorf("Parse() listen = %q", cfg.Web.Listen)
	}
}

func TestParsePartialSettingsKeepDefaults(t *testing.T) {
	cfg, err := Parse(writeConfig(t, `
consul {
  address = "localhost:8500"
  hostname = "localhost"
}
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Consul.Address != "localhost:8500" {
		t.Errorf("Parse() address = %q", cfg.Consul.Address)
	}
	if cfg.Consul.Hostname != "localhost" {
		t.Errorf("Parse() hostname = %q", cfg.Consul.Hostname)
	}
	if cfg.Consul.Port != 0 {
		t.Errorf("Parse() port = %d, want unset", cfg.Consul.Port)
	}
	if cfg.Consul.ReadoutPath != "o2/components/readoutcard" {
		t.Errorf("Parse() readout path = %q", cfg.Consul.ReadoutPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Parse() log level = %q", cfg.LogLevel)
	}
}
