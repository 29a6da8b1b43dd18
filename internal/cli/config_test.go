package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/pipremove/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
protected = ["virtualenv", "My_Tool"]
strict = true
assume_yes = false
python = "/usr/bin/python3.12"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if !reflect.DeepEqual(cfg.Protected, []string{"virtualenv", "My_Tool"}) {
		t.Errorf("Protected = %v", cfg.Protected)
	}
	if !cfg.Strict {
		t.Error("Strict = false, want true")
	}
	if cfg.AssumeYes {
		t.Error("AssumeYes = true, want false")
	}
	if cfg.Python != "/usr/bin/python3.12" {
		t.Errorf("Python = %q", cfg.Python)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if !reflect.DeepEqual(cfg, Config{}) {
		t.Errorf("cfg = %+v, want zero value", cfg)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("protected = not-a-list"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := loadConfig(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error = %v", err)
	}
	if dir != filepath.Join("/tmp/xdg", appName) {
		t.Errorf("configDir() = %q", dir)
	}
}
