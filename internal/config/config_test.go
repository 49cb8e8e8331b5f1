package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		aspect  string
		wantErr bool
	}{
		{name: "empty", aspect: "", wantErr: false},
		{name: "wide", aspect: "16:9", wantErr: false},
		{name: "classic", aspect: "4:3", wantErr: false},
		{name: "bogus", aspect: "21:9", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Config{Aspect: tt.aspect}
			err := cfg.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidAspect) {
				t.Errorf("err = %v, want ErrInvalidAspect", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("err = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file by path", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "theme: light\ncodeTheme: dracula\naspect: \"4:3\"\noutputDir: /tmp/decks\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if cfg.Theme != "light" {
			t.Errorf("Theme = %q, want %q", cfg.Theme, "light")
		}
		if cfg.CodeTheme != "dracula" {
			t.Errorf("CodeTheme = %q, want %q", cfg.CodeTheme, "dracula")
		}
		if cfg.Aspect != "4:3" {
			t.Errorf("Aspect = %q, want %q", cfg.Aspect, "4:3")
		}
		if cfg.OutputDir != "/tmp/decks" {
			t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "/tmp/decks")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("err = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "theme: [unclosed\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("err = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "theme: dark\nmystery: value\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("err = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid aspect rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "aspect: \"1:1\"\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidAspect) {
			t.Errorf("err = %v, want ErrInvalidAspect", err)
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("DefaultConfig() = %+v, want zero value", *cfg)
	}
}

// writeConfig drops YAML content into a temp file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}
