package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lite-lake/boardkit/internal/domain"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader(t.TempDir()).Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	if cfg.Iframe.DefaultURL != domain.DefaultIframeURL {
		t.Errorf("default url = %s", cfg.Iframe.DefaultURL)
	}
	if cfg.Toolbar.PendingDelay != 300*time.Millisecond {
		t.Errorf("pending delay = %v", cfg.Toolbar.PendingDelay)
	}
}

func TestLoader_OverlaysFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
document: boards/main.yaml
iframe:
  default_url: https://example.com/
  width: 800
toolbar:
  pending_delay: 50ms
`)

	l := NewLoader(dir)
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	if cfg.Iframe.DefaultURL != "https://example.com/" || cfg.Iframe.Width != 800 {
		t.Errorf("iframe = %+v", cfg.Iframe)
	}
	if cfg.Iframe.Height != domain.DefaultIframeHeight {
		t.Errorf("unset height should keep the default, got %g", cfg.Iframe.Height)
	}
	if cfg.Toolbar.PendingDelay != 50*time.Millisecond {
		t.Errorf("pending delay = %v", cfg.Toolbar.PendingDelay)
	}
	if got := l.DocumentPath(cfg); got != filepath.Join(dir, "boards", "main.yaml") {
		t.Errorf("DocumentPath() = %s", got)
	}
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "bad yaml", body: "iframe: [", wantErr: domain.ErrConfigParseFailed},
		{name: "bad url", body: "iframe:\n  default_url: not-a-url\n", wantErr: domain.ErrInvalidURL},
		{name: "bad size", body: "card:\n  width: -5\n", wantErr: domain.ErrInvalidSize},
		{name: "no document", body: "document: \"\"\n", wantErr: domain.ErrRequired},
		{name: "no attempts", body: "retry:\n  max_attempts: 0\n", wantErr: domain.ErrConfigValidateFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.body)
			_, err := NewLoader(dir).Load()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
