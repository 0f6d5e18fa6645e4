package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lite-lake/boardkit/internal/domain"
	"github.com/lite-lake/boardkit/internal/domain/entity"
)

const FileName = "boardkit.yaml"

type IframeConfig struct {
	DefaultURL string  `yaml:"default_url"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Sandbox    string  `yaml:"sandbox"`
}

type CardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ToolbarConfig struct {
	PendingDelay time.Duration `yaml:"pending_delay"`
	ZoomDuration time.Duration `yaml:"zoom_duration"`
}

type RetryConfig struct {
	MaxAttempts  int           `yaml:"max_attempts"`
	InitialDelay time.Duration `yaml:"initial_delay"`
}

type Config struct {
	Document string        `yaml:"document"`
	Iframe   IframeConfig  `yaml:"iframe"`
	Card     CardConfig    `yaml:"card"`
	Toolbar  ToolbarConfig `yaml:"toolbar"`
	Retry    RetryConfig   `yaml:"retry"`
}

func Default() *Config {
	return &Config{
		Document: "board.yaml",
		Iframe: IframeConfig{
			DefaultURL: domain.DefaultIframeURL,
			Width:      domain.DefaultIframeWidth,
			Height:     domain.DefaultIframeHeight,
			Sandbox:    domain.DefaultIframeSandbox,
		},
		Card: CardConfig{
			Width:  domain.DefaultCardWidth,
			Height: domain.DefaultCardHeight,
		},
		Toolbar: ToolbarConfig{
			PendingDelay: domain.DefaultPendingDelay,
			ZoomDuration: domain.DefaultZoomDuration,
		},
		Retry: RetryConfig{
			MaxAttempts:  domain.DefaultRetryMaxAttempts,
			InitialDelay: domain.DefaultRetryInitialDelay,
		},
	}
}

type Loader struct {
	baseDir string
}

func NewLoader(baseDir string) *Loader {
	return &Loader{baseDir: baseDir}
}

func (l *Loader) Path() string {
	return filepath.Join(l.baseDir, FileName)
}

// Load overlays boardkit.yaml on the defaults. A missing file is not an error.
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(l.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", l.Path(), domain.ErrConfigReadFailed)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w: %v", l.Path(), domain.ErrConfigParseFailed, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", l.Path(), err)
	}
	return cfg, nil
}

// DocumentPath resolves the document file relative to the config directory.
func (l *Loader) DocumentPath(cfg *Config) string {
	if filepath.IsAbs(cfg.Document) {
		return cfg.Document
	}
	return filepath.Join(l.baseDir, cfg.Document)
}

func (c *Config) Validate() error {
	if c.Document == "" {
		return fmt.Errorf("%w: %w", domain.ErrConfigValidateFail, domain.RequiredField("document"))
	}
	if err := entity.ValidateEmbedURL(c.Iframe.DefaultURL); err != nil {
		return fmt.Errorf("%w: iframe.default_url: %w", domain.ErrConfigValidateFail, err)
	}
	if c.Iframe.Width <= 0 || c.Iframe.Height <= 0 {
		return fmt.Errorf("%w: iframe size: %w", domain.ErrConfigValidateFail, domain.ErrInvalidSize)
	}
	if c.Card.Width <= 0 || c.Card.Height <= 0 {
		return fmt.Errorf("%w: card size: %w", domain.ErrConfigValidateFail, domain.ErrInvalidSize)
	}
	if c.Toolbar.PendingDelay < 0 || c.Toolbar.ZoomDuration < 0 {
		return fmt.Errorf("%w: toolbar durations must not be negative", domain.ErrConfigValidateFail)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("%w: retry.max_attempts must be at least 1", domain.ErrConfigValidateFail)
	}
	return nil
}
