package entity

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/lite-lake/boardkit/internal/domain"
)

type IframeProps struct {
	URL string  `yaml:"url"`
	W   float64 `yaml:"w"`
	H   float64 `yaml:"h"`
}

func IframePropsFrom(p Props) IframeProps {
	w, _ := p.Float("w")
	h, _ := p.Float("h")
	return IframeProps{URL: p.String("url"), W: w, H: h}
}

func (i IframeProps) Props() Props {
	return Props{"url": i.URL, "w": i.W, "h": i.H}
}

func (i IframeProps) Validate() error {
	if i.URL == "" {
		return domain.RequiredField("url")
	}
	if err := ValidateEmbedURL(i.URL); err != nil {
		return err
	}
	if i.W <= 0 || i.H <= 0 {
		return fmt.Errorf("%w: iframe size must be positive, got %gx%g", domain.ErrInvalidSize, i.W, i.H)
	}
	return nil
}

func ValidateEmbedURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidURL, raw)
	}
	if u.Scheme == "" && !strings.HasPrefix(raw, "/") {
		return fmt.Errorf("%w: missing scheme, try https://%s", domain.ErrInvalidURL, raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https: %s", domain.ErrInvalidURL, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host: %s", domain.ErrInvalidURL, raw)
	}
	return nil
}
