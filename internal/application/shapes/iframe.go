package shapes

import (
	"fmt"
	"html"

	"github.com/lite-lake/boardkit/internal/application/session"
	"github.com/lite-lake/boardkit/internal/domain"
	"github.com/lite-lake/boardkit/internal/domain/entity"
	"github.com/lite-lake/boardkit/internal/domain/valueobject"
)

const IframeTypeName = "IframeShapeUtil"

type IframeSettings struct {
	DefaultURL string
	Width      float64
	Height     float64
	Sandbox    string
}

func DefaultIframeSettings() IframeSettings {
	return IframeSettings{
		DefaultURL: domain.DefaultIframeURL,
		Width:      domain.DefaultIframeWidth,
		Height:     domain.DefaultIframeHeight,
		Sandbox:    domain.DefaultIframeSandbox,
	}
}

type IframeShapeUtil struct {
	BaseUtil
	settings IframeSettings
	binding  *metaBinding
	opts     options
}

func NewIframeShapeUtil(hub *session.Hub, settings IframeSettings, opts ...Option) *IframeShapeUtil {
	def := DefaultIframeSettings()
	if settings.DefaultURL == "" {
		settings.DefaultURL = def.DefaultURL
	}
	if settings.Width <= 0 || settings.Height <= 0 {
		settings.Width, settings.Height = def.Width, def.Height
	}
	if settings.Sandbox == "" {
		settings.Sandbox = def.Sandbox
	}

	u := &IframeShapeUtil{settings: settings, opts: buildOptions(opts)}
	u.binding = bindInitialMeta(hub, domain.ShapeTypeIframe, u.initialMeta)
	return u
}

func (u *IframeShapeUtil) initialMeta(shape *entity.Shape) valueobject.Meta {
	if shape.Type != domain.ShapeTypeIframe {
		return nil
	}
	now := valueobject.NowMillis(u.opts.now())
	return valueobject.Meta{
		valueobject.MetaKeyTypeName: IframeTypeName,
		valueobject.MetaKeyCreateAt: now,
		valueobject.MetaKeyUpdateAt: now,
	}
}

func (u *IframeShapeUtil) Type() string { return domain.ShapeTypeIframe }

func (u *IframeShapeUtil) DefaultProps() entity.Props {
	return entity.IframeProps{
		URL: u.settings.DefaultURL,
		W:   u.settings.Width,
		H:   u.settings.Height,
	}.Props()
}

func (u *IframeShapeUtil) Validate(props entity.Props) error {
	return entity.IframePropsFrom(props).Validate()
}

func (u *IframeShapeUtil) Geometry(shape *entity.Shape) valueobject.Rect {
	return rectangle(shape)
}

func (u *IframeShapeUtil) CanBind() bool { return false }

func (u *IframeShapeUtil) OnResize(shape *entity.Shape, info valueobject.ResizeInfo) *entity.Shape {
	return resizeBox(shape, info)
}

func (u *IframeShapeUtil) Render(shape *entity.Shape) string {
	p := entity.IframePropsFrom(shape.Props)
	return fmt.Sprintf(
		`<div class="tl-html-container"><div style="width: %spx; height: %spx; pointer-events: all">`+
			`<iframe src="%s" style="width: 100%%; height: 100%%; border: none" sandbox="%s"></iframe></div></div>`,
		formatPx(p.W), formatPx(p.H), html.EscapeString(p.URL), html.EscapeString(u.settings.Sandbox),
	)
}

func (u *IframeShapeUtil) Close() {
	u.binding.close()
}
