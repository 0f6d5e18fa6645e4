package shapes

import (
	"github.com/lite-lake/boardkit/internal/application/session"
	"github.com/lite-lake/boardkit/internal/domain"
	"github.com/lite-lake/boardkit/internal/domain/entity"
	"github.com/lite-lake/boardkit/internal/domain/valueobject"
)

const CardTypeName = "CardShape"

type CardShapeUtil struct {
	BaseUtil
	defaults entity.CardProps
	binding  *metaBinding
	opts     options
}

func NewCardShapeUtil(hub *session.Hub, defaults entity.CardProps, opts ...Option) *CardShapeUtil {
	if defaults.W <= 0 || defaults.H <= 0 {
		defaults = entity.CardProps{W: domain.DefaultCardWidth, H: domain.DefaultCardHeight}
	}
	u := &CardShapeUtil{defaults: defaults, opts: buildOptions(opts)}
	u.binding = bindInitialMeta(hub, domain.ShapeTypeCard, u.initialMeta)
	return u
}

func (u *CardShapeUtil) initialMeta(shape *entity.Shape) valueobject.Meta {
	if shape.Type != domain.ShapeTypeCard {
		return nil
	}
	return valueobject.Meta{
		valueobject.MetaKeyTypeName: CardTypeName,
		valueobject.MetaKeyCreateAt: valueobject.NowMillis(u.opts.now()),
	}
}

func (u *CardShapeUtil) Type() string { return domain.ShapeTypeCard }

func (u *CardShapeUtil) DefaultProps() entity.Props {
	return u.defaults.Props()
}

func (u *CardShapeUtil) Validate(props entity.Props) error {
	return entity.CardPropsFrom(props).Validate()
}

func (u *CardShapeUtil) Geometry(shape *entity.Shape) valueobject.Rect {
	return rectangle(shape)
}

func (u *CardShapeUtil) Render(*entity.Shape) string {
	return `<div class="tl-html-container">Hello</div>`
}

func (u *CardShapeUtil) Close() {
	u.binding.close()
}
