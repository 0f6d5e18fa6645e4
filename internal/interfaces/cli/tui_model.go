package cli

import (
	"context"

	"github.com/charmbracelet/bubbletea"

	"github.com/lite-lake/boardkit/internal/application/action"
	"github.com/lite-lake/boardkit/internal/application/usecase"
	"github.com/lite-lake/boardkit/internal/domain/entity"
)

const urlInputWidth = 32

type ViewState int

const (
	ViewStateToolbar ViewState = iota
	ViewStatePopover
)

type ToolbarButton int

const (
	ButtonCreateIframe ToolbarButton = iota
	ButtonCreateCard
)

var toolbarButtons = []struct {
	Button ToolbarButton
	Label  string
}{
	{ButtonCreateIframe, "Create IFrame"},
	{ButtonCreateCard, "Create Card"},
}

type (
	actionStateMsg   struct{ State action.State }
	popoverClosedMsg struct{}
	shapeCreatedMsg  struct{ Shape *entity.Shape }
	actionErrorMsg   struct{ Err error }
)

// tuiRuntime is shared by every copy of the model; bubbletea passes Model by value.
type tuiRuntime struct {
	ctx     context.Context
	cancel  context.CancelFunc
	updates chan tea.Msg
	toolbar *usecase.Toolbar
	submit  *action.Runner[string]
}

func (rt *tuiRuntime) send(msg tea.Msg) {
	select {
	case rt.updates <- msg:
	case <-rt.ctx.Done():
	}
}

func (rt *tuiRuntime) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-rt.updates:
			return msg
		case <-rt.ctx.Done():
			return nil
		}
	}
}

type Model struct {
	Board     *Board
	ViewState ViewState
	Cursor    int
	Input     []rune

	Working bool
	Pending bool

	StatusMessage string
	ErrorMessage  string

	Width  int
	Height int

	rt *tuiRuntime
}

func NewModel(parent context.Context, b *Board) Model {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	rt := &tuiRuntime{
		ctx:     ctx,
		cancel:  cancel,
		updates: make(chan tea.Msg, 16),
	}
	rt.toolbar = usecase.NewToolbar(&usecase.ToolbarConfig{
		Hub:          b.Hub,
		ZoomDuration: b.Config.Toolbar.ZoomDuration,
		OnClose:      func() { rt.send(popoverClosedMsg{}) },
	})
	rt.submit = action.NewRunner(
		func(ctx context.Context, url string) error {
			shape, err := rt.toolbar.CreateIframe(ctx, url)
			if err != nil || shape == nil {
				return err
			}
			if err := b.Save(ctx); err != nil {
				return err
			}
			rt.send(shapeCreatedMsg{Shape: shape})
			return nil
		},
		action.WithDelay[string](b.Config.Toolbar.PendingDelay),
		action.WithOnChange[string](func(s action.State) { rt.send(actionStateMsg{State: s}) }),
		action.WithErrorHandler[string](func(err error) { rt.send(actionErrorMsg{Err: err}) }),
	)

	return Model{
		Board:     b,
		ViewState: ViewStateToolbar,
		rt:        rt,
	}
}

func (m Model) Init() tea.Cmd {
	return m.rt.waitForUpdate()
}

func (m Model) createCard() tea.Cmd {
	b := m.Board
	rt := m.rt
	return func() tea.Msg {
		shape, err := rt.toolbar.CreateCard(rt.ctx)
		if err == nil {
			err = b.Save(rt.ctx)
		}
		if err != nil {
			return actionErrorMsg{Err: err}
		}
		return shapeCreatedMsg{Shape: shape}
	}
}

func (m Model) shutdown() {
	m.rt.cancel()
	m.rt.submit.Close()
}
