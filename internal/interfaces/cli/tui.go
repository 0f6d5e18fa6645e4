package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil
	case actionStateMsg:
		m.Working = msg.State.Working
		m.Pending = msg.State.Pending
		return m, m.rt.waitForUpdate()
	case popoverClosedMsg:
		m = m.closePopover()
		return m, m.rt.waitForUpdate()
	case shapeCreatedMsg:
		m.ErrorMessage = ""
		m.StatusMessage = fmt.Sprintf("Created %s %s", msg.Shape.Type, msg.Shape.ID.Short())
		return m, m.rt.waitForUpdate()
	case actionErrorMsg:
		m.StatusMessage = ""
		m.ErrorMessage = msg.Err.Error()
		return m, m.rt.waitForUpdate()
	case tea.KeyMsg:
		if msg.String() == KeyForceQuit {
			m.shutdown()
			return m, tea.Quit
		}
		if m.ViewState == ViewStatePopover {
			return m.handlePopoverKey(msg)
		}
		return m.handleToolbarKey(msg)
	}
	return m, nil
}

func (m Model) handleToolbarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyQuit:
		m.shutdown()
		return m, tea.Quit
	case KeyLeft, KeyLeftAlt:
		if m.Cursor > 0 {
			m.Cursor--
		}
	case KeyRight, KeyRightAlt, KeyTab:
		m.Cursor = (m.Cursor + 1) % len(toolbarButtons)
	case KeyEnter:
		switch toolbarButtons[m.Cursor].Button {
		case ButtonCreateIframe:
			m.ViewState = ViewStatePopover
			m.Input = nil
			m.ErrorMessage = ""
			m.StatusMessage = ""
		case ButtonCreateCard:
			return m, m.createCard()
		}
	}
	return m, nil
}

func (m Model) handlePopoverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.rt.submit.Cancel()
		return m.closePopover(), nil
	case tea.KeyEnter:
		if m.Working {
			return m, nil
		}
		m.ErrorMessage = ""
		m.rt.submit.Trigger(m.rt.ctx, string(m.Input))
		return m, nil
	}

	if m.Working {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyBackspace:
		if len(m.Input) > 0 {
			m.Input = m.Input[:len(m.Input)-1]
		}
	case tea.KeyCtrlU:
		m.Input = nil
	case tea.KeyRunes, tea.KeySpace:
		m.Input = append(m.Input, msg.Runes...)
	}
	return m, nil
}

func (m Model) closePopover() Model {
	m.ViewState = ViewStateToolbar
	m.Input = nil
	return m
}

func Run(ctx context.Context, b *Board) error {
	m := NewModel(ctx, b)
	defer m.shutdown()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newToolbarCommand(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "toolbar",
		Short: "Open the interactive board toolbar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToolbar(cmd.Context(), ctx)
		},
	}
}

func runToolbar(parent context.Context, c *Context) error {
	return withBoard(parent, c, func(b *Board) error {
		return Run(parent, b)
	})
}
