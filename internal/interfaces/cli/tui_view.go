package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	popoverHeader     = "Target URL Address"
	inputPlaceholder  = "Input Target URL Address"
	submitLabel       = "Submit"
	submitPendingText = "Submit..."
)

func (m Model) View() string {
	var content strings.Builder
	content.WriteString(m.renderHeader())
	content.WriteString("\n\n")
	content.WriteString(m.renderButtons())
	content.WriteString("\n")

	if m.ViewState == ViewStatePopover {
		content.WriteString(m.renderPopover())
		content.WriteString("\n")
	}

	if status := m.renderStatus(); status != "" {
		content.WriteString(status)
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(m.renderHelp())
	return BaseStyle.Render(content.String())
}

func (m Model) renderHeader() string {
	doc := filepath.Base(m.Board.Store.Path())
	count := len(m.Board.Editor.Shapes())
	return TitleStyle.Render("Boardkit") + "  " + DocStyle.Render(doc) +
		HelpStyle.Render(fmt.Sprintf("  (%d shapes)", count))
}

func (m Model) renderButtons() string {
	rendered := make([]string, len(toolbarButtons))
	for i, b := range toolbarButtons {
		style := ButtonStyle
		if i == m.Cursor && m.ViewState == ViewStateToolbar {
			style = ButtonActiveStyle
		}
		rendered[i] = style.Render(b.Label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderPopover() string {
	input := string(m.Input)
	switch {
	case input == "":
		input = PlaceholderStyle.Render(inputPlaceholder)
	case m.Working:
		input = DisabledStyle.Render(input)
	default:
		input += "█"
	}

	submit := submitLabel
	if m.Pending {
		submit = submitPendingText
	}
	if m.Working {
		submit = DisabledStyle.Render(submit)
	}
	footer := lipgloss.PlaceHorizontal(urlInputWidth+4, lipgloss.Right, submit)

	body := lipgloss.JoinVertical(lipgloss.Left,
		popoverHeader,
		InputStyle.Render(input),
		footer,
	)
	return PopoverStyle.Render(body)
}

func (m Model) renderStatus() string {
	switch {
	case m.ErrorMessage != "":
		return ErrorStyle.Render("✗ " + m.ErrorMessage)
	case m.StatusMessage != "":
		return SuccessStyle.Render("✓ " + m.StatusMessage)
	}
	return ""
}

func (m Model) renderHelp() string {
	if m.ViewState == ViewStatePopover {
		return BuildHelpText([]HelpItem{HelpSubmit, HelpClear, HelpEsc})
	}
	return BuildHelpText([]HelpItem{HelpNav, HelpEnter, HelpQuit})
}
