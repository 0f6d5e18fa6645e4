package cli

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	ColorPrimary   = "#7C3AED"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorSecondary = "#6B7280"
	ColorPopoverBg = "#4B5563"
	ColorText      = "#F9FAFB"
)

var (
	BaseStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorPrimary)).
			Padding(0, 1)

	DocStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess)).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondary))

	ButtonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorSecondary))

	ButtonActiveStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Bold(true).
				Foreground(lipgloss.Color(ColorPrimary)).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorPrimary))

	PopoverStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorPopoverBg)).
			Background(lipgloss.Color(ColorPopoverBg)).
			Foreground(lipgloss.Color(ColorText))

	InputStyle = lipgloss.NewStyle().
			Width(urlInputWidth).
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(ColorText))

	DisabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondary))

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSecondary)).
				Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))
)
