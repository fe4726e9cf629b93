package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ldevries/atelier/internal/tui/theme"
)

// formTheme maps the active color theme onto huh's form styling.
func formTheme() *huh.Theme {
	t := theme.Active
	th := huh.ThemeBase()

	th.Focused.Title = th.Focused.Title.Foreground(t.Accent).Bold(true)
	th.Focused.Description = th.Focused.Description.Foreground(t.TextMuted)
	th.Focused.TextInput.Prompt = th.Focused.TextInput.Prompt.Foreground(t.Accent)
	th.Focused.TextInput.Cursor = th.Focused.TextInput.Cursor.Foreground(t.Accent)
	th.Focused.TextInput.Placeholder = th.Focused.TextInput.Placeholder.Foreground(t.TextDim)
	th.Focused.SelectSelector = th.Focused.SelectSelector.Foreground(t.Accent)
	th.Focused.SelectedOption = th.Focused.SelectedOption.Foreground(t.Accent)
	th.Focused.UnselectedOption = th.Focused.UnselectedOption.Foreground(t.TextPrimary)
	th.Focused.FocusedButton = th.Focused.FocusedButton.
		Background(t.Accent).Foreground(t.Background)
	th.Focused.BlurredButton = th.Focused.BlurredButton.
		Background(t.Surface).Foreground(t.TextMuted)
	th.Focused.ErrorIndicator = th.Focused.ErrorIndicator.Foreground(t.Red)
	th.Focused.ErrorMessage = th.Focused.ErrorMessage.Foreground(t.Red)
	th.Focused.Base = th.Focused.Base.
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent)

	th.Blurred.Title = th.Blurred.Title.Foreground(t.TextMuted)
	th.Blurred.TextInput.Placeholder = th.Blurred.TextInput.Placeholder.Foreground(t.TextDim)

	return th
}
