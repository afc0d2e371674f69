package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hyerin/vocadrill/internal/ui/theme"
)

// Picker cycles through a fixed set of choices with the left/right keys.
// Used for drill setup fields like tier and question count.
type Picker struct {
	Label    string
	Choices  []string
	Selected int
	Focused  bool
}

// NewPicker creates a picker over the given choices.
func NewPicker(label string, choices []string) Picker {
	return Picker{
		Label:   label,
		Choices: choices,
	}
}

// Update handles left/right cycling when the picker is focused.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if !p.Focused {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		p.Selected = (p.Selected - 1 + len(p.Choices)) % len(p.Choices)
	case "right", "l":
		p.Selected = (p.Selected + 1) % len(p.Choices)
	}

	return p, nil
}

// Value returns the currently selected choice.
func (p Picker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Choices) {
		return ""
	}
	return p.Choices[p.Selected]
}

// View renders the picker as "label  ◂ choice ▸".
func (p Picker) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	valueStyle := theme.Unselected
	if p.Focused {
		labelStyle = theme.Selected
		valueStyle = theme.Selected
	}

	return labelStyle.Render(p.Label) + "  " + valueStyle.Render("◂ "+p.Value()+" ▸")
}
