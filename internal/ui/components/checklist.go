package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hyerin/vocadrill/internal/ui/theme"
)

// ChecklistItem is one selectable row in a Checklist.
type ChecklistItem struct {
	ID      string
	Label   string
	Checked bool
}

// Checklist is a scrollable multi-select list. Used to pick the words for a
// custom drill.
type Checklist struct {
	Items   []ChecklistItem
	Cursor  int
	Visible int // rows shown at once, 0 means all
	offset  int
}

// NewChecklist creates a checklist over the given items.
func NewChecklist(items []ChecklistItem, visible int) Checklist {
	return Checklist{
		Items:   items,
		Visible: visible,
	}
}

// Update handles cursor movement and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case "space", " ":
		if c.Cursor >= 0 && c.Cursor < len(c.Items) {
			c.Items[c.Cursor].Checked = !c.Items[c.Cursor].Checked
		}
	case "a":
		all := c.AllChecked()
		for i := range c.Items {
			c.Items[i].Checked = !all
		}
	}

	c.scroll()
	return c, nil
}

// scroll keeps the cursor inside the visible window.
func (c *Checklist) scroll() {
	if c.Visible <= 0 {
		return
	}
	if c.Cursor < c.offset {
		c.offset = c.Cursor
	}
	if c.Cursor >= c.offset+c.Visible {
		c.offset = c.Cursor - c.Visible + 1
	}
}

// CheckedIDs returns the ids of all checked items in list order.
func (c Checklist) CheckedIDs() []string {
	var ids []string
	for _, item := range c.Items {
		if item.Checked {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// AllChecked reports whether every item is checked.
func (c Checklist) AllChecked() bool {
	for _, item := range c.Items {
		if !item.Checked {
			return false
		}
	}
	return len(c.Items) > 0
}

// View renders the visible window of the list.
func (c Checklist) View() string {
	start, end := 0, len(c.Items)
	if c.Visible > 0 && end > c.Visible {
		start = c.offset
		end = start + c.Visible
		if end > len(c.Items) {
			end = len(c.Items)
		}
	}

	var s string
	for i := start; i < end; i++ {
		item := c.Items[i]

		mark := "[ ]"
		if item.Checked {
			mark = "[x]"
		}

		line := "  " + mark + " " + item.Label
		if i == c.Cursor {
			line = "▸ " + mark + " " + item.Label
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	if c.Visible > 0 && len(c.Items) > c.Visible {
		s += theme.Hint.Render("  ↑/↓ to scroll") + "\n"
	}
	return s
}
