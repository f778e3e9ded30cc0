package intensity

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/calories/internal/selector"
)

// Model renders the intensity dropdown. Open/close and cursor handling come
// from the embedded selector; the caller applies picked indexes to field
// state.
type Model struct {
	selector.Model
	labels []string
	width  int
}

var (
	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	focusedFieldStyle = fieldStyle.
				BorderForeground(lipgloss.Color("205"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			PaddingLeft(2)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	menuStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("236"))
)

func New(labels []string) Model {
	return Model{
		Model:  selector.New(len(labels)),
		labels: labels,
		width:  24,
	}
}

func (m *Model) SetWidth(width int) {
	if width > 0 {
		m.width = width
	}
}

// View renders the closed field and, while expanded, the menu beneath it.
func (m Model) View(title string, selected int, focused bool) string {
	label := ""
	if selected >= 0 && selected < len(m.labels) {
		label = m.labels[selected]
	}

	arrow := "▾"
	if m.IsExpanded() {
		arrow = "▴"
	}

	inner := m.width - 4
	if inner < len(label)+2 {
		inner = len(label) + 2
	}
	text := label + strings.Repeat(" ", inner-len(label)-1) + arrow

	style := fieldStyle
	if focused {
		style = focusedFieldStyle
	}

	parts := []string{titleStyle.Render(title), style.Render(text)}
	if m.IsExpanded() {
		parts = append(parts, menuStyle.Render(m.menu()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) menu() string {
	rows := make([]string, len(m.labels))
	for i, l := range m.labels {
		if i == m.Cursor() {
			rows[i] = cursorStyle.Render("> " + l)
		} else {
			rows[i] = itemStyle.Render(l)
		}
	}
	return strings.Join(rows, "\n")
}
