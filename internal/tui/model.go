package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/calories/internal/constants"
	"github.com/julianstephens/calories/internal/screen"
	"github.com/julianstephens/calories/internal/tui/components/intensity"
)

type Model struct {
	screen    *screen.Screen
	keys      KeyMap
	help      help.Model
	weight    textinput.Model
	intensity intensity.Model
	focus     constants.Field
	notice    string // Shown under the result until the next input event
	quitting  bool
	width     int
	height    int
}

// NewModel returns a TUI model over sc. The weight field starts with
// whatever text sc already holds, so callers can pre-seed the screen.
func NewModel(sc *screen.Screen) Model {
	ti := textinput.New()
	ti.Placeholder = "kg"
	ti.Prompt = ""
	ti.CharLimit = 10
	ti.Width = 20
	ti.SetValue(sc.CurrentWeightText())
	ti.Focus()

	return Model{
		screen:    sc,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		weight:    ti,
		intensity: intensity.New(sc.CurrentIntensityLabels()),
		focus:     constants.FieldWeight,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Screen exposes the underlying screen, mainly for tests and callers that
// want the final values after the program exits.
func (m Model) Screen() *screen.Screen {
	return m.screen
}

func (m Model) Focus() constants.Field {
	return m.focus
}

// setFocus moves focus to f. Leaving the intensity field collapses its list.
func (m *Model) setFocus(f constants.Field) tea.Cmd {
	if m.focus == constants.FieldIntensity && f != constants.FieldIntensity {
		m.intensity.Dismiss()
	}
	m.focus = f
	if f == constants.FieldWeight {
		return m.weight.Focus()
	}
	m.weight.Blur()
	return nil
}
