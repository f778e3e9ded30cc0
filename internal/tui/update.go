package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/calories/internal/constants"
	"github.com/julianstephens/calories/internal/logger"
	"github.com/julianstephens/calories/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.intensity.SetWidth(min(msg.Width-4, 32))
		return m, nil

	case tea.KeyMsg:
		m.notice = ""
		return m.handleKey(msg)
	}

	// Anything else (cursor blink etc.) belongs to the text input
	var cmd tea.Cmd
	m.weight, cmd = m.weight.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		return m, m.setFocus((m.focus + 1) % constants.FieldCount)
	case key.Matches(msg, m.keys.ShiftTab):
		return m, m.setFocus((m.focus - 1 + constants.FieldCount) % constants.FieldCount)
	}

	switch m.focus {
	case constants.FieldWeight:
		return m.updateWeight(msg)
	case constants.FieldSex:
		m.updateSex(msg)
	case constants.FieldIntensity:
		m.updateIntensity(msg)
	}

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateWeight(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.weight.Value()

	var cmd tea.Cmd
	m.weight, cmd = m.weight.Update(msg)

	if after := m.weight.Value(); after != before {
		m.screen.OnWeightTextChanged(after)
	}
	return m, cmd
}

func (m *Model) updateSex(msg tea.KeyMsg) {
	current := m.screen.CurrentSex()
	switch {
	case key.Matches(msg, m.keys.Male):
		m.screen.OnSexSelected(models.SexMale)
	case key.Matches(msg, m.keys.Female):
		m.screen.OnSexSelected(models.SexFemale)
	case key.Matches(msg, m.keys.Left, m.keys.Right, m.keys.Select):
		next := models.SexFemale
		if current == models.SexFemale {
			next = models.SexMale
		}
		m.screen.OnSexSelected(next)
	}
}

func (m *Model) updateIntensity(msg tea.KeyMsg) {
	if !m.intensity.IsExpanded() {
		if key.Matches(msg, m.keys.Select, m.keys.Down) {
			m.intensity.Open(m.screen.CurrentSelectedIndex())
		}
		return
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.intensity.Up()
	case key.Matches(msg, m.keys.Down):
		m.intensity.Down()
	case key.Matches(msg, m.keys.Dismiss):
		m.intensity.Dismiss()
	case key.Matches(msg, m.keys.Select):
		idx, ok := m.intensity.Pick()
		if !ok {
			return
		}
		if !m.screen.OnIntensityIndexPicked(idx) {
			m.notice = "Unknown intensity, using " + m.screen.CurrentSelectedLabel()
			logger.Warn("Picked intensity index not in catalog", "index", idx)
		}
	}
}
