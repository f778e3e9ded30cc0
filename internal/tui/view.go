package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/calories/internal/constants"
	"github.com/julianstephens/calories/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		headingStyle.Render("Calories"),
		m.viewWeight(),
		m.viewSex(),
		m.intensity.View(constants.IntensityHint, m.screen.CurrentSelectedIndex(), m.focus == constants.FieldIntensity),
		resultStyle.Render(m.screen.Display()),
	}
	if m.notice != "" {
		sections = append(sections, warningStyle.Render(m.notice))
	}
	sections = append(sections, "", m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewWeight() string {
	style := inputStyle
	if m.focus == constants.FieldWeight {
		style = focusedInputStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(constants.WeightLabel),
		style.Render(m.weight.View()),
	)
}

func (m Model) viewSex() string {
	var options []string
	for _, s := range models.Sexes {
		mark := "( )"
		style := radioStyle
		if s == m.screen.CurrentSex() {
			mark = "(•)"
			if m.focus == constants.FieldSex {
				style = activeRadioStyle
			}
		}
		options = append(options, style.Render(mark+" "+s.String()))
	}
	return lipgloss.NewStyle().MarginTop(1).MarginBottom(1).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, options...))
}
