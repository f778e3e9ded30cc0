package estimates

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/calories/internal/calculator"
	"github.com/julianstephens/calories/internal/catalog"
	"github.com/julianstephens/calories/internal/cli"
	"github.com/julianstephens/calories/internal/models"
)

type LevelsCmd struct {
	Weight string `help:"Also show the estimate for each level at this weight (kg)." short:"w"`
}

var headerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("205")).
	Bold(true).
	Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func (c *LevelsCmd) Run(ctx *cli.Context) error {
	fmt.Fprintln(ctx.Stdout(), c.render())
	return nil
}

func (c *LevelsCmd) render() string {
	headers := []string{"#", "Intensity", "Multiplier"}
	withEstimates := c.Weight != ""
	weight := calculator.NormalizeWeight(c.Weight)
	if withEstimates {
		for _, s := range models.Sexes {
			headers = append(headers, s.String())
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)

	for i, l := range catalog.Levels() {
		row := []string{strconv.Itoa(i), l.Label, fmt.Sprintf("%.1f", l.Multiplier)}
		if withEstimates {
			for _, s := range models.Sexes {
				row = append(row, strconv.Itoa(calculator.Estimate(weight, s, l.Multiplier)))
			}
		}
		t.Row(row...)
	}

	return t.Render()
}
