package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/calories/internal/cli"
	"github.com/julianstephens/calories/internal/logger"
	"github.com/julianstephens/calories/internal/tui"
)

type TuiCmd struct {
	cli.Inputs `embed:""`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	sc, warnings, err := ctx.NewScreen(c.Inputs)
	if err != nil {
		return err
	}
	defer sc.Close()

	for _, w := range warnings {
		logger.Warn("Screen input adjusted", "detail", w)
	}

	logger.Info("Starting TUI", "session", ctx.SessionID)
	p := tea.NewProgram(tui.NewModel(sc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	logger.Info("TUI closed", "calories", sc.CurrentEstimate())
	return nil
}
