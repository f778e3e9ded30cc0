package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/calories/internal/catalog"
	"github.com/julianstephens/calories/internal/config"
	"github.com/julianstephens/calories/internal/logger"
	"github.com/julianstephens/calories/internal/models"
	"github.com/julianstephens/calories/internal/screen"
)

type Context struct {
	Config    config.Config
	ConfigDir string
	SessionID string
	Out       io.Writer
}

// Stdout returns the writer commands print to.
func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Inputs are the optional starting values shared by commands that build a
// screen. Empty values fall back to the configured defaults.
type Inputs struct {
	Weight    string `help:"Body weight in kilograms." short:"w"`
	Sex       string `help:"Sex category: male or female." short:"s"`
	Intensity string `help:"Activity intensity label (see 'calories levels')." short:"i"`
}

// NewScreen builds a screen seeded from in and the configured defaults.
// An invalid sex is an error because it comes from a flag the user can
// fix; an unknown intensity label only produces a warning and the catalog
// fallback, matching what the screen itself does.
func (c *Context) NewScreen(in Inputs) (*screen.Screen, []string, error) {
	sc := screen.New()
	var warnings []string

	sexValue := in.Sex
	if sexValue == "" {
		sexValue = c.Config.Defaults.Sex
	}
	if sexValue != "" {
		sex, err := models.ParseSex(sexValue)
		if err != nil {
			sc.Close()
			return nil, nil, err
		}
		sc.OnSexSelected(sex)
	}

	label := in.Intensity
	if label == "" {
		label = c.Config.Defaults.Intensity
	}
	if label != "" && !sc.OnIntensityLabelPicked(label) {
		warnings = append(warnings, fmt.Sprintf("unknown intensity %q, using %q", label, catalog.Fallback().Label))
	}

	if in.Weight != "" {
		sc.OnWeightTextChanged(in.Weight)
	}

	logger.Debug("Screen seeded",
		"weight", in.Weight,
		"sex", sc.CurrentSex(),
		"intensity", sc.CurrentSelectedLabel(),
	)
	return sc, warnings, nil
}
