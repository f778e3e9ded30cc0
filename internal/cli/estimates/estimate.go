package estimates

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/calories/internal/catalog"
	"github.com/julianstephens/calories/internal/cli"
	"github.com/julianstephens/calories/internal/constants"
	"github.com/julianstephens/calories/internal/logger"
	"github.com/julianstephens/calories/internal/models"
	"github.com/julianstephens/calories/internal/screen"
)

type EstimateCmd struct {
	cli.Inputs `embed:""`

	Interactive bool `help:"Fill in the inputs with an interactive form." short:"I"`
	Quiet       bool `help:"Print only the calorie number." short:"q"`
}

func (c *EstimateCmd) Run(ctx *cli.Context) error {
	in := c.Inputs
	if c.Interactive {
		filled, err := promptInputs(ctx, in)
		if err != nil {
			return fmt.Errorf("failed to read inputs: %w", err)
		}
		in = filled
	}

	sc, warnings, err := ctx.NewScreen(in)
	if err != nil {
		return err
	}
	defer sc.Close()

	out := ctx.Stdout()
	for _, w := range warnings {
		logger.Warn("Estimate input adjusted", "detail", w)
		if !c.Quiet {
			fmt.Fprintf(out, "⚠ %s\n", w)
		}
	}

	if c.Quiet {
		fmt.Fprintln(out, sc.CurrentEstimate())
		return nil
	}
	printResult(ctx, sc)
	return nil
}

func printResult(ctx *cli.Context, sc *screen.Screen) {
	res := sc.CurrentResult()
	out := ctx.Stdout()
	fmt.Fprintf(out, "Weight:     %g kg\n", res.Weight)
	fmt.Fprintf(out, "Sex:        %s\n", res.Sex)
	fmt.Fprintf(out, "Intensity:  %s (x%.1f)\n", res.Level.Label, res.Level.Multiplier)
	fmt.Fprintf(out, "%s\n", sc.Display())
}

// promptInputs shows a huh form pre-filled with in. Defaults from config
// apply when the matching flag was not given.
func promptInputs(ctx *cli.Context, in cli.Inputs) (cli.Inputs, error) {
	sex := models.DefaultSex
	sexValue := in.Sex
	if sexValue == "" {
		sexValue = ctx.Config.Defaults.Sex
	}
	if sexValue != "" {
		parsed, err := models.ParseSex(sexValue)
		if err != nil {
			return in, err
		}
		sex = parsed
	}

	label := in.Intensity
	if label == "" {
		label = ctx.Config.Defaults.Intensity
	}
	if _, ok := catalog.IndexOf(label); !ok {
		label = catalog.Fallback().Label
	}

	weight := in.Weight

	var sexOptions []huh.Option[models.Sex]
	for _, s := range models.Sexes {
		sexOptions = append(sexOptions, huh.NewOption(s.String(), s))
	}
	var levelOptions []huh.Option[string]
	for _, l := range catalog.Levels() {
		levelOptions = append(levelOptions, huh.NewOption(fmt.Sprintf("%s (x%.1f)", l.Label, l.Multiplier), l.Label))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(constants.WeightLabel).
				Description("Kilograms. Anything that is not a number counts as 0.").
				Value(&weight),
			huh.NewSelect[models.Sex]().
				Title("Sex").
				Options(sexOptions...).
				Value(&sex),
			huh.NewSelect[string]().
				Title(constants.IntensityHint).
				Options(levelOptions...).
				Value(&label),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return in, err
	}

	return cli.Inputs{
		Weight:    weight,
		Sex:       sex.String(),
		Intensity: label,
	}, nil
}
