package system

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/julianstephens/calories/internal/calculator"
	"github.com/julianstephens/calories/internal/catalog"
	"github.com/julianstephens/calories/internal/cli"
	apperrors "github.com/julianstephens/calories/internal/errors"
	"github.com/julianstephens/calories/internal/logger"
	"github.com/julianstephens/calories/internal/models"
	"github.com/julianstephens/calories/internal/validation"
)

type DoctorCmd struct{}

// referenceScenario is a known input and the estimate it must produce.
type referenceScenario struct {
	weight string
	sex    models.Sex
	label  string
	want   int
}

var referenceScenarios = []referenceScenario{
	{"70", models.SexMale, "Usual", 2389},
	{"", models.SexFemale, "Light", 1033},
	{"60", models.SexFemale, "Very high", 2696},
	{"0", models.SexMale, "Moderate", 1494},
	{"0", models.SexMale, "Hard", 1142},
}

type check struct {
	name string
	run  func(ctx *cli.Context) error
}

var checks = []check{
	{"Intensity catalog", checkCatalog},
	{"Reference estimates", checkReferenceEstimates},
	{"Configuration", checkConfig},
	{"Log directory writable", checkLogDir},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	failed := runChecks(ctx, out, checks)

	fmt.Fprintln(out)
	if failed > 0 {
		fmt.Fprintln(out, "Diagnostics completed with errors.")
		return fmt.Errorf("%d of %d: %w", failed, len(checks), apperrors.ErrChecksFailed)
	}

	fmt.Fprintln(out, "All diagnostics passed!")
	return nil
}

func runChecks(ctx *cli.Context, out io.Writer, list []check) int {
	failed := 0
	for _, c := range list {
		if err := c.run(ctx); err != nil {
			fmt.Fprintf(out, "❌ %s: FAIL\n", c.name)
			fmt.Fprintf(out, "   Error: %v\n", err)
			logger.Warn("Diagnostic failed", "check", c.name, "error", err)
			failed++
			continue
		}
		fmt.Fprintf(out, "✓ %s: OK\n", c.name)
	}
	return failed
}

func checkCatalog(_ *cli.Context) error {
	result := validation.New().ValidateCatalog(catalog.Levels())
	if result.HasConflicts() {
		return fmt.Errorf("%s", result.FormatReport())
	}
	return nil
}

func checkReferenceEstimates(_ *cli.Context) error {
	for _, s := range referenceScenarios {
		got := calculator.Compute(models.Input{
			WeightText:     s.weight,
			Sex:            s.sex,
			IntensityLabel: s.label,
		}).Calories
		if got != s.want {
			return fmt.Errorf("weight %q, %s, %q: got %d, want %d", s.weight, s.sex, s.label, got, s.want)
		}
	}
	return nil
}

func checkConfig(ctx *cli.Context) error {
	return ctx.Config.Validate()
}

func checkLogDir(ctx *cli.Context) error {
	dir := logger.Dir(ctx.ConfigDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	probe, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("failed to write to %s: %w", dir, err)
	}
	name := probe.Name()
	probe.Close()
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("failed to clean up %s: %w", filepath.Base(name), err)
	}
	return nil
}
