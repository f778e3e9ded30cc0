package system

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/calories/internal/cli"
	"github.com/julianstephens/calories/internal/config"
	apperrors "github.com/julianstephens/calories/internal/errors"
)

func setupDoctorContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return &cli.Context{
		Config:    config.Default(),
		ConfigDir: t.TempDir(),
		Out:       &buf,
	}, &buf
}

func TestDoctorCmd_Healthy(t *testing.T) {
	ctx, buf := setupDoctorContext(t)

	cmd := &DoctorCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("doctor failed on a healthy setup: %v\n%s", err, buf.String())
	}

	out := buf.String()
	for _, want := range []string{
		"✓ Intensity catalog: OK",
		"✓ Reference estimates: OK",
		"✓ Configuration: OK",
		"✓ Log directory writable: OK",
		"All diagnostics passed!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	entries, err := os.ReadDir(filepath.Join(ctx.ConfigDir, "logs"))
	if err != nil {
		t.Fatalf("log dir not created: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("probe file left behind: %v", entries)
	}
}

func TestDoctorCmd_InvalidConfig(t *testing.T) {
	ctx, buf := setupDoctorContext(t)
	ctx.Config.Defaults.Sex = "unknown"

	cmd := &DoctorCmd{}
	err := cmd.Run(ctx)
	if !errors.Is(err, apperrors.ErrChecksFailed) {
		t.Fatalf("Run() error = %v, want ErrChecksFailed", err)
	}
	if !strings.Contains(buf.String(), "❌ Configuration: FAIL") {
		t.Errorf("output does not report the config failure:\n%s", buf.String())
	}
}

func TestDoctorCmd_UnwritableLogDir(t *testing.T) {
	ctx, buf := setupDoctorContext(t)

	// A regular file where the config directory should be.
	blocker := filepath.Join(ctx.ConfigDir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx.ConfigDir = blocker

	cmd := &DoctorCmd{}
	if err := cmd.Run(ctx); err == nil {
		t.Fatal("Run() succeeded with an unusable log directory")
	}
	if !strings.Contains(buf.String(), "❌ Log directory writable: FAIL") {
		t.Errorf("output does not report the log dir failure:\n%s", buf.String())
	}
}

func TestRunChecks_CountsFailures(t *testing.T) {
	ctx, buf := setupDoctorContext(t)
	list := []check{
		{"ok", func(*cli.Context) error { return nil }},
		{"bad", func(*cli.Context) error { return errors.New("boom") }},
		{"worse", func(*cli.Context) error { return errors.New("bang") }},
	}

	if got := runChecks(ctx, buf, list); got != 2 {
		t.Errorf("runChecks() = %d, want 2", got)
	}
	if !strings.Contains(buf.String(), "Error: boom") {
		t.Errorf("output missing error detail:\n%s", buf.String())
	}
}
