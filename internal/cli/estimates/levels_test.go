package estimates

import (
	"strings"
	"testing"
)

func TestLevelsCmd(t *testing.T) {
	ctx, buf := newTestContext()
	cmd := &LevelsCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Intensity", "Multiplier", "Light", "Usual", "Moderate", "High", "Very high", "1.3", "2.2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Female") {
		t.Error("estimate columns shown without --weight")
	}
}

func TestLevelsCmd_WithWeight(t *testing.T) {
	ctx, buf := newTestContext()
	cmd := &LevelsCmd{Weight: "0"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	// Male and female estimates at 0 kg for Light and Very high.
	for _, want := range []string{"Male", "Female", "1142", "1033", "1933", "1749"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
