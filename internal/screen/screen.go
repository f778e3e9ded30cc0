package screen

import (
	"fmt"

	"github.com/julianstephens/calories/internal/calculator"
	"github.com/julianstephens/calories/internal/catalog"
	"github.com/julianstephens/calories/internal/constants"
	"github.com/julianstephens/calories/internal/fields"
	"github.com/julianstephens/calories/internal/logger"
	"github.com/julianstephens/calories/internal/models"
)

// Screen wires field state to the calculator. It listens for field changes
// and rebuilds the result from scratch each time; nothing derived is kept
// between changes except the latest result for display.
type Screen struct {
	fields *fields.State
	result models.Result
	unsub  func()
}

// New returns a screen over fresh field state.
func New() *Screen {
	return NewWithState(fields.New())
}

// NewWithState returns a screen over existing field state.
func NewWithState(st *fields.State) *Screen {
	s := &Screen{fields: st}
	s.recompute(st.Snapshot())
	s.unsub = st.Subscribe(s.recompute)
	return s
}

// Close detaches the screen from its field state.
func (s *Screen) Close() {
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
}

func (s *Screen) recompute(snap fields.Snapshot) {
	s.result = calculator.ComputeIndexed(snap.WeightText, snap.Sex, snap.IntensityIndex, true)
	logger.Debug("Estimate recomputed",
		"weight", s.result.Weight,
		"sex", s.result.Sex,
		"intensity", s.result.Level.Label,
		"calories", s.result.Calories,
	)
}

// OnWeightTextChanged accepts the weight field's text after a keystroke.
func (s *Screen) OnWeightTextChanged(text string) {
	s.fields.SetWeightText(text)
}

// OnSexSelected accepts a sex selection.
func (s *Screen) OnSexSelected(sex models.Sex) {
	s.fields.SetSex(sex)
}

// OnIntensityLabelPicked selects an intensity by label. Unknown labels select
// the catalog fallback; the return value reports whether the label matched.
func (s *Screen) OnIntensityLabelPicked(label string) bool {
	return s.fields.SetIntensity(label)
}

// OnIntensityIndexPicked selects an intensity by catalog index.
func (s *Screen) OnIntensityIndexPicked(i int) bool {
	return s.fields.SetIntensityIndex(i)
}

func (s *Screen) CurrentEstimate() int {
	return s.result.Calories
}

func (s *Screen) CurrentResult() models.Result {
	return s.result
}

func (s *Screen) CurrentIntensityLabels() []string {
	return catalog.Labels()
}

func (s *Screen) CurrentSelectedLabel() string {
	return s.result.Level.Label
}

func (s *Screen) CurrentSelectedIndex() int {
	return s.fields.IntensityIndex()
}

func (s *Screen) CurrentWeightText() string {
	return s.fields.WeightText()
}

func (s *Screen) CurrentSex() models.Sex {
	return s.fields.Sex()
}

// Display is the result line shown under the inputs.
func (s *Screen) Display() string {
	return fmt.Sprintf("%s%d", constants.ResultPrefix, s.result.Calories)
}
