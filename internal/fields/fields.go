// Package fields holds the raw values of the estimator's three inputs.
//
// State is the only mutable state of a screen. It performs no derivation:
// every setter stores its value and notifies subscribers, which are
// expected to recompute whatever they display.
package fields

import (
	"github.com/julianstephens/calories/internal/catalog"
	"github.com/julianstephens/calories/internal/logger"
	"github.com/julianstephens/calories/internal/models"
)

// Snapshot is a copy of the field values at one point in time.
type Snapshot struct {
	WeightText     string
	Sex            models.Sex
	IntensityIndex int
}

// Listener is called after every setter with the values just committed.
type Listener func(Snapshot)

// State holds the current raw input values. It is not safe for concurrent
// use; a screen drives it from a single event loop.
type State struct {
	weightText     string
	sex            models.Sex
	intensityIndex int

	listeners []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Listener
}

// New returns a State with an empty weight, the default sex and the first
// catalog entry selected.
func New() *State {
	return &State{
		sex:            models.DefaultSex,
		intensityIndex: catalog.FallbackIndex,
	}
}

// Subscribe registers fn to be called after every change, in subscription
// order. The returned function removes the subscription.
func (s *State) Subscribe(fn Listener) func() {
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns the current values.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		WeightText:     s.weightText,
		Sex:            s.sex,
		IntensityIndex: s.intensityIndex,
	}
}

// WeightText returns the weight text exactly as entered.
func (s *State) WeightText() string {
	return s.weightText
}

// Sex returns the selected category.
func (s *State) Sex() models.Sex {
	return s.sex
}

// IntensityIndex returns the selected catalog index.
func (s *State) IntensityIndex() int {
	return s.intensityIndex
}

// SetWeightText stores text verbatim. Partial or non-numeric text is
// accepted; it is normalized only when an estimate is computed.
func (s *State) SetWeightText(text string) {
	s.weightText = text
	s.notify()
}

// SetSex replaces the selected category. Values outside the enum are
// ignored and reported with false; subscribers are still notified.
func (s *State) SetSex(sex models.Sex) bool {
	ok := sex.Valid()
	if ok {
		s.sex = sex
	} else {
		logger.Warn("Ignoring unknown sex selection", "value", int(sex))
	}
	s.notify()
	return ok
}

// SetIntensity selects the catalog entry labelled label. An unknown label
// selects the catalog fallback entry instead of keeping the previous
// selection, and returns false.
func (s *State) SetIntensity(label string) bool {
	idx, ok := catalog.IndexOf(label)
	if !ok {
		logger.Warn("Unknown intensity label, using fallback",
			"label", label, "fallback", catalog.Fallback().Label)
	}
	s.intensityIndex = idx
	s.notify()
	return ok
}

// SetIntensityIndex selects the catalog entry at i. An index outside the
// catalog selects the fallback entry and returns false.
func (s *State) SetIntensityIndex(i int) bool {
	_, ok := catalog.ByIndex(i)
	if !ok {
		logger.Warn("Intensity index out of range, using fallback", "index", i)
		i = catalog.FallbackIndex
	}
	s.intensityIndex = i
	s.notify()
	return ok
}

func (s *State) notify() {
	snap := s.Snapshot()
	for _, sub := range s.listeners {
		sub.fn(snap)
	}
}
