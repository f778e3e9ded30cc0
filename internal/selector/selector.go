package selector

// State is the open/closed state of the intensity dropdown.
type State int

const (
	Collapsed State = iota
	Expanded
)

func (s State) String() string {
	switch s {
	case Collapsed:
		return "collapsed"
	case Expanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// Model is the intensity dropdown. It never touches field state itself:
// Pick hands the chosen index back to the caller.
type Model struct {
	state  State
	cursor int
	size   int
}

// New returns a collapsed dropdown over size entries.
func New(size int) Model {
	return Model{state: Collapsed, size: size}
}

func (m Model) State() State {
	return m.state
}

// Cursor is the highlighted entry while expanded.
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) IsExpanded() bool {
	return m.state == Expanded
}

// Open expands the dropdown with the cursor on the current selection.
// It is a no-op when already expanded.
func (m *Model) Open(selected int) {
	if m.state == Expanded {
		return
	}
	m.state = Expanded
	m.cursor = m.clamp(selected)
}

// Toggle is the activation key: it opens a collapsed dropdown and
// dismisses an expanded one.
func (m *Model) Toggle(selected int) {
	if m.state == Expanded {
		m.Dismiss()
		return
	}
	m.Open(selected)
}

// Dismiss collapses without changing the selection.
func (m *Model) Dismiss() {
	m.state = Collapsed
}

// Pick collapses the dropdown and returns the index under the cursor.
// ok is false when the dropdown was not expanded.
func (m *Model) Pick() (index int, ok bool) {
	if m.state != Expanded {
		return 0, false
	}
	m.state = Collapsed
	return m.cursor, true
}

// Up moves the cursor towards the first entry.
func (m *Model) Up() {
	if m.state == Expanded {
		m.cursor = m.clamp(m.cursor - 1)
	}
}

// Down moves the cursor towards the last entry.
func (m *Model) Down() {
	if m.state == Expanded {
		m.cursor = m.clamp(m.cursor + 1)
	}
}

func (m Model) clamp(i int) int {
	if i < 0 || m.size == 0 {
		return 0
	}
	if i >= m.size {
		return m.size - 1
	}
	return i
}
