package patmatch

// Manager keeps track of the captures bound during one match attempt.
// Every binding is pushed onto an undo log; rolling back to an earlier depth
// of the log clears all the captures bound since.
//
// The dispatcher creates one manager per value to match. Clients only need
// managers if they implement patterns of their own or call Pattern.Apply
// directly.
type Manager struct {
	log []binding
}

// NewManager creates a manager with an empty undo log.
func NewManager() *Manager {
	return &Manager{log: make([]binding, 0, 8)}
}

func (m *Manager) assigned(b binding) {
	m.log = append(m.log, b)
}

// Depth returns the number of captures bound in the current attempt.
func (m *Manager) Depth() int {
	return len(m.log)
}

// Bound returns the names of the bound captures, in order of binding.
func (m *Manager) Bound() []string {
	names := make([]string, len(m.log))
	for i, b := range m.log {
		names[i] = b.Name()
	}
	return names
}

// ClearAll clears every capture bound in the current attempt.
func (m *Manager) ClearAll() {
	m.rollback(0)
}

func (m *Manager) rollback(depth int) {
	for i := len(m.log) - 1; i >= depth; i-- {
		m.log[i].clear()
		m.log[i] = nil
	}
	m.log = m.log[:depth]
}

// Protected runs body as a sub-attempt. If body reports failure, all the
// captures bound by body are cleared and Protected returns false. Otherwise
// the bindings are kept.
func (m *Manager) Protected(body func() bool) bool {
	depth := len(m.log)
	if body() {
		return true
	}
	m.rollback(depth)
	return false
}

// probe runs body and clears its bindings, whatever the outcome.
func (m *Manager) probe(body func() bool) bool {
	depth := len(m.log)
	ok := body()
	m.rollback(depth)
	return ok
}

// Excursion is a generalization of Protected. It runs body and keeps its
// bindings only if body succeeds and accept (if non-nil) approves of the
// result. In any other case the bindings are rolled back and fail is
// returned.
func Excursion[R any](m *Manager, body func() (R, bool), accept func(R) bool, fail R) R {
	depth := len(m.log)
	r, ok := body()
	if !ok || (accept != nil && !accept(r)) {
		m.rollback(depth)
		return fail
	}
	return r
}
