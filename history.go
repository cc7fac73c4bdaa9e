package main

// View history: every deliberate window change pushes the previous
// selection so 'u' can walk back through earlier zoom levels.

const maxViewHistory = 64

func (m *model) pushView(limits Limits) {
	last := len(m.viewStack) - 1
	if last >= 0 && m.viewStack[last] == limits {
		return
	}
	m.viewStack = append(m.viewStack, limits)
	if len(m.viewStack) > maxViewHistory {
		m.viewStack = m.viewStack[1:]
	}
}

func (m *model) popView() (Limits, bool) {
	if len(m.viewStack) == 0 {
		return Limits{}, false
	}
	last := len(m.viewStack) - 1
	limits := m.viewStack[last]
	m.viewStack = m.viewStack[:last]
	return limits, true
}
