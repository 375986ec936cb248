package launcher

// HasStarted reports whether Start has moved the launcher out of its idle
// state.
func (l *Launcher) HasStarted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state != stateIdle
}
