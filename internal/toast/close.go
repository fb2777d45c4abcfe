package toast

import tea "github.com/charmbracelet/bubbletea"

// close is the single path that ends the instance. The first call cancels
// everything pending, invokes OnClose and emits ClosedMsg; later calls do nothing.
func (t *Toast) close(reason Reason) tea.Cmd {
	if t.closed || t.disposed {
		return nil
	}
	t.closed = true
	t.reason = reason
	t.phase = PhaseClosed
	t.ticking = false
	t.exit = nil
	t.spring = nil
	t.timers.CancelAll()
	t.closeTimer = 0

	t.log.Debugf("toast closed (%s)", reason)
	if t.props.OnClose != nil {
		t.props.OnClose()
	}

	id := t.ID()
	return func() tea.Msg {
		return ClosedMsg{ID: id, Reason: reason}
	}
}
