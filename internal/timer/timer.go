// Package timer implements cancellable one-shot timers on top of tea.Tick.
//
// Bubble Tea ticks cannot be stopped once issued, so cancellation works by
// retiring the handle: a FiredMsg whose handle is no longer live is stale and
// must be ignored by the receiver. Claim is the single check that decides it.
package timer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Handle identifies a scheduled timer within a Set. The zero Handle is never issued.
type Handle uint64

// FiredMsg is delivered when a scheduled timer elapses.
type FiredMsg struct {
	Owner  string
	Handle Handle
	Time   time.Time
}

// Set tracks the live timers of a single owner.
type Set struct {
	owner string
	next  Handle
	live  map[Handle]struct{}
}

// NewSet creates a timer set whose messages are tagged with owner.
func NewSet(owner string) *Set {
	return &Set{
		owner: owner,
		live:  make(map[Handle]struct{}),
	}
}

// Owner returns the owner tag used on fired messages.
func (s *Set) Owner() string {
	return s.owner
}

// Schedule arms a timer firing after d and returns its handle and the command
// that must be handed to the Bubble Tea runtime.
func (s *Set) Schedule(d time.Duration) (Handle, tea.Cmd) {
	s.next++
	h := s.next
	s.live[h] = struct{}{}

	owner := s.owner
	return h, tea.Tick(d, func(t time.Time) tea.Msg {
		return FiredMsg{Owner: owner, Handle: h, Time: t}
	})
}

// Cancel retires h. It reports whether h was still pending.
func (s *Set) Cancel(h Handle) bool {
	if _, ok := s.live[h]; !ok {
		return false
	}
	delete(s.live, h)
	return true
}

// CancelAll retires every pending timer and returns how many were pending.
func (s *Set) CancelAll() int {
	n := len(s.live)
	clear(s.live)
	return n
}

// Claim reports whether msg belongs to a live timer of this set. A claimed
// timer is retired, so a handle is claimed at most once.
func (s *Set) Claim(msg FiredMsg) bool {
	if msg.Owner != s.owner {
		return false
	}
	if _, ok := s.live[msg.Handle]; !ok {
		return false
	}
	delete(s.live, msg.Handle)
	return true
}

// Pending returns the number of live timers.
func (s *Set) Pending() int {
	return len(s.live)
}
