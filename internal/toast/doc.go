// Package toast implements a single dismissible notification for Bubble Tea programs.
//
// A Toast is one instance pushed by an external manager. It owns:
//   - a lifecycle timer driving the entrance/exit progress and the optional auto-dismiss countdown
//   - a drag tracker that either springs the toast back or swipes it away on release
//   - a presentation selector choosing icon, background color and render strategy from the type tag
//   - a close coordinator that ends the instance exactly once and reports it with ClosedMsg
//
// Both sub-machines may race towards closing; the coordinator's guard makes the
// first one win and turns every later attempt into a no-op. After Unmount every
// frame, timer or pointer message addressed to the toast is ignored.
//
// The toast never sleeps; all waiting is expressed as tea.Cmd values (anim.Frame,
// timer.Set.Schedule) whose messages the owner routes back into Update.
package toast
