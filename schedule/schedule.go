// Package schedule provides one-shot delayed callbacks.
package schedule

import "time"

// Cancel stops a pending callback. Calling it after the callback ran, or more
// than once, is harmless.
type Cancel func()

// Scheduler runs fn once after delay.
type Scheduler interface {
	ScheduleOnce(delay time.Duration, fn func()) Cancel
}

// Timer schedules with time.AfterFunc. The callback is handed to dispatch so
// that it runs on the owner's goroutine (fyne.Do for the GUI).
type Timer struct {
	dispatch func(func())
}

// NewTimer creates a timer-backed scheduler. A nil dispatch runs callbacks on
// the timer goroutine.
func NewTimer(dispatch func(func())) *Timer {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Timer{dispatch: dispatch}
}

// ScheduleOnce implements Scheduler.
func (s *Timer) ScheduleOnce(delay time.Duration, fn func()) Cancel {
	t := time.AfterFunc(delay, func() {
		s.dispatch(fn)
	})
	return func() { t.Stop() }
}
