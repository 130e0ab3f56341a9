package schedule

import (
	"sort"
	"time"
)

// Manual is a virtual clock. Callbacks only run from Advance, on the caller's
// goroutine, in due-time order.
type Manual struct {
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	at   time.Duration
	seq  int
	fn   func()
	dead bool
}

// NewManual creates a manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

// ScheduleOnce implements Scheduler.
func (m *Manual) ScheduleOnce(delay time.Duration, fn func()) Cancel {
	m.seq++
	task := &manualTask{at: m.now + delay, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, task)
	return func() { task.dead = true }
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of callbacks that are scheduled and not cancelled.
func (m *Manual) Pending() int {
	n := 0
	for _, task := range m.tasks {
		if !task.dead {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, running every callback that becomes
// due, including ones scheduled by earlier callbacks within the window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		task := m.next(target)
		if task == nil {
			break
		}
		m.now = task.at
		task.dead = true
		task.fn()
	}
	m.now = target
	m.compact()
}

// Step advances the clock to the next pending callback and runs it. It reports
// false when nothing is pending.
func (m *Manual) Step() bool {
	m.compact()
	if len(m.tasks) == 0 {
		return false
	}
	sort.Slice(m.tasks, func(i, j int) bool { return m.tasks[i].before(m.tasks[j]) })
	m.Advance(m.tasks[0].at - m.now)
	return true
}

func (m *Manual) next(target time.Duration) *manualTask {
	var best *manualTask
	for _, task := range m.tasks {
		if task.dead || task.at > target {
			continue
		}
		if best == nil || task.before(best) {
			best = task
		}
	}
	return best
}

func (m *Manual) compact() {
	live := m.tasks[:0]
	for _, task := range m.tasks {
		if !task.dead {
			live = append(live, task)
		}
	}
	m.tasks = live
}

func (t *manualTask) before(other *manualTask) bool {
	if t.at != other.at {
		return t.at < other.at
	}
	return t.seq < other.seq
}
