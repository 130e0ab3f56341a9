// Package countdown implements the run/stop countdown that triggers breaks.
package countdown

import (
	"fmt"
	"log/slog"
	"time"

	"breaktimer/logging"
	"breaktimer/models"
	"breaktimer/schedule"
)

// TickInterval is the delay between two ticks.
const TickInterval = time.Second

// State is a snapshot of the countdown.
type State struct {
	Elapsed  int
	Running  bool
	Interval int
}

// Clock returns the elapsed time as mm:ss.
func (s State) Clock() string {
	return FormatClock(s.Elapsed)
}

// Controller owns the elapsed counter and the running flag. It is not safe for
// concurrent use: every call, including scheduled ticks, must come from the
// same goroutine.
type Controller struct {
	scheduler schedule.Scheduler
	logger    *slog.Logger

	interval int
	elapsed  int
	running  bool

	// generation invalidates ticks scheduled before the last stop.
	generation uint64
	cancel     schedule.Cancel

	onExpired []func()
	onChange  []func(State)
}

// NewController creates a stopped controller. A non-positive interval is
// replaced by models.DefaultInterval.
func NewController(scheduler schedule.Scheduler, interval int, logger *slog.Logger) *Controller {
	if interval <= 0 {
		interval = models.DefaultInterval
	}
	return &Controller{
		scheduler: scheduler,
		logger:    logging.OrDiscard(logger).With(slog.String("component", "countdown")),
		interval:  interval,
	}
}

// OnExpired registers fn to run each time the countdown fires.
func (c *Controller) OnExpired(fn func()) {
	c.onExpired = append(c.onExpired, fn)
}

// OnChange registers fn to run after every state change.
func (c *Controller) OnChange(fn func(State)) {
	c.onChange = append(c.onChange, fn)
}

// State returns the current state.
func (c *Controller) State() State {
	return State{Elapsed: c.elapsed, Running: c.running, Interval: c.interval}
}

// Elapsed returns the seconds counted so far.
func (c *Controller) Elapsed() int { return c.elapsed }

// Running reports whether the countdown is running.
func (c *Controller) Running() bool { return c.running }

// Interval returns the configured interval in seconds.
func (c *Controller) Interval() int { return c.interval }

// SetInterval changes the interval. It takes effect on the next tick.
func (c *Controller) SetInterval(seconds int) error {
	if seconds <= 0 {
		return fmt.Errorf("%w: %d", models.ErrInvalidInterval, seconds)
	}
	c.interval = seconds
	c.logger.Debug("interval changed", "interval", seconds)
	return nil
}

// Toggle starts a stopped countdown or stops a running one. It returns the new
// running state.
func (c *Controller) Toggle() bool {
	if c.running {
		c.Stop()
	} else {
		c.Start()
	}
	return c.running
}

// Start begins counting. The first tick happens immediately.
func (c *Controller) Start() {
	if c.running {
		return
	}
	c.running = true
	c.logger.Debug("countdown started", "interval", c.interval)
	c.Tick()
}

// Stop cancels the pending tick and resets the counter.
func (c *Controller) Stop() {
	wasRunning := c.running
	c.reset()
	if wasRunning {
		c.logger.Debug("countdown stopped")
	}
	c.notify()
}

// Tick advances the countdown by one second, or fires when the interval has
// been reached. It has no effect while stopped.
func (c *Controller) Tick() {
	if !c.running {
		return
	}

	if c.elapsed >= c.interval {
		c.reset()
		c.logger.Info("countdown expired", "interval", c.interval)
		c.notify()
		for _, fn := range c.onExpired {
			fn()
		}
		return
	}

	c.elapsed++
	if c.cancel != nil {
		c.cancel()
	}
	generation := c.generation
	c.cancel = c.scheduler.ScheduleOnce(TickInterval, func() {
		if generation != c.generation {
			return
		}
		c.Tick()
	})
	c.notify()
}

func (c *Controller) reset() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.generation++
	c.elapsed = 0
	c.running = false
}

func (c *Controller) notify() {
	state := c.State()
	for _, fn := range c.onChange {
		fn(state)
	}
}
