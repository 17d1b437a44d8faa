// Package schedule runs deferred callbacks on the Bubble Tea event loop.
//
// A task's delay elapses inside a tea.Cmd; the callback itself only runs when
// the resulting FireMsg is delivered back through Update, so callbacks see the
// same single-threaded state as the rest of the model.
package schedule

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FireMsg is emitted when a task's delay has elapsed.
type FireMsg struct {
	ID   int
	Time time.Time
}

var lastID int64

// Task is a handle to a scheduled callback.
type Task struct {
	id    int
	fn    func() tea.Cmd
	owner *Scheduler
}

// ID returns the task identifier carried by its FireMsg.
func (t *Task) ID() int {
	if t == nil {
		return 0
	}
	return t.id
}

// Cancel prevents the callback from running. Safe to call more than once,
// after the task fired, or on a nil Task.
func (t *Task) Cancel() {
	if t == nil || t.owner == nil {
		return
	}
	t.owner.mu.Lock()
	delete(t.owner.tasks, t.id)
	t.owner.mu.Unlock()
}

// Pending reports whether the task is still waiting to fire.
func (t *Task) Pending() bool {
	if t == nil || t.owner == nil {
		return false
	}
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	_, ok := t.owner.tasks[t.id]
	return ok
}

// TickFunc turns a delay into the command that later emits a message.
// tea.Tick is the default.
type TickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithTick replaces the timer behind After, e.g. to observe requested delays.
func WithTick(tick TickFunc) Option {
	return func(s *Scheduler) {
		if tick != nil {
			s.tick = tick
		}
	}
}

// Scheduler owns a set of pending tasks.
type Scheduler struct {
	mu    sync.Mutex // tea.Cmds run on their own goroutines
	tasks map[int]*Task
	tick  TickFunc
}

// New creates an empty Scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{tasks: make(map[int]*Task), tick: tea.Tick}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// After schedules fn to run d from now. The returned command must be handed
// to the Bubble Tea runtime; the FireMsg it produces must be routed to Deliver.
func (s *Scheduler) After(d time.Duration, fn func() tea.Cmd) (*Task, tea.Cmd) {
	t := &Task{
		id:    int(atomic.AddInt64(&lastID, 1)),
		fn:    fn,
		owner: s,
	}
	s.mu.Lock()
	s.tasks[t.id] = t
	s.mu.Unlock()

	id := t.id
	return t, s.tick(d, func(now time.Time) tea.Msg {
		return FireMsg{ID: id, Time: now}
	})
}

// Deliver runs the task addressed by msg if it belongs to this scheduler and is
// still pending. handled is false for messages this scheduler does not own.
func (s *Scheduler) Deliver(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	fire, ok := msg.(FireMsg)
	if !ok {
		return nil, false
	}
	s.mu.Lock()
	t, ok := s.tasks[fire.ID]
	if ok {
		delete(s.tasks, fire.ID)
	}
	s.mu.Unlock()
	if !ok {
		return nil, false
	}
	if t.fn == nil {
		return nil, true
	}
	return t.fn(), true
}

// Pending returns the number of tasks waiting to fire.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
