package anim

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FPS is the frame rate animations tick at.
const FPS = 60

// Animation interpolates a value from From to To over Duration.
type Animation struct {
	From     float64
	To       float64
	Duration time.Duration
	Curve    Curve
	Start    time.Time
}

// Progress returns linear time progress in [0, 1].
func (a Animation) Progress(now time.Time) float64 {
	if a.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(a.Start)) / float64(a.Duration)
	return clamp01(p)
}

// Value returns the eased value at now.
func (a Animation) Value(now time.Time) float64 {
	return a.From + (a.To-a.From)*a.Curve.Ease(a.Progress(now))
}

// Done reports whether the animation has run its full duration at now.
func (a Animation) Done(now time.Time) bool {
	return now.Sub(a.Start) >= a.Duration
}

// FrameMsg is a single animation tick addressed to one Animator.
type FrameMsg struct {
	ID   int
	Seq  int
	Time time.Time
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Animator runs at most one Animation at a time for its owner.
// Starting a new animation supersedes the running one; frames addressed to
// the old one are ignored.
type Animator struct {
	id      int
	seq     int
	current *Animation
	now     func() time.Time
}

// NewAnimator creates an Animator. now defaults to time.Now.
func NewAnimator(now func() time.Time) *Animator {
	if now == nil {
		now = time.Now
	}
	return &Animator{id: nextID(), now: now}
}

// ID returns the identifier carried by this Animator's frames.
func (a *Animator) ID() int {
	return a.id
}

// Start begins animating from -> to and returns the command for the first frame.
func (a *Animator) Start(from, to float64, d time.Duration, c Curve) tea.Cmd {
	a.seq++
	a.current = &Animation{
		From:     from,
		To:       to,
		Duration: d,
		Curve:    c,
		Start:    a.now(),
	}
	return a.tick()
}

// Owns reports whether msg is a live frame for the current animation.
func (a *Animator) Owns(msg FrameMsg) bool {
	return a.current != nil && msg.ID == a.id && msg.Seq == a.seq
}

// Step advances the animation to the frame's time. It returns the value, whether
// the animation completed, and the command for the next frame (nil when done).
// Callers should check Owns first; stale frames return done=false and no cmd.
func (a *Animator) Step(msg FrameMsg) (value float64, done bool, cmd tea.Cmd) {
	if !a.Owns(msg) {
		return 0, false, nil
	}
	cur := a.current
	if cur.Done(msg.Time) {
		a.current = nil
		return cur.To, true, nil
	}
	return cur.Value(msg.Time), false, a.tick()
}

// Frame builds the message the running animation's next tick would carry at the
// given time. Hosts that drive time themselves (and tests) can feed it to Step.
func (a *Animator) Frame(at time.Time) FrameMsg {
	return FrameMsg{ID: a.id, Seq: a.seq, Time: at}
}

func (a *Animator) tick() tea.Cmd {
	id, seq := a.id, a.seq
	return tea.Tick(time.Second/FPS, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Seq: seq, Time: t}
	})
}
