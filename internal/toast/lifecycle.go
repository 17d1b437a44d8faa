package toast

import (
	"time"

	"toastkit/internal/anim"
	"toastkit/internal/schedule"

	tea "github.com/charmbracelet/bubbletea"
)

// Show lays the toast out, attaches it above c's top edge, and animates it
// into view. It is a no-op unless the toast is Hidden.
func (t *Toast) Show(c Container) tea.Cmd {
	if t.phase != Hidden || t.container != nil || c == nil {
		t.logger.Debug("show ignored", "phase", t.phase)
		return nil
	}

	cw, _ := c.Size()
	t.shown = t.cfg
	t.layout = ComputeLayout(t.shown.layoutStyle, t.shown.title, t.shown.subtitle,
		!t.shown.accessory.IsNone(), cw)
	t.y = float64(-t.layout.Height)
	t.container = c
	c.Attach(t)

	t.fire(ShowStart)
	t.setPhase(Showing)

	cmd := t.animator.Start(t.y, TopMargin, AnimationDuration, AnimationCurve)
	if v := t.shown.accessory.View(); v != nil {
		cmd = tea.Batch(cmd, v.Init())
	}
	return t.emit(cmd)
}

// Hide cancels the pending auto-hide and animates the toast out of view.
// It is a no-op unless the toast is Shown.
func (t *Toast) Hide() tea.Cmd {
	if t.phase != Shown || t.exiting {
		t.logger.Debug("hide ignored", "phase", t.phase)
		return nil
	}

	t.hideTask.Cancel()
	t.hideTask = nil

	// HideStart still observes Shown; exiting keeps a Hide from inside it out.
	t.exiting = true
	t.fire(HideStart)
	t.exiting = false
	t.setPhase(Hiding)
	return t.emit(t.animator.Start(t.y, float64(-t.layout.Height), AnimationDuration, AnimationCurve))
}

// Update routes a host message to the toast. Hosts should pass every message
// through; messages for other components are ignored or forwarded to a custom
// accessory view.
func (t *Toast) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case anim.FrameMsg:
		if !t.animator.Owns(msg) {
			return nil
		}
		v, done, cmd := t.animator.Step(msg)
		t.y = v
		if done {
			return t.emit(t.finishTransition())
		}
		return cmd
	case schedule.FireMsg:
		cmd, _ := t.scheduler.Deliver(msg)
		return cmd
	case tea.MouseMsg:
		if t.container != nil && t.swipe.feed(msg, t.Bounds()) {
			t.logger.Debug("swipe up")
			return t.Hide()
		}
	}
	return t.updateAccessory(msg)
}

func (t *Toast) updateAccessory(msg tea.Msg) tea.Cmd {
	if t.container == nil || t.shown.accessory.Kind() != AccessoryView {
		return nil
	}
	v, cmd := t.shown.accessory.View().Update(msg)
	t.shown.accessory = ViewAccessory(v)
	return cmd
}

func (t *Toast) finishTransition() tea.Cmd {
	switch t.phase {
	case Showing:
		t.setPhase(Shown)
		t.fire(ShowEnd)
		if t.phase != Shown {
			return nil
		}
		t.hideTask.Cancel()
		task, cmd := t.scheduler.After(t.duration, t.Hide)
		t.hideTask = task
		return cmd
	case Hiding:
		c := t.container
		t.container = nil
		t.setPhase(Hidden)
		if c != nil {
			c.Detach(t)
		}
		t.fire(HideEnd)
	}
	return nil
}

func (t *Toast) setPhase(p Phase) {
	from := t.phase
	t.phase = p
	t.logger.Debug("phase changed", "from", from, "to", p)
	if t.observer != nil {
		t.observer.PhaseChanged(t.id, from, p)
	}
}

func (t *Toast) fire(ev Event) {
	fn := t.handlers[ev]
	if fn == nil {
		return
	}
	t.inHandler++
	defer func() { t.inHandler-- }()
	fn()
}

// emit returns cmd to the caller. Show or Hide called from inside a handler
// parks its command until the outermost Show, Hide or Update returns.
func (t *Toast) emit(cmd tea.Cmd) tea.Cmd {
	if t.inHandler > 0 {
		if cmd != nil {
			t.deferred = append(t.deferred, cmd)
		}
		return nil
	}
	cmds := append(t.deferred, cmd)
	t.deferred = nil
	return tea.Batch(cmds...)
}

// Frame returns the frame message the running show or hide animation would
// receive at the given time. Hosts that drive time themselves feed it to Update.
func (t *Toast) Frame(at time.Time) anim.FrameMsg {
	return t.animator.Frame(at)
}
