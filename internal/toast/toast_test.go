package toast

import (
	"image"
	"image/color"
	"testing"
	"time"

	"toastkit/internal/schedule"
	"toastkit/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

// harness wires a toast to a surface and records handler calls in order.
type harness struct {
	toast   *Toast
	surface *ui.Surface
	clock   *fakeClock
	events  []Event
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	h := &harness{
		surface: ui.NewSurface(80, 24),
		clock:   &fakeClock{now: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)},
	}
	opts = append([]Option{UseClock(h.clock.Now)}, opts...)
	h.toast = New(opts...).WithText("Saved", "Changes applied")
	for ev := ShowStart; ev < eventCount; ev++ {
		h.toast.On(ev, func() { h.events = append(h.events, ev) })
	}
	return h
}

// finishAnimation delivers the frame that completes the running animation.
func (h *harness) finishAnimation() tea.Cmd {
	at := h.clock.Advance(AnimationDuration)
	return h.toast.Update(h.toast.animator.Frame(at))
}

// fireHideTimer delivers the pending auto-hide task as if its delay elapsed.
func (h *harness) fireHideTimer() tea.Cmd {
	h.clock.Advance(h.toast.Duration())
	return h.toast.Update(schedule.FireMsg{ID: h.toast.hideTask.ID(), Time: h.clock.now})
}

func (h *harness) showFully(t *testing.T) {
	t.Helper()
	require.NotNil(t, h.toast.Show(h.surface))
	require.NotNil(t, h.finishAnimation())
	require.True(t, h.toast.IsShown())
}

func TestNew_Defaults(t *testing.T) {
	ts := New()

	assert.NotEmpty(t, ts.ID())
	assert.Equal(t, Hidden, ts.Phase())
	assert.True(t, ts.IsHidden())
	assert.Equal(t, DefaultDuration, ts.Duration())
	assert.Equal(t, TitleAndSubtitle, ts.LayoutStyle())
	assert.True(t, ts.Accessory().IsNone())
	assert.Equal(t, lipgloss.TerminalColor(DefaultBackground), ts.Background())

	title, subtitle := ts.TextColors()
	assert.Equal(t, lipgloss.TerminalColor(PrimaryTextColor), title)
	assert.Equal(t, lipgloss.TerminalColor(SecondaryTextColor), subtitle)

	tf, sf := ts.Fonts()
	assert.Equal(t, DefaultFont, tf)
	assert.Equal(t, DefaultFont, sf)
	assert.True(t, DefaultFont.Bold)
}

func TestNew_UniqueIDs(t *testing.T) {
	assert.NotEqual(t, New().ID(), New().ID())
}

func TestSetters_ChainAndMutate(t *testing.T) {
	ts := New()
	red := lipgloss.Color("#FF0000")
	blue := lipgloss.Color("#0000FF")
	italic := Font{Italic: true}

	got := ts.WithText("Title", "Sub").
		WithFont(italic).
		WithTextColors(red, blue).
		WithBackground(blue).
		WithDuration(500 * time.Millisecond).
		WithLayout(TitleOnly)

	assert.Same(t, ts, got)
	title, subtitle := ts.Text()
	assert.Equal(t, "Title", title)
	assert.Equal(t, "Sub", subtitle)
	tf, sf := ts.Fonts()
	assert.Equal(t, italic, tf)
	assert.Equal(t, italic, sf)
	tc, sc := ts.TextColors()
	assert.Equal(t, lipgloss.TerminalColor(red), tc)
	assert.Equal(t, lipgloss.TerminalColor(blue), sc)
	assert.Equal(t, 500*time.Millisecond, ts.Duration())
	assert.Equal(t, TitleOnly, ts.LayoutStyle())

	ts.WithTextColor(red).WithFonts(DefaultFont, italic)
	tc, sc = ts.TextColors()
	assert.Equal(t, tc, sc)
	tf, sf = ts.Fonts()
	assert.Equal(t, DefaultFont, tf)
	assert.Equal(t, italic, sf)
}

func TestSetters_HaveNoSideEffects(t *testing.T) {
	s := ui.NewSurface(80, 24)
	ts := New().WithText("a", "b").WithDuration(time.Second).WithLayout(TitleOnly)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, Hidden, ts.Phase())
	assert.Equal(t, Layout{}, ts.Layout())
	assert.Empty(t, ts.Render())
}

func TestAccessory_MutuallyExclusive(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	view := &countingView{}

	ts := New().WithAccessory(view).WithImage(img)
	assert.Equal(t, AccessoryImage, ts.Accessory().Kind())
	assert.Nil(t, ts.Accessory().View())

	ts.WithAccessory(view)
	assert.Equal(t, AccessoryView, ts.Accessory().Kind())
	assert.Nil(t, ts.Accessory().Image())

	ts.WithImage(nil)
	assert.True(t, ts.Accessory().IsNone())
}

func TestOn_LastRegistrationWins(t *testing.T) {
	h := newHarness(t)
	var first, second int
	h.toast.On(ShowStart, func() { first++ })
	h.toast.On(ShowStart, func() { second++ })

	h.toast.Show(h.surface)
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestOn_NilClears(t *testing.T) {
	h := newHarness(t)
	h.toast.On(ShowStart, nil)
	h.toast.Show(h.surface)
	assert.Empty(t, h.events)
}

func TestShow_AttachesAboveTopEdge(t *testing.T) {
	h := newHarness(t)
	cmd := h.toast.Show(h.surface)

	require.NotNil(t, cmd)
	assert.Equal(t, []Event{ShowStart}, h.events)
	assert.True(t, h.toast.IsShowing())
	assert.True(t, h.surface.Attached(h.toast))

	b := h.toast.Bounds()
	assert.Equal(t, -h.toast.Layout().Height, b.Y)
	assert.Equal(t, (80-b.W)/2, b.X)
}

func TestShow_AnimatesIntoView(t *testing.T) {
	h := newHarness(t)
	h.toast.Show(h.surface)
	start := h.toast.Bounds().Y

	mid := h.clock.Advance(AnimationDuration / 2)
	cmd := h.toast.Update(h.toast.animator.Frame(mid))
	assert.NotNil(t, cmd, "mid-animation frame schedules the next frame")
	assert.True(t, h.toast.IsShowing())
	y := h.toast.Bounds().Y
	assert.Greater(t, y, start)
	assert.LessOrEqual(t, y, TopMargin)

	h.clock.Advance(AnimationDuration / 2)
	h.toast.Update(h.toast.animator.Frame(h.clock.now))
	assert.True(t, h.toast.IsShown())
	assert.Equal(t, TopMargin, h.toast.Bounds().Y)
	assert.Equal(t, []Event{ShowStart, ShowEnd}, h.events)
}

func TestShow_NoopUnlessHidden(t *testing.T) {
	h := newHarness(t)
	h.toast.Show(h.surface)

	// Showing
	assert.Nil(t, h.toast.Show(h.surface))
	assert.Equal(t, 1, h.surface.Len())

	// Shown
	h.finishAnimation()
	assert.Nil(t, h.toast.Show(h.surface))

	// Hiding
	h.toast.Hide()
	assert.Nil(t, h.toast.Show(h.surface))

	assert.Equal(t, 1, h.surface.Len())
	assert.Equal(t, []Event{ShowStart, ShowEnd, HideStart}, h.events)
}

func TestShow_NilContainer(t *testing.T) {
	ts := New()
	assert.Nil(t, ts.Show(nil))
	assert.True(t, ts.IsHidden())
}

func TestHide_NoopUnlessShown(t *testing.T) {
	h := newHarness(t)

	assert.Nil(t, h.toast.Hide(), "hidden")

	h.toast.Show(h.surface)
	assert.Nil(t, h.toast.Hide(), "showing")
	assert.True(t, h.toast.IsShowing())

	h.finishAnimation()
	require.NotNil(t, h.toast.Hide())
	assert.Nil(t, h.toast.Hide(), "hiding")

	assert.Equal(t, []Event{ShowStart, ShowEnd, HideStart}, h.events)
}

func TestFullCycle_AutoHide(t *testing.T) {
	h := newHarness(t)
	h.showFully(t)
	require.True(t, h.toast.hideTask.Pending())

	cmd := h.fireHideTimer()
	require.NotNil(t, cmd)
	assert.True(t, h.toast.IsHiding())

	h.finishAnimation()
	assert.True(t, h.toast.IsHidden())
	assert.False(t, h.surface.Attached(h.toast))
	assert.Equal(t, []Event{ShowStart, ShowEnd, HideStart, HideEnd}, h.events)
}

func TestManualHide_CancelsAutoHide(t *testing.T) {
	h := newHarness(t)
	h.toast.WithDuration(500 * time.Millisecond)
	h.showFully(t)

	task := h.toast.hideTask
	h.clock.Advance(100 * time.Millisecond)
	require.NotNil(t, h.toast.Hide())
	assert.False(t, task.Pending())

	h.finishAnimation()
	require.True(t, h.toast.IsHidden())

	// The cancelled timer elapsing later must do nothing.
	assert.Nil(t, h.toast.Update(schedule.FireMsg{ID: task.ID()}))
	assert.Equal(t, []Event{ShowStart, ShowEnd, HideStart, HideEnd}, h.events)
}

func TestAutoHide_StaleTimerAfterReshow(t *testing.T) {
	h := newHarness(t)
	h.showFully(t)
	first := h.toast.hideTask
	h.toast.Hide()
	h.finishAnimation()

	h.events = nil
	h.showFully(t)
	require.NotEqual(t, first.ID(), h.toast.hideTask.ID())

	assert.Nil(t, h.toast.Update(schedule.FireMsg{ID: first.ID()}))
	assert.True(t, h.toast.IsShown(), "first cycle's timer must not hide the second cycle")
}

// recordingScheduler captures the delay of every task the toast schedules.
func recordingScheduler(delays *[]time.Duration) *schedule.Scheduler {
	return schedule.New(schedule.WithTick(func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
		*delays = append(*delays, d)
		return func() tea.Msg { return fn(time.Time{}) }
	}))
}

func TestAutoHide_ScheduledForShowDuration(t *testing.T) {
	var delays []time.Duration
	h := newHarness(t, UseScheduler(recordingScheduler(&delays)))
	h.toast.WithDuration(750 * time.Millisecond)

	h.toast.Show(h.surface)
	assert.Empty(t, delays, "no timer while showing")
	h.finishAnimation()
	require.True(t, h.toast.IsShown())
	assert.Equal(t, []time.Duration{750 * time.Millisecond}, delays)
	assert.True(t, h.toast.hideTask.Pending())

	h.fireHideTimer()
	h.finishAnimation()
	require.True(t, h.toast.IsHidden())

	// A duration set while hidden applies to the next cycle.
	h.toast.WithDuration(3 * time.Second)
	h.showFully(t)
	assert.Equal(t, []time.Duration{750 * time.Millisecond, 3 * time.Second}, delays)
}

func TestAutoHide_DurationChangedWhileShowing(t *testing.T) {
	var delays []time.Duration
	h := newHarness(t, UseScheduler(recordingScheduler(&delays)))

	h.toast.Show(h.surface)
	h.toast.WithDuration(time.Second)
	h.finishAnimation()
	assert.Equal(t, []time.Duration{time.Second}, delays)
}

func TestReshow_RepeatsCallbackOrder(t *testing.T) {
	h := newHarness(t)
	for range 3 {
		h.events = nil
		h.showFully(t)
		h.fireHideTimer()
		h.finishAnimation()
		assert.Equal(t, []Event{ShowStart, ShowEnd, HideStart, HideEnd}, h.events)
		assert.Equal(t, 0, h.surface.Len())
	}
}

func TestUpdate_IgnoresStaleFrames(t *testing.T) {
	h := newHarness(t)
	h.toast.Show(h.surface)
	stale := h.toast.animator.Frame(h.clock.now.Add(time.Hour))
	h.finishAnimation()
	h.toast.Hide()

	assert.Nil(t, h.toast.Update(stale))
	assert.True(t, h.toast.IsHiding())
}

func TestHandlers_ObservePhaseOrder(t *testing.T) {
	h := newHarness(t)
	var phases []Phase
	for ev := ShowStart; ev < eventCount; ev++ {
		h.toast.On(ev, func() { phases = append(phases, h.toast.Phase()) })
	}
	h.showFully(t)
	h.fireHideTimer()
	h.finishAnimation()

	// Start handlers run before the phase flips; end handlers after.
	assert.Equal(t, []Phase{Hidden, Shown, Shown, Hidden}, phases)
}

func TestHandlers_HideFromShowEnd(t *testing.T) {
	h := newHarness(t)
	h.toast.On(ShowEnd, func() { h.toast.Hide() })
	h.toast.Show(h.surface)

	cmd := h.finishAnimation()
	assert.NotNil(t, cmd, "hide animation started from a handler still needs its frames")
	assert.True(t, h.toast.IsHiding())
	assert.Nil(t, h.toast.hideTask)
}

func TestHandlers_HideFromHideStart(t *testing.T) {
	h := newHarness(t)
	hideStarts := 0
	var phases []Phase
	h.toast.On(HideStart, func() {
		hideStarts++
		phases = append(phases, h.toast.Phase())
		assert.Nil(t, h.toast.Hide(), "hide is already under way")
	})
	h.showFully(t)

	require.NotNil(t, h.toast.Hide())
	assert.Equal(t, 1, hideStarts)
	assert.Equal(t, []Phase{Shown}, phases)
	assert.True(t, h.toast.IsHiding())

	h.finishAnimation()
	assert.Equal(t, []Event{ShowStart, ShowEnd, HideStart, HideEnd}, h.events)
}

func TestHandlers_ShowFromHideStartIgnored(t *testing.T) {
	h := newHarness(t)
	h.toast.On(HideStart, func() { assert.Nil(t, h.toast.Show(h.surface)) })
	h.showFully(t)

	h.toast.Hide()
	h.finishAnimation()
	assert.True(t, h.toast.IsHidden())
	assert.Equal(t, 0, h.surface.Len())
}

func TestHandlers_ShowFromHideEnd(t *testing.T) {
	h := newHarness(t)
	shows := 0
	h.toast.On(ShowStart, func() { shows++ })
	h.toast.On(HideEnd, func() {
		if shows < 2 {
			h.toast.Show(h.surface)
		}
	})
	h.showFully(t)
	h.fireHideTimer()

	cmd := h.finishAnimation()
	assert.NotNil(t, cmd)
	assert.True(t, h.toast.IsShowing())
	assert.Equal(t, 2, shows)
	assert.Equal(t, 1, h.surface.Len())
}

func TestSwipeUp_Hides(t *testing.T) {
	h := newHarness(t)
	h.showFully(t)
	b := h.toast.Bounds()

	press := tea.MouseMsg{X: b.X + 1, Y: b.Y + 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	drag := tea.MouseMsg{X: b.X + 1, Y: b.Y, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion}

	assert.Nil(t, h.toast.Update(press))
	assert.NotNil(t, h.toast.Update(drag))
	assert.True(t, h.toast.IsHiding())
	assert.Equal(t, []Event{ShowStart, ShowEnd, HideStart}, h.events)
}

func TestSwipeUp_WheelHides(t *testing.T) {
	h := newHarness(t)
	h.showFully(t)
	b := h.toast.Bounds()

	h.toast.Update(tea.MouseMsg{X: b.X, Y: b.Y, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	assert.True(t, h.toast.IsHiding())
}

func TestSwipe_IgnoredOutsideOrDownward(t *testing.T) {
	h := newHarness(t)
	h.showFully(t)
	b := h.toast.Bounds()

	// Press outside, drag up.
	h.toast.Update(tea.MouseMsg{X: 0, Y: 20, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	h.toast.Update(tea.MouseMsg{X: 0, Y: 10, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	assert.True(t, h.toast.IsShown())

	// Press inside, drag down.
	h.toast.Update(tea.MouseMsg{X: b.X + 1, Y: b.Y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	h.toast.Update(tea.MouseMsg{X: b.X + 1, Y: b.Y + 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	assert.True(t, h.toast.IsShown())

	// Wheel up outside.
	h.toast.Update(tea.MouseMsg{X: 0, Y: 20, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	assert.True(t, h.toast.IsShown())
}

func TestSwipe_DuringShowingIsNoop(t *testing.T) {
	h := newHarness(t)
	h.toast.Show(h.surface)
	h.clock.Advance(AnimationDuration)
	// Bounds while still at the start position are off-screen, so use the final rect.
	h.toast.y = TopMargin
	b := h.toast.Bounds()

	h.toast.Update(tea.MouseMsg{X: b.X, Y: b.Y, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	assert.True(t, h.toast.IsShowing())
}

func TestConfigChangesApplyOnNextShow(t *testing.T) {
	h := newHarness(t)
	h.showFully(t)
	before := h.toast.Render()
	layout := h.toast.Layout()

	h.toast.WithText("A much longer title than before", "").WithLayout(TitleOnly)
	assert.Equal(t, before, h.toast.Render())
	assert.Equal(t, layout, h.toast.Layout())

	h.toast.Hide()
	h.finishAnimation()
	h.showFully(t)
	assert.NotEqual(t, layout, h.toast.Layout())
	assert.Contains(t, h.toast.Render(), "A much longer title than before")
}

func TestScenario_SavedToast(t *testing.T) {
	s := ui.NewSurface(80, 24)
	clock := &fakeClock{now: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)}
	var log []string
	ts := New(UseClock(clock.Now)).
		WithDuration(500*time.Millisecond).
		WithText("Saved", "Changes applied").
		On(ShowStart, func() { log = append(log, "showStart") }).
		On(ShowEnd, func() { log = append(log, "showEnd") }).
		On(HideStart, func() { log = append(log, "hideStart") }).
		On(HideEnd, func() { log = append(log, "hideEnd") })

	ts.Show(s)
	assert.Equal(t, []string{"showStart"}, log)
	assert.True(t, ts.IsShowing())

	ts.Update(ts.animator.Frame(clock.Advance(100 * time.Millisecond)))
	assert.True(t, ts.IsShowing())

	ts.Update(ts.animator.Frame(clock.Advance(200 * time.Millisecond)))
	assert.True(t, ts.IsShown())
	assert.Equal(t, []string{"showStart", "showEnd"}, log)

	clock.Advance(500 * time.Millisecond)
	ts.Update(schedule.FireMsg{ID: ts.hideTask.ID(), Time: clock.now})
	assert.True(t, ts.IsHiding())
	assert.Equal(t, []string{"showStart", "showEnd", "hideStart"}, log)

	ts.Update(ts.animator.Frame(clock.Advance(300 * time.Millisecond)))
	assert.False(t, ts.IsShown())
	assert.True(t, ts.IsHidden())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, []string{"showStart", "showEnd", "hideStart", "hideEnd"}, log)
}

type phaseLog struct {
	ids         []string
	transitions [][2]Phase
}

func (o *phaseLog) PhaseChanged(id string, from, to Phase) {
	o.ids = append(o.ids, id)
	o.transitions = append(o.transitions, [2]Phase{from, to})
}

func TestObserver_SeesEveryTransition(t *testing.T) {
	obs := &phaseLog{}
	h := newHarness(t, UseObserver(obs))
	h.showFully(t)
	h.fireHideTimer()
	h.finishAnimation()

	assert.Equal(t, [][2]Phase{
		{Hidden, Showing},
		{Showing, Shown},
		{Shown, Hiding},
		{Hiding, Hidden},
	}, obs.transitions)
	for _, id := range obs.ids {
		assert.Equal(t, h.toast.ID(), id)
	}
}

// countingView is a custom accessory that records the calls it receives.
type countingView struct {
	inits   int
	updates int
}

type tickAccessoryMsg struct{}

func (v *countingView) Init() tea.Cmd {
	v.inits++
	return func() tea.Msg { return tickAccessoryMsg{} }
}

func (v *countingView) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	if _, ok := msg.(tickAccessoryMsg); ok {
		v.updates++
	}
	return v, nil
}

func (v *countingView) View() string { return "@@" }

func TestAccessoryView_ReceivesMessagesWhileAttached(t *testing.T) {
	view := &countingView{}
	h := newHarness(t)
	h.toast.WithAccessory(view)

	h.toast.Update(tickAccessoryMsg{})
	assert.Equal(t, 0, view.updates, "not forwarded while hidden")

	h.showFully(t)
	assert.Equal(t, 1, view.inits)
	h.toast.Update(tickAccessoryMsg{})
	assert.Equal(t, 1, view.updates)
	assert.Contains(t, h.toast.Render(), "@@")
}

func TestAccessory_TypedNilIsNone(t *testing.T) {
	h := newHarness(t)
	var view *countingView
	h.toast.WithAccessory(view)
	assert.True(t, h.toast.Accessory().IsNone())

	var img *image.NRGBA
	h.toast.WithImage(img)
	assert.True(t, h.toast.Accessory().IsNone())

	assert.NotPanics(t, func() { h.showFully(t) })
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "hidden", Hidden.String())
	assert.Equal(t, "showing", Showing.String())
	assert.Equal(t, "shown", Shown.String())
	assert.Equal(t, "hiding", Hiding.String())
	assert.Equal(t, "unknown", Phase(42).String())
}

func TestParseLayoutStyle(t *testing.T) {
	for _, s := range []LayoutStyle{TitleOnly, TitleAndSubtitle} {
		got, ok := ParseLayoutStyle(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := ParseLayoutStyle("sideways")
	assert.False(t, ok)
}

func solidImage(c color.Color, w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}
