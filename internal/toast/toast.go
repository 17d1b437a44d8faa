package toast

import (
	"image"
	"log/slog"
	"time"

	"toastkit/internal/anim"
	"toastkit/internal/schedule"
	"toastkit/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Default text colors, exported so callers can theme surrounding content consistently.
const (
	PrimaryTextColor   = lipgloss.Color("#000000")
	SecondaryTextColor = lipgloss.Color("#8D8D8D")
	TertiaryTextColor  = lipgloss.Color("#C1C1C1")
)

// DefaultBackground is the toast fill color unless WithBackground is used.
const DefaultBackground = lipgloss.Color("#FFFFFF")

// DefaultDuration is how long a toast stays shown before hiding itself.
const DefaultDuration = 2 * time.Second

// AnimationDuration is the length of both the show and hide animations.
const AnimationDuration = 300 * time.Millisecond

// AnimationCurve is the easing used by both animations.
var AnimationCurve = anim.NewCurve(0.14, 0.39, 0.37, 1.0)

// Font is a terminal font descriptor: the text attributes applied to a label.
type Font struct {
	Bold      bool
	Italic    bool
	Underline bool
	Faint     bool
}

// DefaultFont is used for both labels until changed.
var DefaultFont = Font{Bold: true}

func (f Font) apply(s lipgloss.Style) lipgloss.Style {
	return s.Bold(f.Bold).Italic(f.Italic).Underline(f.Underline).Faint(f.Faint)
}

// Container hosts a shown toast. ui.Surface is the standard implementation.
type Container interface {
	Attach(l ui.Layer)
	Detach(l ui.Layer)
	Size() (width, height int)
}

// Observer is notified of every phase change. It exists for infrastructure
// such as tracing and is independent of the per-event handlers.
type Observer interface {
	PhaseChanged(id string, from, to Phase)
}

// appearance is everything the setters configure. Show snapshots it so a
// visible toast keeps rendering what it was shown with.
type appearance struct {
	title         string
	subtitle      string
	titleColor    lipgloss.TerminalColor
	subtitleColor lipgloss.TerminalColor
	background    lipgloss.TerminalColor
	titleFont     Font
	subtitleFont  Font
	layoutStyle   LayoutStyle
	accessory     Accessory
}

// Toast is a transient notification overlay.
// All methods must be called from the Bubble Tea update loop.
type Toast struct {
	id       string
	cfg      appearance
	duration time.Duration
	handlers [eventCount]func()

	phase     Phase
	container Container
	shown     appearance // snapshot taken by Show
	layout    Layout
	y         float64

	animator  *anim.Animator
	scheduler *schedule.Scheduler
	hideTask  *schedule.Task
	swipe     swipeRecognizer
	exiting   bool // HideStart handlers are running
	inHandler int
	deferred  []tea.Cmd

	logger   *slog.Logger
	observer Observer
}

// Option configures infrastructure for a Toast.
type Option func(*Toast)

// UseClock sets the time source used to start animations.
func UseClock(now func() time.Time) Option {
	return func(t *Toast) {
		t.animator = anim.NewAnimator(now)
	}
}

// UseLogger sets the logger for lifecycle diagnostics.
func UseLogger(l *slog.Logger) Option {
	return func(t *Toast) {
		if l != nil {
			t.logger = l
		}
	}
}

// UseScheduler sets the scheduler that runs the auto-hide timer. It may be
// shared with other components on the same event loop.
func UseScheduler(s *schedule.Scheduler) Option {
	return func(t *Toast) {
		if s != nil {
			t.scheduler = s
		}
	}
}

// UseObserver registers an Observer for phase changes.
func UseObserver(o Observer) Option {
	return func(t *Toast) {
		t.observer = o
	}
}

// New creates a hidden toast with default configuration.
func New(opts ...Option) *Toast {
	t := &Toast{
		id: uuid.NewString(),
		cfg: appearance{
			titleColor:    PrimaryTextColor,
			subtitleColor: SecondaryTextColor,
			background:    DefaultBackground,
			titleFont:     DefaultFont,
			subtitleFont:  DefaultFont,
			layoutStyle:   TitleAndSubtitle,
		},
		duration:  DefaultDuration,
		phase:     Hidden,
		animator:  anim.NewAnimator(nil),
		scheduler: schedule.New(),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.With("toast", t.id)
	return t
}

// WithText sets the title and subtitle. An empty subtitle means none.
func (t *Toast) WithText(title, subtitle string) *Toast {
	t.cfg.title = title
	t.cfg.subtitle = subtitle
	return t
}

// WithFont sets the font of both labels.
func (t *Toast) WithFont(f Font) *Toast {
	return t.WithFonts(f, f)
}

// WithFonts sets the title and subtitle fonts.
func (t *Toast) WithFonts(title, subtitle Font) *Toast {
	t.cfg.titleFont = title
	t.cfg.subtitleFont = subtitle
	return t
}

// WithTextColor sets the color of both labels.
func (t *Toast) WithTextColor(c lipgloss.TerminalColor) *Toast {
	return t.WithTextColors(c, c)
}

// WithTextColors sets the title and subtitle colors.
func (t *Toast) WithTextColors(title, subtitle lipgloss.TerminalColor) *Toast {
	t.cfg.titleColor = title
	t.cfg.subtitleColor = subtitle
	return t
}

// WithBackground sets the fill color.
func (t *Toast) WithBackground(c lipgloss.TerminalColor) *Toast {
	t.cfg.background = c
	return t
}

// WithDuration sets how long the toast stays shown before hiding itself.
func (t *Toast) WithDuration(d time.Duration) *Toast {
	t.duration = d
	return t
}

// WithLayout sets the layout style.
func (t *Toast) WithLayout(s LayoutStyle) *Toast {
	t.cfg.layoutStyle = s
	return t
}

// WithImage shows img as the accessory, replacing any custom accessory view.
func (t *Toast) WithImage(img image.Image) *Toast {
	t.cfg.accessory = ImageAccessory(img)
	return t
}

// WithAccessory shows v as the accessory, replacing any image.
func (t *Toast) WithAccessory(v ui.View) *Toast {
	t.cfg.accessory = ViewAccessory(v)
	return t
}

// On registers fn for ev, replacing any earlier handler. A nil fn clears it.
func (t *Toast) On(ev Event, fn func()) *Toast {
	if ev >= 0 && ev < eventCount {
		t.handlers[ev] = fn
	}
	return t
}

// ID returns the toast's unique identifier.
func (t *Toast) ID() string { return t.id }

// Text returns the configured title and subtitle.
func (t *Toast) Text() (title, subtitle string) { return t.cfg.title, t.cfg.subtitle }

// Fonts returns the configured title and subtitle fonts.
func (t *Toast) Fonts() (title, subtitle Font) { return t.cfg.titleFont, t.cfg.subtitleFont }

// TextColors returns the configured title and subtitle colors.
func (t *Toast) TextColors() (title, subtitle lipgloss.TerminalColor) {
	return t.cfg.titleColor, t.cfg.subtitleColor
}

// Background returns the configured fill color.
func (t *Toast) Background() lipgloss.TerminalColor { return t.cfg.background }

// Duration returns the configured show duration.
func (t *Toast) Duration() time.Duration { return t.duration }

// LayoutStyle returns the configured layout style.
func (t *Toast) LayoutStyle() LayoutStyle { return t.cfg.layoutStyle }

// Accessory returns the configured accessory.
func (t *Toast) Accessory() Accessory { return t.cfg.accessory }

// Phase returns the current lifecycle phase.
func (t *Toast) Phase() Phase { return t.phase }

// IsHidden reports whether the toast is detached and idle.
func (t *Toast) IsHidden() bool { return t.phase == Hidden }

// IsShowing reports whether the show animation is running.
func (t *Toast) IsShowing() bool { return t.phase == Showing }

// IsShown reports whether the toast is fully visible and not animating.
func (t *Toast) IsShown() bool { return t.phase == Shown }

// IsHiding reports whether the hide animation is running.
func (t *Toast) IsHiding() bool { return t.phase == Hiding }
