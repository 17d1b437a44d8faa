package toast

// Phase is the toast's lifecycle state. Exactly one applies at any time.
type Phase int

const (
	Hidden Phase = iota
	Showing
	Shown
	Hiding
)

func (p Phase) String() string {
	switch p {
	case Hidden:
		return "hidden"
	case Showing:
		return "showing"
	case Shown:
		return "shown"
	case Hiding:
		return "hiding"
	default:
		return "unknown"
	}
}

// Event names a lifecycle point a handler can be registered for.
type Event int

const (
	ShowStart Event = iota // show animation is about to start
	ShowEnd                // show animation finished
	HideStart              // hide animation is about to start
	HideEnd                // hide animation finished and the toast is detached
	eventCount
)

func (e Event) String() string {
	switch e {
	case ShowStart:
		return "show_start"
	case ShowEnd:
		return "show_end"
	case HideStart:
		return "hide_start"
	case HideEnd:
		return "hide_end"
	default:
		return "unknown"
	}
}

// LayoutStyle selects which labels the toast shows.
type LayoutStyle int

const (
	TitleAndSubtitle LayoutStyle = iota
	TitleOnly
)

func (s LayoutStyle) String() string {
	switch s {
	case TitleOnly:
		return "title"
	case TitleAndSubtitle:
		return "title_and_subtitle"
	default:
		return "unknown"
	}
}

// ParseLayoutStyle parses the names produced by LayoutStyle.String.
func ParseLayoutStyle(s string) (LayoutStyle, bool) {
	switch s {
	case "title":
		return TitleOnly, true
	case "title_and_subtitle":
		return TitleAndSubtitle, true
	default:
		return TitleAndSubtitle, false
	}
}
