package toast

import tea "github.com/charmbracelet/bubbletea"

// SwipeThreshold is how many rows a drag must travel upward to count as a swipe.
const SwipeThreshold = 1

// swipeRecognizer detects an upward swipe over the toast: a left-button drag
// that starts inside the bounds and moves up, or a wheel-up over the bounds.
type swipeRecognizer struct {
	tracking bool
	startY   int
}

// feed consumes one mouse event and reports whether it completed a swipe.
func (s *swipeRecognizer) feed(msg tea.MouseMsg, bounds Rect) bool {
	switch {
	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		s.tracking = false
		return bounds.Contains(msg.X, msg.Y)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		s.tracking = bounds.Contains(msg.X, msg.Y)
		s.startY = msg.Y
		return false
	case msg.Action == tea.MouseActionMotion, msg.Action == tea.MouseActionRelease:
		if !s.tracking {
			return false
		}
		if msg.Action == tea.MouseActionRelease {
			s.tracking = false
		}
		if s.startY-msg.Y >= SwipeThreshold {
			s.tracking = false
			return true
		}
	}
	return false
}
