// Package toast implements a transient notification overlay for Bubble Tea programs.
//
// A Toast is configured with chained setters, shown on a Container, and hides
// itself after its duration, on an explicit Hide, or when the user swipes up
// over it with the mouse. Its lifecycle is a small state machine:
//
//	Hidden -> Showing -> Shown -> Hiding -> Hidden
//
// Show and Hide are ignored unless the toast is in the phase they start from,
// so callers may call Hide defensively. Both return a tea.Cmd; the host must run
// it and route every message back through Toast.Update so animation frames,
// the auto-hide timer, and mouse gestures reach the toast.
//
//	t := toast.New().
//		WithText("Saved", "Changes applied").
//		WithDuration(500 * time.Millisecond).
//		On(toast.HideEnd, func() { log.Println("gone") })
//	cmd := t.Show(surface)
//
// Layout is composed when Show is called. Changing layout-affecting settings
// while the toast is visible has no effect until the next Show.
package toast
