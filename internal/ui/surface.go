package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Layer is drawn on a Surface above the base content.
// Position is the top-left cell in surface coordinates and may be negative
// or beyond the surface; out-of-bounds cells are clipped.
type Layer interface {
	Render() string
	Position() (x, y int)
}

// Surface hosts layers over base content. Later attachments sit above earlier ones.
type Surface struct {
	width  int
	height int
	layers []Layer
}

// NewSurface creates a surface of the given size in cells.
func NewSurface(width, height int) *Surface {
	return &Surface{width: width, height: height}
}

// Size returns the surface dimensions.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Resize updates the surface dimensions (e.g. on tea.WindowSizeMsg).
func (s *Surface) Resize(width, height int) {
	s.width = width
	s.height = height
}

// Attach adds l on top of all other layers. Attaching a layer that is already
// present moves it to the top instead of adding it twice.
func (s *Surface) Attach(l Layer) {
	s.remove(l)
	s.layers = append(s.layers, l)
}

// Detach removes l. Detaching a layer that is not attached is a no-op.
func (s *Surface) Detach(l Layer) {
	s.remove(l)
}

// Attached reports whether l is currently on the surface.
func (s *Surface) Attached(l Layer) bool {
	for _, cur := range s.layers {
		if cur == l {
			return true
		}
	}
	return false
}

// Layers returns the attached layers, bottom first.
func (s *Surface) Layers() []Layer {
	out := make([]Layer, len(s.layers))
	copy(out, s.layers)
	return out
}

// Len returns the number of attached layers.
func (s *Surface) Len() int {
	return len(s.layers)
}

func (s *Surface) remove(l Layer) {
	for i, cur := range s.layers {
		if cur == l {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			return
		}
	}
}

const resetStyle = "\x1b[0m"

// Compose paints every layer over base. When the surface has a height, the
// result has exactly that many lines.
func (s *Surface) Compose(base string) string {
	lines := strings.Split(base, "\n")
	if s.height > 0 {
		switch {
		case len(lines) > s.height:
			lines = lines[:s.height]
		case len(lines) < s.height:
			lines = append(lines, make([]string, s.height-len(lines))...)
		}
	}

	for _, l := range s.layers {
		x, y := l.Position()
		for i, row := range strings.Split(l.Render(), "\n") {
			target := y + i
			if target < 0 || target >= len(lines) {
				continue
			}
			lines[target] = s.paint(lines[target], row, x)
		}
	}
	return strings.Join(lines, "\n")
}

// paint overlays row onto line starting at column x.
func (s *Surface) paint(line, row string, x int) string {
	if x < 0 {
		row = ansi.TruncateLeft(row, -x, "")
		x = 0
	}
	if s.width > 0 {
		if x >= s.width {
			return line
		}
		if x+ansi.StringWidth(row) > s.width {
			row = ansi.Truncate(row, s.width-x, "")
		}
	}
	w := ansi.StringWidth(row)
	if w == 0 {
		return line
	}

	left := ansi.Truncate(line, x, "")
	if lw := ansi.StringWidth(left); lw < x {
		left += strings.Repeat(" ", x-lw)
	}
	right := ansi.TruncateLeft(line, x+w, "")
	return left + resetStyle + row + resetStyle + right
}
