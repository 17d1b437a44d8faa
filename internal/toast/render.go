package toast

import (
	"math"
	"strings"

	"toastkit/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Render implements ui.Layer. Each call is a layout pass: the corner radius is
// recomputed from the current height regardless of phase.
func (t *Toast) Render() string {
	if t.layout.Width == 0 {
		return ""
	}
	t.layout.CornerRadius = t.layout.Height / 2
	return renderBox(t.layout, t.shown)
}

// Position implements ui.Layer: horizontally centred in the container, at the
// current animated row.
func (t *Toast) Position() (x, y int) {
	b := t.Bounds()
	return b.X, b.Y
}

// Bounds returns the toast's rectangle in container coordinates.
func (t *Toast) Bounds() Rect {
	cw := 0
	if t.container != nil {
		cw, _ = t.container.Size()
	}
	return Rect{
		X: max((cw-t.layout.Width)/2, 0),
		Y: int(math.Round(t.y)),
		W: t.layout.Width,
		H: t.layout.Height,
	}
}

// Layout returns the geometry from the most recent layout pass.
func (t *Toast) Layout() Layout { return t.layout }

// CornerRadius returns the radius from the most recent layout pass.
func (t *Toast) CornerRadius() int { return t.layout.CornerRadius }

func renderBox(l Layout, a appearance) string {
	bg := lipgloss.NewStyle().Background(a.background)
	fill := func(n int) string {
		if n <= 0 {
			return ""
		}
		return bg.Render(strings.Repeat(" ", n))
	}

	labels := renderLabels(l.Labels.W, a)
	var acc []string
	if l.HasAccessory {
		acc = renderAccessory(l.Accessory.W, l.Accessory.H, a)
	}

	innerH := l.Height - 2*Border
	rows := make([]string, innerH)
	for r := range innerH {
		y := r + Border
		var b strings.Builder
		x := Border
		if l.HasAccessory {
			b.WriteString(fill(l.Accessory.X - x))
			b.WriteString(lineAt(acc, y-l.Accessory.Y, l.Accessory.W, fill))
			x = l.Accessory.X + l.Accessory.W
		}
		b.WriteString(fill(l.Labels.X - x))
		b.WriteString(lineAt(labels, y-l.Labels.Y, l.Labels.W, fill))
		x = l.Labels.X + l.Labels.W
		b.WriteString(fill(l.Width - Border - x))
		rows[r] = b.String()
	}

	border := lipgloss.NormalBorder()
	if l.CornerRadius >= 1 {
		border = lipgloss.RoundedBorder()
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(a.background).
		Render(strings.Join(rows, "\n"))
}

// lineAt returns lines[i], or a blank of width w when i is out of range.
func lineAt(lines []string, i, w int, fill func(int) string) string {
	if i < 0 || i >= len(lines) {
		return fill(w)
	}
	return lines[i]
}

func renderLabels(w int, a appearance) []string {
	base := lipgloss.NewStyle().Background(a.background)
	title := a.titleFont.apply(base).Foreground(a.titleColor)
	lines := []string{title.Render(textutil.Center(textutil.SingleLine(a.title), w))}
	if a.layoutStyle == TitleAndSubtitle && a.subtitle != "" {
		sub := a.subtitleFont.apply(base).Foreground(a.subtitleColor)
		lines = append(lines, sub.Render(textutil.Center(textutil.SingleLine(a.subtitle), w)))
	}
	return lines
}

func renderAccessory(w, h int, a appearance) []string {
	switch a.accessory.Kind() {
	case AccessoryImage:
		return RenderImage(a.accessory.Image(), w, h, a.background)
	case AccessoryView:
		var content []string
		for i, line := range strings.Split(a.accessory.View().View(), "\n") {
			if i == h {
				break
			}
			content = append(content, ansi.Truncate(line, w, ""))
		}
		placed := lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
			strings.Join(content, "\n"),
			lipgloss.WithWhitespaceBackground(a.background))
		return strings.Split(placed, "\n")
	default:
		return nil
	}
}
