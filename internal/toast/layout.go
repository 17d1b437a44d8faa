package toast

import "toastkit/internal/ui/textutil"

// Geometry in terminal cells. Horizontal values are columns, vertical values rows.
// Offsets are measured from the toast's outer edge, border included.
const (
	MinHeight         = 3
	VerticalPadding   = 0
	HorizontalPadding = 4
	AccessorySpace    = 8
	AccessorySize     = 4 // columns; drawn AccessorySize/2 rows tall so it is square on screen
	TopMargin         = 1 // rows between the container's top edge and a shown toast
	Border            = 1
)

// AccessoryPadding is the inset on each side of the accessory region.
func AccessoryPadding() int {
	return (AccessorySpace - AccessorySize) / 2
}

// Rect is a cell rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout is the result of a layout pass. Rects are relative to the toast's
// top-left corner.
type Layout struct {
	Width        int
	Height       int
	Labels       Rect
	Accessory    Rect
	HasAccessory bool
	CornerRadius int
}

// ComputeLayout lays out labels and an optional accessory. maxWidth bounds the
// total width when positive; labels shrink to fit. Each label occupies one row;
// line breaks inside a label are rendered as spaces.
func ComputeLayout(style LayoutStyle, title, subtitle string, hasAccessory bool, maxWidth int) Layout {
	title, subtitle = textutil.SingleLine(title), textutil.SingleLine(subtitle)
	lines := 1
	labelW := textutil.Width(title)
	if style == TitleAndSubtitle && subtitle != "" {
		lines = 2
		labelW = max(labelW, textutil.Width(subtitle))
	}
	labelW = max(labelW, 1)

	var lead, trail int
	if hasAccessory {
		pad := AccessoryPadding()
		lead = pad + AccessorySize + pad
		trail = HorizontalPadding + 2*pad
	} else {
		lead = HorizontalPadding
		trail = HorizontalPadding
	}
	if maxWidth > 0 && lead+labelW+trail > maxWidth {
		labelW = max(maxWidth-lead-trail, 1)
	}

	height := max(MinHeight, lines+2*VerticalPadding+2*Border)
	accRows := AccessorySize / 2
	if hasAccessory {
		height = max(height, accRows+2*Border)
	}

	l := Layout{
		Width:  lead + labelW + trail,
		Height: height,
		Labels: Rect{
			X: lead,
			Y: VerticalPadding + (height-lines-2*VerticalPadding)/2,
			W: labelW,
			H: lines,
		},
		HasAccessory: hasAccessory,
	}
	if hasAccessory {
		l.Accessory = Rect{
			X: AccessoryPadding(),
			Y: (height - accRows) / 2,
			W: AccessorySize,
			H: accRows,
		}
	}
	l.CornerRadius = l.Height / 2
	return l
}
