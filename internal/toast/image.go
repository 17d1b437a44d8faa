package toast

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const upperHalfBlock = "▀"

// RenderImage draws img into cols x rows cells using upper half blocks, so each
// cell shows two vertically stacked pixels. Pixels are sampled nearest-neighbour
// from a cols x 2*rows grid. Transparent pixels show bg.
func RenderImage(img image.Image, cols, rows int, bg lipgloss.TerminalColor) []string {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	blank := lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", cols))
	out := make([]string, rows)
	if img == nil || img.Bounds().Empty() {
		for i := range out {
			out[i] = blank
		}
		return out
	}

	b := img.Bounds()
	sample := func(gx, gy int) (lipgloss.TerminalColor, bool) {
		px := b.Min.X + (2*gx+1)*b.Dx()/(2*cols)
		py := b.Min.Y + (2*gy+1)*b.Dy()/(4*rows)
		c := color.NRGBAModel.Convert(img.At(px, py)).(color.NRGBA)
		if c.A < 0x80 {
			return bg, false
		}
		return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)), true
	}

	for cy := range rows {
		var line strings.Builder
		for cx := range cols {
			top, topOK := sample(cx, 2*cy)
			bottom, bottomOK := sample(cx, 2*cy+1)
			if !topOK && !bottomOK {
				line.WriteString(lipgloss.NewStyle().Background(bg).Render(" "))
				continue
			}
			line.WriteString(lipgloss.NewStyle().
				Foreground(top).
				Background(bottom).
				Render(upperHalfBlock))
		}
		out[cy] = line.String()
	}
	return out
}
