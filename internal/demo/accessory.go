package demo

import (
	"image"
	"image/color"
	"math"

	"toastkit/internal/ui"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerView adapts a bubbles spinner to ui.View so it can sit in a toast's
// accessory slot.
type SpinnerView struct {
	spinner spinner.Model
}

// Ensure SpinnerView implements ui.View.
var _ ui.View = (*SpinnerView)(nil)

// NewSpinnerView creates a dot spinner in the accent color.
func NewSpinnerView() *SpinnerView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorAccent))
	return &SpinnerView{spinner: s}
}

// Init implements ui.View.
func (v *SpinnerView) Init() tea.Cmd {
	return v.spinner.Tick
}

// Update implements ui.View.
func (v *SpinnerView) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	var cmd tea.Cmd
	v.spinner, cmd = v.spinner.Update(msg)
	return v, cmd
}

// View implements ui.View.
func (v *SpinnerView) View() string {
	return v.spinner.View()
}

var (
	checkGreen = color.RGBA{R: 0x34, G: 0xC7, B: 0x59, A: 0xFF}
	checkWhite = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Checkmark draws a green disc with a white tick, size pixels square.
// Pixels outside the disc are transparent.
func Checkmark(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if size <= 0 {
		return img
	}
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			if dx*dx+dy*dy > r*r {
				continue
			}
			img.Set(x, y, checkGreen)
			if onTick(float64(x)/float64(size), float64(y)/float64(size)) {
				img.Set(x, y, checkWhite)
			}
		}
	}
	return img
}

// onTick reports whether the normalized point lies on the tick stroke:
// a short leg down to (0.42, 0.68) then a long leg up to (0.76, 0.32).
func onTick(u, v float64) bool {
	const stroke = 0.09
	switch {
	case u >= 0.24 && u <= 0.42:
		return math.Abs(v-(0.50+(u-0.24))) <= stroke
	case u > 0.42 && u <= 0.76:
		return math.Abs(v-(0.68-(u-0.42)*0.36/0.34)) <= stroke
	}
	return false
}
