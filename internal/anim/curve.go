// Package anim drives time-based value animations on the Bubble Tea event loop.
//
// Animations advance on FrameMsg ticks rather than goroutines, so every value
// change happens inside Update alongside the rest of the model's state.
package anim

import "math"

// Curve is a cubic Bézier timing function anchored at (0,0) and (1,1).
// X1/Y1 and X2/Y2 are the two control points.
type Curve struct {
	X1, Y1, X2, Y2 float64
}

// Linear progresses at a constant rate.
var Linear = Curve{X1: 0, Y1: 0, X2: 1, Y2: 1}

const (
	newtonIterations = 8
	bisectIterations = 50
	epsilon          = 1e-7
)

// NewCurve returns a curve with the given control points.
// X coordinates are clamped to [0, 1] so the curve stays a function of time.
func NewCurve(x1, y1, x2, y2 float64) Curve {
	return Curve{X1: clamp01(x1), Y1: y1, X2: clamp01(x2), Y2: y2}
}

// Ease maps linear progress x in [0, 1] to eased progress.
func (c Curve) Ease(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return bezier(c.solve(x), c.Y1, c.Y2)
}

// solve finds the curve parameter t whose x coordinate equals x.
func (c Curve) solve(x float64) float64 {
	t := x
	for range newtonIterations {
		dx := bezier(t, c.X1, c.X2) - x
		if math.Abs(dx) < epsilon {
			return t
		}
		slope := bezierSlope(t, c.X1, c.X2)
		if math.Abs(slope) < 1e-6 {
			break
		}
		t -= dx / slope
	}

	// Newton failed to converge (flat slope); fall back to bisection.
	lo, hi := 0.0, 1.0
	t = x
	for range bisectIterations {
		v := bezier(t, c.X1, c.X2)
		if math.Abs(v-x) < epsilon {
			break
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

func bezier(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
