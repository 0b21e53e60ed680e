package cluster

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Easing is a gween easing function: t elapsed of d total, from b by change c.
type Easing = ease.TweenFunc

var (
	Linear Easing = ease.Linear

	// AccelerateDecelerate starts and ends slowly, speeding up in the middle.
	AccelerateDecelerate Easing = ease.InOutSine

	// FastOutSlowIn is the material motion curve, cubic-bezier(0.4, 0, 0.2, 1).
	FastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)
)

const (
	bezierEpsilon    = 1e-7
	bezierNewtonIter = 8
)

// CubicBezier returns the CSS-style easing defined by control points (x1,y1) and (x2,y2).
// x1 and x2 must be in [0,1].
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	// polynomial coefficients, p(t) = ((a*t + b)*t + c)*t
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	slopeX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	solve := func(x float64) float64 {
		t := x
		for i := 0; i < bezierNewtonIter; i++ {
			d := sampleX(t) - x
			if math.Abs(d) < bezierEpsilon {
				return t
			}
			s := slopeX(t)
			if math.Abs(s) < 1e-6 {
				break
			}
			t -= d / s
		}

		lo, hi := 0.0, 1.0
		t = x
		for lo < hi {
			v := sampleX(t)
			if math.Abs(v-x) < bezierEpsilon {
				return t
			}
			if x > v {
				lo = t
			} else {
				hi = t
			}
			if hi-lo < bezierEpsilon {
				break
			}
			t = (lo + hi) / 2
		}
		return t
	}

	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		x := float64(t / d)
		if x <= 0 {
			return b
		}
		if x >= 1 {
			return b + c
		}
		return b + c*float32(sampleY(solve(x)))
	}
}
