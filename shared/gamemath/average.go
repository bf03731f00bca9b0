package gamemath

import (
	"image/color"

	dmath "github.com/yohamta/donburi/features/math"
)

// Blend tells a TimedAverage how to sum and scale its samples.
type Blend[T any] struct {
	Add   func(a, b T) T
	Scale func(v T, f float64) T
}

// FloatBlend averages plain scalars.
var FloatBlend = Blend[float64]{
	Add:   func(a, b float64) float64 { return a + b },
	Scale: func(v, f float64) float64 { return v * f },
}

// Vec2Blend averages donburi vectors, used for pointer smoothing.
var Vec2Blend = Blend[dmath.Vec2]{
	Add: func(a, b dmath.Vec2) dmath.Vec2 {
		return dmath.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
	},
	Scale: func(v dmath.Vec2, f float64) dmath.Vec2 {
		return dmath.Vec2{X: v.X * f, Y: v.Y * f}
	},
}

// ColorBlend averages linear colors.
var ColorBlend = Blend[LinearColor]{
	Add: func(a, b LinearColor) LinearColor {
		return LinearColor{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B, A: a.A + b.A}
	},
	Scale: func(v LinearColor, f float64) LinearColor {
		return LinearColor{R: v.R * f, G: v.G * f, B: v.B * f, A: v.A * f}
	},
}

type sample[T any] struct {
	elapsed float64
	value   T
}

// TimedAverage keeps the samples received during the last period seconds
// and exposes their mean. The newest sample sits at the front; the sum of
// stored elapsed times never exceeds the period.
type TimedAverage[T any] struct {
	blend   Blend[T]
	period  float64
	samples []sample[T]
	average T
}

// NewTimedAverage creates an average over the given period in seconds.
func NewTimedAverage[T any](period float64, blend Blend[T]) *TimedAverage[T] {
	a := &TimedAverage[T]{blend: blend}
	a.SetPeriod(period)
	return a
}

// SetPeriod changes the window length and trims accordingly.
func (a *TimedAverage[T]) SetPeriod(period float64) {
	a.period = period
	a.Update()
}

// Period returns the window length.
func (a *TimedAverage[T]) Period() float64 {
	return a.period
}

// Set records a new sample that took dt seconds. A negative dt, or one
// longer than the period, counts as a full period.
func (a *TimedAverage[T]) Set(v T, dt float64) {
	if dt > a.period || dt < 0 {
		dt = a.period
	}
	a.samples = append(a.samples, sample[T]{})
	copy(a.samples[1:], a.samples)
	a.samples[0] = sample[T]{elapsed: dt, value: v}
	a.Update()
}

// Get returns the current average.
func (a *TimedAverage[T]) Get() T {
	return a.average
}

// Num returns the number of retained samples.
func (a *TimedAverage[T]) Num() int {
	return len(a.samples)
}

// Clear drops every sample; the average becomes the zero value.
func (a *TimedAverage[T]) Clear() {
	a.samples = a.samples[:0]
	a.Update()
}

// Update evicts samples past the period and recomputes the average.
func (a *TimedAverage[T]) Update() {
	total := 0.0
	valid := 0
	for _, s := range a.samples {
		total += s.elapsed
		if total > a.period {
			break
		}
		valid++
	}
	a.samples = a.samples[:valid]

	var zero T
	if len(a.samples) == 0 {
		a.average = zero
		return
	}

	sum := zero
	for _, s := range a.samples {
		sum = a.blend.Add(sum, s.value)
	}
	a.average = a.blend.Scale(sum, 1/float64(len(a.samples)))
}

// LinearColor is a float color used for blending.
type LinearColor struct {
	R, G, B, A float64
}

// ColorFrom converts any color to a LinearColor in [0, 1].
func ColorFrom(c color.Color) LinearColor {
	r, g, b, a := c.RGBA()
	return LinearColor{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
		A: float64(a) / 0xffff,
	}
}

// RGBA converts back to an 8-bit color.
func (c LinearColor) RGBA() color.RGBA {
	to8 := func(v float64) uint8 {
		return uint8(Clamp(v, 0, 1)*255 + 0.5)
	}
	return color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// WithAlpha returns c with its alpha multiplied by alpha.
func (c LinearColor) WithAlpha(alpha float64) LinearColor {
	c.A *= alpha
	return c
}

// LerpColor blends two colors.
func LerpColor(a, b LinearColor, t float64) LinearColor {
	return LinearColor{
		R: Lerp(a.R, b.R, t),
		G: Lerp(a.G, b.G, t),
		B: Lerp(a.B, b.B, t),
		A: Lerp(a.A, b.A, t),
	}
}
