package widgets

import (
	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/shared/gamemath"
)

// CarouselAnimation cross-fades a fixed number of items around a selected
// index. Alphas are normalized so that they always sum to one.
type CarouselAnimation struct {
	duration float64
	ease     float64
	total    float64
	raw      []float64
	eased    []float64
}

// NewCarouselAnimation creates an animation for size items. An ease of 0
// uses the light ease.
func NewCarouselAnimation(size int, duration, ease float64) *CarouselAnimation {
	if ease == 0 {
		ease = cfg.UI.EaseLight
	}
	return &CarouselAnimation{
		duration: duration,
		ease:     ease,
		total:    1,
		raw:      make([]float64, size),
		eased:    make([]float64, size),
	}
}

// Update moves the selected item toward full opacity and the others toward
// zero.
func (c *CarouselAnimation) Update(selected int, dt float64) {
	if c.duration <= 0 {
		return
	}
	step := dt / c.duration
	c.total = 0
	for i := range c.raw {
		if i == selected {
			c.raw[i] += step
		} else {
			c.raw[i] -= step
		}
		c.raw[i] = gamemath.Clamp(c.raw[i], 0, 1)
		c.eased[i] = gamemath.InterpEaseInOut(0, 1, c.raw[i], c.ease)
		c.total += c.eased[i]
	}
}

// Alpha returns the normalized opacity of item i.
func (c *CarouselAnimation) Alpha(i int) float64 {
	if i < 0 || i >= len(c.eased) || c.total <= 0 {
		return 0
	}
	return c.eased[i] / c.total
}

// Len returns the number of items.
func (c *CarouselAnimation) Len() int {
	return len(c.raw)
}
