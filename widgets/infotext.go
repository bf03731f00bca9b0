package widgets

import (
	"image/color"

	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// InfoType is the tone of an InfoText box.
type InfoType int

const (
	InfoNone InfoType = iota
	InfoPositive
	InfoNegative
	InfoNeutral
)

// InfoColors maps each tone to its box color.
var InfoColors = map[InfoType]color.RGBA{
	InfoPositive: {R: 60, G: 170, B: 90, A: 255},
	InfoNegative: cfg.LightRed,
	InfoNeutral:  cfg.LightBlue,
}

// InfoText is a text box whose background color follows its tone, blending
// over the short fade duration when the tone changes.
type InfoText struct {
	Text string
	tone func() InfoType

	displayed InfoType
	current   gamemath.LinearColor
	previous  gamemath.LinearColor
	target    InfoType
	tween     *gween.Tween
}

// NewInfoText creates a box reading its tone every tick.
func NewInfoText(text string, tone func() InfoType) *InfoText {
	return &InfoText{Text: text, tone: tone}
}

// Tick follows tone changes.
func (t *InfoText) Tick(dt float64) {
	if t.tone == nil {
		return
	}
	desired := t.tone()

	switch {
	case desired != InfoNone && t.displayed == InfoNone:
		t.current = infoColor(desired)
		t.previous = t.current
		t.displayed = desired
		t.tween = nil

	case desired != t.displayed:
		if t.tween == nil || t.target != desired {
			t.previous = t.current
			t.target = desired
			t.tween = gween.New(0, 1, float32(cfg.UI.FadeDurationShort), ease.InOutQuad)
		}
		alpha, done := t.tween.Update(float32(dt))
		t.current = gamemath.LerpColor(t.previous, infoColor(desired), float64(alpha))
		if done {
			t.current = infoColor(desired)
			t.previous = t.current
			t.displayed = desired
			t.tween = nil
		}
	}
}

// Color returns the current box color.
func (t *InfoText) Color() color.RGBA {
	return t.current.RGBA()
}

// Displayed returns the tone the box has settled on.
func (t *InfoText) Displayed() InfoType {
	return t.displayed
}

func infoColor(tone InfoType) gamemath.LinearColor {
	c, ok := InfoColors[tone]
	if !ok {
		return gamemath.LinearColor{}
	}
	return gamemath.ColorFrom(c)
}
