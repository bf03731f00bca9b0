package widgets

import (
	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/shared/gamemath"
)

// FadingWidget fades its content out, swaps it while invisible and fades
// it back in. With FadeOut set the content also fades away on its own
// after DisplayDuration.
type FadingWidget struct {
	FadeDuration    float64
	DisplayDuration float64
	FadeOut         bool

	// IsDirty requests a content swap. IsHidden keeps the widget faded out.
	// OnUpdate performs the swap while fully transparent.
	IsDirty  func() bool
	IsHidden func() bool
	OnUpdate func()

	fadeTime    float64
	displayTime float64
	alpha       float64
}

// NewFadingWidget creates a widget that fades over the short duration.
func NewFadingWidget(fadeOut bool, displayDuration float64) *FadingWidget {
	w := &FadingWidget{
		FadeDuration:    cfg.UI.FadeDurationShort,
		DisplayDuration: displayDuration,
		FadeOut:         fadeOut,
	}
	w.Reset()
	return w
}

// Reset makes the widget transparent.
func (w *FadingWidget) Reset() {
	w.fadeTime = 0
	w.alpha = 0
	w.displayTime = w.DisplayDuration
}

// Restart shows the content again for a full display duration.
func (w *FadingWidget) Restart() {
	w.displayTime = 0
}

// Tick advances the fade and swaps content when transparent.
func (w *FadingWidget) Tick(dt float64) {
	dirty := w.IsDirty != nil && w.IsDirty()
	hidden := w.IsHidden != nil && w.IsHidden()

	if (w.FadeOut && w.displayTime > w.DisplayDuration) || dirty || hidden {
		w.fadeTime -= dt
	} else {
		w.fadeTime += dt
	}
	w.fadeTime = gamemath.Clamp(w.fadeTime, 0, w.FadeDuration)
	w.alpha = gamemath.InterpEaseInOut(0, 1, w.fadeTime/w.FadeDuration, cfg.UI.EaseStandard)

	if w.fadeTime <= 0 && dirty {
		w.displayTime = 0
		if w.OnUpdate != nil {
			w.OnUpdate()
		}
	} else {
		w.displayTime += dt
	}
}

// Alpha returns the eased opacity.
func (w *FadingWidget) Alpha() float64 {
	return w.alpha
}

// ColorAlpha is Alpha with faint values dropped.
func (w *FadingWidget) ColorAlpha() float64 {
	if w.alpha > 0.1 {
		return w.alpha
	}
	return 0
}

// FadingText is a label that fades out before its text changes.
type FadingText struct {
	*FadingWidget
	source  func() string
	desired string
	current string
}

// NewFadingText creates a label reading its text from source every tick.
func NewFadingText(source func() string) *FadingText {
	t := &FadingText{FadingWidget: NewFadingWidget(false, 0), source: source}
	t.IsDirty = func() bool { return t.desired != t.current }
	t.OnUpdate = func() { t.current = t.desired }
	return t
}

// Tick reads the source and advances the fade.
func (t *FadingText) Tick(dt float64) {
	if t.source != nil {
		t.desired = t.source()
	}
	t.FadingWidget.Tick(dt)
}

// Text returns the text currently displayed.
func (t *FadingText) Text() string {
	return t.current
}
