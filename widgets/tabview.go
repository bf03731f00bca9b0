package widgets

import (
	"log/slog"

	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/logging"
	"github.com/automoto/neutron/navigation"
	"github.com/automoto/neutron/shared/gamemath"
)

// Tab describes one page of a TabView.
type Tab struct {
	Panel   navigation.Panel
	Label   string
	Tooltip string
	Action  cfg.ActionID
	Blurred bool

	// Visible decides whether the tab is offered. Nil means always.
	Visible func() bool
}

type tabState struct {
	Tab
	shown  bool
	alpha  float64
	header *Button
}

// TabView shows one panel at a time out of several and cross-fades between
// them. The outgoing panel fades out completely before the incoming one
// fades in and takes navigation.
type TabView struct {
	menu Menu
	log  *slog.Logger

	tabs      []*tabState
	current   int
	desired   int
	blurAlpha float64

	Previous *Button
	Next     *Button
}

// TabViewOpt configures a TabView.
type TabViewOpt func(*TabView)

// WithTabLogger sets the logger for tab changes.
func WithTabLogger(l *slog.Logger) TabViewOpt {
	return func(v *TabView) { v.log = l }
}

// NewTabView creates a tab view with a header button per tab laid out from
// header. The previous/next header buttons answer the tab actions from any
// panel.
func NewTabView(menu Menu, header gamemath.Rect, tabs []Tab, opts ...TabViewOpt) *TabView {
	v := &TabView{menu: menu, log: logging.Discard()}
	for _, opt := range opts {
		opt(v)
	}

	arrow := header.H
	x := header.X + arrow + cfg.Menu.ButtonGap
	for i, t := range tabs {
		i := i
		st := &tabState{Tab: t}
		st.header = NewButton(menu, v, t.Label,
			WithBounds(gamemath.NewRect(x, header.Y, cfg.Menu.TabWidth, header.H)),
			WithTooltip(t.Tooltip),
			WithAction(t.Action, false),
			WithFocusable(false),
			WithOnClick(func() { v.SetTabIndex(i) }),
			WithVisible(func() bool { return v.IsTabVisible(i) }),
			WithEnabled(func() bool { return v.IsTabEnabled(i) }),
			WithSound(cfg.SoundTabChange))
		if t.Action != cfg.ActionNone && menu != nil {
			menu.RegisterActionButton(st.header, true)
		}
		v.tabs = append(v.tabs, st)
		x += cfg.Menu.TabWidth + cfg.Menu.ButtonGap
	}

	v.Previous = NewButton(menu, v, "<",
		WithBounds(gamemath.NewRect(header.X, header.Y, arrow, header.H)),
		WithAction(cfg.ActionPreviousTab, false),
		WithFocusable(false),
		WithOnClick(v.ShowPreviousTab),
		WithEnabled(func() bool { return v.previousVisible() >= 0 }),
		WithSound(cfg.SoundTabChange))
	v.Next = NewButton(menu, v, ">",
		WithBounds(gamemath.NewRect(x, header.Y, arrow, header.H)),
		WithAction(cfg.ActionNextTab, false),
		WithFocusable(false),
		WithOnClick(v.ShowNextTab),
		WithEnabled(func() bool { return v.nextVisible() >= 0 }),
		WithSound(cfg.SoundTabChange))
	if menu != nil {
		menu.RegisterActionButton(v.Previous, true)
		menu.RegisterActionButton(v.Next, true)
	}
	return v
}

// Parent makes the tab view the root of its header buttons.
func (v *TabView) Parent() navigation.Node { return nil }

// Tick runs the fallback search, the per-tab fades and the blur fade.
func (v *TabView) Tick(dt float64) {
	if len(v.tabs) == 0 {
		return
	}

	if !v.IsTabVisible(v.current) && !v.IsTabVisible(v.desired) {
		n := len(v.tabs)
		for i := 0; i < n; i++ {
			rel := (i/2 + 1)
			if i%2 == 0 {
				rel = -rel
			}
			idx := v.current + rel%n
			if idx >= 0 && idx < n && v.IsTabVisible(idx) {
				v.log.Info("tab hidden, falling back", "from", v.current, "to", idx)
				v.SetTabIndex(idx)
				break
			}
		}
	}

	for i, t := range v.tabs {
		v.tickTab(i, t, dt)
	}

	if v.current != v.desired && v.tabs[v.current].alpha == 0 {
		v.current = v.desired
	}

	sign := -1.0
	if v.tabs[v.current].Blurred {
		sign = 1
	}
	v.blurAlpha = gamemath.Clamp(v.blurAlpha+sign*dt/cfg.UI.FadeDurationMinimal, 0, 1)

	for _, t := range v.tabs {
		t.header.Tick(dt)
	}
	v.Previous.Tick(dt)
	v.Next.Tick(dt)
}

func (v *TabView) tickTab(i int, t *tabState, dt float64) {
	step := dt / cfg.UI.FadeDurationShort
	if i != v.desired {
		t.alpha -= step
	} else if i == v.current {
		t.alpha += step
	}
	t.alpha = gamemath.Clamp(t.alpha, 0, 1)

	if !t.shown && t.alpha > 0 {
		t.shown = true
		if v.menu != nil {
			if err := v.menu.SetNavigationPanel(t.Panel); err != nil {
				v.log.Warn("tab show failed", "tab", i, "error", err)
			}
		}
	} else if t.shown && t.alpha == 0 {
		t.shown = false
		if v.menu != nil && v.menu.CurrentPanel() == t.Panel {
			v.menu.ClearNavigationPanel()
		}
	}
}

// SetTabIndex requests a tab. Out of range indices and the current tab are
// ignored.
func (v *TabView) SetTabIndex(i int) {
	if i < 0 || i >= len(v.tabs) || i == v.current {
		return
	}
	v.log.Debug("tab requested", "index", i, "current", v.current)
	v.desired = i
}

// Hide drops every tab to transparent at once and releases navigation, so
// the current tab fades back in and takes navigation on the next show.
func (v *TabView) Hide() {
	for _, t := range v.tabs {
		if t.shown && v.menu != nil && v.menu.CurrentPanel() == t.Panel {
			v.menu.ClearNavigationPanel()
		}
		t.shown = false
		t.alpha = 0
	}
	v.current = v.desired
}

// ShowPreviousTab moves to the nearest visible tab on the left.
func (v *TabView) ShowPreviousTab() {
	if i := v.previousVisible(); i >= 0 {
		v.SetTabIndex(i)
	}
}

// ShowNextTab moves to the nearest visible tab on the right.
func (v *TabView) ShowNextTab() {
	if i := v.nextVisible(); i >= 0 {
		v.SetTabIndex(i)
	}
}

func (v *TabView) previousVisible() int {
	for i := v.current - 1; i >= 0; i-- {
		if v.IsTabVisible(i) {
			return i
		}
	}
	return -1
}

func (v *TabView) nextVisible() int {
	for i := v.current + 1; i < len(v.tabs); i++ {
		if v.IsTabVisible(i) {
			return i
		}
	}
	return -1
}

// IsTabVisible reports whether tab i is offered.
func (v *TabView) IsTabVisible(i int) bool {
	if i < 0 || i >= len(v.tabs) {
		return false
	}
	if fn := v.tabs[i].Visible; fn != nil {
		return fn()
	}
	return true
}

// IsTabEnabled reports whether the header of tab i can be clicked, which
// is the case for every tab but the requested one.
func (v *TabView) IsTabEnabled(i int) bool {
	return v.desired != i
}

// GetCurrentTabIndex returns the tab currently shown or fading out.
func (v *TabView) GetCurrentTabIndex() int { return v.current }

// GetDesiredTabIndex returns the requested tab.
func (v *TabView) GetDesiredTabIndex() int { return v.desired }

// GetCurrentTabAlpha returns the opacity of the current tab.
func (v *TabView) GetCurrentTabAlpha() float64 {
	if len(v.tabs) == 0 {
		return 0
	}
	return v.tabs[v.current].alpha
}

// GetTabAlpha returns the opacity of tab i.
func (v *TabView) GetTabAlpha(i int) float64 {
	if i < 0 || i >= len(v.tabs) {
		return 0
	}
	return v.tabs[i].alpha
}

// GetBlurAlpha returns the eased background blur amount.
func (v *TabView) GetBlurAlpha() float64 {
	return gamemath.InterpEaseInOut(0, 1, v.blurAlpha, cfg.UI.EaseStandard)
}

// GetPanelBlurAlpha returns the blur amount of tab i, which only starts
// once the tab is mostly opaque.
func (v *TabView) GetPanelBlurAlpha(i int) float64 {
	a := v.GetTabAlpha(i)
	off := cfg.UI.BlurAlphaOffset
	corrected := gamemath.Clamp((a-off)/(1-off), 0, 1)
	return gamemath.InterpEaseInOut(0, 1, corrected, cfg.UI.EaseStandard)
}

// Headers returns the tab header buttons in order.
func (v *TabView) Headers() []*Button {
	out := make([]*Button, len(v.tabs))
	for i, t := range v.tabs {
		out[i] = t.header
	}
	return out
}

// Len returns the number of tabs.
func (v *TabView) Len() int { return len(v.tabs) }

// Panel returns the panel of tab i.
func (v *TabView) Panel(i int) navigation.Panel {
	if i < 0 || i >= len(v.tabs) {
		return nil
	}
	return v.tabs[i].Panel
}
