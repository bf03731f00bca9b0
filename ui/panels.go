package ui

import (
	"fmt"
	"math"
	"strings"

	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/controls"
	"github.com/automoto/neutron/i18n"
	"github.com/automoto/neutron/navigation"
	"github.com/automoto/neutron/shared/gamemath"
	"github.com/automoto/neutron/widgets"
)

// ButtonPanel is a tab page whose buttons the renderer draws.
type ButtonPanel interface {
	navigation.Panel
	Buttons() []*widgets.Button
}

// column returns the bounds of row i of a centered button column.
func column(i int) gamemath.Rect {
	w, h := cfg.Menu.ButtonWidth, cfg.Menu.ButtonHeight
	x := (float64(cfg.C.Width) - w) / 2
	return gamemath.NewRect(x, cfg.Menu.MenuStartY+float64(i)*(h+cfg.Menu.ButtonGap), w, h)
}

// PlayPanel starts, resumes or quits the game.
type PlayPanel struct {
	*navigation.BasePanel
	menu *MainMenu

	Start  *widgets.Button
	Resume *widgets.Button
	Quit   *widgets.Button
}

func newPlayPanel(m *MainMenu) *PlayPanel {
	p := &PlayPanel{BasePanel: navigation.NewBasePanel("play", nil), menu: m}

	p.Start = widgets.NewButton(m.mgr, p, "",
		widgets.WithBounds(column(0)),
		widgets.WithVisible(func() bool { return !m.inGame }),
		widgets.WithOnClick(m.start))
	p.Resume = widgets.NewButton(m.mgr, p, "",
		widgets.WithBounds(column(0)),
		widgets.WithVisible(func() bool { return m.inGame }),
		widgets.WithOnClick(m.resume))
	p.Quit = widgets.NewButton(m.mgr, p, "",
		widgets.WithBounds(column(1)),
		widgets.WithOnClick(m.confirmQuit))

	_ = p.Register(p.Start, true)
	_ = p.Register(p.Resume, false)
	_ = p.Register(p.Quit, false)
	return p
}

func (p *PlayPanel) relabel(cat *i18n.Catalog) {
	p.Start.SetLabel(cat.T("play.start"))
	p.Start.SetTooltip(cat.T("play.start.tooltip"))
	p.Resume.SetLabel(cat.T("play.resume"))
	p.Resume.SetTooltip(cat.T("play.resume.tooltip"))
	p.Quit.SetLabel(cat.T("play.quit"))
	p.Quit.SetTooltip(cat.T("play.quit.tooltip"))
}

// OnKeyPressed resumes the game on cancel.
func (p *PlayPanel) OnKeyPressed(a cfg.ActionID) bool {
	if a == cfg.ActionCancel && p.menu.inGame {
		p.Resume.Click()
		return true
	}
	return false
}

func (p *PlayPanel) Buttons() []*widgets.Button {
	return []*widgets.Button{p.Start, p.Resume, p.Quit}
}

// SettingsPanel edits volume, fullscreen and language. Left and right
// change the focused value; the analog stick also drives the volume.
type SettingsPanel struct {
	*navigation.BasePanel
	menu *MainMenu

	Volume     *widgets.Slider
	Fullscreen *widgets.Button
	Language   *widgets.Button
}

func newSettingsPanel(m *MainMenu) *SettingsPanel {
	p := &SettingsPanel{BasePanel: navigation.NewBasePanel("settings", nil), menu: m}

	p.Volume = widgets.NewSlider(m.mgr, p, "", widgets.SliderConfig{
		Min:   0,
		Max:   1,
		Step:  cfg.SettingsMenu.VolumeStep,
		Value: m.settings.SFXVolume,
		OnValueChanged: func(v float64) {
			m.settings.SFXVolume = v
			m.settingsChanged()
		},
	},
		widgets.WithBounds(column(0)),
		widgets.WithOnClick(p.cycleVolume))
	p.Fullscreen = widgets.NewButton(m.mgr, p, "",
		widgets.WithBounds(column(1)),
		widgets.WithToggle(m.settings.Fullscreen),
		widgets.WithOnClick(func() {
			m.settings.Fullscreen = p.Fullscreen.IsActive()
			m.settingsChanged()
		}))
	p.Language = widgets.NewButton(m.mgr, p, "",
		widgets.WithBounds(column(2)),
		widgets.WithOnClick(func() { p.stepLocale(1) }))

	_ = p.Register(p.Volume.Button, true)
	_ = p.Register(p.Fullscreen, false)
	_ = p.Register(p.Language, false)
	return p
}

func (p *SettingsPanel) relabel(cat *i18n.Catalog) {
	percent := int(math.Round(p.menu.settings.SFXVolume * 100))
	p.Volume.SetLabel(cat.T("settings.volume", map[string]any{"Percent": percent}))
	p.Volume.SetTooltip(cat.T("settings.volume.tooltip"))
	p.Fullscreen.SetLabel(cat.T("settings.fullscreen"))
	p.Fullscreen.SetTooltip(cat.T("settings.fullscreen.tooltip"))
	p.Language.SetLabel(cat.T("settings.language", map[string]any{"Name": i18n.LocaleName(cat.Locale())}))
	p.Language.SetTooltip(cat.T("settings.language.tooltip"))
}

// OnKeyPressed steps the focused value.
func (p *SettingsPanel) OnKeyPressed(a cfg.ActionID) bool {
	dir := 0
	switch a {
	case cfg.ActionLeft:
		dir = -1
	case cfg.ActionRight:
		dir = 1
	default:
		return false
	}

	switch p.Graph().Focused() {
	case navigation.Focusable(p.Volume.Button):
		p.Volume.Step(dir)
	case navigation.Focusable(p.Language):
		p.stepLocale(dir)
	default:
		return false
	}
	return true
}

// cycleVolume steps the volume up, wrapping to silence past the loudest
// step.
func (p *SettingsPanel) cycleVolume() {
	if !p.Volume.Step(1) {
		p.Volume.SetValue(p.Volume.Min())
		p.menu.settings.SFXVolume = p.Volume.Value()
		p.menu.settingsChanged()
	}
}

// Sliders returns the sliders drawn with a value bar.
func (p *SettingsPanel) Sliders() []*widgets.Slider {
	return []*widgets.Slider{p.Volume}
}

func (p *SettingsPanel) stepLocale(dir int) {
	locales := p.menu.cat.Locales()
	if len(locales) == 0 {
		return
	}
	current := 0
	for i, tag := range locales {
		if tag == p.menu.cat.Locale() {
			current = i
			break
		}
	}
	next := locales[(current+dir+len(locales))%len(locales)]
	if _, err := p.menu.cat.SetLocale(next.String()); err != nil {
		p.menu.log.Warn("locale change failed", "locale", next.String(), "error", err)
		return
	}
	p.menu.settings.Locale = next.String()
	p.menu.relabel()
	p.menu.settingsChanged()
}

// Tick animates the buttons and the volume bar.
func (p *SettingsPanel) Tick(dt float64) {
	p.Volume.Tick(dt)
	p.Fullscreen.Tick(dt)
	p.Language.Tick(dt)
}

func (p *SettingsPanel) Buttons() []*widgets.Button {
	return []*widgets.Button{p.Volume.Button, p.Fullscreen, p.Language}
}

// ControlsPanel lists the key bindings with device filters and a text
// query. Next and previous page through the list. Clicking a row waits for
// the next key or gamepad button and binds it to that row's action.
type ControlsPanel struct {
	*navigation.BasePanel
	menu *MainMenu

	List    *widgets.ListView[cfg.ActionID]
	Binding *widgets.KeyBinding[cfg.ActionID, controls.Input]
}

const (
	filterKeyboard = iota
	filterGamepad
)

func newControlsPanel(m *MainMenu) *ControlsPanel {
	p := &ControlsPanel{BasePanel: navigation.NewBasePanel("controls", nil), menu: m}

	first := column(1)
	p.List = widgets.NewListView[cfg.ActionID](m.mgr, p, widgets.ListViewConfig[cfg.ActionID]{
		Bounds:        gamemath.NewRect(first.X-first.W/2, first.Y, first.W*2, cfg.Menu.ButtonHeight*0.75),
		Gap:           cfg.Menu.ButtonGap / 2,
		VisibleRows:   cfg.Menu.ListVisibleRows,
		Items:         p.actions,
		Label:         p.label,
		Tooltip:       p.tooltip,
		FilterOptions: []string{"", ""},
		FilterItem:    p.filter,
		OnClicked:     p.beginBinding,
	})
	p.Binding = widgets.NewKeyBinding(m.mgr, p.rebind)
	return p
}

func (p *ControlsPanel) beginBinding(a cfg.ActionID, row *widgets.Button) {
	p.Binding.Begin(a, row)
	row.SetLabel(fmt.Sprintf("%s: %s", a, p.menu.cat.T("controls.press_key")))
	p.menu.log.Debug("waiting for binding", "action", a.String())
}

func (p *ControlsPanel) rebind(a cfg.ActionID, in controls.Input) {
	p.menu.keys.Rebind(a, in)
	p.menu.log.Info("action rebound", "action", a.String(), "input", in.Label(), "gamepad", in.Gamepad)
	p.List.Refresh(-1)
	p.menu.settingsChanged()
}

// cancelBinding drops a running wait and restores the row label.
func (p *ControlsPanel) cancelBinding() {
	if !p.Binding.IsWaiting() {
		return
	}
	p.Binding.Cancel()
	p.List.Refresh(-1)
}

// Tick animates the list and ends a wait whose row lost focus.
func (p *ControlsPanel) Tick(dt float64) {
	p.List.Tick(dt)
	if p.Binding.IsWaiting() {
		p.Binding.Tick()
		if !p.Binding.IsWaiting() {
			p.List.Refresh(-1)
		}
	}
}

func (p *ControlsPanel) actions() []cfg.ActionID {
	var out []cfg.ActionID
	for _, a := range p.menu.keys.Actions() {
		if a != cfg.ActionNone {
			out = append(out, a)
		}
	}
	return out
}

func (p *ControlsPanel) label(a cfg.ActionID) string {
	keys := p.menu.keys.Labels(a, p.menu.mgr.IsUsingGamepad())
	if len(keys) == 0 {
		return fmt.Sprintf("%s: %s", a, p.menu.cat.T("controls.unbound"))
	}
	return fmt.Sprintf("%s: %s", a, strings.Join(keys, ", "))
}

func (p *ControlsPanel) tooltip(a cfg.ActionID) string {
	all := append(p.menu.keys.Labels(a, false), p.menu.keys.Labels(a, true)...)
	if len(all) == 0 {
		return p.menu.cat.T("controls.unbound")
	}
	return p.menu.cat.T("controls.binding.tooltip", map[string]any{"Keys": strings.Join(all, ", ")})
}

// filter keeps actions bound on every enabled device.
func (p *ControlsPanel) filter(a cfg.ActionID, enabled []int) bool {
	b := p.menu.keys.Binding(a)
	for _, f := range enabled {
		switch f {
		case filterKeyboard:
			if len(b.Keys) == 0 {
				return false
			}
		case filterGamepad:
			if len(b.Buttons) == 0 {
				return false
			}
		}
	}
	return true
}

func (p *ControlsPanel) relabel(cat *i18n.Catalog) {
	filters := p.List.FilterButtons()
	filters[filterKeyboard].SetLabel(cat.T("controls.filter.keyboard"))
	filters[filterGamepad].SetLabel(cat.T("controls.filter.gamepad"))
	p.List.Refresh(-1)
}

// Next pages down.
func (p *ControlsPanel) Next() {
	p.page(1)
}

// Previous pages up.
func (p *ControlsPanel) Previous() {
	p.page(-1)
}

func (p *ControlsPanel) page(dir int) {
	n := len(p.List.Items())
	if n == 0 {
		return
	}
	i := min(max(p.List.SelectedIndex()+dir*cfg.Menu.ListVisibleRows, 0), n-1)
	p.List.Refresh(i)
}

// Buttons returns the filters and the rows inside the viewport.
func (p *ControlsPanel) Buttons() []*widgets.Button {
	out := append([]*widgets.Button(nil), p.List.FilterButtons()...)
	rows := p.List.Buttons()
	from, to := p.List.VisibleRange()
	return append(out, rows[from:to]...)
}
