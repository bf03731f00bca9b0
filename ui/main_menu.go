package ui

import (
	"log/slog"
	"math"

	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/controls"
	"github.com/automoto/neutron/i18n"
	"github.com/automoto/neutron/logging"
	"github.com/automoto/neutron/menu"
	"github.com/automoto/neutron/sequencer"
	"github.com/automoto/neutron/shared/gamemath"
	"github.com/automoto/neutron/widgets"
)

// Settings are the player choices edited on the settings tab
type Settings struct {
	SFXVolume  float64
	Fullscreen bool
	Locale     string
}

// Callbacks connect the menu to the game
type Callbacks struct {
	OnStart    func()
	OnResume   func()
	OnQuit     func()
	OnSettings func(Settings)
}

// Option configures a MainMenu.
type Option func(*MainMenu)

// WithLogger sets the logger for menu events.
func WithLogger(l *slog.Logger) Option {
	return func(m *MainMenu) { m.log = l }
}

// MainMenu is the root menu screen: play, settings and controls tabs over a
// shared modal. It is the manager's screen and refreshes itself as a game
// menu.
type MainMenu struct {
	mgr  *menu.Manager
	cat  *i18n.Catalog
	keys *controls.Table
	log  *slog.Logger
	cb   Callbacks

	settings Settings
	inGame   bool
	shown    bool
	gamepad  bool

	Tabs     *widgets.TabView
	Play     *PlayPanel
	Options  *SettingsPanel
	Controls *ControlsPanel
	Modal    *widgets.ModalPanel

	Title     *widgets.FadingText
	Notice    *widgets.FadingWidget
	NoticeBox *widgets.InfoText

	noticeText string
	noticeTone widgets.InfoType
	timeout    *sequencer.TimeoutError
}

// NewMainMenu builds the menu and installs it as mgr's screen.
func NewMainMenu(mgr *menu.Manager, cat *i18n.Catalog, keys *controls.Table, settings Settings, cb Callbacks, opts ...Option) *MainMenu {
	m := &MainMenu{
		mgr:      mgr,
		cat:      cat,
		keys:     keys,
		log:      logging.Discard(),
		cb:       cb,
		settings: settings,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.Play = newPlayPanel(m)
	m.Options = newSettingsPanel(m)
	m.Controls = newControlsPanel(m)

	tabW := cfg.Menu.TabWidth + cfg.Menu.ButtonGap
	headerH := 20.0
	headerW := 3*tabW + 2*(headerH+cfg.Menu.ButtonGap)
	header := gamemath.NewRect((float64(cfg.C.Width)-headerW)/2, cfg.Menu.TabBarY, headerW, headerH)
	m.Tabs = widgets.NewTabView(mgr, header, []widgets.Tab{
		{Panel: m.Play},
		{Panel: m.Options, Blurred: true},
		{Panel: m.Controls, Blurred: true},
	}, widgets.WithTabLogger(m.log))

	modalW, modalH := 360.0, 140.0
	m.Modal = widgets.NewModalPanel(mgr, "modal",
		gamemath.NewRect((float64(cfg.C.Width)-modalW)/2, (float64(cfg.C.Height)-modalH)/2, modalW, modalH),
		[3]string{})
	m.Modal.SetLogger(m.log)

	m.Title = widgets.NewFadingText(func() string {
		if m.inGame {
			return m.cat.T("menu.paused")
		}
		return m.cat.T("menu.title")
	})
	m.Notice = widgets.NewFadingWidget(true, 2)
	m.Notice.IsHidden = func() bool { return m.noticeText == "" }
	m.NoticeBox = widgets.NewInfoText("", func() widgets.InfoType { return m.noticeTone })

	m.relabel()

	mgr.SetScreen(m)
	mgr.RegisterGameMenu(m)
	return m
}

// relabel reads every label from the catalog again.
func (m *MainMenu) relabel() {
	headers := m.Tabs.Headers()
	for i, id := range []string{"tab.play", "tab.settings", "tab.controls"} {
		headers[i].SetLabel(m.cat.T(id))
		headers[i].SetTooltip(m.cat.T(id + ".tooltip"))
	}
	m.Modal.Confirm.SetLabel(m.cat.T("modal.confirm"))
	m.Modal.Dismiss.SetLabel(m.cat.T("modal.dismiss"))
	m.Modal.Cancel.SetLabel(m.cat.T("modal.cancel"))

	m.Play.relabel(m.cat)
	m.Options.relabel(m.cat)
	m.Controls.relabel(m.cat)
}

// Show opens the menu. The current tab fades in and takes navigation.
func (m *MainMenu) Show() {
	m.log.Debug("main menu shown", "inGame", m.inGame)
	m.shown = true
}

// Hide closes the modal and the tabs at once and releases navigation.
func (m *MainMenu) Hide() {
	m.log.Debug("main menu hidden")
	if m.Modal.IsShown() {
		m.Modal.Hide()
	}
	m.Controls.cancelBinding()
	m.Tabs.Hide()
	m.shown = false
}

// IsShown reports whether the menu is open.
func (m *MainMenu) IsShown() bool {
	return m.shown
}

// UpdateGameObjects follows the input device so the binding list names the
// right keys.
func (m *MainMenu) UpdateGameObjects() {
	if gp := m.mgr.IsUsingGamepad(); gp != m.gamepad {
		m.gamepad = gp
		m.Controls.List.Refresh(-1)
	}
	m.Options.Fullscreen.SetActive(m.settings.Fullscreen)
}

// Tick advances every animation and shows a pending timeout notice once a
// panel can host it.
func (m *MainMenu) Tick(dt float64) {
	m.Title.Tick(dt)
	m.Notice.Tick(dt)
	m.NoticeBox.Tick(dt)

	if !m.shown {
		return
	}

	m.Tabs.Tick(dt)
	m.Modal.Tick(dt)
	for _, b := range m.Play.Buttons() {
		b.Tick(dt)
	}
	m.Options.Tick(dt)
	m.Controls.Tick(dt)

	if m.timeout != nil && m.mgr.IsIdle() && m.mgr.CurrentPanel() != nil && !m.mgr.IsModalActive() {
		err := m.timeout
		m.timeout = nil
		m.showTimeout(err)
	}
}

// SetInGame switches the play tab between start and resume.
func (m *MainMenu) SetInGame(inGame bool) {
	m.inGame = inGame
	m.mgr.RefreshNavigationPanel()
}

// InGame reports whether a world is running behind the menu.
func (m *MainMenu) InGame() bool {
	return m.inGame
}

// Settings returns the current choices.
func (m *MainMenu) Settings() Settings {
	return m.settings
}

// SetQuery filters the binding list.
func (m *MainMenu) SetQuery(q string) {
	m.Controls.List.SetQuery(q)
}

// IsBindingKey reports whether a controls row waits for an input.
func (m *MainMenu) IsBindingKey() bool {
	return m.Controls.Binding.IsWaiting()
}

// PickBinding binds in to the waiting row's action and saves the settings.
// It reports false when no row was waiting.
func (m *MainMenu) PickBinding(in controls.Input) bool {
	return m.Controls.Binding.Pick(in)
}

// CancelBinding ends a wait without changing the binding.
func (m *MainMenu) CancelBinding() {
	m.Controls.cancelBinding()
}

// IsControlsTab reports whether the binding list is the requested tab.
func (m *MainMenu) IsControlsTab() bool {
	return m.Tabs.GetDesiredTabIndex() == 2
}

// TabPanel returns the page of tab i.
func (m *MainMenu) TabPanel(i int) ButtonPanel {
	p, _ := m.Tabs.Panel(i).(ButtonPanel)
	return p
}

// HitTest returns the button under a screen point. While the modal is up
// only its buttons can be hit.
func (m *MainMenu) HitTest(x, y float64) *widgets.Button {
	if m.Modal.IsShown() {
		for _, b := range []*widgets.Button{m.Modal.Confirm, m.Modal.Dismiss, m.Modal.Cancel} {
			if b.Contains(x, y) {
				return b
			}
		}
		return nil
	}

	candidates := append(m.Tabs.Headers(), m.Tabs.Previous, m.Tabs.Next)
	if p := m.TabPanel(m.Tabs.GetCurrentTabIndex()); p != nil && m.Tabs.GetCurrentTabAlpha() > 0.5 {
		candidates = append(candidates, p.Buttons()...)
	}
	for _, b := range candidates {
		if b.Contains(x, y) {
			return b
		}
	}
	return nil
}

// Buttons returns every button that can be hovered right now.
func (m *MainMenu) Buttons() []*widgets.Button {
	out := append(m.Tabs.Headers(), m.Tabs.Previous, m.Tabs.Next)
	out = append(out, m.Modal.Confirm, m.Modal.Dismiss, m.Modal.Cancel)
	for i := 0; i < m.Tabs.Len(); i++ {
		if p := m.TabPanel(i); p != nil {
			out = append(out, p.Buttons()...)
		}
	}
	return out
}

// SettingsSaved reports the outcome of persisting the settings.
func (m *MainMenu) SettingsSaved(err error) {
	if err != nil {
		m.noticeText = m.cat.T("info.save_failed")
		m.noticeTone = widgets.InfoNegative
	} else {
		m.noticeText = m.cat.T("info.saved")
		m.noticeTone = widgets.InfoPositive
	}
	m.NoticeBox.Text = m.noticeText
	m.Notice.Restart()
}

// NoticeText returns the last settings notice.
func (m *MainMenu) NoticeText() string {
	return m.noticeText
}

// ShowTimeout reports an abandoned transition. The modal opens once the
// screen is visible again and a panel has navigation.
func (m *MainMenu) ShowTimeout(err *sequencer.TimeoutError) {
	m.timeout = err
}

func (m *MainMenu) showTimeout(err *sequencer.TimeoutError) {
	text := m.cat.T("modal.timeout.text", map[string]any{
		"Name":    err.Name,
		"Seconds": int(math.Round(err.Elapsed.Seconds())),
	})
	if showErr := m.Modal.Show(m.cat.T("modal.timeout.title"), text, func() {}, nil, nil, nil); showErr != nil {
		m.log.Warn("timeout notice failed", "error", showErr)
	}
}

func (m *MainMenu) start() {
	m.log.Info("start requested")
	if m.cb.OnStart != nil {
		m.cb.OnStart()
	}
}

func (m *MainMenu) resume() {
	m.log.Info("resume requested")
	if m.cb.OnResume != nil {
		m.cb.OnResume()
	}
}

func (m *MainMenu) confirmQuit() {
	err := m.Modal.Show(m.cat.T("modal.quit.title"), m.cat.T("modal.quit.text"), m.quit, nil, nil, nil)
	if err != nil {
		m.log.Warn("quit confirmation failed", "error", err)
	}
}

func (m *MainMenu) quit() {
	m.log.Info("quit confirmed")
	if m.cb.OnQuit != nil {
		m.cb.OnQuit()
	}
}

func (m *MainMenu) settingsChanged() {
	m.Options.relabel(m.cat)
	if m.cb.OnSettings != nil {
		m.cb.OnSettings(m.settings)
	}
}
