// Package menu ties the navigation core, the fade sequencer and the shared
// interface state into the object a host game talks to.
package menu

import (
	"image/color"
	"log/slog"

	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/logging"
	"github.com/automoto/neutron/navigation"
	"github.com/automoto/neutron/sequencer"
	"github.com/automoto/neutron/shared/gamemath"
)

// Screen is the menu root shown and hidden behind a black fade.
type Screen interface {
	Show()
	Hide()
}

// GameMenu is refreshed every tick so it can mirror game state.
type GameMenu interface {
	UpdateGameObjects()
}

// KeyResolver names the first key bound to an action for the active device.
type KeyResolver interface {
	FirstKey(a cfg.ActionID, gamepad bool) string
}

// InputFocus tells the host where player input goes.
type InputFocus int

const (
	FocusGame InputFocus = iota
	FocusMenu
)

func (f InputFocus) String() string {
	if f == FocusMenu {
		return "menu"
	}
	return "game"
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger shared by the manager, its navigator and its
// sequencer.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// WithSounds routes UI sounds to s.
func WithSounds(s navigation.Sounds) Option {
	return func(m *Manager) { m.sounds = s }
}

// WithKeyResolver sets the binding table used for key hints.
func WithKeyResolver(r KeyResolver) Option {
	return func(m *Manager) { m.keys = r }
}

// WithScreen sets the menu root.
func WithScreen(s Screen) Option {
	return func(m *Manager) { m.screen = s }
}

// WithSequencerOptions passes extra options to the fade sequencer.
func WithSequencerOptions(opts ...sequencer.Option) Option {
	return func(m *Manager) { m.seqOpts = append(m.seqOpts, opts...) }
}

type tooltip struct {
	owner navigation.Focusable
	text  string
}

// Manager owns menu navigation, the transition sequencer, the menu open
// state and the animated interface colors. It satisfies widgets.Menu.
type Manager struct {
	*navigation.Navigator

	log     *slog.Logger
	seq     *sequencer.Sequencer
	seqOpts []sequencer.Option
	sounds  navigation.Sounds
	keys    KeyResolver
	screen  Screen

	menuOpen bool
	focus    InputFocus
	gamepad  bool
	tooltip  tooltip

	desiredInterface gamemath.LinearColor
	desiredHighlight gamemath.LinearColor
	interfaceColor   *gamemath.TimedAverage[gamemath.LinearColor]
	highlightColor   *gamemath.TimedAverage[gamemath.LinearColor]

	gameMenus []GameMenu
}

// NewManager creates a manager with the menu closed and the screen idle.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		desiredInterface: gamemath.ColorFrom(cfg.Menu.TextColorNormal),
		desiredHighlight: gamemath.ColorFrom(cfg.Menu.HighlightColor),
		interfaceColor:   gamemath.NewTimedAverage(cfg.UI.FadeDurationShort, gamemath.ColorBlend),
		highlightColor:   gamemath.NewTimedAverage(cfg.UI.FadeDurationShort, gamemath.ColorBlend),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = logging.Discard()
	}

	m.Navigator = navigation.NewNavigator(
		navigation.WithLogger(m.log),
		navigation.WithSounds(m),
		navigation.WithInputMode(m))
	m.seq = sequencer.New(append([]sequencer.Option{sequencer.WithLogger(m.log)}, m.seqOpts...)...)
	return m
}

// BeginPlay resets the transition state behind a full black screen and
// opens or closes the menu once it is black.
func (m *Manager) BeginPlay(menuOpen bool) {
	m.log.Info("menu begin play", "menuOpen", menuOpen)

	m.seq.Restart()

	m.interfaceColor.Clear()
	m.highlightColor.Clear()
	m.interfaceColor.Set(m.desiredInterface, -1)
	m.highlightColor.Set(m.desiredHighlight, -1)

	m.seq.RunWaitAction(sequencer.LoadingScreenBlack, func() {
		if menuOpen {
			m.showMenu()
		} else {
			m.hideMenu()
		}
	}, func() bool { return true }, false)
}

// Tick advances the sequencer, navigation and color animations.
func (m *Manager) Tick(dt float64) {
	m.seq.Tick(dt)
	m.Navigator.Tick(dt)

	m.interfaceColor.Set(m.desiredInterface, dt)
	m.highlightColor.Set(m.desiredHighlight, dt)

	for _, g := range m.gameMenus {
		g.UpdateGameObjects()
	}
}

// OpenMenu shows the menu behind a black fade. action runs first while the
// screen is black; condition, when set, holds the fade until it is true.
func (m *Manager) OpenMenu(action func(), condition func() bool) {
	m.log.Info("open menu")
	m.seq.RunWaitAction(sequencer.LoadingScreenBlack, func() {
		if action != nil {
			action()
		}
		m.showMenu()
	}, condition, false)
}

// CloseMenu hides the menu behind a black fade and gives input back to the
// game.
func (m *Manager) CloseMenu(action func(), condition func() bool) {
	m.log.Info("close menu")
	m.seq.RunWaitAction(sequencer.LoadingScreenBlack, func() {
		if action != nil {
			action()
		}
		m.hideMenu()
	}, condition, false)
}

// Launch hides the menu behind the launch screen. action runs once the
// screen is black and the fade back waits for loaded. name identifies the
// transition in timeout reports.
func (m *Manager) Launch(name string, action func(), loaded func() bool) {
	m.log.Info("launch", "name", name)
	m.seq.Enqueue(sequencer.Command{
		Name:   name,
		Screen: sequencer.LoadingScreenLaunch,
		Action: func() {
			if action != nil {
				action()
			}
			m.hideMenu()
		},
		Condition: loaded,
	})
}

func (m *Manager) showMenu() {
	m.menuOpen = true
	m.focus = FocusMenu
	if m.screen != nil {
		m.screen.Show()
	}
}

func (m *Manager) hideMenu() {
	m.menuOpen = false
	m.focus = FocusGame
	if m.screen != nil {
		m.screen.Hide()
	}
}

// SetScreen sets the menu root after construction, for roots that need the
// manager to build themselves.
func (m *Manager) SetScreen(s Screen) {
	m.screen = s
}

// IsMenuOpen reports whether the menu is shown.
func (m *Manager) IsMenuOpen() bool {
	return m.menuOpen
}

// IsMenuOpening reports whether the menu is shown or the screen is fading
// out towards a transition.
func (m *Manager) IsMenuOpening() bool {
	return m.menuOpen || m.seq.State() == sequencer.FadingToBlack
}

// InputFocus returns where player input should go.
func (m *Manager) InputFocus() InputFocus {
	return m.focus
}

// RunWaitAction queues a transition; see sequencer.Sequencer.
func (m *Manager) RunWaitAction(screen sequencer.LoadingScreen, action func(), condition func() bool, short bool) {
	m.seq.RunWaitAction(screen, action, condition, short)
}

// RunAction queues a transition completed by CompleteAsyncAction.
func (m *Manager) RunAction(screen sequencer.LoadingScreen, action func(), short bool) {
	m.seq.RunAction(screen, action, short)
}

// RunActionAndReturn queues a transition that fades back right away.
func (m *Manager) RunActionAndReturn(screen sequencer.LoadingScreen, action func(), short bool) {
	m.seq.RunActionAndReturn(screen, action, short)
}

// CompleteAsyncAction ends the current transition.
func (m *Manager) CompleteAsyncAction() { m.seq.CompleteAsyncAction() }

// IsIdle reports whether no transition is running.
func (m *Manager) IsIdle() bool { return m.seq.IsIdle() }

// Sequencer exposes the transition state machine.
func (m *Manager) Sequencer() *sequencer.Sequencer { return m.seq }

// LoadingAlpha is the opacity of the loading screen.
func (m *Manager) LoadingAlpha() float64 { return m.seq.Alpha() }

// LoadingScreen is the kind of screen to draw while obscured.
func (m *Manager) LoadingScreen() sequencer.LoadingScreen { return m.seq.LoadingScreen() }

// SetInterfaceColor changes the color the interface fades towards.
func (m *Manager) SetInterfaceColor(c color.Color) {
	m.desiredInterface = gamemath.ColorFrom(c)
}

// SetHighlightColor changes the color highlights fade towards.
func (m *Manager) SetHighlightColor(c color.Color) {
	m.desiredHighlight = gamemath.ColorFrom(c)
}

// InterfaceColor returns the smoothed interface color.
func (m *Manager) InterfaceColor() color.RGBA {
	return m.interfaceColor.Get().RGBA()
}

// HighlightColor returns the smoothed highlight color.
func (m *Manager) HighlightColor() color.RGBA {
	return m.highlightColor.Get().RGBA()
}

// SetUsingGamepad switches between gamepad and pointer style input.
func (m *Manager) SetUsingGamepad(gamepad bool) {
	if gamepad == m.gamepad {
		return
	}
	if gamepad {
		m.log.Info("using gamepad")
	} else {
		m.log.Info("using mouse and keyboard")
	}
	m.gamepad = gamepad
}

// IsUsingGamepad reports the active input device family.
func (m *Manager) IsUsingGamepad() bool { return m.gamepad }

// FirstActionKey names the first key bound to a for the active device, or
// returns an empty string.
func (m *Manager) FirstActionKey(a cfg.ActionID) string {
	if m.keys == nil {
		return ""
	}
	return m.keys.FirstKey(a, m.gamepad)
}

// PlaySound forwards to the sound sink.
func (m *Manager) PlaySound(id cfg.SoundID) {
	if m.sounds != nil && id != cfg.SoundNone {
		m.sounds.PlaySound(id)
	}
}

// ShowTooltip sets the help text owned by owner.
func (m *Manager) ShowTooltip(owner navigation.Focusable, text string) {
	m.tooltip = tooltip{owner: owner, text: text}
}

// HideTooltip clears the help text if owner still owns it.
func (m *Manager) HideTooltip(owner navigation.Focusable) {
	if m.tooltip.owner == owner {
		m.tooltip = tooltip{}
	}
}

// Tooltip returns the current help text.
func (m *Manager) Tooltip() string { return m.tooltip.text }

// RegisterGameMenu adds a menu refreshed on every tick.
func (m *Manager) RegisterGameMenu(g GameMenu) {
	m.gameMenus = append(m.gameMenus, g)
}
