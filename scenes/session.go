package scenes

import (
	"log/slog"
	"math"

	"github.com/automoto/neutron/components"
	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/controls"
	"github.com/automoto/neutron/i18n"
	"github.com/automoto/neutron/menu"
	"github.com/automoto/neutron/sequencer"
	"github.com/automoto/neutron/systems"
	"github.com/automoto/neutron/ui"
	"github.com/automoto/neutron/widgets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Render layers
const (
	layerWorld ecs.LayerID = iota
	layerMenu
)

const worldLoadName = "world load"

// Session owns what outlives a scene: the menu manager, the main menu, the
// bindings and the saved settings. Scenes reach it through their Menu
// component.
type Session struct {
	changer  SceneChanger
	log      *slog.Logger
	settings *systems.SavedSettings
	bindings *controls.Table
	catalog  *i18n.Catalog
	loader   systems.LevelLoader

	mgr   *menu.Manager
	main  *ui.MainMenu
	hints *ui.HintBar
	dots  *widgets.CarouselAnimation

	title *MenuScene
	world *WorldScene
	done  bool
}

// NewSession builds the menu and the title scene.
func NewSession(changer SceneChanger, settings *systems.SavedSettings, bindings *controls.Table, catalog *i18n.Catalog, log *slog.Logger) *Session {
	s := &Session{
		changer:  changer,
		log:      log,
		settings: settings,
		bindings: bindings,
		catalog:  catalog,
		loader:   systems.SimulatedLoad(cfg.World.LoadSteps, cfg.World.LoadStep),
	}

	s.mgr = menu.NewManager(
		menu.WithLogger(log),
		menu.WithSounds(systems.MenuSounds{}),
		menu.WithKeyResolver(bindings),
		menu.WithSequencerOptions(
			sequencer.WithTimeout(cfg.UI.TransitionTimeout),
			sequencer.WithTimeoutHandler(s.onTimeout)))

	s.main = ui.NewMainMenu(s.mgr, catalog, bindings, settings.MenuSettings(), ui.Callbacks{
		OnStart:    s.start,
		OnResume:   s.resume,
		OnQuit:     s.quit,
		OnSettings: s.saveSettings,
	}, ui.WithLogger(log))
	s.hints = ui.NewHintBar(catalog)
	s.dots = widgets.NewCarouselAnimation(3, cfg.UI.FadeDurationShort, 0)
	s.title = NewMenuScene(s)
	return s
}

// Begin shows the title scene behind the startup fade. With the menu
// skipped the world starts loading right away.
func (s *Session) Begin(menuOpen bool) {
	s.changer.ChangeScene(s.title)
	s.mgr.BeginPlay(menuOpen)
	if !menuOpen {
		s.start()
	}
}

// Done reports whether the player quit from the title screen.
func (s *Session) Done() bool {
	return s.done
}

// attach gives a scene world access to the shared menu.
func (s *Session) attach(e *ecs.ECS) {
	entry := e.World.Entry(e.World.Create(components.Menu))
	components.Menu.SetValue(entry, components.MenuData{
		Manager:       s.mgr,
		Main:          s.main,
		Hints:         s.hints,
		Bindings:      s.bindings,
		Catalog:       s.catalog,
		Dots:          s.dots,
		LastClickTime: math.Inf(-1),
	})
}

func (s *Session) start() {
	world := NewWorldScene(s)
	s.mgr.Launch(worldLoadName, func() {
		s.world = world
		s.changer.ChangeScene(world)
		world.Load(s.loader)
		s.main.SetInGame(true)
	}, world.IsLoaded)
}

func (s *Session) resume() {
	s.mgr.PlaySound(cfg.SoundMenuClose)
	s.mgr.CloseMenu(nil, nil)
}

// quit leaves the world for the title screen, or ends the game from it.
func (s *Session) quit() {
	if !s.main.InGame() {
		s.log.Info("quitting")
		s.done = true
		return
	}
	s.mgr.OpenMenu(s.backToTitle, nil)
}

func (s *Session) backToTitle() {
	if s.world != nil {
		s.world.Stop()
		s.world = nil
	}
	s.main.SetInGame(false)
	s.changer.ChangeScene(s.title)
}

// onTimeout runs while the screen is still black. The stalled world is
// dropped and the menu comes back with a notice.
func (s *Session) onTimeout(err *sequencer.TimeoutError) {
	s.log.Warn("transition timed out", "error", err)
	if err.Name != worldLoadName {
		return
	}
	s.main.ShowTimeout(err)
	s.mgr.OpenMenu(s.backToTitle, nil)
}

func (s *Session) saveSettings(m ui.Settings) {
	s.settings.Update(m, s.bindings)
	systems.ApplySavedSettingsGlobal(s.settings)
	err := systems.SaveSettings(s.settings)
	if err != nil {
		s.log.Warn("could not save settings", "error", err)
	}
	s.main.SettingsSaved(err)
}

// clearScreen prevents white flashes from the OS window background.
func clearScreen(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)
}
