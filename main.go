package main

import (
	"image"
	"log"

	"github.com/automoto/neutron/config"
	"github.com/automoto/neutron/controls"
	"github.com/automoto/neutron/fonts"
	"github.com/automoto/neutron/i18n"
	"github.com/automoto/neutron/logging"
	"github.com/automoto/neutron/scenes"
	"github.com/automoto/neutron/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	session *scenes.Session
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.session.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	overrides, err := config.LoadEnv()
	if err != nil {
		log.Fatal(err)
	}
	overrides.Apply()
	if overrides.UIFile != "" {
		if err := config.LoadUIFile(overrides.UIFile); err != nil {
			log.Fatal(err)
		}
	}

	if err := logging.Configure(config.Log.Path, config.Log.Level); err != nil {
		log.Fatalf("configure logging: %v", err)
	}
	defer logging.Close()
	logger := logging.Logger()

	if err := fonts.LoadDefaults(); err != nil {
		logger.Error("could not load fonts", "error", err)
		return
	}

	ebiten.SetWindowTitle("Neutron")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logger.Warn("settings will not be saved", "error", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		logger.Warn("saved settings ignored", "error", err)
	}

	catalog, err := i18n.New(i18n.WithLogger(logger))
	if err != nil {
		logger.Error("could not load translations", "error", err)
		return
	}
	if _, err := catalog.SetLocale(saved.Locale); err != nil {
		logger.Warn("unknown locale", "locale", saved.Locale, "error", err)
	}

	bindings := controls.Default()
	if err := bindings.ApplyOverrides(saved.Bindings); err != nil {
		logger.Warn("saved bindings ignored", "error", err)
	}

	systems.ApplySavedSettingsGlobal(saved)
	if err := systems.PreloadAllSFX(); err != nil {
		logger.Warn("could not preload sounds", "error", err)
	}

	g := &Game{}
	g.session = scenes.NewSession(g, saved, bindings, catalog, logger)
	g.session.Begin(!config.Debug.SkipMenu)

	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game stopped", "error", err)
	}
}
