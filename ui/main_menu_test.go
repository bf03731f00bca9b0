package ui

import (
	"testing"
	"time"

	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/controls"
	"github.com/automoto/neutron/i18n"
	"github.com/automoto/neutron/menu"
	"github.com/automoto/neutron/navigation"
	"github.com/automoto/neutron/sequencer"
)

type recorder struct {
	started, resumed, quit int
	settings               []Settings
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		OnStart:    func() { r.started++ },
		OnResume:   func() { r.resumed++ },
		OnQuit:     func() { r.quit++ },
		OnSettings: func(s Settings) { r.settings = append(r.settings, s) },
	}
}

func newMainMenuFixture(t *testing.T) (*menu.Manager, *MainMenu, *recorder) {
	t.Helper()
	cat, err := i18n.New()
	if err != nil {
		t.Fatalf("expected catalog, got %v", err)
	}
	keys := controls.Default()
	mgr := menu.NewManager(menu.WithKeyResolver(keys))
	rec := &recorder{}
	mm := NewMainMenu(mgr, cat, keys, Settings{SFXVolume: 0.5, Locale: "en"}, rec.callbacks())

	mgr.BeginPlay(true)
	tick(mgr, mm, 2)
	return mgr, mm, rec
}

func tick(mgr *menu.Manager, mm *MainMenu, seconds float64) {
	dt := 1.0 / 60
	for elapsed := 0.0; elapsed < seconds; elapsed += dt {
		mgr.Tick(dt)
		mm.Tick(dt)
	}
}

func TestMainMenuOpensOnPlayTab(t *testing.T) {
	mgr, mm, _ := newMainMenuFixture(t)

	if !mm.IsShown() || !mgr.IsMenuOpen() {
		t.Fatalf("expected menu open")
	}
	if mgr.CurrentPanel() != navigation.Panel(mm.Play) {
		t.Fatalf("expected play panel current, got %v", mgr.CurrentPanel())
	}
	if mgr.Focused() != navigation.Focusable(mm.Play.Start) {
		t.Fatalf("expected start focused, got %v", mgr.Focused())
	}
	if mm.Title.Text() != "NEUTRON" {
		t.Fatalf("expected title NEUTRON, got %q", mm.Title.Text())
	}
	if mgr.Tooltip() != "Load the world" {
		t.Fatalf("expected start tooltip, got %q", mgr.Tooltip())
	}
}

func TestConfirmStartsGame(t *testing.T) {
	mgr, _, rec := newMainMenuFixture(t)

	if !mgr.HandleAction(cfg.ActionConfirm) {
		t.Fatalf("expected confirm handled")
	}
	if rec.started != 1 {
		t.Fatalf("expected one start, got %d", rec.started)
	}
}

func TestQuitAsksForConfirmation(t *testing.T) {
	mgr, mm, rec := newMainMenuFixture(t)

	mm.Play.Quit.Click()
	if rec.quit != 0 {
		t.Fatalf("expected no quit before confirmation")
	}
	if mgr.CurrentPanel() != navigation.Panel(mm.Modal) {
		t.Fatalf("expected modal current, got %v", mgr.CurrentPanel())
	}
	if mm.Modal.Title() != "Quit" {
		t.Fatalf("expected quit title, got %q", mm.Modal.Title())
	}

	// tab switching is blocked under the modal
	mgr.HandleAction(cfg.ActionNextTab)
	if mm.Tabs.GetDesiredTabIndex() != 0 {
		t.Fatalf("expected tab to stay, got %d", mm.Tabs.GetDesiredTabIndex())
	}

	if !mgr.HandleAction(cfg.ActionPrimary) {
		t.Fatalf("expected primary to confirm")
	}
	if rec.quit != 1 {
		t.Fatalf("expected quit callback, got %d", rec.quit)
	}
	if mgr.CurrentPanel() != navigation.Panel(mm.Play) {
		t.Fatalf("expected play panel restored, got %v", mgr.CurrentPanel())
	}
}

func TestCancelResumesInGame(t *testing.T) {
	mgr, mm, rec := newMainMenuFixture(t)

	mgr.HandleAction(cfg.ActionCancel)
	if rec.resumed != 0 {
		t.Fatalf("expected no resume on the title screen")
	}

	mm.SetInGame(true)
	tick(mgr, mm, 0.5)
	if mgr.Focused() != navigation.Focusable(mm.Play.Resume) {
		t.Fatalf("expected resume focused, got %v", mgr.Focused())
	}
	if mm.Title.Text() != "PAUSED" {
		t.Fatalf("expected paused title, got %q", mm.Title.Text())
	}

	mgr.HandleAction(cfg.ActionCancel)
	if rec.resumed != 1 {
		t.Fatalf("expected resume, got %d", rec.resumed)
	}
}

func TestVolumeStepsWithRight(t *testing.T) {
	mgr, mm, rec := newMainMenuFixture(t)

	mgr.HandleAction(cfg.ActionNextTab)
	tick(mgr, mm, 1)
	if mgr.CurrentPanel() != navigation.Panel(mm.Options) {
		t.Fatalf("expected settings panel current, got %v", mgr.CurrentPanel())
	}
	if mgr.Focused() != navigation.Focusable(mm.Options.Volume.Button) {
		t.Fatalf("expected volume focused, got %v", mgr.Focused())
	}

	mgr.HandleAction(cfg.ActionRight)
	if mm.Settings().SFXVolume != 0.75 {
		t.Fatalf("expected volume 0.75, got %v", mm.Settings().SFXVolume)
	}
	if mm.Options.Volume.Label() != "Volume 75%" {
		t.Fatalf("expected relabelled volume, got %q", mm.Options.Volume.Label())
	}
	if len(rec.settings) != 1 || rec.settings[0].SFXVolume != 0.75 {
		t.Fatalf("expected settings callback, got %v", rec.settings)
	}
}

func TestLanguageSwitchRelabels(t *testing.T) {
	mgr, mm, rec := newMainMenuFixture(t)

	mgr.HandleAction(cfg.ActionNextTab)
	tick(mgr, mm, 1)
	if err := mgr.SetFocused(mm.Options.Language, false); err != nil {
		t.Fatalf("expected language focus, got %v", err)
	}

	mgr.HandleAction(cfg.ActionRight)
	if got := mm.Settings().Locale; got != "fr" {
		t.Fatalf("expected fr, got %q", got)
	}
	if mm.Play.Start.Label() != "Commencer" {
		t.Fatalf("expected french start label, got %q", mm.Play.Start.Label())
	}
	if len(rec.settings) != 1 {
		t.Fatalf("expected one settings callback, got %d", len(rec.settings))
	}
}

func TestTimeoutNoticeWaitsForIdle(t *testing.T) {
	mgr, mm, _ := newMainMenuFixture(t)

	mgr.OpenMenu(nil, nil)
	mm.ShowTimeout(&sequencer.TimeoutError{Name: "world load", Elapsed: 10 * time.Second})
	tick(mgr, mm, 1.0/60)
	if mm.Modal.IsShown() {
		t.Fatalf("expected notice held during the transition")
	}

	tick(mgr, mm, 2)
	if !mm.Modal.IsShown() {
		t.Fatalf("expected notice once idle")
	}
	if mm.Modal.Text() != "world load did not finish after 10 seconds" {
		t.Fatalf("unexpected notice text %q", mm.Modal.Text())
	}
	if mgr.CurrentPanel() != navigation.Panel(mm.Modal) {
		t.Fatalf("expected modal current, got %v", mgr.CurrentPanel())
	}
}

func TestHideReleasesNavigation(t *testing.T) {
	mgr, mm, _ := newMainMenuFixture(t)

	mm.Play.Quit.Click()
	mgr.CloseMenu(nil, nil)
	tick(mgr, mm, 2)

	if mm.IsShown() || mgr.IsMenuOpen() {
		t.Fatalf("expected menu closed")
	}
	if mgr.CurrentPanel() != nil || mm.Modal.IsShown() {
		t.Fatalf("expected no navigation, got %v", mgr.CurrentPanel())
	}
	if mgr.InputFocus() != menu.FocusGame {
		t.Fatalf("expected game focus, got %v", mgr.InputFocus())
	}
}

func TestSettingsSavedNotice(t *testing.T) {
	_, mm, _ := newMainMenuFixture(t)

	mm.SettingsSaved(nil)
	if mm.NoticeText() != "Settings saved" {
		t.Fatalf("expected saved notice, got %q", mm.NoticeText())
	}
}
