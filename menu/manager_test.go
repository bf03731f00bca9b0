package menu

import (
	"image/color"
	"testing"

	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/navigation"
	"github.com/automoto/neutron/sequencer"
	"github.com/automoto/neutron/shared/gamemath"
	"github.com/automoto/neutron/widgets"
)

var _ widgets.Menu = (*Manager)(nil)

type testScreen struct {
	shows, hides int
}

func (s *testScreen) Show() { s.shows++ }
func (s *testScreen) Hide() { s.hides++ }

type testSounds struct {
	played []cfg.SoundID
}

func (s *testSounds) PlaySound(id cfg.SoundID) { s.played = append(s.played, id) }

type testKeys struct{}

func (testKeys) FirstKey(a cfg.ActionID, gamepad bool) string {
	if gamepad {
		return "A"
	}
	return "Enter"
}

type testGameMenu struct {
	updates int
}

func (g *testGameMenu) UpdateGameObjects() { g.updates++ }

func settle(m *Manager) {
	for i := 0; i < 600 && !m.IsIdle(); i++ {
		m.Tick(1.0 / 60)
	}
	for i := 0; i < 60; i++ {
		m.Tick(1.0 / 60)
	}
}

func TestBeginPlayOpensMenuBehindBlack(t *testing.T) {
	screen := &testScreen{}
	m := NewManager(WithScreen(screen))

	m.BeginPlay(true)
	if m.LoadingAlpha() != 1 {
		t.Fatalf("expected a fully black screen at start, got %v", m.LoadingAlpha())
	}
	if m.IsMenuOpen() {
		t.Fatalf("expected the menu to open only once black")
	}

	settle(m)
	if !m.IsMenuOpen() || screen.shows != 1 {
		t.Fatalf("expected the menu shown once, got open=%v shows=%d", m.IsMenuOpen(), screen.shows)
	}
	if m.InputFocus() != FocusMenu {
		t.Fatalf("expected menu focus, got %v", m.InputFocus())
	}
	if m.LoadingAlpha() != 0 {
		t.Fatalf("expected the screen revealed, got %v", m.LoadingAlpha())
	}
}

func TestCloseAndOpenMenu(t *testing.T) {
	screen := &testScreen{}
	m := NewManager(WithScreen(screen))
	m.BeginPlay(true)
	settle(m)

	var order []string
	m.CloseMenu(func() { order = append(order, "action") }, nil)
	if !m.IsMenuOpening() {
		t.Fatalf("expected opening while fading out")
	}
	settle(m)
	if m.IsMenuOpen() || m.IsMenuOpening() || m.InputFocus() != FocusGame {
		t.Fatalf("expected the menu closed with game focus")
	}
	if len(order) != 1 || screen.hides != 1 {
		t.Fatalf("expected the action and one hide, got %v and %d", order, screen.hides)
	}

	ready := false
	m.OpenMenu(nil, func() bool { return ready })
	if m.IsMenuOpen() || !m.IsMenuOpening() {
		t.Fatalf("expected opening but not open yet")
	}
	for i := 0; i < 120; i++ {
		m.Tick(1.0 / 60)
	}
	if !m.IsMenuOpen() {
		t.Fatalf("expected the menu open while the condition holds the fade")
	}
	if m.Sequencer().State() != sequencer.Black {
		t.Fatalf("expected the screen held black, got %v", m.Sequencer().State())
	}

	ready = true
	settle(m)
	if !m.IsIdle() {
		t.Fatalf("expected the transition done")
	}
}

func TestInterfaceColorsFade(t *testing.T) {
	m := NewManager()
	m.BeginPlay(false)

	if m.InterfaceColor() != cfg.Menu.TextColorNormal {
		t.Fatalf("expected the starting color at once, got %v", m.InterfaceColor())
	}

	for i := 0; i < 30; i++ {
		m.Tick(1.0 / 60)
	}
	target := color.RGBA{R: 255, A: 255}
	m.SetInterfaceColor(target)
	m.Tick(0.05)
	if c := m.InterfaceColor(); c == target || c == cfg.Menu.TextColorNormal {
		t.Fatalf("expected a blended color, got %v", c)
	}

	for i := 0; i < 60; i++ {
		m.Tick(1.0 / 60)
	}
	if m.InterfaceColor() != target {
		t.Fatalf("expected %v, got %v", target, m.InterfaceColor())
	}
	if m.HighlightColor() != cfg.Menu.HighlightColor {
		t.Fatalf("expected highlight unchanged, got %v", m.HighlightColor())
	}
}

func TestTooltipOwnership(t *testing.T) {
	m := NewManager()
	a := widgets.NewButton(m, nil, "A")
	b := widgets.NewButton(m, nil, "B")

	m.ShowTooltip(a, "first")
	m.ShowTooltip(b, "second")
	m.HideTooltip(a)
	if m.Tooltip() != "second" {
		t.Fatalf("expected the newer tooltip kept, got %q", m.Tooltip())
	}
	m.HideTooltip(b)
	if m.Tooltip() != "" {
		t.Fatalf("expected no tooltip, got %q", m.Tooltip())
	}
}

func TestFirstActionKeyFollowsDevice(t *testing.T) {
	m := NewManager()
	if m.FirstActionKey(cfg.ActionConfirm) != "" {
		t.Fatalf("expected no hint without bindings")
	}

	m = NewManager(WithKeyResolver(testKeys{}))
	if got := m.FirstActionKey(cfg.ActionConfirm); got != "Enter" {
		t.Fatalf("expected Enter, got %q", got)
	}
	m.SetUsingGamepad(true)
	if got := m.FirstActionKey(cfg.ActionConfirm); got != "A" {
		t.Fatalf("expected A, got %q", got)
	}
}

func TestNavigationSoundsGoThroughManager(t *testing.T) {
	sounds := &testSounds{}
	m := NewManager(WithSounds(sounds))

	p := navigation.NewBasePanel("main", nil)
	top := widgets.NewButton(m, p, "Top", widgets.WithBounds(gamemath.NewRect(0, 0, 100, 20)))
	bottom := widgets.NewButton(m, p, "Bottom", widgets.WithBounds(gamemath.NewRect(0, 30, 100, 20)))
	_ = p.Register(top, true)
	_ = p.Register(bottom, false)
	if err := m.SetNavigationPanel(p); err != nil {
		t.Fatalf("expected panel set, got %v", err)
	}
	m.Tick(1.0 / 60)

	if !m.HandleAction(cfg.ActionDown) {
		t.Fatalf("expected navigation down")
	}
	if m.Focused() != navigation.Focusable(bottom) {
		t.Fatalf("expected bottom focused, got %v", m.Focused())
	}
	if len(sounds.played) == 0 || sounds.played[len(sounds.played)-1] != cfg.SoundMenuNavigate {
		t.Fatalf("expected navigate sound, got %v", sounds.played)
	}
}

func TestGameMenusUpdatedEveryTick(t *testing.T) {
	m := NewManager()
	g := &testGameMenu{}
	m.RegisterGameMenu(g)
	m.Tick(0.1)
	m.Tick(0.1)
	if g.updates != 2 {
		t.Fatalf("expected 2 updates, got %d", g.updates)
	}
}

func TestLaunchHidesMenuBehindLaunchScreen(t *testing.T) {
	screen := &testScreen{}
	m := NewManager(WithScreen(screen))
	m.BeginPlay(true)
	settle(m)

	loaded := false
	ran := false
	m.Launch("world load", func() { ran = true }, func() bool { return loaded })
	if m.LoadingScreen() != sequencer.LoadingScreenLaunch {
		t.Fatalf("expected the launch screen, got %v", m.LoadingScreen())
	}
	for i := 0; i < 120; i++ {
		m.Tick(1.0 / 60)
	}
	if !ran || m.IsMenuOpen() || screen.hides != 1 {
		t.Fatalf("expected the action run and the menu hidden, got ran=%v open=%v", ran, m.IsMenuOpen())
	}
	if m.IsIdle() {
		t.Fatalf("expected the fade held until loaded")
	}

	loaded = true
	settle(m)
	if !m.IsIdle() || m.InputFocus() != FocusGame {
		t.Fatalf("expected game focus after the launch")
	}
}

func TestLaunchTimeoutReportsName(t *testing.T) {
	var got *sequencer.TimeoutError
	m := NewManager(WithSequencerOptions(
		sequencer.WithTimeout(1),
		sequencer.WithTimeoutHandler(func(err *sequencer.TimeoutError) { got = err })))
	m.BeginPlay(true)
	settle(m)

	m.Launch("world load", nil, func() bool { return false })
	settle(m)
	if got == nil || got.Name != "world load" || got.Screen != sequencer.LoadingScreenLaunch {
		t.Fatalf("expected a launch timeout, got %+v", got)
	}
	if !m.IsIdle() {
		t.Fatalf("expected the abandoned launch to fade back")
	}
}
