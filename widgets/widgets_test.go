package widgets

import (
	"testing"

	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/navigation"
	"github.com/automoto/neutron/shared/gamemath"
)

type testMenu struct {
	*navigation.Navigator
	sounds  []cfg.SoundID
	tooltip string
	gamepad bool
}

func newTestMenu() *testMenu {
	return &testMenu{Navigator: navigation.NewNavigator()}
}

func (m *testMenu) PlaySound(id cfg.SoundID) { m.sounds = append(m.sounds, id) }
func (m *testMenu) IsUsingGamepad() bool     { return m.gamepad }

func (m *testMenu) ShowTooltip(owner navigation.Focusable, text string) { m.tooltip = text }
func (m *testMenu) HideTooltip(owner navigation.Focusable)              { m.tooltip = "" }

func (m *testMenu) played(id cfg.SoundID) bool {
	for _, s := range m.sounds {
		if s == id {
			return true
		}
	}
	return false
}

func tickFor(seconds float64, fns ...func(float64)) {
	const dt = 1.0 / 60
	for t := 0.0; t < seconds; t += dt {
		for _, fn := range fns {
			fn(dt)
		}
	}
}

func TestButtonClick(t *testing.T) {
	m := newTestMenu()
	p := navigation.NewBasePanel("p", nil)
	_ = m.SetNavigationPanel(p)

	clicked := 0
	b := NewButton(m, p, "Play", WithToggle(false), WithTooltip("Start a game"), WithOnClick(func() { clicked++ }))
	_ = p.Register(b, true)

	b.Click()
	if clicked != 1 {
		t.Fatalf("expected one click callback, got %d", clicked)
	}
	if !b.IsActive() {
		t.Fatalf("expected toggle to become active")
	}
	if !b.IsFocused() || m.Focused() != navigation.Focusable(b) {
		t.Fatalf("expected click to focus the button")
	}
	if m.tooltip != "Start a game" {
		t.Fatalf("expected tooltip shown, got %q", m.tooltip)
	}
	if !m.played(cfg.SoundMenuSelect) {
		t.Fatalf("expected click sound, got %v", m.sounds)
	}

	b.SetFocused(false)
	if m.tooltip != "" {
		t.Fatalf("expected tooltip hidden, got %q", m.tooltip)
	}
}

func TestDisabledButtonIgnoresClick(t *testing.T) {
	m := newTestMenu()
	clicked := false
	b := NewButton(m, nil, "Locked", WithEnabled(func() bool { return false }), WithOnClick(func() { clicked = true }))

	b.Click()
	b.DoubleClick()
	if clicked || len(m.sounds) != 0 {
		t.Fatalf("expected disabled button to ignore clicks")
	}
}

func TestButtonAnimations(t *testing.T) {
	m := newTestMenu()
	p := navigation.NewBasePanel("p", nil)
	_ = m.SetNavigationPanel(p)
	b := NewButton(m, p, "Play")
	_ = p.Register(b, true)
	_ = m.SetFocused(b, false)

	tickFor(1, b.Tick)
	if b.ColorAlpha() != 1 || b.SizeAlpha() != 1 {
		t.Fatalf("expected full focus animation, got color=%v size=%v", b.ColorAlpha(), b.SizeAlpha())
	}

	b.Click()
	b.Tick(0.05)
	if b.sizeAlpha >= 1 {
		t.Fatalf("expected click to shrink the button, got %v", b.sizeAlpha)
	}
	if p := b.Pulse(); p <= 0 || p >= 1 {
		t.Fatalf("expected pulse in progress, got %v", p)
	}

	tickFor(1, b.Tick)
	if b.SizeAlpha() != 1 {
		t.Fatalf("expected size to recover, got %v", b.SizeAlpha())
	}
	if b.Pulse() != 0 {
		t.Fatalf("expected pulse finished, got %v", b.Pulse())
	}

	_ = m.SetFocused(nil, false)
	tickFor(1, b.Tick)
	if b.ColorAlpha() != 0 {
		t.Fatalf("expected focus highlight gone, got %v", b.ColorAlpha())
	}
}

func TestButtonHoverIgnoredOnGamepad(t *testing.T) {
	m := newTestMenu()
	m.gamepad = true
	b := NewButton(m, nil, "Play", WithTooltip("tip"))

	b.SetHovered(true)
	if b.IsHovered() || m.tooltip != "" {
		t.Fatalf("expected hover ignored on gamepad")
	}

	m.gamepad = false
	b.SetHovered(true)
	if !b.IsHovered() || m.tooltip != "tip" {
		t.Fatalf("expected hover with tooltip, got hovered=%v tooltip=%q", b.IsHovered(), m.tooltip)
	}
}

func newModalFixture(t *testing.T) (*testMenu, *navigation.BasePanel, *ModalPanel) {
	t.Helper()
	m := newTestMenu()
	base := navigation.NewBasePanel("base", nil)
	_ = base.Register(NewButton(m, base, "Back"), true)
	if err := m.SetNavigationPanel(base); err != nil {
		t.Fatalf("expected base panel set, got %v", err)
	}
	modal := NewModalPanel(m, "modal", gamemath.NewRect(100, 80, 440, 200), [3]string{"Confirm", "Ignore", "Cancel"})
	return m, base, modal
}

func TestModalConfirmRestoresNavigationFirst(t *testing.T) {
	m, base, modal := newModalFixture(t)

	confirmed := false
	restoredFirst := false
	err := modal.Show("Quit", "Leave the game?", func() {
		confirmed = true
		restoredFirst = m.CurrentPanel() == navigation.Panel(base)
	}, nil, nil, nil)
	if err != nil {
		t.Fatalf("expected show to succeed, got %v", err)
	}

	if m.CurrentPanel() != navigation.Panel(modal) {
		t.Fatalf("expected modal active, got %v", m.CurrentPanel())
	}
	if !modal.Confirm.IsVisible() || modal.Dismiss.IsVisible() || !modal.Cancel.IsVisible() {
		t.Fatalf("expected confirm and cancel only, got confirm=%v dismiss=%v cancel=%v",
			modal.Confirm.IsVisible(), modal.Dismiss.IsVisible(), modal.Cancel.IsVisible())
	}
	if m.Focused() != navigation.Focusable(modal.Confirm) {
		t.Fatalf("expected confirm focused, got %v", m.Focused())
	}

	modal.Tick(0.1)
	if !modal.IsVisible() {
		t.Fatalf("expected modal fading in")
	}

	if !m.HandleAction(cfg.ActionPrimary) {
		t.Fatalf("expected primary action to confirm")
	}
	if !confirmed || !restoredFirst {
		t.Fatalf("expected callback after restore, got confirmed=%v restoredFirst=%v", confirmed, restoredFirst)
	}
	if !m.played(cfg.SoundModalConfirm) {
		t.Fatalf("expected confirm sound, got %v", m.sounds)
	}

	if !modal.IsVisible() {
		t.Fatalf("expected modal to stay visible while fading out")
	}
	tickFor(1, modal.Tick)
	if modal.IsVisible() || modal.Alpha() != 0 {
		t.Fatalf("expected modal hidden after fade, got alpha %v", modal.Alpha())
	}
}

func TestModalCancelThroughAction(t *testing.T) {
	m, base, modal := newModalFixture(t)

	cancelled := false
	_ = modal.Show("Error", "Something failed", nil, nil, func() { cancelled = true }, nil)
	if m.Focused() != navigation.Focusable(modal.Cancel) {
		t.Fatalf("expected cancel focused when it is the only button, got %v", m.Focused())
	}

	m.HandleAction(cfg.ActionCancel)
	if !cancelled {
		t.Fatalf("expected cancel callback")
	}
	if m.CurrentPanel() != navigation.Panel(base) || m.PreviousPanel() != nil {
		t.Fatalf("expected base panel restored")
	}
}

func TestModalCallbackCanOpenAnotherModal(t *testing.T) {
	m, _, modal := newModalFixture(t)
	second := NewModalPanel(m, "second", gamemath.NewRect(0, 0, 300, 150), [3]string{"A", "B", "C"})

	var secondErr error
	_ = modal.Show("First", "", func() {
		secondErr = second.Show("Second", "", func() {}, nil, nil, nil)
	}, nil, nil, nil)

	modal.OnConfirm()
	if secondErr != nil {
		t.Fatalf("expected chained modal to open, got %v", secondErr)
	}
	if m.CurrentPanel() != navigation.Panel(second) {
		t.Fatalf("expected second modal active, got %v", m.CurrentPanel())
	}
}

func TestModalDoublePushRejected(t *testing.T) {
	m, _, modal := newModalFixture(t)
	other := NewModalPanel(m, "other", gamemath.NewRect(0, 0, 300, 150), [3]string{"A", "B", "C"})

	_ = modal.Show("First", "", nil, nil, func() {}, nil)
	if err := other.Show("Second", "", nil, nil, func() {}, nil); err != navigation.ErrModalAlreadyActive {
		t.Fatalf("expected ErrModalAlreadyActive, got %v", err)
	}
	if m.CurrentPanel() != navigation.Panel(modal) {
		t.Fatalf("expected first modal to stay active")
	}

	other.Tick(0.1)
	if other.IsShown() || other.IsVisible() {
		t.Fatalf("expected rejected modal to stay hidden, shown=%v alpha=%v", other.IsShown(), other.Alpha())
	}
	if other.Cancel.IsVisible() || other.Cancel.IsFocused() {
		t.Fatalf("expected rejected modal buttons hidden and unfocused")
	}
	if other.Title() != "" {
		t.Fatalf("expected title untouched, got %q", other.Title())
	}

	modal.OnCancel()
	if err := other.Show("Second", "", nil, nil, func() {}, nil); err != nil {
		t.Fatalf("expected modal to open once the first closed, got %v", err)
	}
	if !other.IsShown() || m.CurrentPanel() != navigation.Panel(other) {
		t.Fatalf("expected second modal active")
	}
}
