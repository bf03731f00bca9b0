package navigation

import (
	"errors"
	"testing"

	cfg "github.com/automoto/neutron/config"
)

type testPanel struct {
	*BasePanel
	modal      bool
	nexts      int
	keys       []cfg.ActionID
	focusLog   []Focusable
	analogX    float64
	analogY    float64
	consumeKey bool
}

func newPanel(name string) *testPanel {
	return &testPanel{BasePanel: NewBasePanel(name, nil)}
}

func (p *testPanel) Next()                           { p.nexts++ }
func (p *testPanel) IsModal() bool                   { return p.modal }
func (p *testPanel) OnFocusChanged(f Focusable)      { p.focusLog = append(p.focusLog, f) }
func (p *testPanel) HorizontalAnalogInput(v float64) { p.analogX = v }
func (p *testPanel) VerticalAnalogInput(v float64)   { p.analogY = v }
func (p *testPanel) OnKeyPressed(a cfg.ActionID) bool {
	p.keys = append(p.keys, a)
	return p.consumeKey
}

type testSounds struct {
	played []cfg.SoundID
}

func (s *testSounds) PlaySound(id cfg.SoundID) { s.played = append(s.played, id) }

type testMode bool

func (m testMode) IsUsingGamepad() bool { return bool(m) }

type testSlider struct {
	*testElement
	got float64
}

func (s *testSlider) HorizontalAnalogInput(v float64) bool {
	s.got = v
	return v != 0
}
func (s *testSlider) VerticalAnalogInput(v float64) bool { return false }

func panelWithGrid(t *testing.T, name string) (*testPanel, []*testElement) {
	t.Helper()
	p := newPanel(name)
	g, els := gridGraph(t)
	for _, e := range g.Elements() {
		e.(*testElement).parent = p
		_ = p.Register(e, false)
	}
	return p, els
}

func TestModalStackBalance(t *testing.T) {
	nav := NewNavigator()
	base, _ := panelWithGrid(t, "base")
	modal, _ := panelWithGrid(t, "modal")
	modal.modal = true

	if err := nav.SetNavigationPanel(base); err != nil {
		t.Fatalf("expected base panel set, got %v", err)
	}
	if err := nav.SetModalNavigationPanel(modal); err != nil {
		t.Fatalf("expected modal push, got %v", err)
	}
	if nav.CurrentPanel() != Panel(modal) || nav.PreviousPanel() != Panel(base) {
		t.Fatalf("expected modal over base, got %v over %v", nav.CurrentPanel(), nav.PreviousPanel())
	}

	if err := nav.ClearModalNavigationPanel(); err != nil {
		t.Fatalf("expected modal pop, got %v", err)
	}
	if nav.CurrentPanel() != Panel(base) {
		t.Fatalf("expected base restored, got %v", nav.CurrentPanel())
	}
	if nav.PreviousPanel() != nil {
		t.Fatalf("expected no previous panel, got %v", nav.PreviousPanel())
	}

	if err := nav.ClearModalNavigationPanel(); !errors.Is(err, ErrNoModalActive) {
		t.Fatalf("expected ErrNoModalActive, got %v", err)
	}
	if nav.CurrentPanel() != Panel(base) {
		t.Fatalf("expected rejected pop to leave base active")
	}
}

func TestModalRejections(t *testing.T) {
	nav := NewNavigator()
	base := newPanel("base")
	first := newPanel("first")
	second := newPanel("second")

	if err := nav.SetModalNavigationPanel(first); !errors.Is(err, ErrNoActivePanel) {
		t.Fatalf("expected ErrNoActivePanel, got %v", err)
	}

	_ = nav.SetNavigationPanel(base)
	_ = nav.SetModalNavigationPanel(first)
	if err := nav.SetModalNavigationPanel(second); !errors.Is(err, ErrModalAlreadyActive) {
		t.Fatalf("expected ErrModalAlreadyActive, got %v", err)
	}
	if nav.CurrentPanel() != Panel(first) || nav.PreviousPanel() != Panel(base) {
		t.Fatalf("expected stack unchanged after rejected push")
	}
}

func TestSetNavigationPanelRules(t *testing.T) {
	nav := NewNavigator()
	a := newPanel("a")
	b := newPanel("b")

	if err := nav.SetNavigationPanel(nil); !errors.Is(err, ErrNilPanel) {
		t.Fatalf("expected ErrNilPanel, got %v", err)
	}
	_ = nav.SetNavigationPanel(a)
	if err := nav.SetNavigationPanel(a); err != nil {
		t.Fatalf("expected same panel to refresh, got %v", err)
	}
	if err := nav.SetNavigationPanel(b); !errors.Is(err, ErrPanelActive) {
		t.Fatalf("expected ErrPanelActive, got %v", err)
	}
	nav.ClearNavigationPanel()
	if err := nav.SetNavigationPanel(b); err != nil {
		t.Fatalf("expected b after clear, got %v", err)
	}
}

func TestClearNavigationPanelUnfocuses(t *testing.T) {
	nav := NewNavigator()
	p, els := panelWithGrid(t, "p")
	_ = nav.SetNavigationPanel(p)
	_ = nav.SetFocused(els[2], false)

	nav.ClearNavigationPanel()
	for _, e := range els {
		if e.focused {
			t.Fatalf("expected %s unfocused", e.name)
		}
	}
	if nav.CurrentPanel() != nil {
		t.Fatalf("expected no active panel")
	}
}

func TestTickResetsNavigation(t *testing.T) {
	nav := NewNavigator()
	p, els := panelWithGrid(t, "p")
	_ = nav.SetNavigationPanel(p)

	nav.Tick(1.0 / 60)
	if nav.Focused() != Focusable(els[0]) {
		t.Fatalf("expected default focus after tick, got %v", nav.Focused())
	}
	if len(p.focusLog) != 1 || p.focusLog[0] != Focusable(els[0]) {
		t.Fatalf("expected panel notified of focus, got %v", p.focusLog)
	}
}

func TestTickOnEmptyPanelStaysQuiet(t *testing.T) {
	nav := NewNavigator()
	p := newPanel("empty")
	hidden := newElement("hidden", 0, 0, 10, 10)
	hidden.hidden = true
	_ = p.Register(hidden, true)
	_ = nav.SetNavigationPanel(p)

	for i := 0; i < 10; i++ {
		nav.Tick(1.0 / 60)
	}
	if nav.Focused() != nil {
		t.Fatalf("expected nothing focused, got %v", nav.Focused())
	}
	if len(p.focusLog) != 0 {
		t.Fatalf("expected no focus notifications, got %v", p.focusLog)
	}
}

func TestHandleActionDirections(t *testing.T) {
	sounds := &testSounds{}
	nav := NewNavigator(WithSounds(sounds))
	p, els := panelWithGrid(t, "p")
	_ = nav.SetNavigationPanel(p)
	nav.Tick(0)

	if !nav.HandleAction(cfg.ActionRight) {
		t.Fatalf("expected right to be handled")
	}
	if nav.Focused() != Focusable(els[1]) {
		t.Fatalf("expected top-right focused, got %v", nav.Focused())
	}
	if len(sounds.played) != 1 || sounds.played[0] != cfg.SoundMenuNavigate {
		t.Fatalf("expected navigate sound, got %v", sounds.played)
	}

	if nav.HandleAction(cfg.ActionRight) {
		t.Fatalf("expected dead end to be unhandled")
	}
	if nav.Focused() != Focusable(els[1]) {
		t.Fatalf("expected focus kept at dead end, got %v", nav.Focused())
	}
}

func TestHandleActionPanelHooks(t *testing.T) {
	nav := NewNavigator()
	p := newPanel("p")
	_ = nav.SetNavigationPanel(p)

	if !nav.HandleAction(cfg.ActionNext) || p.nexts != 1 {
		t.Fatalf("expected Next hook, got %d calls", p.nexts)
	}

	p.keys = nil
	p.consumeKey = true
	if !nav.HandleAction(cfg.ActionCancel) {
		t.Fatalf("expected panel to consume cancel")
	}
	if len(p.keys) != 1 || p.keys[0] != cfg.ActionCancel {
		t.Fatalf("expected cancel forwarded, got %v", p.keys)
	}
}

func TestHandleActionConfirmClicksFocused(t *testing.T) {
	nav := NewNavigator()
	p, els := panelWithGrid(t, "p")
	_ = nav.SetNavigationPanel(p)
	_ = nav.SetFocused(els[3], false)

	if !nav.HandleAction(cfg.ActionConfirm) {
		t.Fatalf("expected confirm handled")
	}
	if els[3].clicks != 1 {
		t.Fatalf("expected focused element clicked once, got %d", els[3].clicks)
	}
}

func TestActionButtonsRespectPanel(t *testing.T) {
	nav := NewNavigator()
	active := newPanel("active")
	other := newPanel("other")
	_ = nav.SetNavigationPanel(active)

	own := newElement("own", 0, 0, 10, 10)
	own.parent = active
	own.action = cfg.ActionSecondary

	foreign := newElement("foreign", 0, 0, 10, 10)
	foreign.parent = other
	foreign.action = cfg.ActionPrimary

	global := newElement("global", 0, 0, 10, 10)
	global.action = cfg.ActionAltPrimary

	nav.RegisterActionButton(own, false)
	nav.RegisterActionButton(foreign, false)
	nav.RegisterActionButton(global, true)

	if !nav.HandleAction(cfg.ActionSecondary) || own.clicks != 1 {
		t.Fatalf("expected own action button to fire, got %d clicks", own.clicks)
	}
	nav.HandleAction(cfg.ActionPrimary)
	if foreign.clicks != 0 {
		t.Fatalf("expected foreign action button not to fire, got %d clicks", foreign.clicks)
	}
	if !nav.HandleAction(cfg.ActionAltPrimary) || global.clicks != 1 {
		t.Fatalf("expected menu-global button to fire, got %d clicks", global.clicks)
	}

	own.disabled = true
	nav.HandleAction(cfg.ActionSecondary)
	if own.clicks != 1 {
		t.Fatalf("expected disabled button not to fire, got %d clicks", own.clicks)
	}

	nav.UnregisterActionButton(global)
	nav.HandleAction(cfg.ActionAltPrimary)
	if global.clicks != 1 {
		t.Fatalf("expected unregistered button not to fire, got %d clicks", global.clicks)
	}
}

func TestMenuButtonsBlockedByModal(t *testing.T) {
	nav := NewNavigator()
	base := newPanel("base")
	modal := newPanel("modal")
	modal.modal = true
	_ = nav.SetNavigationPanel(base)

	global := newElement("global", 0, 0, 10, 10)
	global.action = cfg.ActionNextTab
	nav.RegisterActionButton(global, true)

	_ = nav.SetModalNavigationPanel(modal)
	nav.HandleAction(cfg.ActionNextTab)
	if global.clicks != 0 {
		t.Fatalf("expected menu-global button blocked under a modal, got %d clicks", global.clicks)
	}

	_ = nav.ClearModalNavigationPanel()
	nav.HandleAction(cfg.ActionNextTab)
	if global.clicks != 1 {
		t.Fatalf("expected menu-global button to fire again, got %d clicks", global.clicks)
	}
}

func TestActionFocusableButtonResetsNavigation(t *testing.T) {
	nav := NewNavigator()
	p, els := panelWithGrid(t, "p")
	_ = nav.SetNavigationPanel(p)

	btn := els[3]
	btn.action = cfg.ActionPrimary
	btn.actionFoc = true
	nav.RegisterActionButton(btn, false)
	_ = nav.SetFocused(btn, false)

	nav.HandleAction(cfg.ActionPrimary)
	if btn.clicks != 1 {
		t.Fatalf("expected button clicked, got %d", btn.clicks)
	}
	if nav.Focused() != Focusable(els[0]) {
		t.Fatalf("expected navigation reset to default, got %v", nav.Focused())
	}
}

func TestHandleNavigationAxisRepeat(t *testing.T) {
	nav := NewNavigator()
	p, els := panelWithGrid(t, "p")
	_ = nav.SetNavigationPanel(p)
	_ = nav.SetFocused(els[2], false)

	if nav.HandleNavigationAxis(cfg.AxisMoveVertical, 0.1) {
		t.Fatalf("expected dead zone to be ignored")
	}
	if !nav.HandleNavigationAxis(cfg.AxisMoveVertical, 1.0) {
		t.Fatalf("expected full up deflection to move")
	}
	if nav.Focused() != Focusable(els[0]) {
		t.Fatalf("expected top-left after moving up, got %v", nav.Focused())
	}

	if nav.HandleNavigationAxis(cfg.AxisMoveHorizontal, 1.0) {
		t.Fatalf("expected repeat to wait for the period")
	}
	nav.Tick(cfg.UI.AnalogNavMinPeriod)
	if !nav.HandleNavigationAxis(cfg.AxisMoveHorizontal, 1.0) {
		t.Fatalf("expected move after the minimum period")
	}
	if nav.Focused() != Focusable(els[1]) {
		t.Fatalf("expected top-right, got %v", nav.Focused())
	}

	nav.Tick(cfg.UI.AnalogNavMinPeriod)
	if nav.HandleNavigationAxis(cfg.AxisMoveVertical, -0.3) {
		t.Fatalf("expected a weak deflection to need a longer period")
	}
}

func TestAnalogInputRouting(t *testing.T) {
	p := newPanel("p")
	slider := &testSlider{testElement: newElement("slider", 0, 0, 100, 10)}
	slider.parent = p
	_ = p.Register(slider, true)

	nav := NewNavigator(WithInputMode(testMode(true)))
	_ = nav.SetNavigationPanel(p)
	nav.Tick(0)

	nav.SetAnalogInput(1, 0)
	nav.Tick(0)
	if slider.got != 1 {
		t.Fatalf("expected slider to receive full input, got %v", slider.got)
	}
	if p.analogX != 0 {
		t.Fatalf("expected panel not to receive consumed input, got %v", p.analogX)
	}

	keyboard := NewNavigator(WithInputMode(testMode(false)))
	q := newPanel("q")
	_ = keyboard.SetNavigationPanel(q)
	keyboard.SetAnalogInput(1, 1)
	keyboard.Tick(0)
	if x, y := keyboard.AnalogInput(); x != 0 || y != 0 {
		t.Fatalf("expected keyboard mode to drop stick input, got %v, %v", x, y)
	}
}

func TestPointerDragProducesAnalog(t *testing.T) {
	nav := NewNavigator()
	p := newPanel("p")
	_ = nav.SetNavigationPanel(p)

	nav.SetPointer(100, 100, true)
	nav.Tick(0.05)
	nav.SetPointer(150, 100, true)
	nav.Tick(0.05)
	nav.SetPointer(200, 100, true)
	nav.Tick(0.05)

	if p.analogX <= 0 {
		t.Fatalf("expected rightward drag to give positive horizontal input, got %v", p.analogX)
	}
	if p.analogY != 0 {
		t.Fatalf("expected no vertical input, got %v", p.analogY)
	}
}

func TestIsButtonActionAllowed(t *testing.T) {
	p := newPanel("p")
	inner := newPanel("inner")
	inner.SetParent(p)

	deep := newElement("deep", 0, 0, 1, 1)
	deep.parent = inner
	loose := newElement("loose", 0, 0, 1, 1)

	if !IsButtonActionAllowed(p, deep) {
		t.Fatalf("expected nested button to be allowed")
	}
	if IsButtonActionAllowed(p, loose) {
		t.Fatalf("expected unparented button to be refused")
	}
}
