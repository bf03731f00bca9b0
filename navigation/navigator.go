package navigation

import (
	"log/slog"
	"math"

	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/logging"
	"github.com/automoto/neutron/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Sounds plays UI feedback.
type Sounds interface {
	PlaySound(id cfg.SoundID)
}

// InputMode tells the navigator whether the player is on a gamepad.
type InputMode interface {
	IsUsingGamepad() bool
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the logger used to report contract violations.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) { n.log = l }
}

// WithSounds sets the UI sound sink.
func WithSounds(s Sounds) Option {
	return func(n *Navigator) { n.sounds = s }
}

// WithInputMode sets the gamepad/keyboard source.
func WithInputMode(m InputMode) Option {
	return func(n *Navigator) { n.mode = m }
}

// Navigator routes menu input to the active navigation panel. It holds the
// active panel and, while a modal panel is up, the panel it replaced.
type Navigator struct {
	current  Panel
	previous Panel

	actionButtons []ActionButton
	menuButtons   map[ActionButton]bool

	log    *slog.Logger
	sounds Sounds
	mode   InputMode

	analogNavTime float64
	analogInput   dmath.Vec2

	pointerPressed    bool
	pointerWasPressed bool
	pointer           dmath.Vec2
	smoothedPointer   *gamemath.TimedAverage[dmath.Vec2]
}

// NewNavigator creates a navigator with no active panel.
func NewNavigator(opts ...Option) *Navigator {
	n := &Navigator{
		menuButtons:     make(map[ActionButton]bool),
		smoothedPointer: gamemath.NewTimedAverage(cfg.UI.PointerSmoothingPeriod, gamemath.Vec2Blend),
		analogNavTime:   math.MaxFloat64,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.log == nil {
		n.log = logging.Discard()
	}
	return n
}

// CurrentPanel returns the active panel, or nil.
func (n *Navigator) CurrentPanel() Panel {
	return n.current
}

// PreviousPanel returns the panel suspended by the active modal, or nil.
func (n *Navigator) PreviousPanel() Panel {
	return n.previous
}

// SetNavigationPanel makes p the active panel. Setting the active panel
// again refreshes it; setting a different one while a panel is active is a
// contract violation.
func (n *Navigator) SetNavigationPanel(p Panel) error {
	if p == nil {
		return n.violation(ErrNilPanel, "set navigation panel")
	}
	if p == n.current {
		n.RefreshNavigationPanel()
		return nil
	}
	if n.current != nil {
		return n.violation(ErrPanelActive, "set navigation panel",
			slog.String("active", n.current.Name()), slog.String("requested", p.Name()))
	}

	n.current = p
	p.Graph().Observe(p.OnFocusChanged)
	n.log.Debug("navigation panel set", "panel", p.Name())
	return nil
}

// ClearNavigationPanel unfocuses the active panel's elements and leaves no
// panel active.
func (n *Navigator) ClearNavigationPanel() {
	if n.current == nil {
		return
	}
	n.current.Graph().ClearFocus()
	n.log.Debug("navigation panel cleared", "panel", n.current.Name())
	n.current = nil
}

// RefreshNavigationPanel drops focus from an element that can no longer
// hold it, so the next tick resets navigation.
func (n *Navigator) RefreshNavigationPanel() {
	if n.current == nil {
		return
	}
	g := n.current.Graph()
	for _, e := range g.Elements() {
		if e.IsFocused() && !CanFocus(e) {
			e.SetFocused(false)
		}
	}
}

// SetModalNavigationPanel suspends the active panel and activates p. Only
// one modal level is supported.
func (n *Navigator) SetModalNavigationPanel(p Panel) error {
	if p == nil {
		return n.violation(ErrNilPanel, "set modal navigation panel")
	}
	if n.current == nil {
		return n.violation(ErrNoActivePanel, "set modal navigation panel", slog.String("modal", p.Name()))
	}
	if n.previous != nil {
		return n.violation(ErrModalAlreadyActive, "set modal navigation panel",
			slog.String("modal", n.current.Name()), slog.String("requested", p.Name()))
	}

	n.previous = n.current
	n.ClearNavigationPanel()
	return n.SetNavigationPanel(p)
}

// ClearModalNavigationPanel restores the panel suspended by the modal.
func (n *Navigator) ClearModalNavigationPanel() error {
	if n.previous == nil {
		return n.violation(ErrNoModalActive, "clear modal navigation panel")
	}

	restore := n.previous
	n.ClearNavigationPanel()
	n.previous = nil
	return n.SetNavigationPanel(restore)
}

// IsModalActive reports whether a modal panel replaced the base panel.
func (n *Navigator) IsModalActive() bool {
	return n.previous != nil
}

// Focused returns the focused element of the active panel.
func (n *Navigator) Focused() Focusable {
	if n.current == nil {
		return nil
	}
	return n.current.Graph().Focused()
}

// SetFocused focuses f inside the active panel.
func (n *Navigator) SetFocused(f Focusable, fromNavigation bool) error {
	if n.current == nil {
		return ErrNoActivePanel
	}
	return n.current.Graph().SetFocused(f, fromNavigation)
}

// RegisterActionButton makes b reachable through its action key. Menu
// buttons fire whatever panel is active; the others only fire while their
// own panel is.
func (n *Navigator) RegisterActionButton(b ActionButton, menuButton bool) {
	for _, existing := range n.actionButtons {
		if existing == b {
			n.menuButtons[b] = menuButton
			return
		}
	}
	n.actionButtons = append(n.actionButtons, b)
	n.menuButtons[b] = menuButton
}

// UnregisterActionButton removes b.
func (n *Navigator) UnregisterActionButton(b ActionButton) {
	for i, existing := range n.actionButtons {
		if existing == b {
			n.actionButtons = append(n.actionButtons[:i], n.actionButtons[i+1:]...)
			delete(n.menuButtons, b)
			return
		}
	}
}

// HandleAction dispatches a pressed menu action and reports whether it was
// handled.
func (n *Navigator) HandleAction(a cfg.ActionID) bool {
	handled := false

	if n.current != nil {
		switch a {
		case cfg.ActionUp, cfg.ActionDown, cfg.ActionLeft, cfg.ActionRight:
			handled = n.Navigate(DirectionFromAction(a))
		case cfg.ActionNext:
			n.current.Next()
			handled = true
		case cfg.ActionPrevious:
			n.current.Previous()
			handled = true
		case cfg.ActionZoomIn:
			n.current.ZoomIn()
			handled = true
		case cfg.ActionZoomOut:
			n.current.ZoomOut()
			handled = true
		}
	}

	if n.fireActionButtons(a) {
		return true
	}

	if a == cfg.ActionConfirm {
		if c, ok := n.Focused().(Clickable); ok && c != nil {
			c.Click()
			return true
		}
		return handled
	}
	if n.current != nil && n.current.OnKeyPressed(a) {
		handled = true
	}
	return handled
}

// Navigate moves focus to the nearest element in dir. It reports whether
// focus moved.
func (n *Navigator) Navigate(dir Direction) bool {
	if n.current == nil {
		return false
	}
	g := n.current.Graph()
	next := g.GetNext(g.Focused(), dir)
	if next == nil {
		return false
	}
	if err := g.SetFocused(next, true); err != nil {
		return false
	}
	n.playSound(cfg.SoundMenuNavigate)
	return true
}

func (n *Navigator) fireActionButtons(a cfg.ActionID) bool {
	for _, b := range n.actionButtons {
		if b.Action() != a || !b.IsEnabled() || !b.IsVisible() {
			continue
		}

		allowed := n.current == nil || IsButtonActionAllowed(n.current, b) ||
			(n.menuButtons[b] && !n.current.IsModal())
		wasFocused := b.IsFocused()
		if allowed {
			b.Click()
		}
		if n.current != nil && wasFocused && b.IsActionFocusable() {
			n.current.ResetNavigation()
		}
		if allowed {
			return true
		}
	}
	return false
}

// HandleNavigationAxis turns a held navigation stick into repeated focus
// moves. Strong deflections repeat faster.
func (n *Navigator) HandleNavigationAxis(axis cfg.AxisID, value float64) bool {
	if n.current == nil {
		return false
	}

	thr := cfg.UI.AnalogNavThreshold
	if math.Abs(value) <= thr {
		return false
	}

	dir := DirectionNone
	switch axis {
	case cfg.AxisMoveHorizontal:
		dir = DirectionRight
		if value < 0 {
			dir = DirectionLeft
		}
	case cfg.AxisMoveVertical:
		dir = DirectionUp
		if value < 0 {
			dir = DirectionDown
		}
	default:
		return false
	}

	strength := (math.Abs(value) - thr) / (1 - thr)
	period := gamemath.Lerp(cfg.UI.AnalogNavMaxPeriod, cfg.UI.AnalogNavMinPeriod, strength)
	if n.analogNavTime < period {
		return false
	}
	if n.Navigate(dir) {
		n.analogNavTime = 0
		return true
	}
	return false
}

// SetAnalogInput stores the raw analog stick values routed to the focused
// element or panel on the next tick.
func (n *Navigator) SetAnalogInput(x, y float64) {
	thr := cfg.UI.AnalogNavThreshold
	n.analogInput = dmath.Vec2{X: gamemath.AnalogFilter(x, thr), Y: gamemath.AnalogFilter(y, thr)}
}

// AnalogInput returns the filtered analog input.
func (n *Navigator) AnalogInput() (float64, float64) {
	return n.analogInput.X, n.analogInput.Y
}

// SetPointer records the pointer position and whether it is held. Holding
// and dragging produces analog input when not on a gamepad.
func (n *Navigator) SetPointer(x, y float64, pressed bool) {
	n.pointer = dmath.Vec2{X: x, Y: y}
	n.pointerPressed = pressed
}

// Tick advances analog repeat timing, restores focus when it was lost and
// routes analog input.
func (n *Navigator) Tick(dt float64) {
	if n.current != nil && n.Focused() == nil {
		n.current.ResetNavigation()
	}

	if n.analogNavTime < math.MaxFloat64-dt {
		n.analogNavTime += dt
	}

	if n.current == nil {
		return
	}

	gamepad := n.isUsingGamepad()
	if gamepad {
		n.pointerPressed = false
		n.pointerWasPressed = false
	} else {
		n.analogInput = dmath.Vec2{}
	}

	if n.pointerPressed {
		if !n.pointerWasPressed {
			n.smoothedPointer.Clear()
		} else {
			n.smoothedPointer.Set(n.pointer, dt)
			avg := n.smoothedPointer.Get()
			dx, dy := n.pointer.X-avg.X, n.pointer.Y-avg.Y
			if l := math.Hypot(dx, dy); l > 1e-8 {
				n.analogInput = dmath.Vec2{X: dx / l, Y: -dy / l}
			}
		}
		n.pointerWasPressed = true
	} else {
		n.pointerWasPressed = false
	}

	consumed := false
	if r, ok := n.Focused().(AnalogReceiver); ok && gamepad && r != nil {
		consumed = r.HorizontalAnalogInput(n.analogInput.X)
		consumed = r.VerticalAnalogInput(n.analogInput.Y) || consumed
	}
	if !consumed {
		n.current.HorizontalAnalogInput(n.analogInput.X)
		n.current.VerticalAnalogInput(n.analogInput.Y)
	}
}

func (n *Navigator) isUsingGamepad() bool {
	return n.mode != nil && n.mode.IsUsingGamepad()
}

func (n *Navigator) playSound(id cfg.SoundID) {
	if n.sounds != nil {
		n.sounds.PlaySound(id)
	}
}

func (n *Navigator) violation(err error, op string, attrs ...any) error {
	args := append([]any{slog.String("op", op), slog.String("error", err.Error())}, attrs...)
	n.log.Warn("navigation contract violation", args...)
	return err
}
