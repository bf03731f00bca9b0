package navigation

import (
	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/shared/gamemath"
)

// Panel is a navigable scope: a focus graph plus the input hooks a concrete
// panel can react to.
type Panel interface {
	Node
	Name() string
	Graph() *FocusGraph
	ResetNavigation()

	Next()
	Previous()
	ZoomIn()
	ZoomOut()
	OnClicked(x, y float64)
	OnDoubleClicked(x, y float64)
	HorizontalAnalogInput(v float64)
	VerticalAnalogInput(v float64)
	OnFocusChanged(f Focusable)
	OnKeyPressed(a cfg.ActionID) bool

	IsModal() bool
	IsClickInsideMenuAllowed() bool
}

// BasePanel implements Panel with no-op hooks. Concrete panels embed it and
// override what they need.
type BasePanel struct {
	name   string
	parent Node
	graph  FocusGraph
}

// NewBasePanel creates an empty panel.
func NewBasePanel(name string, parent Node) *BasePanel {
	return &BasePanel{name: name, parent: parent}
}

func (p *BasePanel) Name() string          { return p.name }
func (p *BasePanel) Parent() Node          { return p.parent }
func (p *BasePanel) Graph() *FocusGraph    { return &p.graph }
func (p *BasePanel) SetParent(parent Node) { p.parent = parent }

// Register adds a focusable element to this panel.
func (p *BasePanel) Register(e Focusable, isDefault bool) error {
	return p.graph.Register(e, isDefault)
}

// Unregister removes an element from this panel.
func (p *BasePanel) Unregister(e Focusable) {
	p.graph.Unregister(e)
}

// ResetNavigation focuses the default element, or clears focus when nothing
// can be focused.
func (p *BasePanel) ResetNavigation() {
	_ = p.graph.SetFocused(p.graph.Default(), true)
}

func (p *BasePanel) Next()                            {}
func (p *BasePanel) Previous()                        {}
func (p *BasePanel) ZoomIn()                          {}
func (p *BasePanel) ZoomOut()                         {}
func (p *BasePanel) OnClicked(x, y float64)           {}
func (p *BasePanel) OnDoubleClicked(x, y float64)     {}
func (p *BasePanel) HorizontalAnalogInput(v float64)  {}
func (p *BasePanel) VerticalAnalogInput(v float64)    {}
func (p *BasePanel) OnFocusChanged(f Focusable)       {}
func (p *BasePanel) OnKeyPressed(a cfg.ActionID) bool { return false }
func (p *BasePanel) IsModal() bool                    { return false }
func (p *BasePanel) IsClickInsideMenuAllowed() bool   { return true }

// IsButtonActionAllowed reports whether an action key targeting button may
// fire while panel is active: button must sit somewhere below panel.
func IsButtonActionAllowed(panel Panel, button Focusable) bool {
	return IsDescendant(panel, button)
}

// IsButtonInsideWidget reports whether button lies entirely inside bounds.
func IsButtonInsideWidget(button Focusable, bounds gamemath.Rect) bool {
	return button != nil && bounds.ContainsRect(button.Bounds())
}
