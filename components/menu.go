package components

import (
	"github.com/automoto/neutron/controls"
	"github.com/automoto/neutron/i18n"
	"github.com/automoto/neutron/menu"
	"github.com/automoto/neutron/ui"
	"github.com/automoto/neutron/widgets"
	"github.com/yohamta/donburi"
)

// MenuData points at the menu objects shared by every scene. The manager
// outlives scenes so a transition started in one scene finishes in the next.
type MenuData struct {
	Manager  *menu.Manager
	Main     *ui.MainMenu
	Hints    *ui.HintBar
	Bindings *controls.Table
	Catalog  *i18n.Catalog

	// Loading screen dots
	Dots *widgets.CarouselAnimation

	// Pointer click tracking for double clicks
	LastClickTime float64
	LastClickX    float64
	LastClickY    float64
	Clock         float64
}

// Menu is the component type for the shared menu state
var Menu = donburi.NewComponentType[MenuData]()
