// Package widgets holds the menu controls built on the navigation core:
// buttons, modal panels, tab views, lists and small animated helpers.
// Widgets keep their own state and animation values; drawing is left to
// the host.
package widgets

import (
	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/navigation"
)

// Menu is what widgets need from the menu that owns them. The navigation
// methods match *navigation.Navigator.
type Menu interface {
	SetNavigationPanel(p navigation.Panel) error
	ClearNavigationPanel()
	RefreshNavigationPanel()
	SetModalNavigationPanel(p navigation.Panel) error
	ClearModalNavigationPanel() error
	CurrentPanel() navigation.Panel
	SetFocused(f navigation.Focusable, fromNavigation bool) error
	RegisterActionButton(b navigation.ActionButton, menuButton bool)
	UnregisterActionButton(b navigation.ActionButton)

	PlaySound(id cfg.SoundID)
	ShowTooltip(owner navigation.Focusable, text string)
	HideTooltip(owner navigation.Focusable)
	IsUsingGamepad() bool
}

// Registry is implemented by panels that own focusable elements.
type Registry interface {
	Register(e navigation.Focusable, isDefault bool) error
	Unregister(e navigation.Focusable)
}
