package widgets

import (
	"log/slog"

	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/logging"
	"github.com/automoto/neutron/navigation"
	"github.com/automoto/neutron/shared/gamemath"
)

// ModalPanel is a dialog that takes over navigation while shown. Up to
// three outcome buttons are offered; confirm and dismiss only appear when
// their callback is bound. Hidden modals expose no buttons.
type ModalPanel struct {
	*navigation.BasePanel

	menu Menu
	log  *slog.Logger

	title   string
	text    string
	content any

	onConfirmed func()
	onDismissed func()
	onCancelled func()

	shouldShow bool
	fadeTime   float64
	alpha      float64

	Confirm *Button
	Dismiss *Button
	Cancel  *Button
}

// NewModalPanel creates a hidden modal with its three buttons laid out in a
// row inside bounds.
func NewModalPanel(menu Menu, name string, bounds gamemath.Rect, labels [3]string) *ModalPanel {
	m := &ModalPanel{
		BasePanel: navigation.NewBasePanel(name, nil),
		menu:      menu,
		log:       logging.Discard(),
	}

	w := cfg.Menu.ButtonWidth * 0.6
	h := cfg.Menu.ButtonHeight
	y := bounds.Bottom() - h - cfg.Menu.ButtonGap
	x := bounds.X + (bounds.W-3*w-2*cfg.Menu.ButtonGap)/2
	slot := func(i int) gamemath.Rect {
		return gamemath.NewRect(x+float64(i)*(w+cfg.Menu.ButtonGap), y, w, h)
	}

	m.Confirm = NewButton(menu, m, labels[0],
		WithBounds(slot(0)),
		WithAction(cfg.ActionPrimary, false),
		WithOnClick(m.OnConfirm),
		WithVisible(func() bool { return m.shouldShow && m.onConfirmed != nil }),
		WithSound(cfg.SoundNone))
	m.Dismiss = NewButton(menu, m, labels[1],
		WithBounds(slot(1)),
		WithAction(cfg.ActionSecondary, false),
		WithOnClick(m.OnDismiss),
		WithVisible(func() bool { return m.shouldShow && m.onDismissed != nil }),
		WithSound(cfg.SoundNone))
	m.Cancel = NewButton(menu, m, labels[2],
		WithBounds(slot(2)),
		WithAction(cfg.ActionCancel, false),
		WithOnClick(m.OnCancel),
		WithVisible(func() bool { return m.shouldShow }),
		WithSound(cfg.SoundNone))

	for i, b := range []*Button{m.Confirm, m.Dismiss, m.Cancel} {
		_ = m.Register(b, i == 0)
		if menu != nil {
			menu.RegisterActionButton(b, false)
		}
	}
	return m
}

// SetLogger sets the logger used for show/hide events.
func (m *ModalPanel) SetLogger(l *slog.Logger) {
	m.log = l
}

func (m *ModalPanel) IsModal() bool { return true }

// Show opens the modal with the given outcome callbacks and pushes it over
// the active navigation panel. content replaces the text body when set. A
// rejected push leaves the modal as it was.
func (m *ModalPanel) Show(title, text string, onConfirm, onDismiss, onCancel func(), content any) error {
	prev := m.contents()
	m.setContents(modalContents{
		shown:     true,
		title:     title,
		text:      text,
		content:   content,
		confirmed: onConfirm,
		dismissed: onDismiss,
		cancelled: onCancel,
	})

	if m.menu != nil {
		m.ResetNavigation()
		if err := m.menu.SetModalNavigationPanel(m); err != nil {
			m.setContents(prev)
			m.Graph().ClearFocus()
			m.log.Warn("modal rejected", "panel", m.Name(), "title", title, "error", err)
			return err
		}
	}

	m.log.Debug("modal shown", "panel", m.Name(), "title", title)
	return nil
}

type modalContents struct {
	shown       bool
	title, text string
	content     any
	confirmed   func()
	dismissed   func()
	cancelled   func()
}

func (m *ModalPanel) contents() modalContents {
	return modalContents{
		shown:     m.shouldShow,
		title:     m.title,
		text:      m.text,
		content:   m.content,
		confirmed: m.onConfirmed,
		dismissed: m.onDismissed,
		cancelled: m.onCancelled,
	}
}

func (m *ModalPanel) setContents(c modalContents) {
	m.shouldShow = c.shown
	m.title, m.text, m.content = c.title, c.text, c.content
	m.onConfirmed, m.onDismissed, m.onCancelled = c.confirmed, c.dismissed, c.cancelled
}

// Hide starts the fade out and gives navigation back to the panel below.
func (m *ModalPanel) Hide() {
	m.shouldShow = false
	if m.menu != nil && m.menu.CurrentPanel() == navigation.Panel(m) {
		if err := m.menu.ClearModalNavigationPanel(); err != nil {
			m.log.Warn("modal hide failed", "panel", m.Name(), "error", err)
		}
	}
}

// Tick advances the fade.
func (m *ModalPanel) Tick(dt float64) {
	if m.shouldShow {
		m.fadeTime += dt
	} else {
		m.fadeTime -= dt
	}
	d := cfg.UI.FadeDurationShort
	m.fadeTime = gamemath.Clamp(m.fadeTime, 0, d)
	m.alpha = gamemath.InterpEaseInOut(0, 1, m.fadeTime/d, cfg.UI.EaseStandard)

	for _, b := range []*Button{m.Confirm, m.Dismiss, m.Cancel} {
		b.Tick(dt)
	}
}

// OnConfirm hides the modal, then runs the confirm callback.
func (m *ModalPanel) OnConfirm() {
	m.Hide()
	m.playSound(cfg.SoundModalConfirm)
	if m.onConfirmed != nil {
		m.onConfirmed()
	}
}

// OnDismiss hides the modal, then runs the dismiss callback.
func (m *ModalPanel) OnDismiss() {
	m.Hide()
	m.playSound(cfg.SoundModalCancel)
	if m.onDismissed != nil {
		m.onDismissed()
	}
}

// OnCancel hides the modal, then runs the cancel callback.
func (m *ModalPanel) OnCancel() {
	m.Hide()
	m.playSound(cfg.SoundModalCancel)
	if m.onCancelled != nil {
		m.onCancelled()
	}
}

func (m *ModalPanel) playSound(id cfg.SoundID) {
	if m.menu != nil {
		m.menu.PlaySound(id)
	}
}

// IsVisible reports whether any part of the modal is drawn.
func (m *ModalPanel) IsVisible() bool { return m.alpha > 0 }

// IsShown reports whether the modal is open or opening.
func (m *ModalPanel) IsShown() bool { return m.shouldShow }

func (m *ModalPanel) Alpha() float64 { return m.alpha }
func (m *ModalPanel) Title() string  { return m.title }
func (m *ModalPanel) Text() string   { return m.text }
func (m *ModalPanel) Content() any   { return m.content }

// BackgroundAlpha drops very faint values so the overlay does not flicker
// at the end of a fade.
func (m *ModalPanel) BackgroundAlpha() float64 {
	if m.alpha > 0.1 {
		return m.alpha
	}
	return 0
}
