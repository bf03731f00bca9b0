package systems

import (
	"image/color"

	"github.com/automoto/neutron/components"
	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/fonts"
	"github.com/automoto/neutron/menu"
	"github.com/automoto/neutron/sequencer"
	"github.com/automoto/neutron/shared/gamemath"
	"github.com/automoto/neutron/widgets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need the v1 API
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawMenu renders the menu over whatever the scene drew, then the loading
// screen on top of everything.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	data := GetMenu(e)
	if data == nil {
		return
	}
	mgr, mm := data.Manager, data.Main

	if mm.IsShown() {
		drawBackdrop(screen, mm.InGame(), mm.Tabs.GetBlurAlpha())
		drawCentered(screen, mm.Title.Text(), fonts.Title.Get(), float64(cfg.C.Width)/2, cfg.Menu.TitleY,
			fade(cfg.Menu.TitleColor, mm.Title.Alpha()))

		for _, b := range append(mm.Tabs.Headers(), mm.Tabs.Previous, mm.Tabs.Next) {
			drawButton(screen, mgr, b, 1, !mm.Tabs.IsTabEnabled(indexOf(mm.Tabs.Headers(), b)))
		}
		for i := 0; i < mm.Tabs.Len(); i++ {
			alpha := mm.Tabs.GetTabAlpha(i)
			if alpha <= 0 {
				continue
			}
			if p := mm.TabPanel(i); p != nil {
				for _, b := range p.Buttons() {
					drawButton(screen, mgr, b, alpha, false)
				}
				if sp, ok := p.(sliderPanel); ok {
					for _, s := range sp.Sliders() {
						drawSliderBar(screen, mgr, s, alpha)
					}
				}
			}
		}

		drawTooltip(screen, mgr)
		drawModal(screen, mgr, mm.Modal)
		data.Hints.Draw(screen)

		if cfg.Debug.ShowFocus {
			drawFocus(screen, mgr)
		}
	}

	drawNotice(screen, data)
	DrawLoading(e, screen)
}

// DrawLoading covers the screen while a transition is running.
func DrawLoading(e *ecs.ECS, screen *ebiten.Image) {
	data := GetMenu(e)
	if data == nil {
		return
	}
	alpha := data.Manager.LoadingAlpha()
	if alpha <= 0 {
		return
	}

	w, h := float32(cfg.C.Width), float32(cfg.C.Height)
	vector.FillRect(screen, 0, 0, w, h, fade(color.RGBA{A: 255}, alpha), false)

	if data.Manager.LoadingScreen() != sequencer.LoadingScreenLaunch {
		return
	}

	cx, cy := float64(cfg.C.Width)/2, float64(cfg.C.Height)/2
	drawCentered(screen, data.Catalog.T("menu.loading"), fonts.Bold.Get(), cx, cy, fade(cfg.Menu.TextColorNormal, alpha))

	if data.Dots != nil {
		for i := 0; i < data.Dots.Len(); i++ {
			x := float32(cx) + float32(i-data.Dots.Len()/2)*10
			c := fade(cfg.Menu.HighlightColor, alpha*(0.3+0.7*data.Dots.Alpha(i)))
			vector.FillRect(screen, x-2, float32(cy)+14, 4, 4, c, false)
		}
	}

	if world, ok := components.World.First(e.World); ok {
		wd := components.World.Get(world)
		if wd.Progress != nil {
			barW := float32(160)
			x, y := float32(cx)-barW/2, float32(cy)+26
			vector.FillRect(screen, x, y, barW, 3, fade(cfg.Menu.ButtonColor, alpha), false)
			vector.FillRect(screen, x, y, barW*float32(wd.Progress.Load()), 3, fade(cfg.Menu.HighlightColor, alpha), false)
		}
	}
}

func drawBackdrop(screen *ebiten.Image, inGame bool, blur float64) {
	w, h := float32(cfg.C.Width), float32(cfg.C.Height)
	if !inGame {
		vector.FillRect(screen, 0, 0, w, h, cfg.Menu.BackgroundColor, false)
	} else {
		vector.FillRect(screen, 0, 0, w, h, fade(cfg.Menu.BackgroundColor, 0.5), false)
	}
	// Blurred tabs dim what is behind them
	if blur > 0 {
		vector.FillRect(screen, 0, 0, w, h, fade(cfg.Menu.ModalOverlayColor, blur*0.5), false)
	}
}

func drawButton(screen *ebiten.Image, mgr *menu.Manager, b *widgets.Button, alpha float64, selected bool) {
	if !b.IsVisible() || alpha <= 0 {
		return
	}

	r := b.Bounds().Inset(-2 * b.SizeAlpha())
	base := gamemath.LerpColor(gamemath.ColorFrom(cfg.Menu.ButtonColor), gamemath.ColorFrom(cfg.Menu.ButtonColorFocus), b.ColorAlpha())
	base = gamemath.LerpColor(base, gamemath.ColorFrom(cfg.Menu.TextColorDisabled), b.DisabledAlpha()*0.5)
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), premul(base.WithAlpha(alpha)), false)

	highlight := gamemath.ColorFrom(mgr.HighlightColor())
	if b.ColorAlpha() > 0 || selected {
		a := b.ColorAlpha()
		if selected {
			a = 1
		}
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, premul(highlight.WithAlpha(alpha*a)), false)
	}
	if p := b.Pulse(); p > 0 {
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), premul(highlight.WithAlpha(alpha*p*0.4)), false)
	}
	if b.IsToggle() && b.IsActive() {
		vector.FillRect(screen, float32(r.Right()-10), float32(r.Y+r.H/2-3), 6, 6, premul(highlight.WithAlpha(alpha)), false)
	}

	textColor := gamemath.ColorFrom(mgr.InterfaceColor())
	if b.IsFocused() {
		textColor = gamemath.LerpColor(textColor, gamemath.ColorFrom(cfg.Menu.TextColorSelected), b.ColorAlpha())
	}
	textColor = gamemath.LerpColor(textColor, gamemath.ColorFrom(cfg.Menu.TextColorDisabled), b.DisabledAlpha())
	cx, cy := r.Center()
	drawCentered(screen, b.Label(), fonts.Bold.Get(), cx, cy, premul(textColor.WithAlpha(alpha)))
}

type sliderPanel interface {
	Sliders() []*widgets.Slider
}

// drawSliderBar draws the value bar along the bottom edge of the slider.
func drawSliderBar(screen *ebiten.Image, mgr *menu.Manager, s *widgets.Slider, alpha float64) {
	if !s.IsVisible() || alpha <= 0 {
		return
	}
	r := s.Bounds().Inset(4)
	y := float32(r.Bottom() - 3)
	vector.FillRect(screen, float32(r.X), y, float32(r.W), 2, fade(cfg.Menu.ButtonColor, alpha), false)
	vector.FillRect(screen, float32(r.X), y, float32(r.W*s.Fill()), 2, fade(mgr.HighlightColor(), alpha), false)
}

func drawTooltip(screen *ebiten.Image, mgr *menu.Manager) {
	if tip := mgr.Tooltip(); tip != "" {
		drawCentered(screen, tip, fonts.Regular.Get(), float64(cfg.C.Width)/2, cfg.Menu.TooltipY, mgr.InterfaceColor())
	}
}

func drawModal(screen *ebiten.Image, mgr *menu.Manager, m *widgets.ModalPanel) {
	if !m.IsVisible() {
		return
	}
	w, h := float32(cfg.C.Width), float32(cfg.C.Height)
	vector.FillRect(screen, 0, 0, w, h, fade(cfg.Menu.ModalOverlayColor, m.BackgroundAlpha()), false)

	// Box around the buttons
	c := m.Cancel.Bounds()
	boxW, boxH := 360.0, 140.0
	x, y := (float64(cfg.C.Width)-boxW)/2, c.Bottom()+cfg.Menu.ButtonGap-boxH
	vector.FillRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), fade(cfg.Menu.ModalColor, m.Alpha()), false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), 1, fade(mgr.HighlightColor(), m.Alpha()), false)

	cx := float64(cfg.C.Width) / 2
	drawCentered(screen, m.Title(), fonts.Bold.Get(), cx, y+22, fade(cfg.Menu.TitleColor, m.Alpha()))
	drawCentered(screen, m.Text(), fonts.Regular.Get(), cx, y+52, fade(cfg.Menu.TextColorNormal, m.Alpha()))

	for _, b := range []*widgets.Button{m.Confirm, m.Dismiss, m.Cancel} {
		drawButton(screen, mgr, b, m.Alpha(), false)
	}
}

func drawNotice(screen *ebiten.Image, data *components.MenuData) {
	mm := data.Main
	alpha := mm.Notice.ColorAlpha()
	if alpha <= 0 || mm.NoticeBox.Text == "" {
		return
	}
	face := fonts.Regular.Get()
	w := fonts.Width(face, mm.NoticeBox.Text) + 16
	x, y := float64(cfg.C.Width)-w-8, 8.0
	vector.FillRect(screen, float32(x), float32(y), float32(w), 18, fade(mm.NoticeBox.Color(), alpha), false)
	drawCentered(screen, mm.NoticeBox.Text, face, x+w/2, y+9, fade(cfg.Menu.TextColorNormal, alpha))
}

func drawFocus(screen *ebiten.Image, mgr *menu.Manager) {
	b, ok := mgr.Focused().(*widgets.Button)
	if !ok || b == nil {
		return
	}
	r := b.Bounds().Inset(-3)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, cfg.LightRed, false)
}

// drawCentered draws s centered on (cx, cy).
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, cy float64, clr color.Color) {
	if s == "" {
		return
	}
	m := face.Metrics()
	x := cx - fonts.Width(face, s)/2
	y := cy + float64((m.Ascent-m.Descent).Round())/2
	text.Draw(screen, s, face, int(x), int(y), clr)
}

func fade(c color.Color, alpha float64) color.RGBA {
	return premul(gamemath.ColorFrom(c).WithAlpha(alpha))
}

// premul converts c to the premultiplied form ebiten draws with.
func premul(c gamemath.LinearColor) color.RGBA {
	return gamemath.LinearColor{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}.RGBA()
}

func indexOf(bs []*widgets.Button, b *widgets.Button) int {
	for i, x := range bs {
		if x == b {
			return i
		}
	}
	return -1
}
