package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/i18n"
	"github.com/automoto/neutron/menu"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HintBar is the footer under the menu: the tooltip of the focused control,
// key hints for the active device and the binding search box.
type HintBar struct {
	UI *ebitenui.UI

	search       *widget.TextInput
	tooltipLabel *widget.Label
	selectLabel  *widget.Label
	backLabel    *widget.Label
	tabsLabel    *widget.Label

	normalFace text.Face
	smallFace  text.Face
}

// NewHintBar builds the footer. The search placeholder is read from cat.
func NewHintBar(cat *i18n.Catalog) *HintBar {
	h := &HintBar{}
	h.loadFonts()
	h.buildUI(cat)
	return h
}

func (h *HintBar) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	h.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   11,
	}
	h.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   9,
	}
}

func (h *HintBar) buildUI(cat *i18n.Catalog) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 3, Bottom: 3, Left: 8, Right: 8}
	footer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{10, 15, 30, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)

	h.tooltipLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &h.normalFace, &widget.LabelColor{
			Idle: cfg.Menu.TextColorNormal,
		}),
	)
	footer.AddChild(h.tooltipLabel)

	hints := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(14),
		)),
	)

	hintColor := &widget.LabelColor{Idle: cfg.Menu.TextColorDisabled}
	h.selectLabel = widget.NewLabel(widget.LabelOpts.Text("", &h.smallFace, hintColor))
	h.backLabel = widget.NewLabel(widget.LabelOpts.Text("", &h.smallFace, hintColor))
	h.tabsLabel = widget.NewLabel(widget.LabelOpts.Text("", &h.smallFace, hintColor))
	hints.AddChild(h.selectLabel)
	hints.AddChild(h.backLabel)
	hints.AddChild(h.tabsLabel)

	h.search = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 16)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{30, 30, 40, 255}),
		}),
		widget.TextInputOpts.Face(&h.smallFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{100, 100, 100, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{100, 100, 100, 255},
		}),
		widget.TextInputOpts.Placeholder(cat.T("controls.search", map[string]any{"Query": "..."})),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(2)),
	)
	hints.AddChild(h.search)

	footer.AddChild(hints)
	rootContainer.AddChild(footer)

	h.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update refreshes the hints for the active device, feeds the search box
// into the binding list and runs the ebitenui update.
func (h *HintBar) Update(mgr *menu.Manager, cat *i18n.Catalog, main *MainMenu) {
	h.tooltipLabel.Label = mgr.Tooltip()
	h.selectLabel.Label = hint(cat, "hint.select", "Key", mgr.FirstActionKey(cfg.ActionConfirm))
	h.backLabel.Label = hint(cat, "hint.back", "Key", mgr.FirstActionKey(cfg.ActionCancel))

	prev, next := mgr.FirstActionKey(cfg.ActionPreviousTab), mgr.FirstActionKey(cfg.ActionNextTab)
	if prev != "" && next != "" {
		h.tabsLabel.Label = cat.T("hint.tabs", map[string]any{"Previous": prev, "Next": next})
	} else {
		h.tabsLabel.Label = ""
	}

	controls := main.IsControlsTab()
	h.search.GetWidget().Disabled = !controls
	if controls {
		main.SetQuery(h.search.GetText())
	}

	h.UI.Update()
}

// IsTyping reports whether the search box has keyboard focus, in which case
// keys must not drive navigation.
func (h *HintBar) IsTyping() bool {
	return !h.search.GetWidget().Disabled && h.search.IsFocused()
}

// Draw renders the footer.
func (h *HintBar) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
}

func hint(cat *i18n.Catalog, id, field, key string) string {
	if key == "" {
		return ""
	}
	return cat.T(id, map[string]any{field: key})
}
