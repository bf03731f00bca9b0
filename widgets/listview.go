package widgets

import (
	"strings"

	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/navigation"
	"github.com/automoto/neutron/shared/gamemath"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ListOwner is the panel a list registers its buttons in.
type ListOwner interface {
	navigation.Node
	Registry
}

// ListViewConfig describes a ListView.
type ListViewConfig[T any] struct {
	// Bounds is the first row; rows stack downward.
	Bounds      gamemath.Rect
	Gap         float64
	VisibleRows int

	Items   func() []T
	Label   func(T) string
	Tooltip func(T) string

	// FilterOptions adds one toggle button per entry above the list.
	// FilterItem receives the indices of the active toggles.
	FilterOptions []string
	FilterItem    func(item T, enabled []int) bool

	OnSelectionChanged func(item T, index int)
	OnDoubleClicked    func()

	// OnClicked runs after a row click selected item.
	OnClicked func(item T, row *Button)
}

// ListView rebuilds one button per item of its source, optionally filtered
// by toggle buttons and a fuzzy text query, and keeps the selection across
// rebuilds.
type ListView[T any] struct {
	menu  Menu
	owner ListOwner
	conf  ListViewConfig[T]

	query    string
	filtered []T

	buttons       []*Button
	filterButtons []*Button

	selected int
	initial  int
	scroll   int
}

// NewListView creates an empty list. Call Refresh to build it.
func NewListView[T any](menu Menu, owner ListOwner, conf ListViewConfig[T]) *ListView[T] {
	if conf.VisibleRows <= 0 {
		conf.VisibleRows = cfg.Menu.ListVisibleRows
	}
	l := &ListView[T]{menu: menu, owner: owner, conf: conf, initial: -1}

	x := conf.Bounds.X
	for _, option := range conf.FilterOptions {
		w := conf.Bounds.W / float64(max(len(conf.FilterOptions), 1))
		b := NewButton(menu, owner, option,
			WithBounds(gamemath.NewRect(x, conf.Bounds.Y-conf.Bounds.H-conf.Gap, w-conf.Gap, conf.Bounds.H)),
			WithToggle(true),
			WithOnClick(func() { l.Refresh(-1) }))
		_ = owner.Register(b, false)
		l.filterButtons = append(l.filterButtons, b)
		x += w
	}
	return l
}

// SetQuery filters the items by fuzzy match on their label.
func (l *ListView[T]) SetQuery(query string) {
	if query == l.query {
		return
	}
	l.query = query
	l.Refresh(-1)
}

// Query returns the current text filter.
func (l *ListView[T]) Query() string {
	return l.query
}

// Refresh rebuilds the buttons. A selected index of -1 keeps the focused
// row where it was.
func (l *ListView[T]) Refresh(selectedIndex int) {
	l.preRefresh()

	selectedIndex = min(selectedIndex, len(l.filtered)-1)
	if selectedIndex >= 0 {
		l.initial = selectedIndex
	}

	previous := -1
	for i, b := range l.buttons {
		if b.IsFocused() {
			previous = i
			break
		}
	}

	for _, b := range l.buttons {
		l.owner.Unregister(b)
	}
	l.buttons = l.buttons[:0]

	for i, item := range l.filtered {
		i, item := i, item
		var b *Button
		opts := []ButtonOpt{
			WithOnFocus(func() { l.onElementSelected(item, i) }),
			WithOnClick(func() {
				l.onElementSelected(item, i)
				if l.conf.OnClicked != nil {
					l.conf.OnClicked(item, b)
				}
			}),
		}
		if l.conf.OnDoubleClicked != nil {
			opts = append(opts, WithOnDoubleClick(l.conf.OnDoubleClicked))
		}
		if l.conf.Tooltip != nil {
			opts = append(opts, WithTooltip(l.conf.Tooltip(item)))
		}
		b = NewButton(l.menu, l.owner, l.labelOf(item), opts...)
		_ = l.owner.Register(b, false)
		l.buttons = append(l.buttons, b)
	}
	l.scroll = min(l.scroll, max(len(l.buttons)-l.conf.VisibleRows, 0))
	l.layout()

	if l.menu != nil {
		l.menu.RefreshNavigationPanel()
	}

	switch {
	case selectedIndex >= 0:
		l.selected = selectedIndex
		l.focus(selectedIndex)
	case previous >= 0 && len(l.buttons) > 0:
		l.selected = min(l.selected, len(l.filtered)-1)
		l.focus(min(previous, len(l.buttons)-1))
	}
}

func (l *ListView[T]) preRefresh() {
	var source []T
	if l.conf.Items != nil {
		source = l.conf.Items()
	}

	l.filtered = l.filtered[:0]
	var enabled []int
	for i, b := range l.filterButtons {
		if b.IsActive() {
			enabled = append(enabled, i)
		}
	}
	for _, item := range source {
		if l.conf.FilterItem == nil || l.conf.FilterItem(item, enabled) {
			l.filtered = append(l.filtered, item)
		}
	}

	q := strings.TrimSpace(l.query)
	if q == "" {
		return
	}
	labels := make([]string, len(l.filtered))
	for i, item := range l.filtered {
		labels[i] = l.labelOf(item)
	}
	matches := make(map[int]struct{})
	for _, rank := range fuzzy.RankFindNormalizedFold(q, labels) {
		matches[rank.OriginalIndex] = struct{}{}
	}
	kept := l.filtered[:0]
	for i, item := range l.filtered {
		if _, ok := matches[i]; ok {
			kept = append(kept, item)
		}
	}
	l.filtered = kept
}

func (l *ListView[T]) focus(i int) {
	if l.menu == nil || i < 0 || i >= len(l.buttons) {
		return
	}
	_ = l.menu.SetFocused(l.buttons[i], true)
}

func (l *ListView[T]) onElementSelected(item T, i int) {
	l.selected = i
	if l.conf.OnSelectionChanged != nil {
		l.conf.OnSelectionChanged(item, i)
	}
	l.scrollIntoView(i)
}

func (l *ListView[T]) scrollIntoView(i int) {
	rows := l.conf.VisibleRows
	switch {
	case i < l.scroll:
		l.scroll = i
	case i >= l.scroll+rows:
		l.scroll = i - rows + 1
	default:
		return
	}
	l.layout()
}

func (l *ListView[T]) layout() {
	b := l.conf.Bounds
	for i, btn := range l.buttons {
		row := float64(i - l.scroll)
		btn.SetBounds(gamemath.NewRect(b.X, b.Y+row*(b.H+l.conf.Gap), b.W, b.H))
	}
}

func (l *ListView[T]) labelOf(item T) string {
	if l.conf.Label != nil {
		return l.conf.Label(item)
	}
	return ""
}

// Tick animates the list buttons.
func (l *ListView[T]) Tick(dt float64) {
	for _, b := range l.filterButtons {
		b.Tick(dt)
	}
	for _, b := range l.buttons {
		b.Tick(dt)
	}
}

// SelectedIndex returns the index of the selected row in the filtered
// items.
func (l *ListView[T]) SelectedIndex() int {
	return l.selected
}

// SelectedItem returns the selected item, if any.
func (l *ListView[T]) SelectedItem() (T, bool) {
	var zero T
	if l.selected < 0 || l.selected >= len(l.filtered) {
		return zero, false
	}
	return l.filtered[l.selected], true
}

// SetInitiallySelectedIndex marks the row shown as the current choice.
func (l *ListView[T]) SetInitiallySelectedIndex(i int) {
	l.initial = i
}

// IsInitial reports whether row i is the current choice.
func (l *ListView[T]) IsInitial(i int) bool {
	return l.initial >= 0 && l.initial < len(l.filtered) && i == l.initial
}

// Items returns the filtered items.
func (l *ListView[T]) Items() []T {
	return l.filtered
}

// Buttons returns the row buttons.
func (l *ListView[T]) Buttons() []*Button {
	return l.buttons
}

// FilterButtons returns the filter toggles.
func (l *ListView[T]) FilterButtons() []*Button {
	return l.filterButtons
}

// VisibleRange returns the half-open range of rows inside the viewport.
func (l *ListView[T]) VisibleRange() (int, int) {
	return l.scroll, min(l.scroll+l.conf.VisibleRows, len(l.buttons))
}
