package navigation

import (
	"math"

	"github.com/automoto/neutron/shared/gamemath"
)

// edgeTolerance lets neighbours that touch or overlap by a pixel still count
// as lying beyond the current element.
const edgeTolerance = 1.0

// FocusGraph is the ordered set of focusable elements of one panel.
// At most one element is focused at a time.
type FocusGraph struct {
	elements     []Focusable
	defaultFocus Focusable
	observer     func(Focusable)
}

// Observe installs the callback run when focus changes through navigation.
func (g *FocusGraph) Observe(fn func(Focusable)) {
	g.observer = fn
}

// Register adds e to the graph. It becomes the default focus when isDefault
// is set, or when no default exists yet and e is enabled.
func (g *FocusGraph) Register(e Focusable, isDefault bool) error {
	if e == nil {
		return ErrNilElement
	}
	if g.Contains(e) {
		return ErrAlreadyRegistered
	}
	if isDefault || (g.defaultFocus == nil && e.IsEnabled()) {
		g.defaultFocus = e
	}
	g.elements = append(g.elements, e)
	return nil
}

// Unregister removes e. Unknown elements are ignored.
func (g *FocusGraph) Unregister(e Focusable) {
	i := g.index(e)
	if i < 0 {
		return
	}
	if e.IsFocused() {
		e.SetFocused(false)
	}
	g.elements = append(g.elements[:i], g.elements[i+1:]...)
	if g.defaultFocus == e {
		g.defaultFocus = nil
	}
}

// Reset unregisters every element.
func (g *FocusGraph) Reset() {
	for _, e := range g.elements {
		if e.IsFocused() {
			e.SetFocused(false)
		}
	}
	g.elements = nil
	g.defaultFocus = nil
}

// Contains reports whether e is registered.
func (g *FocusGraph) Contains(e Focusable) bool {
	return g.index(e) >= 0
}

// Len returns the number of registered elements.
func (g *FocusGraph) Len() int {
	return len(g.elements)
}

// Elements returns the registered elements in registration order.
func (g *FocusGraph) Elements() []Focusable {
	out := make([]Focusable, len(g.elements))
	copy(out, g.elements)
	return out
}

// Default returns the default focus if it can take focus, otherwise the
// first element that can.
func (g *FocusGraph) Default() Focusable {
	if CanFocus(g.defaultFocus) {
		return g.defaultFocus
	}
	for _, e := range g.elements {
		if CanFocus(e) {
			return e
		}
	}
	return nil
}

// Focused returns the focused, visible element.
func (g *FocusGraph) Focused() Focusable {
	for _, e := range g.elements {
		if e.IsFocused() && e.IsVisible() {
			return e
		}
	}
	return nil
}

// SetFocused focuses e and unfocuses everything else. A nil e clears focus
// and only notifies when something lost focus.
func (g *FocusGraph) SetFocused(e Focusable, fromNavigation bool) error {
	if e == nil {
		had := g.hasFocus()
		g.ClearFocus()
		if fromNavigation && had {
			g.notify(nil)
		}
		return nil
	}
	if !g.Contains(e) {
		return ErrNotRegistered
	}
	if !CanFocus(e) {
		return ErrNotFocusable
	}

	for _, other := range g.elements {
		if other != e && other.IsFocused() {
			other.SetFocused(false)
		}
	}
	e.SetFocused(true)

	if fromNavigation {
		g.notify(e)
	}
	return nil
}

func (g *FocusGraph) hasFocus() bool {
	for _, e := range g.elements {
		if e.IsFocused() {
			return true
		}
	}
	return false
}

// ClearFocus unfocuses every element without notifying.
func (g *FocusGraph) ClearFocus() {
	for _, e := range g.elements {
		if e.IsFocused() {
			e.SetFocused(false)
		}
	}
}

// GetNext returns the nearest element beyond current in dir, or nil.
// Elements overlapping current on the perpendicular axis win over the
// rest; ties go to the smallest gap, then the smallest centre offset.
func (g *FocusGraph) GetNext(current Focusable, dir Direction) Focusable {
	if current == nil || dir == DirectionNone {
		return nil
	}

	from := current.Bounds()
	var best Focusable
	var bestScore score
	for _, e := range g.elements {
		if e == current || !CanFocus(e) {
			continue
		}
		s, ok := measure(from, e.Bounds(), dir)
		if !ok {
			continue
		}
		if best == nil || s.less(bestScore) {
			best, bestScore = e, s
		}
	}
	return best
}

func (g *FocusGraph) index(e Focusable) int {
	if e == nil {
		return -1
	}
	for i, x := range g.elements {
		if x == e {
			return i
		}
	}
	return -1
}

func (g *FocusGraph) notify(e Focusable) {
	if g.observer != nil {
		g.observer(e)
	}
}

type score struct {
	aligned bool
	gap     float64
	offset  float64
}

func (s score) less(o score) bool {
	if s.aligned != o.aligned {
		return s.aligned
	}
	if s.aligned {
		if s.gap != o.gap {
			return s.gap < o.gap
		}
		return s.offset < o.offset
	}
	return math.Hypot(s.gap, s.offset) < math.Hypot(o.gap, o.offset)
}

// measure scores to as a destination from from in dir. ok is false when to
// does not lie in that direction.
func measure(from, to gamemath.Rect, dir Direction) (score, bool) {
	fx, fy := from.Center()
	tx, ty := to.Center()

	var gap, overlap, offset float64
	switch dir {
	case DirectionRight:
		gap = to.Left() - from.Right()
		overlap = from.OverlapY(to)
		offset = math.Abs(ty - fy)
	case DirectionLeft:
		gap = from.Left() - to.Right()
		overlap = from.OverlapY(to)
		offset = math.Abs(ty - fy)
	case DirectionDown:
		gap = to.Top() - from.Bottom()
		overlap = from.OverlapX(to)
		offset = math.Abs(tx - fx)
	case DirectionUp:
		gap = from.Top() - to.Bottom()
		overlap = from.OverlapX(to)
		offset = math.Abs(tx - fx)
	default:
		return score{}, false
	}

	if gap < -edgeTolerance {
		return score{}, false
	}
	return score{aligned: overlap > 0, gap: math.Max(gap, 0), offset: offset}, true
}
