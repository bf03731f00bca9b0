package widgets

import (
	"testing"

	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/navigation"
	"github.com/automoto/neutron/shared/gamemath"
)

func newListFixture(t *testing.T, conf ListViewConfig[string]) (*testMenu, *navigation.BasePanel, *ListView[string]) {
	t.Helper()
	m := newTestMenu()
	owner := navigation.NewBasePanel("list", nil)
	if err := m.SetNavigationPanel(owner); err != nil {
		t.Fatalf("expected list panel set, got %v", err)
	}
	conf.Bounds = gamemath.NewRect(0, 0, 100, 20)
	conf.Gap = 4
	conf.VisibleRows = 2
	conf.Label = func(s string) string { return s }
	return m, owner, NewListView(m, owner, conf)
}

func TestListViewRefreshSelects(t *testing.T) {
	items := []string{"Keyboard", "Gamepad", "Mouse", "Touch"}
	var changed []int
	m, owner, l := newListFixture(t, ListViewConfig[string]{
		Items:              func() []string { return items },
		OnSelectionChanged: func(_ string, i int) { changed = append(changed, i) },
	})

	l.Refresh(1)
	if len(l.Buttons()) != 4 || owner.Graph().Len() != 4 {
		t.Fatalf("expected 4 rows registered, got %d buttons and %d elements", len(l.Buttons()), owner.Graph().Len())
	}
	if m.Focused() != navigation.Focusable(l.Buttons()[1]) {
		t.Fatalf("expected row 1 focused, got %v", m.Focused())
	}
	if item, ok := l.SelectedItem(); !ok || item != "Gamepad" {
		t.Fatalf("expected Gamepad selected, got %q", item)
	}
	if !l.IsInitial(1) {
		t.Fatalf("expected row 1 marked as initial")
	}

	m.HandleAction(cfg.ActionDown)
	if l.SelectedIndex() != 2 {
		t.Fatalf("expected row 2 after moving down, got %d", l.SelectedIndex())
	}
	if first, last := l.VisibleRange(); first != 1 || last != 3 {
		t.Fatalf("expected rows 1-3 in view, got %d-%d", first, last)
	}
	if len(changed) == 0 || changed[len(changed)-1] != 2 {
		t.Fatalf("expected selection callback for row 2, got %v", changed)
	}
}

func TestListViewFuzzyQueryKeepsFocus(t *testing.T) {
	items := []string{"Keyboard", "Gamepad", "Mouse", "Touch"}
	m, owner, l := newListFixture(t, ListViewConfig[string]{
		Items: func() []string { return items },
	})
	l.Refresh(2)

	l.SetQuery("mse")
	if got := l.Items(); len(got) != 1 || got[0] != "Mouse" {
		t.Fatalf("expected only Mouse to match, got %v", got)
	}
	if owner.Graph().Len() != 1 {
		t.Fatalf("expected stale rows unregistered, got %d elements", owner.Graph().Len())
	}
	if m.Focused() != navigation.Focusable(l.Buttons()[0]) {
		t.Fatalf("expected focus kept on the remaining row")
	}

	l.SetQuery("")
	if len(l.Items()) != 4 {
		t.Fatalf("expected all items back, got %v", l.Items())
	}
}

func TestListViewFilterToggles(t *testing.T) {
	items := []string{"Keyboard", "Gamepad", "Mouse", "Touch"}
	_, owner, l := newListFixture(t, ListViewConfig[string]{
		Items:         func() []string { return items },
		FilterOptions: []string{"Short names"},
		FilterItem: func(item string, enabled []int) bool {
			return len(enabled) == 0 || len(item) <= 5
		},
	})

	l.Refresh(-1)
	if got := l.Items(); len(got) != 2 {
		t.Fatalf("expected short names only, got %v", got)
	}

	l.FilterButtons()[0].Click()
	if got := l.Items(); len(got) != 4 {
		t.Fatalf("expected all names with the filter off, got %v", got)
	}
	if owner.Graph().Len() != 5 {
		t.Fatalf("expected 4 rows plus the filter toggle, got %d", owner.Graph().Len())
	}
}

func TestListViewEmpty(t *testing.T) {
	_, _, l := newListFixture(t, ListViewConfig[string]{
		Items: func() []string { return nil },
	})
	l.Refresh(3)
	if _, ok := l.SelectedItem(); ok {
		t.Fatalf("expected no selection in an empty list")
	}
	if len(l.Buttons()) != 0 {
		t.Fatalf("expected no rows, got %d", len(l.Buttons()))
	}
}

func TestListViewRowClickReportsItemAndRow(t *testing.T) {
	items := []string{"Keyboard", "Gamepad"}
	var clicked string
	var row *Button
	_, _, l := newListFixture(t, ListViewConfig[string]{
		Items: func() []string { return items },
		OnClicked: func(item string, b *Button) {
			clicked, row = item, b
		},
	})
	l.Refresh(0)

	l.Buttons()[1].Click()
	if clicked != "Gamepad" || row != l.Buttons()[1] {
		t.Fatalf("expected Gamepad row reported, got %q %v", clicked, row)
	}
	if l.SelectedIndex() != 1 {
		t.Fatalf("expected click to select row 1, got %d", l.SelectedIndex())
	}
}
