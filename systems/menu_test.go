package systems

import (
	"math"
	"testing"

	"github.com/automoto/neutron/components"
	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/widgets"
)

func TestClickButtonDetectsDoubleClicks(t *testing.T) {
	clicks, doubles := 0, 0
	b := widgets.NewButton(nil, nil, "row",
		widgets.WithOnClick(func() { clicks++ }),
		widgets.WithOnDoubleClick(func() { doubles++ }))
	data := &components.MenuData{LastClickTime: math.Inf(-1)}

	clickButton(data, b, 10, 10)
	data.Clock += cfg.UI.DoubleClickTime / 2
	clickButton(data, b, 11, 10)
	if clicks != 1 || doubles != 1 {
		t.Fatalf("expected a click then a double click, got %d clicks %d doubles", clicks, doubles)
	}

	data.Clock += cfg.UI.DoubleClickTime / 2
	clickButton(data, b, 11, 10)
	if clicks != 2 || doubles != 1 {
		t.Fatalf("expected a third click to start over, got %d clicks %d doubles", clicks, doubles)
	}

	data.Clock += cfg.UI.DoubleClickTime / 2
	clickButton(data, b, 40, 40)
	if clicks != 3 {
		t.Fatalf("expected a distant click to stay single, got %d clicks", clicks)
	}
}

func TestDedupeSFX(t *testing.T) {
	got := dedupeSFX([]cfg.SoundID{cfg.SoundMenuNavigate, cfg.SoundMenuSelect, cfg.SoundMenuNavigate})
	if len(got) != 2 || got[0] != cfg.SoundMenuNavigate || got[1] != cfg.SoundMenuSelect {
		t.Fatalf("expected navigate and select once, got %v", got)
	}
}

func TestControllerTypeFromName(t *testing.T) {
	if controllerTypeFromName("sony dualsense wireless") != components.InputPlayStation {
		t.Fatalf("expected playstation layout")
	}
	if controllerTypeFromName("xbox wireless controller") != components.InputXbox {
		t.Fatalf("expected xbox layout")
	}
}

func TestGetAction(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionConfirm] = true
	input.Previous[cfg.ActionCancel] = true

	if s := GetAction(input, cfg.ActionConfirm); !s.Pressed || !s.JustPressed {
		t.Fatalf("expected confirm just pressed, got %+v", s)
	}
	if s := GetAction(input, cfg.ActionCancel); s.Pressed || !s.JustReleased {
		t.Fatalf("expected cancel just released, got %+v", s)
	}
}
