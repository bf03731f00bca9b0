package components

import (
	"github.com/yohamta/donburi"
	"go.uber.org/atomic"
)

// WorldData is the stand-in level. Loading happens on a goroutine; the
// atomics are what the menu's transition condition polls.
type WorldData struct {
	Name     string
	Loaded   *atomic.Bool
	Progress *atomic.Float64 // 0.0 - 1.0
	Elapsed  float64         // Seconds of play while the menu was closed
}

// IsLoaded reports whether the level finished loading.
func (w *WorldData) IsLoaded() bool {
	return w.Loaded != nil && w.Loaded.Load()
}

var World = donburi.NewComponentType[WorldData]()
