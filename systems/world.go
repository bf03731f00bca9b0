package systems

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"time"

	"github.com/automoto/neutron/components"
	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/fonts"
	"github.com/automoto/neutron/menu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need the v1 API
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/atomic"
)

// LevelLoader fills a level in the background and reports progress in
// [0, 1]. It must return early once ctx is done.
type LevelLoader func(ctx context.Context, progress func(float64)) error

// SimulatedLoad pretends to load a level in steps of the given length.
func SimulatedLoad(steps int, step time.Duration) LevelLoader {
	return func(ctx context.Context, progress func(float64)) error {
		for i := 1; i <= steps; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(step):
			}
			progress(float64(i) / float64(steps))
		}
		return nil
	}
}

// NewWorldData returns an unloaded world.
func NewWorldData(name string) components.WorldData {
	return components.WorldData{
		Name:     name,
		Loaded:   atomic.NewBool(false),
		Progress: atomic.NewFloat64(0),
	}
}

// StartLevelLoad runs loader on its own goroutine. The world is flagged
// loaded only when the loader succeeds.
func StartLevelLoad(ctx context.Context, w *components.WorldData, loader LevelLoader, log *slog.Logger) {
	loaded, progress := w.Loaded, w.Progress
	name := w.Name
	go func() {
		start := time.Now()
		err := loader(ctx, func(p float64) { progress.Store(p) })
		if err != nil {
			log.Warn("level load stopped", "world", name, "error", err)
			return
		}
		progress.Store(1)
		loaded.Store(true)
		log.Info("level loaded", "world", name, "elapsed", time.Since(start))
	}()
}

// UpdateWorld advances the level while the player has control.
func UpdateWorld(e *ecs.ECS) {
	entry, ok := components.World.First(e.World)
	if !ok {
		return
	}
	w := components.World.Get(entry)
	if !w.IsLoaded() {
		return
	}
	if data := GetMenu(e); data != nil && data.Manager.InputFocus() != menu.FocusGame {
		return
	}
	w.Elapsed += 1.0 / float64(ebiten.TPS())
}

// DrawWorld renders the stand-in level: a marker circling the screen and
// the play time.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.World.First(e.World)
	if !ok {
		return
	}
	w := components.World.Get(entry)
	if !w.IsLoaded() {
		return
	}

	width, height := float64(cfg.C.Width), float64(cfg.C.Height)
	vector.FillRect(screen, 0, 0, float32(width), float32(height), color.RGBA{R: 20, G: 40, B: 30, A: 255}, false)

	radius := math.Min(width, height) / 3
	angle := w.Elapsed * cfg.World.Speed / radius
	x := width/2 + math.Cos(angle)*radius
	y := height/2 + math.Sin(angle)*radius
	vector.FillCircle(screen, float32(x), float32(y), 8, cfg.Menu.HighlightColor, true)

	label := fmt.Sprintf("%s  %02d:%02d", w.Name, int(w.Elapsed)/60, int(w.Elapsed)%60)
	text.Draw(screen, label, fonts.Regular.Get(), 12, 20, cfg.Menu.TextColorNormal)

	if data := GetMenu(e); data != nil {
		if key := data.Manager.FirstActionKey(cfg.ActionMenuToggle); key != "" {
			hint := data.Catalog.T("hint.menu", map[string]any{"Key": key})
			text.Draw(screen, hint, fonts.Small.Get(), 12, int(height)-10, cfg.Menu.TextColorDisabled)
		}
	}
}
