package scenes

import (
	"context"

	"github.com/automoto/neutron/components"
	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene is a level with the menu layered on top. The level loads in
// the background while the screen is black.
type WorldScene struct {
	ecs     *ecs.ECS
	session *Session
	world   *components.WorldData
	cancel  context.CancelFunc
}

// NewWorldScene builds the scene up front so the menu's transition
// condition can poll it before the first Update.
func NewWorldScene(s *Session) *WorldScene {
	ws := &WorldScene{
		ecs:     ecs.NewECS(donburi.NewWorld()),
		session: s,
	}

	entry := ws.ecs.World.Entry(ws.ecs.World.Create(components.World))
	components.World.SetValue(entry, systems.NewWorldData(cfg.World.Name))
	ws.world = components.World.Get(entry)

	ws.ecs.AddSystem(systems.UpdateAudio)
	ws.ecs.AddSystem(systems.NewUpdateInput(s.bindings))
	ws.ecs.AddSystem(systems.UpdateWorld)
	ws.ecs.AddSystem(systems.UpdateMenu)

	ws.ecs.AddRenderer(layerWorld, systems.DrawWorld)
	ws.ecs.AddRenderer(layerMenu, systems.DrawMenu)

	s.attach(ws.ecs)
	return ws
}

// Load starts filling the level. Calling it again restarts the load.
func (ws *WorldScene) Load(loader systems.LevelLoader) {
	ws.Stop()
	ws.world.Loaded.Store(false)
	ws.world.Progress.Store(0)

	ctx, cancel := context.WithCancel(context.Background())
	ws.cancel = cancel
	systems.StartLevelLoad(ctx, ws.world, loader, ws.session.log)
}

// IsLoaded reports whether the level is ready to play.
func (ws *WorldScene) IsLoaded() bool {
	return ws.world.IsLoaded()
}

// Stop abandons a load that is still running.
func (ws *WorldScene) Stop() {
	if ws.cancel != nil {
		ws.cancel()
		ws.cancel = nil
	}
}

func (ws *WorldScene) Update() {
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	clearScreen(screen)
	ws.ecs.Draw(screen)
}
