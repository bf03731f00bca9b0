package scenes

import (
	"sync"

	"github.com/automoto/neutron/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene is the title screen: the menu with nothing loaded behind it.
type MenuScene struct {
	ecs     *ecs.ECS
	session *Session
	once    sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(s *Session) *MenuScene {
	return &MenuScene{session: s}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	clearScreen(screen)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.NewUpdateInput(ms.session.bindings))
	ms.ecs.AddSystem(systems.UpdateMenu)

	ms.ecs.AddRenderer(layerMenu, systems.DrawMenu)

	ms.session.attach(ms.ecs)
}
