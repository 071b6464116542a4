package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/inkball/ecs"
	"github.com/plus3/inkball/ecs/debugui"
	debugui_ebiten "github.com/plus3/inkball/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and drives an ImGui overlay through the scheduler.
type Game struct {
	scheduler    *ecs.Scheduler
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Systems run inside the ImGui frame so deferred renders can draw widgets
	g.imguiBackend.Frame(func() {
		g.scheduler.Once(1.0 / 60.0)
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	imguiBackend := debugui_ebiten.NewImguiBackend("ECS ImGui Example", 1280, 720)

	items := ecs.NewPool[debugui.ImguiItem]()
	items.Spawn(debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from ECS!")
			imgui.End()
		},
	})

	scheduler := ecs.NewScheduler()
	scheduler.Register(&debugui.ImguiSystem{Items: items, InputState: &debugui.ImguiInputState{}})
	debugui.Spawn(items, debugui.NewPerformanceStats("Performance Stats", 120, scheduler.GetStats))

	game := &Game{
		scheduler:    scheduler,
		imguiBackend: imguiBackend,
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
