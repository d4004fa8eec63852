package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/snake/ecs"
	"github.com/plus3/snake/ecs/debugui"
	debugui_ebiten "github.com/plus3/snake/ecs/debugui/ebiten"
)

type world struct {
	Frames int
}

type countSystem struct{}

func (s *countSystem) Execute(frame *ecs.UpdateFrame[world]) {
	frame.World.Frames++
}

// Game implements ebiten.Game and draws queued ImGui items over the frame.
type Game struct {
	scheduler    *ecs.Scheduler[world]
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.imguiBackend.BeginFrame()

	// Deferred ImGui items run when the debug stage flushes
	g.scheduler.Once(1.0 / 60.0)

	g.imguiBackend.EndFrame()
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
	backend := debugui_ebiten.NewImguiBackend("ECS ImGui Example", 1280, 720)

	w := &world{}
	scheduler := ecs.NewScheduler(w)
	scheduler.AddStage("Update", nil)
	scheduler.AddStage("Debug", nil)
	scheduler.Register("Update", &countSystem{})

	panels := &debugui.ImguiSystem[world]{}
	panels.Add(func() {
		imgui.Begin("Debug Window")
		imgui.Text("Hello from ECS!")
		imgui.End()
	})
	scheduler.Register("Debug", panels)

	game := &Game{
		scheduler:    scheduler,
		imguiBackend: backend,
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
