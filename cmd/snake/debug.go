package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/snake/ecs"
	"github.com/plus3/snake/ecs/debugui"
	debugui_ebiten "github.com/plus3/snake/ecs/debugui/ebiten"
	"github.com/plus3/snake/snake"
)

const stageDebug = "Debug"

// debugOverlay queues ImGui panels in a final scheduler stage so they see
// the world after the frame's render sync.
type debugOverlay struct {
	backend *debugui_ebiten.ImguiBackend
	panels  *debugui.ImguiSystem[snake.World]
}

func newDebugOverlay(title string, world *snake.World, scheduler *ecs.Scheduler[snake.World], assets *palette) *debugOverlay {
	backend := debugui_ebiten.NewImguiBackend(title, int(world.Config.Window.Width), int(world.Config.Window.Height))

	browser := debugui.NewEntityBrowser(50, debugui.SourceOf("renderables", world.Renderables))
	inspector := debugui.NewComponentInspector()
	perf := debugui.NewPerformanceStats(scheduler, 120)
	timer := debugui.NewFrameTimer()

	panels := &debugui.ImguiSystem[snake.World]{}
	panels.Add(func() { perf.Render(timer.GetDeltaTime()) })
	panels.Add(browser.Render)
	panels.Add(func() { inspector.Render(browser.Selected()) })
	panels.Add(func() { renderWorldPanel(world, assets) })

	scheduler.AddStage(stageDebug, nil)
	scheduler.Register(stageDebug, panels)

	return &debugOverlay{backend: backend, panels: panels}
}

func renderWorldPanel(world *snake.World, assets *palette) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("World", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	stats := world.Stats()
	imgui.Text(fmt.Sprintf("Heading: %s", world.Heading))
	imgui.Text(fmt.Sprintf("Length: %d (best %d)", stats.Length, stats.BestLength))
	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Food: %d active, %d eaten, %d spawned", stats.FoodActive, stats.FoodEaten, stats.FoodSpawned))
	imgui.Text(fmt.Sprintf("Resets: %d (last death at length %d)", stats.Resets, stats.LastDeathLength))
	if world.LastTail != nil {
		imgui.Text(fmt.Sprintf("Last tail: %v", *world.LastTail))
	}

	if imgui.Button("Reset") {
		world.Reset()
	}
	imgui.SameLine()
	if imgui.Button("Drop food") {
		world.SpawnFood(world.RandomCell())
	}

	if imgui.TreeNodeStr("Materials") {
		for _, m := range []snake.Material{world.Materials.Head, world.Materials.Body, world.Materials.Food} {
			role, _ := assets.Role(m)
			c := assets.Color(m)
			imgui.BulletText(fmt.Sprintf("%s: #%02x%02x%02x", role, c.R, c.G, c.B))
		}
		imgui.TreePop()
	}
}
