package snake

import "github.com/plus3/snake/ecs"

// Stage names, in execution order.
const (
	StageUpdate      = "Update"
	StageFixedUpdate = "FixedUpdate"
	StageFoodSpawn   = "FoodSpawn"
	StagePostUpdate  = "PostUpdate"
)

// NewScheduler wires the game's systems into their stages:
// input every frame; movement, eating, growth and game over on the movement
// tick; food on its own timer; render projections after all logic.
func NewScheduler(w *World) *ecs.Scheduler[World] {
	s := ecs.NewScheduler(w)
	s.AddStage(StageUpdate, nil)
	s.AddStage(StageFixedUpdate, ecs.NewFixedTimestep(w.Config.TickPeriod))
	s.AddStage(StageFoodSpawn, ecs.NewFixedTimestep(w.Config.FoodPeriod))
	s.AddStage(StagePostUpdate, nil)

	s.Register(StageUpdate, &InputSystem{})

	s.Register(StageFixedUpdate, &MovementSystem{})
	s.Register(StageFixedUpdate, &EatingSystem{})
	s.Register(StageFixedUpdate, &GrowthSystem{})
	s.Register(StageFixedUpdate, &GameOverSystem{})

	s.Register(StageFoodSpawn, &FoodSpawnerSystem{})

	s.Register(StagePostUpdate, &PositionTranslationSystem{})
	s.Register(StagePostUpdate, &SizeScalingSystem{})
	return s
}
