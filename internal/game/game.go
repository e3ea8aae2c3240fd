package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"walker3d/internal/camera"
	"walker3d/internal/config"
	"walker3d/internal/input"
	"walker3d/internal/locomotion"
	"walker3d/internal/physics"
	"walker3d/internal/world"
)

// fixedStep is the physics substep length. Rendering runs at display
// rate; locomotion always advances in these fixed slices.
const fixedStep = float32(1.0 / 120.0)

// maxSubsteps caps how many physics steps a single render frame may run,
// so a long hitch doesn't spiral the accumulator.
const maxSubsteps = 8

const pickDistance = 200

type Game struct {
	cfg config.Config
	log zerolog.Logger

	world      *world.World
	body       *physics.CharacterBody
	planner    *locomotion.Planner
	controller *locomotion.Controller
	aggregator *input.Aggregator
	events     input.Events
	rig        *camera.Rig

	accumulator float32
	poller      inputPoller
}

func New(cfg config.Config, log zerolog.Logger) *Game {
	g := &Game{
		cfg:   cfg,
		log:   log,
		world: world.New(log),
	}

	tun := cfg.Tuning
	g.world.BuildPlayground()

	g.body = physics.NewCharacterBody(g.world, rl.Vector3{X: 0, Y: 3, Z: 0}, 1.8, 0.4)
	g.planner = locomotion.NewPlanner(tun, log)
	g.aggregator = input.NewAggregator(tun, g, log)
	g.controller = locomotion.NewController(g.body, &g.aggregator.Intent, g.planner, tun, log)
	g.rig = camera.NewRig(g.controller, tun.LookAhead)

	// Click-to-move and manual input are mutually exclusive: clicks feed
	// targets into the planner, any drag/keyboard/pinch input cancels it.
	g.aggregator.SetTargetHandler(g.planner.SetTarget)
	g.aggregator.SetCancelHandler(g.planner.Cancel)
	g.aggregator.Attach(&g.events)

	return g
}

// Pick implements input.Picker by casting a camera ray through the given
// screen point into the scene colliders.
func (g *Game) Pick(x, y float32) (input.PickResult, bool) {
	ray := rl.GetScreenToWorldRay(rl.Vector2{X: x, Y: y}, g.rig.Camera)
	hit, ok := g.world.Raycast(ray.Position, ray.Direction, pickDistance)
	if !ok {
		return input.PickResult{}, false
	}
	return input.PickResult{Point: hit.Point, Name: hit.Object.Name}, true
}

// Run opens the window and drives the two clocks: the render loop at
// display rate and fixed physics substeps inside it.
func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(int32(g.cfg.WindowWidth), int32(g.cfg.WindowHeight), g.cfg.WindowTitle)
	defer rl.CloseWindow()
	defer g.aggregator.Dispose()

	rl.SetTargetFPS(120)

	g.log.Info().
		Int("width", g.cfg.WindowWidth).
		Int("height", g.cfg.WindowHeight).
		Msg("window opened")

	for !rl.WindowShouldClose() {
		frameTime := rl.GetFrameTime()

		// Input first: handler mutations must be visible to every
		// substep of this frame.
		g.poller.poll(&g.events)

		g.accumulator += frameTime
		steps := 0
		for g.accumulator >= fixedStep && steps < maxSubsteps {
			g.world.Update(fixedStep)
			g.controller.Step(fixedStep)
			g.accumulator -= fixedStep
			steps++
		}
		if steps == maxSubsteps {
			g.accumulator = 0
		}

		// Camera is derived after physics, before render.
		g.rig.Update()

		g.draw()
	}
}

func (g *Game) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.SkyBlue)

	rl.BeginMode3D(g.rig.Camera)
	g.world.Draw()
	g.drawSeekMarker()
	rl.EndMode3D()

	rl.DrawFPS(10, 10)
	rl.DrawText(g.controller.State().String(), 10, 34, 20, rl.DarkGray)

	rl.EndDrawing()
}

func (g *Game) drawSeekMarker() {
	target, ok := g.planner.Target()
	if !ok {
		return
	}
	rl.DrawCylinder(target, 0.25, 0.25, 0.05, 12, rl.Red)
}
