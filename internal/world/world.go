package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"walker3d/internal/components"
	"walker3d/internal/engine"
	"walker3d/internal/physics"
)

// Hit is a successful world raycast.
type Hit struct {
	Object   *engine.GameObject
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// World owns the scene and adapts its colliders for the physics layer.
type World struct {
	Scene *engine.Scene
	log   zerolog.Logger
}

func New(log zerolog.Logger) *World {
	return &World{
		Scene: engine.NewScene("Main"),
		log:   log,
	}
}

// Update advances scene logic (moving platforms and the like).
func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Obstacles implements physics.ObstacleSource: every collider in the
// scene, with the velocity of kinematic movers attached.
func (w *World) Obstacles() []physics.Obstacle {
	obstacles := make([]physics.Obstacle, 0, len(w.Scene.GameObjects))
	for _, g := range w.Scene.GameObjects {
		if !g.Active {
			continue
		}
		box := engine.GetComponent[*components.BoxCollider](g)
		if box == nil {
			continue
		}
		ob := physics.Obstacle{Box: box.GetAABB()}
		if rb := engine.GetComponent[*components.Rigidbody](g); rb != nil && rb.IsKinematic {
			ob.Velocity = rb.Velocity
		}
		obstacles = append(obstacles, ob)
	}
	return obstacles
}

// Raycast returns the closest collider hit along the ray.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (Hit, bool) {
	direction = rl.Vector3Normalize(direction)

	closest := Hit{Distance: maxDistance}
	found := false
	for _, g := range w.Scene.GameObjects {
		if !g.Active {
			continue
		}
		box := engine.GetComponent[*components.BoxCollider](g)
		if box == nil {
			continue
		}
		hit, ok := physics.RaycastBox(origin, direction, box.GetAABB(), maxDistance)
		if ok && hit.Distance < closest.Distance {
			closest = Hit{
				Object:   g,
				Point:    hit.Point,
				Normal:   hit.Normal,
				Distance: hit.Distance,
			}
			found = true
		}
	}
	return closest, found
}

// addBox creates a named static box with a collider at the given center.
func (w *World) addBox(name string, center, size rl.Vector3, tags ...string) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Tags = tags
	g.Transform.Position = center
	g.AddComponent(components.NewBoxCollider(size))
	w.Scene.AddGameObject(g)
	return g
}

// BuildPlayground populates the demo scene: open ground, a few crates to
// walk around (and stall against), a moving platform, and a floating
// panel that the click-to-move pick filter must reject.
func (w *World) BuildPlayground() {
	w.addBox("ground", rl.Vector3{Y: -0.5}, rl.Vector3{X: 40, Y: 1, Z: 40}, "ground")

	w.addBox("crate.a", rl.Vector3{X: 4, Y: 0.75, Z: 6}, rl.Vector3{X: 1.5, Y: 1.5, Z: 1.5}, "prop")
	w.addBox("crate.b", rl.Vector3{X: -5, Y: 1, Z: 3}, rl.Vector3{X: 2, Y: 2, Z: 2}, "prop")
	w.addBox("wall.north", rl.Vector3{Y: 1.5, Z: 12}, rl.Vector3{X: 14, Y: 3, Z: 0.5}, "prop")

	w.addBox("ledge", rl.Vector3{X: 8, Y: 0.9, Z: -4}, rl.Vector3{X: 4, Y: 1.8, Z: 4}, "ground")

	platform := w.addBox("platform", rl.Vector3{X: -4, Y: 2.2, Z: -6}, rl.Vector3{X: 3, Y: 0.4, Z: 3}, "ground")
	rb := components.NewRigidbody()
	rb.IsKinematic = true
	platform.AddComponent(rb)
	platform.AddComponent(components.NewMovingPlatform(
		rl.Vector3{X: -4, Y: 2.2, Z: -6},
		rl.Vector3{X: 4, Y: 2.2, Z: -6},
		1.5,
	))

	// Name prefix keeps it out of click-to-move picks.
	w.addBox("ui.panel", rl.Vector3{X: 0, Y: 2.5, Z: 10}, rl.Vector3{X: 3, Y: 1.5, Z: 0.2}, "ui")

	w.Scene.Start()
	w.log.Info().Int("objects", len(w.Scene.GameObjects)).Msg("playground built")
}
