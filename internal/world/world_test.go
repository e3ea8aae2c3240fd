package world

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"walker3d/internal/components"
	"walker3d/internal/engine"
)

func TestObstaclesFromColliders(t *testing.T) {
	w := New(zerolog.Nop())
	w.addBox("ground", rl.Vector3{Y: -0.5}, rl.Vector3{X: 10, Y: 1, Z: 10})
	w.Scene.AddGameObject(engine.NewGameObject("marker")) // no collider

	obstacles := w.Obstacles()
	if len(obstacles) != 1 {
		t.Fatalf("Expected 1 obstacle, got %d", len(obstacles))
	}
	if obstacles[0].Box.Max.Y != 0 {
		t.Errorf("Expected ground top at 0, got %v", obstacles[0].Box.Max.Y)
	}
}

func TestObstaclesCarryKinematicVelocity(t *testing.T) {
	w := New(zerolog.Nop())
	platform := w.addBox("platform", rl.Vector3{Y: 2}, rl.Vector3{X: 3, Y: 0.4, Z: 3})
	rb := components.NewRigidbody()
	rb.IsKinematic = true
	rb.Velocity = rl.Vector3{X: 1.5}
	platform.AddComponent(rb)

	obstacles := w.Obstacles()
	if len(obstacles) != 1 {
		t.Fatalf("Expected 1 obstacle, got %d", len(obstacles))
	}
	if obstacles[0].Velocity.X != 1.5 {
		t.Errorf("Expected platform velocity 1.5, got %v", obstacles[0].Velocity.X)
	}
}

func TestObstaclesSkipInactive(t *testing.T) {
	w := New(zerolog.Nop())
	crate := w.addBox("crate", rl.Vector3{Y: 1}, rl.Vector3{X: 2, Y: 2, Z: 2})
	crate.Active = false

	if got := len(w.Obstacles()); got != 0 {
		t.Errorf("Expected inactive colliders skipped, got %d", got)
	}
}

func TestRaycastClosestObject(t *testing.T) {
	w := New(zerolog.Nop())
	w.addBox("far", rl.Vector3{Z: 20}, rl.Vector3{X: 2, Y: 2, Z: 2})
	w.addBox("near", rl.Vector3{Z: 10}, rl.Vector3{X: 2, Y: 2, Z: 2})

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: 1}, 100)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if hit.Object.Name != "near" {
		t.Errorf("Expected the closest object, got %q", hit.Object.Name)
	}
}

func TestRaycastMiss(t *testing.T) {
	w := New(zerolog.Nop())
	w.addBox("crate", rl.Vector3{Z: 10}, rl.Vector3{X: 2, Y: 2, Z: 2})

	if _, ok := w.Raycast(rl.Vector3{}, rl.Vector3{X: 1}, 100); ok {
		t.Error("Expected a miss to the side")
	}
}

func TestPlaygroundGroundPick(t *testing.T) {
	w := New(zerolog.Nop())
	w.BuildPlayground()

	hit, ok := w.Raycast(rl.Vector3{X: -10, Y: 10, Z: -10}, rl.Vector3{Y: -1}, 200)
	if !ok {
		t.Fatal("Expected the ground under a top-down ray")
	}
	if hit.Object.Name != "ground" {
		t.Errorf("Expected to hit the ground, got %q", hit.Object.Name)
	}
}
