package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestAABBIntersects(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	b := NewAABBFromCenter(rl.Vector3{X: 1.5}, rl.Vector3{X: 2, Y: 2, Z: 2})
	c := NewAABBFromCenter(rl.Vector3{X: 5}, rl.Vector3{X: 2, Y: 2, Z: 2})

	if !a.Intersects(b) {
		t.Error("Expected overlapping boxes to intersect")
	}
	if a.Intersects(c) {
		t.Error("Expected separated boxes not to intersect")
	}
}

func TestAABBTranslate(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})

	moved := a.Translate(rl.Vector3{X: 3, Y: -1})

	if moved.Min.X != 2 || moved.Max.X != 4 {
		t.Errorf("Expected X range [2, 4], got [%v, %v]", moved.Min.X, moved.Max.X)
	}
	if moved.Center().Y != -1 {
		t.Errorf("Expected center Y -1, got %v", moved.Center().Y)
	}
	if moved.Size() != a.Size() {
		t.Error("Translate should preserve size")
	}
}

func TestAABBResolveMinimumAxis(t *testing.T) {
	// Body sunk a little into a wide floor: the cheapest push is up.
	body := AABB{Min: rl.Vector3{X: -0.4, Y: -0.25, Z: -0.4}, Max: rl.Vector3{X: 0.4, Y: 1.55, Z: 0.4}}
	floor := AABB{Min: rl.Vector3{X: -20, Y: -1, Z: -20}, Max: rl.Vector3{X: 20, Y: 0, Z: 20}}

	push := body.Resolve(floor)

	if push.X != 0 || push.Z != 0 {
		t.Errorf("Expected a vertical push, got %v", push)
	}
	if absf(push.Y-0.25) > 0.001 {
		t.Errorf("Expected push 0.25 up, got %v", push.Y)
	}
}

func TestAABBResolveNoOverlap(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	b := NewAABBFromCenter(rl.Vector3{X: 5}, rl.Vector3{X: 2, Y: 2, Z: 2})

	if push := a.Resolve(b); push != rl.Vector3Zero() {
		t.Errorf("Expected zero push for separated boxes, got %v", push)
	}
}
