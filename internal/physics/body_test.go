package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"walker3d/internal/locomotion"
)

type stubSource []Obstacle

func (s stubSource) Obstacles() []Obstacle { return s }

func groundSource() stubSource {
	return stubSource{
		{Box: NewAABBFromCenter(rl.Vector3{Y: -0.5}, rl.Vector3{X: 40, Y: 1, Z: 40})},
	}
}

// standingBody returns a body whose feet rest exactly on the ground plane.
func standingBody(source ObstacleSource) *CharacterBody {
	return NewCharacterBody(source, rl.Vector3{Y: 0.9}, 1.8, 0.4)
}

func TestCheckSupportOnGround(t *testing.T) {
	b := standingBody(groundSource())

	support := b.CheckSupport(1.0/60, rl.Vector3{Y: -1})

	if !support.Supported {
		t.Fatal("Expected support while standing on the ground")
	}
	if support.SurfaceNormal.Y < 0.99 {
		t.Errorf("Expected an up-facing surface normal, got %v", support.SurfaceNormal)
	}
}

func TestCheckSupportInAir(t *testing.T) {
	b := NewCharacterBody(groundSource(), rl.Vector3{Y: 2}, 1.8, 0.4)

	support := b.CheckSupport(1.0/60, rl.Vector3{Y: -1})

	if support.Supported {
		t.Error("Expected no support above the ground")
	}
}

func TestCheckSupportNextToWall(t *testing.T) {
	source := stubSource{
		// Tall wall touching the body from the side.
		{Box: NewAABBFromCenter(rl.Vector3{X: 0.8, Y: 1}, rl.Vector3{X: 1, Y: 4, Z: 1})},
	}
	b := standingBody(source)

	support := b.CheckSupport(1.0/60, rl.Vector3{Y: -1})

	if support.Supported {
		t.Error("A wall beside the body should not count as support")
	}
}

func TestCheckSupportPlatformVelocity(t *testing.T) {
	source := stubSource{
		{
			Box:      NewAABBFromCenter(rl.Vector3{Y: -0.5}, rl.Vector3{X: 4, Y: 1, Z: 4}),
			Velocity: rl.Vector3{X: 1.5},
		},
	}
	b := standingBody(source)

	support := b.CheckSupport(1.0/60, rl.Vector3{Y: -1})

	if !support.Supported {
		t.Fatal("Expected support on the platform")
	}
	if support.SurfaceVelocity.X != 1.5 {
		t.Errorf("Expected surface velocity 1.5, got %v", support.SurfaceVelocity)
	}
}

func TestCalculateMovementBlockedByWall(t *testing.T) {
	source := append(groundSource(), Obstacle{
		Box: NewAABBFromCenter(rl.Vector3{Y: 1, Z: 1}, rl.Vector3{X: 4, Y: 4, Z: 1}),
	})
	b := standingBody(source)

	desired := rl.Vector3{X: 3, Z: 8}
	out := b.CalculateMovement(1.0/60, rl.Vector3{Z: 1}, rl.Vector3{Y: 1},
		rl.Vector3{}, rl.Vector3{}, desired, rl.Vector3{Y: 1})

	if out.Z != 0 {
		t.Errorf("Expected forward axis blocked by the wall, got %v", out.Z)
	}
	if out.X != 3 {
		t.Errorf("Expected sideways slide to pass through, got %v", out.X)
	}
}

func TestCalculateMovementOpenGround(t *testing.T) {
	b := standingBody(groundSource())

	desired := rl.Vector3{Z: 8}
	out := b.CalculateMovement(1.0/60, rl.Vector3{Z: 1}, rl.Vector3{Y: 1},
		rl.Vector3{}, rl.Vector3{}, desired, rl.Vector3{Y: 1})

	if out.Z != 8 {
		t.Errorf("Ground under the feet should not block horizontal movement, got %v", out)
	}
}

func TestIntegrateMovesBody(t *testing.T) {
	b := standingBody(groundSource())
	b.SetVelocity(rl.Vector3{Z: 8})

	b.Integrate(0.5, locomotion.Support{}, rl.Vector3{Y: -20})

	if b.Position().Z != 4 {
		t.Errorf("Expected Z position 4, got %v", b.Position().Z)
	}
}

func TestIntegratePushesOutOfGround(t *testing.T) {
	b := standingBody(groundSource())
	b.SetVelocity(rl.Vector3{Y: -5})

	b.Integrate(0.05, locomotion.Support{}, rl.Vector3{Y: -20})

	feet := b.Position().Y - b.Height/2
	if feet < -0.001 {
		t.Errorf("Expected body pushed out of the ground, feet at %v", feet)
	}
	if b.Velocity().Y != 0 {
		t.Errorf("Expected downward velocity killed on landing, got %v", b.Velocity().Y)
	}
}
