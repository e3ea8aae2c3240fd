package locomotion

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Support is the result of a ground support query: whether the body rests
// on a surface, and the averaged contact normal and surface velocity
// (non-zero for moving platforms).
type Support struct {
	Supported       bool
	SurfaceNormal   rl.Vector3
	SurfaceVelocity rl.Vector3
}

// Body is the physics capability the controller drives. The controller
// computes a desired velocity each step and hands it back through
// SetVelocity followed by Integrate; it never moves the body directly.
type Body interface {
	// CheckSupport probes for ground contact along the down direction.
	CheckSupport(dt float32, down rl.Vector3) Support

	// CalculateMovement resolves a desired velocity against the current
	// contact state and returns an achievable velocity. refUp is the
	// surface normal when grounded, or the world up when airborne.
	CalculateMovement(dt float32, forward, refUp, currentVelocity, surfaceVelocity, desiredVelocity, up rl.Vector3) rl.Vector3

	Position() rl.Vector3
	Velocity() rl.Vector3
	SetVelocity(v rl.Vector3)

	// Integrate advances the body pose under the current velocity.
	Integrate(dt float32, support Support, gravity rl.Vector3)
}
