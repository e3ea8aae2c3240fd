package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"walker3d/internal/locomotion"
)

// Obstacle is one solid box the character can collide with, together with
// its current velocity (moving platforms).
type Obstacle struct {
	Box      AABB
	Velocity rl.Vector3
}

// ObstacleSource supplies the solid geometry around the character. The
// world layer adapts scene colliders into it.
type ObstacleSource interface {
	Obstacles() []Obstacle
}

const (
	// groundProbeDistance is how far below the feet the support probe
	// reaches.
	groundProbeDistance = 0.05
	// contactSkin lifts horizontal sweep tests off resting surfaces so a
	// grounded body isn't blocked by the floor it stands on.
	contactSkin = 0.02
)

// CharacterBody is a box-proxy character body colliding against an
// obstacle set. It implements locomotion.Body for the demo scene; tests of
// the locomotion core use their own mock instead.
type CharacterBody struct {
	Height float32
	Radius float32

	source   ObstacleSource
	position rl.Vector3 // center of the box proxy
	velocity rl.Vector3
}

func NewCharacterBody(source ObstacleSource, position rl.Vector3, height, radius float32) *CharacterBody {
	return &CharacterBody{
		Height:   height,
		Radius:   radius,
		source:   source,
		position: position,
	}
}

func (b *CharacterBody) bounds() AABB {
	return NewAABBFromCenter(b.position, rl.Vector3{
		X: b.Radius * 2,
		Y: b.Height,
		Z: b.Radius * 2,
	})
}

func (b *CharacterBody) Position() rl.Vector3 {
	return b.position
}

func (b *CharacterBody) SetPosition(p rl.Vector3) {
	b.position = p
}

func (b *CharacterBody) Velocity() rl.Vector3 {
	return b.velocity
}

func (b *CharacterBody) SetVelocity(v rl.Vector3) {
	b.velocity = v
}

// CheckSupport probes just below the feet. Obstacles whose top face lies
// under the probe count as support; their normals and velocities are
// averaged.
func (b *CharacterBody) CheckSupport(dt float32, down rl.Vector3) locomotion.Support {
	bounds := b.bounds()
	probe := bounds.Translate(rl.Vector3Scale(down, groundProbeDistance))
	feet := bounds.Min.Y

	var normal, velocity rl.Vector3
	contacts := 0
	for _, ob := range b.source.Obstacles() {
		if !probe.Intersects(ob.Box) {
			continue
		}
		// Support means resting on top of the box, not brushing a wall.
		if ob.Box.Max.Y > feet+groundProbeDistance {
			continue
		}
		normal = rl.Vector3Add(normal, rl.Vector3{Y: 1})
		velocity = rl.Vector3Add(velocity, ob.Velocity)
		contacts++
	}

	if contacts == 0 {
		return locomotion.Support{SurfaceNormal: rl.Vector3{Y: 1}}
	}
	return locomotion.Support{
		Supported:       true,
		SurfaceNormal:   rl.Vector3Normalize(normal),
		SurfaceVelocity: rl.Vector3Scale(velocity, 1/float32(contacts)),
	}
}

// CalculateMovement does an axis-separated sweep of the desired velocity
// against the obstacles: a horizontally blocked axis contributes no
// velocity, so the character slides along walls. The vertical component
// passes through; Integrate resolves vertical contact.
func (b *CharacterBody) CalculateMovement(dt float32, forward, refUp, currentVelocity, surfaceVelocity, desiredVelocity, up rl.Vector3) rl.Vector3 {
	out := desiredVelocity

	// Sweep from slightly above the resting contact.
	base := b.bounds().Translate(rl.Vector3{Y: contactSkin})

	if out.X != 0 {
		test := base.Translate(rl.Vector3{X: out.X * dt})
		if b.blocked(test) {
			out.X = 0
		}
	}
	if out.Z != 0 {
		test := base.Translate(rl.Vector3{Z: out.Z * dt})
		if b.blocked(test) {
			out.Z = 0
		}
	}
	return out
}

func (b *CharacterBody) blocked(test AABB) bool {
	for _, ob := range b.source.Obstacles() {
		if test.Intersects(ob.Box) {
			return true
		}
	}
	return false
}

// Integrate advances the position under the current velocity and pushes
// the body out of any penetration. Gravity is already folded into the
// velocity by the controller; it is not applied again here.
func (b *CharacterBody) Integrate(dt float32, support locomotion.Support, gravity rl.Vector3) {
	b.position = rl.Vector3Add(b.position, rl.Vector3Scale(b.velocity, dt))

	bounds := b.bounds()
	for _, ob := range b.source.Obstacles() {
		push := bounds.Resolve(ob.Box)
		if push.X == 0 && push.Y == 0 && push.Z == 0 {
			continue
		}
		b.position = rl.Vector3Add(b.position, push)
		bounds = b.bounds()

		// Landing on a surface or bumping a ceiling kills the vertical
		// speed into it.
		if push.Y > 0 && b.velocity.Y < 0 {
			b.velocity.Y = 0
		}
		if push.Y < 0 && b.velocity.Y > 0 {
			b.velocity.Y = 0
		}
	}
}
