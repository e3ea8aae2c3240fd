package locomotion

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// IntentSource is the per-step view of aggregated input the controller
// consumes. The input aggregator owns the underlying state; the controller
// only writes yaw (keyboard turn and seek turning both integrate it) and
// consumes the transient jump and dolly intents.
type IntentSource interface {
	// Axes returns the move axis (forward/back) and turn axis (yaw rate),
	// each in [-1, 1].
	Axes() (move, turn float32)
	// Look returns the accumulated yaw and the clamped pitch, in radians.
	Look() (yaw, pitch float32)
	SetYaw(yaw float32)
	// ConsumeJump reports and clears the jump flag.
	ConsumeJump() bool
	// ConsumeDolly returns and clears the pending forward velocity impulse.
	ConsumeDolly() float32
}

// slopeEpsilon is the upward surface-relative speed above which the
// grounded velocity gets reprojected onto the horizontal plane.
const slopeEpsilon = 1e-3

// Controller converts aggregated intent into a desired velocity once per
// physics step and hands it to the body. It owns the movement state.
type Controller struct {
	tun     Tuning
	body    Body
	intent  IntentSource
	planner *Planner
	log     zerolog.Logger

	state   State
	gravity rl.Vector3
	up      rl.Vector3
}

func NewController(body Body, intent IntentSource, planner *Planner, tun Tuning, log zerolog.Logger) *Controller {
	return &Controller{
		tun:     tun,
		body:    body,
		intent:  intent,
		planner: planner,
		log:     log,
		state:   StateInAir,
		gravity: rl.Vector3{Y: -tun.Gravity},
		up:      rl.Vector3{Y: 1},
	}
}

func (c *Controller) State() State {
	return c.state
}

// Step runs one physics substep: evaluate the state transition from a
// fresh support query, compute the desired velocity for the resulting
// state, and push it into the body. A zero or negative dt skips the whole
// step: no transition, no velocity write.
func (c *Controller) Step(dt float32) {
	if dt <= 0 {
		return
	}

	yaw, _ := c.intent.Look()

	// Either the seek planner or the keyboard drives the local move
	// vector and yaw; never both.
	var local rl.Vector3
	if v, newYaw, ok := c.planner.Step(dt, c.body.Position(), yaw); ok {
		local = v
		yaw = newYaw
	} else {
		move, turn := c.intent.Axes()
		yaw = yaw + turn*c.tun.TurnSpeed*dt
		local = rl.Vector3{Z: move}
	}
	c.intent.SetYaw(yaw)

	// Pinch / wheel dolly is a direct velocity impulse along forward.
	if impulse := c.intent.ConsumeDolly(); impulse != 0 {
		v := rl.Vector3Add(c.body.Velocity(), rl.Vector3Scale(YawForward(yaw), impulse))
		c.body.SetVelocity(v)
	}

	down := rl.Vector3Scale(c.up, -1)
	support := c.body.CheckSupport(dt, down)

	wantJump := false
	if c.state == StateOnGround && support.Supported {
		wantJump = c.intent.ConsumeJump()
	}
	next := NextState(c.state, support.Supported, wantJump)
	if next != c.state {
		c.log.Debug().Stringer("from", c.state).Stringer("to", next).Msg("movement state")
	}

	current := c.body.Velocity()
	forward := YawForward(yaw)

	var desired rl.Vector3
	switch next {
	case StateInAir:
		desired = c.airVelocity(dt, forward, yaw, local, current)
	case StateOnGround:
		desired = c.groundVelocity(dt, forward, yaw, local, current, support)
	case StateStartJump:
		desired = c.jumpVelocity(current)
	}

	c.body.SetVelocity(desired)
	c.body.Integrate(dt, support, c.gravity)
	c.state = next
}

// airVelocity resolves air control, then restores the body's own vertical
// speed and integrates gravity exactly once, regardless of what the
// movement resolution did to the vertical axis.
func (c *Controller) airVelocity(dt float32, forward rl.Vector3, yaw float32, local, current rl.Vector3) rl.Vector3 {
	desired := RotateYaw(rl.Vector3Scale(local, c.tun.InAirSpeed), yaw)
	out := c.body.CalculateMovement(dt, forward, c.up, current, rl.Vector3{}, desired, c.up)

	out = rl.Vector3Add(out, rl.Vector3Scale(c.up, -rl.Vector3DotProduct(out, c.up)))
	out = rl.Vector3Add(out, rl.Vector3Scale(c.up, rl.Vector3DotProduct(current, c.up)))
	return rl.Vector3Add(out, rl.Vector3Scale(c.gravity, dt))
}

// groundVelocity resolves movement against the measured surface, then
// reprojects the surface-relative velocity onto the horizontal plane if
// the solver pushed the character up a slope.
func (c *Controller) groundVelocity(dt float32, forward rl.Vector3, yaw float32, local, current rl.Vector3, support Support) rl.Vector3 {
	desired := RotateYaw(rl.Vector3Scale(local, c.tun.OnGroundSpeed), yaw)
	out := c.body.CalculateMovement(dt, forward, support.SurfaceNormal, current, support.SurfaceVelocity, desired, c.up)

	out = rl.Vector3Subtract(out, support.SurfaceVelocity)
	if rl.Vector3DotProduct(out, c.up) > slopeEpsilon {
		speed := rl.Vector3Length(out)
		normalUp := rl.Vector3DotProduct(support.SurfaceNormal, c.up)
		if speed > 0 && normalUp > slopeEpsilon {
			unit := rl.Vector3Scale(out, 1/speed)
			// Horizontal length implied by the slope: the steeper the
			// surface, the longer the horizontal run for the same speed.
			horizontal := speed / normalUp
			out = rl.Vector3CrossProduct(support.SurfaceNormal, unit)
			out = rl.Vector3CrossProduct(out, c.up)
			out = rl.Vector3Scale(rl.Vector3Normalize(out), horizontal)
		}
	}
	return rl.Vector3Add(out, support.SurfaceVelocity)
}

// jumpVelocity replaces the vertical speed with a calibrated impulse that
// reaches the configured apex height net of any existing vertical motion.
// The current relative vertical speed is sampled at this step, which can
// double-count when support detection lags by a step; that behavior is a
// deliberate carry-over.
func (c *Controller) jumpVelocity(current rl.Vector3) rl.Vector3 {
	u := float32(math.Sqrt(float64(2 * c.tun.Gravity * c.tun.JumpHeight)))
	vertical := rl.Vector3DotProduct(current, c.up)
	return rl.Vector3Add(current, rl.Vector3Scale(c.up, u-vertical))
}

// HeadPosition returns the head pivot in world space.
func (c *Controller) HeadPosition() rl.Vector3 {
	return rl.Vector3Add(c.body.Position(), rl.Vector3Scale(c.up, c.tun.EyeHeight))
}

// LookDirection returns the unit look direction from yaw and pitch.
func (c *Controller) LookDirection() rl.Vector3 {
	yaw, pitch := c.intent.Look()
	cp := cosf(pitch)
	return rl.Vector3{
		X: sinf(yaw) * cp,
		Y: sinf(pitch),
		Z: cosf(yaw) * cp,
	}
}
