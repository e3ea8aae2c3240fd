package locomotion

import (
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// Planner turns a world-space click target into a per-step body-local move
// vector with turn-while-approaching yaw. It clears its target on arrival,
// on stall, or when canceled by conflicting input.
type Planner struct {
	tun Tuning
	log zerolog.Logger
	now func() time.Time

	active       bool
	target       rl.Vector3
	bestDistance float32
	lastProgress time.Time
}

func NewPlanner(tun Tuning, log zerolog.Logger) *Planner {
	return &Planner{
		tun: tun,
		log: log,
		now: time.Now,
	}
}

// SetTarget starts seeking the given world point. A previous target is
// replaced; at most one target is active at a time.
func (p *Planner) SetTarget(point rl.Vector3) {
	p.active = true
	p.target = point
	p.bestDistance = float32(math.Inf(1))
	p.lastProgress = p.now()
	p.log.Debug().
		Float32("x", point.X).
		Float32("z", point.Z).
		Msg("seek target set")
}

// Cancel drops the active target, if any.
func (p *Planner) Cancel() {
	if p.active {
		p.log.Debug().Msg("seek target canceled")
	}
	p.active = false
}

func (p *Planner) Active() bool {
	return p.active
}

func (p *Planner) Target() (rl.Vector3, bool) {
	return p.target, p.active
}

// Step advances the seek behavior by one physics step. It returns the
// desired body-local move vector and the updated yaw. ok is false when no
// target is active; on the arrival and stall steps ok is still true and
// the move vector is zero.
func (p *Planner) Step(dt float32, position rl.Vector3, yaw float32) (rl.Vector3, float32, bool) {
	if !p.active {
		return rl.Vector3{}, yaw, false
	}

	// Horizontal vector to target; height is ignored.
	dx := p.target.X - position.X
	dz := p.target.Z - position.Z
	dist := float32(math.Sqrt(float64(dx*dx + dz*dz)))

	if dist < p.tun.StopDistance {
		p.log.Debug().Float32("distance", dist).Msg("seek target reached")
		p.active = false
		return rl.Vector3{}, yaw, true
	}

	// Stall detection: track the best distance seen and the time of the
	// last real improvement.
	now := p.now()
	if p.bestDistance-dist > p.tun.StallEpsilon {
		p.bestDistance = dist
		p.lastProgress = now
	} else if now.Sub(p.lastProgress) > p.tun.StallTimeout {
		p.log.Debug().Float32("distance", dist).Msg("seek target abandoned, no progress")
		p.active = false
		return rl.Vector3{}, yaw, true
	}

	// Turn toward the target by a bounded fraction of the shortest angular
	// difference, never faster than TurnSpeed.
	desiredYaw := float32(math.Atan2(float64(dx), float64(dz)))
	diff := WrapAngle(desiredYaw - yaw)
	maxStep := p.tun.TurnSpeed * dt
	fraction := maxStep
	if fraction > 1 {
		fraction = 1
	}
	turn := diff * fraction
	if turn > maxStep {
		turn = maxStep
	} else if turn < -maxStep {
		turn = -maxStep
	}
	yaw = WrapAngle(yaw + turn)

	// World-space approach direction into body-local axes at the current
	// yaw, scaled to the seek strength with a linear taper inside the
	// slow radius.
	dir := rl.Vector3{X: dx / dist, Z: dz / dist}
	local := InverseRotateYaw(dir, yaw)

	strength := p.tun.SeekStrength
	if dist < p.tun.SlowRadius {
		strength *= dist / p.tun.SlowRadius
	}
	return rl.Vector3Scale(local, strength), yaw, true
}
