package locomotion

import (
	"math"
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// fakeClock lets stall tests advance time without sleeping.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestPlanner() (*Planner, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	p := NewPlanner(DefaultTuning(), zerolog.Nop())
	p.now = clock.now
	return p, clock
}

func TestPlannerInactive(t *testing.T) {
	p, _ := newTestPlanner()

	_, _, ok := p.Step(0.016, rl.Vector3{}, 0)
	if ok {
		t.Error("inactive planner should report ok=false")
	}
}

func TestPlannerArrival(t *testing.T) {
	p, _ := newTestPlanner()
	p.SetTarget(rl.Vector3{X: 0.2}) // inside stop distance of the origin

	local, _, ok := p.Step(0.016, rl.Vector3{}, 0)
	if !ok {
		t.Fatal("active planner should report ok=true")
	}
	if local.X != 0 || local.Z != 0 {
		t.Errorf("arrival step should return zero vector, got %v", local)
	}
	if p.Active() {
		t.Error("target should be cleared on arrival")
	}
}

func TestPlannerStall(t *testing.T) {
	p, clock := newTestPlanner()
	p.SetTarget(rl.Vector3{X: 5})

	// The body never moves, so distance never improves past the first
	// measurement.
	pos := rl.Vector3{}
	yaw := float32(0)
	for i := 0; i < 100 && p.Active(); i++ {
		clock.advance(50 * time.Millisecond)
		_, yaw, _ = p.Step(0.05, pos, yaw)
	}

	if p.Active() {
		t.Error("blocked target should have been abandoned")
	}
}

func TestPlannerNoStallWhileProgressing(t *testing.T) {
	p, clock := newTestPlanner()
	p.SetTarget(rl.Vector3{Z: 50})

	// Move toward the target fast enough to count as progress.
	pos := rl.Vector3{}
	yaw := float32(0)
	for i := 0; i < 20; i++ {
		clock.advance(100 * time.Millisecond)
		local, newYaw, ok := p.Step(0.1, pos, yaw)
		if !ok {
			t.Fatalf("planner gave up at step %d", i)
		}
		yaw = newYaw
		world := RotateYaw(local, yaw)
		pos = rl.Vector3Add(pos, rl.Vector3Scale(world, 0.1*8))
	}

	if !p.Active() {
		t.Error("planner abandoned a target it was making progress toward")
	}
}

func TestPlannerTurnRateBounded(t *testing.T) {
	p, _ := newTestPlanner()
	p.SetTarget(rl.Vector3{X: 5}) // desired yaw = atan2(5, 0) = pi/2

	dt := float32(0.016)
	_, yaw, ok := p.Step(dt, rl.Vector3{}, 0)
	if !ok {
		t.Fatal("expected an active step")
	}

	maxStep := DefaultTuning().TurnSpeed * dt
	if yaw <= 0 {
		t.Errorf("yaw should move toward pi/2, got %v", yaw)
	}
	if yaw > maxStep+angleEps {
		t.Errorf("yaw moved %v in one step, limit %v", yaw, maxStep)
	}
}

func TestPlannerTurnConverges(t *testing.T) {
	p, clock := newTestPlanner()
	p.SetTarget(rl.Vector3{X: 5})

	yaw := float32(0)
	for i := 0; i < 500; i++ {
		clock.advance(16 * time.Millisecond)
		// Re-arm progress so stall detection stays quiet while turning
		// in place.
		p.lastProgress = clock.t
		_, yaw, _ = p.Step(0.016, rl.Vector3{}, yaw)
	}

	if absDiff(yaw, math.Pi/2) > 0.05 {
		t.Errorf("yaw should converge to pi/2, got %v", yaw)
	}
}

func TestPlannerSlowRadiusTaper(t *testing.T) {
	p, _ := newTestPlanner()
	tun := DefaultTuning()

	// Far target: full strength.
	p.SetTarget(rl.Vector3{Z: 10})
	local, _, _ := p.Step(0.016, rl.Vector3{}, 0)
	far := rl.Vector3Length(local)
	if absDiff(far, tun.SeekStrength) > 0.01 {
		t.Errorf("far target strength = %v, expected %v", far, tun.SeekStrength)
	}

	// Inside the slow radius the strength tapers linearly.
	dist := tun.SlowRadius / 2
	p.SetTarget(rl.Vector3{Z: dist})
	local, _, _ = p.Step(0.016, rl.Vector3{}, 0)
	near := rl.Vector3Length(local)
	expected := tun.SeekStrength * dist / tun.SlowRadius
	if absDiff(near, expected) > 0.01 {
		t.Errorf("near target strength = %v, expected %v", near, expected)
	}
}

func TestPlannerCancel(t *testing.T) {
	p, _ := newTestPlanner()
	p.SetTarget(rl.Vector3{X: 5})

	p.Cancel()

	if p.Active() {
		t.Error("Cancel should clear the target")
	}
	if _, _, ok := p.Step(0.016, rl.Vector3{}, 0); ok {
		t.Error("canceled planner should report ok=false")
	}
}

func TestPlannerReplaceTarget(t *testing.T) {
	p, _ := newTestPlanner()
	p.SetTarget(rl.Vector3{X: 5})
	p.SetTarget(rl.Vector3{Z: -3})

	target, ok := p.Target()
	if !ok {
		t.Fatal("expected an active target")
	}
	if target.X != 0 || target.Z != -3 {
		t.Errorf("new target should replace the old one, got %v", target)
	}
}

func TestPlannerLocalVectorPointsAtTarget(t *testing.T) {
	p, _ := newTestPlanner()
	p.SetTarget(rl.Vector3{Z: 10})

	// Facing the target already: the local vector is pure forward.
	local, _, _ := p.Step(0.016, rl.Vector3{}, 0)
	if local.Z < 0.99 {
		t.Errorf("expected forward seek vector, got %v", local)
	}
	if absDiff(local.X, 0) > 0.01 {
		t.Errorf("expected no sideways component, got %v", local)
	}
}
