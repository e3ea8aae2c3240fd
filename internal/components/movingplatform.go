package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"walker3d/internal/engine"
)

// MovingPlatform shuttles an object back and forth between two points at
// constant speed, publishing its velocity through the Rigidbody so a
// character standing on it inherits the motion.
type MovingPlatform struct {
	engine.BaseComponent
	From  rl.Vector3
	To    rl.Vector3
	Speed float32

	toward bool // moving From -> To
}

func NewMovingPlatform(from, to rl.Vector3, speed float32) *MovingPlatform {
	return &MovingPlatform{
		From:   from,
		To:     to,
		Speed:  speed,
		toward: true,
	}
}

func (m *MovingPlatform) Start() {
	g := m.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Position = m.From
}

func (m *MovingPlatform) Update(deltaTime float32) {
	g := m.GetGameObject()
	if g == nil || deltaTime <= 0 {
		return
	}

	goal := m.To
	if !m.toward {
		goal = m.From
	}

	delta := rl.Vector3Subtract(goal, g.Transform.Position)
	remaining := rl.Vector3Length(delta)
	step := m.Speed * deltaTime

	var velocity rl.Vector3
	if remaining <= step {
		g.Transform.Position = goal
		m.toward = !m.toward
	} else {
		dir := rl.Vector3Scale(delta, 1/remaining)
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(dir, step))
		velocity = rl.Vector3Scale(dir, m.Speed)
	}

	if rb := engine.GetComponent[*Rigidbody](g); rb != nil {
		rb.Velocity = velocity
	}
}
