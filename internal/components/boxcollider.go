package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"walker3d/internal/engine"
	"walker3d/internal/physics"
)

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	return rl.Vector3Add(g.Transform.Position, b.Offset)
}

func (b *BoxCollider) GetAABB() physics.AABB {
	return physics.NewAABBFromCenter(b.GetCenter(), b.Size)
}
