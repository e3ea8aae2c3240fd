package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"walker3d/internal/engine"
)

// Rigidbody carries a velocity for scene objects that move under their
// own logic, such as platforms. IsKinematic objects are moved by their
// components and only export their velocity to whoever stands on them.
type Rigidbody struct {
	engine.BaseComponent
	Velocity    rl.Vector3
	IsKinematic bool
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{}
}
