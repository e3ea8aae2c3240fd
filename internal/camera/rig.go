package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pose is what the rig reads from the character each render frame: the
// head pivot in world space and the unit look direction.
type Pose interface {
	HeadPosition() rl.Vector3
	LookDirection() rl.Vector3
}

// Rig keeps a first-person camera glued to a physics-driven body. The
// camera pose is fully derived from the body each frame; the rig stores
// no orientation of its own, so body and camera cannot drift apart.
type Rig struct {
	Camera rl.Camera3D

	pose      Pose
	lookAhead float32
}

// NewRig creates a rig aimed through the given pose. lookAhead is the
// distance of the camera aim point ahead of the head.
func NewRig(pose Pose, lookAhead float32) *Rig {
	return &Rig{
		Camera: rl.Camera3D{
			Up:         rl.Vector3{Y: 1},
			Fovy:       60,
			Projection: rl.CameraPerspective,
		},
		pose:      pose,
		lookAhead: lookAhead,
	}
}

// Update repositions and re-aims the camera from the current body pose.
// Call once per render frame, after physics has advanced.
func (r *Rig) Update() {
	head := r.pose.HeadPosition()
	dir := r.pose.LookDirection()
	r.Camera.Position = head
	r.Camera.Target = rl.Vector3Add(head, rl.Vector3Scale(dir, r.lookAhead))
}
