package locomotion

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WrapAngle maps an angle in radians to (-pi, pi]. Applying it twice gives
// the same result as applying it once.
func WrapAngle(a float32) float32 {
	r := math.Mod(float64(a)+math.Pi, 2*math.Pi)
	if r <= 0 {
		r += 2 * math.Pi
	}
	return float32(r - math.Pi)
}

// YawForward returns the horizontal forward direction for a yaw angle.
// Yaw 0 faces +Z; positive yaw turns toward +X, so yaw = atan2(x, z).
func YawForward(yaw float32) rl.Vector3 {
	return rl.Vector3{X: sinf(yaw), Z: cosf(yaw)}
}

// RotateYaw rotates a body-local vector into world space about the Y axis.
func RotateYaw(v rl.Vector3, yaw float32) rl.Vector3 {
	s, c := sinf(yaw), cosf(yaw)
	return rl.Vector3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// InverseRotateYaw rotates a world-space vector into body-local space.
func InverseRotateYaw(v rl.Vector3, yaw float32) rl.Vector3 {
	s, c := sinf(yaw), cosf(yaw)
	return rl.Vector3{
		X: v.X*c - v.Z*s,
		Y: v.Y,
		Z: v.X*s + v.Z*c,
	}
}

func sinf(a float32) float32 {
	return float32(math.Sin(float64(a)))
}

func cosf(a float32) float32 {
	return float32(math.Cos(float64(a)))
}
