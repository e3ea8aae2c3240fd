package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaycastHit holds information about a raycast hit.
type RaycastHit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// RaycastBox performs a slab test of the ray against one box and returns
// the closest hit within maxDistance.
func RaycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (RaycastHit, bool) {
	min := box.Min
	max := box.Max

	var tmin, tmax float32

	// X slab
	if direction.X != 0 {
		t1 := (min.X - origin.X) / direction.X
		t2 := (max.X - origin.X) / direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if origin.X < min.X || origin.X > max.X {
		return RaycastHit{}, false
	} else {
		tmin = -1e30
		tmax = 1e30
	}

	// Y slab
	if direction.Y != 0 {
		t1 := (min.Y - origin.Y) / direction.Y
		t2 := (max.Y - origin.Y) / direction.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Y < min.Y || origin.Y > max.Y {
		return RaycastHit{}, false
	}

	if tmin > tmax {
		return RaycastHit{}, false
	}

	// Z slab
	if direction.Z != 0 {
		t1 := (min.Z - origin.Z) / direction.Z
		t2 := (max.Z - origin.Z) / direction.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Z < min.Z || origin.Z > max.Z {
		return RaycastHit{}, false
	}

	if tmin > tmax || tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Normal from whichever face the hit point lies on
	var normal rl.Vector3
	epsilon := float32(0.001)
	if absf(point.X-min.X) < epsilon {
		normal = rl.Vector3{X: -1}
	} else if absf(point.X-max.X) < epsilon {
		normal = rl.Vector3{X: 1}
	} else if absf(point.Y-min.Y) < epsilon {
		normal = rl.Vector3{Y: -1}
	} else if absf(point.Y-max.Y) < epsilon {
		normal = rl.Vector3{Y: 1}
	} else if absf(point.Z-min.Z) < epsilon {
		normal = rl.Vector3{Z: -1}
	} else {
		normal = rl.Vector3{Z: 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
