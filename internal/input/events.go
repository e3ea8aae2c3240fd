package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"walker3d/internal/engine"
)

// Key names the keys the aggregator understands.
type Key int

const (
	KeyNone Key = iota
	KeyW
	KeyS
	KeyA
	KeyD
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeySpace
)

// PointerKind distinguishes mouse and touch pointers; the drag threshold
// differs between them.
type PointerKind int

const (
	PointerMouse PointerKind = iota
	PointerTouch
)

// Pointer is a pointer down/move/up event in client coordinates.
type Pointer struct {
	ID   int
	Kind PointerKind
	X    float32
	Y    float32
}

// Wheel is a scroll event. Modifier reports whether the dolly modifier
// key is held.
type Wheel struct {
	Delta    float32
	Modifier bool
}

// Events are the host-engine input streams the aggregator subscribes to.
// The host layer publishes into them from its own event dispatch; all
// invocation is single-threaded and synchronous.
type Events struct {
	KeyDown     engine.EventWithArg[Key]
	KeyUp       engine.EventWithArg[Key]
	PointerDown engine.EventWithArg[Pointer]
	PointerMove engine.EventWithArg[Pointer]
	PointerUp   engine.EventWithArg[Pointer]
	Wheel       engine.EventWithArg[Wheel]
}

// PickResult is a successful scene pick: the world-space hit point and
// the name of the hit object.
type PickResult struct {
	Point rl.Vector3
	Name  string
}

// Picker resolves a screen point to a world hit. A false return means the
// ray hit nothing.
type Picker interface {
	Pick(x, y float32) (PickResult, bool)
}
