package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"walker3d/internal/input"
)

// keyMap pairs the raylib keys the game cares about with their input
// package names.
var keyMap = []struct {
	raylib int32
	key    input.Key
}{
	{rl.KeyW, input.KeyW},
	{rl.KeyS, input.KeyS},
	{rl.KeyA, input.KeyA},
	{rl.KeyD, input.KeyD},
	{rl.KeyUp, input.KeyArrowUp},
	{rl.KeyDown, input.KeyArrowDown},
	{rl.KeyLeft, input.KeyArrowLeft},
	{rl.KeyRight, input.KeyArrowRight},
	{rl.KeySpace, input.KeySpace},
}

// mousePointerID is the pointer id used for the mouse; touch ids are
// shifted past it.
const mousePointerID = 0

// inputPoller turns raylib's polled input state into discrete events on
// the input streams, once per render frame.
type inputPoller struct {
	mouseDown bool
	mouseLast rl.Vector2

	touchLast map[int]rl.Vector2
}

func (p *inputPoller) poll(ev *input.Events) {
	p.pollKeyboard(ev)
	p.pollMouse(ev)
	p.pollWheel(ev)
	p.pollTouch(ev)
}

func (p *inputPoller) pollKeyboard(ev *input.Events) {
	for _, m := range keyMap {
		if rl.IsKeyPressed(m.raylib) {
			ev.KeyDown.Invoke(m.key)
		}
		if rl.IsKeyReleased(m.raylib) {
			ev.KeyUp.Invoke(m.key)
		}
	}
}

func (p *inputPoller) pollMouse(ev *input.Events) {
	pos := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		p.mouseDown = true
		p.mouseLast = pos
		ev.PointerDown.Invoke(input.Pointer{
			ID: mousePointerID, Kind: input.PointerMouse, X: pos.X, Y: pos.Y,
		})
		return
	}

	if p.mouseDown && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		if pos.X != p.mouseLast.X || pos.Y != p.mouseLast.Y {
			p.mouseLast = pos
			ev.PointerMove.Invoke(input.Pointer{
				ID: mousePointerID, Kind: input.PointerMouse, X: pos.X, Y: pos.Y,
			})
		}
		return
	}

	if p.mouseDown && rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		p.mouseDown = false
		ev.PointerUp.Invoke(input.Pointer{
			ID: mousePointerID, Kind: input.PointerMouse, X: pos.X, Y: pos.Y,
		})
	}
}

func (p *inputPoller) pollWheel(ev *input.Events) {
	delta := rl.GetMouseWheelMove()
	if delta == 0 {
		return
	}
	ev.Wheel.Invoke(input.Wheel{
		Delta:    delta,
		Modifier: rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
	})
}

func (p *inputPoller) pollTouch(ev *input.Events) {
	if p.touchLast == nil {
		p.touchLast = make(map[int]rl.Vector2)
	}

	count := int(rl.GetTouchPointCount())
	seen := make(map[int]bool, count)

	for i := 0; i < count; i++ {
		id := int(rl.GetTouchPointId(int32(i))) + mousePointerID + 1
		pos := rl.GetTouchPosition(int32(i))
		seen[id] = true

		last, known := p.touchLast[id]
		if !known {
			p.touchLast[id] = pos
			ev.PointerDown.Invoke(input.Pointer{
				ID: id, Kind: input.PointerTouch, X: pos.X, Y: pos.Y,
			})
			continue
		}
		if pos.X != last.X || pos.Y != last.Y {
			p.touchLast[id] = pos
			ev.PointerMove.Invoke(input.Pointer{
				ID: id, Kind: input.PointerTouch, X: pos.X, Y: pos.Y,
			})
		}
	}

	for id, last := range p.touchLast {
		if seen[id] {
			continue
		}
		delete(p.touchLast, id)
		ev.PointerUp.Invoke(input.Pointer{
			ID: id, Kind: input.PointerTouch, X: last.X, Y: last.Y,
		})
	}
}
