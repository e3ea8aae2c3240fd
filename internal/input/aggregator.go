package input

import (
	"math"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"walker3d/internal/locomotion"
)

// pointerState tracks one active pointer between down and up.
type pointerState struct {
	kind     PointerKind
	startX   float32
	startY   float32
	lastX    float32
	lastY    float32
	dragging bool
	pinched  bool
}

// Aggregator normalizes keyboard, pointer and multi-touch events into the
// shared Intent. Handlers are invoked synchronously by the host event
// dispatch; mutations are visible to the next physics substep.
type Aggregator struct {
	Intent Intent

	tun    locomotion.Tuning
	log    zerolog.Logger
	picker Picker

	// NonNavigablePrefixes filters picked objects by name; hits on objects
	// whose name starts with one of these are dropped.
	NonNavigablePrefixes []string

	onTarget func(rl.Vector3)
	onCancel func()

	moveHeld []Key // move-axis keys in press order; last one drives
	turnHeld []Key

	pointers    map[int]*pointerState
	touchOrder  []int // active touch pointer IDs in down order
	pinchActive bool
	pinchDist   float32

	unsubscribe []func()
}

func NewAggregator(tun locomotion.Tuning, picker Picker, log zerolog.Logger) *Aggregator {
	return &Aggregator{
		tun:                  tun,
		log:                  log,
		picker:               picker,
		NonNavigablePrefixes: []string{"ui", "panel"},
		pointers:             make(map[int]*pointerState),
	}
}

// SetTargetHandler registers the callback invoked with the world point of
// a qualifying click or tap.
func (a *Aggregator) SetTargetHandler(fn func(rl.Vector3)) {
	a.onTarget = fn
}

// SetCancelHandler registers the callback invoked when drag, keyboard
// movement or pinch input must cancel an active click target.
func (a *Aggregator) SetCancelHandler(fn func()) {
	a.onCancel = fn
}

// Attach subscribes to every input stream. The subscriptions live until
// Dispose.
func (a *Aggregator) Attach(ev *Events) {
	sub := func(remove func()) { a.unsubscribe = append(a.unsubscribe, remove) }

	h1 := ev.KeyDown.AddListener(a.handleKeyDown)
	sub(func() { ev.KeyDown.RemoveListener(h1) })
	h2 := ev.KeyUp.AddListener(a.handleKeyUp)
	sub(func() { ev.KeyUp.RemoveListener(h2) })
	h3 := ev.PointerDown.AddListener(a.handlePointerDown)
	sub(func() { ev.PointerDown.RemoveListener(h3) })
	h4 := ev.PointerMove.AddListener(a.handlePointerMove)
	sub(func() { ev.PointerMove.RemoveListener(h4) })
	h5 := ev.PointerUp.AddListener(a.handlePointerUp)
	sub(func() { ev.PointerUp.RemoveListener(h5) })
	h6 := ev.Wheel.AddListener(a.handleWheel)
	sub(func() { ev.Wheel.RemoveListener(h6) })
}

// Dispose unregisters every event subscription. No further mutation
// happens after it returns.
func (a *Aggregator) Dispose() {
	for _, remove := range a.unsubscribe {
		remove()
	}
	a.unsubscribe = nil
}

func moveDirection(k Key) float32 {
	switch k {
	case KeyW, KeyArrowUp:
		return 1
	case KeyS, KeyArrowDown:
		return -1
	}
	return 0
}

func turnDirection(k Key) float32 {
	switch k {
	case KeyA, KeyArrowLeft:
		return -1
	case KeyD, KeyArrowRight:
		return 1
	}
	return 0
}

func (a *Aggregator) handleKeyDown(k Key) {
	if d := moveDirection(k); d != 0 {
		a.moveHeld = holdKey(a.moveHeld, k)
		a.Intent.MoveAxis = d
		a.cancelSeek()
		return
	}
	if d := turnDirection(k); d != 0 {
		a.turnHeld = holdKey(a.turnHeld, k)
		a.Intent.TurnAxis = d
		a.cancelSeek()
		return
	}
	if k == KeySpace {
		a.Intent.WantJump = true
	}
}

// handleKeyUp releases a key. The axis only resets when no other key for
// the same axis is still held; otherwise the most recently pressed of the
// remaining keys drives it.
func (a *Aggregator) handleKeyUp(k Key) {
	if moveDirection(k) != 0 {
		a.moveHeld = releaseKey(a.moveHeld, k)
		if n := len(a.moveHeld); n > 0 {
			a.Intent.MoveAxis = moveDirection(a.moveHeld[n-1])
		} else {
			a.Intent.MoveAxis = 0
		}
		return
	}
	if turnDirection(k) != 0 {
		a.turnHeld = releaseKey(a.turnHeld, k)
		if n := len(a.turnHeld); n > 0 {
			a.Intent.TurnAxis = turnDirection(a.turnHeld[n-1])
		} else {
			a.Intent.TurnAxis = 0
		}
	}
}

func holdKey(held []Key, k Key) []Key {
	return append(releaseKey(held, k), k)
}

func releaseKey(held []Key, k Key) []Key {
	for i, h := range held {
		if h == k {
			return append(held[:i], held[i+1:]...)
		}
	}
	return held
}

func (a *Aggregator) handlePointerDown(p Pointer) {
	ps := &pointerState{
		kind:   p.Kind,
		startX: p.X, startY: p.Y,
		lastX: p.X, lastY: p.Y,
	}
	a.pointers[p.ID] = ps

	if p.Kind == PointerTouch {
		a.touchOrder = append(a.touchOrder, p.ID)
		if len(a.touchOrder) == 2 {
			a.beginPinch()
		}
	}
}

func (a *Aggregator) beginPinch() {
	first := a.pointers[a.touchOrder[0]]
	second := a.pointers[a.touchOrder[1]]
	first.pinched = true
	second.pinched = true
	a.pinchActive = true
	a.pinchDist = pointerDistance(first, second)
}

func (a *Aggregator) handlePointerMove(p Pointer) {
	ps, ok := a.pointers[p.ID]
	if !ok {
		return
	}

	if a.pinchActive && ps.pinched {
		ps.lastX, ps.lastY = p.X, p.Y
		a.updatePinch()
		return
	}

	if !ps.dragging {
		dx := p.X - ps.startX
		dy := p.Y - ps.startY
		threshold := a.tun.MouseDragThreshold
		if ps.kind == PointerTouch {
			threshold = a.tun.TouchDragThreshold
		}
		if dx*dx+dy*dy < threshold*threshold {
			// Below the drag threshold the gesture is still a
			// potential click; movement is ignored.
			return
		}
		ps.dragging = true
		ps.lastX, ps.lastY = p.X, p.Y
		a.cancelSeek()
		return
	}

	dx := p.X - ps.lastX
	dy := p.Y - ps.lastY
	ps.lastX, ps.lastY = p.X, p.Y

	a.Intent.Yaw -= dx * a.tun.YawPerPixel
	a.Intent.Pitch = clampf(a.Intent.Pitch-dy*a.tun.PitchPerPixel, -a.tun.MaxPitch, a.tun.MaxPitch)
}

// updatePinch issues a dolly impulse when the inter-finger distance moved
// beyond the deadzone since the last issued command.
func (a *Aggregator) updatePinch() {
	if len(a.touchOrder) < 2 {
		return
	}
	first := a.pointers[a.touchOrder[0]]
	second := a.pointers[a.touchOrder[1]]
	dist := pointerDistance(first, second)
	delta := dist - a.pinchDist
	if delta > a.tun.PinchDeadzone || delta < -a.tun.PinchDeadzone {
		a.Intent.Dolly += delta * a.tun.DollyPerPixel
		a.pinchDist = dist
		a.cancelSeek()
	}
}

func (a *Aggregator) handlePointerUp(p Pointer) {
	ps, ok := a.pointers[p.ID]
	if !ok {
		return
	}
	delete(a.pointers, p.ID)

	if p.Kind == PointerTouch {
		a.touchOrder = releaseTouch(a.touchOrder, p.ID)
		if len(a.touchOrder) < 2 {
			a.pinchActive = false
		}
	}

	// Released before crossing the drag threshold and outside any pinch:
	// this is a click/tap, so try a scene pick at the release point.
	if ps.dragging || ps.pinched {
		return
	}
	a.pick(p.X, p.Y)
}

func releaseTouch(order []int, id int) []int {
	for i, t := range order {
		if t == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

// pick performs a scene pick and requests a seek target when the hit is a
// navigable surface. Missed picks and filtered objects are dropped
// silently.
func (a *Aggregator) pick(x, y float32) {
	if a.picker == nil || a.onTarget == nil {
		return
	}
	hit, ok := a.picker.Pick(x, y)
	if !ok {
		return
	}
	if !a.navigable(hit.Name) {
		a.log.Debug().Str("name", hit.Name).Msg("pick filtered")
		return
	}
	a.onTarget(hit.Point)
}

func (a *Aggregator) navigable(name string) bool {
	lower := strings.ToLower(name)
	for _, prefix := range a.NonNavigablePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	return true
}

func (a *Aggregator) handleWheel(w Wheel) {
	if !w.Modifier || w.Delta == 0 {
		return
	}
	a.Intent.Dolly += w.Delta * a.tun.WheelDollyStep
	a.cancelSeek()
}

func (a *Aggregator) cancelSeek() {
	if a.onCancel != nil {
		a.onCancel()
	}
}

func pointerDistance(a, b *pointerState) float32 {
	dx := float64(a.lastX - b.lastX)
	dy := float64(a.lastY - b.lastY)
	return float32(math.Sqrt(dx*dx + dy*dy))
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
