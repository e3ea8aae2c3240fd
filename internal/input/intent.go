package input

// Intent is the aggregated movement intent. The aggregator is its only
// writer apart from yaw, which the locomotion controller also integrates
// (keyboard turn rate and seek turning).
type Intent struct {
	MoveAxis float32 // forward/back, in [-1, 1]
	TurnAxis float32 // yaw rate, in [-1, 1]
	Yaw      float32 // radians, accumulated
	Pitch    float32 // radians, clamped to [-MaxPitch, MaxPitch]
	WantJump bool    // transient, consumed by the state machine when grounded
	Dolly    float32 // pending forward velocity impulse, consumed per step
}

// Axes implements locomotion.IntentSource.
func (i *Intent) Axes() (move, turn float32) {
	return i.MoveAxis, i.TurnAxis
}

// Look implements locomotion.IntentSource.
func (i *Intent) Look() (yaw, pitch float32) {
	return i.Yaw, i.Pitch
}

func (i *Intent) SetYaw(yaw float32) {
	i.Yaw = yaw
}

// ConsumeJump reports and clears the jump flag.
func (i *Intent) ConsumeJump() bool {
	want := i.WantJump
	i.WantJump = false
	return want
}

// ConsumeDolly returns and clears the pending dolly impulse.
func (i *Intent) ConsumeDolly() float32 {
	d := i.Dolly
	i.Dolly = 0
	return d
}
