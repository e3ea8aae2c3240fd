package locomotion

import "time"

// Tuning holds every locomotion constant. Values are loaded by the config
// package; DefaultTuning is the authoritative set of defaults.
type Tuning struct {
	// Movement
	OnGroundSpeed float32 // units/sec while grounded
	InAirSpeed    float32 // units/sec of air control
	JumpHeight    float32 // apex height of a jump, in units
	TurnSpeed     float32 // rad/sec for keyboard turn and seek turning
	Gravity       float32 // units/sec^2, positive = down
	EyeHeight     float32 // head pivot above body center

	// Look / drag
	YawPerPixel        float32 // radians of yaw per pixel of drag
	PitchPerPixel      float32 // radians of pitch per pixel of drag
	MaxPitch           float32 // pitch clamp, radians
	MouseDragThreshold float32 // pixels before a mouse gesture becomes a drag
	TouchDragThreshold float32 // pixels before a touch gesture becomes a drag

	// Dolly (pinch / modified wheel)
	PinchDeadzone  float32 // pixels of pinch delta ignored per event
	DollyPerPixel  float32 // forward velocity impulse per pinch pixel
	WheelDollyStep float32 // forward velocity impulse per wheel notch

	// Click-to-move
	StopDistance float32       // arrival radius around the target
	SlowRadius   float32       // approach distance where speed tapers off
	SeekStrength float32       // magnitude of the seek intent vector
	StallEpsilon float32       // minimum distance improvement that counts as progress
	StallTimeout time.Duration // give up after this long without progress

	// Camera
	LookAhead float32 // distance of the camera aim point ahead of the head
}

func DefaultTuning() Tuning {
	return Tuning{
		OnGroundSpeed: 8.0,
		InAirSpeed:    4.0,
		JumpHeight:    1.5,
		TurnSpeed:     4.0,
		Gravity:       20.0,
		EyeHeight:     1.6,

		YawPerPixel:        0.005,
		PitchPerPixel:      0.005,
		MaxPitch:           1.2,
		MouseDragThreshold: 3,
		TouchDragThreshold: 10,

		PinchDeadzone:  2.0,
		DollyPerPixel:  0.05,
		WheelDollyStep: 1.0,

		StopDistance: 0.35,
		SlowRadius:   1.2,
		SeekStrength: 1.0,
		StallEpsilon: 0.05,
		StallTimeout: 600 * time.Millisecond,

		LookAhead: 4.0,
	}
}
