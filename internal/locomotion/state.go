package locomotion

// State is the discrete movement state of the character.
type State int

const (
	// StateInAir is the initial state: no ground support.
	StateInAir State = iota
	// StateOnGround means the body rests on a surface.
	StateOnGround
	// StateStartJump lasts exactly one physics step; the jump impulse is
	// applied during it, then the state falls back to in-air handling.
	StateStartJump
)

func (s State) String() string {
	switch s {
	case StateInAir:
		return "InAir"
	case StateOnGround:
		return "OnGround"
	case StateStartJump:
		return "StartJump"
	}
	return "Unknown"
}

// NextState is the pure transition function, evaluated once per physics
// step from a fresh support query. wantJump is only honored from the
// grounded state; the caller consumes the jump flag on that transition.
func NextState(current State, supported, wantJump bool) State {
	switch current {
	case StateInAir:
		if supported {
			return StateOnGround
		}
		return StateInAir
	case StateOnGround:
		if !supported {
			return StateInAir
		}
		if wantJump {
			return StateStartJump
		}
		return StateOnGround
	case StateStartJump:
		return StateInAir
	}
	return StateInAir
}
