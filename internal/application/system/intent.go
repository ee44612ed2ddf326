package system

// InputState is the flat input intent read by the simulation each tick.
// Keyboard and pointer sources are merged before it reaches the simulation.
type InputState struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
	Attack    bool
}

// Merge combines two sources; a button held on either counts as held
func (in InputState) Merge(other InputState) InputState {
	return InputState{
		MoveLeft:  in.MoveLeft || other.MoveLeft,
		MoveRight: in.MoveRight || other.MoveRight,
		Jump:      in.Jump || other.Jump,
		Attack:    in.Attack || other.Attack,
	}
}

// HorizontalDir returns -1, 0 or +1.
// Right overrides left when both are held.
func (in InputState) HorizontalDir() int {
	if in.MoveRight {
		return 1
	}
	if in.MoveLeft {
		return -1
	}
	return 0
}
