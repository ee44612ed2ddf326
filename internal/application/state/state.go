package state

// GameState is the level state machine's current phase
type GameState int

const (
	StatePlaying GameState = iota
	StateQuizPending
	StateLevelComplete
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateQuizPending:
		return "QuizPending"
	case StateLevelComplete:
		return "LevelComplete"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the phase waits for an explicit command to leave
func (s GameState) Terminal() bool {
	return s == StateLevelComplete || s == StateGameOver
}
