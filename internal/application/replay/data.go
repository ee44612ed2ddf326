package replay

// Version is written into every replay file
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // MoveLeft
	R bool `json:"r,omitempty"` // MoveRight
	J bool `json:"j,omitempty"` // Jump
	A bool `json:"a,omitempty"` // Attack
}

// Op is a driver command issued from outside the tick
type Op string

const (
	OpStart   Op = "start"
	OpAnswer  Op = "answer"  // typed answer to the open question
	OpResolve Op = "resolve" // pre-judged answer to the open question
	OpCancel  Op = "cancel"
	OpAdvance Op = "advance"
	OpRestart Op = "restart"
	OpPause   Op = "pause"
	OpLoad    Op = "load"
)

// Command records a driver command and the frame it was applied before
type Command struct {
	F       int    `json:"f"`
	Op      Op     `json:"op"`
	Answer  string `json:"answer,omitempty"`
	Correct bool   `json:"correct,omitempty"`
	Level   int    `json:"level,omitempty"`
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Session   string       `json:"session"`
	Seed      int64        `json:"seed"`
	Level     int          `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
	Commands  []Command    `json:"commands,omitempty"`
}
