package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/keygate/internal/application/sim"
	"github.com/younwookim/keygate/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
	cmd   int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the commands to apply before the current frame, the frame's
// input, and advances. ok is false once every frame has been read.
func (r *Replayer) Next() (cmds []Command, input system.InputState, ok bool) {
	if r.frame >= len(r.data.Frames) {
		return nil, system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	for r.cmd < len(r.data.Commands) && r.data.Commands[r.cmd].F <= fi.F {
		cmds = append(cmds, r.data.Commands[r.cmd])
		r.cmd++
	}
	r.frame++

	return cmds, system.InputState{
		MoveLeft:  fi.L,
		MoveRight: fi.R,
		Jump:      fi.J,
		Attack:    fi.A,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.cmd = 0
}

// Apply runs one recorded command against the driver
func Apply(d *sim.Driver, cmd Command) error {
	switch cmd.Op {
	case OpStart:
		d.Start()
	case OpAnswer:
		req, ok := d.PendingQuiz()
		if !ok {
			return fmt.Errorf("frame %d: %w", cmd.F, sim.ErrNoPendingQuiz)
		}
		_, err := d.AnswerQuiz(req.ID, cmd.Answer)
		return err
	case OpResolve, OpCancel:
		req, ok := d.PendingQuiz()
		if !ok {
			return fmt.Errorf("frame %d: %w", cmd.F, sim.ErrNoPendingQuiz)
		}
		return d.ResolveQuiz(req.ID, cmd.Op == OpResolve && cmd.Correct)
	case OpAdvance:
		return d.Advance()
	case OpRestart:
		d.Restart()
	case OpPause:
		d.TogglePause()
	case OpLoad:
		d.LoadLevel(cmd.Level)
	default:
		return fmt.Errorf("frame %d: unknown command %q", cmd.F, cmd.Op)
	}
	return nil
}

// Run replays data against a fresh driver and returns the final snapshot.
// The driver must have been built with the replay's seed.
func Run(d *sim.Driver, data ReplayData) (sim.Snapshot, error) {
	if len(data.Frames) == 0 {
		return sim.Snapshot{}, ErrNoFrames
	}

	d.LoadLevel(data.Level)
	r := NewReplayer(data)
	for {
		cmds, input, ok := r.Next()
		if !ok {
			break
		}
		for _, c := range cmds {
			if err := Apply(d, c); err != nil {
				return d.Snapshot(), err
			}
		}
		d.Tick(input)
	}
	return d.Snapshot(), nil
}
