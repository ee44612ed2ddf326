package sim

import (
	"time"

	"github.com/younwookim/keygate/internal/application/state"
	"github.com/younwookim/keygate/internal/domain/entity"
)

// Session is the world-level state that survives level loads
type Session struct {
	LevelIndex int
	Phase      state.GameState
	Paused     bool
	UserPaused bool // paused from the pause command rather than by the state machine
	Started    bool
}

// State is the complete simulation state owned by the driver
type State struct {
	Session Session
	Player  *entity.Player
	Level   *entity.Level
	Clock   time.Duration
	Tick    uint64
}

// Snapshot is a read-only copy of the state for the renderer.
// It shares nothing with the live state.
type Snapshot struct {
	Tick  uint64
	Clock time.Duration

	LevelIndex int
	LevelCount int
	LevelID    string
	LevelName  string
	Attack     entity.AttackMode

	Phase   state.GameState
	Paused  bool
	Started bool

	Player       entity.Player
	Invulnerable bool

	Platforms   []entity.Platform
	Enemies     []entity.Enemy
	Projectiles []entity.Projectile
	Key         entity.Key
	Door        entity.Door

	// Quiz is set while a question is waiting for an answer
	Quiz *QuizRequest
}

func (d *Driver) snapshot() Snapshot {
	s := Snapshot{
		Tick:         d.tick,
		Clock:        d.clock,
		LevelIndex:   d.session.LevelIndex,
		LevelCount:   len(d.levels),
		LevelID:      d.level.Template.ID,
		LevelName:    d.level.Template.Name,
		Attack:       d.level.Template.Attack,
		Phase:        d.session.Phase,
		Paused:       d.session.Paused,
		Started:      d.session.Started,
		Player:       *d.player,
		Invulnerable: d.player.IsInvulnerable(d.clock),
		Platforms:    make([]entity.Platform, len(d.level.Platforms)),
		Enemies:      make([]entity.Enemy, len(d.level.Enemies)),
		Projectiles:  make([]entity.Projectile, len(d.level.Projectiles)),
		Key:          d.level.Key,
		Door:         d.level.Door,
	}
	copy(s.Platforms, d.level.Platforms)
	for i, e := range d.level.Enemies {
		s.Enemies[i] = *e
	}
	for i, p := range d.level.Projectiles {
		s.Projectiles[i] = *p
	}
	if d.pending != nil {
		req := d.pending.request
		s.Quiz = &req
	}
	return s
}
