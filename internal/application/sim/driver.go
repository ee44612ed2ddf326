// Package sim runs the fixed-step platformer simulation.
//
// A Driver owns every piece of live state for the current level. Each Tick
// reads one input snapshot and runs, in order: player movement, platform
// landing, enemy patrol, attacks, projectiles, contact damage and the
// key/door triggers. The renderer reads Snapshot; the UI talks back through
// the quiz and command methods.
package sim

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/younwookim/keygate/internal/application/state"
	"github.com/younwookim/keygate/internal/application/system"
	"github.com/younwookim/keygate/internal/domain/entity"
	"github.com/younwookim/keygate/internal/domain/quiz"
	"github.com/younwookim/keygate/internal/infrastructure/config"
)

var (
	// ErrNoLevels is returned when a driver is built without levels
	ErrNoLevels = errors.New("no levels")
	// ErrNoPendingQuiz is returned when a quiz answer does not match the open request
	ErrNoPendingQuiz = errors.New("no pending quiz with that id")
	// ErrNotComplete is returned by Advance outside the LevelComplete phase
	ErrNotComplete = errors.New("level not complete")
)

// Collaborators are the driver's outward-facing dependencies.
// Nil fields fall back to no-op implementations.
type Collaborators struct {
	Quiz     QuizPresenter
	Notifier Notifier
	Logger   *slog.Logger
	Rand     *rand.Rand
}

type pendingQuiz struct {
	request  QuizRequest
	question quiz.Question
}

// Driver is the simulation driver
type Driver struct {
	config *config.GameSettings
	levels []*entity.LevelTemplate
	pool   *quiz.Pool
	rng    *rand.Rand

	physics *system.PhysicsSystem
	combat  *system.CombatSystem

	quizUI   QuizPresenter
	notifier Notifier
	log      *slog.Logger

	session Session
	player  *entity.Player
	level   *entity.Level
	clock   time.Duration
	tick    uint64
	step    time.Duration

	pending    *pendingQuiz
	nextQuizID uint64
}

// New creates a driver with level 0 loaded. The session is not started.
func New(cfg *config.GameSettings, levels []*entity.LevelTemplate, pool *quiz.Pool, c Collaborators) (*Driver, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	if pool == nil {
		return nil, quiz.ErrEmptyPool
	}
	if cfg.Display.Framerate <= 0 {
		return nil, fmt.Errorf("framerate must be positive, got %d", cfg.Display.Framerate)
	}

	d := &Driver{
		config:   cfg,
		levels:   levels,
		pool:     pool,
		rng:      c.Rand,
		physics:  system.NewPhysicsSystem(&cfg.World),
		combat:   system.NewCombatSystem(cfg),
		quizUI:   c.Quiz,
		notifier: c.Notifier,
		log:      c.Logger,
		step:     time.Second / time.Duration(cfg.Display.Framerate),
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(1))
	}
	if d.quizUI == nil {
		d.quizUI = QuizPresenterFunc(func(QuizRequest) {})
	}
	if d.notifier == nil {
		d.notifier = NopNotifier{}
	}
	if d.log == nil {
		d.log = slog.New(slog.DiscardHandler)
	}

	d.combat.OnEnemyHit = func(e *entity.Enemy, killed bool) {
		if killed {
			d.log.Debug("enemy defeated", "enemy", e.ID, "kind", e.Kind)
			d.notify(EventEnemyDefeated, e.ID)
		}
	}
	d.combat.OnPlayerHit = func(p *entity.Player) {
		d.log.Debug("player hurt", "health", p.Health)
		d.notify(EventPlayerHurt, 0)
	}

	d.load(0)
	return d, nil
}

// Start begins the session
func (d *Driver) Start() {
	if d.session.Started {
		return
	}
	d.session.Started = true
	d.log.Info("session started", "level", d.session.LevelIndex)
}

// Tick advances the simulation by one fixed step.
// It does nothing before Start or while paused.
func (d *Driver) Tick(input system.InputState) {
	if !d.session.Started || d.session.Paused {
		return
	}
	d.tick++
	d.clock += d.step

	if d.physics.Move(d.player, input) {
		d.respawn()
	}
	d.physics.Land(d.player, d.level.Platforms)

	d.combat.Patrol(d.level.Enemies)
	d.combat.Attack(d.player, d.level, input.Attack, d.clock)
	d.combat.UpdateProjectiles(d.level)
	if d.combat.CheckContact(d.player, d.level, d.clock) && d.player.IsDefeated() {
		d.defeat()
		return
	}

	switch system.CheckProgress(d.player, d.level) {
	case system.ProgressKeyTouched:
		d.openQuiz()
	case system.ProgressDoorReached:
		d.completeLevel()
	}
}

// LoadLevel loads level i, clamped into range, and resumes play.
// Every per-level flag is rebuilt from the template.
func (d *Driver) LoadLevel(i int) {
	d.load(d.clamp(i))
}

// Restart reloads the first level. It is the way out of GameOver.
func (d *Driver) Restart() {
	d.log.Info("restart", "from", d.session.LevelIndex, "phase", d.session.Phase)
	d.load(0)
	d.session.Started = true
}

// Advance leaves LevelComplete for the next level, wrapping to the first
// level after the last one
func (d *Driver) Advance() error {
	if d.session.Phase != state.StateLevelComplete {
		return ErrNotComplete
	}

	next := d.session.LevelIndex + 1
	if next >= len(d.levels) {
		next = 0
		d.log.Info("game completed")
		d.notify(EventGameCompleted, 0)
	}
	d.load(next)
	if next != 0 {
		d.notifyLevel(EventLevelAdvanced, next)
	}
	return nil
}

// TogglePause pauses or resumes play. It only applies while playing.
func (d *Driver) TogglePause() {
	if !d.session.Started || d.session.Phase != state.StatePlaying {
		return
	}
	d.session.UserPaused = !d.session.UserPaused
	d.session.Paused = d.session.UserPaused
}

// ResolveQuiz answers the outstanding quiz request
func (d *Driver) ResolveQuiz(id uint64, correct bool) error {
	if d.pending == nil || d.pending.request.ID != id {
		return ErrNoPendingQuiz
	}
	d.pending = nil

	if correct {
		d.level.Key.Collect()
		d.log.Info("key collected", "level", d.session.LevelIndex)
		d.notifyLevel(EventKeyCollected, d.session.LevelIndex)
	} else {
		d.level.Key.Release()
		d.log.Info("wrong answer", "level", d.session.LevelIndex)
		d.notifyLevel(EventKeyAnswerIncorrect, d.session.LevelIndex)
	}

	d.session.Phase = state.StatePlaying
	d.session.Paused = false
	d.session.UserPaused = false
	return nil
}

// AnswerQuiz checks a typed answer against the open question and resolves it.
// It reports whether the answer was correct.
func (d *Driver) AnswerQuiz(id uint64, answer string) (bool, error) {
	if d.pending == nil || d.pending.request.ID != id {
		return false, ErrNoPendingQuiz
	}
	correct := d.pending.question.Check(answer)
	return correct, d.ResolveQuiz(id, correct)
}

// CancelQuiz closes the open question as a wrong answer
func (d *Driver) CancelQuiz(id uint64) error {
	return d.ResolveQuiz(id, false)
}

// PendingQuiz returns the outstanding quiz request, if any
func (d *Driver) PendingQuiz() (QuizRequest, bool) {
	if d.pending == nil {
		return QuizRequest{}, false
	}
	return d.pending.request, true
}

// ReplaceContent swaps in reloaded levels and questions. The current level
// keeps running; new templates apply from the next load.
func (d *Driver) ReplaceContent(levels []*entity.LevelTemplate, pool *quiz.Pool) error {
	if len(levels) == 0 {
		return ErrNoLevels
	}
	d.levels = levels
	if pool != nil {
		d.pool = pool
	}
	d.log.Info("content replaced", "levels", len(levels))
	return nil
}

// Session returns the session flags
func (d *Driver) Session() Session {
	return d.session
}

// State returns a deep copy of the full simulation state
func (d *Driver) State() State {
	p := *d.player
	return State{
		Session: d.session,
		Player:  &p,
		Level:   d.level.Clone(),
		Clock:   d.clock,
		Tick:    d.tick,
	}
}

// Snapshot returns a read-only copy of the state for drawing
func (d *Driver) Snapshot() Snapshot {
	return d.snapshot()
}

// Step returns the simulated time per tick
func (d *Driver) Step() time.Duration {
	return d.step
}

func (d *Driver) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(d.levels) {
		return len(d.levels) - 1
	}
	return i
}

func (d *Driver) load(i int) {
	i = d.clamp(i)
	tpl := d.levels[i]
	pc := d.config.Player

	d.level = tpl.Instantiate()
	d.player = entity.NewPlayer(tpl.SpawnX, tpl.SpawnY, pc.Width, pc.Height, pc.Speed, pc.JumpImpulse, pc.MaxHealth)
	d.clock = 0
	d.pending = nil

	d.session.LevelIndex = i
	d.session.Phase = state.StatePlaying
	d.session.Paused = false
	d.session.UserPaused = false

	d.log.Info("level loaded", "index", i, "id", tpl.ID, "enemies", len(tpl.Enemies))
}

func (d *Driver) respawn() {
	tpl := d.level.Template
	d.player.Respawn(tpl.SpawnX, tpl.SpawnY)
	d.level.ClearProjectiles()
	d.log.Debug("player respawned", "level", d.session.LevelIndex)
	d.notifyLevel(EventRespawned, d.session.LevelIndex)
}

func (d *Driver) defeat() {
	d.session.Phase = state.StateGameOver
	d.session.Paused = true
	d.log.Info("player defeated", "level", d.session.LevelIndex)
	d.notifyLevel(EventDefeated, d.session.LevelIndex)
}

func (d *Driver) openQuiz() {
	d.level.Key.Take()
	d.nextQuizID++
	d.pending = &pendingQuiz{
		request:  QuizRequest{ID: d.nextQuizID},
		question: d.pool.Pick(d.rng),
	}
	d.pending.request.Prompt = d.pending.question.Prompt

	d.session.Phase = state.StateQuizPending
	d.session.Paused = true
	d.log.Info("quiz opened", "id", d.nextQuizID, "level", d.session.LevelIndex)

	// The presenter may resolve synchronously
	d.quizUI.PresentQuestion(d.pending.request)
}

func (d *Driver) completeLevel() {
	d.session.Phase = state.StateLevelComplete
	d.session.Paused = true
	d.log.Info("level complete", "index", d.session.LevelIndex)
	d.notifyLevel(EventLevelComplete, d.session.LevelIndex)
}

func (d *Driver) notify(kind EventKind, enemy entity.EntityID) {
	d.notifier.Notify(Event{Kind: kind, Level: d.session.LevelIndex, Enemy: enemy})
}

func (d *Driver) notifyLevel(kind EventKind, level int) {
	d.notifier.Notify(Event{Kind: kind, Level: level})
}
