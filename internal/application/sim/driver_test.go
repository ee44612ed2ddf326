package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/keygate/internal/application/state"
	"github.com/younwookim/keygate/internal/application/system"
	"github.com/younwookim/keygate/internal/domain/entity"
	"github.com/younwookim/keygate/internal/domain/quiz"
	"github.com/younwookim/keygate/internal/infrastructure/config"
)

type eventLog struct {
	events []Event
}

func (l *eventLog) Notify(ev Event) {
	l.events = append(l.events, ev)
}

func (l *eventLog) count(kind EventKind) int {
	n := 0
	for _, ev := range l.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

type quizLog struct {
	requests []QuizRequest
}

func (q *quizLog) PresentQuestion(req QuizRequest) {
	q.requests = append(q.requests, req)
}

func (q *quizLog) last() QuizRequest {
	return q.requests[len(q.requests)-1]
}

func createTestSettings() *config.GameSettings {
	return &config.GameSettings{
		Display: config.DisplayConfig{ScreenWidth: 900, ScreenHeight: 500, Scale: 1, Framerate: 60},
		World:   config.WorldConfig{Width: 900, Height: 500, Gravity: 0.9},
		Player:  config.PlayerConfig{Width: 48, Height: 64, Speed: 4.5, JumpImpulse: 13, MaxHealth: 3},
		Combat: config.CombatConfig{
			AttackCooldownMs:     280,
			InvulnerabilityMs:    900,
			AttackInvulnerableMs: 200,
			MeleeReach:           36,
			MeleeInsetTop:        8,
			MeleeInsetBottom:     4,
			Damage:               1,
			ContactDamage:        1,
		},
		Projectile: config.ProjectileConfig{Width: 16, Height: 6, Speed: 9, DespawnMargin: 20},
		Levels:     []string{"a", "b"},
		Questions:  "questions.yaml",
	}
}

func createTestTemplate(id string, attack entity.AttackMode, enemies ...entity.EnemyTemplate) *entity.LevelTemplate {
	return &entity.LevelTemplate{
		ID:     id,
		Name:   id,
		Attack: attack,
		SpawnX: 80,
		SpawnY: 356,
		Platforms: []entity.Platform{
			{Rect: entity.Rect{X: 0, Y: 420, W: 900, H: 80}},
		},
		Enemies: enemies,
		Key:     entity.Rect{X: 310, Y: 380, W: 28, H: 40},
		Door:    entity.Rect{X: 840, Y: 350, W: 48, H: 70},
	}
}

func slimeAt(x float64, hp int) entity.EnemyTemplate {
	return entity.EnemyTemplate{
		Kind:        entity.EnemySlime,
		Rect:        entity.Rect{X: x, Y: 372, W: 48, H: 48},
		Speed:       1.6,
		Health:      hp,
		Dir:         1,
		PatrolRange: 40,
	}
}

func createTestPool(t *testing.T) *quiz.Pool {
	t.Helper()
	pool, err := quiz.NewPool([]quiz.Question{
		{Prompt: "What is the capital of Indonesia?", Answers: []string{"Jakarta"}},
	})
	require.NoError(t, err)
	return pool
}

type testDriver struct {
	*Driver
	events *eventLog
	quiz   *quizLog
}

func createTestDriver(t *testing.T, levels ...*entity.LevelTemplate) *testDriver {
	t.Helper()
	if len(levels) == 0 {
		levels = []*entity.LevelTemplate{
			createTestTemplate("a", entity.AttackMelee),
			createTestTemplate("b", entity.AttackProjectile),
		}
	}
	events := &eventLog{}
	quizUI := &quizLog{}
	d, err := New(createTestSettings(), levels, createTestPool(t), Collaborators{
		Quiz:     quizUI,
		Notifier: events,
		Rand:     rand.New(rand.NewSource(42)),
	})
	require.NoError(t, err)
	return &testDriver{Driver: d, events: events, quiz: quizUI}
}

func TestNew(t *testing.T) {
	d := createTestDriver(t)

	s := d.Snapshot()
	assert.Equal(t, 0, s.LevelIndex)
	assert.Equal(t, 2, s.LevelCount)
	assert.Equal(t, state.StatePlaying, s.Phase)
	assert.False(t, s.Started)
	assert.Equal(t, 3, s.Player.Health)
	assert.Equal(t, 80.0, s.Player.X)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(createTestSettings(), nil, createTestPool(t), Collaborators{})
	assert.ErrorIs(t, err, ErrNoLevels)

	_, err = New(createTestSettings(), []*entity.LevelTemplate{createTestTemplate("a", entity.AttackMelee)}, nil, Collaborators{})
	assert.ErrorIs(t, err, quiz.ErrEmptyPool)
}

func TestDriver_TickBeforeStart(t *testing.T) {
	d := createTestDriver(t)

	d.Tick(system.InputState{MoveRight: true})

	assert.Equal(t, 80.0, d.Snapshot().Player.X)
	assert.Zero(t, d.Snapshot().Tick)
}

func TestDriver_LeftBoundClamp(t *testing.T) {
	tpl := createTestTemplate("a", entity.AttackMelee)
	tpl.SpawnX = 0
	d := createTestDriver(t, tpl)
	d.Start()

	d.Tick(system.InputState{MoveLeft: true})

	assert.Equal(t, 0.0, d.Snapshot().Player.X)
}

func TestDriver_ProjectileKillsEnemy(t *testing.T) {
	tpl := createTestTemplate("a", entity.AttackProjectile, slimeAt(150, 1))
	tpl.SpawnX = 100
	d := createTestDriver(t, tpl)
	d.Start()

	d.Tick(system.InputState{Attack: true})

	s := d.Snapshot()
	require.Len(t, s.Enemies, 1)
	assert.False(t, s.Enemies[0].Alive)
	assert.Empty(t, s.Projectiles)
	assert.Equal(t, 1, d.events.count(EventEnemyDefeated))
	assert.Equal(t, state.StatePlaying, s.Phase)
}

func TestDriver_KeyQuizDoor(t *testing.T) {
	tpl := createTestTemplate("a", entity.AttackMelee)
	tpl.SpawnX = 300
	d := createTestDriver(t, tpl)
	d.Start()

	d.Tick(system.InputState{})

	s := d.Snapshot()
	assert.Equal(t, state.StateQuizPending, s.Phase)
	assert.True(t, s.Paused)
	assert.True(t, s.Key.Taken)
	assert.False(t, s.Key.Collected)
	require.Len(t, d.quiz.requests, 1)
	require.NotNil(t, s.Quiz)
	assert.Equal(t, "What is the capital of Indonesia?", s.Quiz.Prompt)

	// paused while the question is open
	d.Tick(system.InputState{MoveRight: true})
	assert.Equal(t, 300.0, d.Snapshot().Player.X)

	require.NoError(t, d.ResolveQuiz(d.quiz.last().ID, true))

	s = d.Snapshot()
	assert.Equal(t, state.StatePlaying, s.Phase)
	assert.False(t, s.Paused)
	assert.True(t, s.Key.Collected)
	assert.Nil(t, s.Quiz)
	assert.Equal(t, 1, d.events.count(EventKeyCollected))

	for i := 0; i < 200 && d.Snapshot().Phase == state.StatePlaying; i++ {
		d.Tick(system.InputState{MoveRight: true})
		k := d.Snapshot().Key
		assert.True(t, !k.Collected || k.Taken)
	}

	s = d.Snapshot()
	assert.Equal(t, state.StateLevelComplete, s.Phase)
	assert.True(t, s.Paused)
	assert.Equal(t, 1, d.events.count(EventLevelComplete))
	assert.Len(t, d.quiz.requests, 1, "key must not re-trigger once collected")
}

func TestDriver_DoorLockedWithoutKey(t *testing.T) {
	d := createTestDriver(t)
	d.Start()
	d.player.X = 830

	d.Tick(system.InputState{})

	assert.Equal(t, state.StatePlaying, d.Snapshot().Phase)
}

func TestDriver_WrongAnswer(t *testing.T) {
	tpl := createTestTemplate("a", entity.AttackMelee)
	tpl.SpawnX = 300
	d := createTestDriver(t, tpl)
	d.Start()
	d.Tick(system.InputState{})

	correct, err := d.AnswerQuiz(d.quiz.last().ID, "Bandung")
	require.NoError(t, err)

	assert.False(t, correct)
	s := d.Snapshot()
	assert.Equal(t, state.StatePlaying, s.Phase)
	assert.False(t, s.Paused)
	assert.False(t, s.Key.Taken)
	assert.False(t, s.Key.Collected)
	assert.Equal(t, 1, d.events.count(EventKeyAnswerIncorrect))

	// still standing on the key, so the next tick asks again
	d.Tick(system.InputState{})
	assert.Equal(t, state.StateQuizPending, d.Snapshot().Phase)
	assert.Len(t, d.quiz.requests, 2)
}

func TestDriver_AnswerQuiz(t *testing.T) {
	tpl := createTestTemplate("a", entity.AttackMelee)
	tpl.SpawnX = 300
	d := createTestDriver(t, tpl)
	d.Start()
	d.Tick(system.InputState{})

	correct, err := d.AnswerQuiz(d.quiz.last().ID, "  jakarta ")
	require.NoError(t, err)

	assert.True(t, correct)
	assert.True(t, d.Snapshot().Key.Collected)
}

func TestDriver_QuizStaleAndCancel(t *testing.T) {
	tpl := createTestTemplate("a", entity.AttackMelee)
	tpl.SpawnX = 300
	d := createTestDriver(t, tpl)
	d.Start()

	assert.ErrorIs(t, d.ResolveQuiz(1, true), ErrNoPendingQuiz)

	d.Tick(system.InputState{})
	id := d.quiz.last().ID

	assert.ErrorIs(t, d.ResolveQuiz(id+1, true), ErrNoPendingQuiz)
	assert.Equal(t, state.StateQuizPending, d.Snapshot().Phase)

	require.NoError(t, d.CancelQuiz(id))
	assert.False(t, d.Snapshot().Key.Taken)

	// exactly one resolution per request
	assert.ErrorIs(t, d.ResolveQuiz(id, true), ErrNoPendingQuiz)
	_, ok := d.PendingQuiz()
	assert.False(t, ok)
}

func TestDriver_SynchronousPresenter(t *testing.T) {
	tpl := createTestTemplate("a", entity.AttackMelee)
	tpl.SpawnX = 300

	var d *Driver
	var resolveErr error
	presenter := QuizPresenterFunc(func(req QuizRequest) {
		_, resolveErr = d.AnswerQuiz(req.ID, "Jakarta")
	})
	d, err := New(createTestSettings(), []*entity.LevelTemplate{tpl}, createTestPool(t), Collaborators{Quiz: presenter})
	require.NoError(t, err)
	d.Start()

	d.Tick(system.InputState{})

	require.NoError(t, resolveErr)
	s := d.Snapshot()
	assert.Equal(t, state.StatePlaying, s.Phase)
	assert.True(t, s.Key.Collected)
}

func TestDriver_Defeat(t *testing.T) {
	d := createTestDriver(t, createTestTemplate("a", entity.AttackMelee, slimeAt(90, 3)))
	d.Start()
	d.player.Health = 1

	d.Tick(system.InputState{})

	s := d.Snapshot()
	assert.Equal(t, 0, s.Player.Health)
	assert.Equal(t, state.StateGameOver, s.Phase)
	assert.True(t, s.Paused)
	assert.Equal(t, 1, d.events.count(EventDefeated))

	tick := s.Tick
	d.Tick(system.InputState{MoveRight: true})
	assert.Equal(t, tick, d.Snapshot().Tick, "no ticks after defeat")

	d.TogglePause()
	assert.True(t, d.Snapshot().Paused, "pause toggle ignored in GameOver")

	d.Restart()
	s = d.Snapshot()
	assert.Equal(t, 0, s.LevelIndex)
	assert.Equal(t, state.StatePlaying, s.Phase)
	assert.False(t, s.Paused)
	assert.Equal(t, 3, s.Player.Health)
}

func TestDriver_InvulnerabilityAfterHit(t *testing.T) {
	d := createTestDriver(t, createTestTemplate("a", entity.AttackMelee, slimeAt(90, 3)))
	d.Start()

	d.Tick(system.InputState{})
	assert.Equal(t, 2, d.Snapshot().Player.Health)
	assert.True(t, d.Snapshot().Invulnerable)

	// 900ms is 54 ticks at 60Hz
	for i := 0; i < 53; i++ {
		d.Tick(system.InputState{})
	}
	assert.Equal(t, 2, d.Snapshot().Player.Health)
}

func TestDriver_FinalLevelWraps(t *testing.T) {
	d := createTestDriver(t)
	d.Start()
	d.LoadLevel(1)
	d.level.Key.Collect()
	d.player.X = 820

	d.Tick(system.InputState{})
	require.Equal(t, state.StateLevelComplete, d.Snapshot().Phase)

	require.NoError(t, d.Advance())

	s := d.Snapshot()
	assert.Equal(t, 0, s.LevelIndex)
	assert.Equal(t, state.StatePlaying, s.Phase)
	assert.False(t, s.Paused)
	assert.Equal(t, 1, d.events.count(EventGameCompleted))
	assert.Equal(t, 0, d.events.count(EventLevelAdvanced))

	assert.ErrorIs(t, d.Advance(), ErrNotComplete)
	assert.Equal(t, 1, d.events.count(EventGameCompleted))
}

func TestDriver_AdvanceToNext(t *testing.T) {
	d := createTestDriver(t)
	d.Start()
	d.level.Key.Collect()
	d.player.X = 820
	d.Tick(system.InputState{})

	require.NoError(t, d.Advance())

	s := d.Snapshot()
	assert.Equal(t, 1, s.LevelIndex)
	assert.Equal(t, "b", s.LevelID)
	assert.False(t, s.Key.Collected)
	assert.Equal(t, 80.0, s.Player.X)
	require.Equal(t, 1, d.events.count(EventLevelAdvanced))
	assert.Equal(t, 1, d.events.events[len(d.events.events)-1].Level)
}

func TestDriver_AdvanceOutsideComplete(t *testing.T) {
	d := createTestDriver(t)

	assert.ErrorIs(t, d.Advance(), ErrNotComplete)
	assert.Equal(t, 0, d.Snapshot().LevelIndex)
}

func TestDriver_LoadLevelIdempotent(t *testing.T) {
	d := createTestDriver(t,
		createTestTemplate("a", entity.AttackMelee),
		createTestTemplate("b", entity.AttackProjectile, slimeAt(500, 2)),
	)
	d.Start()

	d.LoadLevel(1)
	first := d.Snapshot()
	d.LoadLevel(1)
	assert.Equal(t, first, d.Snapshot())

	// dirty every per-level flag, then reload
	for i := 0; i < 30; i++ {
		d.Tick(system.InputState{MoveRight: true, Attack: true, Jump: true})
	}
	d.level.Key.Collect()
	d.level.Enemies[0].TakeDamage(2)
	d.LoadLevel(1)

	again := d.Snapshot()
	again.Tick = first.Tick
	assert.Equal(t, first, again)
}

func TestDriver_LoadLevelClamps(t *testing.T) {
	d := createTestDriver(t)

	d.LoadLevel(99)
	assert.Equal(t, 1, d.Snapshot().LevelIndex)

	d.LoadLevel(-3)
	assert.Equal(t, 0, d.Snapshot().LevelIndex)
}

func TestDriver_LoadLevelDropsPendingQuiz(t *testing.T) {
	tpl := createTestTemplate("a", entity.AttackMelee)
	tpl.SpawnX = 300
	d := createTestDriver(t, tpl)
	d.Start()
	d.Tick(system.InputState{})
	id := d.quiz.last().ID

	d.LoadLevel(0)

	assert.Equal(t, state.StatePlaying, d.Snapshot().Phase)
	assert.False(t, d.Snapshot().Key.Taken)
	assert.ErrorIs(t, d.ResolveQuiz(id, true), ErrNoPendingQuiz)
}

func TestDriver_Respawn(t *testing.T) {
	d := createTestDriver(t, createTestTemplate("a", entity.AttackProjectile, slimeAt(600, 1)))
	d.Start()
	d.level.Key.Collect()
	d.level.Enemies[0].TakeDamage(1)
	d.level.Projectiles = append(d.level.Projectiles, entity.NewProjectile(400, 100, 16, 6, 9, 1))
	d.player.Health = 1
	d.player.Y = 520

	d.Tick(system.InputState{})

	s := d.Snapshot()
	assert.Equal(t, 80.0, s.Player.X)
	assert.Equal(t, 356.0, s.Player.Y)
	assert.Equal(t, 3, s.Player.Health)
	assert.Empty(t, s.Projectiles)
	assert.True(t, s.Key.Collected)
	assert.False(t, s.Enemies[0].Alive)
	assert.Equal(t, 1, d.events.count(EventRespawned))
}

func TestDriver_TogglePause(t *testing.T) {
	d := createTestDriver(t)
	d.Start()

	d.TogglePause()
	d.Tick(system.InputState{MoveRight: true})
	assert.True(t, d.Snapshot().Paused)
	assert.Equal(t, 80.0, d.Snapshot().Player.X)

	d.TogglePause()
	d.Tick(system.InputState{MoveRight: true})
	assert.False(t, d.Snapshot().Paused)
	assert.Equal(t, 84.5, d.Snapshot().Player.X)
}

func TestDriver_SnapshotIsolated(t *testing.T) {
	d := createTestDriver(t, createTestTemplate("a", entity.AttackMelee, slimeAt(500, 2)))

	s := d.Snapshot()
	s.Enemies[0].Alive = false
	s.Platforms[0].X = 50
	s.Player.Health = 0

	fresh := d.Snapshot()
	assert.True(t, fresh.Enemies[0].Alive)
	assert.Equal(t, 0.0, fresh.Platforms[0].X)
	assert.Equal(t, 3, fresh.Player.Health)
}

func TestDriver_State(t *testing.T) {
	d := createTestDriver(t, createTestTemplate("a", entity.AttackMelee, slimeAt(500, 2)))

	st := d.State()
	st.Level.Enemies[0].X = 0
	st.Player.X = 0

	assert.Equal(t, 500.0, d.Snapshot().Enemies[0].X)
	assert.Equal(t, 80.0, d.Snapshot().Player.X)
}

func TestDriver_ReplaceContent(t *testing.T) {
	d := createTestDriver(t)

	assert.ErrorIs(t, d.ReplaceContent(nil, nil), ErrNoLevels)

	replacement := createTestTemplate("c", entity.AttackMelee)
	require.NoError(t, d.ReplaceContent([]*entity.LevelTemplate{replacement}, nil))
	assert.Equal(t, "a", d.Snapshot().LevelID, "current level keeps running")

	d.LoadLevel(0)
	assert.Equal(t, "c", d.Snapshot().LevelID)
	assert.Equal(t, 1, d.Snapshot().LevelCount)
}
