package system

import (
	"errors"
	"fmt"

	"github.com/younwookim/keygate/internal/domain/entity"
	"github.com/younwookim/keygate/internal/domain/quiz"
	"github.com/younwookim/keygate/internal/infrastructure/config"
)

// ErrInvalidLevel is returned when a level config cannot be turned into a template
var ErrInvalidLevel = errors.New("invalid level")

func rect(r config.RectConfig) entity.Rect {
	return entity.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// LoadLevel converts a LevelConfig into a LevelTemplate
func LoadLevel(cfg *config.LevelConfig) (*entity.LevelTemplate, error) {
	attack, err := entity.ParseAttackMode(cfg.Attack)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrInvalidLevel, cfg.ID, err)
	}
	if len(cfg.Platforms) == 0 {
		return nil, fmt.Errorf("%w %s: no platforms", ErrInvalidLevel, cfg.ID)
	}

	tpl := &entity.LevelTemplate{
		ID:        cfg.ID,
		Name:      cfg.Name,
		Attack:    attack,
		SpawnX:    cfg.PlayerSpawn.X,
		SpawnY:    cfg.PlayerSpawn.Y,
		Platforms: make([]entity.Platform, 0, len(cfg.Platforms)),
		Enemies:   make([]entity.EnemyTemplate, 0, len(cfg.Enemies)),
		Key:       rect(cfg.Key),
		Door:      rect(cfg.Door),
	}

	for i, p := range cfg.Platforms {
		r := rect(p)
		if !r.Valid() {
			return nil, fmt.Errorf("%w %s: platform %d has no area", ErrInvalidLevel, cfg.ID, i)
		}
		tpl.Platforms = append(tpl.Platforms, entity.Platform{Rect: r})
	}

	for i, e := range cfg.Enemies {
		et, err := loadEnemy(e)
		if err != nil {
			return nil, fmt.Errorf("%w %s: enemy %d: %v", ErrInvalidLevel, cfg.ID, i, err)
		}
		tpl.Enemies = append(tpl.Enemies, et)
	}

	if !tpl.Key.Valid() {
		return nil, fmt.Errorf("%w %s: key has no area", ErrInvalidLevel, cfg.ID)
	}
	if !tpl.Door.Valid() {
		return nil, fmt.Errorf("%w %s: door has no area", ErrInvalidLevel, cfg.ID)
	}
	return tpl, nil
}

func loadEnemy(cfg config.EnemySpawnConfig) (entity.EnemyTemplate, error) {
	kind, err := entity.ParseEnemyKind(cfg.Kind)
	if err != nil {
		return entity.EnemyTemplate{}, err
	}

	r := entity.Rect{X: cfg.X, Y: cfg.Y, W: cfg.W, H: cfg.H}
	switch {
	case !r.Valid():
		return entity.EnemyTemplate{}, errors.New("no area")
	case cfg.Health < 1:
		return entity.EnemyTemplate{}, errors.New("hp must be at least 1")
	case cfg.Dir != 1 && cfg.Dir != -1:
		return entity.EnemyTemplate{}, fmt.Errorf("dir must be 1 or -1, got %d", cfg.Dir)
	case cfg.PatrolRange < 0:
		return entity.EnemyTemplate{}, errors.New("negative patrol range")
	}

	return entity.EnemyTemplate{
		Kind:        kind,
		Rect:        r,
		Speed:       cfg.Speed,
		Health:      cfg.Health,
		Dir:         cfg.Dir,
		PatrolRange: cfg.PatrolRange,
	}, nil
}

// LoadLevels converts every level config, in order
func LoadLevels(cfgs []*config.LevelConfig) ([]*entity.LevelTemplate, error) {
	if len(cfgs) == 0 {
		return nil, fmt.Errorf("%w: no levels", ErrInvalidLevel)
	}
	levels := make([]*entity.LevelTemplate, 0, len(cfgs))
	for _, c := range cfgs {
		tpl, err := LoadLevel(c)
		if err != nil {
			return nil, err
		}
		levels = append(levels, tpl)
	}
	return levels, nil
}

// LoadQuestions converts the question config into a pool
func LoadQuestions(cfg *config.QuestionsConfig) (*quiz.Pool, error) {
	questions := make([]quiz.Question, 0, len(cfg.Questions))
	for i, q := range cfg.Questions {
		if q.Prompt == "" || len(q.Answers) == 0 {
			return nil, fmt.Errorf("question %d needs a prompt and at least one answer", i)
		}
		questions = append(questions, quiz.Question{Prompt: q.Prompt, Answers: q.Answers})
	}
	return quiz.NewPool(questions)
}
