package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is returned when game.json is loaded but unusable
var ErrInvalidSettings = errors.New("invalid game settings")

// GameConfig holds all loaded configurations
type GameConfig struct {
	Settings  *GameSettings
	Levels    []*LevelConfig
	Questions *QuestionsConfig
}

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadSettings loads game.json
func (l *Loader) LoadSettings() (*GameSettings, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	var cfg GameSettings
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadLevel loads a level JSON file
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	p := path.Join("levels", name+".json")
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	var cfg LevelConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadQuestions loads the question pool YAML file
func (l *Loader) LoadQuestions(name string) (*QuestionsConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read questions %s: %w", name, err)
	}

	var cfg QuestionsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse questions %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadContent loads the levels and questions named by settings
func (l *Loader) LoadContent(settings *GameSettings) ([]*LevelConfig, *QuestionsConfig, error) {
	levels := make([]*LevelConfig, 0, len(settings.Levels))
	for _, name := range settings.Levels {
		lvl, err := l.LoadLevel(name)
		if err != nil {
			return nil, nil, err
		}
		levels = append(levels, lvl)
	}

	questions, err := l.LoadQuestions(settings.Questions)
	if err != nil {
		return nil, nil, err
	}
	return levels, questions, nil
}

// LoadAll loads game settings followed by every level and the question pool
func (l *Loader) LoadAll() (*GameConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	levels, questions, err := l.LoadContent(settings)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Settings:  settings,
		Levels:    levels,
		Questions: questions,
	}, nil
}

// Validate checks the settings the simulation cannot run without
func (s *GameSettings) Validate() error {
	switch {
	case s.Display.Framerate <= 0:
		return fmt.Errorf("%w: framerate must be positive", ErrInvalidSettings)
	case s.World.Width <= 0 || s.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalidSettings)
	case s.Player.Width <= 0 || s.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidSettings)
	case s.Player.MaxHealth <= 0:
		return fmt.Errorf("%w: player maxHealth must be positive", ErrInvalidSettings)
	case s.Combat.Damage <= 0:
		return fmt.Errorf("%w: combat damage must be positive", ErrInvalidSettings)
	case s.Projectile.Speed == 0:
		return fmt.Errorf("%w: projectile speed must be non-zero", ErrInvalidSettings)
	case len(s.Levels) == 0:
		return fmt.Errorf("%w: no levels listed", ErrInvalidSettings)
	case s.Questions == "":
		return fmt.Errorf("%w: no question file", ErrInvalidSettings)
	}
	return nil
}
