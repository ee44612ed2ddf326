package main

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/younwookim/keygate/internal/application/replay"
	"github.com/younwookim/keygate/internal/application/sim"
	"github.com/younwookim/keygate/internal/application/system"
	"github.com/younwookim/keygate/internal/infrastructure/config"
)

// newDriver builds a driver over cfg with a seeded RNG and no UI.
// It matches the driver playing.New builds, minus the collaborators.
func newDriver(cfg *config.GameConfig, seed int64, logger *slog.Logger) (*sim.Driver, error) {
	levels, err := system.LoadLevels(cfg.Levels)
	if err != nil {
		return nil, err
	}
	pool, err := system.LoadQuestions(cfg.Questions)
	if err != nil {
		return nil, err
	}
	return sim.New(cfg.Settings, levels, pool, sim.Collaborators{
		Logger: logger,
		Rand:   rand.New(rand.NewSource(seed)),
	})
}

// runReplay plays a recording against the given content without a window
func runReplay(cfg *config.GameConfig, path string, logger *slog.Logger) (sim.Snapshot, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return sim.Snapshot{}, err
	}
	if data.Version != replay.Version {
		logger.Warn("replay version mismatch", "file", data.Version, "want", replay.Version)
	}
	logger.Info("replaying", "file", path, "session", data.Session, "seed", data.Seed, "frames", len(data.Frames), "commands", len(data.Commands))

	d, err := newDriver(cfg, data.Seed, logger)
	if err != nil {
		return sim.Snapshot{}, fmt.Errorf("failed to create driver: %w", err)
	}
	snap, err := replay.Run(d, *data)
	if err != nil {
		return snap, fmt.Errorf("replay %s: %w", path, err)
	}
	return snap, nil
}

func logSnapshot(logger *slog.Logger, snap sim.Snapshot) {
	alive := 0
	for _, e := range snap.Enemies {
		if e.Alive {
			alive++
		}
	}
	logger.Info("replay finished",
		"tick", snap.Tick,
		"level", snap.LevelID,
		"phase", snap.Phase,
		"health", snap.Player.Health,
		"x", snap.Player.X,
		"y", snap.Player.Y,
		"keyCollected", snap.Key.Collected,
		"enemiesAlive", alive,
	)
}
