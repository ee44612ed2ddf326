package playing

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/keygate/internal/application/sim"
	"github.com/younwookim/keygate/internal/infrastructure/config"
)

const bannerFrames = 120

// screenShake jitters the camera after the player is hurt.
// It has its own RNG so drawing never consumes the simulation's.
type screenShake struct {
	enabled   bool
	intensity float64
	decay     float64
	amount    float64
	rng       *rand.Rand
}

func newScreenShake(cfg config.ScreenShakeConfig) *screenShake {
	return &screenShake{
		enabled:   cfg.Enabled,
		intensity: cfg.Intensity,
		decay:     cfg.Decay,
		rng:       rand.New(rand.NewSource(1)),
	}
}

// Kick starts a shake at full intensity
func (s *screenShake) Kick() {
	if s.enabled {
		s.amount = s.intensity
	}
}

// Update decays the shake by one frame
func (s *screenShake) Update() {
	s.amount *= s.decay
	if s.amount < 0.1 {
		s.amount = 0
	}
}

// Offset returns this frame's camera jitter
func (s *screenShake) Offset() (float64, float64) {
	if s.amount == 0 {
		return 0, 0
	}
	return s.amount * (2*s.rng.Float64() - 1), s.amount * (2*s.rng.Float64() - 1)
}

// banner is a short message shown over the playfield
type banner struct {
	text   string
	frames int
}

func (b *banner) Show(text string) {
	if text == "" {
		return
	}
	b.text = text
	b.frames = bannerFrames
}

func (b *banner) Update() {
	if b.frames > 0 {
		b.frames--
	}
}

func (b *banner) Visible() bool {
	return b.frames > 0
}

// messageFor returns the banner text for an event, or "" for events that
// only drive feedback effects
func messageFor(ev sim.Event) string {
	switch ev.Kind {
	case sim.EventDefeated:
		return "You were defeated!"
	case sim.EventLevelComplete:
		return fmt.Sprintf("Level %d complete!", ev.Level+1)
	case sim.EventGameCompleted:
		return "All levels cleared! Back to the start."
	case sim.EventLevelAdvanced:
		return fmt.Sprintf("Level %d", ev.Level+1)
	case sim.EventKeyAnswerIncorrect:
		return "Wrong answer. Try the key again."
	case sim.EventKeyCollected:
		return "Key collected! Head for the door."
	case sim.EventRespawned:
		return "You fell! Back to the start of the level."
	default:
		return ""
	}
}
