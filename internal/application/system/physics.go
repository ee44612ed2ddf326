package system

import (
	"github.com/younwookim/keygate/internal/domain/entity"
	"github.com/younwookim/keygate/internal/infrastructure/config"
)

// PhysicsSystem moves the player and resolves top-only platform landings
type PhysicsSystem struct {
	config *config.WorldConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.WorldConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// Move applies input, gravity and integration for one tick, then clamps the
// player inside the horizontal bounds. It returns true when the player has
// fallen past the bottom of the world and must respawn.
func (s *PhysicsSystem) Move(player *entity.Player, input InputState) (fell bool) {
	player.VX = float64(input.HorizontalDir()) * player.Speed

	// No buffering: a jump held while airborne is dropped
	if input.Jump && player.OnGround {
		player.VY = -player.JumpImpulse
		player.OnGround = false
	}

	player.X += player.VX
	player.VY += s.config.Gravity
	player.Y += player.VY

	s.clampX(player)

	return player.Y > s.config.Height+s.config.FallMargin
}

// Land resolves platform contact. Grounded is cleared first and only set by
// a landing. Platforms are checked in order and the last match wins.
func (s *PhysicsSystem) Land(player *entity.Player, platforms []entity.Platform) {
	player.OnGround = false
	for _, p := range platforms {
		if player.VY < 0 {
			continue
		}
		if !entity.Overlaps(player.Rect(), p.TopStrip()) {
			continue
		}
		player.Y = p.Y - player.H
		player.VY = 0
		player.OnGround = true
	}
}

func (s *PhysicsSystem) clampX(player *entity.Player) {
	maxX := s.config.Width - player.W
	if player.X > maxX {
		player.X = maxX
	}
	if player.X < 0 {
		player.X = 0
	}
}
