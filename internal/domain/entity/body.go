package entity

import "time"

// Body represents the physical body of a moving entity.
// Velocity is in pixels per tick.
type Body struct {
	X, Y   float64
	VX, VY float64
	W, H   float64

	OnGround bool
}

// Rect returns the body's bounding box
func (b *Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Player represents the player entity
type Player struct {
	Body

	Speed       float64 // horizontal speed, px/tick
	JumpImpulse float64 // magnitude, applied upward

	Health    int
	MaxHealth int

	// Expiry timestamps against the simulation clock
	InvulnerableUntil time.Duration
	CooldownUntil     time.Duration
}

// NewPlayer creates a player at the given spawn point with full health
func NewPlayer(x, y, w, h, speed, jumpImpulse float64, maxHealth int) *Player {
	return &Player{
		Body: Body{
			X: x,
			Y: y,
			W: w,
			H: h,
		},
		Speed:       speed,
		JumpImpulse: jumpImpulse,
		Health:      maxHealth,
		MaxHealth:   maxHealth,
	}
}

// IsInvulnerable returns true while the invulnerability window is open
func (p *Player) IsInvulnerable(now time.Duration) bool {
	return now < p.InvulnerableUntil
}

// CanAttack returns true once the attack cooldown has expired
func (p *Player) CanAttack(now time.Duration) bool {
	return now >= p.CooldownUntil
}

// GrantInvulnerability opens an invulnerability window of length d.
// An already longer window is kept.
func (p *Player) GrantInvulnerability(now, d time.Duration) {
	if until := now + d; until > p.InvulnerableUntil {
		p.InvulnerableUntil = until
	}
}

// Respawn moves the player to the spawn point, zeroes velocity and restores health.
// Timers are left alone.
func (p *Player) Respawn(x, y float64) {
	p.X, p.Y = x, y
	p.VX, p.VY = 0, 0
	p.OnGround = false
	p.Health = p.MaxHealth
}

// IsDefeated returns true once health has run out
func (p *Player) IsDefeated() bool {
	return p.Health <= 0
}
