package entity

import "fmt"

// EntityID is a unique identifier for an entity within a level
type EntityID uint32

// Rect is an axis-aligned rectangle in world pixels.
// Y grows downward.
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether a and b intersect with non-zero area.
// Rectangles with zero or negative width/height never overlap anything.
func Overlaps(a, b Rect) bool {
	if a.W <= 0 || a.H <= 0 || b.W <= 0 || b.H <= 0 {
		return false
	}
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Valid reports whether the rectangle has a positive area
func (r Rect) Valid() bool {
	return r.W > 0 && r.H > 0
}

// TopStripOffset and TopStripHeight describe the landing strip tested
// against the player: a thin band straddling the platform top edge.
const (
	TopStripOffset = 6
	TopStripHeight = 8
)

// Platform is solid only from its top surface
type Platform struct {
	Rect
}

// TopStrip returns the landing band at the platform's top edge
func (p Platform) TopStrip() Rect {
	return Rect{X: p.X, Y: p.Y - TopStripOffset, W: p.W, H: TopStripHeight}
}

// AttackMode selects the player's attack variant for a level
type AttackMode int

const (
	AttackMelee AttackMode = iota
	AttackProjectile
)

// String returns the config name of the attack mode
func (m AttackMode) String() string {
	switch m {
	case AttackMelee:
		return "melee"
	case AttackProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// ParseAttackMode converts a config name into an AttackMode.
// An empty name selects melee.
func ParseAttackMode(name string) (AttackMode, error) {
	switch name {
	case "", "melee":
		return AttackMelee, nil
	case "projectile":
		return AttackProjectile, nil
	default:
		return AttackMelee, fmt.Errorf("unknown attack mode %q", name)
	}
}
